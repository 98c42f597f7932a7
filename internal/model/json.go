// Copyright 2026 The chdrgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadJSON reads a JSON-encoded []Crate from filename. This is the stand-in
// front end chdrgen ships in place of a live Rust/syn parser: whatever tool
// walks the crate and expands macros is expected to serialize its
// declarations into this shape first (spec.md §4.7 names the contract, not
// the front end that produces it).
//
// expand is the `expand` configuration flag (spec.md §6), plumbed through
// from the CLI. The macro expander itself is out of scope (spec.md §1), so
// LoadJSON cannot act on it beyond recording it on the returned Static and
// noting in the log that pre-expanded input is assumed; a real macro-aware
// front end would instead run its expansion pass here before decoding.
func LoadJSON(filename string, expand bool, logger *slog.Logger) (*Static, error) {
	if logger == nil {
		logger = slog.Default()
	}
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	var crates []Crate
	if err := json.Unmarshal(contents, &crates); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if expand {
		logger.Debug("expand flag set; assuming input declarations are already macro-expanded")
	}
	src := NewStatic(crates...)
	src.Expand = expand
	return src, nil
}
