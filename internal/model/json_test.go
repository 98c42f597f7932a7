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
	"os"
	"path/filepath"
	"testing"
)

func writeJSONFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crates.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadJSONParsesCrates(t *testing.T) {
	path := writeJSONFixture(t, `[{"Name":"widgets","Declarations":[{"Kind":1,"Name":"widget_new"}]}]`)

	src, err := LoadJSON(path, false, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	crates, err := src.Crates()
	if err != nil {
		t.Fatal(err)
	}
	if len(crates) != 1 || crates[0].Name != "widgets" {
		t.Fatalf("unexpected crates: %+v", crates)
	}
	if src.Expand {
		t.Error("Expand should be false when not requested")
	}
}

func TestLoadJSONRecordsExpandFlag(t *testing.T) {
	path := writeJSONFixture(t, `[]`)

	src, err := LoadJSON(path, true, discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if !src.Expand {
		t.Error("expected Expand to be recorded as true when the flag is set")
	}
}

func TestLoadJSONMissingFileIsAnError(t *testing.T) {
	if _, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), false, discardLogger()); err == nil {
		t.Error("expected an error for a missing input file")
	}
}
