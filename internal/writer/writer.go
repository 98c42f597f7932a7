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

// Package writer renders a model.BuiltBindings into a C or C++ header,
// following the exact block ordering of the original implementation's
// BuiltBindings::write (original_source/src/bindgen/library.rs): header
// preamble, include guard, version comment, autogen warning, includes,
// the extern "C" wrapper (C++ only), the items, the function prototypes,
// the matching closing blocks, and the trailer (spec.md §6).
package writer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chdrgen/chdrgen/internal/config"
	"github.com/chdrgen/chdrgen/internal/model"
)

const version = "0.1.0"

// Options carries every layout-affecting configuration value the writer
// needs, already resolved by internal/config.
type Options struct {
	Language       config.Language
	Header         string
	Trailer        string
	IncludeGuard   string
	AutogenWarning string
	IncludeVersion bool
}

// Write renders bindings to w per opts.
func Write(w io.Writer, bindings *model.BuiltBindings, opts Options) error {
	bw := &blockWriter{w: bufio.NewWriter(w)}

	if opts.Header != "" {
		bw.writeBlock(opts.Header)
	}
	if opts.IncludeGuard != "" {
		bw.writeLine(fmt.Sprintf("#ifndef %s", opts.IncludeGuard))
		bw.writeLine(fmt.Sprintf("#define %s", opts.IncludeGuard))
		bw.writeLine("")
	}

	if opts.IncludeVersion {
		bw.writeLine(fmt.Sprintf("/* Generated with chdrgen %s */", version))
	}
	if opts.AutogenWarning != "" {
		bw.writeBlock(opts.AutogenWarning)
	}

	bw.writeLine("#include <stdint.h>")
	if opts.Language == config.LangC {
		bw.writeLine("#include <stdbool.h>")
	}
	bw.writeLine("")

	if opts.Language == config.LangCxx {
		bw.writeLine(`extern "C" {`)
		bw.writeLine("")
	}

	for _, item := range bindings.Items {
		writeItem(bw, item)
		bw.writeLine("")
	}

	if opts.AutogenWarning != "" {
		bw.writeBlock(opts.AutogenWarning)
	}

	for _, fn := range bindings.Functions {
		if fn.ExternDecl {
			continue
		}
		writeFunctionPrototype(bw, fn)
		bw.writeLine("")
	}

	if opts.Language == config.LangCxx {
		bw.writeLine(`} // extern "C"`)
		bw.writeLine("")
	}

	if opts.AutogenWarning != "" {
		bw.writeBlock(opts.AutogenWarning)
	}

	if opts.IncludeGuard != "" {
		bw.writeLine(fmt.Sprintf("#endif /* %s */", opts.IncludeGuard))
	}

	if opts.Trailer != "" {
		bw.writeBlock(opts.Trailer)
	}

	return bw.w.Flush()
}

// blockWriter tracks whether anything has been written yet, so writeBlock
// can avoid emitting a stray blank line at the very start of the file (mirrors the original's "new line if not at start" helper).
type blockWriter struct {
	w        *bufio.Writer
	wroteAny bool
}

func (bw *blockWriter) writeLine(s string) {
	bw.w.WriteString(s)
	bw.w.WriteByte('\n')
	bw.wroteAny = true
}

func (bw *blockWriter) writeBlock(s string) {
	if bw.wroteAny {
		bw.w.WriteByte('\n')
	}
	bw.w.WriteString(strings.TrimRight(s, "\n"))
	bw.w.WriteByte('\n')
	bw.wroteAny = true
}
