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

// Command chdrgen generates a C or C++ header from a declaration bag
// produced by an external Rust source front end (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chdrgen/chdrgen/internal/config"
	"github.com/chdrgen/chdrgen/internal/model"
	"github.com/chdrgen/chdrgen/internal/writer"
)

// verbosity counts repetitions of -v: 0 is warn-and-above, 1 is info, 2+ is
// debug. slog has no separate trace level, so every repetition beyond the
// second is folded into debug (SPEC_FULL.md §7).
type verbosity int

func (v *verbosity) String() string { return fmt.Sprintf("%d", *v) }

func (v *verbosity) Set(string) error {
	*v++
	return nil
}

func (v *verbosity) IsBoolFlag() bool { return true }

func (v verbosity) level() slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "chdrgen:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("chdrgen", flag.ContinueOnError)

	var v verbosity
	fs.Var(&v, "v", "increase logging verbosity; repeatable")
	configPath := fs.String("c", "", "path to a .chdrgen.toml configuration file")
	fs.StringVar(configPath, "config", "", "path to a .chdrgen.toml configuration file")
	lang := fs.String("lang", "", `output language: "c" or "c++" (default "c++")`)
	crate := fs.String("crate", "", "binding crate name (default: inferred from the input's directory name)")
	output := fs.String("o", "-", `output path, or "-" for stdout`)
	fs.StringVar(output, "output", "-", `output path, or "-" for stdout`)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one INPUT argument, got %d", fs.NArg())
	}
	input := fs.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: v.level()}))

	rootCfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.LoadRootConfig(*configPath)
		if err != nil {
			return err
		}
		rootCfg = loaded
	}

	resolved, err := config.Resolve(rootCfg, config.Overrides{Language: *lang, Crate: *crate}, filepath.Dir(input))
	if err != nil {
		return fmt.Errorf("resolving configuration: %w", err)
	}

	src, err := model.LoadJSON(input, resolved.Expand, logger)
	if err != nil {
		return err
	}
	crates, err := src.Crates()
	if err != nil {
		return fmt.Errorf("reading crates: %w", err)
	}

	lib := model.NewLibrary(resolved.Crate)
	model.Intake(lib, crates, logger)

	bindings := model.Build(lib, model.RenameRules{
		AggregateField: resolved.Rename.AggregateField,
		EnumVariant:    resolved.Rename.EnumVariant,
		FunctionArg:    resolved.Rename.FunctionArg,
	}, logger)

	out := os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", *output, err)
		}
		defer f.Close()
		out = f
	}

	return writer.Write(out, bindings, writer.Options{
		Language:       resolved.Language,
		Header:         resolved.Header,
		Trailer:        resolved.Trailer,
		IncludeGuard:   resolved.IncludeGuard,
		AutogenWarning: resolved.AutogenWarning,
		IncludeVersion: resolved.IncludeVersion,
	})
}
