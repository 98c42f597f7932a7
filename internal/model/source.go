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

// This file defines the contract an external parser (and optional
// macro-expansion front end) must satisfy: for every visited source file, a
// crate name plus an ordered sequence of declarations (spec.md §4.7).
//
// The actual source parser — walking a Rust crate, expanding macros,
// extracting attributes and doc comments from `syn`-equivalent syntax trees
// — is explicitly out of scope for this repository (spec.md §1). It lives
// in this package (rather than a separate one) because Declaration is
// expressed directly in terms of Type: the contract and the algebra it
// carries are two views of the same data, and splitting them across
// packages only produces an import cycle (Intake needs Declaration, and
// Declaration needs Type).

// DeclKind discriminates the closed set of declaration shapes the parser can
// emit.
type DeclKind int

const (
	DeclForeignFunction DeclKind = iota
	DeclFreeFunction
	DeclAggregate
	DeclEnum
	DeclTypeAlias
	DeclOther
)

// NamedType pairs an identifier with its Type, used for both function
// arguments and aggregate fields.
type NamedType struct {
	Name string
	Type Type
}

// EnumVariant is one variant of a parsed enum declaration, with an optional
// explicit discriminant.
type EnumVariant struct {
	Name         string
	Discriminant *int64
}

// Declaration is one item the parser yielded. Only the fields relevant to
// Kind are populated; Intake switches on Kind before reading the rest.
type Declaration struct {
	Kind DeclKind
	Name string

	// Doc is the raw documentation-comment text attached to the
	// declaration, if any. Intake parses it into an AnnotationSet.
	Doc string

	// Generics lists generic type parameter names (aggregates, enums, type
	// aliases).
	Generics []string
	// Lifetimes lists lifetime parameter names (enums reject any).
	Lifetimes []string
	// HasWhereClause is true if a where-clause with at least one predicate
	// is present (enums reject this too).
	HasWhereClause bool

	// DeclForeignFunction / DeclFreeFunction
	Args   []NamedType
	Return Type
	// BlockABI is the ABI string of the enclosing extern block
	// (DeclForeignFunction only). Non-"C" ABIs cause the whole block to be
	// skipped with a warning.
	BlockABI string
	// NoMangle and ExternC describe a DeclFreeFunction's attributes.
	NoMangle bool
	ExternC  bool

	// DeclAggregate
	Fields []NamedType
	ReprC  bool

	// DeclEnum
	Variants []EnumVariant
	Repr     Repr

	// Unsupported is set by the parser when a struct's fields (or an enum's
	// variants) could not be converted into the Type algebra at all — e.g. a
	// field whose source type has no C representation (a `Vec<T>`, a trait
	// object). It forces the opaque-fallback path even when ReprC is set, or
	// even when the enum has no generics (spec.md §4.2: "conversion ...
	// succeeds" is a distinct condition from the repr/generics checks).
	Unsupported bool

	// DeclTypeAlias
	Aliased Type
}

// Crate bundles a crate name with the ordered sequence of declarations the
// parser found in it.
type Crate struct {
	Name         string
	Declarations []Declaration
}

// Source produces the flat declaration stream Intake consumes. The concrete
// implementation (walking a directory or a single file, optionally through a
// macro-expansion pass controlled by the `expand` configuration flag) lives
// outside this repository's core; chdrgen ships only the contract plus a
// minimal in-memory implementation for tests and for single-file inputs.
type Source interface {
	// Crates returns every crate visited, in visitation order. Declarations
	// within a crate are in parser-emission (source) order, which Intake and
	// the dependency walker rely on for reproducible output (spec.md §5).
	Crates() ([]Crate, error)
}

// Static is a Source backed by an in-memory, pre-built list of crates. It is
// the Source LoadJSON returns for the CLI's JSON input (holding every named
// crate the file lists) and the one tests use.
type Static struct {
	crates []Crate

	// Expand records whether the `expand` configuration flag (spec.md §6)
	// was requested of this Source. Macro expansion itself stays out of
	// scope (spec.md §1): Static does not expand anything, but it carries
	// the flag so a caller (or a future concrete Source) can tell whether
	// the input was supposed to already be macro-expanded.
	Expand bool
}

// NewStatic returns a Source that yields exactly the given crates, in order.
func NewStatic(crates ...Crate) *Static {
	return &Static{crates: crates}
}

func (s *Static) Crates() ([]Crate, error) {
	return s.crates, nil
}
