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
	"testing"
)

func TestIntakeForeignFunctionRequiresCABIAndBindingCrate(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{
		{Name: "widgets", Declarations: []Declaration{
			{Kind: DeclForeignFunction, Name: "good", BlockABI: "C"},
			{Kind: DeclForeignFunction, Name: "bad_abi", BlockABI: "stdcall"},
		}},
		{Name: "other_crate", Declarations: []Declaration{
			{Kind: DeclForeignFunction, Name: "bad_crate", BlockABI: "C"},
		}},
	}
	Intake(l, crates, discardLogger())

	if _, ok := l.functions.get("good"); !ok {
		t.Error("expected a C-ABI foreign fn from the binding crate to be taken")
	}
	if _, ok := l.functions.get("bad_abi"); ok {
		t.Error("a non-C ABI foreign fn must be rejected")
	}
	if _, ok := l.functions.get("bad_crate"); ok {
		t.Error("a foreign fn declared outside the binding crate must be rejected")
	}
	if fn, _ := l.functions.get("good"); !fn.ExternDecl {
		t.Error("a foreign fn must be marked ExternDecl")
	}
}

func TestIntakeFreeFunctionRequiresNoMangleAndExternC(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{{Name: "widgets", Declarations: []Declaration{
		{Kind: DeclFreeFunction, Name: "exported", NoMangle: true, ExternC: true},
		{Kind: DeclFreeFunction, Name: "half", NoMangle: true, ExternC: false},
		{Kind: DeclFreeFunction, Name: "internal", NoMangle: false, ExternC: false},
	}}}
	Intake(l, crates, discardLogger())

	if _, ok := l.functions.get("exported"); !ok {
		t.Error("a no_mangle extern \"C\" fn must be taken")
	}
	if _, ok := l.functions.get("half"); ok {
		t.Error("a fn with only one of no_mangle/extern \"C\" must be rejected")
	}
	if _, ok := l.functions.get("internal"); ok {
		t.Error("a plain Rust fn must not be taken")
	}
	if fn, _ := l.functions.get("exported"); fn.ExternDecl {
		t.Error("a free fn must not be marked ExternDecl")
	}
}

func TestIntakeAggregateOpaqueFallback(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{{Name: "widgets", Declarations: []Declaration{
		{Kind: DeclAggregate, Name: "Concrete", ReprC: true},
		{Kind: DeclAggregate, Name: "NotReprC", ReprC: false},
		{Kind: DeclAggregate, Name: "BadField", ReprC: true, Unsupported: true},
	}}}
	Intake(l, crates, discardLogger())

	if _, ok := l.aggregates.get("Concrete"); !ok {
		t.Error("a repr(C) struct with supported fields must be taken concretely")
	}
	if _, ok := l.opaques.get("NotReprC"); !ok {
		t.Error("a non-repr(C) struct must fall back to opaque")
	}
	if _, ok := l.opaques.get("BadField"); !ok {
		t.Error("a struct with an unsupported field must fall back to opaque")
	}
}

func TestIntakeEnumOpaqueFallback(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{{Name: "widgets", Declarations: []Declaration{
		{Kind: DeclEnum, Name: "Plain", Variants: []EnumVariant{{Name: "A"}}},
		{Kind: DeclEnum, Name: "Generic", Generics: []string{"T"}},
		{Kind: DeclEnum, Name: "Bad", Unsupported: true},
	}}}
	Intake(l, crates, discardLogger())

	if _, ok := l.enums.get("Plain"); !ok {
		t.Error("a plain enum must be taken concretely")
	}
	if _, ok := l.opaques.get("Generic"); !ok {
		t.Error("a generic enum must fall back to opaque")
	}
	if _, ok := l.opaques.get("Bad"); !ok {
		t.Error("an enum with an unsupported variant must fall back to opaque")
	}
}

func TestIntakeTypeAliasSpecializationVsTypedef(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{{Name: "widgets", Declarations: []Declaration{
		{Kind: DeclTypeAlias, Name: "IntVec", Aliased: NamedPath("Vec", Primitive(Int32))},
		{Kind: DeclTypeAlias, Name: "MyInt", Aliased: Primitive(Int32)},
		{Kind: DeclTypeAlias, Name: "Weird", Aliased: Primitive(Int32), Generics: []string{"T"}},
	}}}
	Intake(l, crates, discardLogger())

	if _, ok := l.specializations.get("IntVec"); !ok {
		t.Error("an alias of a named reference must become a Specialization")
	}
	if _, ok := l.typedefs.get("MyInt"); !ok {
		t.Error("a non-generic alias of a non-path type must become a Typedef")
	}
	if _, ok := l.typedefs.get("Weird"); ok {
		t.Error("a generic alias of a non-path type cannot be a Typedef")
	}
	if _, ok := l.specializations.get("Weird"); ok {
		t.Error("a generic alias of a non-path type cannot be a Specialization either")
	}
}

func TestIntakeMalformedAnnotationDegradesToEmptySet(t *testing.T) {
	l := NewLibrary("widgets")
	crates := []Crate{{Name: "widgets", Declarations: []Declaration{
		{Kind: DeclAggregate, Name: "Thing", ReprC: true, Doc: "chdrgen:=oops"},
	}}}
	// Must not panic and must still take the declaration.
	Intake(l, crates, discardLogger())
	agg, ok := l.aggregates.get("Thing")
	if !ok {
		t.Fatal("expected Thing to be taken despite the malformed annotation")
	}
	if len(agg.Annotations) != 0 {
		t.Errorf("expected an empty annotation set, got %v", agg.Annotations)
	}
}
