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

// Package model implements the type resolver, dependency orderer, and
// specialization engine: the subsystem that takes a flat bag of parsed
// declarations and produces a correctly ordered, fully monomorphized,
// C-declarable list of items.
package model

import "fmt"

// Repr is the layout hint recorded on an enum. Aggregates carry only a
// repr(C) flag (Declaration.ReprC), whose absence forces opaque fallback;
// an enum's Repr does not affect whether intake accepts it.
type Repr int

const (
	ReprNone Repr = iota
	ReprC
	ReprU8
	ReprU16
	ReprU32
)

// PrimitiveType enumerates the fixed-width scalar types the type algebra can
// reference directly, without going through a PathRef.
type PrimitiveType int

const (
	Bool PrimitiveType = iota
	Char
	Void
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
)

// TypeKind discriminates the closed set of shapes a Type may take.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindPointer
	KindArray
	KindPath
	KindFuncPointer
)

// Type is the algebra the core manipulates: primitives, pointers, arrays,
// named references (PathRef plus generic arguments), and function pointers.
//
// Only the fields relevant to Kind are populated; callers must switch on Kind
// before reading the rest, mirroring the closed variant types recommended in
// spec.md's design notes.
type Type struct {
	Kind TypeKind

	// KindPrimitive
	Primitive PrimitiveType

	// KindPointer
	PointerConst bool
	Pointee      *Type

	// KindArray
	Elem   *Type
	Length int

	// KindPath
	Path        PathRef
	GenericArgs []Type

	// KindFuncPointer
	Params []Type
	Return *Type
}

// PathRef is an unqualified identifier naming an item the model may resolve.
type PathRef string

func Primitive(p PrimitiveType) Type {
	return Type{Kind: KindPrimitive, Primitive: p}
}

func Pointer(constQualified bool, pointee Type) Type {
	return Type{Kind: KindPointer, PointerConst: constQualified, Pointee: &pointee}
}

func Array(elem Type, length int) Type {
	return Type{Kind: KindArray, Elem: &elem, Length: length}
}

func NamedPath(name PathRef, genericArgs ...Type) Type {
	return Type{Kind: KindPath, Path: name, GenericArgs: genericArgs}
}

func FuncPointer(params []Type, ret Type) Type {
	return Type{Kind: KindFuncPointer, Params: params, Return: &ret}
}

func (t Type) String() string {
	switch t.Kind {
	case KindPrimitive:
		return fmt.Sprintf("primitive(%d)", t.Primitive)
	case KindPointer:
		qual := "*mut"
		if t.PointerConst {
			qual = "*const"
		}
		return fmt.Sprintf("%s %s", qual, t.Pointee.String())
	case KindArray:
		return fmt.Sprintf("[%s; %d]", t.Elem.String(), t.Length)
	case KindPath:
		return string(t.Path)
	case KindFuncPointer:
		return "fn(...)"
	default:
		return "?"
	}
}

// AnnotationValue is either a string or a boolean annotation payload.
type AnnotationValue struct {
	IsBool bool
	Bool   bool
	String string
}

// AnnotationSet is a mapping from lowercase annotation keys to their values,
// parsed from documentation-comment directives attached to a declaration.
type AnnotationSet map[string]AnnotationValue

// NewAnnotationSet returns an empty set, used whenever a malformed
// documentation comment block must degrade to "no annotations" rather than
// fail the whole declaration (spec.md §7, Warning severity).
func NewAnnotationSet() AnnotationSet {
	return AnnotationSet{}
}

// Bool returns the boolean annotation for key, and whether it was present as
// a boolean value at all.
func (a AnnotationSet) Bool(key string) (bool, bool) {
	v, ok := a[key]
	if !ok || !v.IsBool {
		return false, false
	}
	return v.Bool, true
}

// String returns the string annotation for key, and whether it was present.
func (a AnnotationSet) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok || v.IsBool {
		return "", false
	}
	return v.String, true
}
