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

import "sort"

// Field is a named, typed member of an Aggregate.
type Field struct {
	Name string
	Type Type
}

// Arg is a named, typed function parameter.
type Arg struct {
	Name string
	Type Type
}

// Function is a C-ABI function: either one declared inside the binding
// crate (emitted as a prototype) or one reachable through an extern block
// from another crate (used for dependency purposes only).
type Function struct {
	Name       string
	Args       []Arg
	Return     Type
	ExternDecl bool
}

// Aggregate is a struct. A non-empty GenericParams means this entry is a
// template: only its Specialization instantiations are emittable.
type Aggregate struct {
	Name          string
	Fields        []Field
	GenericParams []string
	Annotations   AnnotationSet
}

// OpaqueAggregate is a forward-declared incomplete type.
type OpaqueAggregate struct {
	Name        string
	Annotations AnnotationSet
}

// EnumValue is one variant of an Enumeration, with an optional explicit
// discriminant.
type EnumValue struct {
	Name         string
	Discriminant *int64
}

// Enumeration has no generics or lifetime parameters (those are rejected at
// intake and fall back to opaque).
type Enumeration struct {
	Name   string
	Repr   Repr
	Values []EnumValue
}

// Typedef aliases a single Type; it permits no generics.
type Typedef struct {
	Name string
	Type Type
}

// Specialization is a parameterized type alias: `Name<Params...> = Body`,
// where Body is always a named reference. Resolved to a concrete item at
// emission time (see Specialize).
type Specialization struct {
	Name   string
	Params []string
	Body   Type
}

// PathValueKind discriminates the five concrete shapes a resolved PathRef
// may take.
type PathValueKind int

const (
	ValueEnum PathValueKind = iota
	ValueAggregate
	ValueOpaque
	ValueTypedef
	ValueSpecialization
)

// PathValue is the tagged union a PathRef resolves to.
type PathValue struct {
	Kind PathValueKind

	Enum           *Enumeration
	Aggregate      *Aggregate
	Opaque         *OpaqueAggregate
	Typedef        *Typedef
	Specialization *Specialization
}

// Name returns the declared name of the underlying item, regardless of Kind.
func (v PathValue) Name() string {
	switch v.Kind {
	case ValueEnum:
		return v.Enum.Name
	case ValueAggregate:
		return v.Aggregate.Name
	case ValueOpaque:
		return v.Opaque.Name
	case ValueTypedef:
		return v.Typedef.Name
	case ValueSpecialization:
		return v.Specialization.Name
	default:
		return ""
	}
}

func enumValue(e *Enumeration) PathValue      { return PathValue{Kind: ValueEnum, Enum: e} }
func aggregateValue(a *Aggregate) PathValue   { return PathValue{Kind: ValueAggregate, Aggregate: a} }
func opaqueValue(o *OpaqueAggregate) PathValue { return PathValue{Kind: ValueOpaque, Opaque: o} }
func typedefValue(t *Typedef) PathValue       { return PathValue{Kind: ValueTypedef, Typedef: t} }

func specializationValue(s *Specialization) PathValue {
	return PathValue{Kind: ValueSpecialization, Specialization: s}
}

// orderedTable is a by-name table supporting O(1) lookup whose iteration
// order is lexicographic by name, matching the ordered-map discipline
// spec.md §5 requires of the six Library tables (the original Rust
// implementation uses BTreeMap). Names are recorded as they are inserted;
// the name-sorted view is produced on demand by names().
type orderedTable[V any] struct {
	byName map[string]V
	order  []string
}

func newOrderedTable[V any]() orderedTable[V] {
	return orderedTable[V]{byName: map[string]V{}}
}

func (t *orderedTable[V]) insert(name string, value V) {
	if _, exists := t.byName[name]; !exists {
		t.order = append(t.order, name)
	}
	t.byName[name] = value
}

func (t *orderedTable[V]) get(name string) (V, bool) {
	v, ok := t.byName[name]
	return v, ok
}

func (t *orderedTable[V]) has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

func (t *orderedTable[V]) delete(name string) {
	if _, exists := t.byName[name]; !exists {
		return
	}
	delete(t.byName, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// names returns the names sorted lexicographically.
func (t *orderedTable[V]) names() []string {
	out := append([]string(nil), t.order...)
	sort.Strings(out)
	return out
}

func (t *orderedTable[V]) len() int {
	return len(t.order)
}

// Library holds the six disjoint by-name tables plus the configured binding
// crate name. It is constructed once by Intake and consumed by a single
// Build pass.
type Library struct {
	BindingsCrateName string

	enums           orderedTable[*Enumeration]
	aggregates      orderedTable[*Aggregate]
	opaques         orderedTable[*OpaqueAggregate]
	typedefs        orderedTable[*Typedef]
	specializations orderedTable[*Specialization]
	functions       orderedTable[*Function]
}

// NewLibrary returns an empty Library ready for Intake.
func NewLibrary(bindingsCrateName string) *Library {
	return &Library{
		BindingsCrateName: bindingsCrateName,
		enums:             newOrderedTable[*Enumeration](),
		aggregates:        newOrderedTable[*Aggregate](),
		opaques:           newOrderedTable[*OpaqueAggregate](),
		typedefs:          newOrderedTable[*Typedef](),
		specializations:   newOrderedTable[*Specialization](),
		functions:         newOrderedTable[*Function](),
	}
}

// Functions returns every accepted function, sorted lexicographically by
// name (spec.md §4.6, §5).
func (l *Library) Functions() []*Function {
	out := make([]*Function, 0, l.functions.len())
	for _, name := range l.functions.names() {
		f, _ := l.functions.get(name)
		out = append(out, f)
	}
	return out
}
