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

import "fmt"

// Specialize resolves a Specialization into the concrete item it stands for
// (spec.md §4.5).
//
// Three outcomes:
//   - (aggregate, true, nil): spec names a monomorphization of a generic
//     struct; aggregate is a freshly named copy with every generic parameter
//     substituted by its concrete argument.
//   - (nil, false, nil): spec is transparent — its target takes no free
//     parameters, so there is nothing to emit under spec's own name. The
//     caller should drop the specialization entirely rather than treat this
//     as an error.
//   - (nil, false, err): spec could not be resolved (dangling reference,
//     parameter/argument count mismatch, or an attempt to instantiate
//     generic arguments against a non-aggregate target).
func Specialize(l *Library, spec *Specialization) (*Aggregate, bool, error) {
	return specializeBody(l, spec.Name, spec.Body)
}

func specializeBody(l *Library, name string, body Type) (*Aggregate, bool, error) {
	if body.Kind != KindPath {
		return nil, false, fmt.Errorf("specialization %q: body is not a named reference", name)
	}
	target, ok := l.ResolvePath(body.Path)
	if !ok {
		return nil, false, fmt.Errorf("specialization %q: unresolved target %q", name, body.Path)
	}

	switch target.Kind {
	case ValueAggregate:
		agg := target.Aggregate
		if len(agg.GenericParams) == 0 {
			if len(body.GenericArgs) != 0 {
				return nil, false, fmt.Errorf("specialization %q: %q takes no generic parameters", name, agg.Name)
			}
			// Already concrete under a different name: nothing new to emit.
			return nil, false, nil
		}
		if len(agg.GenericParams) != len(body.GenericArgs) {
			return nil, false, fmt.Errorf("specialization %q: %q wants %d generic arguments, got %d",
				name, agg.Name, len(agg.GenericParams), len(body.GenericArgs))
		}
		subst := substitution(agg.GenericParams, body.GenericArgs)
		fields := make([]Field, len(agg.Fields))
		for i, f := range agg.Fields {
			fields[i] = Field{Name: f.Name, Type: substituteType(f.Type, subst)}
		}
		return &Aggregate{
			Name:        name,
			Fields:      fields,
			Annotations: agg.Annotations,
		}, true, nil

	case ValueSpecialization:
		inner := target.Specialization
		if len(inner.Params) != len(body.GenericArgs) {
			return nil, false, fmt.Errorf("specialization %q: %q wants %d generic arguments, got %d",
				name, inner.Name, len(inner.Params), len(body.GenericArgs))
		}
		subst := substitution(inner.Params, body.GenericArgs)
		return specializeBody(l, name, substituteType(inner.Body, subst))

	case ValueOpaque, ValueEnum, ValueTypedef:
		if len(body.GenericArgs) != 0 {
			return nil, false, fmt.Errorf("specialization %q: %q takes no generic parameters", name, target.Name())
		}
		return nil, false, nil

	default:
		return nil, false, fmt.Errorf("specialization %q: target %q has no known kind", name, body.Path)
	}
}

func substitution(params []string, args []Type) map[string]Type {
	m := make(map[string]Type, len(params))
	for i, p := range params {
		m[p] = args[i]
	}
	return m
}

// substituteType returns a copy of t with every zero-argument named
// reference whose path matches a key in subst replaced by the corresponding
// concrete type. Generic parameters only ever appear this way (a bare `T`
// parses as Path("T") with no arguments of its own), so this single check
// at every KindPath node is sufficient; the walk still recurses through
// pointers, arrays, and function pointers to reach nested occurrences.
func substituteType(t Type, subst map[string]Type) Type {
	switch t.Kind {
	case KindPrimitive:
		return t
	case KindPointer:
		pointee := substituteType(*t.Pointee, subst)
		return Type{Kind: KindPointer, PointerConst: t.PointerConst, Pointee: &pointee}
	case KindArray:
		elem := substituteType(*t.Elem, subst)
		return Type{Kind: KindArray, Elem: &elem, Length: t.Length}
	case KindPath:
		if len(t.GenericArgs) == 0 {
			if replacement, ok := subst[string(t.Path)]; ok {
				return replacement
			}
			return t
		}
		args := make([]Type, len(t.GenericArgs))
		for i, a := range t.GenericArgs {
			args[i] = substituteType(a, subst)
		}
		return Type{Kind: KindPath, Path: t.Path, GenericArgs: args}
	case KindFuncPointer:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = substituteType(p, subst)
		}
		ret := substituteType(*t.Return, subst)
		return Type{Kind: KindFuncPointer, Params: params, Return: &ret}
	default:
		return t
	}
}
