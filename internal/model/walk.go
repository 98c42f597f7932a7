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

import "log/slog"

// DependencyGraph accumulates a topological ordering of items reachable from
// a set of roots. Order holds owned copies of resolved items
// (dependencies before dependants, i.e. post-order); Visited is the guard
// that prevents an item from being added twice and breaks cycles.
type DependencyGraph struct {
	Order   []PathValue
	Visited map[PathRef]bool
}

// NewDependencyGraph returns an empty graph.
func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{Visited: map[PathRef]bool{}}
}

// AddDepsForPath resolves p and, unless already visited, appends every item
// it transitively depends on (in source order of fields/parameters) and
// then p itself, in post-order.
//
// The visited set breaks cycles. C cannot forward-declare a concrete
// aggregate, so a cycle through non-pointer aggregate fields is a user
// error this walker does not detect: it relies on the convention that
// aggregates only cycle through pointers, whose named reference resolves to
// an opaque or a later-visited aggregate (spec.md §4.4).
func (l *Library) AddDepsForPath(p PathRef, out *DependencyGraph, logger *slog.Logger) {
	if out.Visited[p] {
		return
	}
	value, ok := l.ResolvePath(p)
	if !ok {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "unresolved type reference during dependency walk"), "path", string(p))
		return
	}
	out.Visited[p] = true
	l.addDeps(value, out, logger)
	out.Order = append(out.Order, value)
}

// AddDepsForPathDeps walks the dependencies of the item p resolves to,
// without emitting p itself. Used for specializations, whose wrapper name
// disappears at emission but whose generic arguments must still be
// reachable (spec.md §4.4).
func (l *Library) AddDepsForPathDeps(p PathRef, out *DependencyGraph, logger *slog.Logger) {
	value, ok := l.ResolvePath(p)
	if !ok {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "unresolved type reference during dependency walk"), "path", string(p))
		return
	}
	l.addDeps(value, out, logger)
}

func (l *Library) addDeps(value PathValue, out *DependencyGraph, logger *slog.Logger) {
	switch value.Kind {
	case ValueEnum, ValueOpaque:
		// No outgoing dependencies.
	case ValueAggregate:
		for _, field := range value.Aggregate.Fields {
			l.addTypeDeps(field.Type, out, logger)
		}
	case ValueTypedef:
		l.addTypeDeps(value.Typedef.Type, out, logger)
	case ValueSpecialization:
		// The body names a generic template (e.g. Vec<T>): pull in its
		// internal field dependencies without emitting the template itself,
		// since only concrete specializations of it are ever emittable.
		spec := value.Specialization
		l.addTypeDepsOnly(spec.Body, out, logger)
		// Each generic argument, by contrast, is a concrete type the
		// monomorphized result will actually reference, so it must be
		// emitted like any other dependency.
		for _, arg := range spec.Body.GenericArgs {
			l.addTypeDeps(arg, out, logger)
		}
	}
}

// addTypeDeps recurses into every named reference reachable inside t,
// emitting each (post-order) via AddDepsForPath. Pointer targets, array
// elements, and function-pointer parameters/return all count.
func (l *Library) addTypeDeps(t Type, out *DependencyGraph, logger *slog.Logger) {
	switch t.Kind {
	case KindPrimitive:
	case KindPointer:
		l.addTypeDeps(*t.Pointee, out, logger)
	case KindArray:
		l.addTypeDeps(*t.Elem, out, logger)
	case KindPath:
		l.AddDepsForPath(t.Path, out, logger)
		for _, arg := range t.GenericArgs {
			l.addTypeDeps(arg, out, logger)
		}
	case KindFuncPointer:
		for _, p := range t.Params {
			l.addTypeDeps(p, out, logger)
		}
		l.addTypeDeps(*t.Return, out, logger)
	}
}

// addTypeDepsOnly is addTypeDeps but for a Path type it only walks the
// referenced item's dependencies, not the item itself — used for a
// specialization's body, whose generic template is never emitted
// (spec.md §4.4).
func (l *Library) addTypeDepsOnly(t Type, out *DependencyGraph, logger *slog.Logger) {
	switch t.Kind {
	case KindPrimitive:
	case KindPointer:
		l.addTypeDepsOnly(*t.Pointee, out, logger)
	case KindArray:
		l.addTypeDepsOnly(*t.Elem, out, logger)
	case KindPath:
		l.AddDepsForPathDeps(t.Path, out, logger)
	case KindFuncPointer:
		for _, p := range t.Params {
			l.addTypeDepsOnly(p, out, logger)
		}
		l.addTypeDepsOnly(*t.Return, out, logger)
	}
}

// AddDepsForFunction adds the dependencies of every parameter type and the
// return type of fn, treating fn as a virtual root: the function itself is
// never added to the graph (functions are emitted separately, spec.md
// §4.6).
func (l *Library) AddDepsForFunction(fn *Function, out *DependencyGraph, logger *slog.Logger) {
	for _, arg := range fn.Args {
		l.addTypeDeps(arg.Type, out, logger)
	}
	l.addTypeDeps(fn.Return, out, logger)
}
