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
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nopWriter{}, nil))
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestAddDepsForPathOrdersDependenciesBeforeDependants(t *testing.T) {
	l := NewLibrary("widgets")
	l.opaques.insert("Handle", &OpaqueAggregate{Name: "Handle"})
	l.aggregates.insert("Point", &Aggregate{
		Name: "Point",
		Fields: []Field{
			{Name: "x", Type: Primitive(Int32)},
			{Name: "handle", Type: Pointer(false, NamedPath("Handle"))},
		},
	})

	graph := NewDependencyGraph()
	l.AddDepsForPath("Point", graph, discardLogger())

	if len(graph.Order) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(graph.Order), graph.Order)
	}
	if graph.Order[0].Name() != "Handle" {
		t.Errorf("dependency Handle must precede dependant Point, order: %v", namesOf(graph.Order))
	}
	if graph.Order[1].Name() != "Point" {
		t.Errorf("Point must be last, order: %v", namesOf(graph.Order))
	}
}

func TestAddDepsForPathVisitsOnce(t *testing.T) {
	l := NewLibrary("widgets")
	l.opaques.insert("Handle", &OpaqueAggregate{Name: "Handle"})
	l.aggregates.insert("Pair", &Aggregate{
		Name: "Pair",
		Fields: []Field{
			{Name: "a", Type: Pointer(false, NamedPath("Handle"))},
			{Name: "b", Type: Pointer(false, NamedPath("Handle"))},
		},
	})

	graph := NewDependencyGraph()
	l.AddDepsForPath("Pair", graph, discardLogger())

	if len(graph.Order) != 2 {
		t.Fatalf("Handle must be emitted exactly once, got: %v", namesOf(graph.Order))
	}
}

func TestAddDepsForFunctionNeverEmitsTheFunctionItself(t *testing.T) {
	l := NewLibrary("widgets")
	l.opaques.insert("Handle", &OpaqueAggregate{Name: "Handle"})
	fn := &Function{
		Name:   "widget_use",
		Args:   []Arg{{Name: "h", Type: Pointer(false, NamedPath("Handle"))}},
		Return: Primitive(Void),
	}

	graph := NewDependencyGraph()
	l.AddDepsForFunction(fn, graph, discardLogger())

	if len(graph.Order) != 1 || graph.Order[0].Name() != "Handle" {
		t.Errorf("expected only Handle in the graph, got: %v", namesOf(graph.Order))
	}
}

func TestAddDepsForPathDepsSkipsTheWrapperItself(t *testing.T) {
	l := NewLibrary("widgets")
	l.aggregates.insert("Vec", &Aggregate{
		Name:          "Vec",
		GenericParams: []string{"T"},
		Fields:        []Field{{Name: "elem", Type: NamedPath("T")}},
	})
	l.opaques.insert("Handle", &OpaqueAggregate{Name: "Handle"})
	l.specializations.insert("HandleVec", &Specialization{
		Name: "HandleVec",
		Body: NamedPath("Vec", NamedPath("Handle")),
	})

	graph := NewDependencyGraph()
	l.AddDepsForPathDeps("HandleVec", graph, discardLogger())

	for _, v := range graph.Order {
		if v.Name() == "HandleVec" {
			t.Errorf("AddDepsForPathDeps must not emit the specialization wrapper itself")
		}
	}
	if len(graph.Order) != 1 || graph.Order[0].Name() != "Handle" {
		t.Errorf("expected only Handle (the generic argument), got: %v", namesOf(graph.Order))
	}
}

func namesOf(vs []PathValue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Name()
	}
	return out
}
