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
	"sort"

	"github.com/chdrgen/chdrgen/internal/rename"
)

// RenameRules holds the per-role rename.Rule to apply during Build, taken
// from the [rename] table of the tool's configuration (spec.md §6).
type RenameRules struct {
	AggregateField rename.Rule
	EnumVariant    rename.Rule
	FunctionArg    rename.Rule
}

// BuiltBindings is the ordered, fully resolved output of Build: every item
// the header writer must declare, plus every function prototype, in the
// exact order they will be written (spec.md §4.6).
type BuiltBindings struct {
	Items     []PathValue
	Functions []*Function
}

// Build runs the emission driver: it walks the dependency graph rooted at
// every known function, drops unspecialized generic templates, resolves
// every specialization to its monomorphized form, groups the result
// (enums, then opaques, then everything else, each group name-sorted while
// preserving the remaining items' relative walk order), sorts functions
// lexicographically, and finally applies the configured rename rules
// in-place to the copies it returns (spec.md §4.6).
func Build(l *Library, rules RenameRules, logger *slog.Logger) *BuiltBindings {
	if logger == nil {
		logger = slog.Default()
	}

	graph := NewDependencyGraph()
	for _, fn := range l.Functions() {
		l.AddDepsForFunction(fn, graph, logger)
	}

	items := make([]PathValue, 0, len(graph.Order))
	for _, v := range graph.Order {
		switch v.Kind {
		case ValueAggregate:
			if len(v.Aggregate.GenericParams) != 0 {
				logger.Debug("drop unspecialized generic template", "name", v.Aggregate.Name)
				continue
			}
			items = append(items, v)
		case ValueSpecialization:
			agg, ok, err := Specialize(l, v.Specialization)
			if err != nil {
				logDiagnostic(logger, newDiagnostic(SeverityItem, "drop specialization"), "name", v.Specialization.Name, "error", err)
				continue
			}
			if !ok {
				logger.Debug("drop transparent specialization", "name", v.Specialization.Name)
				continue
			}
			items = append(items, aggregateValue(agg))
		default:
			items = append(items, v)
		}
	}

	items = groupAndSort(items)

	functions := append([]*Function(nil), l.Functions()...)
	sort.SliceStable(functions, func(i, j int) bool { return functions[i].Name < functions[j].Name })

	applyRenames(items, functions, rules)

	return &BuiltBindings{Items: items, Functions: functions}
}

// groupAndSort partitions items into enums, opaques, and everything else,
// sorts the first two groups by name, leaves the third in its incoming
// (dependency-walk) order, and concatenates them in that sequence
// (spec.md §4.6).
func groupAndSort(items []PathValue) []PathValue {
	var enums, opaques, rest []PathValue
	for _, v := range items {
		switch v.Kind {
		case ValueEnum:
			enums = append(enums, v)
		case ValueOpaque:
			opaques = append(opaques, v)
		default:
			rest = append(rest, v)
		}
	}
	sort.SliceStable(enums, func(i, j int) bool { return enums[i].Name() < enums[j].Name() })
	sort.SliceStable(opaques, func(i, j int) bool { return opaques[i].Name() < opaques[j].Name() })

	out := make([]PathValue, 0, len(enums)+len(opaques)+len(rest))
	out = append(out, enums...)
	out = append(out, opaques...)
	out = append(out, rest...)
	return out
}

func applyRenames(items []PathValue, functions []*Function, rules RenameRules) {
	for _, v := range items {
		if v.Kind != ValueAggregate {
			continue
		}
		for i, f := range v.Aggregate.Fields {
			v.Aggregate.Fields[i].Name = rename.ApplyToSnakeCase(rules.AggregateField, f.Name, rename.RoleAggregateField)
		}
	}
	for _, v := range items {
		if v.Kind != ValueEnum {
			continue
		}
		for i, val := range v.Enum.Values {
			v.Enum.Values[i].Name = rename.ApplyToPascalCase(rules.EnumVariant, val.Name, rename.RoleEnumVariant)
		}
	}
	for _, fn := range functions {
		for i, arg := range fn.Args {
			fn.Args[i].Name = rename.ApplyToSnakeCase(rules.FunctionArg, arg.Name, rename.RoleFunctionArg)
		}
	}
}
