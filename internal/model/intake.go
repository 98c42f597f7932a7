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

// Intake consumes every declaration the parser yielded and populates l's
// tables, per the per-kind policy in spec.md §4.2. It never returns an
// error: every rejection is logged and the run continues (spec.md §7).
func Intake(l *Library, crates []Crate, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for _, crate := range crates {
		for _, decl := range crate.Declarations {
			intakeOne(l, crate.Name, decl, logger)
		}
	}
}

func intakeOne(l *Library, crateName string, decl Declaration, logger *slog.Logger) {
	annotations, err := ParseAnnotations(decl.Doc)
	if err != nil {
		logDiagnostic(logger, newDiagnostic(SeverityWarning, "malformed annotation block, treating as empty"),
			"name", decl.Name, "error", err)
		annotations = NewAnnotationSet()
	}

	switch decl.Kind {
	case DeclForeignFunction:
		intakeForeignFunction(l, crateName, decl, logger)
	case DeclFreeFunction:
		intakeFreeFunction(l, crateName, decl, logger)
	case DeclAggregate:
		intakeAggregate(l, decl, annotations, logger)
	case DeclEnum:
		intakeEnum(l, decl, annotations, logger)
	case DeclTypeAlias:
		intakeTypeAlias(l, decl, annotations, logger)
	case DeclOther:
		// Ignored silently.
	default:
		// Ignored silently: an unrecognized kind is treated the same as
		// DeclOther rather than as an error, since the parser contract may
		// grow new kinds the core does not yet understand.
	}
}

func intakeForeignFunction(l *Library, crateName string, decl Declaration, logger *slog.Logger) {
	if decl.BlockABI != "C" {
		logDiagnostic(logger, newDiagnostic(SeverityWarning, "skip extern block - non-C ABI"),
			"crate", crateName, "abi", decl.BlockABI)
		return
	}
	if crateName != l.BindingsCrateName {
		logDiagnostic(logger, newDiagnostic(SeverityWarning, "skip foreign fn - declared outside the binding crate"),
			"crate", crateName, "name", decl.Name)
		return
	}
	fn := &Function{
		Name:       decl.Name,
		Args:       toArgs(decl.Args),
		Return:     decl.Return,
		ExternDecl: true,
	}
	logger.Debug("take foreign fn", "crate", crateName, "name", decl.Name)
	l.functions.insert(fn.Name, fn)
}

func intakeFreeFunction(l *Library, crateName string, decl Declaration, logger *slog.Logger) {
	if crateName != l.BindingsCrateName {
		logDiagnostic(logger, newDiagnostic(SeverityWarning, "skip fn - declared outside the binding crate"),
			"crate", crateName, "name", decl.Name)
		return
	}
	if decl.NoMangle && decl.ExternC {
		fn := &Function{
			Name:       decl.Name,
			Args:       toArgs(decl.Args),
			Return:     decl.Return,
			ExternDecl: false,
		}
		logger.Debug("take fn", "crate", crateName, "name", decl.Name)
		l.functions.insert(fn.Name, fn)
		return
	}
	if decl.NoMangle != decl.ExternC {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "skip fn - must be both no_mangle and extern \"C\""),
			"crate", crateName, "name", decl.Name)
		return
	}
	logger.Debug("skip fn - neither no_mangle nor extern \"C\"", "crate", crateName, "name", decl.Name)
}

func toArgs(named []NamedType) []Arg {
	args := make([]Arg, 0, len(named))
	for _, n := range named {
		args = append(args, Arg{Name: n.Name, Type: n.Type})
	}
	return args
}

func toFields(named []NamedType) []Field {
	fields := make([]Field, 0, len(named))
	for _, n := range named {
		fields = append(fields, Field{Name: n.Name, Type: n.Type})
	}
	return fields
}

func intakeAggregate(l *Library, decl Declaration, annotations AnnotationSet, logger *slog.Logger) {
	if decl.ReprC && !decl.Unsupported {
		l.aggregates.insert(decl.Name, &Aggregate{
			Name:          decl.Name,
			Fields:        toFields(decl.Fields),
			GenericParams: decl.Generics,
			Annotations:   annotations,
		})
		logger.Debug("take struct", "name", decl.Name)
		return
	}
	if decl.ReprC {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "take struct as opaque - unsupported field type"), "name", decl.Name)
	} else {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "take struct as opaque - not repr(C)"), "name", decl.Name)
	}
	l.aggregates.delete(decl.Name)
	l.opaques.insert(decl.Name, &OpaqueAggregate{Name: decl.Name, Annotations: annotations})
}

func intakeEnum(l *Library, decl Declaration, annotations AnnotationSet, logger *slog.Logger) {
	if len(decl.Generics) != 0 || len(decl.Lifetimes) != 0 || decl.HasWhereClause {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "take enum as opaque - has generics, lifetimes, or where-bounds"), "name", decl.Name)
		l.enums.delete(decl.Name)
		l.opaques.insert(decl.Name, &OpaqueAggregate{Name: decl.Name, Annotations: annotations})
		return
	}
	if decl.Unsupported {
		logDiagnostic(logger, newDiagnostic(SeverityItem, "take enum as opaque - unsupported variant"), "name", decl.Name)
		l.enums.delete(decl.Name)
		l.opaques.insert(decl.Name, &OpaqueAggregate{Name: decl.Name, Annotations: annotations})
		return
	}
	values := make([]EnumValue, 0, len(decl.Variants))
	for _, v := range decl.Variants {
		values = append(values, EnumValue{Name: v.Name, Discriminant: v.Discriminant})
	}
	l.enums.insert(decl.Name, &Enumeration{Name: decl.Name, Repr: decl.Repr, Values: values})
	logger.Debug("take enum", "name", decl.Name)
}

func intakeTypeAlias(l *Library, decl Declaration, annotations AnnotationSet, logger *slog.Logger) {
	if decl.Aliased.Kind == KindPath {
		l.specializations.insert(decl.Name, &Specialization{
			Name:   decl.Name,
			Params: decl.Generics,
			Body:   decl.Aliased,
		})
		logger.Debug("take alias as specialization", "name", decl.Name)
		return
	}
	if len(decl.Generics) == 0 && len(decl.Lifetimes) == 0 {
		l.typedefs.insert(decl.Name, &Typedef{Name: decl.Name, Type: decl.Aliased})
		logger.Debug("take alias as typedef", "name", decl.Name)
		return
	}
	logDiagnostic(logger, newDiagnostic(SeverityItem, "skip alias - not a named reference and has generics or lifetimes"), "name", decl.Name)
}
