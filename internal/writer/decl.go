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

package writer

import (
	"fmt"
	"strings"

	"github.com/chdrgen/chdrgen/internal/model"
)

func primitiveName(p model.PrimitiveType) string {
	switch p {
	case model.Bool:
		return "bool"
	case model.Char:
		return "char"
	case model.Void:
		return "void"
	case model.Int8:
		return "int8_t"
	case model.Int16:
		return "int16_t"
	case model.Int32:
		return "int32_t"
	case model.Int64:
		return "int64_t"
	case model.UInt8:
		return "uint8_t"
	case model.UInt16:
		return "uint16_t"
	case model.UInt32:
		return "uint32_t"
	case model.UInt64:
		return "uint64_t"
	case model.Float32:
		return "float"
	case model.Float64:
		return "double"
	default:
		return "void"
	}
}

// declareWithName renders t using C's spiral declarator syntax, with name
// embedded at the point the declarator requires (a bare type has no
// embedding point, so name is appended with a separating space). Passing ""
// for name yields a type name usable on its own, e.g. in a cast or a
// typedef's right-hand side.
func declareWithName(t model.Type, name string) string {
	switch t.Kind {
	case model.KindPrimitive:
		if name == "" {
			return primitiveName(t.Primitive)
		}
		return primitiveName(t.Primitive) + " " + name

	case model.KindPointer:
		star := "*"
		if t.PointerConst {
			star = "*const "
		}
		return declareWithName(*t.Pointee, star+name)

	case model.KindArray:
		return declareWithName(*t.Elem, fmt.Sprintf("%s[%d]", name, t.Length))

	case model.KindPath:
		base := string(t.Path)
		if name == "" {
			return base
		}
		return base + " " + name

	case model.KindFuncPointer:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = declareWithName(p, "")
		}
		paramList := "void"
		if len(params) > 0 {
			paramList = strings.Join(params, ", ")
		}
		return declareWithName(*t.Return, fmt.Sprintf("(*%s)(%s)", name, paramList))

	default:
		return name
	}
}

func writeItem(bw *blockWriter, item model.PathValue) {
	switch item.Kind {
	case model.ValueEnum:
		writeEnum(bw, item.Enum)
	case model.ValueAggregate:
		writeAggregate(bw, item.Aggregate)
	case model.ValueOpaque:
		bw.writeLine(fmt.Sprintf("typedef struct %s %s;", item.Opaque.Name, item.Opaque.Name))
	case model.ValueTypedef:
		bw.writeLine("typedef " + declareWithName(item.Typedef.Type, item.Typedef.Name) + ";")
	}
}

func writeEnum(bw *blockWriter, e *model.Enumeration) {
	bw.writeLine(fmt.Sprintf("typedef enum %s {", e.Name))
	for i, v := range e.Values {
		line := "  " + v.Name
		if v.Discriminant != nil {
			line += fmt.Sprintf(" = %d", *v.Discriminant)
		}
		if i != len(e.Values)-1 {
			line += ","
		}
		bw.writeLine(line)
	}
	bw.writeLine(fmt.Sprintf("} %s;", e.Name))
}

func writeAggregate(bw *blockWriter, a *model.Aggregate) {
	bw.writeLine(fmt.Sprintf("typedef struct %s {", a.Name))
	for _, f := range a.Fields {
		bw.writeLine("  " + declareWithName(f.Type, f.Name) + ";")
	}
	bw.writeLine(fmt.Sprintf("} %s;", a.Name))
}

func writeFunctionPrototype(bw *blockWriter, fn *model.Function) {
	args := make([]string, len(fn.Args))
	for i, a := range fn.Args {
		args[i] = declareWithName(a.Type, a.Name)
	}
	argList := "void"
	if len(args) > 0 {
		argList = strings.Join(args, ", ")
	}
	bw.writeLine(declareWithName(fn.Return, fmt.Sprintf("%s(%s)", fn.Name, argList)) + ";")
}
