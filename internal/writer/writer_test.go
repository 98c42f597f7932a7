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
	"strings"
	"testing"

	"github.com/chdrgen/chdrgen/internal/config"
	"github.com/chdrgen/chdrgen/internal/model"
)

func int64ptr(v int64) *int64 { return &v }

func TestDeclareWithNamePrimitive(t *testing.T) {
	got := declareWithName(model.Primitive(model.Int32), "x")
	if want := "int32_t x"; got != want {
		t.Errorf("declareWithName() = %q, want %q", got, want)
	}
}

func TestDeclareWithNamePointer(t *testing.T) {
	got := declareWithName(model.Pointer(true, model.Primitive(model.UInt8)), "buf")
	if want := "uint8_t *const buf"; got != want {
		t.Errorf("declareWithName() = %q, want %q", got, want)
	}
}

func TestDeclareWithNameArray(t *testing.T) {
	got := declareWithName(model.Array(model.Primitive(model.Int32), 4), "xs")
	if want := "int32_t xs[4]"; got != want {
		t.Errorf("declareWithName() = %q, want %q", got, want)
	}
}

func TestDeclareWithNameFuncPointer(t *testing.T) {
	fp := model.FuncPointer([]model.Type{model.Primitive(model.Int32)}, model.Primitive(model.Void))
	got := declareWithName(fp, "cb")
	if want := "void (*cb)(int32_t)"; got != want {
		t.Errorf("declareWithName() = %q, want %q", got, want)
	}
}

func TestDeclareWithNameNoArgsFuncPointer(t *testing.T) {
	fp := model.FuncPointer(nil, model.Primitive(model.Void))
	got := declareWithName(fp, "cb")
	if want := "void (*cb)(void)"; got != want {
		t.Errorf("declareWithName() = %q, want %q", got, want)
	}
}

func TestWriteHeaderLayoutCOrdering(t *testing.T) {
	bindings := &model.BuiltBindings{
		Functions: []*model.Function{
			{Name: "widget_new", Return: model.Primitive(model.Int32)},
		},
	}
	var out strings.Builder
	err := Write(&out, bindings, Options{
		Language:       config.LangC,
		IncludeGuard:   "WIDGETS_H",
		AutogenWarning: "/* auto-generated */",
	})
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	pos := 0
	for _, want := range []string{
		"#ifndef WIDGETS_H",
		"#define WIDGETS_H",
		"#include <stdint.h>",
		"#include <stdbool.h>",
		"int32_t widget_new(void);",
		"#endif /* WIDGETS_H */",
	} {
		i := strings.Index(got[pos:], want)
		if i < 0 {
			t.Errorf("output missing %q after offset %d; got:\n%s", want, pos, got)
			continue
		}
		pos += i + len(want)
	}
	if strings.Contains(got, `extern "C"`) {
		t.Errorf("C output should not wrap in extern \"C\":\n%s", got)
	}
}

func TestWriteHeaderLayoutCxxWrapsExternC(t *testing.T) {
	bindings := &model.BuiltBindings{
		Functions: []*model.Function{
			{Name: "widget_new", Return: model.Primitive(model.Int32)},
		},
	}
	var out strings.Builder
	err := Write(&out, bindings, Options{
		Language:     config.LangCxx,
		IncludeGuard: "WIDGETS_H",
	})
	if err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, `extern "C" {`) || !strings.Contains(got, `} // extern "C"`) {
		t.Errorf("C++ output should wrap declarations in extern \"C\":\n%s", got)
	}
	if strings.Contains(got, "stdbool.h") {
		t.Errorf("C++ output should not include stdbool.h:\n%s", got)
	}
}

func TestWriteSkipsExternDeclFunctions(t *testing.T) {
	bindings := &model.BuiltBindings{
		Functions: []*model.Function{
			{Name: "widget_new", Return: model.Primitive(model.Int32), ExternDecl: false},
			{Name: "widget_callback_host", Return: model.Primitive(model.Void), ExternDecl: true},
		},
	}
	var out strings.Builder
	if err := Write(&out, bindings, Options{Language: config.LangC, IncludeGuard: "WIDGETS_H"}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "widget_new") {
		t.Errorf("expected widget_new prototype, got:\n%s", got)
	}
	if strings.Contains(got, "widget_callback_host") {
		t.Errorf("extern_decl function must not be emitted as a prototype, got:\n%s", got)
	}
}

func TestWriteOmitsIncludeGuardWhenEmpty(t *testing.T) {
	bindings := &model.BuiltBindings{
		Functions: []*model.Function{
			{Name: "widget_new", Return: model.Primitive(model.Int32)},
		},
	}
	var out strings.Builder
	if err := Write(&out, bindings, Options{Language: config.LangC}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, unwanted := range []string{"#ifndef", "#define", "#endif"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("an empty IncludeGuard must suppress guard lines entirely, found %q in:\n%s", unwanted, got)
		}
	}
	if !strings.Contains(got, "int32_t widget_new(void);") {
		t.Errorf("expected the function prototype to still be written, got:\n%s", got)
	}
}

func TestWriteEnumAndStructAndOpaque(t *testing.T) {
	bindings := &model.BuiltBindings{
		Items: []model.PathValue{
			{Kind: model.ValueEnum, Enum: &model.Enumeration{
				Name: "Color",
				Values: []model.EnumValue{
					{Name: "ColorRed"},
					{Name: "ColorBlue", Discriminant: int64ptr(5)},
				},
			}},
			{Kind: model.ValueOpaque, Opaque: &model.OpaqueAggregate{Name: "Handle"}},
			{Kind: model.ValueAggregate, Aggregate: &model.Aggregate{
				Name:   "Point",
				Fields: []model.Field{{Name: "x", Type: model.Primitive(model.Int32)}},
			}},
		},
	}
	var out strings.Builder
	if err := Write(&out, bindings, Options{Language: config.LangC, IncludeGuard: "X_H"}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"typedef enum Color {",
		"ColorRed,",
		"ColorBlue = 5",
		"} Color;",
		"typedef struct Handle Handle;",
		"typedef struct Point {",
		"  int32_t x;",
		"} Point;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q; got:\n%s", want, got)
		}
	}
}
