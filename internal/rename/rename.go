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

// Package rename implements the identifier renaming rules applied to
// aggregate fields, enum variants, and function arguments during emission.
//
// Each Rule is a pure function of (rule, source style, role). Two entry
// points exist because source identifiers arrive in two different
// conventions: enum variants are PascalCase, fields and arguments are
// snake_case.
package rename

import (
	"fmt"
	"strings"
	"unicode"
)

// Rule is one of the renaming conventions a binding consumer may request.
type Rule int

const (
	None Rule = iota
	GeckoCase
	LowerCase
	UpperCase
	PascalCase
	CamelCase
	SnakeCase
	ScreamingSnakeCase
)

func (r Rule) String() string {
	switch r {
	case None:
		return "None"
	case GeckoCase:
		return "GeckoCase"
	case LowerCase:
		return "LowerCase"
	case UpperCase:
		return "UpperCase"
	case PascalCase:
		return "PascalCase"
	case CamelCase:
		return "CamelCase"
	case SnakeCase:
		return "SnakeCase"
	case ScreamingSnakeCase:
		return "ScreamingSnakeCase"
	default:
		return "Unknown"
	}
}

// Role identifies the kind of identifier being renamed. It supplies the
// GeckoCase prefix.
type Role int

const (
	RoleAggregateField Role = iota
	RoleEnumVariant
	RoleFunctionArg
)

func (role Role) prefix() string {
	switch role {
	case RoleAggregateField:
		return "m"
	case RoleEnumVariant:
		return ""
	case RoleFunctionArg:
		return "a"
	default:
		return ""
	}
}

// ruleAliases maps every recognized spelling of a rule name to the Rule it
// selects. Unknown strings are a configuration error (ParseRule).
var ruleAliases = map[string]Rule{
	"none": None,
	"None": None,

	"mGeckoCase": GeckoCase,
	"GeckoCase":  GeckoCase,
	"gecko_case": GeckoCase,

	"lowercase": LowerCase,
	"LowerCase": LowerCase,
	"lower_case": LowerCase,

	"UPPERCASE": UpperCase,
	"UpperCase": UpperCase,
	"upper_case": UpperCase,

	"PascalCase":  PascalCase,
	"pascal_case": PascalCase,

	"camelCase":  CamelCase,
	"CamelCase":  CamelCase,
	"camel_case": CamelCase,

	"snake_case": SnakeCase,
	"SnakeCase":  SnakeCase,

	"SCREAMING_SNAKE_CASE": ScreamingSnakeCase,
	"ScreamingSnakeCase":   ScreamingSnakeCase,
	"screaming_snake_case": ScreamingSnakeCase,
}

// ParseRule parses a rule name as it may appear in a configuration file or an
// annotation directive. An empty string parses to None.
func ParseRule(s string) (Rule, error) {
	if s == "" {
		return None, nil
	}
	rule, ok := ruleAliases[s]
	if !ok {
		return None, fmt.Errorf("unrecognized rename rule: %q", s)
	}
	return rule, nil
}

// ApplyToPascalCase renames text that arrives already in PascalCase (used for
// enum variants).
func ApplyToPascalCase(rule Rule, text string, role Role) string {
	if text == "" {
		return ""
	}
	switch rule {
	case None:
		return text
	case GeckoCase:
		return role.prefix() + text
	case LowerCase:
		return strings.ToLower(text)
	case UpperCase:
		return strings.ToUpper(text)
	case PascalCase:
		return text
	case CamelCase:
		runes := []rune(text)
		return strings.ToLower(string(runes[0])) + string(runes[1:])
	case SnakeCase:
		return insertUnderscoresBeforeUppercase(text, false)
	case ScreamingSnakeCase:
		return insertUnderscoresBeforeUppercase(text, true)
	default:
		return text
	}
}

func insertUnderscoresBeforeUppercase(text string, scream bool) string {
	var b strings.Builder
	for i, r := range text {
		if unicode.IsUpper(r) && i != 0 {
			b.WriteByte('_')
		}
		if scream {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ApplyToSnakeCase renames text that arrives already in snake_case (used for
// aggregate fields and function arguments).
func ApplyToSnakeCase(rule Rule, text string, role Role) string {
	if text == "" {
		return ""
	}
	switch rule {
	case None:
		return text
	case GeckoCase:
		stripped := text
		if strings.HasPrefix(stripped, "_") {
			stripped = stripped[1:]
		}
		return role.prefix() + snakeToPascalOrCamel(stripped, true)
	case LowerCase:
		return strings.ToLower(text)
	case UpperCase:
		return strings.ToUpper(text)
	case PascalCase:
		return snakeToPascalOrCamel(text, true)
	case CamelCase:
		return snakeToPascalOrCamel(text, false)
	case SnakeCase:
		return text
	case ScreamingSnakeCase:
		return strings.ToUpper(text)
	default:
		return text
	}
}

// snakeToPascalOrCamel upper-cases the rune following every underscore (and
// position 0), drops the underscores, and — unless pascal is requested —
// lower-cases the very first produced rune.
func snakeToPascalOrCamel(text string, pascal bool) string {
	var b strings.Builder
	upperNext := true
	for _, r := range text {
		if r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			b.WriteRune(r)
		}
	}
	result := b.String()
	if !pascal && result != "" {
		runes := []rune(result)
		result = string(unicode.ToLower(runes[0])) + string(runes[1:])
	}
	return result
}
