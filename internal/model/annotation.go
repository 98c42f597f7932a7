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
	"fmt"
	"strings"
)

// directivePrefix marks a documentation-comment line as carrying annotation
// directives rather than prose, e.g. `/// chdrgen:rename=false`.
const directivePrefix = "chdrgen:"

// ParseAnnotations parses the documentation-comment block attached to a
// declaration into an AnnotationSet. Each line beginning with
// "chdrgen:" holds one or more comma-separated directives of the form
// `key` (a boolean true) or `key=value` (a string, unless value is exactly
// "true" or "false"). Lines without the prefix are ordinary prose and are
// ignored.
//
// A malformed directive (an empty key, or a key repeated with conflicting
// values) makes the whole block malformed: the caller must treat this as a
// Warning (spec.md §7) and use an empty AnnotationSet instead.
func ParseAnnotations(doc string) (AnnotationSet, error) {
	set := NewAnnotationSet()
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, directivePrefix) {
			continue
		}
		body := strings.TrimPrefix(line, directivePrefix)
		for _, directive := range strings.Split(body, ",") {
			directive = strings.TrimSpace(directive)
			if directive == "" {
				continue
			}
			key, value, hasValue := strings.Cut(directive, "=")
			key = strings.ToLower(strings.TrimSpace(key))
			if key == "" {
				return nil, fmt.Errorf("malformed annotation directive %q: empty key", directive)
			}
			val := AnnotationValue{IsBool: true, Bool: true}
			if hasValue {
				value = strings.TrimSpace(value)
				switch value {
				case "true":
				case "false":
					val = AnnotationValue{IsBool: true, Bool: false}
				default:
					val = AnnotationValue{String: value}
				}
			}
			if prev, seen := set[key]; seen && prev != val {
				return nil, fmt.Errorf("malformed annotation directive %q: conflicting values for key %q", directive, key)
			}
			set[key] = val
		}
	}
	return set, nil
}
