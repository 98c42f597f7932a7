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

// ResolvePath probes the five item tables, in the fixed order enum,
// aggregate, opaque, typedef, specialization, and returns the first match.
// The second return value is false if p resolves to nothing.
//
// Intake guarantees at most one table holds a given name except when an
// opaque fallback shadows a would-be concrete entry, in which case the
// opaque entry is authoritative and this fixed probing order returns it only
// because intake never leaves both entries present at once (see intake.go).
func (l *Library) ResolvePath(p PathRef) (PathValue, bool) {
	name := string(p)
	if e, ok := l.enums.get(name); ok {
		return enumValue(e), true
	}
	if a, ok := l.aggregates.get(name); ok {
		return aggregateValue(a), true
	}
	if o, ok := l.opaques.get(name); ok {
		return opaqueValue(o), true
	}
	if t, ok := l.typedefs.get(name); ok {
		return typedefValue(t), true
	}
	if s, ok := l.specializations.get(name); ok {
		return specializationValue(s), true
	}
	return PathValue{}, false
}
