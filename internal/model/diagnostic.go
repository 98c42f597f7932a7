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
	"context"
	"fmt"
	"log/slog"
)

// Severity classifies a Diagnostic per spec.md §7.
type Severity int

const (
	// SeverityWarning does not alter behavior.
	SeverityWarning Severity = iota
	// SeverityItem skips the offending item and continues.
	SeverityItem
	// SeverityFatal aborts the run.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityItem:
		return "item"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Level maps a Severity to the slog level it logs at: a warning (behavior
// unchanged) is info-grade detail, an item-level diagnostic (something was
// skipped) is worth a warning by default, and fatal would be an error — in
// practice fatal conditions abort the run as plain Go errors before ever
// reaching a logger, so Level is only ever consulted for the other two.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityFatal:
		return slog.LevelError
	case SeverityItem:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Diagnostic is a human-readable message carrying a severity, as described
// in spec.md §7: errors are strings plus a severity, never a typed
// exception hierarchy.
type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) Error() string {
	return d.Message
}

func newDiagnostic(severity Severity, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: severity, Message: fmt.Sprintf(format, args...)}
}

// logDiagnostic emits d through logger at the slog level its severity maps
// to, with kv appended as structured fields (name, crate, and the like).
// The CLI's -v count (spec.md §6) decides the handler's minimum level, so
// whether d is actually printed is a function of both its severity and the
// verbosity the user asked for, as spec.md §7 describes.
func logDiagnostic(logger *slog.Logger, d Diagnostic, kv ...any) {
	logger.Log(context.Background(), d.Severity.Level(), d.Message, kv...)
}
