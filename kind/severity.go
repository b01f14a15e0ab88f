/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package kind

import "log/slog"

// Severity ranks how much attention a classified failure needs.
type Severity int

const (
	// SeverityLow is caller-correctable input, e.g. a rejected form field.
	SeverityLow Severity = iota

	// SeverityMedium is a domain rejection the caller may work around.
	SeverityMedium

	// SeverityHigh is an internal, infrastructure or unclassified failure.
	SeverityHigh
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the log level diagnostic records of this severity use.
func (s Severity) Level() slog.Level {
	if s >= SeverityHigh {
		return slog.LevelError
	}
	return slog.LevelWarn
}
