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

// Package clienterr is the client-side failure model for dirpx front-ends.
//
// Two shapes flow through it:
//
//   - Raw: a failure as it was raised, optionally tagged with a discriminant
//     such as "ValidationError" (see package kind);
//   - Error: the classified record every caller observes once a failure has
//     crossed the first interception point (transport adapter or call-state
//     orchestrator).
//
// Error values are immutable. The classifier package is the only place that
// should build them from arbitrary input.
package clienterr

import (
	"encoding/json"
	"fmt"
	"time"

	"dirpx.dev/clienterr/kind"
)

// DefaultMessage is the message of every classified record whose source
// failure carried no message.
const DefaultMessage = "Internal Server Error"

// TimestampLayout is the wire layout of Error timestamps: ISO-8601 in UTC
// with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Error is the classified, normalized failure record.
//
// It carries:
//   - Status: one of 400, 422 or 500;
//   - Message: non-empty human-readable description;
//   - Details: optional payload taken unexamined from the source failure;
//   - Timestamp: the instant of classification.
//
// Fields are unexported and there are no mutators: consumers only read.
// WithSource returns a copy.
type Error struct {
	kind      kind.Kind
	status    int
	message   string
	details   any
	timestamp time.Time
	source    any
}

// NewError builds a classified record for kind k.
//
// The status is always derived from k, so a record can never carry a status
// outside the fixed set. An empty message is replaced by DefaultMessage.
func NewError(k kind.Kind, message string, details any, at time.Time) *Error {
	if message == "" {
		message = DefaultMessage
	}
	return &Error{
		kind:      k,
		status:    k.Status(),
		message:   message,
		details:   details,
		timestamp: at,
	}
}

// Kind returns the resolved taxonomy kind. Unrecognized discriminants
// resolve to kind.Unknown.
func (e *Error) Kind() kind.Kind { return e.kind }

// Status returns the status code: 400, 422 or 500.
func (e *Error) Status() int { return e.status }

// Message returns the human-readable message. Never empty.
func (e *Error) Message() string { return e.message }

// Details returns the payload of the source failure, or nil.
func (e *Error) Details() any { return e.details }

// Timestamp returns the classification instant.
func (e *Error) Timestamp() time.Time { return e.timestamp }

// Severity returns the default severity of the record's kind.
func (e *Error) Severity() kind.Severity { return e.kind.Severity() }

// Source returns the raw failure the record was classified from, if the
// classifier attached it.
func (e *Error) Source() any { return e.source }

// WithSource returns a shallow copy of e with the raw source attached.
// The original record is not modified.
func (e *Error) WithSource(src any) *Error {
	cp := *e
	cp.source = src
	return &cp
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<status>: <message>
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d: %s", e.status, e.message)
}

// Unwrap returns the source failure when it is itself an error, so
// errors.Is / errors.As still reach transport causes such as
// context.DeadlineExceeded.
func (e *Error) Unwrap() error {
	if err, ok := e.source.(error); ok {
		return err
	}
	return nil
}

// wireError is the JSON shape of a classified record.
type wireError struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Details   any    `json:"details"`
}

// MarshalJSON implements json.Marshaler.
//
// Only the four public fields are emitted; details is always present and
// null when the source carried none.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireError{
		Timestamp: e.timestamp.UTC().Format(TimestampLayout),
		Status:    e.status,
		Message:   e.message,
		Details:   e.details,
	})
}
