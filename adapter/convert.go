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

package adapter

import (
	"fmt"
	"time"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/kind"
)

// ToView converts a classified record into its public wire shape.
//
// No redaction is performed: the view exposes exactly what the record
// contains. A nil record yields the zero view.
func ToView(e *clienterr.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Timestamp: e.Timestamp().UTC().Format(clienterr.TimestampLayout),
		Status:    e.Status(),
		Message:   e.Message(),
		Details:   e.Details(),
	}
}

// FromView rebuilds a classified record from its wire shape, e.g. one
// relayed by another process.
//
// The timestamp is parsed, never re-stamped. The kind is recovered from the
// status; a status outside the fixed set is rejected rather than coerced.
func FromView(v apis.ErrorView) (*clienterr.Error, error) {
	if !kind.ValidStatus(v.Status) {
		return nil, fmt.Errorf("adapter: status %d outside the classified set", v.Status)
	}
	at, err := time.Parse(time.RFC3339Nano, v.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("adapter: invalid timestamp %q: %w", v.Timestamp, err)
	}
	return clienterr.NewError(kind.ForStatus(v.Status), v.Message, v.Details, at), nil
}

// ToFailureView flattens a raw failure into the classifier input shape.
func ToFailureView(r *clienterr.Raw) apis.FailureView {
	if r == nil {
		return apis.FailureView{}
	}
	return apis.FailureView{Name: r.Name, Message: r.Message, Details: r.Details}
}

// FromFailureView builds a raw failure from its input shape, attaching
// cause when it is non-nil.
func FromFailureView(v apis.FailureView, cause error) *clienterr.Raw {
	return clienterr.Failure(v.Name, v.Message,
		clienterr.WithDetails(v.Details),
		clienterr.WithCause(cause),
	)
}
