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

import "net/http"

// Recognized discriminants.
//
// The status each one maps to is fixed and is the only value a classified
// record can carry: 400, 422 or 500.
const (
	// Unknown is the zero value: no discriminant, or one outside the set.
	// Transport failures and timeouts land here.
	//
	// Mapped to HTTP 500.
	Unknown Kind = ""

	// Validation indicates malformed or invalid caller input: a field
	// violates format, range or presence constraints.
	//
	// Mapped to HTTP 400.
	Validation Kind = "ValidationError"

	// Business indicates well-formed input that domain rules rejected,
	// e.g. a quota or limit was exceeded.
	//
	// Mapped to HTTP 422.
	Business Kind = "BusinessError"

	// System indicates an internal or infrastructure failure.
	//
	// Mapped to HTTP 500.
	System Kind = "SystemError"
)

// FallbackStatus is the status for System and for every unrecognized
// discriminant.
const FallbackStatus = http.StatusInternalServerError

// Status returns the status code for k. Unknown maps to FallbackStatus.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Business:
		return http.StatusUnprocessableEntity
	default:
		return FallbackStatus
	}
}

// Severity returns the default severity for k.
func (k Kind) Severity() Severity {
	switch k {
	case Validation:
		return SeverityLow
	case Business:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// ForStatus returns the kind that owns a status code from the fixed set.
// 500 and anything outside the set return System.
func ForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return Validation
	case http.StatusUnprocessableEntity:
		return Business
	default:
		return System
	}
}

// ValidStatus reports whether status is one of 400, 422 or 500.
func ValidStatus(status int) bool {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError:
		return true
	default:
		return false
	}
}
