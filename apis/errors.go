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

package apis

// NamedError is an error that stamps a discriminant, e.g. "ValidationError".
//
// The discriminant is the only input the taxonomy lookup uses. Callers
// should return the exact type name the failure represents and not try to
// "fix" its casing: unrecognized names resolve to the 500 fallback.
type NamedError interface {
	error

	// ErrorName returns the discriminant. May be empty.
	ErrorName() string
}

// DetailedError is an error that carries a structured payload.
//
// The payload is handed through classification unexamined; it should
// survive a JSON round-trip if it is meant to reach a wire.
type DetailedError interface {
	error

	// ErrorDetails returns the payload. May return nil.
	ErrorDetails() any
}
