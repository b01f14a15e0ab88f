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

import "dirpx.dev/clienterr"

// Classifier turns any raw failure into a classified record.
//
// Implementations must be total and concurrency-safe: Classify never
// panics and never returns nil, whatever it is handed, and an input that
// already is (or wraps) a *clienterr.Error comes back unchanged.
type Classifier interface {
	// Classify returns the classified record for raw.
	Classify(raw any) *clienterr.Error

	// Explain returns a human-readable trace of how raw would be resolved.
	// It has no side effects: no record is built and nothing is logged.
	Explain(raw any) string
}
