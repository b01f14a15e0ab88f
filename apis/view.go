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

// FailureView is the wire-adjacent input shape of classification:
//
//	{ name?: string, message?: string, details?: any }
//
// It is what a JSON-decoded failure body, a gRPC status or a CLI invocation
// turns into before it reaches the classifier.
type FailureView struct {
	// Name is the discriminant. Empty means unclassified.
	Name string `json:"name,omitempty"`
	// Message is the human-oriented description. Empty falls back to the
	// default message at classification time.
	Message string `json:"message,omitempty"`
	// Details is an optional payload.
	Details any `json:"details,omitempty"`
}

// ErrorView is the serializable form of a classified record:
//
//	{ timestamp: string, status: 400|422|500, message: string, details: any|null }
type ErrorView struct {
	// Timestamp is ISO-8601 UTC with millisecond precision.
	Timestamp string `json:"timestamp"`
	// Status is one of 400, 422 or 500.
	Status int `json:"status"`
	// Message is never empty on a view produced by this module.
	Message string `json:"message"`
	// Details is null when the source carried none.
	Details any `json:"details"`
}
