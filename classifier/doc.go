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

// Package classifier turns raw failures into classified records.
//
// # Overview
//
// Every failure that reaches a caller of the client pipeline has gone
// through Classify exactly once. The classifier reads three optional fields
// from whatever it is handed:
//
//   - a discriminant ("name"), looked up in the kind taxonomy;
//   - a message, falling back to "Internal Server Error";
//   - a details payload, passed through unexamined.
//
// It then stamps the classification instant, emits one diagnostic log
// record and returns an immutable *clienterr.Error.
//
// # Accepted input
//
// Classify is total. It reads:
//
//   - *clienterr.Error, or an error chain containing one: returned as-is;
//   - *clienterr.Raw, or an error chain containing one;
//   - any error implementing apis.NamedError / apis.DetailedError;
//   - any other error (message only);
//   - apis.FailureView and JSON-decoded objects (map[string]any);
//   - JSON text ([]byte, json.RawMessage);
//   - nil and anything else, which degrade to 500 with the default message.
//
// A panic while reading the input (a nil receiver inside an Error method,
// say) also degrades to the default record.
//
// # Resolution model
//
// The status is resolved in the following order:
//
//  1. passthrough: the input is already classified;
//  2. taxonomy: the discriminant is one of the three known kinds;
//  3. alias: the discriminant was registered with WithAlias;
//  4. fallback: anything else resolves to 500.
//
// # Diagnostics
//
// Explain returns a human-readable trace of which tier matched. It is
// meant for inspection and tests, not for stable machine parsing.
//
// # Concurrency
//
// A Classifier is immutable after New except for the monotonic clock
// guard, which is mutex-protected. One instance can be shared process-wide.
package classifier
