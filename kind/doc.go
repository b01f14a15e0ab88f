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

// Package kind defines the closed taxonomy of client-side failure kinds.
//
// A "kind" is the discriminant carried by a raw failure, such as
// "ValidationError" or "BusinessError". The set is fixed:
//
//   - ValidationError: malformed or invalid caller input (400);
//   - BusinessError: well-formed input rejected by domain rules (422);
//   - SystemError: internal or infrastructure failure (500).
//
// Any other discriminant, including the empty one carried by transport
// failures and timeouts, is unrecognized and resolves like SystemError.
//
// Lookups in this package are total: they never fail, they only degrade
// to the 500 fallback.
package kind
