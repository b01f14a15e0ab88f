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

// Package httpx is the outbound HTTP client of the failure pipeline.
//
// Every failure that surfaces from a call (a request that cannot be
// built, a connection error, a timeout, a non-2xx response, a body that
// does not decode) is turned into a raw failure, passed through the
// classifier and returned as a *clienterr.Error. Callers downstream of a
// Client never see a raw transport error.
//
// Successful responses pass through unmodified.
package httpx
