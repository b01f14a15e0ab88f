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

// Package apis defines the public Go-level contracts of the client-side
// failure pipeline.
//
// Transport adapters (httpx, grpcx), the call-state orchestrator and user
// code target these small interfaces and view types rather than a concrete
// classifier. A raw failure does not have to be a clienterr.Raw to be
// classified: any error that implements NamedError and/or DetailedError is
// read the same way.
//
// This package must remain lightweight and only contains interfaces and
// very small view types.
package apis
