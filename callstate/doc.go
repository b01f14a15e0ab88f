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

// Package callstate tracks the loading/data/error state of an asynchronous
// operation on behalf of a UI component or any other caller that wants to
// observe a call rather than handle its failure.
//
// A Call resets its state before every invocation, writes it once more
// when the invocation settles, and never lets a failure escape: whatever
// the operation returns or panics with is classified and stored in the
// Err field, and the caller gets (zero, false).
//
// Overlapping invocations on one Call are not coordinated: the one that
// settles last wins. Serialize invocations, use one Call per concurrent
// request, or opt into WithLatestOnly to drop superseded settlements.
package callstate
