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

// Package barrier is a supervisor boundary around construction work.
//
// A Barrier wraps a build function, typically one that renders a view.
// While Healthy it returns whatever build returns. If build panics, the
// barrier captures the fault, logs it once and switches to Faulted; from
// then on it returns the fallback for that fault and never calls build
// again. There is no automatic recovery: to try again, construct a new
// Barrier.
//
// Faults are not classified. A rendering fault has no discriminant, so it
// bypasses the classifier and is handled here alone.
//
// Only synchronous faults raised by build itself are intercepted.
// Goroutines build starts, and errors it returns as values, are not.
package barrier
