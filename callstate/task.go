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

package callstate

import "context"

// Task is an invocation started with Go.
type Task[T any] struct {
	done  chan struct{}
	value T
	ok    bool
}

// Done is closed once the invocation has settled.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the invocation settles and returns what Invoke would
// have returned.
func (t *Task[T]) Wait() (T, bool) {
	<-t.done
	return t.value, t.ok
}

// WaitContext is Wait bounded by ctx. It reports ctx.Err() if ctx ends
// first; the invocation itself keeps running.
func (t *Task[T]) WaitContext(ctx context.Context) (T, bool, error) {
	select {
	case <-t.done:
		return t.value, t.ok, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}
