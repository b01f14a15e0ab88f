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

package barrier

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"dirpx.dev/clienterr/site"
)

// GenericMessage is shown when a fault carries no message of its own.
const GenericMessage = "An unexpected error occurred. Please try again later."

// State is the barrier state.
type State int

const (
	// Healthy is the initial state: build output is returned unmodified.
	Healthy State = iota
	// Faulted is terminal: the fallback is returned.
	Faulted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Fault is what a barrier captured when build panicked.
type Fault struct {
	// Value is the recovered panic value.
	Value any
	// Message is taken from Value; empty when Value has none.
	Message string
	// Stack is the goroutine stack at the point of capture.
	Stack []byte
	// Barrier and Site identify where construction failed.
	Barrier string
	Site    site.Site
	// At is the capture instant.
	At time.Time
}

// Display returns Message, or GenericMessage when it is empty.
func (f *Fault) Display() string {
	if f == nil || f.Message == "" {
		return GenericMessage
	}
	return f.Message
}

// Error implements error so a fault can be handed to error-aware code.
func (f *Fault) Error() string { return f.Display() }

// Unwrap returns Value when it is an error.
func (f *Fault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

// Barrier is a construction-time fault interceptor with a one-way
// Healthy -> Faulted transition.
type Barrier[T any] struct {
	build    func() T
	fallback func(*Fault) T
	opts     options

	mu    sync.Mutex
	fault *Fault
}

// New returns a Healthy barrier around build. fallback renders the
// Faulted state; a nil fallback renders the zero T.
func New[T any](build func() T, fallback func(*Fault) T, opts ...Option) *Barrier[T] {
	o := options{logger: slog.Default(), clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if fallback == nil {
		fallback = func(*Fault) T {
			var zero T
			return zero
		}
	}
	return &Barrier[T]{build: build, fallback: fallback, opts: o}
}

// Render returns the build output while Healthy and the fallback once
// Faulted. A panic in build trips the barrier and the same call returns
// the fallback. A panic with http.ErrAbortHandler is re-raised and leaves
// the barrier Healthy.
func (b *Barrier[T]) Render() T {
	if f := b.Fault(); f != nil {
		return b.fallback(f)
	}
	out, f := b.construct()
	if f == nil {
		return out
	}
	return b.fallback(b.trip(f))
}

// State returns Healthy or Faulted.
func (b *Barrier[T]) State() State {
	if b.Fault() != nil {
		return Faulted
	}
	return Healthy
}

// Fault returns the captured fault, or nil while Healthy.
func (b *Barrier[T]) Fault() *Fault {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fault
}

// construct runs build and captures a panic as a fault.
func (b *Barrier[T]) construct() (out T, f *Fault) {
	defer func() {
		if r := recover(); r != nil {
			if r == http.ErrAbortHandler {
				panic(r)
			}
			var zero T
			out = zero
			f = &Fault{
				Value:   r,
				Message: safeMessage(r),
				Stack:   debug.Stack(),
				Barrier: b.opts.name,
				Site:    b.opts.site,
				At:      b.opts.clock(),
			}
		}
	}()
	if b.build == nil {
		panic("barrier: nil build function")
	}
	return b.build(), nil
}

// trip performs the transition. The first fault wins; a concurrent later
// one is dropped and the recorded fault is returned.
func (b *Barrier[T]) trip(f *Fault) *Fault {
	b.mu.Lock()
	if b.fault != nil {
		first := b.fault
		b.mu.Unlock()
		return first
	}
	b.fault = f
	b.mu.Unlock()

	b.log(f)
	return f
}

// log is best-effort: a panicking handler does not escape.
func (b *Barrier[T]) log(f *Fault) {
	defer func() { _ = recover() }()
	b.opts.logger.Error("render fault",
		"barrier", f.Barrier,
		"site", f.Site,
		"fault", f.Value,
		"message", f.Display(),
		"stack", string(f.Stack),
	)
}

// safeMessage is message for values whose Error or String method may
// itself panic, e.g. a typed nil pointer. Such values get no message.
func safeMessage(v any) (msg string) {
	defer func() {
		if recover() != nil {
			msg = ""
		}
	}()
	return message(v)
}

// message extracts a message from a panic value.
func message(v any) string {
	switch v := v.(type) {
	case error:
		return v.Error()
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}
