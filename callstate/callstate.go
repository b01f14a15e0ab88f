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

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/classifier"
	"dirpx.dev/clienterr/site"
)

// Operation is the unit of work a Call wraps. Arguments are captured by
// the closure.
type Operation[T any] func(ctx context.Context) (T, error)

// State is a snapshot of a Call.
//
// Loading is true strictly between an invocation's start and its settle.
// Data and Err are never both set.
type State[T any] struct {
	Loading bool             `json:"loading"`
	Data    *T               `json:"data"`
	Err     *clienterr.Error `json:"error"`
}

// Call is the call-state orchestrator. The zero value is not usable; use New.
type Call[T any] struct {
	classifier apis.Classifier
	logger     *slog.Logger
	site       site.Site
	latestOnly bool

	mu      sync.Mutex
	state   State[T]
	gen     uint64
	closed  bool
	subs    map[uint64]func(State[T])
	nextSub uint64
}

// New returns an empty Call: not loading, no data, no error.
func New[T any](opts ...Option) *Call[T] {
	o := options{classifier: classifier.Default, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Call[T]{
		classifier: o.classifier,
		logger:     o.logger,
		site:       o.site,
		latestOnly: o.latestOnly,
		subs:       make(map[uint64]func(State[T])),
	}
}

// Invoke runs op on the calling goroutine.
//
//  1. State is reset: Loading=true, Data=nil, Err=nil.
//  2. op runs with ctx.
//  3. On success Data is set and (result, true) is returned.
//  4. On failure, including a panic, the failure is classified (an
//     already-classified record is kept as-is), Err is set and
//     (zero, false) is returned. The failure is never returned.
//
// Loading is false once Invoke returns.
func (c *Call[T]) Invoke(ctx context.Context, op Operation[T]) (T, bool) {
	gen := c.begin()
	v, err := run(ctx, op)
	return c.settle(gen, v, err)
}

// Go starts op on a new goroutine and returns its Task. The reset happens
// before Go returns, so no stale Data or Err is visible alongside the new
// Loading=true.
func (c *Call[T]) Go(ctx context.Context, op Operation[T]) *Task[T] {
	gen := c.begin()
	t := &Task[T]{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		v, err := run(ctx, op)
		t.value, t.ok = c.settle(gen, v, err)
	}()
	return t
}

// State returns a snapshot of the current state.
func (c *Call[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether an invocation is in flight.
func (c *Call[T]) Loading() bool { return c.State().Loading }

// Data returns the last successful result, or nil.
func (c *Call[T]) Data() *T { return c.State().Data }

// Err returns the last classified failure, or nil.
func (c *Call[T]) Err() *clienterr.Error { return c.State().Err }

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that changed the state, outside any lock.
// The returned function unregisters fn.
func (c *Call[T]) Subscribe(fn func(State[T])) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// Close discards the Call. In-flight invocations still run and still
// return their result to their own caller, but their settlement no longer
// touches the state, and subscribers are dropped.
func (c *Call[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.subs = make(map[uint64]func(State[T]))
}

// begin resets the state and returns the invocation's generation.
func (c *Call[T]) begin() uint64 {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	if c.closed {
		c.mu.Unlock()
		return gen
	}
	c.state = State[T]{Loading: true}
	snap, subs := c.state, c.subscribers()
	c.mu.Unlock()

	c.logger.Debug("call started", "site", c.site, "generation", gen)
	notify(subs, snap)
	return gen
}

// settle writes the outcome of invocation gen and returns what the
// invoking caller should see.
func (c *Call[T]) settle(gen uint64, v T, err error) (T, bool) {
	var (
		rec  *clienterr.Error
		next State[T]
	)
	if err != nil {
		rec = c.classifier.Classify(err)
		next = State[T]{Err: rec}
	} else {
		data := v
		next = State[T]{Data: &data}
	}

	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
	case c.latestOnly && gen != c.gen:
		c.mu.Unlock()
		c.logger.Debug("call superseded", "site", c.site, "generation", gen)
	default:
		c.state = next
		subs := c.subscribers()
		c.mu.Unlock()
		if rec != nil {
			c.logger.Debug("call failed", "site", c.site, "generation", gen, "status", rec.Status())
		} else {
			c.logger.Debug("call succeeded", "site", c.site, "generation", gen)
		}
		notify(subs, next)
	}

	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// subscribers copies the subscriber set. Callers hold c.mu.
func (c *Call[T]) subscribers() []func(State[T]) {
	out := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		out = append(out, fn)
	}
	return out
}

func notify[T any](subs []func(State[T]), s State[T]) {
	for _, fn := range subs {
		fn(s)
	}
}

// run calls op, turning a panic into an error.
func run[T any](ctx context.Context, op Operation[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v = zero
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = clienterr.Unclassified(fmt.Sprint(r))
		}
	}()
	if op == nil {
		return v, clienterr.Unclassified("callstate: nil operation")
	}
	return op(ctx)
}
