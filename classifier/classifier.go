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

package classifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/kind"
)

// ErrAliasInvalid is returned by New when an alias is empty, shadows a
// taxonomy name or points outside the known kinds.
var ErrAliasInvalid = errors.New("classifier: invalid alias")

// Resolution tiers reported by Explain.
const (
	sourcePassthrough = "passthrough"
	sourceTaxonomy    = "taxonomy"
	sourceAlias       = "alias"
	sourceFallback    = "fallback"
)

// Classifier is the normalizer at the heart of the pipeline.
type Classifier struct {
	aliases map[string]kind.Kind
	logger  *slog.Logger
	clock   func() time.Time

	// mu guards last, the most recent instant handed out. Timestamps never
	// go backwards across sequential classifications.
	mu   sync.Mutex
	last time.Time
}

var _ apis.Classifier = (*Classifier)(nil)

// New constructs a Classifier snapshot.
//
// Build process overview:
//
//  1. Apply user-provided options to a fresh builder.
//  2. Validate aliases: non-empty, not a taxonomy name, onto a known kind.
//  3. Freeze the alias table into a fresh map.
func New(opts ...Option) (*Classifier, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	aliases := make(map[string]kind.Kind, len(b.aliases))
	for name, k := range b.aliases {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrAliasInvalid)
		}
		if _, known := kind.Lookup(name); known {
			return nil, fmt.Errorf("%w: %q is a taxonomy name", ErrAliasInvalid, name)
		}
		if err := kind.Validate(k); err != nil {
			return nil, fmt.Errorf("%w: %q -> %q: %v", ErrAliasInvalid, name, k, err)
		}
		aliases[name] = k
	}

	return &Classifier{
		aliases: aliases,
		logger:  b.logger,
		clock:   b.clock,
	}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) *Classifier {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the classified record for raw.
//
// Resolution order (highest to lowest):
//  1. already classified: returned unchanged, nothing is logged;
//  2. discriminant in the taxonomy;
//  3. discriminant registered as an alias;
//  4. fallback to 500.
//
// The message falls back to clienterr.DefaultMessage, details pass through.
// Classify never panics and never returns nil.
func (c *Classifier) Classify(raw any) *clienterr.Error {
	if e, ok := passthrough(raw); ok {
		return e
	}
	f := read(raw)
	k, _ := c.resolve(f.name)
	e := clienterr.NewError(k, f.message, f.details, c.stamp()).WithSource(raw)
	c.log(e, raw)
	return e
}

// Explain produces a textual trace of how raw would be classified.
//
// Example output:
//
//	input=*clienterr.Raw name="ValidationError"
//	status: source=taxonomy kind="ValidationError" -> 400
//	message: source=raw -> "bad field"
//
// Notes:
//   - source ∈ {passthrough | taxonomy | alias | fallback} for the status;
//   - source ∈ {passthrough | raw | default} for the message.
func (c *Classifier) Explain(raw any) string {
	var b strings.Builder

	if e, ok := passthrough(raw); ok {
		_, _ = fmt.Fprintf(&b, "input=%T\n", raw)
		_, _ = fmt.Fprintf(&b, "status: source=%s -> %d\n", sourcePassthrough, e.Status())
		_, _ = fmt.Fprintf(&b, "message: source=%s -> %q", sourcePassthrough, e.Message())
		return b.String()
	}

	f := read(raw)
	_, _ = fmt.Fprintf(&b, "input=%T name=%q\n", raw, f.name)

	switch k, src := c.resolve(f.name); src {
	case sourceTaxonomy, sourceAlias:
		_, _ = fmt.Fprintf(&b, "status: source=%s kind=%q -> %d\n", src, k, k.Status())
	default:
		_, _ = fmt.Fprintf(&b, "status: source=%s -> %d\n", sourceFallback, kind.FallbackStatus)
	}

	if f.message != "" {
		_, _ = fmt.Fprintf(&b, "message: source=raw -> %q", f.message)
	} else {
		_, _ = fmt.Fprintf(&b, "message: source=default -> %q", clienterr.DefaultMessage)
	}
	return b.String()
}

// resolve maps a discriminant to a kind and reports which tier matched.
func (c *Classifier) resolve(name string) (kind.Kind, string) {
	if k, ok := kind.Lookup(name); ok {
		return k, sourceTaxonomy
	}
	if k, ok := c.aliases[name]; ok {
		return k, sourceAlias
	}
	return kind.Unknown, sourceFallback
}

// stamp returns the current instant, clamped so it never precedes the
// previous one handed out by this classifier.
func (c *Classifier) stamp() time.Time {
	now := c.clock().UTC()
	c.mu.Lock()
	defer c.mu.Unlock()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}

// log emits the diagnostic record. It is observational only: a panicking
// handler or LogValuer is swallowed.
func (c *Classifier) log(e *clienterr.Error, raw any) {
	defer func() { _ = recover() }()

	l := c.logger
	if l == nil {
		l = slog.Default()
	}
	ctx := context.Background()
	lvl := e.Severity().Level()
	if !l.Enabled(ctx, lvl) {
		return
	}
	l.LogAttrs(ctx, lvl, "classified failure",
		slog.Int("status", e.Status()),
		slog.String("message", e.Message()),
		slog.Any("details", e.Details()),
		slog.String("kind", e.Kind().String()),
		slog.String("severity", e.Severity().String()),
		slog.Any("raw", raw),
	)
}
