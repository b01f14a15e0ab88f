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
	"log/slog"
	"time"

	"dirpx.dev/clienterr/kind"
)

// Option configures a Classifier at build time.
// All options are applied to an internal builder and then frozen.
type Option func(*builder)

// WithAlias registers an extra discriminant name for a known kind, e.g. a
// server that stamps "UnprocessableError" for what this client calls a
// BusinessError. Aliases never widen the status set: New rejects aliases
// onto kind.Unknown. The taxonomy names themselves cannot be re-aliased.
func WithAlias(name string, k kind.Kind) Option {
	return func(b *builder) { b.aliases[name] = k }
}

// WithLogger sets the logger diagnostic records go to.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) { b.logger = l }
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *builder) {
		if now != nil {
			b.clock = now
		}
	}
}
