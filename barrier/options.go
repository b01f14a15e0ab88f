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
	"log/slog"
	"time"

	"dirpx.dev/clienterr/site"
)

type options struct {
	name   string
	site   site.Site
	logger *slog.Logger
	clock  func() time.Time
}

// Option configures a Barrier.
type Option func(*options)

// WithName names the barrier in fault records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithSite records the site being constructed.
func WithSite(s site.Site) Option {
	return func(o *options) { o.site = s }
}

// WithLogger sets the logger the transition is reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now for Fault.At.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}
