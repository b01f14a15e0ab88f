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
	"log/slog"

	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/site"
)

type options struct {
	classifier apis.Classifier
	logger     *slog.Logger
	site       site.Site
	latestOnly bool
}

// Option configures a Call.
type Option func(*options)

// WithClassifier replaces classifier.Default.
func WithClassifier(c apis.Classifier) Option {
	return func(o *options) {
		if c != nil {
			o.classifier = c
		}
	}
}

// WithLogger sets the logger for lifecycle debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithSite names the call site in log records.
func WithSite(s site.Site) Option {
	return func(o *options) { o.site = s }
}

// WithLatestOnly makes the Call drop the settlement of any invocation that
// was superseded by a later one, so a slow early response can no longer
// overwrite the state of a fast later one. The superseded invocation
// still returns its own result to its own caller.
func WithLatestOnly() Option {
	return func(o *options) { o.latestOnly = true }
}
