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
	"bytes"
	"net/http"
)

// Handler wraps next in a per-request barrier.
//
// next writes into a buffered response. If it panics before returning,
// nothing it wrote is sent; the client gets the default fallback view as
// HTML with status 500 instead. http.ErrAbortHandler is not a fault; it
// propagates so the server can abort the connection as usual.
func Handler(next http.Handler, opts ...Option) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := New(
			func() *response {
				rec := newResponse()
				next.ServeHTTP(rec, r)
				return rec
			},
			faultResponse,
			opts...,
		)
		b.Render().flush(w)
	})
}

// response buffers what a handler writes.
type response struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponse() *response {
	return &response{header: make(http.Header)}
}

func (r *response) Header() http.Header { return r.header }

func (r *response) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *response) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(p)
}

func (r *response) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, vs := range r.header {
		dst[k] = vs
	}
	if r.status == 0 {
		r.status = http.StatusOK
	}
	w.WriteHeader(r.status)
	_, _ = w.Write(r.body.Bytes())
}

func faultResponse(f *Fault) *response {
	rec := newResponse()
	rec.header.Set("Content-Type", "text/html; charset=utf-8")
	rec.WriteHeader(http.StatusInternalServerError)
	_, _ = rec.body.WriteString(DefaultView(f).HTML())
	return rec
}
