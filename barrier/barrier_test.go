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
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dirpx.dev/clienterr/site"
)

var quiet = WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func TestBarrier_HealthyRendersContent(t *testing.T) {
	calls := 0
	b := New(func() string { calls++; return "content" }, Text, quiet)
	for i := 0; i < 3; i++ {
		if got := b.Render(); got != "content" {
			t.Fatalf("Render = %q", got)
		}
	}
	if calls != 3 || b.State() != Healthy || b.Fault() != nil {
		t.Fatalf("calls=%d state=%v fault=%v", calls, b.State(), b.Fault())
	}
}

func TestBarrier_FaultIsTerminal(t *testing.T) {
	calls := 0
	b := New(func() string {
		calls++
		panic("boom")
	}, Text, quiet)

	first := b.Render()
	if !strings.Contains(first, "boom") || !strings.Contains(first, DefaultTitle) {
		t.Fatalf("fallback = %q", first)
	}
	if b.State() != Faulted {
		t.Fatalf("state = %v, want faulted", b.State())
	}
	for i := 0; i < 3; i++ {
		if got := b.Render(); got != first {
			t.Fatalf("Render after fault = %q, want %q", got, first)
		}
	}
	if calls != 1 {
		t.Fatalf("build called %d times after faulting, want 1", calls)
	}
}

func TestBarrier_FaultMessages(t *testing.T) {
	cause := errors.New("template missing")
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "boom", "boom"},
		{"error", cause, "template missing"},
		{"stringer", time.Second, "1s"},
		{"no message", 42, GenericMessage},
		{"empty string", "", GenericMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(func() int { panic(tt.value) }, nil, quiet)
			if got := b.Render(); got != 0 {
				t.Fatalf("nil fallback must render zero, got %d", got)
			}
			f := b.Fault()
			if f == nil || f.Display() != tt.want || f.Error() != tt.want {
				t.Fatalf("fault = %+v", f)
			}
			if f.Value != tt.value || len(f.Stack) == 0 {
				t.Fatalf("fault must keep value and stack, got %+v", f)
			}
		})
	}

	b := New(func() int { panic(cause) }, nil, quiet)
	b.Render()
	if !errors.Is(b.Fault(), cause) {
		t.Fatal("fault must unwrap to an error panic value")
	}
}

type nilErr struct{ msg string }

func (e *nilErr) Error() string { return e.msg }

func TestBarrier_PanickingMessageStillFaults(t *testing.T) {
	b := New(func() string {
		var e *nilErr
		panic(e)
	}, Text, quiet)

	got := b.Render()
	if b.State() != Faulted {
		t.Fatalf("state = %v, want faulted", b.State())
	}
	if !strings.Contains(got, GenericMessage) {
		t.Fatalf("fallback = %q, want the generic message", got)
	}
	if f := b.Fault(); f.Message != "" || f.Display() != GenericMessage {
		t.Fatalf("fault = %+v", f)
	}
}

func TestBarrier_AbortIsNotAFault(t *testing.T) {
	b := New(func() string { panic(http.ErrAbortHandler) }, Text, quiet)
	func() {
		defer func() {
			if recover() != http.ErrAbortHandler {
				t.Fatal("ErrAbortHandler must propagate")
			}
		}()
		b.Render()
	}()
	if b.State() != Healthy {
		t.Fatalf("state = %v, want healthy", b.State())
	}
}

func TestBarrier_NilBuildFaults(t *testing.T) {
	b := New[string](nil, Text, quiet)
	if got := b.Render(); !strings.Contains(got, "nil build") || b.State() != Faulted {
		t.Fatalf("Render = %q, state = %v", got, b.State())
	}
}

func TestBarrier_LogsTransitionOnce(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	b := New(func() string { panic("boom") }, Text,
		WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
		WithName("cart"),
		WithSite(site.MustParse("checkout.cart")),
		WithClock(func() time.Time { return at }),
	)
	b.Render()
	b.Render()

	out := buf.String()
	if strings.Count(out, `"msg":"render fault"`) != 1 {
		t.Fatalf("want exactly one fault record:\n%s", out)
	}
	for _, want := range []string{`"level":"ERROR"`, `"barrier":"cart"`, `"site":"checkout.cart"`, `"message":"boom"`, `"stack":`} {
		if !strings.Contains(out, want) {
			t.Fatalf("record missing %s:\n%s", want, out)
		}
	}
	if f := b.Fault(); f.Barrier != "cart" || f.Site != "checkout.cart" || !f.At.Equal(at) {
		t.Fatalf("fault context = %+v", f)
	}
}

func TestState_String(t *testing.T) {
	if Healthy.String() != "healthy" || Faulted.String() != "faulted" || State(9).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}

func TestView_HTMLEscapes(t *testing.T) {
	html := DefaultView(&Fault{Message: "<script>x</script>"}).HTML()
	if strings.Contains(html, "<script>") || !strings.Contains(html, DefaultTitle) {
		t.Fatalf("HTML = %s", html)
	}
	if DefaultView(nil).Message != GenericMessage {
		t.Fatal("nil fault must show the generic message")
	}
}

func TestHandler_PassesThrough(t *testing.T) {
	h := Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}), quiet)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusCreated || rec.Body.String() != "ok" || rec.Header().Get("X-Test") != "1" {
		t.Fatalf("got %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestHandler_FaultRendersFallback(t *testing.T) {
	h := Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	}), quiet)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	body := rec.Body.String()
	if rec.Code != http.StatusInternalServerError || strings.Contains(body, "partial") {
		t.Fatalf("got %d %q", rec.Code, body)
	}
	if !strings.Contains(body, "boom") || !strings.Contains(body, DefaultTitle) {
		t.Fatalf("fallback body = %q", body)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("content-type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestHandler_ReraisesAbortWithoutFault(t *testing.T) {
	var buf bytes.Buffer
	h := Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}), WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))
	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatal("ErrAbortHandler must be re-raised")
		}
		if buf.Len() != 0 {
			t.Fatalf("an abort must not be logged as a fault:\n%s", buf.String())
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
