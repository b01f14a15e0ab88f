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

package clienterr

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"dirpx.dev/clienterr/kind"
)

var at = time.Date(2025, 3, 1, 12, 30, 45, 123456789, time.UTC)

func TestNewError_Basics(t *testing.T) {
	e := NewError(kind.Business, "limit exceeded", map[string]any{"limit": 5}, at)

	if e.Status() != 422 {
		t.Fatalf("status = %d, want 422", e.Status())
	}
	if e.Kind() != kind.Business || e.Severity() != kind.SeverityMedium {
		t.Fatalf("kind/severity = %q/%v", e.Kind(), e.Severity())
	}
	if e.Details().(map[string]any)["limit"] != 5 {
		t.Fatal("details lost")
	}
	if !e.Timestamp().Equal(at) {
		t.Fatal("timestamp changed")
	}
	if s := e.Error(); s != "422: limit exceeded" {
		t.Fatalf("Error() = %q", s)
	}
}

func TestNewError_DefaultMessage(t *testing.T) {
	e := NewError(kind.Unknown, "", nil, at)
	if e.Message() != DefaultMessage {
		t.Fatalf("message = %q, want %q", e.Message(), DefaultMessage)
	}
	if e.Status() != 500 {
		t.Fatalf("status = %d, want 500", e.Status())
	}
}

func TestError_WithSource_CopyOnWrite(t *testing.T) {
	e1 := NewError(kind.System, "down", nil, at)
	e2 := e1.WithSource(context.DeadlineExceeded)

	if e1.Source() != nil {
		t.Fatal("original mutated")
	}
	if !errors.Is(e2, context.DeadlineExceeded) {
		t.Fatal("errors.Is must reach the source")
	}
	if errors.Unwrap(e1) != nil {
		t.Fatal("record without source must not unwrap")
	}
}

func TestError_MarshalJSON(t *testing.T) {
	e := NewError(kind.Validation, "bad field", nil, at).WithSource(Validation("bad field"))
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"timestamp":"2025-03-01T12:30:45.123Z","status":400,"message":"bad field","details":null}`
	if string(b) != want {
		t.Fatalf("json = %s\nwant %s", b, want)
	}
}

func TestRaw_Constructors(t *testing.T) {
	root := errors.New("root")
	tests := []struct {
		r    *Raw
		name string
		k    kind.Kind
	}{
		{Validation("x"), "ValidationError", kind.Validation},
		{Business("x"), "BusinessError", kind.Business},
		{System("x"), "SystemError", kind.System},
		{Unclassified("x"), "", kind.Unknown},
		{Failure("TypeError", "x"), "TypeError", kind.Unknown},
	}
	for _, tt := range tests {
		if tt.r.ErrorName() != tt.name {
			t.Fatalf("name = %q, want %q", tt.r.ErrorName(), tt.name)
		}
		if tt.r.Kind() != tt.k {
			t.Fatalf("%q kind = %q, want %q", tt.name, tt.r.Kind(), tt.k)
		}
	}

	r := Business("limit", WithDetails(map[string]any{"limit": 5}), WithCause(root))
	if !errors.Is(r, root) {
		t.Fatal("cause not reachable")
	}
	if r.ErrorDetails().(map[string]any)["limit"] != 5 {
		t.Fatal("details not applied")
	}
	if WithCause(nil)(r) != r {
		t.Fatal("nil cause must return the same failure")
	}
}

func TestRaw_Error(t *testing.T) {
	if s := Validation("bad field").Error(); s != "ValidationError: bad field" {
		t.Fatalf("Error() = %q", s)
	}
	if s := Unclassified("timeout").Error(); s != "timeout" {
		t.Fatalf("Error() = %q", s)
	}
	if s := System("").Error(); !strings.Contains(s, "SystemError") {
		t.Fatalf("Error() = %q", s)
	}
}
