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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the discriminant of a raw failure.
//
// It is kept as a string type so the values read the same in logs, JSON
// payloads and Go source. The zero value Unknown means "no recognized
// discriminant".
type Kind string

var (
	// ErrKindUnknown is returned by Parse when the value is not one of the
	// recognized discriminants.
	ErrKindUnknown = errors.New("clienterr: unknown kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Lookup resolves a discriminant name into a Kind.
//
// Matching is exact: discriminants are type names stamped by the code that
// raised the failure, so "validationerror" is not ValidationError.
// For anything unrecognized it returns (Unknown, false).
func Lookup(name string) (Kind, bool) {
	switch k := Kind(name); k {
	case Validation, Business, System:
		return k, true
	default:
		return Unknown, false
	}
}

// Status is the total taxonomy lookup: discriminant name to status code.
// Unrecognized and empty names resolve to 500.
func Status(name string) int {
	k, _ := Lookup(name)
	return k.Status()
}

// Parse is the strict variant of Lookup. It trims surrounding spaces
// before matching and reports ErrKindUnknown for unrecognized input.
func Parse(s string) (Kind, error) {
	k, ok := Lookup(strings.TrimSpace(s))
	if !ok {
		return Unknown, ErrKindUnknown
	}
	return k, nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Validate reports whether k is one of the recognized kinds.
func Validate(k Kind) error {
	if !k.Known() {
		return ErrKindUnknown
	}
	return nil
}

// All returns the recognized kinds in declaration order.
func All() []Kind {
	return []Kind{Validation, Business, System}
}

// Known reports whether k is one of the recognized kinds.
func (k Kind) Known() bool {
	_, ok := Lookup(string(k))
	return ok
}

// String returns the discriminant name.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// Unknown marshals as an empty value, so a record without a recognized
// discriminant still round-trips.
func (k Kind) MarshalText() ([]byte, error) {
	if k == Unknown {
		return []byte{}, nil
	}
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Empty or whitespace-only input produces Unknown.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	if s == "" {
		*k = Unknown
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
