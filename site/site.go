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

package site

import (
	"bytes"
	"encoding"
	"errors"
	"log/slog"
	"strings"
)

// Site is a validated call-site identifier.
type Site string

// MaxLength bounds a site name; MaxSegments bounds its depth.
const (
	MaxLength   = 96
	MaxSegments = 5
)

var (
	// ErrSiteInvalidFormat is returned for empty segments or characters
	// outside [a-z0-9_].
	ErrSiteInvalidFormat = errors.New("clienterr: invalid site format")
	// ErrSiteTooLong is returned when a site exceeds MaxLength or MaxSegments.
	ErrSiteTooLong = errors.New("clienterr: site too long")
)

var (
	_ encoding.TextMarshaler   = (*Site)(nil)
	_ encoding.TextUnmarshaler = (*Site)(nil)
	_ slog.LogValuer           = Site("")
)

// None is the unnamed site.
const None Site = ""

// Normalize trims, lowercases and maps the separators callers commonly use
// ("/", ":" and "-") onto the canonical "." and "_".
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("/", ".", ":", ".", "-", "_").Replace(s)
}

// Parse normalizes and validates s. The empty string parses to None.
func Parse(s string) (Site, error) {
	s = Normalize(s)
	if s == "" {
		return None, nil
	}
	if err := check(s); err != nil {
		return None, err
	}
	return Site(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level vars.
func MustParse(s string) Site {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return st
}

// Validate reports whether st is canonical. None is valid.
func Validate(st Site) error {
	if st == None {
		return nil
	}
	return check(string(st))
}

// Segments splits the site on ".". None has no segments.
func (st Site) Segments() []string {
	if st == None {
		return nil
	}
	return strings.Split(string(st), ".")
}

// Child appends a segment. The result is not validated.
func (st Site) Child(seg string) Site {
	seg = Normalize(seg)
	if st == None {
		return Site(seg)
	}
	return Site(string(st) + "." + seg)
}

// String returns the site name.
func (st Site) String() string { return string(st) }

// LogValue renders None as "-" so log lines keep a stable shape.
func (st Site) LogValue() slog.Value {
	if st == None {
		return slog.StringValue("-")
	}
	return slog.StringValue(string(st))
}

// MarshalText implements encoding.TextMarshaler.
func (st Site) MarshalText() ([]byte, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}
	return []byte(st), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (st *Site) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

func check(s string) error {
	if len(s) > MaxLength {
		return ErrSiteTooLong
	}
	segs := strings.Split(s, ".")
	if len(segs) > MaxSegments {
		return ErrSiteTooLong
	}
	for _, seg := range segs {
		if !validSegment(seg) {
			return ErrSiteInvalidFormat
		}
	}
	return nil
}

// validSegment accepts [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
