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

import "dirpx.dev/clienterr/kind"

// Raw is a failure as raised, before classification.
//
// Name is the discriminant. It is a plain string so that names outside the
// taxonomy ("TypeError", "AxiosError") can still be carried; the classifier
// decides what they resolve to.
type Raw struct {
	// Name is the discriminant, e.g. "ValidationError". May be empty.
	Name string

	// Message is the human-oriented description. May be empty.
	Message string

	// Details is an optional payload handed through classification as-is.
	Details any

	// Cause holds the wrapped underlying error, if any.
	Cause error
}

// Validation returns a raw failure tagged ValidationError.
func Validation(msg string, opts ...Option) *Raw {
	return Failure(string(kind.Validation), msg, opts...)
}

// Business returns a raw failure tagged BusinessError.
func Business(msg string, opts ...Option) *Raw {
	return Failure(string(kind.Business), msg, opts...)
}

// System returns a raw failure tagged SystemError.
func System(msg string, opts ...Option) *Raw {
	return Failure(string(kind.System), msg, opts...)
}

// Unclassified returns a raw failure with no discriminant. Transport
// failures and timeouts are built this way.
func Unclassified(msg string, opts ...Option) *Raw {
	return Failure("", msg, opts...)
}

// Failure is the general constructor. It always returns a new Raw and
// applies opts in order.
func Failure(name, msg string, opts ...Option) *Raw {
	r := &Raw{Name: name, Message: msg}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// Error implements the built-in error interface.
//
// The format is "<name>: <message>", or just the message when there is
// no discriminant.
func (r *Raw) Error() string {
	if r == nil {
		return "<nil>"
	}
	switch {
	case r.Name == "":
		return r.Message
	case r.Message == "":
		return r.Name
	default:
		return r.Name + ": " + r.Message
	}
}

// ErrorName returns the discriminant.
func (r *Raw) ErrorName() string { return r.Name }

// ErrorDetails returns the payload.
func (r *Raw) ErrorDetails() any { return r.Details }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (r *Raw) Unwrap() error { return r.Cause }

// Kind resolves Name against the taxonomy.
func (r *Raw) Kind() kind.Kind {
	k, _ := kind.Lookup(r.Name)
	return k
}
