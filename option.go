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

// Option is a functional option for constructing a Raw failure.
// It always takes a *Raw and returns a (possibly new) *Raw.
type Option func(*Raw) *Raw

// WithDetails attaches a payload on construction.
func WithDetails(details any) Option {
	return func(r *Raw) *Raw {
		cp := *r
		cp.Details = details
		return &cp
	}
}

// WithCause attaches an underlying cause on construction.
// A nil err leaves the failure unchanged.
func WithCause(err error) Option {
	return func(r *Raw) *Raw {
		if err == nil {
			return r
		}
		cp := *r
		cp.Cause = err
		return &cp
	}
}
