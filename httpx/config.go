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

package httpx

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Defaults for outbound calls.
const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 10 * time.Second
	ContentType    = "application/json"
)

// Config is the outbound-call configuration.
//
// It is built once at process start and copied into every Client; a Client
// exposes no way to change it afterwards.
type Config struct {
	// BaseURL is the endpoint every request path is resolved against.
	BaseURL string `yaml:"base_url"`

	// Timeout bounds each request, including reading the body.
	Timeout time.Duration `yaml:"timeout"`
}

// ErrConfigInvalid is returned by Validate.
var ErrConfigInvalid = errors.New("httpx: invalid config")

// DefaultConfig returns http://localhost:3000 with a 10s timeout.
func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout}
}

// Validate checks that BaseURL is an absolute http(s) URL and that Timeout
// is positive.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base url %q: %v", ErrConfigInvalid, c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base url %q must be absolute http(s)", ErrConfigInvalid, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrConfigInvalid, c.Timeout)
	}
	return nil
}
