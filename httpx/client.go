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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/classifier"
)

// RequestIDHeader carries a fresh uuid on every outbound request.
const RequestIDHeader = "X-Request-ID"

// MaxBodyBytes caps how much of a response body is read. Bodies of failed
// responses end up in details.
const MaxBodyBytes = 1 << 20

// Client performs JSON calls against Config.BaseURL and normalizes every
// failure through a classifier.
type Client struct {
	cfg        Config
	base       *url.URL
	hc         *http.Client
	classifier apis.Classifier
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithClassifier replaces classifier.Default.
func WithClassifier(c apis.Classifier) Option {
	return func(cl *Client) {
		if c != nil {
			cl.classifier = c
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. The configured
// timeout still applies, through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(cl *Client) {
		if hc != nil {
			cl.hc = hc
		}
	}
}

// WithLogger sets the logger for per-call debug records.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// New validates cfg and builds a Client around a copy of it.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	c := &Client{
		cfg:        cfg,
		base:       base,
		hc:         &http.Client{},
		classifier: classifier.Default,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config { return c.cfg }

// Do sends a request and decodes a JSON response into out.
//
// body, when non-nil, is JSON-encoded. out may be nil to discard the
// response. Every non-nil error returned is a *clienterr.Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	if err := c.do(ctx, method, path, body, out); err != nil {
		return c.classifier.Classify(err)
	}
	return nil
}

// Get is Do with GET and no body.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post is Do with POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put is Do with PUT.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Patch is Do with PATCH.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

// Delete is Do with DELETE and no body.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Call returns an operation that performs one request and decodes the
// response as T. It fits callstate.Operation[T].
func Call[T any](c *Client, method, path string, body any) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		var out T
		err := c.Do(ctx, method, path, body, &out)
		return out, err
	}
}

// do performs the call and returns raw failures; Do classifies them.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	budget := c.budget(ctx)
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	target, err := c.resolve(path)
	if err != nil {
		return clienterr.Unclassified(fmt.Sprintf("invalid request path %q", path), clienterr.WithCause(err))
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return clienterr.Unclassified("encode request body: "+err.Error(), clienterr.WithCause(err))
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return err
	}
	id := uuid.New().String()
	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("Accept", ContentType)
	req.Header.Set(RequestIDHeader, id)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return transportFailure(err, budget)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return transportFailure(err, budget)
	}

	c.logger.Debug("outbound call",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"request_id", id,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusFailure(resp.StatusCode, payload)
	}
	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return clienterr.Unclassified("decode response body: "+err.Error(), clienterr.WithCause(err))
	}
	return nil
}

// resolve joins path onto the base URL. Absolute URLs are used as-is.
func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(ref.Path, "/")
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	u.Fragment = ""
	return u.String(), nil
}

// budget is the time a call started with ctx may take: the configured
// timeout, or what is left of an earlier caller deadline.
func (c *Client) budget(ctx context.Context) time.Duration {
	budget := c.cfg.Timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl).Round(time.Millisecond); left < budget {
			budget = max(left, 0)
		}
	}
	return budget
}

// transportFailure turns timeouts into a discriminant-less raw failure
// naming the budget that ran out. Other transport errors are returned
// as-is; they carry no discriminant either.
func transportFailure(err error, budget time.Duration) error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		msg := fmt.Sprintf("timeout of %dms exceeded", budget.Milliseconds())
		return clienterr.Unclassified(msg, clienterr.WithCause(err))
	}
	return err
}

// statusFailure describes a non-2xx response. A JSON body is carried as
// details.
func statusFailure(status int, payload []byte) error {
	var details any
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &details)
	}
	msg := fmt.Sprintf("Request failed with status code %d", status)
	return clienterr.Unclassified(msg, clienterr.WithDetails(details))
}
