// Package httpclient is the transport every GreenLoop endpoint goes through.
// It builds headers, injects the bearer token, encodes JSON or multipart
// bodies and turns non-2xx responses into typed errors with the localized
// messages the frontend shows.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/metrics"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

const (
	HeaderRequestID = "X-Request-ID"

	defaultUserAgent = "greenloop-go"
)

var errBaseURLRequired = errors.New("greenloop api base url is required")

// Client issues requests against the GreenLoop backend. It is safe for
// concurrent use and holds no per-request state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     tokens.Store
	logg       *logger.Logger
	metrics    *metrics.ClientMetrics
	validate   *validator.Validate
	userAgent  string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. The default sets no
// timeout; deadlines come from the request context.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenStore sets where the bearer token is read from.
func WithTokenStore(store tokens.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.tokens = store
		}
	}
}

func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		if logg != nil {
			c.logg = logg
		}
	}
}

func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithValidator enables struct-tag validation of decoded 2xx responses.
func WithValidator(v *validator.Validate) Option {
	return func(c *Client) {
		c.validate = v
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(ua); trimmed != "" {
			c.userAgent = trimmed
		}
	}
}

// New builds a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	client := &Client{
		httpClient: &http.Client{},
		baseURL:    trimmed,
		tokens:     tokens.NewMemory(tokens.Pair{}),
		logg:       logger.Nop(),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// BaseURL returns the backend root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Tokens returns the store the client reads bearer tokens from.
func (c *Client) Tokens() tokens.Store {
	return c.tokens
}

func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts)
}

func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts)
}

func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts)
}

func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts)
}

// UploadFile posts a multipart form.
func (c *Client) UploadFile(ctx context.Context, path string, form *FormData, out any, opts ...CallOption) error {
	if form == nil {
		form = NewFormData()
	}
	return c.do(ctx, http.MethodPost, path, form, out, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts []CallOption) error {
	call := newCallConfig(opts)
	requestID := uuid.NewString()

	ctx = c.logg.WithCall(ctx, requestID, call.endpoint, method, path)

	payload, contentType, err := encodeBody(body)
	if err != nil {
		return c.fail(ctx, call, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "encode request body"))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), payload)
	if err != nil {
		return c.fail(ctx, call, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build request"))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if call.includeAuth {
		if token := c.accessToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range call.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(call.endpoint, method, 0, time.Since(started))
		meta := pkgerrors.MetadataFor(pkgerrors.CodeDependency)
		return c.fail(ctx, call, pkgerrors.Wrap(pkgerrors.CodeDependency, err, meta.PublicMessage))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(call.endpoint, method, resp.StatusCode, time.Since(started))
	if err != nil {
		meta := pkgerrors.MetadataFor(pkgerrors.CodeDependency)
		return c.fail(ctx, call, pkgerrors.Wrap(pkgerrors.CodeDependency, err, meta.PublicMessage).WithStatus(resp.StatusCode))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(ctx, call, normalizeError(resp.StatusCode, statusText(resp), raw))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		c.logg.Debug(ctx, "api.request.ok")
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		meta := pkgerrors.MetadataFor(pkgerrors.CodeInvalidResponse)
		return c.fail(ctx, call, pkgerrors.Wrap(pkgerrors.CodeInvalidResponse, err, meta.PublicMessage).WithStatus(resp.StatusCode))
	}
	if err := c.ValidateResponse(out); err != nil {
		return c.fail(ctx, call, pkgerrors.As(err).WithStatus(resp.StatusCode))
	}

	c.logg.Debug(ctx, "api.request.ok")
	return nil
}

// ValidateResponse checks decoded values against their `validate` tags.
// Structs, pointers to structs and slices of structs are validated; anything
// else passes. It is a no-op when no validator was configured.
func (c *Client) ValidateResponse(v any) error {
	if c.validate == nil || v == nil {
		return nil
	}

	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	var err error
	switch value.Kind() {
	case reflect.Struct:
		err = c.validate.Struct(value.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len() && err == nil; i++ {
			elem := value.Index(i)
			for elem.Kind() == reflect.Pointer && !elem.IsNil() {
				elem = elem.Elem()
			}
			if elem.Kind() == reflect.Struct {
				if vErr := c.validate.Struct(elem.Interface()); vErr != nil {
					err = fmt.Errorf("item %d: %w", i, vErr)
				}
			}
		}
	}
	if err == nil {
		return nil
	}
	meta := pkgerrors.MetadataFor(pkgerrors.CodeInvalidResponse)
	return pkgerrors.Wrap(pkgerrors.CodeInvalidResponse, err, meta.PublicMessage)
}

func (c *Client) accessToken(ctx context.Context) string {
	pair, err := c.tokens.Get(ctx)
	if err != nil {
		c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), "token store read failed; sending request unauthenticated")
		return ""
	}
	return pair.AccessToken
}

func (c *Client) fail(ctx context.Context, call callConfig, apiErr *pkgerrors.Error) error {
	c.metrics.IncError(call.endpoint, string(apiErr.Code()))
	ctx = c.logg.WithFields(ctx, map[string]any{
		"status":     apiErr.Status(),
		"error_code": apiErr.Code(),
		"detail":     apiErr.Detail(),
	})
	c.logg.Error(ctx, "api.request.failed", apiErr)
	return apiErr
}

func (c *Client) buildURL(path string) string {
	if path == "" {
		return c.baseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	if form, ok := body.(*FormData); ok {
		return form.encode()
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal json body: %w", err)
	}
	return bytes.NewReader(payload), "application/json", nil
}

// statusText returns the reason phrase the server sent, falling back to the
// standard text for the code.
func statusText(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, prefix)); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
