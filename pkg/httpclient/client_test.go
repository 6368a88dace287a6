package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

type capturedRequest struct {
	method  string
	url     string
	headers http.Header
	body    []byte
}

func newTestClient(t *testing.T, status int, respBody string, store tokens.Store, opts ...Option) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		captured.method = req.Method
		captured.url = req.URL.String()
		captured.headers = req.Header.Clone()
		if req.Body != nil {
			b, err := io.ReadAll(req.Body)
			if err != nil {
				t.Fatalf("read request body: %v", err)
			}
			captured.body = b
		}
		return &http.Response{
			StatusCode: status,
			Status:     http.StatusText(status),
			Body:       io.NopCloser(strings.NewReader(respBody)),
			Header:     http.Header{},
		}, nil
	})

	opts = append([]Option{WithHTTPClient(&http.Client{Transport: rt}), WithTokenStore(store)}, opts...)
	client, err := New("http://greenloop.test/", opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, captured
}

func TestNewRequiresAbsoluteBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base url")
	}
	if _, err := New("/relative"); err == nil {
		t.Fatal("expected error for relative base url")
	}
	c, err := New("http://localhost:8000/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BaseURL() != "http://localhost:8000" {
		t.Fatalf("expected trailing slash trimmed, got %q", c.BaseURL())
	}
}

func TestGetAttachesBearerToken(t *testing.T) {
	store := tokens.NewMemory(tokens.Pair{AccessToken: "tok-1"})
	client, captured := newTestClient(t, http.StatusOK, `{"id":"u1"}`, store)

	var out struct {
		ID string `json:"id"`
	}
	if err := client.Get(context.Background(), "/api/v1/auth/me", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if captured.url != "http://greenloop.test/api/v1/auth/me" {
		t.Fatalf("unexpected url %q", captured.url)
	}
	if got := captured.headers.Get("Authorization"); got != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", got)
	}
	if captured.headers.Get(HeaderRequestID) == "" {
		t.Fatalf("expected request id header")
	}
	if captured.headers.Get("Content-Type") != "" {
		t.Fatalf("GET without body should not set content type")
	}
	if out.ID != "u1" {
		t.Fatalf("unexpected decoded body %+v", out)
	}
}

func TestTokenIsReadOnEveryRequest(t *testing.T) {
	store := tokens.NewMemory(tokens.Pair{AccessToken: "first"})
	client, captured := newTestClient(t, http.StatusOK, `{}`, store)
	ctx := context.Background()

	_ = client.Get(ctx, "/a", nil)
	if captured.headers.Get("Authorization") != "Bearer first" {
		t.Fatalf("expected first token")
	}

	_ = store.Set(ctx, tokens.Pair{AccessToken: "second"})
	_ = client.Get(ctx, "/a", nil)
	if captured.headers.Get("Authorization") != "Bearer second" {
		t.Fatalf("expected refreshed token to be used")
	}

	_ = store.Clear(ctx)
	_ = client.Get(ctx, "/a", nil)
	if captured.headers.Get("Authorization") != "" {
		t.Fatalf("expected no header after logout")
	}
}

func TestPublicNeverSendsAuthorization(t *testing.T) {
	store := tokens.NewMemory(tokens.Pair{AccessToken: "secret"})
	client, captured := newTestClient(t, http.StatusOK, `{}`, store)

	if err := client.Post(context.Background(), "/api/v1/auth/login", map[string]string{"email": "a@b.com"}, nil, Public()); err != nil {
		t.Fatalf("post: %v", err)
	}
	if _, ok := captured.headers["Authorization"]; ok {
		t.Fatalf("public call must not carry Authorization, got %v", captured.headers)
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context) (tokens.Pair, error) { return tokens.Pair{}, errors.New("disk gone") }
func (failingStore) Set(context.Context, tokens.Pair) error   { return nil }
func (failingStore) Clear(context.Context) error              { return nil }

func TestTokenStoreFailureProceedsUnauthenticated(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`, failingStore{})
	if err := client.Get(context.Background(), "/api/v1/items", nil); err != nil {
		t.Fatalf("store failure should not fail the request: %v", err)
	}
	if captured.headers.Get("Authorization") != "" {
		t.Fatalf("expected no auth header")
	}
}

func TestJSONBodiesSetContentType(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
		client, captured := newTestClient(t, http.StatusOK, `{}`, nil)
		body := map[string]any{"title": "Bicicleta", "estimated_value": 120}

		var err error
		switch method {
		case http.MethodPost:
			err = client.Post(context.Background(), "/x", body, nil)
		case http.MethodPut:
			err = client.Put(context.Background(), "/x", body, nil)
		case http.MethodPatch:
			err = client.Patch(context.Background(), "/x", body, nil)
		}
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if captured.method != method {
			t.Fatalf("expected method %s got %s", method, captured.method)
		}
		if got := captured.headers.Get("Content-Type"); got != "application/json" {
			t.Fatalf("%s: expected json content type, got %q", method, got)
		}
		var decoded map[string]any
		if err := json.Unmarshal(captured.body, &decoded); err != nil {
			t.Fatalf("%s: body not json: %v", method, err)
		}
		if decoded["title"] != "Bicicleta" {
			t.Fatalf("%s: unexpected body %s", method, captured.body)
		}
	}
}

func TestFormDataBodyIsMultipart(t *testing.T) {
	var gotTitle, gotFile, gotFilename, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Errorf("expected multipart content type, got %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotTitle = r.FormValue("title")
		file, header, err := r.FormFile("images")
		if err == nil {
			b, _ := io.ReadAll(file)
			gotFile = string(b)
			gotFilename = header.Filename
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uploaded":1}`))
	}))
	defer server.Close()

	client, err := New(server.URL, WithTokenStore(tokens.NewMemory(tokens.Pair{AccessToken: "tok"})))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	form := NewFormData().
		AddField("title", "Lámpara").
		AddFile("images", "photo.png", bytes.NewReader([]byte("png-bytes")))

	var out struct {
		Uploaded int `json:"uploaded"`
	}
	if err := client.UploadFile(context.Background(), "/api/v1/items/1/images", form, &out); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotTitle != "Lámpara" || gotFile != "png-bytes" || gotFilename != "photo.png" {
		t.Fatalf("unexpected multipart contents title=%q file=%q name=%q", gotTitle, gotFile, gotFilename)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("expected upload to carry auth, got %q", gotAuth)
	}
	if out.Uploaded != 1 {
		t.Fatalf("unexpected response %+v", out)
	}

	// The same form through Post behaves the same as UploadFile.
	if err := client.Post(context.Background(), "/api/v1/items/1/images", NewFormData().AddField("title", "x"), nil); err != nil {
		t.Fatalf("post form: %v", err)
	}
}

func TestSuccessEmptyBodyIsAccepted(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNoContent, "", nil)
	var out map[string]any
	if err := client.Delete(context.Background(), "/api/v1/admin/users/1", &out); err != nil {
		t.Fatalf("expected 204 to succeed: %v", err)
	}
}

func TestSuccessWithInvalidJSONFails(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, "<html>", nil)
	var out map[string]any
	err := client.Get(context.Background(), "/api/v1/items", &out)
	if !pkgerrors.IsCode(err, pkgerrors.CodeInvalidResponse) {
		t.Fatalf("expected invalid response error, got %v", err)
	}
}

func TestErrorResponsesAreTyped(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, `{"detail":"bad credentials"}`, nil)
	err := client.Post(context.Background(), "/api/v1/auth/login", map[string]string{"email": "a@b.com", "password": "x"}, nil, Public())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "No autorizado. Por favor, inicia sesión nuevamente" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	apiErr := pkgerrors.As(err)
	if apiErr == nil || apiErr.Code() != pkgerrors.CodeUnauthorized || apiErr.Detail() != "bad credentials" {
		t.Fatalf("unexpected typed error %+v", apiErr)
	}
}

func TestErrorsAreLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	client, _ := newTestClient(t, http.StatusForbidden, `{"detail":"nope"}`, nil, WithLogger(logg))

	_ = client.Get(context.Background(), "/api/v1/admin/users", nil, Endpoint("admin.users.list"))

	for _, want := range []string{`"api.request.failed"`, `"endpoint":"admin.users.list"`, `"error_code":"FORBIDDEN"`, `"status":403`} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %s in log output %s", want, buf.String())
		}
	}
}

func TestTransportFailureIsDependencyError(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, boom })
	client, err := New("http://greenloop.test", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	err = client.Get(context.Background(), "/api/v1/items", nil)
	if !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("transport cause should be preserved")
	}
}

func TestCanceledContextSurfaces(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) { return nil, req.Context().Err() })
	client.httpClient = &http.Client{Transport: rt}

	err := client.Get(ctx, "/api/v1/items", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

type validatedItem struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
}

func TestResponseValidation(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{"title":"sin id"}`, nil, WithValidator(validator.New()))
	var item validatedItem
	err := client.Get(context.Background(), "/api/v1/items/1", &item)
	if !pkgerrors.IsCode(err, pkgerrors.CodeInvalidResponse) {
		t.Fatalf("expected invalid response, got %v", err)
	}

	list, _ := newTestClient(t, http.StatusOK, `[{"id":"1"},{"title":"x"}]`, nil, WithValidator(validator.New()))
	var items []validatedItem
	err = list.Get(context.Background(), "/api/v1/items", &items)
	if !pkgerrors.IsCode(err, pkgerrors.CodeInvalidResponse) {
		t.Fatalf("expected slice validation failure, got %v", err)
	}

	ok, _ := newTestClient(t, http.StatusOK, `[{"id":"1"},{"id":"2"}]`, nil, WithValidator(validator.New()))
	if err := ok.Get(context.Background(), "/api/v1/items", &items); err != nil {
		t.Fatalf("valid slice should pass: %v", err)
	}

	var raw map[string]any
	if err := client.ValidateResponse(&raw); err != nil {
		t.Fatalf("maps are not validated: %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
