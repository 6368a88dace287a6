package fakebackend

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/greenloop-go/pkg/auth"
)

func do(t *testing.T, srv *Server, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL()+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func TestLoginIssuesVerifiableTokens(t *testing.T) {
	srv := New(WithSecret("s3cret"))
	defer srv.Close()

	resp, payload := do(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"`+AdminEmail+`","password":"`+AdminPassword+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tokensObj, ok := payload["tokens"].(map[string]any)
	require.True(t, ok, "tokens object missing: %v", payload)
	access, _ := tokensObj["access_token"].(string)

	claims, err := auth.ParseToken("s3cret", access)
	require.NoError(t, err)
	assert.Equal(t, AdminUserID, claims.Subject)
	assert.Equal(t, auth.TokenKindAccess, claims.Kind)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := New()
	defer srv.Close()

	resp, payload := do(t, srv, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"`+AdminEmail+`","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, BadCredentialsDetail, payload["detail"])
}

func TestLoginMissingFieldsReturnsValidationArray(t *testing.T) {
	srv := New()
	defer srv.Close()

	resp, payload := do(t, srv, http.MethodPost, "/api/v1/auth/login", "", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	issues, ok := payload["detail"].([]any)
	require.True(t, ok)
	assert.Len(t, issues, 2)
}

func TestProtectedRoutesNeedBearer(t *testing.T) {
	srv := New()
	defer srv.Close()

	resp, payload := do(t, srv, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authenticated", payload["detail"])

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/auth/me", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectMembers(t *testing.T) {
	srv := New()
	defer srv.Close()

	pair, err := srv.IssueTokens(MemberUserID)
	require.NoError(t, err)

	resp, payload := do(t, srv, http.MethodGet, "/api/v1/admin/items", pair.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Not enough permissions", payload["detail"])
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	srv := New()
	defer srv.Close()

	pair, err := srv.IssueTokens(AdminUserID)
	require.NoError(t, err)

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/auth/logout", pair.AccessToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, payload := do(t, srv, http.MethodGet, "/api/v1/auth/me", pair.AccessToken, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token has been revoked", payload["detail"])
}

func TestRespondOverridesHandlerAndRecords(t *testing.T) {
	srv := New()
	defer srv.Close()

	srv.Respond(http.MethodGet, "/api/v1/items", http.StatusServiceUnavailable, `{"detail":"down"}`)
	resp, payload := do(t, srv, http.MethodGet, "/api/v1/items?page=2", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "down", payload["detail"])

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "/api/v1/items", last.Path)
	assert.Equal(t, "page=2", last.RawQuery)

	srv.Reset()
	assert.Empty(t, srv.Requests())
	resp, _ = do(t, srv, http.MethodGet, "/api/v1/items", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRouteUsesDetailBody(t *testing.T) {
	srv := New()
	defer srv.Close()

	resp, payload := do(t, srv, http.MethodGet, "/api/v1/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", payload["detail"])
}
