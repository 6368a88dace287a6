package fakebackend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/greenloop/greenloop-go/pkg/auth"
)

const requestIDHeader = "X-Request-ID"

type ctxKey int

const claimsKey ctxKey = iota

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				ctx := s.logg.WithFields(r.Context(), map[string]any{"panic": rec})
				s.logg.Error(ctx, "panic.recovered", fmt.Errorf("panic: %v", rec))
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqID)
		next.ServeHTTP(w, r.WithContext(s.logg.WithRequestID(r.Context(), reqID)))
	})
}

// recordRequests captures the request and replays its body to the handler.
func (s *Server) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			b, err := io.ReadAll(r.Body)
			if err != nil {
				writeDetail(w, http.StatusBadRequest, "unreadable body")
				return
			}
			body = b
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.record(Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.logg.Debug(s.logg.WithFields(r.Context(), map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}), "fakebackend.request")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) cannedResponses(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, ok := s.override(r.Method, r.URL.Path); ok {
			writeRaw(w, c.status, c.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireUser admits requests carrying a valid, unrevoked access token.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		claims, err := auth.ParseToken(s.secret, raw)
		if err != nil || claims.Kind != auth.TokenKindAccess {
			writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.mu.Lock()
		revoked := s.data.revoked[claims.ID]
		s.mu.Unlock()
		if revoked {
			writeDetail(w, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		acct, ok := s.data.accounts[subjectFrom(r.Context())]
		isAdmin := ok && acct.user.IsAdmin
		s.mu.Unlock()
		if !isAdmin {
			writeDetail(w, http.StatusForbidden, "Not enough permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFrom(ctx context.Context) *auth.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*auth.TokenClaims)
	return claims
}

func subjectFrom(ctx context.Context) string {
	if claims := claimsFrom(ctx); claims != nil {
		return claims.Subject
	}
	return ""
}
