// Package fakebackend is an in-process GreenLoop backend for tests and local
// demos. It serves a small seeded dataset over the same routes and envelopes
// as the real service and records every request it receives.
package fakebackend

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/greenloop/greenloop-go/pkg/auth"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

const (
	defaultSecret = "fakebackend-secret"
	tokenIssuer   = "greenloop-fakebackend"
)

// Request is one recorded inbound request.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Authorization returns the raw Authorization header.
func (r Request) Authorization() string {
	return r.Header.Get("Authorization")
}

type canned struct {
	status int
	body   string
}

type Option func(*Server)

func WithLogger(logg *logger.Logger) Option {
	return func(s *Server) {
		if logg != nil {
			s.logg = logg
		}
	}
}

// WithSecret sets the HMAC secret used to sign issued tokens.
func WithSecret(secret string) Option {
	return func(s *Server) {
		if secret != "" {
			s.secret = secret
		}
	}
}

// WithAccessTTL shortens or lengthens the life of issued access tokens.
func WithAccessTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.accessTTL = ttl
		}
	}
}

type Server struct {
	srv        *httptest.Server
	logg       *logger.Logger
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration

	mu        sync.Mutex
	requests  []Request
	overrides map[string]canned
	data      *dataset
}

// New starts a server on a loopback port. Call Close when done.
func New(opts ...Option) *Server {
	s := &Server{
		logg:       logger.Nop(),
		secret:     defaultSecret,
		accessTTL:  30 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
		overrides:  map[string]canned{},
		data:       seed(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv = httptest.NewServer(s.routes())
	return s
}

func (s *Server) URL() string {
	return s.srv.URL
}

func (s *Server) Close() {
	s.srv.Close()
}

// Requests returns a copy of everything recorded so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// Respond makes method+path answer with a fixed status and JSON body,
// bypassing the seeded handlers. path excludes the query string.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	s.overrides[method+" "+path] = canned{status: status, body: body}
	s.mu.Unlock()
}

// Reset drops recorded requests and canned responses. Seed data is kept.
func (s *Server) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.overrides = map[string]canned{}
	s.mu.Unlock()
}

// IssueTokens mints a pair for a seeded user or company without a login call.
func (s *Server) IssueTokens(subject string) (tokens.Pair, error) {
	s.mu.Lock()
	_, isUser := s.data.accounts[subject]
	_, isCompany := s.data.companies[subject]
	s.mu.Unlock()
	if !isUser && !isCompany {
		return tokens.Pair{}, fmt.Errorf("unknown subject %q", subject)
	}
	return s.mintPair(subject)
}

func (s *Server) mintPair(subject string) (tokens.Pair, error) {
	now := time.Now()
	access, err := auth.MintToken(auth.MintParams{
		Secret:  s.secret,
		Issuer:  tokenIssuer,
		Subject: subject,
		Kind:    auth.TokenKindAccess,
		TTL:     s.accessTTL,
	}, now)
	if err != nil {
		return tokens.Pair{}, err
	}
	refresh, err := auth.MintToken(auth.MintParams{
		Secret:  s.secret,
		Issuer:  tokenIssuer,
		Subject: subject,
		Kind:    auth.TokenKindRefresh,
		TTL:     s.refreshTTL,
	}, now)
	if err != nil {
		return tokens.Pair{}, err
	}
	return tokens.Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Server) record(req Request) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
}

func (s *Server) override(method, path string) (canned, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.overrides[method+" "+path]
	return c, ok
}
