package fakebackend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/greenloop/greenloop-go/pkg/auth"
	"github.com/greenloop/greenloop-go/pkg/tokens"
	"github.com/greenloop/greenloop-go/pkg/types"
)

// BadCredentialsDetail is the detail text of a rejected login.
const BadCredentialsDetail = "bad credentials"

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if issues := missingLoginFields(req); len(issues) > 0 {
		writeValidation(w, issues)
		return
	}

	s.mu.Lock()
	acct := s.data.accountByEmail(req.Email)
	var user types.User
	if acct != nil && checkPassword(req.Password, acct.passwordHash) {
		now := time.Now()
		acct.user.LastLogin = &now
		user = acct.user
	}
	s.mu.Unlock()
	if user.ID == "" {
		writeDetail(w, http.StatusUnauthorized, BadCredentialsDetail)
		return
	}

	pair, err := s.mintPair(user.ID)
	if err != nil {
		s.logg.Error(r.Context(), "fakebackend.mint_failed", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, types.AuthResponse{
		Message: "Login successful",
		User:    toObject(user),
		Tokens:  s.tokenResponse(pair),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	var issues []validationIssue
	for _, f := range []struct{ name, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"password", req.Password},
	} {
		if f.value == "" {
			issues = append(issues, validationIssue{Loc: []any{"body", f.name}, Msg: "field required", Type: "value_error.missing"})
		}
	}
	if len(issues) > 0 {
		writeValidation(w, issues)
		return
	}
	if req.ConfirmPassword != req.Password {
		writeDetail(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	hash, err := hashPassword(req.Password)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.mu.Lock()
	if s.data.accountByEmail(req.Email) != nil {
		s.mu.Unlock()
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	s.data.nextID++
	now := time.Now()
	user := types.User{
		ID:        fmt.Sprintf("u-%d", s.data.nextID),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FullName:  req.FirstName + " " + req.LastName,
		City:      req.City,
		State:     req.State,
		Country:   req.Country,
		Phone:     req.Phone,
		IsActive:  true,
		CreatedAt: &now,
	}
	s.data.accounts[user.ID] = &account{user: user, passwordHash: hash}
	s.mu.Unlock()

	pair, err := s.mintPair(user.ID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, types.AuthResponse{
		Message: "User registered successfully",
		User:    toObject(user),
		Tokens:  s.tokenResponse(pair),
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req types.RefreshRequest
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		writeDetail(w, http.StatusBadRequest, "refresh_token is required")
		return
	}
	claims, ok := s.validRefresh(req.RefreshToken)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	s.mu.Lock()
	s.data.revoked[claims.ID] = true
	s.mu.Unlock()

	pair, err := s.mintPair(claims.Subject)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, s.tokenResponse(pair))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req types.LogoutRequest
	if err := decodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	s.mu.Lock()
	if claims := claimsFrom(r.Context()); claims != nil {
		s.data.revoked[claims.ID] = true
	}
	s.mu.Unlock()
	if req.RefreshToken != nil {
		if claims, ok := s.validRefresh(*req.RefreshToken); ok {
			s.mu.Lock()
			s.data.revoked[claims.ID] = true
			s.mu.Unlock()
		}
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Successfully logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	acct, ok := s.data.accounts[subjectFrom(r.Context())]
	var user types.User
	if ok {
		user = acct.user
	}
	s.mu.Unlock()
	if !ok {
		writeDetail(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleCompanyLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if issues := missingLoginFields(req); len(issues) > 0 {
		writeValidation(w, issues)
		return
	}

	s.mu.Lock()
	c := s.data.companyByEmail(req.Email)
	var company types.Company
	if c != nil && checkPassword(req.Password, c.passwordHash) {
		company = c.company
	}
	s.mu.Unlock()
	if company.ID == "" {
		writeDetail(w, http.StatusUnauthorized, BadCredentialsDetail)
		return
	}

	pair, err := s.mintPair(company.ID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, types.CompanyAuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
		Company:      toObject(company),
	})
}

func (s *Server) handleCompanyRefresh(w http.ResponseWriter, r *http.Request) {
	var req types.RefreshRequest
	if err := decodeBody(r, &req); err != nil || req.RefreshToken == "" {
		writeDetail(w, http.StatusBadRequest, "refresh_token is required")
		return
	}
	claims, ok := s.validRefresh(req.RefreshToken)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	pair, err := s.mintPair(claims.Subject)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, types.CompanyRefreshResponse{
		AccessToken: pair.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(s.accessTTL.Seconds()),
	})
}

func (s *Server) validRefresh(raw string) (*auth.TokenClaims, bool) {
	claims, err := auth.ParseToken(s.secret, raw)
	if err != nil || claims.Kind != auth.TokenKindRefresh {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.revoked[claims.ID] {
		return nil, false
	}
	return claims, true
}

func (s *Server) tokenResponse(pair tokens.Pair) types.TokenResponse {
	return types.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.accessTTL.Seconds()),
	}
}

func missingLoginFields(req types.LoginRequest) []validationIssue {
	var issues []validationIssue
	if req.Email == "" {
		issues = append(issues, validationIssue{Loc: []any{"body", "email"}, Msg: "field required", Type: "value_error.missing"})
	}
	if req.Password == "" {
		issues = append(issues, validationIssue{Loc: []any{"body", "password"}, Msg: "field required", Type: "value_error.missing"})
	}
	return issues
}

// toObject flattens a record into the untyped map the auth envelopes carry.
func toObject(v any) types.Object {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out types.Object
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
