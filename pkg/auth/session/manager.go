// Package session keeps the token store in step with the auth endpoints.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenloop/greenloop-go/pkg/auth"
	"github.com/greenloop/greenloop-go/pkg/greenloop"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/tokens"
	"github.com/greenloop/greenloop-go/pkg/types"
	"go.uber.org/multierr"
)

// ErrNoRefreshToken is returned by Refresh when nothing is stored to refresh with.
var ErrNoRefreshToken = errors.New("no refresh token stored")

// Manager drives login, refresh and logout. The transport reads the same
// store, so every request after Login carries the new token without further
// wiring.
type Manager struct {
	api   *greenloop.API
	store tokens.Store
	logg  *logger.Logger
}

func NewManager(api *greenloop.API, store tokens.Store, logg *logger.Logger) *Manager {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Manager{api: api, store: store, logg: logg}
}

// Login authenticates a user and stores the returned pair.
func (m *Manager) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	resp, err := m.api.Auth.Login(ctx, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := m.save(ctx, resp.Tokens.AccessToken, resp.Tokens.RefreshToken); err != nil {
		return nil, err
	}
	m.logg.Info(m.logg.WithField(ctx, "kind", "user"), "session.login")
	return resp, nil
}

// Register creates the account and logs in with the returned pair.
func (m *Manager) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	resp, err := m.api.Auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := m.save(ctx, resp.Tokens.AccessToken, resp.Tokens.RefreshToken); err != nil {
		return nil, err
	}
	return resp, nil
}

// CompanyLogin authenticates a donor company and stores its pair.
func (m *Manager) CompanyLogin(ctx context.Context, email, password string) (*types.CompanyAuthResponse, error) {
	resp, err := m.api.CompanyAuth.Login(ctx, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := m.save(ctx, resp.AccessToken, resp.RefreshToken); err != nil {
		return nil, err
	}
	m.logg.Info(m.logg.WithField(ctx, "kind", "company"), "session.login")
	return resp, nil
}

// Refresh exchanges the stored refresh token for a new pair. A refresh
// response without a new refresh token keeps the old one.
func (m *Manager) Refresh(ctx context.Context) (tokens.Pair, error) {
	current, err := m.store.Get(ctx)
	if err != nil {
		return tokens.Pair{}, fmt.Errorf("read token store: %w", err)
	}
	if current.RefreshToken == "" {
		return tokens.Pair{}, ErrNoRefreshToken
	}

	resp, err := m.api.Auth.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return tokens.Pair{}, err
	}
	next := tokens.Pair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}
	if err := m.store.Set(ctx, next); err != nil {
		return tokens.Pair{}, fmt.Errorf("write token store: %w", err)
	}
	return next, nil
}

// RefreshCompany is Refresh against the company endpoint, which only rotates
// the access token.
func (m *Manager) RefreshCompany(ctx context.Context) (tokens.Pair, error) {
	current, err := m.store.Get(ctx)
	if err != nil {
		return tokens.Pair{}, fmt.Errorf("read token store: %w", err)
	}
	if current.RefreshToken == "" {
		return tokens.Pair{}, ErrNoRefreshToken
	}

	resp, err := m.api.CompanyAuth.Refresh(ctx, current.RefreshToken)
	if err != nil {
		return tokens.Pair{}, err
	}
	next := tokens.Pair{AccessToken: resp.AccessToken, RefreshToken: current.RefreshToken}
	if err := m.store.Set(ctx, next); err != nil {
		return tokens.Pair{}, fmt.Errorf("write token store: %w", err)
	}
	return next, nil
}

// RefreshIfExpiring refreshes when the stored access token expires within
// window. Opaque tokens are left alone.
func (m *Manager) RefreshIfExpiring(ctx context.Context, now time.Time, window time.Duration) (bool, error) {
	current, err := m.store.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("read token store: %w", err)
	}
	if current.Empty() || !auth.ExpiresWithin(current.AccessToken, now, window) {
		return false, nil
	}
	if _, err := m.Refresh(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Logout tells the backend and always clears the local pair, even when the
// backend call fails. Both errors are returned together.
func (m *Manager) Logout(ctx context.Context) error {
	current, err := m.store.Get(ctx)
	if err != nil {
		err = fmt.Errorf("read token store: %w", err)
	}

	if current.AccessToken != "" {
		var req *types.LogoutRequest
		if current.RefreshToken != "" {
			refresh := current.RefreshToken
			req = &types.LogoutRequest{RefreshToken: &refresh}
		}
		if _, logoutErr := m.api.Auth.Logout(ctx, req); logoutErr != nil {
			m.logg.Warn(m.logg.WithField(ctx, "error", logoutErr.Error()), "session.logout.remote_failed")
			err = multierr.Append(err, logoutErr)
		}
	}

	if clearErr := m.store.Clear(ctx); clearErr != nil {
		err = multierr.Append(err, fmt.Errorf("clear token store: %w", clearErr))
	}
	return err
}

// Current returns the stored pair.
func (m *Manager) Current(ctx context.Context) (tokens.Pair, error) {
	return m.store.Get(ctx)
}

func (m *Manager) save(ctx context.Context, access, refresh string) error {
	if err := m.store.Set(ctx, tokens.Pair{AccessToken: access, RefreshToken: refresh}); err != nil {
		return fmt.Errorf("write token store: %w", err)
	}
	return nil
}
