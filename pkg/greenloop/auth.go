package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/types"
)

// AuthService covers /auth for individual users.
type AuthService struct {
	c *httpclient.Client
}

func (s *AuthService) Login(ctx context.Context, req types.LoginRequest) (*types.AuthResponse, error) {
	return post[types.AuthResponse](ctx, s.c, PathAuthLogin, req, httpclient.Public(), endpoint("auth.login"))
}

func (s *AuthService) Register(ctx context.Context, req types.RegisterRequest) (*types.AuthResponse, error) {
	return post[types.AuthResponse](ctx, s.c, PathAuthRegister, req, httpclient.Public(), endpoint("auth.register"))
}

// Refresh trades a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenResponse, error) {
	body := types.RefreshRequest{RefreshToken: refreshToken}
	return post[types.TokenResponse](ctx, s.c, PathAuthRefresh, body, httpclient.Public(), endpoint("auth.refresh"))
}

// Logout ends the current session. req may be nil.
func (s *AuthService) Logout(ctx context.Context, req *types.LogoutRequest) (*types.MessageResponse, error) {
	var body any
	if req != nil {
		body = req
	}
	return post[types.MessageResponse](ctx, s.c, PathAuthLogout, body, endpoint("auth.logout"))
}

func (s *AuthService) Me(ctx context.Context) (*types.User, error) {
	return get[types.User](ctx, s.c, PathAuthMe, endpoint("auth.me"))
}

func (s *AuthService) Status(ctx context.Context) (*types.AuthStatus, error) {
	return get[types.AuthStatus](ctx, s.c, PathAuthStatus, endpoint("auth.status"))
}

func (s *AuthService) CheckUsername(ctx context.Context, username string) (*types.Availability, error) {
	body := types.UsernameCheck{Username: username}
	return post[types.Availability](ctx, s.c, PathAuthCheckUsername, body, httpclient.Public(), endpoint("auth.check_username"))
}

func (s *AuthService) CheckEmail(ctx context.Context, email string) (*types.Availability, error) {
	body := types.EmailCheck{Email: email}
	return post[types.Availability](ctx, s.c, PathAuthCheckEmail, body, httpclient.Public(), endpoint("auth.check_email"))
}

func (s *AuthService) Sessions(ctx context.Context) (*types.ActiveSessions, error) {
	return get[types.ActiveSessions](ctx, s.c, PathAuthSessions, endpoint("auth.sessions"))
}

func (s *AuthService) RevokeSession(ctx context.Context, sessionID string) (*types.MessageResponse, error) {
	body := types.RevokeSessionRequest{SessionID: sessionID}
	return post[types.MessageResponse](ctx, s.c, PathAuthRevokeSession, body, endpoint("auth.revoke_session"))
}

func (s *AuthService) ChangePassword(ctx context.Context, req types.ChangePasswordRequest) (*types.MessageResponse, error) {
	return post[types.MessageResponse](ctx, s.c, PathAuthChangePassword, req, endpoint("auth.change_password"))
}

func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (*types.MessageResponse, error) {
	body := types.PasswordResetRequest{Email: email}
	return post[types.MessageResponse](ctx, s.c, PathAuthRequestPasswordReset, body, httpclient.Public(), endpoint("auth.request_password_reset"))
}

func (s *AuthService) ResetPassword(ctx context.Context, req types.ResetPasswordRequest) (*types.MessageResponse, error) {
	return post[types.MessageResponse](ctx, s.c, PathAuthResetPassword, req, httpclient.Public(), endpoint("auth.reset_password"))
}

// CompanyAuthService covers /company-auth for donor companies.
type CompanyAuthService struct {
	c *httpclient.Client
}

func (s *CompanyAuthService) Login(ctx context.Context, req types.LoginRequest) (*types.CompanyAuthResponse, error) {
	return post[types.CompanyAuthResponse](ctx, s.c, PathCompanyLogin, req, httpclient.Public(), endpoint("company_auth.login"))
}

func (s *CompanyAuthService) Register(ctx context.Context, req types.CompanyRegisterRequest) (*types.CompanyAuthResponse, error) {
	return post[types.CompanyAuthResponse](ctx, s.c, PathCompanyRegister, req, httpclient.Public(), endpoint("company_auth.register"))
}

// Refresh returns a new access token only; the refresh token stays valid.
func (s *CompanyAuthService) Refresh(ctx context.Context, refreshToken string) (*types.CompanyRefreshResponse, error) {
	body := types.RefreshRequest{RefreshToken: refreshToken}
	return post[types.CompanyRefreshResponse](ctx, s.c, PathCompanyRefresh, body, httpclient.Public(), endpoint("company_auth.refresh"))
}

func (s *CompanyAuthService) Me(ctx context.Context) (*types.Company, error) {
	return get[types.Company](ctx, s.c, PathCompanyMe, endpoint("company_auth.me"))
}

func (s *CompanyAuthService) Logout(ctx context.Context, req types.CompanyLogoutRequest) (*types.MessageResponse, error) {
	return post[types.MessageResponse](ctx, s.c, PathCompanyLogout, req, endpoint("company_auth.logout"))
}
