package types

import "time"

// LoginRequest is shared by user and company login.
type LoginRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	RememberMe bool    `json:"remember_me,omitempty"`
	DeviceInfo *string `json:"device_info,omitempty"`
}

type RegisterRequest struct {
	Username        string  `json:"username"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	City            *string `json:"city,omitempty"`
	State           *string `json:"state,omitempty"`
	Country         *string `json:"country,omitempty"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	AcceptTerms     bool    `json:"accept_terms"`
	AcceptPrivacy   bool    `json:"accept_privacy"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	User         Object `json:"user,omitempty"`
}

type SessionInfo struct {
	ID                   string     `json:"id"`
	DeviceName           string     `json:"device_name,omitempty"`
	Location             string     `json:"location,omitempty"`
	IPAddress            *string    `json:"ip_address,omitempty"`
	IsCurrent            bool       `json:"is_current"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	LastActivity         *time.Time `json:"last_activity,omitempty"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	IsExpired            bool       `json:"is_expired"`
	TimeUntilExpiryHours int        `json:"time_until_expiry_hours"`
}

// AuthResponse is returned by user login and registration.
type AuthResponse struct {
	Message     string        `json:"message"`
	User        Object        `json:"user"`
	Tokens      TokenResponse `json:"tokens"`
	SessionInfo *SessionInfo  `json:"session_info,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken     *string `json:"refresh_token,omitempty"`
	LogoutAllDevices bool    `json:"logout_all_devices,omitempty"`
}

type AuthStatus struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	User            Object `json:"user,omitempty"`
	SessionValid    bool   `json:"session_valid"`
	ExpiresIn       *int   `json:"expires_in,omitempty"`
}

type UsernameCheck struct {
	Username string `json:"username"`
}

type EmailCheck struct {
	Email string `json:"email"`
}

type Availability struct {
	Available   bool     `json:"available"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type ActiveSessions struct {
	Sessions         []SessionInfo `json:"sessions"`
	TotalSessions    int           `json:"total_sessions"`
	CurrentSessionID string        `json:"current_session_id"`
}

type RevokeSessionRequest struct {
	SessionID string `json:"session_id"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Email           string `json:"email"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}
