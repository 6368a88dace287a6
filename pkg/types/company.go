package types

import "time"

type Company struct {
	ID                  string     `json:"id" validate:"required"`
	Username            string     `json:"username"`
	CompanyName         string     `json:"company_name"`
	Email               string     `json:"email"`
	Industry            *string    `json:"industry,omitempty"`
	CompanySize         *string    `json:"company_size,omitempty"`
	Website             *string    `json:"website,omitempty"`
	City                *string    `json:"city,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsVerified          bool       `json:"is_verified"`
	ReputationScore     float64    `json:"reputation_score"`
	TotalExchanges      int        `json:"total_exchanges"`
	SuccessfulExchanges int        `json:"successful_exchanges"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
}

type CompanyRegisterRequest struct {
	Username        string  `json:"username"`
	CompanyName     string  `json:"company_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
	Industry        *string `json:"industry,omitempty"`
	CompanySize     *string `json:"company_size,omitempty"`
	Website         *string `json:"website,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	City            *string `json:"city,omitempty"`
	State           *string `json:"state,omitempty"`
	Country         *string `json:"country,omitempty"`
	AcceptTerms     bool    `json:"accept_terms"`
}

type CompanySessionInfo struct {
	SessionID string     `json:"session_id"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IPAddress *string    `json:"ip_address,omitempty"`
}

// CompanyAuthResponse is flat: the token pair sits at the top level next to
// the company record.
type CompanyAuthResponse struct {
	AccessToken  string              `json:"access_token" validate:"required"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"`
	Company      Object              `json:"company"`
	SessionInfo  *CompanySessionInfo `json:"session_info,omitempty"`
	Message      *string             `json:"message,omitempty"`
}

type CompanyRefreshResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type CompanyLogoutRequest struct {
	RefreshToken *string `json:"refresh_token,omitempty"`
	AllSessions  bool    `json:"all_sessions,omitempty"`
}
