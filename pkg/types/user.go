package types

import "time"

type User struct {
	ID                  string     `json:"id" validate:"required"`
	Email               string     `json:"email,omitempty"`
	Username            string     `json:"username" validate:"required"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	FullName            string     `json:"full_name"`
	Phone               *string    `json:"phone,omitempty"`
	Bio                 *string    `json:"bio,omitempty"`
	AvatarURL           *string    `json:"avatar_url,omitempty"`
	City                *string    `json:"city,omitempty"`
	State               *string    `json:"state,omitempty"`
	Country             *string    `json:"country,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsAdmin             bool       `json:"is_admin"`
	EmailVerified       bool       `json:"email_verified"`
	PhoneVerified       bool       `json:"phone_verified"`
	ReputationScore     float64    `json:"reputation_score"`
	TotalExchanges      int        `json:"total_exchanges"`
	SuccessfulExchanges int        `json:"successful_exchanges"`
	SuccessRate         float64    `json:"success_rate"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
}

// UserListItem is the compact row returned by admin and search listings.
type UserListItem struct {
	ID              string  `json:"id" validate:"required"`
	Username        string  `json:"username"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FullName        string  `json:"full_name"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	City            *string `json:"city,omitempty"`
	IsActive        bool    `json:"is_active"`
	ReputationScore float64 `json:"reputation_score"`
	TotalExchanges  int     `json:"total_exchanges"`
}

type UserStats struct {
	TotalItems          int     `json:"total_items"`
	ActiveItems         int     `json:"active_items"`
	TotalExchanges      int     `json:"total_exchanges"`
	SuccessfulExchanges int     `json:"successful_exchanges"`
	PendingExchanges    int     `json:"pending_exchanges"`
	SuccessRate         float64 `json:"success_rate"`
	ReputationScore     float64 `json:"reputation_score"`
	TotalRatings        int     `json:"total_ratings"`
	AverageRating       float64 `json:"average_rating"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	Country   *string `json:"country,omitempty"`
}

type UserSettings struct {
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	EmailNotifications   *bool   `json:"email_notifications,omitempty"`
	PrivacyLevel         *string `json:"privacy_level,omitempty"`
	ShowPhone            *bool   `json:"show_phone,omitempty"`
	ShowEmail            *bool   `json:"show_email,omitempty"`
	ShowLocation         *bool   `json:"show_location,omitempty"`
}

// AdminUserUpdate is sent by PATCH /admin/users/{id}.
type AdminUserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	City      *string `json:"city,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}
