package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
)

type Notification struct {
	ID               string                     `json:"id" validate:"required"`
	UserID           string                     `json:"user_id"`
	NotificationType enums.NotificationType     `json:"notification_type"`
	Priority         enums.NotificationPriority `json:"priority,omitempty"`
	Title            string                     `json:"title"`
	Message          string                     `json:"message"`
	Data             Object                     `json:"data,omitempty"`
	ActionURL        *string                    `json:"action_url,omitempty"`
	IsRead           bool                       `json:"is_read"`
	CreatedAt        *time.Time                 `json:"created_at,omitempty"`
	ReadAt           *time.Time                 `json:"read_at,omitempty"`
}

type NotificationSettings struct {
	EmailEnabled    *bool `json:"email_enabled,omitempty"`
	PushEnabled     *bool `json:"push_enabled,omitempty"`
	ExchangeUpdates *bool `json:"exchange_updates,omitempty"`
	NewMessages     *bool `json:"new_messages,omitempty"`
}

type NotificationStats struct {
	Total  int            `json:"total_notifications"`
	Unread int            `json:"unread_notifications"`
	ByType map[string]int `json:"by_type,omitempty"`
}
