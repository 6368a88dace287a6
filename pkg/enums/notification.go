package enums

import "fmt"

// NotificationType is the event a notification reports.
type NotificationType string

const (
	NotificationTypeExchangeRequest    NotificationType = "exchange_request"
	NotificationTypeExchangeAccepted   NotificationType = "exchange_accepted"
	NotificationTypeExchangeRejected   NotificationType = "exchange_rejected"
	NotificationTypeExchangeConfirmed  NotificationType = "exchange_confirmed"
	NotificationTypeExchangeCompleted  NotificationType = "exchange_completed"
	NotificationTypeExchangeCancelled  NotificationType = "exchange_cancelled"
	NotificationTypeNewMessage         NotificationType = "new_message"
	NotificationTypeRatingReceived     NotificationType = "rating_received"
	NotificationTypeItemViewed         NotificationType = "item_viewed"
	NotificationTypeSystemAnnouncement NotificationType = "system_announcement"
	NotificationTypeAccountUpdate      NotificationType = "account_update"
	NotificationTypeSecurityAlert      NotificationType = "security_alert"
)

var validNotificationTypes = []NotificationType{
	NotificationTypeExchangeRequest,
	NotificationTypeExchangeAccepted,
	NotificationTypeExchangeRejected,
	NotificationTypeExchangeConfirmed,
	NotificationTypeExchangeCompleted,
	NotificationTypeExchangeCancelled,
	NotificationTypeNewMessage,
	NotificationTypeRatingReceived,
	NotificationTypeItemViewed,
	NotificationTypeSystemAnnouncement,
	NotificationTypeAccountUpdate,
	NotificationTypeSecurityAlert,
}

// IsValid checks whether the given type matches the canonical enum.
func (n NotificationType) IsValid() bool {
	for _, candidate := range validNotificationTypes {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNotificationType converts raw strings into NotificationType.
func ParseNotificationType(value string) (NotificationType, error) {
	for _, candidate := range validNotificationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notification type %q", value)
}

// NotificationPriority orders notifications in the inbox.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityUrgent NotificationPriority = "urgent"
)

func (p NotificationPriority) IsValid() bool {
	switch p {
	case NotificationPriorityLow, NotificationPriorityNormal, NotificationPriorityHigh, NotificationPriorityUrgent:
		return true
	default:
		return false
	}
}
