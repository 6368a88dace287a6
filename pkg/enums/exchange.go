package enums

import "fmt"

// ExchangeStatus tracks an exchange from request to completion.
type ExchangeStatus string

const (
	ExchangeStatusPending        ExchangeStatus = "pending"
	ExchangeStatusAccepted       ExchangeStatus = "accepted"
	ExchangeStatusRejected       ExchangeStatus = "rejected"
	ExchangeStatusCounterOffered ExchangeStatus = "counter_offered"
	ExchangeStatusConfirmed      ExchangeStatus = "confirmed"
	ExchangeStatusInProgress     ExchangeStatus = "in_progress"
	ExchangeStatusCompleted      ExchangeStatus = "completed"
	ExchangeStatusCancelled      ExchangeStatus = "cancelled"
	ExchangeStatusDisputed       ExchangeStatus = "disputed"
)

var validExchangeStatuses = []ExchangeStatus{
	ExchangeStatusPending,
	ExchangeStatusAccepted,
	ExchangeStatusRejected,
	ExchangeStatusCounterOffered,
	ExchangeStatusConfirmed,
	ExchangeStatusInProgress,
	ExchangeStatusCompleted,
	ExchangeStatusCancelled,
	ExchangeStatusDisputed,
}

// String implements fmt.Stringer.
func (s ExchangeStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ExchangeStatus.
func (s ExchangeStatus) IsValid() bool {
	for _, candidate := range validExchangeStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsFinal reports whether no further transition is possible.
func (s ExchangeStatus) IsFinal() bool {
	switch s {
	case ExchangeStatusRejected, ExchangeStatusCompleted, ExchangeStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseExchangeStatus converts raw input into an ExchangeStatus.
func ParseExchangeStatus(value string) (ExchangeStatus, error) {
	for _, candidate := range validExchangeStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid exchange status %q", value)
}
