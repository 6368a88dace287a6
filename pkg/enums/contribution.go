package enums

import "fmt"

// ContributionStatus tracks a company donation offer.
type ContributionStatus string

const (
	ContributionStatusDraft     ContributionStatus = "draft"
	ContributionStatusActive    ContributionStatus = "active"
	ContributionStatusCompleted ContributionStatus = "completed"
	ContributionStatusCancelled ContributionStatus = "cancelled"
)

var validContributionStatuses = []ContributionStatus{
	ContributionStatusDraft,
	ContributionStatusActive,
	ContributionStatusCompleted,
	ContributionStatusCancelled,
}

// IsValid reports whether the value is a known ContributionStatus.
func (s ContributionStatus) IsValid() bool {
	for _, candidate := range validContributionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseContributionStatus converts raw input into a ContributionStatus.
func ParseContributionStatus(value string) (ContributionStatus, error) {
	for _, candidate := range validContributionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contribution status %q", value)
}

// DeliveryMethod is how a contribution reaches its recipient.
type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodShipping DeliveryMethod = "shipping"
	DeliveryMethodDigital  DeliveryMethod = "digital"
	DeliveryMethodOnSite   DeliveryMethod = "on_site"
)

func (d DeliveryMethod) IsValid() bool {
	switch d {
	case DeliveryMethodPickup, DeliveryMethodDelivery, DeliveryMethodShipping, DeliveryMethodDigital, DeliveryMethodOnSite:
		return true
	default:
		return false
	}
}
