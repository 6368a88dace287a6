package enums

import (
	"fmt"
	"strings"
)

// ItemStatus is the availability of a listed item.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusReserved  ItemStatus = "reserved"
	ItemStatusExchanged ItemStatus = "exchanged"
	ItemStatusInactive  ItemStatus = "inactive"
)

var validItemStatuses = []ItemStatus{
	ItemStatusAvailable,
	ItemStatusReserved,
	ItemStatusExchanged,
	ItemStatusInactive,
}

// String implements fmt.Stringer.
func (s ItemStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ItemStatus.
func (s ItemStatus) IsValid() bool {
	for _, candidate := range validItemStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemStatus converts raw input into an ItemStatus. Admin endpoints send
// the upper-case form, so matching ignores case.
func ParseItemStatus(value string) (ItemStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validItemStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item status %q", value)
}

// AdminCode is the upper-case form the admin endpoints accept, e.g. AVAILABLE.
func (s ItemStatus) AdminCode() string {
	return strings.ToUpper(string(s))
}

// ItemStatusLabel is the Spanish label shown for an item status in admin views.
type ItemStatusLabel string

const (
	ItemStatusLabelAvailable ItemStatusLabel = "Disponible"
	ItemStatusLabelReserved  ItemStatusLabel = "En intercambio"
	ItemStatusLabelExchanged ItemStatusLabel = "Intercambiado"
	ItemStatusLabelInactive  ItemStatusLabel = "Inactivo"
)

var labelByItemStatus = map[ItemStatus]ItemStatusLabel{
	ItemStatusAvailable: ItemStatusLabelAvailable,
	ItemStatusReserved:  ItemStatusLabelReserved,
	ItemStatusExchanged: ItemStatusLabelExchanged,
	ItemStatusInactive:  ItemStatusLabelInactive,
}

// NormalizeAdminItemStatus maps whatever the admin item list returned into a
// label. Labels pass through, status codes in either case are translated and
// anything else becomes Disponible.
func NormalizeAdminItemStatus(raw string) ItemStatusLabel {
	for _, label := range labelByItemStatus {
		if string(label) == raw {
			return label
		}
	}
	if status, err := ParseItemStatus(raw); err == nil {
		return labelByItemStatus[status]
	}
	return ItemStatusLabelAvailable
}

// ItemCondition describes the physical state of an item.
type ItemCondition string

const (
	ItemConditionNew       ItemCondition = "new"
	ItemConditionLikeNew   ItemCondition = "like_new"
	ItemConditionExcellent ItemCondition = "excellent"
	ItemConditionGood      ItemCondition = "good"
	ItemConditionFair      ItemCondition = "fair"
	ItemConditionPoor      ItemCondition = "poor"
)

var validItemConditions = []ItemCondition{
	ItemConditionNew,
	ItemConditionLikeNew,
	ItemConditionExcellent,
	ItemConditionGood,
	ItemConditionFair,
	ItemConditionPoor,
}

func (c ItemCondition) String() string {
	return string(c)
}

func (c ItemCondition) IsValid() bool {
	for _, candidate := range validItemConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCondition converts raw input into an ItemCondition.
func ParseItemCondition(value string) (ItemCondition, error) {
	for _, candidate := range validItemConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item condition %q", value)
}
