package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
	"github.com/shopspring/decimal"
)

type ContributionCategory struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

type Contribution struct {
	ID              string                   `json:"id" validate:"required"`
	CompanyID       string                   `json:"company_id"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	CategoryID      string                   `json:"category_id"`
	CategoryName    string                   `json:"category_name,omitempty"`
	Quantity        *string                  `json:"quantity,omitempty"`
	EstimatedValue  *decimal.Decimal         `json:"estimated_value,omitempty"`
	DeliveryMethod  enums.DeliveryMethod     `json:"delivery_method"`
	Status          enums.ContributionStatus `json:"status"`
	City            *string                  `json:"city,omitempty"`
	IsRecurring     bool                     `json:"is_recurring"`
	ViewsCount      int                      `json:"views_count"`
	InterestedCount int                      `json:"interested_count"`
	CreatedAt       *time.Time               `json:"created_at,omitempty"`
}

type ContributionInput struct {
	Title          string                   `json:"title,omitempty"`
	Description    string                   `json:"description,omitempty"`
	CategoryID     string                   `json:"category_id,omitempty"`
	Quantity       *string                  `json:"quantity,omitempty"`
	EstimatedValue *decimal.Decimal         `json:"estimated_value,omitempty"`
	DeliveryMethod enums.DeliveryMethod     `json:"delivery_method,omitempty"`
	Status         enums.ContributionStatus `json:"status,omitempty"`
	City           *string                  `json:"city,omitempty"`
	IsRecurring    *bool                    `json:"is_recurring,omitempty"`
}
