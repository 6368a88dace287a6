package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
	"github.com/shopspring/decimal"
)

// Exchange is the detail view of one exchange.
type Exchange struct {
	ID                     string               `json:"id" validate:"required"`
	Status                 enums.ExchangeStatus `json:"status"`
	RequesterID            string               `json:"requester_id"`
	OwnerID                string               `json:"owner_id"`
	RequesterItem          Object               `json:"requester_item,omitempty"`
	OwnerItem              Object               `json:"owner_item,omitempty"`
	InitialMessage         *string              `json:"initial_message,omitempty"`
	ProposedCashDifference *decimal.Decimal     `json:"proposed_cash_difference,omitempty"`
	FinalCashDifference    *decimal.Decimal     `json:"final_cash_difference,omitempty"`
	MeetingDate            *time.Time           `json:"meeting_date,omitempty"`
	MeetingLocation        *string              `json:"meeting_location,omitempty"`
	CreatedAt              *time.Time           `json:"created_at,omitempty"`
	UpdatedAt              *time.Time           `json:"updated_at,omitempty"`
	CompletedAt            *time.Time           `json:"completed_at,omitempty"`
}

// ExchangeListItem is the row shape of exchange listings.
type ExchangeListItem struct {
	ID                 string               `json:"id" validate:"required"`
	Status             enums.ExchangeStatus `json:"status"`
	RequesterItemTitle string               `json:"requester_item_title"`
	RequesterItemImage *string              `json:"requester_item_image,omitempty"`
	OwnerItemTitle     string               `json:"owner_item_title"`
	OwnerItemImage     *string              `json:"owner_item_image,omitempty"`
	OtherUserID        string               `json:"other_user_id"`
	OtherUserUsername  string               `json:"other_user_username"`
	OtherUserRating    *float64             `json:"other_user_rating,omitempty"`
	CreatedAt          *time.Time           `json:"created_at,omitempty"`
	UpdatedAt          *time.Time           `json:"updated_at,omitempty"`
}

// ExchangeWithParticipants bundles an exchange with both user profiles.
type ExchangeWithParticipants struct {
	Exchange  Exchange `json:"exchange"`
	Requester User     `json:"requester"`
	Owner     User     `json:"owner"`
}

type ExchangeCreate struct {
	RequestedItemID        string           `json:"requested_item_id"`
	OfferedItemID          *string          `json:"offered_item_id,omitempty"`
	Message                *string          `json:"message,omitempty"`
	ProposedCashDifference *decimal.Decimal `json:"proposed_cash_difference,omitempty"`
}

type ExchangeUpdate struct {
	Status                 *string          `json:"status,omitempty"`
	Message                *string          `json:"message,omitempty"`
	ProposedCashDifference *decimal.Decimal `json:"proposed_cash_difference,omitempty"`
}

type MeetingInfo struct {
	MeetingDate     time.Time `json:"meeting_date"`
	MeetingLocation string    `json:"meeting_location"`
	MeetingNotes    *string   `json:"meeting_notes,omitempty"`
}

type ExchangeTimelineEvent struct {
	EventType   string     `json:"event_type"`
	Description string     `json:"description"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
	UserID      *string    `json:"user_id,omitempty"`
}

type ExchangeStats struct {
	TotalExchanges     int     `json:"total_exchanges"`
	PendingExchanges   int     `json:"pending_exchanges"`
	CompletedExchanges int     `json:"completed_exchanges"`
	CancelledExchanges int     `json:"cancelled_exchanges"`
	SuccessRate        float64 `json:"success_rate"`
}
