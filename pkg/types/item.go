package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID                   string              `json:"id" validate:"required"`
	Title                string              `json:"title" validate:"required"`
	Description          string              `json:"description"`
	CategoryID           string              `json:"category_id"`
	Condition            enums.ItemCondition `json:"condition"`
	EstimatedValue       *decimal.Decimal    `json:"estimated_value,omitempty"`
	OwnerID              string              `json:"owner_id"`
	Status               enums.ItemStatus    `json:"status"`
	Slug                 string              `json:"slug,omitempty"`
	ViewCount            int                 `json:"view_count"`
	InterestCount        int                 `json:"interest_count"`
	LocationDescription  *string             `json:"location_description,omitempty"`
	Latitude             *float64            `json:"latitude,omitempty"`
	Longitude            *float64            `json:"longitude,omitempty"`
	AllowPartialExchange bool                `json:"allow_partial_exchange"`
	Owner                Object              `json:"owner,omitempty"`
	Category             Object              `json:"category,omitempty"`
	Images               []ItemImage         `json:"images,omitempty"`
	CreatedAt            *time.Time          `json:"created_at,omitempty"`
	UpdatedAt            *time.Time          `json:"updated_at,omitempty"`
}

// ItemListItem is the row shape of every item listing.
type ItemListItem struct {
	ID              string              `json:"id" validate:"required"`
	Title           string              `json:"title"`
	Condition       enums.ItemCondition `json:"condition"`
	EstimatedValue  *decimal.Decimal    `json:"estimated_value,omitempty"`
	City            *string             `json:"city,omitempty"`
	State           *string             `json:"state,omitempty"`
	Status          string              `json:"status"`
	ViewCount       int                 `json:"view_count"`
	InterestCount   int                 `json:"interest_count"`
	CreatedAt       *time.Time          `json:"created_at,omitempty"`
	PrimaryImageURL *string             `json:"primary_image_url,omitempty"`
	OwnerUsername   string              `json:"owner_username"`
	OwnerRating     *float64            `json:"owner_rating,omitempty"`
	CategoryName    string              `json:"category_name"`
	CategoryIcon    *string             `json:"category_icon,omitempty"`
	CategoryColor   *string             `json:"category_color,omitempty"`
	DistanceKM      *float64            `json:"distance_km,omitempty"`
}

// AdminItem is an item row from the admin listing with its status label resolved.
type AdminItem struct {
	ItemListItem
	StatusLabel enums.ItemStatusLabel `json:"status_label"`
}

type ItemImage struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	IsPrimary bool    `json:"is_primary"`
	SortOrder int     `json:"sort_order"`
	AltText   *string `json:"alt_text,omitempty"`
}

// ItemInput creates or updates an item. On update only set fields are sent.
type ItemInput struct {
	Title                string              `json:"title,omitempty"`
	Description          string              `json:"description,omitempty"`
	CategoryID           string              `json:"category_id,omitempty"`
	Condition            enums.ItemCondition `json:"condition,omitempty"`
	EstimatedValue       *decimal.Decimal    `json:"estimated_value,omitempty"`
	LocationDescription  *string             `json:"location_description,omitempty"`
	AllowPartialExchange *bool               `json:"allow_partial_exchange,omitempty"`
	Tags                 []string            `json:"tags,omitempty"`
}

type ItemStatusUpdate struct {
	Status string `json:"status"`
}

type ItemImageUpload struct {
	Message        string      `json:"message"`
	UploadedImages []ItemImage `json:"uploaded_images"`
	TotalImages    int         `json:"total_images"`
}

type ItemInterest struct {
	Message       string `json:"message"`
	InterestCount int    `json:"interest_count"`
	IsInterested  bool   `json:"is_interested"`
}

type ItemFavorite struct {
	Message     string `json:"message"`
	IsFavorited bool   `json:"is_favorited"`
}

type ItemReport struct {
	Reason      string  `json:"reason"`
	Description *string `json:"description,omitempty"`
}

type RelatedItems struct {
	SimilarItems      []ItemListItem `json:"similar_items"`
	SameCategoryItems []ItemListItem `json:"same_category_items"`
	SameOwnerItems    []ItemListItem `json:"same_owner_items"`
	NearbyItems       []ItemListItem `json:"nearby_items"`
}
