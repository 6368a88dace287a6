package types

import "time"

type Rating struct {
	ID                  string     `json:"id" validate:"required"`
	RaterID             string     `json:"rater_id"`
	RatedUserID         string     `json:"rated_user_id"`
	ExchangeID          string     `json:"exchange_id"`
	OverallRating       int        `json:"overall_rating" validate:"min=1,max=5"`
	CommunicationRating *int       `json:"communication_rating,omitempty"`
	PunctualityRating   *int       `json:"punctuality_rating,omitempty"`
	ItemConditionRating *int       `json:"item_condition_rating,omitempty"`
	FriendlinessRating  *int       `json:"friendliness_rating,omitempty"`
	Comment             *string    `json:"comment,omitempty"`
	WouldExchangeAgain  *bool      `json:"would_exchange_again,omitempty"`
	Rater               Object     `json:"rater,omitempty"`
	RatedUser           Object     `json:"rated_user,omitempty"`
	CreatedAt           *time.Time `json:"created_at,omitempty"`
}

type RatingInput struct {
	ExchangeID          string  `json:"exchange_id,omitempty"`
	RatedUserID         string  `json:"rated_user_id,omitempty"`
	OverallRating       int     `json:"overall_rating,omitempty"`
	CommunicationRating *int    `json:"communication_rating,omitempty"`
	PunctualityRating   *int    `json:"punctuality_rating,omitempty"`
	ItemConditionRating *int    `json:"item_condition_rating,omitempty"`
	FriendlinessRating  *int    `json:"friendliness_rating,omitempty"`
	Comment             *string `json:"comment,omitempty"`
	WouldExchangeAgain  *bool   `json:"would_exchange_again,omitempty"`
}

type RatingStats struct {
	UserID             string         `json:"user_id"`
	TotalRatings       int            `json:"total_ratings"`
	AverageRating      float64        `json:"average_rating"`
	RatingDistribution map[string]int `json:"rating_distribution,omitempty"`
}

type PendingRatings struct {
	PendingRatings []Object `json:"pending_ratings"`
	Total          int      `json:"total"`
}

type RatingSettings struct {
	AllowPublicRatings *bool `json:"allow_public_ratings,omitempty"`
	RequireComments    *bool `json:"require_comments,omitempty"`
}
