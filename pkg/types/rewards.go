package types

import "time"

type RewardSummary struct {
	Points int    `json:"points"`
	Tier   string `json:"tier"`
}

type RewardItem struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Cost        int     `json:"cost"`
	ImageURL    *string `json:"image_url,omitempty"`
	Available   bool    `json:"available"`
}

type RedeemRequest struct {
	RewardID string `json:"reward_id"`
}

type RedeemResponse struct {
	PointsRemaining int    `json:"points_remaining"`
	Tier            string `json:"tier"`
	Message         string `json:"message"`
}

type Redemption struct {
	ID         string     `json:"id"`
	RewardID   string     `json:"reward_id"`
	RewardName string     `json:"reward_name"`
	Cost       int        `json:"cost"`
	Status     string     `json:"status"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}
