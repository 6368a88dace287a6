package types

import (
	"time"

	"github.com/greenloop/greenloop-go/pkg/enums"
)

type CommunityStats struct {
	TotalUsers        int     `json:"total_users"`
	TotalExchanges    int     `json:"total_exchanges"`
	TotalItems        int     `json:"total_items"`
	ActiveUsers       int     `json:"active_users"`
	CO2SavedKG        float64 `json:"co2_saved_kg"`
	ItemsSavedFromBin int     `json:"items_saved_from_landfill"`
}

type CommunityUser struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Avatar         string  `json:"avatar"`
	Location       string  `json:"location"`
	TotalExchanges int     `json:"total_exchanges"`
	Rating         float64 `json:"rating"`
	JoinDate       string  `json:"join_date"`
}

type TopUsers struct {
	Users []CommunityUser `json:"users"`
}

type CommunityPost struct {
	ID        string         `json:"id" validate:"required"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	PostType  enums.PostType `json:"post_type"`
	Author    *CommunityUser `json:"author,omitempty"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	IsLiked   bool           `json:"is_liked"`
	Tags      []string       `json:"tags,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
}

type PostCreate struct {
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	PostType enums.PostType `json:"post_type"`
	Tags     []string       `json:"tags,omitempty"`
}

type PostResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Post    *CommunityPost `json:"post,omitempty"`
}

type LikeResponse struct {
	Success    bool `json:"success"`
	IsLiked    bool `json:"is_liked"`
	LikesCount int  `json:"likes_count"`
}
