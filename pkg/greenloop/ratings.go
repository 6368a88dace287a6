package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

type RatingsService struct {
	c *httpclient.Client
}

type RatingListParams struct {
	UserID     string
	ExchangeID string
	PageParams
}

func (s *RatingsService) List(ctx context.Context, params RatingListParams) (pagination.Page[types.Rating], error) {
	q := newQuery().str("user_id", params.UserID).str("exchange_id", params.ExchangeID)
	params.apply(q, "page_size")
	return getPage[types.Rating](ctx, s.c, q.path(PathRatings), "ratings", endpoint("ratings.list"))
}

func (s *RatingsService) Create(ctx context.Context, input types.RatingInput) (*types.Rating, error) {
	return post[types.Rating](ctx, s.c, PathRatings, input, endpoint("ratings.create"))
}

func (s *RatingsService) Get(ctx context.Context, ratingID string) (*types.Rating, error) {
	return get[types.Rating](ctx, s.c, join(PathRatings, ratingID), endpoint("ratings.get"))
}

func (s *RatingsService) Update(ctx context.Context, ratingID string, input types.RatingInput) (*types.Rating, error) {
	return put[types.Rating](ctx, s.c, join(PathRatings, ratingID), input, endpoint("ratings.update"))
}

func (s *RatingsService) Delete(ctx context.Context, ratingID string) error {
	return s.c.Delete(ctx, join(PathRatings, ratingID), nil, endpoint("ratings.delete"))
}

func (s *RatingsService) Stats(ctx context.Context, userID string) (*types.RatingStats, error) {
	return get[types.RatingStats](ctx, s.c, join(PathRatingsStats, userID), endpoint("ratings.stats"))
}

func (s *RatingsService) Pending(ctx context.Context) (*types.PendingRatings, error) {
	return get[types.PendingRatings](ctx, s.c, PathRatingsPending, endpoint("ratings.pending"))
}

func (s *RatingsService) Settings(ctx context.Context) (*types.RatingSettings, error) {
	return get[types.RatingSettings](ctx, s.c, PathRatingsSettings, endpoint("ratings.settings"))
}

func (s *RatingsService) UpdateSettings(ctx context.Context, settings types.RatingSettings) (*types.MessageResponse, error) {
	return put[types.MessageResponse](ctx, s.c, PathRatingsSettings, settings, endpoint("ratings.update_settings"))
}
