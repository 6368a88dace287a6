package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

type CommunityService struct {
	c *httpclient.Client
}

type PostListParams struct {
	PostType string
	PageParams
}

func (s *CommunityService) Stats(ctx context.Context) (*types.CommunityStats, error) {
	return get[types.CommunityStats](ctx, s.c, PathCommunityStats, httpclient.Public(), endpoint("community.stats"))
}

func (s *CommunityService) TopUsers(ctx context.Context, limit int) (*types.TopUsers, error) {
	q := newQuery().integer("limit", limit)
	return get[types.TopUsers](ctx, s.c, q.path(PathCommunityTopUsers), httpclient.Public(), endpoint("community.top_users"))
}

func (s *CommunityService) Posts(ctx context.Context, params PostListParams) (pagination.Page[types.CommunityPost], error) {
	q := newQuery().str("post_type", params.PostType)
	params.apply(q, "limit")
	return getPage[types.CommunityPost](ctx, s.c, q.path(PathCommunityPosts), "posts", httpclient.Public(), endpoint("community.posts"))
}

func (s *CommunityService) CreatePost(ctx context.Context, in types.PostCreate) (*types.PostResponse, error) {
	return post[types.PostResponse](ctx, s.c, PathCommunityPosts, in, endpoint("community.create_post"))
}

func (s *CommunityService) LikePost(ctx context.Context, postID string) (*types.LikeResponse, error) {
	return post[types.LikeResponse](ctx, s.c, join(PathCommunityPosts, postID, "like"), nil, endpoint("community.like_post"))
}

// ContributionsService covers company donations.
type ContributionsService struct {
	c *httpclient.Client
}

type ContributionSearchParams struct {
	CategoryID     string
	DeliveryMethod string
	Status         string
	City           string
	IsRecurring    *bool
	Query          string
	PageParams
}

func (s *ContributionsService) Categories(ctx context.Context) ([]types.ContributionCategory, error) {
	return list[types.ContributionCategory](ctx, s.c, PathContributionsCategories, endpoint("contributions.categories"))
}

func (s *ContributionsService) Create(ctx context.Context, input types.ContributionInput) (*types.Contribution, error) {
	return post[types.Contribution](ctx, s.c, PathContributions, input, endpoint("contributions.create"))
}

func (s *ContributionsService) List(ctx context.Context, params ContributionSearchParams) (pagination.Page[types.Contribution], error) {
	q := newQuery().
		str("category_id", params.CategoryID).
		str("delivery_method", params.DeliveryMethod).
		str("status", params.Status).
		str("city", params.City).
		flag("is_recurring", params.IsRecurring).
		str("search_query", params.Query)
	params.apply(q, "limit")
	return getPage[types.Contribution](ctx, s.c, q.path(PathContributions), "contributions", endpoint("contributions.list"))
}

func (s *ContributionsService) Mine(ctx context.Context) ([]types.Contribution, error) {
	return list[types.Contribution](ctx, s.c, PathContributionsMine, endpoint("contributions.mine"))
}

func (s *ContributionsService) Get(ctx context.Context, contributionID string) (*types.Contribution, error) {
	return get[types.Contribution](ctx, s.c, join(PathContributions, contributionID), endpoint("contributions.get"))
}

func (s *ContributionsService) Update(ctx context.Context, contributionID string, input types.ContributionInput) (*types.Contribution, error) {
	return put[types.Contribution](ctx, s.c, join(PathContributions, contributionID), input, endpoint("contributions.update"))
}

func (s *ContributionsService) Delete(ctx context.Context, contributionID string) error {
	return s.c.Delete(ctx, join(PathContributions, contributionID), nil, endpoint("contributions.delete"))
}
