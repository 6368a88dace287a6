package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

type UsersService struct {
	c *httpclient.Client
}

type MyItemsParams struct {
	Status string
	PageParams
}

type UserSearchParams struct {
	Query string
	City  string
	Skip  int
	Limit int
}

func (s *UsersService) Profile(ctx context.Context) (*types.User, error) {
	return get[types.User](ctx, s.c, PathUsersProfile, endpoint("users.profile"))
}

func (s *UsersService) UpdateProfile(ctx context.Context, update types.ProfileUpdate) (*types.User, error) {
	return put[types.User](ctx, s.c, PathUsersProfile, update, endpoint("users.update_profile"))
}

func (s *UsersService) ProfileStats(ctx context.Context) (*types.UserStats, error) {
	return get[types.UserStats](ctx, s.c, PathUsersProfileStats, endpoint("users.profile_stats"))
}

func (s *UsersService) Settings(ctx context.Context) (*types.UserSettings, error) {
	return get[types.UserSettings](ctx, s.c, PathUsersSettings, endpoint("users.settings"))
}

func (s *UsersService) UpdateSettings(ctx context.Context, settings types.UserSettings) (*types.UserSettings, error) {
	return put[types.UserSettings](ctx, s.c, PathUsersSettings, settings, endpoint("users.update_settings"))
}

func (s *UsersService) MyItems(ctx context.Context, params MyItemsParams) (pagination.Page[types.ItemListItem], error) {
	q := newQuery().str("status", params.Status)
	params.apply(q, "page_size")
	return getPage[types.ItemListItem](ctx, s.c, q.path(PathUsersMyItems), "items", endpoint("users.my_items"))
}

func (s *UsersService) MyExchanges(ctx context.Context) ([]types.ExchangeListItem, error) {
	return list[types.ExchangeListItem](ctx, s.c, PathUsersMyExchanges, endpoint("users.my_exchanges"))
}

func (s *UsersService) Get(ctx context.Context, userID string) (*types.User, error) {
	return get[types.User](ctx, s.c, join(pathUsers, userID), endpoint("users.get"))
}

func (s *UsersService) Items(ctx context.Context, userID string) ([]types.ItemListItem, error) {
	return list[types.ItemListItem](ctx, s.c, join(pathUsers, userID, "items"), endpoint("users.items"))
}

func (s *UsersService) Search(ctx context.Context, params UserSearchParams) (pagination.Page[types.UserListItem], error) {
	q := newQuery().
		str("q", params.Query).
		str("city", params.City).
		integer("skip", params.Skip).
		integer("limit", params.Limit)
	return getPage[types.UserListItem](ctx, s.c, q.path(PathUsersSearch), "users", endpoint("users.search"))
}

func (s *UsersService) Rewards(ctx context.Context) (*types.RewardSummary, error) {
	return get[types.RewardSummary](ctx, s.c, PathUsersRewards, endpoint("users.rewards"))
}

func (s *UsersService) RewardsCatalog(ctx context.Context) ([]types.RewardItem, error) {
	return list[types.RewardItem](ctx, s.c, PathUsersRewardsCatalog, endpoint("users.rewards_catalog"))
}

func (s *UsersService) RedeemReward(ctx context.Context, rewardID string) (*types.RedeemResponse, error) {
	body := types.RedeemRequest{RewardID: rewardID}
	return post[types.RedeemResponse](ctx, s.c, PathUsersRewardsRedeem, body, endpoint("users.redeem_reward"))
}

// RewardRedemptions lists past redemptions. The backend answers with the legacy
// {items, page, total_pages} envelope.
func (s *UsersService) RewardRedemptions(ctx context.Context, params PageParams) (pagination.Page[types.Redemption], error) {
	q := params.apply(newQuery(), "page_size")
	return getPage[types.Redemption](ctx, s.c, q.path(PathUsersRewardRedemptions), "items", endpoint("users.reward_redemptions"))
}
