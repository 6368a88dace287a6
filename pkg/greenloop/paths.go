package greenloop

import "net/url"

const apiPrefix = "/api/v1"

const (
	pathAuth          = apiPrefix + "/auth"
	pathCompanyAuth   = apiPrefix + "/company-auth"
	pathUsers         = apiPrefix + "/users"
	pathItems         = apiPrefix + "/items"
	pathCategories    = apiPrefix + "/categories"
	pathExchanges     = apiPrefix + "/exchanges"
	pathMessages      = apiPrefix + "/messages"
	pathNotifications = apiPrefix + "/notifications"
	pathStats         = apiPrefix + "/stats"
	pathRatings       = apiPrefix + "/ratings"
	pathCommunity     = apiPrefix + "/community"
	pathContributions = apiPrefix + "/contributions"
	pathAdmin         = apiPrefix + "/admin"
)

const (
	PathAuthLogin                = pathAuth + "/login"
	PathAuthRegister             = pathAuth + "/register"
	PathAuthRefresh              = pathAuth + "/refresh"
	PathAuthLogout               = pathAuth + "/logout"
	PathAuthMe                   = pathAuth + "/me"
	PathAuthStatus               = pathAuth + "/status"
	PathAuthCheckUsername        = pathAuth + "/check-username"
	PathAuthCheckEmail           = pathAuth + "/check-email"
	PathAuthSessions             = pathAuth + "/sessions"
	PathAuthRevokeSession        = pathAuth + "/revoke-session"
	PathAuthChangePassword       = pathAuth + "/change-password"
	PathAuthRequestPasswordReset = pathAuth + "/request-password-reset"
	PathAuthResetPassword        = pathAuth + "/reset-password"

	PathCompanyLogin    = pathCompanyAuth + "/login"
	PathCompanyRegister = pathCompanyAuth + "/register"
	PathCompanyRefresh  = pathCompanyAuth + "/refresh"
	PathCompanyMe       = pathCompanyAuth + "/me"
	PathCompanyLogout   = pathCompanyAuth + "/logout"

	PathUsersProfile           = pathUsers + "/profile"
	PathUsersProfileStats      = pathUsers + "/profile/stats"
	PathUsersSettings          = pathUsers + "/settings"
	PathUsersMyItems           = pathUsers + "/me/items"
	PathUsersMyExchanges       = pathUsers + "/me/exchanges"
	PathUsersSearch            = pathUsers + "/search"
	PathUsersRewards           = pathUsers + "/me/rewards"
	PathUsersRewardsCatalog    = pathUsers + "/me/rewards/catalog"
	PathUsersRewardsRedeem     = pathUsers + "/me/rewards/redeem"
	PathUsersRewardRedemptions = pathUsers + "/me/rewards/redemptions"

	PathItems           = pathItems
	PathItemsSearch     = pathItems + "/search"
	PathItemsCategories = pathItems + "/categories"

	PathCategories        = pathCategories
	PathCategoriesPopular = pathCategories + "/popular"

	PathExchanges          = pathExchanges
	PathExchangesUserStats = pathExchanges + "/stats/user"

	PathMessagesConversations = pathMessages + "/conversations"
	PathMessagesConversation  = pathMessages + "/conversation"
	PathMessagesSend          = pathMessages + "/send"
	PathMessagesMarkRead      = pathMessages + "/mark-read"
	PathMessagesSearch        = pathMessages + "/search"
	PathMessagesStats         = pathMessages + "/stats"

	PathNotifications         = pathNotifications
	PathNotificationsReadAll  = pathNotifications + "/read-all"
	PathNotificationsSettings = pathNotifications + "/settings"
	PathNotificationsStats    = pathNotifications + "/stats"

	PathStatsEducationImpact = pathStats + "/education-impact"
	PathStatsPlatformMetrics = pathStats + "/platform-metrics"

	PathRatings         = pathRatings
	PathRatingsStats    = pathRatings + "/stats"
	PathRatingsPending  = pathRatings + "/pending"
	PathRatingsSettings = pathRatings + "/settings"

	PathCommunityStats    = pathCommunity + "/stats"
	PathCommunityTopUsers = pathCommunity + "/top-users"
	PathCommunityPosts    = pathCommunity + "/posts"

	PathContributions           = pathContributions
	PathContributionsCategories = pathContributions + "/categories"
	PathContributionsMine       = pathContributions + "/my"

	PathAdminUsers = pathAdmin + "/users"
	PathAdminItems = pathAdmin + "/items"
)

// join appends escaped path segments to base.
func join(base string, segments ...string) string {
	for _, s := range segments {
		base += "/" + url.PathEscape(s)
	}
	return base
}
