package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

type NotificationsService struct {
	c *httpclient.Client
}

type NotificationListParams struct {
	NotificationType string
	Priority         string
	IsRead           *bool
	PageParams
}

func (s *NotificationsService) List(ctx context.Context, params NotificationListParams) (pagination.Page[types.Notification], error) {
	q := newQuery().
		str("notification_type", params.NotificationType).
		str("priority", params.Priority).
		flag("is_read", params.IsRead)
	params.apply(q, "page_size")
	return getPage[types.Notification](ctx, s.c, q.path(PathNotifications), "notifications", endpoint("notifications.list"))
}

func (s *NotificationsService) MarkRead(ctx context.Context, notificationID string) (*types.MessageResponse, error) {
	return put[types.MessageResponse](ctx, s.c, join(PathNotifications, notificationID, "read"), nil, endpoint("notifications.mark_read"))
}

func (s *NotificationsService) MarkAllRead(ctx context.Context) (*types.MessageResponse, error) {
	return put[types.MessageResponse](ctx, s.c, PathNotificationsReadAll, nil, endpoint("notifications.mark_all_read"))
}

func (s *NotificationsService) Settings(ctx context.Context) (*types.NotificationSettings, error) {
	return get[types.NotificationSettings](ctx, s.c, PathNotificationsSettings, endpoint("notifications.settings"))
}

func (s *NotificationsService) UpdateSettings(ctx context.Context, settings types.NotificationSettings) (*types.MessageResponse, error) {
	return put[types.MessageResponse](ctx, s.c, PathNotificationsSettings, settings, endpoint("notifications.update_settings"))
}

func (s *NotificationsService) Stats(ctx context.Context) (*types.NotificationStats, error) {
	return get[types.NotificationStats](ctx, s.c, PathNotificationsStats, endpoint("notifications.stats"))
}

func (s *NotificationsService) Delete(ctx context.Context, notificationID string) error {
	return s.c.Delete(ctx, join(PathNotifications, notificationID), nil, endpoint("notifications.delete"))
}

// StatsService exposes the public impact dashboards.
type StatsService struct {
	c *httpclient.Client
}

func (s *StatsService) EducationImpact(ctx context.Context) (*types.EducationImpact, error) {
	return get[types.EducationImpact](ctx, s.c, PathStatsEducationImpact, httpclient.Public(), endpoint("stats.education_impact"))
}

func (s *StatsService) PlatformMetrics(ctx context.Context) (types.PlatformMetrics, error) {
	out, err := get[types.PlatformMetrics](ctx, s.c, PathStatsPlatformMetrics, httpclient.Public(), endpoint("stats.platform_metrics"))
	if err != nil {
		return nil, err
	}
	return *out, nil
}
