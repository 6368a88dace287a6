package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/enums"
	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
)

// AdminService groups the moderation endpoints. All of them need an admin token.
type AdminService struct {
	Users *AdminUsersService
	Items *AdminItemsService
}

type AdminUsersService struct {
	c *httpclient.Client
}

type AdminListParams struct {
	Status string
	Search string
	PageParams
}

func (p AdminListParams) path(base string) string {
	q := newQuery().str("status", p.Status).str("search", p.Search)
	return p.apply(q, "page_size").path(base)
}

func (s *AdminUsersService) List(ctx context.Context, params AdminListParams) (pagination.Page[types.UserListItem], error) {
	return getPage[types.UserListItem](ctx, s.c, params.path(PathAdminUsers), "items", endpoint("admin.users.list"))
}

func (s *AdminUsersService) Get(ctx context.Context, userID string) (*types.User, error) {
	return get[types.User](ctx, s.c, join(PathAdminUsers, userID), endpoint("admin.users.get"))
}

func (s *AdminUsersService) Update(ctx context.Context, userID string, update types.AdminUserUpdate) (*types.User, error) {
	return patch[types.User](ctx, s.c, join(PathAdminUsers, userID), update, endpoint("admin.users.update"))
}

func (s *AdminUsersService) Delete(ctx context.Context, userID string) error {
	return s.c.Delete(ctx, join(PathAdminUsers, userID), nil, endpoint("admin.users.delete"))
}

type adminRoleUpdate struct {
	MakeAdmin bool `json:"make_admin"`
}

// SetAdmin grants or revokes the admin role. Only the owner account may call it.
func (s *AdminUsersService) SetAdmin(ctx context.Context, userID string, admin bool) (*types.MessageResponse, error) {
	body := adminRoleUpdate{MakeAdmin: admin}
	return patch[types.MessageResponse](ctx, s.c, join(PathAdminUsers, userID, "admin"), body, endpoint("admin.users.set_admin"))
}

type AdminItemsService struct {
	c *httpclient.Client
}

// List returns every item with its status translated to the admin label.
func (s *AdminItemsService) List(ctx context.Context, params AdminListParams) (pagination.Page[types.AdminItem], error) {
	page, err := getPage[types.ItemListItem](ctx, s.c, params.path(PathAdminItems), "items", endpoint("admin.items.list"))
	if err != nil {
		return pagination.Page[types.AdminItem]{}, err
	}

	items := make([]types.AdminItem, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, types.AdminItem{
			ItemListItem: item,
			StatusLabel:  enums.NormalizeAdminItemStatus(item.Status),
		})
	}
	return pagination.Page[types.AdminItem]{
		Items:      items,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
		Shape:      page.Shape,
	}, nil
}

// UpdateStatus sets an item status using the upper-case admin code, e.g. RESERVED.
func (s *AdminItemsService) UpdateStatus(ctx context.Context, itemID, status string) (*types.AdminItem, error) {
	body := types.ItemStatusUpdate{Status: status}
	item, err := patch[types.ItemListItem](ctx, s.c, join(PathAdminItems, itemID, "status"), body, endpoint("admin.items.update_status"))
	if err != nil {
		return nil, err
	}
	return &types.AdminItem{ItemListItem: *item, StatusLabel: enums.NormalizeAdminItemStatus(item.Status)}, nil
}
