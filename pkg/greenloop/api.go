// Package greenloop is the typed endpoint catalog of the GreenLoop backend.
// Each namespace builds paths and query strings and delegates to the
// httpclient transport; none of them keeps state.
package greenloop

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
)

// API groups every endpoint namespace over one transport.
type API struct {
	client *httpclient.Client

	Auth          *AuthService
	CompanyAuth   *CompanyAuthService
	Users         *UsersService
	Items         *ItemsService
	Categories    *CategoriesService
	Exchanges     *ExchangesService
	Messages      *MessagesService
	Notifications *NotificationsService
	Stats         *StatsService
	Ratings       *RatingsService
	Community     *CommunityService
	Contributions *ContributionsService
	Admin         *AdminService
}

func New(client *httpclient.Client) *API {
	api := &API{client: client}
	api.Auth = &AuthService{c: client}
	api.CompanyAuth = &CompanyAuthService{c: client}
	api.Users = &UsersService{c: client}
	api.Items = &ItemsService{c: client}
	api.Categories = &CategoriesService{c: client}
	api.Exchanges = &ExchangesService{c: client}
	api.Messages = &MessagesService{c: client}
	api.Notifications = &NotificationsService{c: client}
	api.Stats = &StatsService{c: client}
	api.Ratings = &RatingsService{c: client}
	api.Community = &CommunityService{c: client}
	api.Contributions = &ContributionsService{c: client}
	api.Admin = &AdminService{
		Users: &AdminUsersService{c: client},
		Items: &AdminItemsService{c: client},
	}
	return api
}

// Client returns the underlying transport.
func (a *API) Client() *httpclient.Client {
	return a.client
}

// PageParams are the paging knobs shared by list endpoints. Zero means "let
// the backend decide".
type PageParams struct {
	Page     int
	PageSize int
}

func (p PageParams) apply(q *query, sizeKey string) *query {
	return q.integer("page", p.Page).integer(sizeKey, p.PageSize)
}

// getPage fetches a list endpoint and normalizes whichever envelope came back.
// key names the element array of resource-named legacy envelopes.
func getPage[T any](ctx context.Context, c *httpclient.Client, path, key string, opts ...httpclient.CallOption) (pagination.Page[T], error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw, opts...); err != nil {
		return pagination.Page[T]{}, err
	}
	page, err := pagination.DecodeKey[T](raw, key)
	if err != nil {
		meta := pkgerrors.MetadataFor(pkgerrors.CodeInvalidResponse)
		return pagination.Page[T]{}, pkgerrors.Wrap(pkgerrors.CodeInvalidResponse, err, meta.PublicMessage)
	}
	if err := c.ValidateResponse(page.Items); err != nil {
		return pagination.Page[T]{}, err
	}
	return page, nil
}

func get[T any](ctx context.Context, c *httpclient.Client, path string, opts ...httpclient.CallOption) (*T, error) {
	var out T
	if err := c.Get(ctx, path, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

func post[T any](ctx context.Context, c *httpclient.Client, path string, body any, opts ...httpclient.CallOption) (*T, error) {
	var out T
	if err := c.Post(ctx, path, body, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

func put[T any](ctx context.Context, c *httpclient.Client, path string, body any, opts ...httpclient.CallOption) (*T, error) {
	var out T
	if err := c.Put(ctx, path, body, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

func patch[T any](ctx context.Context, c *httpclient.Client, path string, body any, opts ...httpclient.CallOption) (*T, error) {
	var out T
	if err := c.Patch(ctx, path, body, &out, opts...); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *httpclient.Client, path string, opts ...httpclient.CallOption) ([]T, error) {
	var out []T
	if err := c.Get(ctx, path, &out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func endpoint(name string) httpclient.CallOption {
	return httpclient.Endpoint(name)
}
