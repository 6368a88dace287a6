package greenloop

import (
	"context"

	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/pagination"
	"github.com/greenloop/greenloop-go/pkg/types"
	"github.com/shopspring/decimal"
)

type ItemsService struct {
	c *httpclient.Client
}

// ItemSearchParams filters item listings. Empty fields are not sent.
type ItemSearchParams struct {
	Query      string
	CategoryID string
	Condition  string
	City       string
	State      string
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
	SortBy     string
	SortOrder  string
	PageParams
}

func (p ItemSearchParams) query() *query {
	q := newQuery().
		str("query", p.Query).
		str("category_id", p.CategoryID).
		str("condition", p.Condition).
		str("city", p.City).
		str("state", p.State).
		amount("min_value", p.MinValue).
		amount("max_value", p.MaxValue).
		str("sort_by", p.SortBy).
		str("sort_order", p.SortOrder)
	return p.apply(q, "page_size")
}

// List is the anonymous catalog browse.
func (s *ItemsService) List(ctx context.Context, params ItemSearchParams) (pagination.Page[types.ItemListItem], error) {
	return getPage[types.ItemListItem](ctx, s.c, params.query().path(PathItems), "items", httpclient.Public(), endpoint("items.list"))
}

func (s *ItemsService) Get(ctx context.Context, itemID string) (*types.Item, error) {
	return get[types.Item](ctx, s.c, join(PathItems, itemID), endpoint("items.get"))
}

func (s *ItemsService) Create(ctx context.Context, input types.ItemInput) (*types.Item, error) {
	return post[types.Item](ctx, s.c, PathItems, input, endpoint("items.create"))
}

// CreateForm creates an item from a multipart form, images included.
func (s *ItemsService) CreateForm(ctx context.Context, form *httpclient.FormData) (*types.Item, error) {
	return post[types.Item](ctx, s.c, PathItems, form, endpoint("items.create"))
}

func (s *ItemsService) Update(ctx context.Context, itemID string, input types.ItemInput) (*types.Item, error) {
	return put[types.Item](ctx, s.c, join(PathItems, itemID), input, endpoint("items.update"))
}

func (s *ItemsService) UpdateForm(ctx context.Context, itemID string, form *httpclient.FormData) (*types.Item, error) {
	return put[types.Item](ctx, s.c, join(PathItems, itemID), form, endpoint("items.update"))
}

func (s *ItemsService) Delete(ctx context.Context, itemID string) error {
	return s.c.Delete(ctx, join(PathItems, itemID), nil, endpoint("items.delete"))
}

func (s *ItemsService) Search(ctx context.Context, params ItemSearchParams) (pagination.Page[types.ItemListItem], error) {
	return getPage[types.ItemListItem](ctx, s.c, params.query().path(PathItemsSearch), "items", endpoint("items.search"))
}

func (s *ItemsService) Categories(ctx context.Context) ([]types.Category, error) {
	return list[types.Category](ctx, s.c, PathItemsCategories, httpclient.Public(), endpoint("items.categories"))
}

func (s *ItemsService) UploadImages(ctx context.Context, itemID string, form *httpclient.FormData) (*types.ItemImageUpload, error) {
	var out types.ItemImageUpload
	if err := s.c.UploadFile(ctx, join(PathItems, itemID, "images"), form, &out, endpoint("items.upload_images")); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ItemsService) UpdateStatus(ctx context.Context, itemID, status string) (*types.Item, error) {
	body := types.ItemStatusUpdate{Status: status}
	return put[types.Item](ctx, s.c, join(PathItems, itemID, "status"), body, endpoint("items.update_status"))
}

func (s *ItemsService) Favorite(ctx context.Context, itemID string) (*types.ItemFavorite, error) {
	return post[types.ItemFavorite](ctx, s.c, join(PathItems, itemID, "favorite"), nil, endpoint("items.favorite"))
}

func (s *ItemsService) Interest(ctx context.Context, itemID string) (*types.ItemInterest, error) {
	return post[types.ItemInterest](ctx, s.c, join(PathItems, itemID, "interest"), nil, endpoint("items.interest"))
}

func (s *ItemsService) Report(ctx context.Context, itemID string, report types.ItemReport) (*types.MessageResponse, error) {
	return post[types.MessageResponse](ctx, s.c, join(PathItems, itemID, "report"), report, endpoint("items.report"))
}

func (s *ItemsService) Related(ctx context.Context, itemID string) (*types.RelatedItems, error) {
	return get[types.RelatedItems](ctx, s.c, join(PathItems, itemID, "related"), endpoint("items.related"))
}

// CategoriesService covers /categories. Every call is anonymous.
type CategoriesService struct {
	c *httpclient.Client
}

func (s *CategoriesService) List(ctx context.Context, params PageParams) (pagination.Page[types.Category], error) {
	q := params.apply(newQuery(), "page_size")
	return getPage[types.Category](ctx, s.c, q.path(PathCategories), "categories", httpclient.Public(), endpoint("categories.list"))
}

func (s *CategoriesService) Get(ctx context.Context, categoryID string) (*types.Category, error) {
	return get[types.Category](ctx, s.c, join(PathCategories, categoryID), httpclient.Public(), endpoint("categories.get"))
}

func (s *CategoriesService) Popular(ctx context.Context) ([]types.PopularCategory, error) {
	return list[types.PopularCategory](ctx, s.c, PathCategoriesPopular, httpclient.Public(), endpoint("categories.popular"))
}
