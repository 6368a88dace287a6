package greenloop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQueryPathOmitsEmptyValues(t *testing.T) {
	q := newQuery().str("status", "").integer("page", 0).flag("is_read", nil).amount("min_value", nil)
	assert.Equal(t, "/x", q.path("/x"))
}

func TestQueryPathEncodes(t *testing.T) {
	v := decimal.RequireFromString("10.00")
	q := newQuery().
		str("query", "bici roja").
		flag("is_read", Bool(false)).
		amount("max_value", &v).
		integer("page", 2)
	assert.Equal(t, "/x?is_read=false&max_value=10&page=2&query=bici+roja", q.path("/x"))
}

func TestJoinEscapesSegments(t *testing.T) {
	assert.Equal(t, "/api/v1/items/a%2Fb/images", join(PathItems, "a/b", "images"))
}

func TestAdminListParamsPath(t *testing.T) {
	p := AdminListParams{Status: "RESERVED", PageParams: PageParams{Page: 2, PageSize: 10}}
	assert.Equal(t, PathAdminItems+"?page=2&page_size=10&status=RESERVED", p.path(PathAdminItems))
}
