package greenloop

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// query accumulates list filters. Zero values are dropped so an empty
// parameter struct produces no query string at all.
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) str(key, value string) *query {
	if value != "" {
		q.values.Set(key, value)
	}
	return q
}

func (q *query) integer(key string, value int) *query {
	if value != 0 {
		q.values.Set(key, strconv.Itoa(value))
	}
	return q
}

func (q *query) flag(key string, value *bool) *query {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}
	return q
}

func (q *query) amount(key string, value *decimal.Decimal) *query {
	if value != nil {
		q.values.Set(key, value.String())
	}
	return q
}

// path returns base with the encoded query appended, omitting "?" when no
// parameter survived.
func (q *query) path(base string) string {
	if len(q.values) == 0 {
		return base
	}
	return base + "?" + q.values.Encode()
}

// Bool returns a pointer to v, for filters where false must be sent.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}
