package pagination

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape records which wire format a list response arrived in.
type Shape string

const (
	// ShapeArray is a bare JSON array with no counters.
	ShapeArray Shape = "array"
	// ShapePaginated is {"data": [...], "pagination": {...}}.
	ShapePaginated Shape = "paginated"
	// ShapeLegacy is {"items": [...], "page", "page_size", "total", "total_pages"}.
	ShapeLegacy Shape = "legacy"
)

// legacyDefaultLimit is assumed when a legacy envelope omits page_size.
const legacyDefaultLimit = 20

// Page is the canonical list result every catalog call returns regardless of
// which envelope the backend used.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Shape      Shape `json:"shape"`
}

// HasNext reports whether a later page exists.
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages
}

type counters struct {
	Page            int `json:"page"`
	Limit           int `json:"limit"`
	PageSize        int `json:"page_size"`
	Total           int `json:"total"`
	TotalPages      int `json:"total_pages"`
	TotalPagesCamel int `json:"totalPages"`
}

// Decode normalizes a list response body into a Page. Bare arrays become a
// single page holding every element; envelopes keep their counters, with
// missing ones filled the way the web client fills them.
func Decode[T any](raw []byte) (Page[T], error) {
	return DecodeKey[T](raw, "items")
}

// DecodeKey is Decode for legacy envelopes that name their element array
// after the resource, e.g. {"exchanges": [...], "total_pages": 3}.
func DecodeKey[T any](raw []byte, key string) (Page[T], error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Page[T]{Items: []T{}, Page: 1, TotalPages: 1, Shape: ShapeArray}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return Page[T]{}, fmt.Errorf("decode list array: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		return Page[T]{
			Items:      items,
			Page:       1,
			Limit:      len(items),
			Total:      len(items),
			TotalPages: 1,
			Shape:      ShapeArray,
		}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Page[T]{}, fmt.Errorf("decode list envelope: %w", err)
	}

	if rawCounters, ok := fields["pagination"]; ok {
		items, err := itemsFrom[T](fields, "data", key)
		if err != nil {
			return Page[T]{}, err
		}
		var c counters
		if err := json.Unmarshal(rawCounters, &c); err != nil {
			return Page[T]{}, fmt.Errorf("decode pagination counters: %w", err)
		}
		return Page[T]{
			Items:      items,
			Page:       orDefault(c.Page, 1),
			Limit:      orDefault(firstNonZero(c.Limit, c.PageSize), len(items)),
			Total:      orDefault(c.Total, len(items)),
			TotalPages: orDefault(firstNonZero(c.TotalPages, c.TotalPagesCamel), 1),
			Shape:      ShapePaginated,
		}, nil
	}

	items, err := itemsFrom[T](fields, key, "items", "data")
	if err != nil {
		return Page[T]{}, err
	}
	var c counters
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return Page[T]{}, fmt.Errorf("decode list counters: %w", err)
	}
	return Page[T]{
		Items:      items,
		Page:       orDefault(c.Page, 1),
		Limit:      orDefault(firstNonZero(c.PageSize, c.Limit), legacyDefaultLimit),
		Total:      orDefault(c.Total, len(items)),
		TotalPages: orDefault(firstNonZero(c.TotalPages, c.TotalPagesCamel), 1),
		Shape:      ShapeLegacy,
	}, nil
}

// itemsFrom decodes the first present key holding the element array.
func itemsFrom[T any](fields map[string]json.RawMessage, keys ...string) ([]T, error) {
	for _, key := range keys {
		rawItems, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(rawItems), []byte("null")) {
			continue
		}
		var items []T
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, fmt.Errorf("decode list %s: %w", key, err)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	return []T{}, nil
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
