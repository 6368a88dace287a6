package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultLimit is the page size the catalog screens request when none is given.
	DefaultLimit = 12
	// MaxLimit caps how many rows a single list call may request.
	MaxLimit = 50
)

// Params holds cursor pagination inputs for locally stored lists.
type Params struct {
	Limit  int
	Cursor string
}

// Window returns the page size and the row count to fetch, which is one
// more so the caller can tell whether another page exists.
func (p Params) Window() (limit, fetch int) {
	limit = NormalizeLimit(p.Limit)
	return limit, limit + 1
}

// Cursor is the (created_at, id) keyset of the last row on a page.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// NormalizeLimit clamps limit into [1, MaxLimit], defaulting blanks.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// String encodes the cursor so it can be passed back as a CLI flag
// without quoting.
func (c Cursor) String() string {
	payload := strconv.FormatInt(c.CreatedAt.UTC().UnixNano(), 10) + "." + c.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// ParseCursor decodes a cursor produced by Cursor.String. ok is false for
// a blank value.
func ParseCursor(value string) (cursor Cursor, ok bool, err error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Cursor{}, false, nil
	}

	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Cursor{}, false, fmt.Errorf("decode cursor: %w", err)
	}
	nanos, id, found := strings.Cut(string(decoded), ".")
	if !found {
		return Cursor{}, false, fmt.Errorf("invalid cursor format")
	}

	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return Cursor{}, false, fmt.Errorf("invalid cursor timestamp: %w", err)
	}
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return Cursor{}, false, fmt.Errorf("invalid cursor id: %w", err)
	}
	return Cursor{CreatedAt: time.Unix(0, n).UTC(), ID: parsedID}, true, nil
}

// Trim cuts rows fetched with Window down to limit. more reports whether
// the fetch overflowed, in which case the last kept row anchors the next
// cursor.
func Trim[T any](rows []T, limit int) (page []T, more bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
