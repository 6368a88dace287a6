package localstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/greenloop/greenloop-go/pkg/db/models"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
	"github.com/greenloop/greenloop-go/pkg/pagination"
)

// EventInput describes a new local event.
type EventInput struct {
	Title       string    `validate:"required,max=200"`
	Description string    `validate:"max=2000"`
	Location    string    `validate:"max=200"`
	StartsAt    time.Time `validate:"required"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventPage is one page of Events, newest first. NextCursor is empty on the
// last page.
type EventPage struct {
	Events     []Event `json:"events"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

func (s *Store) CreateEvent(ctx context.Context, in EventInput) (Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.Struct(in); err != nil {
		return Event{}, validationError(err)
	}

	row := models.LocalEvent{
		ID:          uuid.NewString(),
		Profile:     s.profile,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		StartsAt:    in.StartsAt.UTC(),
		CreatedAt:   s.timestamp(),
	}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return Event{}, fmt.Errorf("create event: %w", err)
	}
	return toEvent(row), nil
}

// Events pages through the profile's events, newest first.
func (s *Store) Events(ctx context.Context, params pagination.Params) (EventPage, error) {
	cursor, hasCursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return EventPage{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit, fetch := params.Window()

	q := s.conn(ctx).Where("profile = ?", s.profile)
	if hasCursor {
		q = q.Where("((created_at < ?) OR (created_at = ? AND id < ?))",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID.String())
	}

	var rows []models.LocalEvent
	err = q.Order("created_at DESC").
		Order("id DESC").
		Limit(fetch).
		Find(&rows).Error
	if err != nil {
		return EventPage{}, fmt.Errorf("list events: %w", err)
	}

	rows, more := pagination.Trim(rows, limit)
	page := EventPage{Events: make([]Event, 0, len(rows))}
	if more {
		last := rows[len(rows)-1]
		id, err := uuid.Parse(last.ID)
		if err != nil {
			return EventPage{}, fmt.Errorf("event %q has a non-uuid id: %w", last.ID, err)
		}
		page.NextCursor = pagination.Cursor{CreatedAt: last.CreatedAt, ID: id}.String()
	}
	for _, r := range rows {
		page.Events = append(page.Events, toEvent(r))
	}
	return page, nil
}

// DeleteEvent removes one event. Unknown ids report CodeNotFound.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res := s.conn(ctx).Where("profile = ? AND id = ?", s.profile, id).Delete(&models.LocalEvent{})
	if res.Error != nil {
		return fmt.Errorf("delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
	}
	return nil
}

func toEvent(r models.LocalEvent) Event {
	return Event{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		CreatedAt:   r.CreatedAt,
	}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event")
	}
	fields := make([]pkgerrors.FieldError, 0, len(verrs))
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		fields = append(fields, pkgerrors.FieldError{Field: field, Message: fe.Tag()})
		parts = append(parts, field+": "+fe.Tag())
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event: "+strings.Join(parts, ", ")).
		WithFieldErrors(fields)
}
