// Package localstore keeps the state the web frontend parks in browser
// storage: the token pair, a read-once flash message, education progress and
// the user's own event list. Everything is scoped by profile and last write
// wins.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/greenloop/greenloop-go/pkg/db"
	"github.com/greenloop/greenloop-go/pkg/db/models"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

const DefaultProfile = "default"

type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

type Store struct {
	client   *db.Client
	profile  string
	now      func() time.Time
	validate *validator.Validate
}

var _ tokens.Store = (*Store)(nil)

// New scopes a store to profile. The schema must already be migrated.
func New(client *db.Client, profile string, opts ...Option) *Store {
	if profile == "" {
		profile = DefaultProfile
	}
	s := &Store{
		client:   client,
		profile:  profile,
		now:      time.Now,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Profile() string {
	return s.profile
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.client.DB().WithContext(ctx)
}

// timestamp is UTC at microsecond precision so values survive a postgres
// round trip unchanged.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store) Get(ctx context.Context) (tokens.Pair, error) {
	var slot models.TokenSlot
	err := s.conn(ctx).Where("profile = ?", s.profile).Take(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tokens.Pair{}, nil
	}
	if err != nil {
		return tokens.Pair{}, fmt.Errorf("load token slot: %w", err)
	}
	return tokens.Pair{AccessToken: slot.AccessToken, RefreshToken: slot.RefreshToken}, nil
}

func (s *Store) Set(ctx context.Context, pair tokens.Pair) error {
	slot := models.TokenSlot{
		Profile:      s.profile,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UpdatedAt:    s.timestamp(),
	}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "refresh_token", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("save token slot: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.conn(ctx).Where("profile = ?", s.profile).Delete(&models.TokenSlot{}).Error; err != nil {
		return fmt.Errorf("clear token slot: %w", err)
	}
	return nil
}

// SetFlash replaces the pending flash message.
func (s *Store) SetFlash(ctx context.Context, message string) error {
	row := models.FlashMessage{Profile: s.profile, Message: message, CreatedAt: s.timestamp()}
	err := s.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile"}},
		DoUpdates: clause.AssignmentColumns([]string{"message", "created_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save flash: %w", err)
	}
	return nil
}

// PopFlash returns the pending flash message and removes it. ok is false when
// nothing was pending.
func (s *Store) PopFlash(ctx context.Context) (message string, ok bool, err error) {
	err = s.client.WithTx(ctx, func(tx *gorm.DB) error {
		var row models.FlashMessage
		if err := tx.Where("profile = ?", s.profile).Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Where("profile = ?", s.profile).Delete(&models.FlashMessage{}).Error; err != nil {
			return err
		}
		message, ok = row.Message, true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("pop flash: %w", err)
	}
	return message, ok, nil
}
