package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/greenloop/greenloop-go/pkg/tokens"
)

const (
	accessKind  = "access"
	refreshKind = "refresh"
)

// TokenStore keeps a token pair in redis so several processes signed in as
// the same profile see each other's login and logout.
type TokenStore struct {
	client  *Client
	profile string
}

var _ tokens.Store = (*TokenStore)(nil)

func NewTokenStore(client *Client, profile string) *TokenStore {
	return &TokenStore{client: client, profile: profile}
}

func (s *TokenStore) Get(ctx context.Context) (tokens.Pair, error) {
	if s.client == nil || s.client.store == nil {
		return tokens.Pair{}, errors.New("redis client not initialized")
	}
	vals, err := s.client.store.MGet(ctx, s.key(accessKind), s.key(refreshKind)).Result()
	if err != nil {
		return tokens.Pair{}, fmt.Errorf("read tokens: %w", err)
	}
	var pair tokens.Pair
	if len(vals) > 0 {
		pair.AccessToken, _ = vals[0].(string)
	}
	if len(vals) > 1 {
		pair.RefreshToken, _ = vals[1].(string)
	}
	return pair, nil
}

// Set writes both halves. An empty refresh token deletes the stored one.
func (s *TokenStore) Set(ctx context.Context, pair tokens.Pair) error {
	if s.client == nil || s.client.store == nil {
		return errors.New("redis client not initialized")
	}
	if pair.AccessToken == "" {
		return s.Clear(ctx)
	}
	if err := s.client.store.Set(ctx, s.key(accessKind), pair.AccessToken, 0).Err(); err != nil {
		return fmt.Errorf("write access token: %w", err)
	}
	if pair.RefreshToken == "" {
		if err := s.client.store.Del(ctx, s.key(refreshKind)).Err(); err != nil {
			return fmt.Errorf("drop refresh token: %w", err)
		}
		return nil
	}
	if err := s.client.store.Set(ctx, s.key(refreshKind), pair.RefreshToken, 0).Err(); err != nil {
		return fmt.Errorf("write refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) Clear(ctx context.Context) error {
	if s.client == nil || s.client.store == nil {
		return errors.New("redis client not initialized")
	}
	if err := s.client.store.Del(ctx, s.key(accessKind), s.key(refreshKind)).Err(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) key(kind string) string {
	return s.client.TokenKey(s.profile, kind)
}
