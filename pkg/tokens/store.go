// Package tokens defines where the client keeps its bearer credentials.
//
// The transport reads the store on every request and never caches the token
// in memory, so a login or logout performed through any handle on the same
// backing store is seen by the next request.
package tokens

import (
	"context"
	"sync"
)

// Pair is the access/refresh token pair returned by the auth endpoints. Both
// values are opaque.
type Pair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether the pair holds no access token.
func (p Pair) Empty() bool {
	return p.AccessToken == ""
}

// Store persists the token pair. Get returns an empty Pair and a nil error
// when nothing is stored.
type Store interface {
	Get(ctx context.Context) (Pair, error)
	Set(ctx context.Context, pair Pair) error
	Clear(ctx context.Context) error
}

// Memory is a process-local Store.
type Memory struct {
	mu   sync.RWMutex
	pair Pair
}

func NewMemory(initial Pair) *Memory {
	return &Memory{pair: initial}
}

func (m *Memory) Get(context.Context) (Pair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair, nil
}

func (m *Memory) Set(_ context.Context, pair Pair) error {
	m.mu.Lock()
	m.pair = pair
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.pair = Pair{}
	m.mu.Unlock()
	return nil
}
