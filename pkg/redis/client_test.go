package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/greenloop/greenloop-go/pkg/config"
	"github.com/greenloop/greenloop-go/pkg/tokens"
	"github.com/redis/go-redis/v9"
)

func TestTokenStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	store := NewTokenStore(&Client{store: mock}, "ana")

	pair, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("get on empty store: %v", err)
	}
	if !pair.Empty() {
		t.Fatalf("expected empty pair, got %+v", pair)
	}

	if err := store.Set(ctx, tokens.Pair{AccessToken: "a1", RefreshToken: "r1"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if mock.data["gl:tokens:ana:access"] != "a1" || mock.data["gl:tokens:ana:refresh"] != "r1" {
		t.Fatalf("unexpected keys %v", mock.data)
	}

	pair, err = store.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if pair.AccessToken != "a1" || pair.RefreshToken != "r1" {
		t.Fatalf("unexpected pair %+v", pair)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(mock.data) != 0 {
		t.Fatalf("expected keys removed, got %v", mock.data)
	}
}

func TestTokenStoreSetWithoutRefreshDropsOldOne(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	store := NewTokenStore(&Client{store: mock}, "")

	_ = store.Set(ctx, tokens.Pair{AccessToken: "a1", RefreshToken: "r1"})
	if err := store.Set(ctx, tokens.Pair{AccessToken: "a2"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	pair, _ := store.Get(ctx)
	if pair.AccessToken != "a2" || pair.RefreshToken != "" {
		t.Fatalf("unexpected pair %+v", pair)
	}
}

func TestTokenStoreSharedAcrossHandles(t *testing.T) {
	ctx := context.Background()
	mock := newMockCmdable()
	first := NewTokenStore(&Client{store: mock}, "ana")
	second := NewTokenStore(&Client{store: mock}, "ana")
	other := NewTokenStore(&Client{store: mock}, "luis")

	_ = first.Set(ctx, tokens.Pair{AccessToken: "shared"})
	if pair, _ := second.Get(ctx); pair.AccessToken != "shared" {
		t.Fatalf("second handle should see login, got %+v", pair)
	}
	if pair, _ := other.Get(ctx); !pair.Empty() {
		t.Fatalf("other profile should be isolated, got %+v", pair)
	}
	_ = second.Clear(ctx)
	if pair, _ := first.Get(ctx); !pair.Empty() {
		t.Fatalf("first handle should see logout, got %+v", pair)
	}
}

func TestTokenStoreWrapsErrors(t *testing.T) {
	mock := newMockCmdable()
	mock.err = errors.New("connection refused")
	store := NewTokenStore(&Client{store: mock}, "ana")

	if _, err := store.Get(context.Background()); !errors.Is(err, mock.err) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := store.Set(context.Background(), tokens.Pair{AccessToken: "a"}); !errors.Is(err, mock.err) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestUninitializedClient(t *testing.T) {
	store := NewTokenStore(&Client{}, "ana")
	if _, err := store.Get(context.Background()); err == nil {
		t.Fatalf("expected error for missing connection")
	}
	if err := (&Client{}).Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.TokenKey("ana", "access"); got != "gl:tokens:ana:access" {
		t.Fatalf("unexpected token key %s", got)
	}
	if got := client.TokenKey("", "refresh"); got != "gl:tokens:default:refresh" {
		t.Fatalf("empty profile should use default, got %s", got)
	}
	custom := &Client{namespace: "staging"}
	if got := custom.TokenKey("ana", "access"); got != "staging:tokens:ana:access" {
		t.Fatalf("namespace not applied, got %s", got)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatalf("expected error without url or address")
	}

	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:pw@localhost:6380/2", PoolSize: 8, DialTimeout: time.Second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6380" || opts.DB != 2 || opts.Password != "pw" {
		t.Fatalf("unexpected parsed options %+v", opts)
	}
	if opts.PoolSize != 8 {
		t.Fatalf("expected pool size from config, got %d", opts.PoolSize)
	}

	opts, err = optionsFromConfig(config.RedisConfig{Address: "cache:6379", DB: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache:6379" || opts.DB != 1 {
		t.Fatalf("unexpected address options %+v", opts)
	}
}

type mockCmdable struct {
	data map[string]string
	err  error
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.err)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if m.err != nil {
		return redis.NewStatusResult("", m.err)
	}
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) MGet(ctx context.Context, keys ...string) *redis.SliceCmd {
	if m.err != nil {
		return redis.NewSliceResult(nil, m.err)
	}
	vals := make([]any, len(keys))
	for i, key := range keys {
		if v, ok := m.data[key]; ok {
			vals[i] = v
		}
	}
	return redis.NewSliceResult(vals, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if m.err != nil {
		return redis.NewIntResult(0, m.err)
	}
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
