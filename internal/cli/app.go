package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/greenloop/greenloop-go/pkg/auth/session"
	"github.com/greenloop/greenloop-go/pkg/config"
	"github.com/greenloop/greenloop-go/pkg/db"
	"github.com/greenloop/greenloop-go/pkg/greenloop"
	"github.com/greenloop/greenloop-go/pkg/httpclient"
	"github.com/greenloop/greenloop-go/pkg/localstore"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/metrics"
	"github.com/greenloop/greenloop-go/pkg/migrate"
	"github.com/greenloop/greenloop-go/pkg/redis"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

// app holds everything a command needs once bootstrap has run. Closers run
// in reverse order on shutdown.
type app struct {
	cfg      *config.Config
	logg     *logger.Logger
	out      io.Writer
	errOut   io.Writer
	registry *prometheus.Registry

	tokens  tokens.Store
	api     *greenloop.API
	session *session.Manager

	profile string
	dbConn  *db.Client
	local   *localstore.Store
	closers []func() error
}

// configure loads config and builds the logger.
func (a *app) configure(o *options) error {
	cfg := o.cfg
	if cfg == nil {
		loaded, err := o.loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	a.logg = o.logg
	if a.logg == nil {
		a.logg = logger.New(logger.Options{
			ServiceName: "greenloop-cli",
			Level:       logger.ParseLevel(cfg.App.LogLevel),
			WarnStack:   cfg.App.LogWarnStack,
			Output:      a.errOut,
		})
	}
	return nil
}

func (a *app) bootstrap(ctx context.Context, o *options) error {
	if err := a.configure(o); err != nil {
		return err
	}
	cfg := a.cfg

	store, err := a.tokenStore(ctx, o)
	if err != nil {
		return err
	}
	a.tokens = store

	a.registry = prometheus.NewRegistry()
	clientOpts := []httpclient.Option{
		httpclient.WithTokenStore(store),
		httpclient.WithLogger(a.logg),
		httpclient.WithMetrics(metrics.NewClientMetrics(a.registry)),
		httpclient.WithUserAgent(cfg.API.UserAgent),
	}
	if cfg.API.Timeout > 0 {
		clientOpts = append(clientOpts, httpclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}))
	}
	if cfg.API.ValidateResponses {
		clientOpts = append(clientOpts, httpclient.WithValidator(validator.New()))
	}
	client, err := httpclient.New(cfg.API.BaseURL, clientOpts...)
	if err != nil {
		return fmt.Errorf("building api client: %w", err)
	}

	a.api = greenloop.New(client)
	a.session = session.NewManager(a.api, store, a.logg)
	return nil
}

func (a *app) tokenStore(ctx context.Context, o *options) (tokens.Store, error) {
	if o.tokens != nil {
		return o.tokens, nil
	}
	switch strings.ToLower(a.cfg.Tokens.Kind) {
	case config.TokenStoreMemory:
		return tokens.NewMemory(tokens.Pair{}), nil
	case config.TokenStoreRedis:
		client, err := redis.New(ctx, a.cfg.Redis, a.logg)
		if err != nil {
			return nil, fmt.Errorf("connecting token redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		profile := a.cfg.Redis.Profile
		if a.profile != "" {
			profile = a.profile
		}
		return redis.NewTokenStore(client, profile), nil
	default:
		return a.localStore(ctx)
	}
}

// localStore opens the local database on first use and brings its schema
// up to date.
func (a *app) localStore(ctx context.Context) (*localstore.Store, error) {
	if a.local != nil {
		return a.local, nil
	}
	conn, err := a.database(ctx)
	if err != nil {
		return nil, err
	}
	if err := migrate.MaybeAutoRun(ctx, a.cfg.LocalStore, a.logg, conn); err != nil {
		return nil, err
	}
	a.local = localstore.New(conn, a.profile)
	return a.local, nil
}

func (a *app) database(ctx context.Context) (*db.Client, error) {
	if a.dbConn != nil {
		return a.dbConn, nil
	}
	conn, err := db.New(ctx, a.cfg.LocalStore, a.logg)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn.Close)
	a.dbConn = conn
	return conn, nil
}

func (a *app) close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
