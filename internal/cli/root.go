// Package cli wires the greenloop command tree. Commands share one app built
// in the root PersistentPreRunE and released by the close func Run calls.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/greenloop/greenloop-go/pkg/config"
	"github.com/greenloop/greenloop-go/pkg/logger"
	"github.com/greenloop/greenloop-go/pkg/tokens"
)

var version = "0.1.0"

type options struct {
	cfg     *config.Config
	logg    *logger.Logger
	tokens  tokens.Store
	out     io.Writer
	errOut  io.Writer
	envFile string
}

// Option customizes the command tree, mostly for tests.
type Option func(*options)

// WithConfig skips environment loading and uses cfg as is.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

func WithLogger(logg *logger.Logger) Option {
	return func(o *options) { o.logg = logg }
}

// WithTokenStore overrides the store selected by GREENLOOP_TOKEN_STORE.
func WithTokenStore(store tokens.Store) Option {
	return func(o *options) { o.tokens = store }
}

func WithOutput(out, errOut io.Writer) Option {
	return func(o *options) {
		o.out = out
		o.errOut = errOut
	}
}

func (o *options) loadConfig() (*config.Config, error) {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", o.envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return config.Load()
}

// NewRootCommand builds the full command tree. The returned close func
// releases whatever the commands opened and must run even when Execute fails.
func NewRootCommand(opts ...Option) (*cobra.Command, func() error) {
	o := &options{out: os.Stdout, errOut: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	a := &app{out: o.out, errOut: o.errOut}
	var (
		jsonOutput  bool
		dumpMetrics bool
	)

	root := &cobra.Command{
		Use:           "greenloop",
		Short:         "GreenLoop exchange platform client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Annotations[annotationScope] {
			case scopeNone:
				return nil
			case scopeLocal:
				return a.configure(o)
			}
			return a.bootstrap(cmd.Context(), o)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if dumpMetrics && a.registry != nil {
				return writeMetrics(a.errOut, a.registry)
			}
			return nil
		},
	}
	root.SetOut(o.out)
	root.SetErr(o.errOut)

	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	root.PersistentFlags().BoolVar(&dumpMetrics, "metrics", false, "Print request metrics to stderr on exit")
	root.PersistentFlags().StringVar(&a.profile, "profile", "", "Local profile holding tokens and progress")
	root.PersistentFlags().StringVar(&o.envFile, "env-file", "", "Load variables from this file instead of ./.env")

	p := &printer{out: o.out, json: &jsonOutput}
	root.AddCommand(
		newLoginCommand(a, p),
		newLogoutCommand(a, p),
		newWhoamiCommand(a, p),
		newRefreshCommand(a, p),
		newItemsCommand(a, p),
		newExchangesCommand(a, p),
		newNotificationsCommand(a, p),
		newAdminCommand(a, p),
		withScope(newEducationCommand(a, p), scopeLocal),
		withScope(newEventsCommand(a, p), scopeLocal),
		withScope(newFlashCommand(a, p), scopeLocal),
		newStoreCommand(a, p),
	)

	// help and completion never need config.
	root.InitDefaultHelpCmd()
	root.InitDefaultCompletionCmd()
	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			withScope(cmd, scopeNone)
		}
	}
	return root, a.close
}

// Run executes one command line and releases its resources.
func Run(ctx context.Context, args []string, opts ...Option) error {
	root, closeApp := NewRootCommand(opts...)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return multierr.Append(err, closeApp())
}

// withScope annotates every leaf under cmd that has no scope yet.
func withScope(cmd *cobra.Command, scope string) *cobra.Command {
	if cmd.HasSubCommands() {
		for _, sub := range cmd.Commands() {
			withScope(sub, scope)
		}
		return cmd
	}
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	if _, ok := cmd.Annotations[annotationScope]; !ok {
		cmd.Annotations[annotationScope] = scope
	}
	return cmd
}

// annotationScope on a leaf command limits what bootstrap prepares: scopeNone
// skips it entirely, scopeLocal loads config and the logger but never touches
// the token store or the backend.
const (
	annotationScope = "greenloop/scope"
	scopeNone       = "none"
	scopeLocal      = "local"
)
