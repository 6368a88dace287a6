package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenloop/greenloop-go/pkg/migrate"
)

func newStoreCommand(a *app, p *printer) *cobra.Command {
	cmd := &cobra.Command{Use: "store", Short: "Manage the local store schema"}

	migrateCmd := &cobra.Command{
		Use:         "migrate <up|down|status|version|redo|reset>",
		Short:       "Run a goose command against the local store",
		Args:        cobra.ExactArgs(1),
		ValidArgs:   []string{"up", "down", "status", "version", "redo", "reset"},
		Annotations: map[string]string{annotationScope: scopeLocal},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.logg.WithField(cmd.Context(), "cmd", args[0])
			conn, err := a.database(ctx)
			if err != nil {
				return err
			}
			sqlDB, err := conn.SQL()
			if err != nil {
				return err
			}
			if err := migrate.Run(ctx, sqlDB, conn.Dialect(), args[0]); err != nil {
				return err
			}
			a.logg.Info(ctx, "store.migrate.done")
			return nil
		},
	}

	migrateTo := &cobra.Command{
		Use:         "migrate-to <version>",
		Short:       "Migrate up or down to a version (YYYYMMDDHHMMSS)",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationScope: scopeLocal},
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.database(cmd.Context())
			if err != nil {
				return err
			}
			sqlDB, err := conn.SQL()
			if err != nil {
				return err
			}
			if err := migrate.MigrateToVersion(cmd.Context(), sqlDB, conn.Dialect(), args[0]); err != nil {
				return err
			}
			version, err := migrate.Version(sqlDB, conn.Dialect())
			if err != nil {
				return err
			}
			return p.result(map[string]int64{"version": version}, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "versión %d\n", version)
				return err
			})
		},
	}

	var dir string
	validate := &cobra.Command{
		Use:         "validate",
		Short:       "Check migration file names and goose annotations",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationScope: scopeNone},
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return migrate.ValidateEmbedded()
			}
			return migrate.ValidateDir(dir)
		},
	}
	validate.Flags().StringVar(&dir, "dir", "", "Migrations directory (default: the embedded set)")

	var newDir string
	create := &cobra.Command{
		Use:         "new-migration <name>",
		Short:       "Write an empty SQL migration",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationScope: scopeNone},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := migrate.CreateSQLMigration(newDir, args[0], time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(p.out, path)
			return err
		},
	}
	create.Flags().StringVar(&newDir, "dir", migrate.DefaultDir, "Migrations directory")

	cmd.AddCommand(migrateCmd, migrateTo, validate, create)
	return cmd
}
