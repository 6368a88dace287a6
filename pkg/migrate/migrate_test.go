package migrate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/greenloop/greenloop-go/pkg/config"
	"github.com/greenloop/greenloop-go/pkg/db"
	"github.com/greenloop/greenloop-go/pkg/logger"
)

func openSQLite(t *testing.T) *db.Client {
	t.Helper()
	client, err := db.New(context.Background(), config.LocalStoreConfig{
		Driver:       config.LocalDriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		MaxOpenConns: 1,
		AutoMigrate:  true,
	}, nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	if err := ValidateEmbedded(); err != nil {
		t.Fatalf("embedded migrations invalid: %v", err)
	}
}

func TestMaybeAutoRunCreatesTables(t *testing.T) {
	client := openSQLite(t)
	cfg := config.LocalStoreConfig{AutoMigrate: true}
	if err := MaybeAutoRun(context.Background(), cfg, logger.Nop(), client); err != nil {
		t.Fatalf("auto run: %v", err)
	}

	for _, table := range []string{"token_slots", "flash_messages", "completed_modules", "quiz_answers", "local_events"} {
		if !client.DB().Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}

	sqlDB, _ := client.SQL()
	version, err := Version(sqlDB, client.Dialect())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != 20260301120200 {
		t.Fatalf("unexpected version %d", version)
	}

	// running again is a no-op
	if err := MaybeAutoRun(context.Background(), cfg, logger.Nop(), client); err != nil {
		t.Fatalf("second auto run: %v", err)
	}
}

func TestMaybeAutoRunDisabled(t *testing.T) {
	client := openSQLite(t)
	if err := MaybeAutoRun(context.Background(), config.LocalStoreConfig{}, logger.Nop(), client); err != nil {
		t.Fatalf("auto run: %v", err)
	}
	if client.DB().Migrator().HasTable("token_slots") {
		t.Fatal("tables should not exist when auto-migrate is off")
	}
}

func TestMigrateToVersionDown(t *testing.T) {
	client := openSQLite(t)
	sqlDB, _ := client.SQL()
	ctx := context.Background()

	if err := Up(ctx, sqlDB, client.Dialect()); err != nil {
		t.Fatalf("up: %v", err)
	}
	if err := MigrateToVersion(ctx, sqlDB, client.Dialect(), "20260301120000"); err != nil {
		t.Fatalf("down-to: %v", err)
	}
	if client.DB().Migrator().HasTable("local_events") {
		t.Fatal("local_events should be dropped")
	}
	if !client.DB().Migrator().HasTable("token_slots") {
		t.Fatal("token_slots should survive")
	}

	if err := MigrateToVersion(ctx, sqlDB, client.Dialect(), "nope"); err == nil {
		t.Fatal("expected invalid version error")
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

	path, err := CreateSQLMigration(dir, "Add Reminder Table!", now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "20260402093000_add_reminder_table.sql" {
		t.Fatalf("unexpected filename %s", filepath.Base(path))
	}
	body, _ := os.ReadFile(path)
	if !strings.Contains(string(body), "-- +goose Down") {
		t.Fatalf("template missing down section: %s", body)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration should validate: %v", err)
	}

	if _, err := CreateSQLMigration(dir, "Add Reminder Table!", now); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, err := CreateSQLMigration(dir, "!!!", now); err == nil {
		t.Fatal("expected empty name error")
	}
}

func TestValidateDirRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "1_bad.sql"), []byte("-- +goose Up\n-- +goose Down\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected filename validation error")
	}
}
