package migrate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vroommkart/storefront/pkg/enums"
)

func TestEmbeddedMigrationsAreValid(t *testing.T) {
	if err := ValidateEmbedded(); err != nil {
		t.Fatalf("embedded migrations invalid: %v", err)
	}
}

func TestKVMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_kv_entries.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no kv migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS kv_entries",
		"key TEXT PRIMARY KEY",
		"DROP TABLE IF EXISTS kv_entries",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestRunUpOnSQLite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	defer sqlDB.Close()

	if err := Run(context.Background(), sqlDB, enums.StorageBackendSQLite, "up"); err != nil {
		t.Fatalf("goose up: %v", err)
	}
	if !conn.Migrator().HasTable("kv_entries") {
		t.Fatal("expected kv_entries table after up")
	}
}

func TestDialect(t *testing.T) {
	if d, err := Dialect(enums.StorageBackendPostgres); err != nil || d != "postgres" {
		t.Fatalf("postgres dialect = %q, %v", d, err)
	}
	if d, err := Dialect(enums.StorageBackendSQLite); err != nil || d != "sqlite3" {
		t.Fatalf("sqlite dialect = %q, %v", d, err)
	}
	if _, err := Dialect(enums.StorageBackendFile); err == nil {
		t.Fatal("file backend has no dialect")
	}
}

func TestCreateAndValidateDir(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Order Index")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasSuffix(path, "_add_order_index.sql") {
		t.Fatalf("unexpected migration path %s", path)
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad-name.sql"), []byte("-- +goose Up"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename to be rejected")
	}
}

func TestCreateSQLMigrationRefusesExistingVersion(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	path, err := createSQLMigration(dir, "  Order Status--Index ", now)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Base(path) != "20260301120000_order_status_index.sql" {
		t.Fatalf("unexpected file %s", filepath.Base(path))
	}
	if _, err := createSQLMigration(dir, "order status index", now); err == nil {
		t.Fatal("expected duplicate version to be refused")
	}
	if _, err := createSQLMigration(dir, "---", now); err == nil {
		t.Fatal("expected empty slug to be refused")
	}
}

func TestCheckAnnotations(t *testing.T) {
	cases := map[string]struct {
		body    string
		wantErr bool
	}{
		"valid":          {body: "-- +goose Up\n-- +goose StatementBegin\nSELECT 1;\n-- +goose StatementEnd\n-- +goose Down\n", wantErr: false},
		"no down":        {body: "-- +goose Up\nSELECT 1;\n", wantErr: true},
		"down first":     {body: "-- +goose Down\n-- +goose Up\n", wantErr: true},
		"unterminated":   {body: "-- +goose Up\n-- +goose StatementBegin\n-- +goose Down\n", wantErr: true},
		"stray end":      {body: "-- +goose Up\n-- +goose StatementEnd\n-- +goose Down\n", wantErr: true},
		"indented marks": {body: "  -- +goose Up\n  -- +goose Down\n", wantErr: false},
	}
	for name, tc := range cases {
		err := checkAnnotations([]byte(tc.body))
		if tc.wantErr != (err != nil) {
			t.Fatalf("%s: wantErr=%v got %v", name, tc.wantErr, err)
		}
	}
}
