package db

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	embeddedmigrations "github.com/ita-growin/growin/migrations"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrations(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "growin-clean.db")
	database, err := OpenSQLite(databasePath, "silent")
	if err != nil {
		t.Fatalf("open clean database: %v", err)
	}

	for _, table := range []string{"users", "events", "tasks"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s after bootstrap", table)
		}
	}

	assertAllEmbeddedMigrationsApplied(t, database)
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "growin-reopen.db")
	if _, err := OpenSQLite(databasePath, "silent"); err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := OpenSQLite(databasePath, "silent"); err != nil {
		t.Fatalf("second open should reapply nothing, got: %v", err)
	}
}

func assertAllEmbeddedMigrationsApplied(t *testing.T, database *gorm.DB) {
	t.Helper()

	expected := make([]string, 0)
	err := fs.WalkDir(embeddedmigrations.Files, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !entry.IsDir() && strings.HasSuffix(path, ".sql") {
			expected = append(expected, filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk embedded migrations: %v", err)
	}

	var applied []string
	if err := database.Table("schema_migrations").Pluck("name", &applied).Error; err != nil {
		t.Fatalf("read schema_migrations: %v", err)
	}

	appliedSet := make(map[string]bool, len(applied))
	for _, name := range applied {
		appliedSet[name] = true
	}
	for _, name := range expected {
		if !appliedSet[name] {
			t.Fatalf("expected migration %s recorded as applied", name)
		}
	}
}
