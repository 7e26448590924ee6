package database

import (
	"path/filepath"
	"testing"

	"github.com/fng-app/fng-sales-api/internal/config"
	"github.com/fng-app/fng-sales-api/internal/domain/entity"
)

func TestNewIdempotencyDBSQLite(t *testing.T) {
	cfg := &config.IdempotencyConfig{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "nested", "idempotency.db"),
	}

	db, err := NewIdempotencyDB(cfg, false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !db.Migrator().HasTable(&entity.IdempotencyKey{}) {
		t.Fatalf("expected idempotency_keys table")
	}
}

func TestNewIdempotencyDBRejectsUnknownDriver(t *testing.T) {
	if _, err := NewIdempotencyDB(&config.IdempotencyConfig{Driver: "oracle"}, false); err == nil {
		t.Fatalf("expected an error for an unknown driver")
	}
}
