package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaultsFromDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DIALR_DATA_DIR", dir)
	t.Setenv("DIALR_STORAGE", "")
	t.Setenv("DIALR_DB_PATH", "")
	t.Setenv("DIALR_LOG_FILE", "")
	t.Setenv("DIALR_SEED_SAMPLE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage != StorageSQLite {
		t.Fatalf("expected sqlite storage, got %q", cfg.Storage)
	}
	if cfg.DBPath != filepath.Join(dir, "dialr.db") {
		t.Fatalf("unexpected db path %q", cfg.DBPath)
	}
	if cfg.Logger.File != filepath.Join(dir, "dialr.log") {
		t.Fatalf("unexpected log file %q", cfg.Logger.File)
	}
	if !cfg.SeedSample {
		t.Fatalf("expected sample seeding on by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DIALR_DATA_DIR", t.TempDir())
	t.Setenv("DIALR_STORAGE", "MEMORY")
	t.Setenv("DIALR_SEED_SAMPLE", "false")
	t.Setenv("DIALR_PROFILE_NAME", "Ada")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.Storage)
	}
	if cfg.SeedSample {
		t.Fatalf("expected seeding disabled")
	}
	if cfg.Profile.Name != "Ada" {
		t.Fatalf("expected profile override, got %q", cfg.Profile.Name)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("DIALR_DATA_DIR", t.TempDir())
	t.Setenv("DIALR_STORAGE", "postgres")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}
