package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model gpt-4o-mini, got %q", cfg.Model)
	}
	if cfg.Port != 5001 {
		t.Errorf("expected default port 5001, got %d", cfg.Port)
	}
	if cfg.TopK != 10 {
		t.Errorf("expected default top_k 10, got %d", cfg.TopK)
	}
	if len(cfg.Include) == 0 {
		t.Error("expected default include globs")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ragview.yml")

	original := DefaultConfig()
	original.Model = "gpt-4o"
	original.Port = 8080
	original.DocumentsDir = "library"
	original.Include = []string{"**/*.md"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DocumentsDir != original.DocumentsDir {
		t.Errorf("documents_dir: got %q, want %q", loaded.DocumentsDir, original.DocumentsDir)
	}
	if len(loaded.Include) != 1 || loaded.Include[0] != "**/*.md" {
		t.Errorf("include: got %v", loaded.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("expected default model, got %q", cfg.Model)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("RAGVIEW_MODEL", "gpt-4o")
	defer os.Unsetenv("RAGVIEW_MODEL")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "gpt-4o" {
		t.Errorf("env override failed: got %q", loaded.Model)
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	mutations := map[string]func(*Config){
		"empty model":           func(c *Config) { c.Model = "" },
		"empty embedding model": func(c *Config) { c.EmbeddingModel = "" },
		"zero port":             func(c *Config) { c.Port = 0 },
		"huge port":             func(c *Config) { c.Port = 99999 },
		"empty data dir":        func(c *Config) { c.DataDir = "" },
		"empty documents dir":   func(c *Config) { c.DocumentsDir = "" },
		"zero top_k":            func(c *Config) { c.TopK = 0 },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
