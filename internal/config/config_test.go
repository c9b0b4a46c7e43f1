package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Game.Sound != nil || cfg.Game.History != nil || cfg.Game.WordsFile != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigGameSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[game]\nsound = false\nwords-file = \"/tmp/words.txt\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Sound == nil || *cfg.Game.Sound {
		t.Fatalf("expected sound=false, got %v", cfg.Game.Sound)
	}
	if cfg.Game.WordsFile == nil || *cfg.Game.WordsFile != "/tmp/words.txt" {
		t.Fatalf("unexpected words-file: %v", cfg.Game.WordsFile)
	}
	if cfg.Game.History != nil {
		t.Fatalf("expected history unset")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_STATE_HOME", "/state")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordrush", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordrush", "wordrush.db") {
		t.Fatalf("unexpected db path %q", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/state", "wordrush", "wordrush.log") {
		t.Fatalf("unexpected log path %q", got)
	}
}
