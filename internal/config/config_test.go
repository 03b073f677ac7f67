package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/fortune/internal/config"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("FORTUNE_LOG_LEVEL", "")
	return dir
}

func TestLoadConfig_CreatesDefault(t *testing.T) {
	useTempHome(t)

	c, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Color || c.Symbols != config.SymbolsUnicode || c.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if _, err := os.Stat(config.GetConfigFilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestSet_PersistsValues(t *testing.T) {
	useTempHome(t)

	if err := config.Set("color", "false"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	if err := config.Set("symbols", "ascii"); err != nil {
		t.Fatalf("set symbols: %v", err)
	}

	c, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Color || c.Symbols != config.SymbolsASCII {
		t.Errorf("values not persisted: %+v", c)
	}
}

func TestSet_RejectsInvalid(t *testing.T) {
	useTempHome(t)

	cases := [][2]string{
		{"color", "maybe"},
		{"symbols", "emoji"},
		{"log_level", "loud"},
		{"unknown", "x"},
	}
	for _, kv := range cases {
		if err := config.Set(kv[0], kv[1]); err == nil {
			t.Errorf("expected error for %s=%s", kv[0], kv[1])
		}
	}
}

func TestLoadConfig_EnvOverridesLogLevel(t *testing.T) {
	useTempHome(t)
	t.Setenv("FORTUNE_LOG_LEVEL", "debug")

	c, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", c.SlogLevel())
	}
}

func TestGetNamesPath(t *testing.T) {
	dir := useTempHome(t)

	library := config.GetDeckLibraryPath()
	if err := os.MkdirAll(filepath.Join(library, "marseille"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	c := config.Default()
	if p, err := c.GetNamesPath(); err != nil || p != "" {
		t.Errorf("expected empty path, got %q, %v", p, err)
	}

	c.NamesFile = "marseille"
	if p, err := c.GetNamesPath(); err != nil || p != filepath.Join(library, "marseille") {
		t.Errorf("expected library deck, got %q, %v", p, err)
	}

	c.NamesFile = filepath.Join(dir, "nowhere.toml")
	if _, err := c.GetNamesPath(); err == nil {
		t.Errorf("expected error for missing names file")
	}
}
