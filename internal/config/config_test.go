package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*GlobalConfig)
		shouldError bool
	}{
		{
			name:        "defaults",
			mutate:      func(*GlobalConfig) {},
			shouldError: false,
		},
		{
			name:        "unknown format",
			mutate:      func(c *GlobalConfig) { c.Output.Format = "xml" },
			shouldError: true,
		},
		{
			name:        "empty address",
			mutate:      func(c *GlobalConfig) { c.Server.Addr = "" },
			shouldError: true,
		},
		{
			name:        "zero body limit",
			mutate:      func(c *GlobalConfig) { c.Server.MaxBodyBytes = 0 },
			shouldError: true,
		},
		{
			name:        "table format",
			mutate:      func(c *GlobalConfig) { c.Output.Format = "table" },
			shouldError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGlobalConfig()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			if tt.shouldError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	content := `locale: it
output:
  format: json
server:
  addr: "127.0.0.1:9000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal(configPath)
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}

	if cfg.Locale != "it" {
		t.Errorf("unexpected locale: %s", cfg.Locale)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("unexpected format: %s", cfg.Output.Format)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr: %s", cfg.Server.Addr)
	}
	// Unset keys keep their defaults
	if cfg.Server.MaxBodyBytes != DefaultGlobalConfig().Server.MaxBodyBytes {
		t.Errorf("unexpected max body bytes: %d", cfg.Server.MaxBodyBytes)
	}
}

func TestLoadGlobal_XDG(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	if err := os.MkdirAll(filepath.Join(tmpDir, "pagesel"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(tmpDir, "pagesel", "config.yml")
	if err := os.WriteFile(path, []byte("output:\n  format: yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGlobal("")
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("expected format from XDG config, got %s", cfg.Output.Format)
	}
}

func TestLoadGlobal_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadGlobal(filepath.Join(tmpDir, "nope.yml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.yml")
		if err := os.WriteFile(path, []byte("output: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadGlobal(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(tmpDir, "invalid.yml")
		if err := os.WriteFile(path, []byte("output:\n  format: pdf\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadGlobal(path); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestResolveLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_DE.UTF-8")

	cfg := DefaultGlobalConfig()
	if got := cfg.ResolveLocale(); got != "de_DE.UTF-8" {
		t.Errorf("ResolveLocale() = %q, want LANG value", got)
	}

	cfg.Locale = "it"
	if got := cfg.ResolveLocale(); got != "it" {
		t.Errorf("ResolveLocale() = %q, want configured locale", got)
	}
}
