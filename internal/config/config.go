package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the renderer
var Formats = []string{"text", "json", "yaml", "table"}

// GlobalConfig represents the system-wide or user-specific global configuration.
type GlobalConfig struct {
	Locale string       `yaml:"locale"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// MaxBodyBytes caps request bodies accepted by the HTTP endpoint
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// DefaultGlobalConfig returns the hardcoded default configuration.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Locale: "",
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 64 << 10,
		},
	}
}

// LoadGlobal loads the global configuration from the specified path or standard locations.
func LoadGlobal(customPath string) (*GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	// 1. Determine config path
	path := customPath
	if path == "" {
		path = findGlobalConfig()
	}

	if path == "" {
		// No config found, return defaults
		return &cfg, nil
	}

	// 2. Read and parse
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse global config at %s: %w", path, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid global config at %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field values that yaml decoding cannot
func Validate(cfg *GlobalConfig) error {
	if !slices.Contains(Formats, cfg.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %v)", cfg.Output.Format, Formats)
	}
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}
	return nil
}

// ResolveLocale picks the configured locale, falling back to the
// LC_ALL, LC_MESSAGES and LANG environment variables.
func (c *GlobalConfig) ResolveLocale() string {
	if c.Locale != "" {
		return c.Locale
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return ""
}

// findGlobalConfig searches for the global config file in standard locations.
func findGlobalConfig() string {
	// XDG_CONFIG_HOME
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			xdgConfig = filepath.Join(home, ".config")
		}
	}

	if xdgConfig != "" {
		path := filepath.Join(xdgConfig, "pagesel", "config.yml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// /etc fallback
	etcPath := "/etc/pagesel/config.yml"
	if _, err := os.Stat(etcPath); err == nil {
		return etcPath
	}

	return ""
}
