package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTokenListURL = "https://tokens.jup.ag/tokens?tags=verified"
	defaultCacheTTL     = 1 * time.Hour
	defaultTimeout      = 10 * time.Second
)

// Config is the application configuration read from YAML.
type Config struct {
	AppID     string          `yaml:"app_id"`
	Window    WindowConfig    `yaml:"window"`
	TokenList TokenListConfig `yaml:"token_list"`
	Wallet    WalletConfig    `yaml:"wallet"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// TokenListConfig points at a JSON token list. An empty URL disables fetching
// and the built-in tokens are used.
type TokenListConfig struct {
	URL      string        `yaml:"url"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	Timeout  time.Duration `yaml:"timeout"`
}

type WalletConfig struct {
	AutoReconnect bool `yaml:"auto_reconnect"`

	// StorageDir overrides the saved wallets directory. Empty means the
	// application storage root.
	StorageDir string `yaml:"storage_dir"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		AppID: "com.swapdesk.app",
		Window: WindowConfig{
			Title:  "Swapdesk",
			Width:  1000,
			Height: 700,
		},
		TokenList: TokenListConfig{
			URL:      defaultTokenListURL,
			CacheTTL: defaultCacheTTL,
			Timeout:  defaultTimeout,
		},
		Wallet: WalletConfig{
			AutoReconnect: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path on top of the defaults and validates the
// result. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("app_id cannot be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.TokenList.CacheTTL < 0 {
		return fmt.Errorf("token_list.cache_ttl cannot be negative: %s", c.TokenList.CacheTTL)
	}
	if c.TokenList.Timeout <= 0 {
		return fmt.Errorf("token_list.timeout must be positive: %s", c.TokenList.Timeout)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}

	return nil
}
