package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/splitbill/splitbill/internal/roster"
)

// Config is everything the app reads at startup.
type Config struct {
	Seed           string `mapstructure:"seed"`
	Theme          string `mapstructure:"theme"`
	AvatarTemplate string `mapstructure:"avatar_template"`
	LogLevel       string `mapstructure:"log_level"`
	LogFile        string `mapstructure:"log_file"`
	NoColor        bool   `mapstructure:"no_color"`
	Export         string `mapstructure:"export"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:          "classic",
		AvatarTemplate: roster.DefaultAvatarTemplate,
		LogLevel:       "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/splitbill/config.yaml (or the OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, "splitbill", "config.yaml"), nil
}

// Load merges defaults, the YAML file at path (optional) and SPLITBILL_*
// environment variables. An empty path means DefaultPath. A missing file is fine.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	cfg := Default()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SPLITBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("avatar_template", cfg.AvatarTemplate)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("no_color", cfg.NoColor)
	v.SetDefault("export", cfg.Export)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			if explicit {
				return Config{}, fmt.Errorf("config %s: %w", path, os.ErrNotExist)
			}
		default:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unsupported theme %q (classic, neon, mono)", c.Theme)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log_level %q", c.LogLevel)
	}
	if !strings.Contains(c.AvatarTemplate, "{id}") {
		return fmt.Errorf("avatar_template must contain {id}")
	}
	return nil
}
