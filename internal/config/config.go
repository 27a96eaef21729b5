package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Tape TapeConfig `mapstructure:"tape"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width      int  `mapstructure:"width"`
	ShowTape   bool `mapstructure:"show_tape"`
	TapeRows   int  `mapstructure:"tape_rows"`
	ShowKeypad bool `mapstructure:"show_keypad"`
}

// LogConfig controls where log output goes while the TUI owns the terminal.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"`
}

// TapeConfig holds settings for the session calculation tape.
type TapeConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
}

const (
	minWidth = 14
	maxWidth = 80
)

// Load reads configuration from file and env. Env var overrides use prefix JASKCALC_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.width", 24)
	v.SetDefault("ui.show_tape", true)
	v.SetDefault("ui.tape_rows", 8)
	v.SetDefault("ui.show_keypad", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.debug", false)
	v.SetDefault("tape.enabled", true)
	v.SetDefault("tape.max_entries", 500)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKCALC_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskcalc"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKCALC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine; an explicit path or a broken file is not
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.clamp()
	return c, nil
}

func (c *Config) clamp() {
	if c.UI.Width < minWidth {
		c.UI.Width = minWidth
	}
	if c.UI.Width > maxWidth {
		c.UI.Width = maxWidth
	}
	if c.UI.TapeRows < 1 {
		c.UI.TapeRows = 1
	}
	if c.Tape.MaxEntries < c.UI.TapeRows {
		c.Tape.MaxEntries = c.UI.TapeRows
	}
}
