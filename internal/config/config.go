package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI    UIConfig
	Debug DebugConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowWelcome   bool   `mapstructure:"show_welcome"`
	RevealDelayMS int    `mapstructure:"reveal_delay_ms"`
	Accent        string `mapstructure:"accent"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	LogFile string `mapstructure:"log_file"`
}

// Load reads configuration from file and env. Env var overrides use prefix SANTADRAW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.show_welcome", true)
	v.SetDefault("ui.reveal_delay_ms", 300)
	v.SetDefault("ui.accent", "")
	v.SetDefault("debug.log_file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SANTADRAW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "santadraw"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SANTADRAW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
