// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig wraps every failure to produce a usable configuration
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to environment overrides, e.g. ELOLCD_API_KEY
const EnvPrefix = "ELOLCD"

// Config is the full application configuration
type Config struct {
	APIKey    string          `mapstructure:"api_key"`
	Endpoints EndpointsConfig `mapstructure:"endpoints"`
	Display   DisplayConfig   `mapstructure:"display"`
	Discord   DiscordConfig   `mapstructure:"discord"`
	Timing    TimingConfig    `mapstructure:"timing"`
}

// EndpointsConfig locates the two upstream services
type EndpointsConfig struct {
	DirectoryURL string `mapstructure:"directory_url"`
	FireteamURL  string `mapstructure:"fireteam_url"`
	Platform     string `mapstructure:"platform"`
}

// DisplayConfig selects and sizes the display
type DisplayConfig struct {
	Driver  string `mapstructure:"driver"`
	I2CBus  string `mapstructure:"i2c_bus"`
	Address uint16 `mapstructure:"address"`
	Cols    int    `mapstructure:"cols"`
	Rows    int    `mapstructure:"rows"`
}

// DiscordConfig is used by the discord display driver
type DiscordConfig struct {
	Token     string `mapstructure:"token"`
	ChannelID string `mapstructure:"channel_id"`
}

// TimingConfig holds the loop cadence
type TimingConfig struct {
	UpdatePause  time.Duration `mapstructure:"update_pause"`
	BlinkStep    time.Duration `mapstructure:"blink_step"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

var defaults = map[string]any{
	"api_key":                 "",
	"endpoints.directory_url": "http://www.bungie.net/Platform/Destiny",
	"endpoints.fireteam_url":  "http://api.guardian.gg",
	"endpoints.platform":      "2",
	"display.driver":          "charlcd",
	"display.i2c_bus":         "",
	"display.address":         0x20,
	"display.cols":            16,
	"display.rows":            2,
	"discord.token":           "",
	"discord.channel_id":      "",
	"timing.update_pause":     3 * time.Second,
	"timing.blink_step":       time.Second,
	"timing.poll_interval":    300 * time.Second,
}

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process
// environment. A missing file is not an error; it reports whether one was read.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: env file %s: %v", ErrInvalidConfig, path, err)
	}
	return true, nil
}

// Load reads the YAML file at path. Environment variables with EnvPrefix
// override file values. The file must exist and set api_key.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the fields the program cannot run without
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api_key is required", ErrInvalidConfig)
	}

	switch c.Display.Driver {
	case "charlcd", "console":
	case "discord":
		if c.Discord.Token == "" || c.Discord.ChannelID == "" {
			return fmt.Errorf("%w: discord driver needs discord.token and discord.channel_id", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown display driver %q", ErrInvalidConfig, c.Display.Driver)
	}

	if c.Timing.UpdatePause <= 0 || c.Timing.BlinkStep <= 0 || c.Timing.PollInterval <= 0 {
		return fmt.Errorf("%w: timing values must be positive", ErrInvalidConfig)
	}

	return nil
}
