package config

import (
	"strings"
	"time"

	"github.com/hamidzr/gweather/constant"
	"github.com/hamidzr/gweather/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// app settings
	Title  string  `mapstructure:"title" yaml:"title"`
	Width  float32 `mapstructure:"width" yaml:"width" validate:"gte=0"`
	Height float32 `mapstructure:"height" yaml:"height" validate:"gte=0"`

	// weather api
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	Units   string        `mapstructure:"units" yaml:"units" validate:"oneof=metric imperial standard"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`

	// persisted state
	HistorySize     int    `mapstructure:"history_size" yaml:"history_size" validate:"min=1,max=100"`
	HistoryFile     string `mapstructure:"history_file" yaml:"history_file"`
	PreferencesFile string `mapstructure:"preferences_file" yaml:"preferences_file"`

	// internal settings
	LogLevel     string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=trace debug info warn error"`
	TerminalMode bool   `mapstructure:"terminal_mode" yaml:"terminal_mode"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Title:           "Weather App",
		Width:           400,
		Height:          600,
		APIKey:          "",
		BaseURL:         constant.DefaultBaseURL,
		Units:           string(model.Metric),
		Timeout:         10 * time.Second,
		HistorySize:     constant.DefaultHistorySize,
		HistoryFile:     "", // resolved under the user cache dir
		PreferencesFile: "", // resolved under the user config dir
		LogLevel:        "info",
		TerminalMode:    false,
	}
}

// BindFlags binds CLI flags to the cobra command
func BindFlags(cmd *cobra.Command) {
	defaults := DefaultConfig()

	cmd.PersistentFlags().StringP("title", "t", defaults.Title, "Title of the app window")
	cmd.PersistentFlags().Float32("width", defaults.Width, "Window width")
	cmd.PersistentFlags().Float32("height", defaults.Height, "Window height")
	cmd.PersistentFlags().String("api-key", defaults.APIKey, "OpenWeatherMap API key")
	cmd.PersistentFlags().String("base-url", defaults.BaseURL, "Weather API endpoint")
	cmd.PersistentFlags().StringP("units", "u", defaults.Units, "Units requested from the API: metric, imperial or standard")
	cmd.PersistentFlags().Duration("timeout", defaults.Timeout, "HTTP timeout for weather lookups")
	cmd.PersistentFlags().Int("history-size", defaults.HistorySize, "Number of recent searches to remember")
	cmd.PersistentFlags().String("history-file", defaults.HistoryFile, "Path of the recent searches file")
	cmd.PersistentFlags().String("preferences-file", defaults.PreferencesFile, "Path of the preferences file")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().Bool("terminal", defaults.TerminalMode, "Run in terminal-only mode without GUI")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"title":            "title",
	"width":            "width",
	"height":           "height",
	"api-key":          "api_key",
	"base-url":         "base_url",
	"units":            "units",
	"timeout":          "timeout",
	"history-size":     "history_size",
	"history-file":     "history_file",
	"preferences-file": "preferences_file",
	"log-level":        "log_level",
	"terminal":         "terminal_mode",
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("api_key", defaults.APIKey)
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("units", defaults.Units)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("history_size", defaults.HistorySize)
	v.SetDefault("history_file", defaults.HistoryFile)
	v.SetDefault("preferences_file", defaults.PreferencesFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("terminal_mode", defaults.TerminalMode)
}

// SetViperEnvSettings configures viper environment variable settings.
// The OPENWEATHER_* names are honoured for compatibility with existing
// .env setups.
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix("GWEATHER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api_key", "GWEATHER_API_KEY", "OPENWEATHER_API_KEY")
	_ = v.BindEnv("base_url", "GWEATHER_BASE_URL", "OPENWEATHER_BASE_URL")
}
