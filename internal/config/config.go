package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/hamidzr/gweather/constant"
	"github.com/hamidzr/gweather/model"
	"github.com/hamidzr/gweather/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// ErrMissingAPIKey is returned when a lookup is attempted without credentials.
var ErrMissingAPIKey = errors.New("API key missing: set GWEATHER_API_KEY (or OPENWEATHER_API_KEY) or api_key in config.yaml")

var validate = validator.New()

// getConfigPaths returns the config directory paths in priority order
// prefers ~/.config over macos application support dir
func getConfigPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
		paths = append(paths, filepath.Join(homeDir, "."+constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	paths = append(paths, ".")

	return paths
}

// GetPreferredConfigDir returns the preferred config directory for writing
func GetPreferredConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", constant.ProjectName), nil
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, constant.ProjectName), nil
	}
	return "", fmt.Errorf("unable to determine config directory")
}

// lookupFlag finds a flag whether it was declared locally or inherited.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	if f := cmd.PersistentFlags().Lookup(name); f != nil {
		return f
	}
	return cmd.InheritedFlags().Lookup(name)
}

// InitConfig initializes Viper configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file
// 4. Defaults (lowest priority)
func InitConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range getConfigPaths() {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found is ok, we'll use defaults + env vars + flags
	}
	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}
	// aliases registered after reading move camelCase keys onto their canonical names.
	registerConfigKeyAliases(v)

	for name, key := range flagKeys {
		if f := lookupFlag(cmd, name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.Normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Normalize fills derived values. Unknown unit systems fall back to metric.
func (c *Config) Normalize() {
	c.Units = string(model.ParseUnits(c.Units))
	if c.HistoryFile == "" {
		c.HistoryFile = store.DefaultHistoryPath()
	}
	if c.PreferencesFile == "" {
		c.PreferencesFile = store.DefaultPreferencesPath()
	}
	if c.BaseURL == "" {
		c.BaseURL = constant.DefaultBaseURL
	}
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config value for %s: %v fails %q", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RequireAPIKey reports ErrMissingAPIKey when no key is configured.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// InitConfigFile generates and saves a default config file in configDir.
func InitConfigFile(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	yamlData, err := yaml.Marshal(defaultFileConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	header := `# gweather configuration file
# Generated automatically - customize as needed
#
# units: metric, imperial or standard
# timeout: go duration, e.g. 10s
# api_key can also come from GWEATHER_API_KEY or OPENWEATHER_API_KEY
#

`
	if err := os.WriteFile(configPath, []byte(header+string(yamlData)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return configPath, nil
}

// fileConfig mirrors Config for file generation with the timeout as text.
type fileConfig struct {
	Title           string  `yaml:"title"`
	Width           float32 `yaml:"width"`
	Height          float32 `yaml:"height"`
	APIKey          string  `yaml:"api_key"`
	BaseURL         string  `yaml:"base_url"`
	Units           string  `yaml:"units"`
	Timeout         string  `yaml:"timeout"`
	HistorySize     int     `yaml:"history_size"`
	HistoryFile     string  `yaml:"history_file"`
	PreferencesFile string  `yaml:"preferences_file"`
	LogLevel        string  `yaml:"log_level"`
	TerminalMode    bool    `yaml:"terminal_mode"`
}

func defaultFileConfig() fileConfig {
	d := DefaultConfig()
	return fileConfig{
		Title:           d.Title,
		Width:           d.Width,
		Height:          d.Height,
		APIKey:          d.APIKey,
		BaseURL:         d.BaseURL,
		Units:           d.Units,
		Timeout:         d.Timeout.String(),
		HistorySize:     d.HistorySize,
		HistoryFile:     d.HistoryFile,
		PreferencesFile: d.PreferencesFile,
		LogLevel:        d.LogLevel,
		TerminalMode:    d.TerminalMode,
	}
}
