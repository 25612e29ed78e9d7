package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"
)

// configKeys are the canonical snake_case keys accepted in config.yaml.
// Multi-word keys may also be written in camelCase.
var configKeys = []string{
	"title",
	"width",
	"height",
	"api_key",
	"base_url",
	"units",
	"timeout",
	"history_size",
	"history_file",
	"preferences_file",
	"log_level",
	"terminal_mode",
}

// camelKey turns history_size into historySize.
func camelKey(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// canonicalByKey maps every accepted spelling to its canonical key.
var canonicalByKey = func() map[string]string {
	m := lo.SliceToMap(configKeys, func(k string) (string, string) { return k, k })
	for _, k := range configKeys {
		m[camelKey(k)] = k
	}
	return m
}()

// registerConfigKeyAliases lets viper read camelCase keys as their canonical
// names. Call it after the file has been read.
func registerConfigKeyAliases(v *viper.Viper) {
	for _, k := range configKeys {
		if camel := camelKey(k); camel != k {
			v.RegisterAlias(camel, k)
		}
	}
}

// validateConfigFileKeys rejects unknown keys and files that spell one key in
// both styles.
func validateConfigFileKeys(configPath string) error {
	if configPath == "" {
		return nil
	}
	displayPath := configFileDisplayPath(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", displayPath, err)
	}
	var raw map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", displayPath, err)
	}

	keys := lo.Keys(raw)
	sort.Strings(keys)
	spelledAs := make(map[string]string, len(keys))
	for _, key := range keys {
		canonical, ok := canonicalByKey[key]
		if !ok {
			return fmt.Errorf("config file %s contains invalid key %q", displayPath, key)
		}
		if other, seen := spelledAs[canonical]; seen {
			return fmt.Errorf("config file %s sets %q twice, as %q (%s) and %q (%s); pick one spelling",
				displayPath, canonical, other, keyStyle(other), key, keyStyle(key))
		}
		spelledAs[canonical] = key
	}
	return nil
}

func keyStyle(key string) string {
	switch {
	case key == "":
		return "unknown style"
	case strings.Contains(key, "_"):
		return "snake_case"
	case strings.Contains(key, "-"):
		return "kebab-case"
	default:
		return "camelCase"
	}
}

func configFileDisplayPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
