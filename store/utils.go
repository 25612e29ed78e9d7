package store

import (
	"os"
	"path/filepath"

	"github.com/hamidzr/gweather/constant"
)

// ConfigDir is where user preferences live.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constant.ProjectName)
	}
	return filepath.Join(os.Getenv("HOME"), ".config", constant.ProjectName)
}

// CacheDir is where disposable state such as the search history lives.
func CacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, constant.ProjectName)
	}
	return filepath.Join(os.Getenv("HOME"), ".cache", constant.ProjectName)
}

// DefaultHistoryPath is the search history file used when none is configured.
func DefaultHistoryPath() string {
	return filepath.Join(CacheDir(), constant.HistoryFileName)
}

// DefaultPreferencesPath is the preferences file used when none is configured.
func DefaultPreferencesPath() string {
	return filepath.Join(ConfigDir(), constant.PrefsFileName)
}
