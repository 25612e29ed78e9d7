package core

import (
	"github.com/hamidzr/gweather/internal/config"
	"github.com/hamidzr/gweather/model"
	"github.com/hamidzr/gweather/store"
	"github.com/hamidzr/gweather/weather"
)

// Theme is the light/dark presentation mode.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// State is everything the event handlers read and mutate. It is passed
// explicitly to every handler; nothing here lives in package globals.
type State struct {
	Config *config.Config
	Theme  Theme
	Unit   model.TempUnit
	// Current is the last successful lookup, nil after a failure.
	Current *model.Report
	// LastError is the user facing message of the last failed action.
	LastError string

	History *store.RecencyCache
	Prefs   *store.Preferences
	// Service is nil when no API key is configured.
	Service weather.Service
}

// NewState loads persisted history and preferences for cfg.
func NewState(cfg *config.Config, svc weather.Service) *State {
	prefs := store.LoadPreferences(cfg.PreferencesFile)
	return &State{
		Config:  cfg,
		Theme:   ThemeLight,
		Unit:    prefs.TempUnit(),
		History: store.LoadRecencyCache(cfg.HistoryFile, cfg.HistorySize),
		Prefs:   prefs,
		Service: svc,
	}
}

// NewService builds the http weather client for cfg, or nil when there is no
// API key to call it with.
func NewService(cfg *config.Config) weather.Service {
	if cfg.RequireAPIKey() != nil {
		return nil
	}
	return weather.NewClient(weather.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Units:   model.ParseUnits(cfg.Units),
		Timeout: cfg.Timeout,
	})
}
