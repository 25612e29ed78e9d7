package store

import (
	"os"

	"github.com/hamidzr/gweather/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const tempUnitKey = "temp_unit"

// Preferences holds small user choices that survive restarts. Keys it does
// not know about are kept and written back untouched.
type Preferences struct {
	values map[string]any
	store  *FileStore[map[string]any]
}

// LoadPreferences reads the preferences file at path. Missing or corrupt
// files load as defaults.
func LoadPreferences(path string) *Preferences {
	fs, err := NewFileStore[map[string]any](path, "json")
	if err != nil {
		panic(err)
	}
	p := &Preferences{store: fs, values: defaultPreferences()}

	values, err := fs.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", path).Warn("ignoring unreadable preferences")
		}
		return p
	}
	for k, v := range values {
		p.values[k] = v
	}
	return p
}

func defaultPreferences() map[string]any {
	return map[string]any{tempUnitKey: string(model.Celsius)}
}

// TempUnit is the stored display unit; unrecognized values read as Celsius.
func (p *Preferences) TempUnit() model.TempUnit {
	unit, err := model.ParseTempUnit(cast.ToString(p.values[tempUnitKey]))
	if err != nil {
		return model.Celsius
	}
	return unit
}

// SetTempUnit records the display unit and persists it.
func (p *Preferences) SetTempUnit(unit model.TempUnit) {
	p.values[tempUnitKey] = string(unit)
	p.flush()
}

// Path is the file preferences are flushed to.
func (p *Preferences) Path() string {
	return p.store.Path()
}

func (p *Preferences) flush() {
	if err := p.store.Save(p.values); err != nil {
		logrus.WithError(err).WithField("path", p.store.Path()).Warn("failed to save preferences")
	}
}
