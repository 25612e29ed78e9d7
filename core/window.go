package core

import "fyne.io/fyne/v2"

const (
	minWindowWidth  = 320
	minWindowHeight = 480
)

// fitWindowSize clamps the configured size between a usable minimum and the
// screen. A zero dimension picks the minimum.
func fitWindowSize(width, height float32, screenW, screenH int) fyne.Size {
	clamp := func(v, lo float32, hi int) float32 {
		if v < lo {
			v = lo
		}
		if hi > 0 && v > float32(hi) {
			v = float32(hi)
		}
		return v
	}
	return fyne.NewSize(clamp(width, minWindowWidth, screenW), clamp(height, minWindowHeight, screenH))
}

// numericKeyToIndex converts numeric key names to zero-based indices
func numericKeyToIndex(keyName fyne.KeyName) (int, bool) {
	switch keyName {
	case fyne.Key1:
		return 0, true
	case fyne.Key2:
		return 1, true
	case fyne.Key3:
		return 2, true
	case fyne.Key4:
		return 3, true
	case fyne.Key5:
		return 4, true
	case fyne.Key6:
		return 5, true
	case fyne.Key7:
		return 6, true
	case fyne.Key8:
		return 7, true
	case fyne.Key9:
		return 8, true
	default:
		return 0, false
	}
}

// handleKey reacts to keys typed while no widget has focus: digits look up
// the matching recent search, F5 repeats the newest one, Escape closes.
func (g *GUI) handleKey(ev *fyne.KeyEvent) {
	recent := g.recentSearches()
	if idx, ok := numericKeyToIndex(ev.Name); ok {
		if idx < len(recent) {
			g.CityEntry.SetText(recent[idx])
			g.dispatchAsync(EventHistorySelect, recent[idx])
		}
		return
	}
	switch ev.Name {
	case fyne.KeyF5:
		if len(recent) > 0 {
			g.dispatchAsync(EventSearch, recent[0])
		}
	case fyne.KeyEscape:
		g.Close()
	}
}
