package core

import (
	"context"
	"sync"
	"sync/atomic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/frostbyte73/core"
	"github.com/hamidzr/gweather/render"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	historyPlaceholder = "Recent searches"
	entryPlaceholder   = "Enter city name"
	clearButtonWidth   = 44
)

// GUI is the fyne front end. Widgets only dispatch events; what they show is
// derived from State after each dispatch.
type GUI struct {
	app        fyne.App
	window     fyne.Window
	dispatcher *Dispatcher
	ctx        context.Context
	cancel     context.CancelFunc
	closed     core.Fuse
	pending    sync.WaitGroup
	inflight   atomic.Int32

	// uiMu guards widget updates made from dispatch goroutines and the
	// fields below.
	uiMu sync.Mutex
	dark bool
	// history is the list shown in HistorySelect, newest first.
	history []string

	TitleLabel    *widget.Label
	UnitButton    *widget.Button
	ThemeButton   *widget.Button
	CityEntry     *widget.Entry
	SearchButton  *widget.Button
	HistorySelect *widget.Select
	ClearButton   *widget.Button
	Progress      *widget.ProgressBarInfinite
	ErrorLabel    *widget.Label
	CardArea      *fyne.Container
	Card          *render.WeatherCard
}

// NewGUI builds the main window on a and wires it to d.
func NewGUI(a fyne.App, d *Dispatcher) *GUI {
	ctx, cancel := context.WithCancel(context.Background())
	g := &GUI{
		app:        a,
		dispatcher: d,
		ctx:        ctx,
		cancel:     cancel,
	}
	cfg := d.State().Config

	g.TitleLabel = widget.NewLabelWithStyle(cfg.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	g.UnitButton = widget.NewButton("", func() { g.dispatchAsync(EventToggleUnit, "") })
	g.ThemeButton = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		g.dispatchAsync(EventToggleTheme, "")
	})

	g.CityEntry = widget.NewEntry()
	g.CityEntry.SetPlaceHolder(entryPlaceholder)
	g.CityEntry.OnSubmitted = func(text string) { g.dispatchAsync(EventSearch, text) }
	g.SearchButton = widget.NewButtonWithIcon("Search", theme.SearchIcon(), func() {
		g.dispatchAsync(EventSearch, g.CityEntry.Text)
	})

	g.HistorySelect = widget.NewSelect(nil, func(city string) {
		// ClearSelected reports "" as a change.
		if city == "" {
			return
		}
		g.CityEntry.SetText(city)
		g.dispatchAsync(EventHistorySelect, city)
	})
	g.HistorySelect.PlaceHolder = historyPlaceholder
	g.ClearButton = widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
		g.dispatchAsync(EventClearHistory, "")
	})

	g.Progress = widget.NewProgressBarInfinite()
	g.Progress.Hide()
	g.ErrorLabel = widget.NewLabel("")
	g.ErrorLabel.Importance = widget.DangerImportance
	g.ErrorLabel.Wrapping = fyne.TextWrapWord
	g.ErrorLabel.Hide()
	g.CardArea = container.NewStack()

	header := container.NewBorder(nil, nil, nil, container.NewHBox(g.UnitButton, g.ThemeButton), g.TitleLabel)
	searchRow := container.NewBorder(nil, nil, nil, g.SearchButton, g.CityEntry)
	historyRow := render.NewTrailingRow(g.HistorySelect, g.ClearButton, clearButtonWidth)
	content := container.NewVBox(header, searchRow, historyRow, g.Progress, g.ErrorLabel, g.CardArea)

	g.window = a.NewWindow(cfg.Title)
	g.window.SetContent(container.NewPadded(content))
	screenW, screenH := screenSize()
	g.window.Resize(fitWindowSize(cfg.Width, cfg.Height, screenW, screenH))
	g.window.Canvas().SetOnTypedKey(g.handleKey)
	g.window.SetOnClosed(func() {
		g.closed.Break()
		g.cancel()
	})
	g.window.Canvas().Focus(g.CityEntry)

	g.dark = d.State().Theme == ThemeDark
	a.Settings().SetTheme(render.NewMainTheme(g.dark))
	g.refresh(d.State())
	d.Subscribe(g.refresh)
	return g
}

// ShowAndRun shows the window and blocks until the app quits.
func (g *GUI) ShowAndRun() {
	g.window.ShowAndRun()
}

// Window exposes the main window.
func (g *GUI) Window() fyne.Window {
	return g.window
}

// Close closes the window, cancelling in-flight lookups.
func (g *GUI) Close() {
	g.window.Close()
}

// Closed is closed once the window has gone away.
func (g *GUI) Closed() <-chan struct{} {
	return g.closed.Watch()
}

// Wait blocks until every dispatched event has been handled.
func (g *GUI) Wait() {
	g.pending.Wait()
}

// dispatchAsync runs the event off the callback goroutine so lookups never
// block the ui.
func (g *GUI) dispatchAsync(id EventID, payload string) {
	if g.closed.IsBroken() {
		return
	}
	g.pending.Add(1)
	if g.inflight.Add(1) == 1 {
		g.uiMu.Lock()
		g.Progress.Show()
		g.uiMu.Unlock()
	}
	go func() {
		defer g.pending.Done()
		defer func() {
			if g.inflight.Add(-1) == 0 {
				g.uiMu.Lock()
				g.Progress.Hide()
				g.uiMu.Unlock()
			}
		}()
		g.dispatch(id, payload)
	}()
}

func (g *GUI) dispatch(id EventID, payload string) {
	if err := g.dispatcher.Dispatch(g.ctx, id, payload); err != nil {
		logrus.WithError(err).WithField("event", id).Debug("event failed")
	}
}

// recentSearches is a copy of the history currently on screen.
func (g *GUI) recentSearches() []string {
	g.uiMu.Lock()
	defer g.uiMu.Unlock()
	return append([]string(nil), g.history...)
}

// refresh mirrors s into the widgets. It runs on dispatch goroutines.
func (g *GUI) refresh(s *State) {
	g.uiMu.Lock()
	defer g.uiMu.Unlock()

	g.UnitButton.SetText(s.Unit.Symbol())

	if dark := s.Theme == ThemeDark; dark != g.dark {
		g.dark = dark
		g.app.Settings().SetTheme(render.NewMainTheme(dark))
	}

	items := s.History.List()
	g.history = items
	g.HistorySelect.Options = append([]string(nil), items...)
	if len(items) == 0 {
		g.ClearButton.Disable()
	} else {
		g.ClearButton.Enable()
	}
	if g.HistorySelect.Selected != "" && !lo.Contains(items, g.HistorySelect.Selected) {
		g.HistorySelect.ClearSelected()
	}
	g.HistorySelect.Refresh()

	if s.LastError != "" {
		g.ErrorLabel.SetText(s.LastError)
		g.ErrorLabel.Show()
	} else {
		g.ErrorLabel.SetText("")
		g.ErrorLabel.Hide()
	}

	if s.Current != nil {
		g.Card = render.NewWeatherCard(s.Current, s.Unit)
		g.CardArea.Objects = []fyne.CanvasObject{g.Card.Container}
	} else {
		g.Card = nil
		g.CardArea.Objects = nil
	}
	g.CardArea.Refresh()
}
