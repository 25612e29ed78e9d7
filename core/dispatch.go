package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hamidzr/gweather/model"
	"github.com/hamidzr/gweather/weather"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// EventID names a user action.
type EventID string

const (
	EventSearch        EventID = "search"
	EventHistorySelect EventID = "history-select"
	EventClearHistory  EventID = "clear-history"
	EventToggleUnit    EventID = "toggle-unit"
	EventSetUnit       EventID = "set-unit"
	EventToggleTheme   EventID = "toggle-theme"
	EventLocate        EventID = "locate"
)

// Handler reacts to one event. payload is event specific, e.g. a city name.
type Handler func(ctx context.Context, s *State, payload string) error

// Lookup is the blocking half of a network backed event. It runs without the
// dispatcher lock and must not touch State.
type Lookup func(ctx context.Context, svc weather.Service, payload string) (*model.Report, error)

// Apply folds a Lookup result into State under the dispatcher lock.
type Apply func(s *State, payload string, report *model.Report, err error) error

type lookupEvent struct {
	fetch Lookup
	apply Apply
}

var (
	ErrUnknownEvent       = errors.New("unknown event")
	ErrEmptyQuery         = errors.New("empty query")
	ErrNoService          = errors.New("weather service not configured")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

const (
	msgEmptyQuery  = "Please enter a city name"
	msgUnexpected  = "An unexpected error occurred."
	msgNoService   = "Weather lookups are unavailable: no API key configured."
	msgBadLocation = "Coordinates must look like 'lat,lon'."
)

// DefaultHandlers is the dispatch table for events that only touch State.
func DefaultHandlers() map[EventID]Handler {
	return map[EventID]Handler{
		EventClearHistory: handleClearHistory,
		EventToggleUnit:   handleToggleUnit,
		EventSetUnit:      handleSetUnit,
		EventToggleTheme:  handleToggleTheme,
	}
}

func defaultLookups() map[EventID]lookupEvent {
	city := lookupEvent{fetch: fetchCity, apply: applyCity}
	return map[EventID]lookupEvent{
		EventSearch:        city,
		EventHistorySelect: city,
		EventLocate:        {fetch: fetchCoordinates, apply: applyCoordinates},
	}
}

// Dispatcher routes events to handlers and notifies subscribers afterwards.
// State changes are serialized; subscribers run under the same lock and must
// not dispatch themselves. Network lookups run outside the lock, so a slow
// search does not hold up other events. Concurrent lookups apply in the
// order they finish.
type Dispatcher struct {
	mu        sync.Mutex
	state     *State
	handlers  map[EventID]Handler
	lookups   map[EventID]lookupEvent
	listeners []func(*State)
}

func NewDispatcher(state *State) *Dispatcher {
	return &Dispatcher{
		state:    state,
		handlers: DefaultHandlers(),
		lookups:  defaultLookups(),
	}
}

// Register adds or replaces the handler for id.
func (d *Dispatcher) Register(id EventID, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.lookups, id)
	d.handlers[id] = h
}

// RegisterLookup adds or replaces a network backed event.
func (d *Dispatcher) RegisterLookup(id EventID, fetch Lookup, apply Apply) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, id)
	d.lookups[id] = lookupEvent{fetch: fetch, apply: apply}
}

// Subscribe registers fn to run after every dispatch, successful or not.
func (d *Dispatcher) Subscribe(fn func(*State)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, fn)
}

// Events lists the registered event ids in sorted order.
func (d *Dispatcher) Events() []EventID {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := append(lo.Keys(d.handlers), lo.Keys(d.lookups)...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// State exposes the state handlers operate on.
func (d *Dispatcher) State() *State {
	return d.state
}

// Dispatch runs the handler registered for id.
func (d *Dispatcher) Dispatch(ctx context.Context, id EventID, payload string) error {
	d.mu.Lock()
	lookup, isLookup := d.lookups[id]
	h, isHandler := d.handlers[id]
	svc := d.state.Service
	d.mu.Unlock()

	logrus.WithField("event", id).Debug("dispatching")
	switch {
	case isLookup:
		report, err := lookup.fetch(ctx, svc, payload)
		return d.update(func(s *State) error { return lookup.apply(s, payload, report, err) })
	case isHandler:
		return d.update(func(s *State) error { return h(ctx, s, payload) })
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEvent, id)
	}
}

// update runs fn on State under the lock and then notifies subscribers.
func (d *Dispatcher) update(fn func(*State) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	err := fn(d.state)
	for _, listener := range d.listeners {
		listener(d.state)
	}
	return err
}

func fetchCity(ctx context.Context, svc weather.Service, payload string) (*model.Report, error) {
	city := strings.TrimSpace(payload)
	if city == "" {
		return nil, ErrEmptyQuery
	}
	if svc == nil {
		return nil, ErrNoService
	}
	return svc.Current(ctx, city)
}

func applyCity(s *State, payload string, report *model.Report, err error) error {
	if err != nil {
		s.reject(err)
		return err
	}
	s.Current = report
	s.LastError = ""
	s.History.Add(payload)
	return nil
}

func fetchCoordinates(ctx context.Context, svc weather.Service, payload string) (*model.Report, error) {
	lat, lon, err := ParseCoordinates(payload)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrNoService
	}
	return svc.ByCoordinates(ctx, lat, lon)
}

func applyCoordinates(s *State, _ string, report *model.Report, err error) error {
	if err != nil {
		s.reject(err)
		return err
	}
	s.Current = report
	s.LastError = ""
	return nil
}

// reject records why an event did not produce a report. Input problems keep
// the current report on screen; lookup failures clear it.
func (s *State) reject(err error) {
	switch {
	case errors.Is(err, ErrEmptyQuery):
		s.LastError = msgEmptyQuery
	case errors.Is(err, ErrInvalidCoordinates):
		s.LastError = msgBadLocation
	case errors.Is(err, ErrNoService):
		s.LastError = msgNoService
	default:
		s.fail(err)
	}
}

// fail records a lookup error, keeping service messages and hiding the rest.
func (s *State) fail(err error) {
	s.Current = nil
	var svcErr *weather.ServiceError
	if errors.As(err, &svcErr) {
		s.LastError = svcErr.Message
		return
	}
	logrus.WithError(err).Debug("unexpected lookup failure")
	s.LastError = msgUnexpected
}

func handleClearHistory(_ context.Context, s *State, _ string) error {
	s.History.Clear()
	return nil
}

func handleToggleUnit(_ context.Context, s *State, _ string) error {
	s.Unit = s.Unit.Toggle()
	s.Prefs.SetTempUnit(s.Unit)
	return nil
}

func handleSetUnit(_ context.Context, s *State, payload string) error {
	unit, err := model.ParseTempUnit(payload)
	if err != nil {
		s.LastError = fmt.Sprintf("Unknown temperature unit %q.", payload)
		return err
	}
	s.Unit = unit
	s.Prefs.SetTempUnit(unit)
	return nil
}

func handleToggleTheme(_ context.Context, s *State, _ string) error {
	s.Theme = s.Theme.Toggle()
	return nil
}

// ParseCoordinates reads "lat,lon" in decimal degrees.
func ParseCoordinates(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinates, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinates, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinates, parts[1])
	}
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 || math.Abs(lon) > 180 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidCoordinates, s)
	}
	return lat, lon, nil
}
