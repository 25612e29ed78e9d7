package core

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hamidzr/gweather/internal/config"
	"github.com/hamidzr/gweather/model"
	"github.com/hamidzr/gweather/weather"
)

// fakeService answers from a fixed table of reports. When gate is set every
// call waits for it to close, or for ctx to end.
type fakeService struct {
	mu      sync.Mutex
	reports map[string]*model.Report
	err     error
	calls   []string
	gate    chan struct{}
	started chan string
}

func (f *fakeService) record(ctx context.Context, call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	gate, started := f.gate, f.started
	f.mu.Unlock()
	if started != nil {
		started <- call
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *fakeService) callLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeService) Current(ctx context.Context, city string) (*model.Report, error) {
	if err := f.record(ctx, city); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	if r, ok := f.reports[city]; ok {
		return r, nil
	}
	return nil, &weather.ServiceError{
		Kind:       weather.ErrNotFound,
		Message:    fmt.Sprintf("City '%s' not found. Check spelling.", city),
		StatusCode: 404,
	}
}

func (f *fakeService) ByCoordinates(ctx context.Context, lat, lon float64) (*model.Report, error) {
	if err := f.record(ctx, fmt.Sprintf("%g,%g", lat, lon)); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return report("Here", 10), nil
}

func report(name string, temp float64) *model.Report {
	return &model.Report{
		Name:        name,
		Country:     "XX",
		Temp:        temp,
		FeelsLike:   temp,
		TempMin:     temp - 2,
		TempMax:     temp + 2,
		Description: "Clear Sky",
		Condition:   "Clear",
		Icon:        "01d",
		Units:       model.Metric,
	}
}

func newFakeService(cities ...string) *fakeService {
	f := &fakeService{reports: map[string]*model.Report{}}
	for i, c := range cities {
		f.reports[c] = report(c, float64(10+i))
	}
	return f
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.HistoryFile = filepath.Join(dir, "search_history.json")
	cfg.PreferencesFile = filepath.Join(dir, "user_preferences.json")
	cfg.HistorySize = 3
	return cfg
}

func newTestDispatcher(t *testing.T, svc weather.Service) (*Dispatcher, *State) {
	t.Helper()
	state := NewState(testConfig(t), svc)
	return NewDispatcher(state), state
}
