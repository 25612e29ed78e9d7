package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hamidzr/gweather/core"
	"github.com/hamidzr/gweather/internal/config"
	"github.com/hamidzr/gweather/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu      sync.Mutex
	queries []url.Values
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	name := q.Get("q")
	if name == "Atlantis" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if name == "" {
		name = "Sydney"
	}
	fmt.Fprintf(w, `{"name": %q, "sys": {"country": "ZZ"}, "main": {"temp": 20, "humidity": 50},
		"weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}]}`, name)
}

func (f *fakeAPI) last() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1]
}

// setup isolates config and state under a temp home and points lookups at a
// local fake api.
func setup(t *testing.T) (string, *fakeAPI) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("OPENWEATHER_BASE_URL", "")

	api := &fakeAPI{}
	srv := httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(srv.Close)
	t.Setenv("GWEATHER_API_KEY", "secret")
	t.Setenv("GWEATHER_BASE_URL", srv.URL)
	return home, api
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := InitCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func stubPicker(t *testing.T, pick func(items []string) (string, error)) {
	t.Helper()
	orig := pickCity
	pickCity = func(items []string, _ string, _ io.Writer) (string, error) {
		return pick(items)
	}
	t.Cleanup(func() { pickCity = orig })
}

func TestInitCLI(t *testing.T) {
	cmd := InitCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "gweather", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("init-config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("terminal"))

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"lookup", "locate", "history", "unit"})
}

func TestLookupPrintsReport(t *testing.T) {
	_, api := setup(t)

	out, err := execute(t, "lookup", "New", "York")
	require.NoError(t, err)

	assert.Contains(t, out, "New York, ZZ")
	assert.Contains(t, out, "Temperature: 20.0°C")
	assert.Contains(t, out, "Humidity:    50%")
	assert.Equal(t, "New York", api.last().Get("q"))
	assert.Equal(t, "secret", api.last().Get("appid"))

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "1. New York\n", out)
}

func TestLookupNotFound(t *testing.T) {
	setup(t)

	_, err := execute(t, "lookup", "Atlantis")
	require.Error(t, err)
	code, _ := model.ExitCodeFromError(err)
	assert.Equal(t, model.LookupFailed, code)
	assert.Contains(t, err.Error(), "City 'Atlantis' not found")

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "(no recent searches)\n", out)
}

func TestLookupWithoutAPIKey(t *testing.T) {
	setup(t)
	t.Setenv("GWEATHER_API_KEY", "")

	_, err := execute(t, "lookup", "Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	code, _ := model.ExitCodeFromError(err)
	assert.Equal(t, model.LookupFailed, code)
}

func TestLookupRequiresCity(t *testing.T) {
	setup(t)
	_, err := execute(t, "lookup")
	assert.Error(t, err)
}

func TestHistoryOrderAndClear(t *testing.T) {
	setup(t)
	for _, city := range []string{"London", "Paris", "London"} {
		_, err := execute(t, "lookup", city)
		require.NoError(t, err)
	}

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "1. London\n2. Paris\n", out)

	out, err = execute(t, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "Recent searches cleared\n", out)

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "(no recent searches)\n", out)
}

func TestHistorySizeFlag(t *testing.T) {
	setup(t)
	for _, city := range []string{"A", "B", "C"} {
		_, err := execute(t, "--history-size", "2", "lookup", city)
		require.NoError(t, err)
	}
	out, err := execute(t, "--history-size", "2", "history")
	require.NoError(t, err)
	assert.Equal(t, "1. C\n2. B\n", out)
}

func TestHistoryPick(t *testing.T) {
	_, api := setup(t)
	for _, city := range []string{"Oslo", "Rome"} {
		_, err := execute(t, "lookup", city)
		require.NoError(t, err)
	}

	var offered []string
	stubPicker(t, func(items []string) (string, error) {
		offered = items
		return items[1], nil
	})
	out, err := execute(t, "history", "pick")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rome", "Oslo"}, offered)
	assert.Contains(t, out, "Oslo, ZZ")
	assert.Equal(t, "Oslo", api.last().Get("q"))

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "1. Oslo\n2. Rome\n", out)
}

func TestHistoryPickEmptyAndCanceled(t *testing.T) {
	setup(t)
	stubPicker(t, func([]string) (string, error) { return "", core.ErrInputCanceled })

	_, err := execute(t, "history", "pick")
	assert.ErrorIs(t, err, model.ErrNoHistory)

	_, err = execute(t, "lookup", "Oslo")
	require.NoError(t, err)
	_, err = execute(t, "history", "pick")
	code, _ := model.ExitCodeFromError(err)
	assert.Equal(t, model.UserCanceled, code)
}

func TestTerminalMode(t *testing.T) {
	_, api := setup(t)
	stubPicker(t, func(items []string) (string, error) {
		assert.Empty(t, items)
		return "Lima", nil
	})

	out, err := execute(t, "--terminal")
	require.NoError(t, err)
	assert.Contains(t, out, "Lima, ZZ")
	assert.Equal(t, "Lima", api.last().Get("q"))
}

func TestLocate(t *testing.T) {
	_, api := setup(t)

	out, err := execute(t, "locate", "--", "-33.87,151.21")
	require.NoError(t, err)
	assert.Contains(t, out, "Sydney, ZZ")
	assert.Equal(t, "-33.87", api.last().Get("lat"))
	assert.Equal(t, "151.21", api.last().Get("lon"))

	_, err = execute(t, "locate", "10", "20")
	require.NoError(t, err)
	assert.Equal(t, "10", api.last().Get("lat"))
	assert.Equal(t, "20", api.last().Get("lon"))

	_, err = execute(t, "locate", "--", "51.5,", "-0.12")
	require.NoError(t, err)
	assert.Equal(t, "51.5", api.last().Get("lat"))
	assert.Equal(t, "-0.12", api.last().Get("lon"))

	_, err = execute(t, "locate", "north")
	assert.ErrorIs(t, err, core.ErrInvalidCoordinates)
}

func TestUnitCommand(t *testing.T) {
	setup(t)

	out, err := execute(t, "unit")
	require.NoError(t, err)
	assert.Equal(t, "Temperature unit: celsius (°C)\n", out)

	out, err = execute(t, "unit", "f")
	require.NoError(t, err)
	assert.Equal(t, "Temperature unit: fahrenheit (°F)\n", out)

	out, err = execute(t, "lookup", "Quito")
	require.NoError(t, err)
	assert.Contains(t, out, "Temperature: 68.0°F")

	out, err = execute(t, "unit", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "Temperature unit: celsius (°C)\n", out)

	_, err = execute(t, "unit", "kelvin")
	assert.ErrorIs(t, err, model.ErrUnknownUnit)
}

func TestInitConfigFlag(t *testing.T) {
	home, _ := setup(t)

	out, err := execute(t, "--init-config")
	require.NoError(t, err)
	configPath := filepath.Join(home, ".config", "gweather", "config.yaml")
	assert.Contains(t, out, configPath)
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	_, err = execute(t, "--init-config")
	assert.Error(t, err, "an existing config file is never overwritten")
}

func TestInvalidConfigFails(t *testing.T) {
	setup(t)
	_, err := execute(t, "--units", "metric", "--history-size", "0", "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize config")
}

func TestCoordinateArg(t *testing.T) {
	assert.Equal(t, "51.5,-0.12", coordinateArg([]string{"51.5,-0.12"}))
	assert.Equal(t, "51.5,-0.12", coordinateArg([]string{"51.5,", "-0.12"}))
	assert.Equal(t, "51.5,-0.12", coordinateArg([]string{"51.5", ", -0.12"}))
	assert.Equal(t, "10,20", coordinateArg([]string{"10", "20"}))
}
