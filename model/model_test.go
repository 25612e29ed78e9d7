package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const londonPayload = `{
  "name": "London",
  "sys": {"country": "GB"},
  "main": {"temp": 12.5, "feels_like": 11.2, "temp_min": 10, "temp_max": 14.1, "humidity": 81, "pressure": 1012},
  "weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
  "wind": {"speed": 4.6},
  "clouds": {"all": 75}
}`

func TestParseReport(t *testing.T) {
	r, err := ParseReport([]byte(londonPayload), Metric)
	require.NoError(t, err)

	assert.Equal(t, "London", r.Name)
	assert.Equal(t, "GB", r.Country)
	assert.Equal(t, "London, GB", r.Location())
	assert.Equal(t, 12.5, r.Temp)
	assert.Equal(t, 11.2, r.FeelsLike)
	assert.Equal(t, 10.0, r.TempMin)
	assert.Equal(t, 14.1, r.TempMax)
	assert.Equal(t, 81, r.Humidity)
	assert.Equal(t, 1012, r.Pressure)
	assert.Equal(t, "Light Rain", r.Description)
	assert.Equal(t, "Rain", r.Condition)
	assert.Equal(t, "10d", r.Icon)
	assert.Equal(t, 4.6, r.WindSpeed)
	assert.Equal(t, 75, r.Cloudiness)
	assert.Equal(t, "https://openweathermap.org/img/wn/10d@2x.png", r.IconURL())
	assert.Equal(t, "4.6 m/s", r.WindSpeedLabel())
}

func TestParseReportDefaults(t *testing.T) {
	r, err := ParseReport([]byte(`{}`), "")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", r.Name)
	assert.Equal(t, "Unknown", r.Location())
	assert.Equal(t, "Clear", r.Condition)
	assert.Equal(t, "01d", r.Icon)
	assert.Equal(t, "", r.Description)
	assert.Equal(t, Metric, r.Units)
	assert.Zero(t, r.Temp)
	assert.Zero(t, r.Humidity)
}

func TestParseReportEmptyWeatherList(t *testing.T) {
	r, err := ParseReport([]byte(`{"name": "Oslo", "weather": [], "main": {"temp": -3}}`), Metric)
	require.NoError(t, err)
	assert.Equal(t, "Clear", r.Condition)
	assert.Equal(t, "01d", r.Icon)
	assert.Equal(t, -3.0, r.Temp)
}

func TestParseReportMalformed(t *testing.T) {
	_, err := ParseReport([]byte(`{"name": `), Metric)
	assert.Error(t, err)
}

func TestReportCelsius(t *testing.T) {
	testCases := []struct {
		units    Units
		value    float64
		expected float64
	}{
		{Metric, 20, 20},
		{Imperial, 212, 100},
		{Standard, 273.15, 0},
	}
	for _, tc := range testCases {
		t.Run(string(tc.units), func(t *testing.T) {
			r := &Report{Units: tc.units}
			assert.InDelta(t, tc.expected, r.Celsius(tc.value), 1e-9)
		})
	}
}

func TestParseUnits(t *testing.T) {
	assert.Equal(t, Imperial, ParseUnits("imperial"))
	assert.Equal(t, Standard, ParseUnits("standard"))
	assert.Equal(t, Metric, ParseUnits("kelvin"))
	assert.Equal(t, Metric, ParseUnits(""))
}

func TestTempUnits(t *testing.T) {
	assert.Equal(t, Fahrenheit, Celsius.Toggle())
	assert.Equal(t, Celsius, Fahrenheit.Toggle())
	assert.Equal(t, "°C", Celsius.Symbol())
	assert.Equal(t, "°F", Fahrenheit.Symbol())

	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
	assert.InDelta(t, 37.0, FahrenheitToCelsius(98.6), 1e-9)

	assert.Equal(t, "21.5°C", FormatTemp(21.5, Celsius))
	assert.Equal(t, "70.7°F", FormatTemp(21.5, Fahrenheit))
}

func TestParseTempUnit(t *testing.T) {
	for _, in := range []string{"celsius", "C", " Celsius "} {
		u, err := ParseTempUnit(in)
		require.NoError(t, err)
		assert.Equal(t, Celsius, u)
	}
	u, err := ParseTempUnit("f")
	require.NoError(t, err)
	assert.Equal(t, Fahrenheit, u)

	_, err = ParseTempUnit("kelvin")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestSchemeFor(t *testing.T) {
	assert.Equal(t, "🌙", SchemeFor("Clear", "01n").Emoji)
	assert.Equal(t, "☀️", SchemeFor("Clear", "01d").Emoji)
	assert.Equal(t, "☁️", SchemeFor("Clouds", "03d").Emoji)
	assert.Equal(t, "🌧️", SchemeFor("Drizzle", "09d").Emoji)
	assert.Equal(t, "🌧️", SchemeFor("rain", "10d").Emoji)
	assert.Equal(t, "⛈️", SchemeFor("Thunderstorm", "11d").Emoji)
	assert.Equal(t, "❄️", SchemeFor("Snow", "13d").Emoji)
	assert.Equal(t, "🌫️", SchemeFor("Haze", "50d").Emoji)
	assert.Equal(t, "🌤️", SchemeFor("Tornado", "50d").Emoji)

	night := SchemeFor("Rain", "10n")
	assert.Equal(t, uint8(0xff), night.Text.R)
	assert.Equal(t, uint8(0xff), night.Background.A)
}
