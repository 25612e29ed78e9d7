package model

import (
	"encoding/json"
	"fmt"

	"github.com/hamidzr/gweather/constant"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Units is the measurement system requested from the weather api.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
	Standard Units = "standard"
)

// ParseUnits falls back to Metric for anything it does not recognize.
func ParseUnits(s string) Units {
	switch Units(s) {
	case Metric, Imperial, Standard:
		return Units(s)
	default:
		return Metric
	}
}

const (
	defaultLocationName = "Unknown"
	defaultCondition    = "Clear"
	defaultIcon         = "01d"
)

// Report is a current-conditions reading for one location.
// Temperatures are in whatever Units the request asked for; use Celsius to
// normalize them.
type Report struct {
	Name        string
	Country     string
	Temp        float64
	FeelsLike   float64
	TempMin     float64
	TempMax     float64
	Humidity    int
	Pressure    int
	Description string
	Condition   string
	Icon        string
	WindSpeed   float64
	Cloudiness  int
	Units       Units
}

// wire shape of the api response. every field is optional.
type rawReport struct {
	Name *string `json:"name"`
	Sys  *struct {
		Country *string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        *string `json:"main"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Clouds *struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
}

// ParseReport decodes an api payload, filling defaults for anything missing.
func ParseReport(data []byte, units Units) (*Report, error) {
	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding weather payload")
	}

	r := &Report{
		Name:      strOr(raw.Name, defaultLocationName),
		Condition: defaultCondition,
		Icon:      defaultIcon,
		Units:     ParseUnits(string(units)),
	}
	if raw.Sys != nil {
		r.Country = strOr(raw.Sys.Country, "")
	}
	if m := raw.Main; m != nil {
		r.Temp = floatOr(m.Temp)
		r.FeelsLike = floatOr(m.FeelsLike)
		r.TempMin = floatOr(m.TempMin)
		r.TempMax = floatOr(m.TempMax)
		r.Humidity = int(floatOr(m.Humidity))
		r.Pressure = int(floatOr(m.Pressure))
	}
	if len(raw.Weather) > 0 {
		w := raw.Weather[0]
		r.Description = cases.Title(language.Und).String(strOr(w.Description, ""))
		r.Condition = strOr(w.Main, defaultCondition)
		r.Icon = strOr(w.Icon, defaultIcon)
	}
	if raw.Wind != nil {
		r.WindSpeed = floatOr(raw.Wind.Speed)
	}
	if raw.Clouds != nil {
		r.Cloudiness = int(floatOr(raw.Clouds.All))
	}
	return r, nil
}

// Celsius converts a temperature taken from this report into Celsius.
func (r *Report) Celsius(v float64) float64 {
	switch r.Units {
	case Imperial:
		return FahrenheitToCelsius(v)
	case Standard:
		return v - 273.15
	default:
		return v
	}
}

// Location is the "City, CC" label, without the comma when the country is unknown.
func (r *Report) Location() string {
	if r.Country == "" {
		return r.Name
	}
	return fmt.Sprintf("%s, %s", r.Name, r.Country)
}

// IconURL points at the api's image for the condition icon.
func (r *Report) IconURL() string {
	return fmt.Sprintf(constant.IconURLFormat, r.Icon)
}

// WindSpeedLabel renders wind speed in the unit the api used for it.
func (r *Report) WindSpeedLabel() string {
	if r.Units == Imperial {
		return fmt.Sprintf("%g mph", r.WindSpeed)
	}
	return fmt.Sprintf("%g m/s", r.WindSpeed)
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func floatOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
