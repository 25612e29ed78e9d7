package model

import (
	"fmt"
	"strings"
)

// TempUnit is the user's display preference for temperatures.
type TempUnit string

const (
	Celsius    TempUnit = "celsius"
	Fahrenheit TempUnit = "fahrenheit"
)

// ParseTempUnit accepts the full names and the usual single letter forms.
func ParseTempUnit(s string) (TempUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "celsius", "c", "°c":
		return Celsius, nil
	case "fahrenheit", "f", "°f":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Toggle flips between the two supported units.
func (u TempUnit) Toggle() TempUnit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

func (u TempUnit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// FormatTemp renders a Celsius reading in the requested display unit.
func FormatTemp(celsius float64, unit TempUnit) string {
	if unit == Fahrenheit {
		return fmt.Sprintf("%.1f°F", CelsiusToFahrenheit(celsius))
	}
	return fmt.Sprintf("%.1f°C", celsius)
}
