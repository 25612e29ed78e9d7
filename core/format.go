package core

import (
	"fmt"
	"strings"

	"github.com/hamidzr/gweather/model"
)

// FormatReport renders a report as a plain text card for terminal output.
func FormatReport(r *model.Report, unit model.TempUnit) string {
	scheme := model.SchemeFor(r.Condition, r.Icon)
	temp := func(v float64) string { return model.FormatTemp(r.Celsius(v), unit) }

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", scheme.Emoji, r.Location())
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	fmt.Fprintf(&b, "Temperature: %s (feels like %s)\n", temp(r.Temp), temp(r.FeelsLike))
	fmt.Fprintf(&b, "High / Low:  ↑ %s  ↓ %s\n", temp(r.TempMax), temp(r.TempMin))
	fmt.Fprintf(&b, "Humidity:    %d%%\n", r.Humidity)
	fmt.Fprintf(&b, "Wind Speed:  %s\n", r.WindSpeedLabel())
	fmt.Fprintf(&b, "Pressure:    %d hPa\n", r.Pressure)
	fmt.Fprintf(&b, "Cloudiness:  %d%%\n", r.Cloudiness)
	return b.String()
}

// FormatHistory numbers recent searches for display, newest first.
func FormatHistory(items []string) string {
	if len(items) == 0 {
		return "(no recent searches)\n"
	}
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}
