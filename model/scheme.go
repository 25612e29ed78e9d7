package model

import (
	"image/color"
	"strings"
)

// ColorScheme is the palette used to present a weather condition.
type ColorScheme struct {
	Background color.NRGBA
	Container  color.NRGBA
	Text       color.NRGBA
	Emoji      string
}

func rgb(hex uint32) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var (
	nightScheme = ColorScheme{
		Background: rgb(0x1a237e), Container: rgb(0x283593), Text: rgb(0xffffff), Emoji: "🌙",
	}
	clearScheme = ColorScheme{
		Background: rgb(0xffecb3), Container: rgb(0xffe082), Text: rgb(0xe65100), Emoji: "☀️",
	}
	cloudsScheme = ColorScheme{
		Background: rgb(0xcfd8dc), Container: rgb(0xb0bec5), Text: rgb(0x263238), Emoji: "☁️",
	}
	rainScheme = ColorScheme{
		Background: rgb(0xb3e5fc), Container: rgb(0x81d4fa), Text: rgb(0x0d47a1), Emoji: "🌧️",
	}
	stormScheme = ColorScheme{
		Background: rgb(0xd1c4e9), Container: rgb(0xb39ddb), Text: rgb(0x311b92), Emoji: "⛈️",
	}
	snowScheme = ColorScheme{
		Background: rgb(0xe0f7fa), Container: rgb(0xb2ebf2), Text: rgb(0x006064), Emoji: "❄️",
	}
	mistScheme = ColorScheme{
		Background: rgb(0xeeeeee), Container: rgb(0xe0e0e0), Text: rgb(0x212121), Emoji: "🌫️",
	}
	defaultScheme = ColorScheme{
		Background: rgb(0xb3e5fc), Container: rgb(0x81d4fa), Text: rgb(0x0d47a1), Emoji: "🌤️",
	}
)

// SchemeFor picks a palette from the api's condition group and icon code.
// Night icons (ending in "n") win over the condition.
func SchemeFor(condition, icon string) ColorScheme {
	if strings.HasSuffix(icon, "n") {
		return nightScheme
	}
	switch strings.ToLower(condition) {
	case "clear":
		return clearScheme
	case "clouds":
		return cloudsScheme
	case "rain", "drizzle":
		return rainScheme
	case "thunderstorm":
		return stormScheme
	case "snow":
		return snowScheme
	case "mist", "fog", "haze":
		return mistScheme
	default:
		return defaultScheme
	}
}
