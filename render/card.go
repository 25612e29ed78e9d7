package render

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/hamidzr/gweather/model"
)

/*
render a single weather report
*/

// InfoCard is a small labelled value tile.
type InfoCard struct {
	Container *fyne.Container
	Label     *widget.Label
	Value     *widget.Label
}

// NewInfoCard builds a tile showing label above value.
func NewInfoCard(label, value string) *InfoCard {
	l := widget.NewLabelWithStyle(label, fyne.TextAlignCenter, fyne.TextStyle{})
	v := widget.NewLabelWithStyle(value, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	bg := canvas.NewRectangle(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	bg.CornerRadius = 10
	return &InfoCard{
		Container: container.NewStack(bg, container.NewPadded(container.NewVBox(l, v))),
		Label:     l,
		Value:     v,
	}
}

// WeatherCard presents one report with the palette of its condition.
type WeatherCard struct {
	Container   *fyne.Container
	Background  *canvas.Rectangle
	Scheme      model.ColorScheme
	Emoji       *canvas.Text
	Location    *canvas.Text
	Description *canvas.Text
	Temp        *canvas.Text
	FeelsLike   *canvas.Text
	High        *canvas.Text
	Low         *canvas.Text
	Info        []*InfoCard
}

var (
	highColor = color.NRGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	lowColor  = color.NRGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}
)

func centeredText(text string, c color.Color, size float32, bold bool) *canvas.Text {
	t := canvas.NewText(text, c)
	t.TextSize = size
	t.Alignment = fyne.TextAlignCenter
	t.TextStyle = fyne.TextStyle{Bold: bold}
	return t
}

// NewWeatherCard lays out r with temperatures shown in unit.
func NewWeatherCard(r *model.Report, unit model.TempUnit) *WeatherCard {
	scheme := model.SchemeFor(r.Condition, r.Icon)
	temp := func(v float64) string { return model.FormatTemp(r.Celsius(v), unit) }

	card := &WeatherCard{
		Scheme:      scheme,
		Background:  canvas.NewRectangle(scheme.Container),
		Emoji:       centeredText(scheme.Emoji, scheme.Text, 60, false),
		Location:    centeredText("📍 "+r.Location(), scheme.Text, 24, true),
		Description: centeredText(r.Description, scheme.Text, 18, false),
		Temp:        centeredText(temp(r.Temp), scheme.Text, 48, true),
		FeelsLike:   centeredText("Feels like "+temp(r.FeelsLike), scheme.Text, 14, false),
		High:        centeredText("↑ "+temp(r.TempMax), highColor, 14, false),
		Low:         centeredText("↓ "+temp(r.TempMin), lowColor, 14, false),
		Info: []*InfoCard{
			NewInfoCard("💧 Humidity", fmt.Sprintf("%d%%", r.Humidity)),
			NewInfoCard("💨 Wind Speed", r.WindSpeedLabel()),
			NewInfoCard("🧭 Pressure", fmt.Sprintf("%d hPa", r.Pressure)),
			NewInfoCard("☁️ Cloudiness", fmt.Sprintf("%d%%", r.Cloudiness)),
		},
	}
	card.Background.CornerRadius = 12
	card.Description.TextStyle.Italic = true

	grid := container.NewGridWithColumns(2)
	for _, info := range card.Info {
		grid.Add(info.Container)
	}
	body := container.NewVBox(
		card.Emoji,
		card.Location,
		card.Description,
		card.Temp,
		card.FeelsLike,
		container.NewCenter(container.NewHBox(card.High, card.Low)),
		widget.NewSeparator(),
		grid,
	)
	card.Container = container.NewStack(card.Background, container.NewPadded(body))
	return card
}
