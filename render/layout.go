package render

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// TrailingLayout gives the last object a fixed width and stretches the first
// over the remaining space, e.g. a select with a small action button.
type TrailingLayout struct {
	trailingWidth float32
}

// NewTrailingLayout creates a TrailingLayout reserving width for the trailing item.
func NewTrailingLayout(trailingWidth float32) *TrailingLayout {
	return &TrailingLayout{trailingWidth: trailingWidth}
}

// Layout positions exactly two objects side by side.
func (l *TrailingLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) != 2 {
		return
	}
	leadWidth := size.Width - l.trailingWidth
	if leadWidth < 0 {
		leadWidth = 0
	}
	objects[0].Resize(fyne.NewSize(leadWidth, size.Height))
	objects[0].Move(fyne.NewPos(0, 0))

	objects[1].Resize(fyne.NewSize(l.trailingWidth, size.Height))
	objects[1].Move(fyne.NewPos(leadWidth, 0))
}

// MinSize is the widest lead plus the trailing width, at the tallest height.
func (l *TrailingLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minWidth, minHeight float32
	for i, o := range objects {
		size := o.MinSize()
		if i == 0 {
			minWidth += size.Width
		}
		if size.Height > minHeight {
			minHeight = size.Height
		}
	}
	return fyne.NewSize(minWidth+l.trailingWidth, minHeight)
}

// NewTrailingRow puts lead and trailing in a TrailingLayout container.
func NewTrailingRow(lead, trailing fyne.CanvasObject, trailingWidth float32) *fyne.Container {
	return container.New(NewTrailingLayout(trailingWidth), lead, trailing)
}
