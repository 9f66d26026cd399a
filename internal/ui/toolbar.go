package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"inkboard/internal/style"
)

// --- Custom widget for color swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    style.Color
	OnTapped func(style.Color)
}

func newColorSwatch(c style.Color, tapped func(style.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color.NRGBA())
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the style controls for the given surface. onExport is
// called when the PDF export button is pressed.
func NewToolbar(surface *Surface, onExport func()) fyne.CanvasObject {
	// --- Brush style ---
	styleSelect := widget.NewSelect(
		[]string{string(style.BrushStyleMarker), string(style.BrushStyleSolid), string(style.BrushStyleTextured)},
		func(selected string) {
			// Switching style mid-stroke cancels the stroke; the new
			// style only affects strokes started afterwards.
			surface.CancelStroke()
			surface.Brush.Style = style.BrushStyle(selected)
		},
	)
	styleSelect.SetSelected(string(surface.Brush.Style))

	// --- Color palette ---
	onColorTapped := func(c style.Color) {
		surface.Brush.SmoothOptions.Color = c
		surface.Brush.TexturedOptions.Color = c
	}
	colorBox := container.NewHBox(
		newColorSwatch(style.Black, onColorTapped),
		newColorSwatch(style.Color{R: 1, A: 1}, onColorTapped),         // Red
		newColorSwatch(style.Color{G: 0.6, A: 1}, onColorTapped),       // Green
		newColorSwatch(style.Color{B: 1, A: 1}, onColorTapped),         // Blue
		newColorSwatch(style.Color{R: 1, G: 0.8, A: 1}, onColorTapped), // Yellow
	)

	// --- Stroke width slider ---
	widthSlider := widget.NewSlider(1.0, 50.0)
	widthSlider.SetValue(surface.Brush.SmoothOptions.Width)
	widthSlider.OnChanged = func(val float64) {
		surface.Brush.SmoothOptions.Width = val
		surface.Brush.TexturedOptions.Width = val
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	// --- View controls ---
	zoomIn := widget.NewButton("+", surface.ZoomIn)
	zoomOut := widget.NewButton("-", surface.ZoomOut)
	exportBtn := widget.NewButton("Export PDF", func() {
		if onExport != nil {
			onExport()
		}
	})

	return container.NewHBox(
		widget.NewLabel("Style:"),
		styleSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		zoomOut,
		zoomIn,
		exportBtn,
		layout.NewSpacer(),
	)
}
