// Package render synthesizes standardized face images and the unfolded
// cube net from color matrices.
package render

import (
	"image/color"

	"cube-scanner/internal/sticker"
)

// Params holds the fixed layout values for rendered output.
type Params struct {
	BlockSize       int // Side length of one sticker cell in pixels
	Margin          int // Canvas margin and inter-face gap in the net
	LabelHeight     int // Extra height reserved for a face-name caption
	BorderThickness int // Cell border stroke width

	// Comparison composite target size per pane.
	ComparisonWidth  int
	ComparisonHeight int

	Background  color.RGBA // Canvas background
	Border      color.RGBA // Cell border stroke
	Placeholder color.RGBA // Fill for unknown color codes
}

// DefaultParams returns the standard layout used for all rendered output.
func DefaultParams() Params {
	return Params{
		BlockSize:        60,
		Margin:           10,
		LabelHeight:      25,
		BorderThickness:  2,
		ComparisonWidth:  400,
		ComparisonHeight: 400,
		Background:       color.RGBA{R: 240, G: 240, B: 240, A: 255},
		Border:           color.RGBA{R: 50, G: 50, B: 50, A: 255},
		Placeholder:      color.RGBA{R: 128, G: 128, B: 128, A: 255},
	}
}

// CodeColors builds the code-to-display-color lookup from a calibration table.
func CodeColors(table []sticker.ColorRange) map[byte]color.RGBA {
	colors := make(map[byte]color.RGBA, len(table))
	for _, c := range table {
		colors[c.Code] = c.Display
	}
	return colors
}
