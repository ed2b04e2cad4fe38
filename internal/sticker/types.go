// Package sticker provides color classification and grid assignment for
// photographed cube face stickers.
package sticker

import (
	"image/color"

	"cube-scanner/pkg/geometry"
)

// ColorRange is one calibrated sticker color: a component-wise window in
// the 8-bit OpenCV LAB space plus the color used when rendering.
// LAB separates lightness from chromaticity, so the windows hold up under
// lighting variation far better than RGB thresholds would.
type ColorRange struct {
	Name    string      // Color name, e.g. "Red"
	Code    byte        // Single-character identifier used in matrices
	Lower   [3]float64  // Minimum L, a, b (0-255, OpenCV scale)
	Upper   [3]float64  // Maximum L, a, b (0-255, OpenCV scale)
	Display color.RGBA  // Color used for overlays and standardized faces
}

// DefaultColorTable returns the six calibrated sticker color ranges.
// The LAB windows are calibrated for the reference camera and lighting;
// pass a custom table to Detect when recalibrating.
func DefaultColorTable() []ColorRange {
	return []ColorRange{
		{Name: "Red", Code: 'R', Lower: [3]float64{0, 146, 92}, Upper: [3]float64{94, 187, 155}, Display: color.RGBA{R: 255, A: 255}},
		{Name: "Yellow", Code: 'Y', Lower: [3]float64{139, 80, 146}, Upper: [3]float64{255, 111, 255}, Display: color.RGBA{R: 255, G: 255, A: 255}},
		{Name: "Green", Code: 'G', Lower: [3]float64{82, 42, 0}, Upper: [3]float64{177, 101, 169}, Display: color.RGBA{G: 255, A: 255}},
		{Name: "Blue", Code: 'B', Lower: [3]float64{0, 0, 0}, Upper: [3]float64{255, 255, 94}, Display: color.RGBA{B: 255, A: 255}},
		{Name: "White", Code: 'W', Lower: [3]float64{160, 127, 90}, Upper: [3]float64{226, 177, 110}, Display: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{Name: "Pink", Code: 'P', Lower: [3]float64{87, 158, 106}, Upper: [3]float64{163, 255, 172}, Display: color.RGBA{R: 255, G: 192, B: 203, A: 255}},
	}
}

// Sticker represents one detected sticker region on a cube face.
type Sticker struct {
	Center    geometry.Point2D `json:"center"`     // Area-weighted centroid in image coordinates
	ColorName string           `json:"color_name"` // Matched calibration color name
	Code      byte             `json:"code"`       // Matched color code
	Display   color.RGBA       `json:"-"`          // Display color of the matched range
	Bounds    geometry.RectInt `json:"bounds"`     // Bounding box of the approximated outline
	Area      float64          `json:"area"`       // Contour area in pixels

	// Grid position, assigned by AssignGrid. -1 until assigned.
	Row int `json:"row"`
	Col int `json:"col"`
}
