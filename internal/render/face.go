package render

import (
	"image"
	"image/color"

	"cube-scanner/internal/sticker"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"
)

// StandardFace draws one cube face as a clean fixed-layout image: a filled,
// bordered square per cell with the color code glyph centered in it, and an
// optional face-name caption beneath the grid. Unknown codes render as the
// neutral placeholder, so a partially filled or fully blank matrix still
// produces a valid image.
func StandardFace(m sticker.Matrix, colors map[byte]color.RGBA, faceName string, p Params) gocv.Mat {
	labelHeight := 0
	if faceName != "" {
		labelHeight = p.LabelHeight
	}

	side := p.BlockSize*3 + p.Margin*2
	canvas := newCanvas(side+labelHeight, side, p.Background)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			x := p.Margin + col*p.BlockSize
			y := p.Margin + row*p.BlockSize
			drawCell(&canvas, x, y, m[row][col], colors, p, 0.7, 2)
		}
	}

	if faceName != "" {
		gocv.PutText(&canvas, faceName,
			image.Pt(p.Margin, canvas.Rows()-p.Margin/2),
			gocv.FontHersheySimplex, 0.6, color.RGBA{A: 255}, 2)
	}

	return canvas
}

// drawCell fills one sticker cell, strokes its border and centers the code
// glyph inside it.
func drawCell(canvas *gocv.Mat, x, y int, code byte, colors map[byte]color.RGBA, p Params, glyphScale float64, glyphThickness int) {
	fill, known := colors[code]
	if !known {
		fill = p.Placeholder
	}

	cell := image.Rect(x, y, x+p.BlockSize, y+p.BlockSize)
	gocv.Rectangle(canvas, cell, fill, -1)
	gocv.Rectangle(canvas, cell, p.Border, p.BorderThickness)

	gocv.PutText(canvas, string(code),
		image.Pt(x+p.BlockSize/3, y+2*p.BlockSize/3),
		gocv.FontHersheySimplex, glyphScale, glyphColor(fill), glyphThickness)
}

// glyphColor picks black or white for the code glyph so it stays readable
// on both light stickers (white, yellow) and dark ones (blue).
func glyphColor(fill color.RGBA) color.RGBA {
	c := colorful.Color{
		R: float64(fill.R) / 255,
		G: float64(fill.G) / 255,
		B: float64(fill.B) / 255,
	}
	if l, _, _ := c.Lab(); l < 0.45 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{A: 255}
}

// newCanvas creates a uniformly filled BGR canvas.
func newCanvas(rows, cols int, bg color.RGBA) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(bg.B), float64(bg.G), float64(bg.R), 0),
		rows, cols, gocv.MatTypeCV8UC3)
}
