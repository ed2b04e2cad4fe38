package render

import (
	"image"
	"image/color"

	cubeimage "cube-scanner/internal/image"
	"cube-scanner/internal/sticker"

	"gocv.io/x/gocv"
)

// NetCell is one face's position in the unfolded net, in face-sized grid
// units on a 4x3 canvas.
type NetCell struct {
	Face cubeimage.Face
	Col  int
	Row  int
}

// NetLayout is the standard cross layout of the unfolded cube.
// It is fixed; faces are drawn at these cells in this order.
var NetLayout = [6]NetCell{
	{Face: cubeimage.FaceUp, Col: 1, Row: 0},
	{Face: cubeimage.FaceLeft, Col: 0, Row: 1},
	{Face: cubeimage.FaceFront, Col: 1, Row: 1},
	{Face: cubeimage.FaceRight, Col: 2, Row: 1},
	{Face: cubeimage.FaceBack, Col: 3, Row: 1},
	{Face: cubeimage.FaceDown, Col: 1, Row: 2},
}

// CubeNet draws up to six face matrices onto one canvas in the standard
// unfolded cross layout. The matrices must already be in net order
// (Up, Left, Front, Right, Back, Down); a shorter slice draws fewer faces
// and entries beyond the sixth are ignored.
func CubeNet(matrices []sticker.Matrix, colors map[byte]color.RGBA, p Params) gocv.Mat {
	faceSpan := p.BlockSize*3 + p.Margin
	cols := 4*faceSpan + p.Margin
	rows := 3*faceSpan + p.Margin
	canvas := newCanvas(rows, cols, p.Background)

	for i, m := range matrices {
		if i >= len(NetLayout) {
			break
		}
		cell := NetLayout[i]
		x := p.Margin + cell.Col*faceSpan
		y := p.Margin + cell.Row*faceSpan

		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				drawCell(&canvas, x+col*p.BlockSize, y+row*p.BlockSize,
					m[row][col], colors, p, 0.5, 1)
			}
		}

		gocv.PutText(&canvas, cell.Face.String(), image.Pt(x+5, y-5),
			gocv.FontHersheySimplex, 0.6, color.RGBA{A: 255}, 2)
	}

	return canvas
}
