package sticker

import (
	"image"
	"image/color"
	"math"
	"testing"

	"gocv.io/x/gocv"
)

// testColorTable classifies the four pure BGR primaries by their known
// OpenCV 8-bit LAB values: red (136,208,195), green (224,42,211),
// blue (82,207,20), white (255,128,128). The windows are wide enough to
// absorb conversion rounding and leave the black background unmatched.
func testColorTable() []ColorRange {
	return []ColorRange{
		{Name: "Red", Code: 'R', Lower: [3]float64{100, 180, 150}, Upper: [3]float64{255, 255, 255}, Display: color.RGBA{R: 255, A: 255}},
		{Name: "Green", Code: 'G', Lower: [3]float64{100, 0, 150}, Upper: [3]float64{255, 100, 255}, Display: color.RGBA{G: 255, A: 255}},
		{Name: "Blue", Code: 'B', Lower: [3]float64{0, 180, 0}, Upper: [3]float64{99, 255, 100}, Display: color.RGBA{B: 255, A: 255}},
		{Name: "White", Code: 'W', Lower: [3]float64{240, 100, 100}, Upper: [3]float64{255, 160, 160}, Display: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}
}

var testFill = map[byte]color.RGBA{
	'R': {R: 255, A: 255},
	'G': {G: 255, A: 255},
	'B': {B: 255, A: 255},
	'W': {R: 255, G: 255, B: 255, A: 255},
}

// drawFaceImage synthesizes a 900x900 black image with one 200x200 filled
// square per non-blank cell, centered on a 300px lattice starting at 150.
func drawFaceImage(t *testing.T, layout [3][3]byte) gocv.Mat {
	t.Helper()
	img := gocv.NewMatWithSize(900, 900, gocv.MatTypeCV8UC3)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			code := layout[r][c]
			if code == Blank {
				continue
			}
			x := 50 + c*300
			y := 50 + r*300
			gocv.Rectangle(&img, image.Rect(x, y, x+200, y+200), testFill[code], -1)
		}
	}
	return img
}

func TestDetectNineRegions(t *testing.T) {
	layout := [3][3]byte{
		{'R', 'G', 'B'},
		{'W', 'R', 'G'},
		{'B', 'W', 'R'},
	}
	img := drawFaceImage(t, layout)
	defer img.Close()

	stickers := Detect(img, testColorTable(), DefaultParams(), nil)
	if len(stickers) != 9 {
		t.Fatalf("detected %d regions, want 9", len(stickers))
	}

	if !AssignGrid(stickers) {
		t.Fatal("AssignGrid refused nine stickers")
	}

	m := BuildMatrix(stickers)
	if m != Matrix(layout) {
		t.Errorf("matrix mismatch:\ngot:\n%swant:\n%s", m, Matrix(layout))
	}

	// Centroids must land on the square centers.
	for _, s := range stickers {
		wantX := float64(150 + s.Col*300)
		wantY := float64(150 + s.Row*300)
		if math.Abs(s.Center.X-wantX) > 3 || math.Abs(s.Center.Y-wantY) > 3 {
			t.Errorf("%s (%d,%d): centroid (%.1f,%.1f), want near (%.0f,%.0f)",
				s.ColorName, s.Row, s.Col, s.Center.X, s.Center.Y, wantX, wantY)
		}
		if !DefaultParams().AreaInRange(s.Area) {
			t.Errorf("%s (%d,%d): area %.0f outside the accepted window",
				s.ColorName, s.Row, s.Col, s.Area)
		}
	}
}

func TestDetectEightRegionsLeavesMatrixBlank(t *testing.T) {
	layout := [3][3]byte{
		{'R', 'G', 'B'},
		{'W', Blank, 'G'},
		{'B', 'W', 'R'},
	}
	img := drawFaceImage(t, layout)
	defer img.Close()

	stickers := Detect(img, testColorTable(), DefaultParams(), nil)
	if len(stickers) != 8 {
		t.Fatalf("detected %d regions, want 8", len(stickers))
	}

	if AssignGrid(stickers) {
		t.Error("AssignGrid accepted eight stickers")
	}
	if m := BuildMatrix(stickers); !m.IsBlank() {
		t.Errorf("matrix from eight regions is not fully blank:\n%s", m)
	}
}

func TestDetectEmptyImage(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	if got := Detect(empty, testColorTable(), DefaultParams(), nil); got != nil {
		t.Errorf("Detect on empty image returned %d regions", len(got))
	}
}

func TestDetectRejectsSmallRegions(t *testing.T) {
	// A 100x100 square (area 10000) sits below the minimum area.
	img := gocv.NewMatWithSize(900, 900, gocv.MatTypeCV8UC3)
	defer img.Close()
	gocv.Rectangle(&img, image.Rect(100, 100, 200, 200), testFill['R'], -1)

	if got := Detect(img, testColorTable(), DefaultParams(), nil); len(got) != 0 {
		t.Errorf("detected %d regions, want 0", len(got))
	}
}

func TestDetectOverlayLeavesInputUntouched(t *testing.T) {
	layout := [3][3]byte{
		{'R', 'G', 'B'},
		{'W', 'R', 'G'},
		{'B', 'W', 'R'},
	}
	img := drawFaceImage(t, layout)
	defer img.Close()
	before := img.Clone()
	defer before.Close()

	overlay := img.Clone()
	defer overlay.Close()
	Detect(img, testColorTable(), DefaultParams(), &overlay)

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(img, before, &diff)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(diff, &gray, gocv.ColorBGRToGray)
	if gocv.CountNonZero(gray) != 0 {
		t.Error("Detect modified the input image")
	}
}
