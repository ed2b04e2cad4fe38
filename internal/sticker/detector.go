package sticker

import (
	"image"
	"image/color"

	"cube-scanner/pkg/geometry"

	"gocv.io/x/gocv"
)

var (
	colorBlack = color.RGBA{A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Detect classifies sticker regions in a BGR face image against the given
// color table. For each calibrated color it thresholds the LAB-converted
// image, denoises the mask with a morphological opening, extracts external
// contours and keeps the ones whose area fits a sticker. If overlay is
// non-nil, a dashed outline and a name label are drawn onto it for each
// accepted region; the input image is never modified.
//
// A color with no matching pixels simply contributes no regions.
func Detect(img gocv.Mat, table []ColorRange, params DetectionParams, overlay *gocv.Mat) []Sticker {
	if img.Empty() {
		return nil
	}

	lab := gocv.NewMat()
	defer lab.Close()
	gocv.CvtColor(img, &lab, gocv.ColorBGRToLab)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(3, 3))
	defer kernel.Close()

	var stickers []Sticker
	for _, c := range table {
		mask := gocv.NewMat()
		gocv.InRangeWithScalar(lab,
			gocv.NewScalar(c.Lower[0], c.Lower[1], c.Lower[2], 0),
			gocv.NewScalar(c.Upper[0], c.Upper[1], c.Upper[2], 0),
			&mask)

		// Opening removes speckle noise and thin spurious connections
		// left by thresholding a real photograph.
		for i := 0; i < params.MorphIterations; i++ {
			gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)
		}

		contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
		for i := 0; i < contours.Size(); i++ {
			contour := contours.At(i)

			area := gocv.ContourArea(contour)
			if !params.AreaInRange(area) {
				continue
			}

			// Simplify the outline so the bounding box is stable
			// against jagged mask edges.
			peri := gocv.ArcLength(contour, true)
			approx := gocv.ApproxPolyDP(contour, params.ApproxFactor*peri, true)

			center, ok := geometry.PolygonCentroid(toPoints2D(contour))
			if !ok {
				// Degenerate contour; the area filter should have
				// caught it, but never divide by a zero moment.
				approx.Close()
				continue
			}

			rect := gocv.BoundingRect(approx)
			s := Sticker{
				Center:    center,
				ColorName: c.Name,
				Code:      c.Code,
				Display:   c.Display,
				Bounds: geometry.RectInt{
					X:      rect.Min.X,
					Y:      rect.Min.Y,
					Width:  rect.Dx(),
					Height: rect.Dy(),
				},
				Area: area,
				Row:  -1,
				Col:  -1,
			}
			stickers = append(stickers, s)

			if overlay != nil {
				drawDashedOutline(overlay, approx.ToPoints(), c.Display)
				drawRegionLabel(overlay, rect, c.Name)
			}
			approx.Close()
		}
		contours.Close()
		mask.Close()
	}

	return stickers
}

// toPoints2D converts a gocv contour to geometry points.
func toPoints2D(contour gocv.PointVector) []geometry.Point2D {
	pts := contour.ToPoints()
	out := make([]geometry.Point2D, len(pts))
	for i, p := range pts {
		out[i] = geometry.Point2D{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// dashSegments is the number of dash cycles drawn per polygon edge.
const dashSegments = 8

// drawDashedOutline draws the polygon as a dashed line, each edge split
// into dashSegments half-drawn sub-segments.
func drawDashedOutline(dst *gocv.Mat, poly []image.Point, c color.RGBA) {
	n := len(poly)
	for i := 0; i < n; i++ {
		p1 := poly[i]
		p2 := poly[(i+1)%n]

		dx := float64(p2.X - p1.X)
		dy := float64(p2.Y - p1.Y)
		for k := 0; k < dashSegments; k++ {
			t1 := float64(k) / dashSegments
			t2 := (float64(k) + 0.5) / dashSegments

			s := image.Pt(p1.X+int(dx*t1+0.5), p1.Y+int(dy*t1+0.5))
			e := image.Pt(p1.X+int(dx*t2+0.5), p1.Y+int(dy*t2+0.5))
			gocv.Line(dst, s, e, c, 5)
		}
	}
}

// drawRegionLabel draws the color name above the region on a black band
// for contrast against the photo.
func drawRegionLabel(dst *gocv.Mat, rect image.Rectangle, name string) {
	band := image.Rect(rect.Min.X-2, rect.Min.Y-25, rect.Min.X+80, rect.Min.Y)
	gocv.Rectangle(dst, band, colorBlack, -1)
	gocv.PutText(dst, name, image.Pt(rect.Min.X, rect.Min.Y-5),
		gocv.FontHersheySimplex, 1.0, colorWhite, 2)
}
