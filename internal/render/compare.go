package render

import (
	"image"

	"gocv.io/x/gocv"
)

// Comparison places the detection overlay and the standardized face side by
// side at a common size, detection on the left. Pure compositing for
// operator review.
func Comparison(detection, standard gocv.Mat, p Params) gocv.Mat {
	w, h := p.ComparisonWidth, p.ComparisonHeight

	resizedDetection := gocv.NewMat()
	defer resizedDetection.Close()
	gocv.Resize(detection, &resizedDetection, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)

	resizedStandard := gocv.NewMat()
	defer resizedStandard.Close()
	gocv.Resize(standard, &resizedStandard, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)

	combined := newCanvas(h, w*2, p.Background)

	left := combined.Region(image.Rect(0, 0, w, h))
	resizedDetection.CopyTo(&left)
	left.Close()

	right := combined.Region(image.Rect(w, 0, w*2, h))
	resizedStandard.CopyTo(&right)
	right.Close()

	return combined
}
