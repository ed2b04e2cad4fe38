package sticker

// DetectionParams holds parameters for sticker region detection.
// The defaults are calibrated to the apparent sticker size at the
// reference camera distance.
type DetectionParams struct {
	// Contour area window in pixels. Regions outside the window are
	// rejected: below it they are noise specks, above it they are
	// whole-face contours from shadows or frame edges.
	MinArea float64
	MaxArea float64

	// ApproxFactor scales the contour perimeter into the polygon
	// approximation tolerance, stabilizing bounding boxes against
	// jagged mask edges.
	ApproxFactor float64

	// MorphIterations is how many times the morphological opening is
	// applied to each threshold mask before contour extraction.
	MorphIterations int
}

// DefaultParams returns default sticker detection parameters.
func DefaultParams() DetectionParams {
	return DetectionParams{
		MinArea:         15000,
		MaxArea:         150000,
		ApproxFactor:    0.002,
		MorphIterations: 2,
	}
}

// WithAreaRange returns a copy of params with a custom contour area window.
func (p DetectionParams) WithAreaRange(minArea, maxArea float64) DetectionParams {
	p.MinArea = minArea
	p.MaxArea = maxArea
	return p
}

// AreaInRange reports whether a contour area passes the size filter.
// Both bounds are inclusive.
func (p DetectionParams) AreaInRange(area float64) bool {
	return !(area < p.MinArea || area > p.MaxArea)
}
