package geometry

import (
	"math"
)

// PolygonArea returns the signed area of a closed polygon using the
// shoelace formula. Positive for counter-clockwise winding in a
// Y-down image coordinate system.
func PolygonArea(points []Point2D) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	j := n - 1
	for i := 0; i < n; i++ {
		sum += points[j].X*points[i].Y - points[i].X*points[j].Y
		j = i
	}
	return sum / 2
}

// PolygonCentroid computes the area-weighted centroid of a closed polygon:
// the first-order spatial moments divided by the zeroth-order moment.
// Returns ok=false for a degenerate polygon whose area is effectively zero,
// where the quotient is undefined.
func PolygonCentroid(points []Point2D) (Point2D, bool) {
	n := len(points)
	if n < 3 {
		return Point2D{}, false
	}

	var area, cx, cy float64
	j := n - 1
	for i := 0; i < n; i++ {
		cross := points[j].X*points[i].Y - points[i].X*points[j].Y
		area += cross
		cx += (points[j].X + points[i].X) * cross
		cy += (points[j].Y + points[i].Y) * cross
		j = i
	}
	area /= 2

	if math.Abs(area) < 1e-9 {
		return Point2D{}, false
	}

	return Point2D{X: cx / (6 * area), Y: cy / (6 * area)}, true
}
