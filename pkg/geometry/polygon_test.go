package geometry

import (
	"math"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name   string
		points []Point2D
		want   float64 // absolute value
	}{
		{"unit square", []Point2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, 1},
		{"10x20 rectangle", []Point2D{{0, 0}, {10, 0}, {10, 20}, {0, 20}}, 200},
		{"triangle", []Point2D{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"collinear", []Point2D{{0, 0}, {1, 1}, {2, 2}}, 0},
		{"too few points", []Point2D{{0, 0}, {1, 1}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := math.Abs(PolygonArea(tt.points))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PolygonArea = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonCentroid(t *testing.T) {
	tests := []struct {
		name   string
		points []Point2D
		want   Point2D
	}{
		{"unit square", []Point2D{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, Point2D{0.5, 0.5}},
		{"offset square", []Point2D{{10, 10}, {30, 10}, {30, 30}, {10, 30}}, Point2D{20, 20}},
		{"triangle", []Point2D{{0, 0}, {3, 0}, {0, 3}}, Point2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PolygonCentroid(tt.points)
			if !ok {
				t.Fatal("PolygonCentroid reported degenerate polygon")
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("PolygonCentroid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolygonCentroidDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []Point2D
	}{
		{"empty", nil},
		{"single point", []Point2D{{5, 5}}},
		{"two points", []Point2D{{0, 0}, {10, 10}}},
		{"collinear", []Point2D{{0, 0}, {5, 5}, {10, 10}}},
		{"repeated point", []Point2D{{3, 3}, {3, 3}, {3, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := PolygonCentroid(tt.points); ok {
				t.Error("expected degenerate polygon to be rejected")
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{3, 7}, {-1, 2}, {5, 4}}
	got := BoundingBox(points)
	want := Rect{X: -1, Y: 2, Width: 6, Height: 5}
	if got != want {
		t.Errorf("BoundingBox = %+v, want %+v", got, want)
	}

	if got := BoundingBox(nil); got != (Rect{}) {
		t.Errorf("BoundingBox(nil) = %+v, want zero rect", got)
	}
}
