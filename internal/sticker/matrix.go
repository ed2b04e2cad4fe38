package sticker

import (
	"strings"
)

// Blank is the matrix sentinel for a cell with no assigned sticker.
const Blank byte = ' '

// Matrix is the 3x3 grid of color codes for one cube face.
type Matrix [3][3]byte

// EmptyMatrix returns a matrix with every cell blank.
func EmptyMatrix() Matrix {
	var m Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = Blank
		}
	}
	return m
}

// BuildMatrix populates a color matrix from grid-assigned stickers.
// Stickers without a valid grid position are ignored, so an unassigned
// set yields a fully blank matrix.
func BuildMatrix(stickers []Sticker) Matrix {
	m := EmptyMatrix()
	for _, s := range stickers {
		if s.Row >= 0 && s.Row < 3 && s.Col >= 0 && s.Col < 3 {
			m[s.Row][s.Col] = s.Code
		}
	}
	return m
}

// IsBlank reports whether no cell has been assigned a code.
func (m Matrix) IsBlank() bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if m[r][c] != Blank {
				return false
			}
		}
	}
	return true
}

// String renders the matrix as three space-separated rows.
func (m Matrix) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(m[r][c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
