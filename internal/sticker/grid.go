package sticker

import (
	"sort"
)

// AssignGrid assigns each of exactly nine stickers a (row, col) position in
// the 3x3 face grid and sorts the slice into row-major order. It reports
// whether assignment happened; with any other count the slice is left
// untouched and false is returned, leaving the face's matrix blank.
//
// Rows are recovered by sorting the nine centroid Y coordinates: three
// stickers belong to each row, so the gaps between the 3rd/4th and 6th/7th
// sorted values straddle the row boundaries. Columns are the X-order rank
// within each row. This assumes a near-frontal capture with negligible
// rotation; it is deliberately not a general grid fit.
func AssignGrid(stickers []Sticker) bool {
	if len(stickers) != 9 {
		return false
	}

	ys := make([]float64, len(stickers))
	for i, s := range stickers {
		ys[i] = s.Center.Y
	}
	sort.Float64s(ys)

	rowThreshold1 := ys[2] + (ys[3]-ys[2])/2
	rowThreshold2 := ys[5] + (ys[6]-ys[5])/2

	for i := range stickers {
		switch y := stickers[i].Center.Y; {
		case y < rowThreshold1:
			stickers[i].Row = 0
		case y < rowThreshold2:
			stickers[i].Row = 1
		default:
			stickers[i].Row = 2
		}
	}

	// Rank each row's stickers left to right.
	for r := 0; r < 3; r++ {
		var rowIdx []int
		for i := range stickers {
			if stickers[i].Row == r {
				rowIdx = append(rowIdx, i)
			}
		}
		sort.Slice(rowIdx, func(a, b int) bool {
			return stickers[rowIdx[a]].Center.X < stickers[rowIdx[b]].Center.X
		})
		for c, i := range rowIdx {
			stickers[i].Col = c
		}
	}

	sort.Slice(stickers, func(a, b int) bool {
		if stickers[a].Row != stickers[b].Row {
			return stickers[a].Row < stickers[b].Row
		}
		return stickers[a].Col < stickers[b].Col
	})

	return true
}
