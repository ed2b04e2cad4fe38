package cube

import (
	"fmt"
	"sort"
	"strings"

	"cube-scanner/internal/sticker"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates detection statistics across all scanned faces.
// On a complete scan of a physical cube each color code should appear
// exactly nine times.
type Summary struct {
	CodeCounts map[byte]int // Assigned cells per color code
	Regions    int          // Total detected sticker regions
	MeanArea   float64      // Mean region area in pixels
	StdDevArea float64      // Sample standard deviation of region areas
}

// Summarize computes cross-face statistics for a scan session.
func Summarize(r *Result) Summary {
	s := Summary{CodeCounts: make(map[byte]int)}

	var areas []float64
	for _, fr := range r.Faces {
		if fr.Err != nil {
			continue
		}
		s.Regions += len(fr.Stickers)
		for _, st := range fr.Stickers {
			areas = append(areas, st.Area)
		}
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if code := fr.Matrix[row][col]; code != sticker.Blank {
					s.CodeCounts[code]++
				}
			}
		}
	}

	if len(areas) > 0 {
		s.MeanArea = stat.Mean(areas, nil)
	}
	if len(areas) > 1 {
		s.StdDevArea = stat.StdDev(areas, nil)
	}

	return s
}

// String formats the summary as a small report, codes in stable order.
func (s Summary) String() string {
	codes := make([]byte, 0, len(s.CodeCounts))
	for code := range s.CodeCounts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "regions: %d (area mean %.0f, stddev %.0f)\n",
		s.Regions, s.MeanArea, s.StdDevArea)
	for _, code := range codes {
		fmt.Fprintf(&b, "  %c: %d\n", code, s.CodeCounts[code])
	}
	return b.String()
}
