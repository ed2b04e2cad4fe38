// Package image provides cube face identity and photo loading.
package image

import (
	"path/filepath"
	"strings"
)

// Face identifies one of the six cube faces.
type Face int

const (
	FaceUnknown Face = iota
	FaceFront
	FaceBack
	FaceLeft
	FaceRight
	FaceUp
	FaceDown
)

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "Front"
	case FaceBack:
		return "Back"
	case FaceLeft:
		return "Left"
	case FaceRight:
		return "Right"
	case FaceUp:
		return "Up"
	case FaceDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// ScanOrder is the order in which face photos are captured and processed.
func ScanOrder() []Face {
	return []Face{FaceFront, FaceBack, FaceLeft, FaceRight, FaceUp, FaceDown}
}

// NetOrder is the order in which faces appear in the unfolded net layout.
func NetOrder() []Face {
	return []Face{FaceUp, FaceLeft, FaceFront, FaceRight, FaceBack, FaceDown}
}

// ScanIndexForNet maps a position in NetOrder to the corresponding
// position in ScanOrder. NetOrder[i] == ScanOrder[ScanIndexForNet[i]].
var ScanIndexForNet = [6]int{4, 2, 0, 3, 1, 5}

// GuessFaceFromFilename attempts to determine the cube face from the filename.
func GuessFaceFromFilename(path string) Face {
	base := strings.ToLower(filepath.Base(path))

	keywords := []struct {
		word string
		face Face
	}{
		{"front", FaceFront},
		{"back", FaceBack},
		{"left", FaceLeft},
		{"right", FaceRight},
		{"up", FaceUp},
		{"top", FaceUp},
		{"down", FaceDown},
		{"bottom", FaceDown},
	}
	for _, kw := range keywords {
		if strings.Contains(base, kw.word) {
			return kw.face
		}
	}
	return FaceUnknown
}
