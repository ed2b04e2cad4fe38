package image

import (
	"testing"
)

func TestGuessFaceFromFilename(t *testing.T) {
	tests := []struct {
		path string
		want Face
	}{
		{"photos/front.jpg", FaceFront},
		{"photos/cube_BACK.png", FaceBack},
		{"left-face.jpg", FaceLeft},
		{"Right.tiff", FaceRight},
		{"up.jpg", FaceUp},
		{"top_face.jpg", FaceUp},
		{"down.jpg", FaceDown},
		{"bottom.jpg", FaceDown},
		{"cubeface1.jpg", FaceUnknown},
	}

	for _, tt := range tests {
		if got := GuessFaceFromFilename(tt.path); got != tt.want {
			t.Errorf("GuessFaceFromFilename(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestScanIndexForNet(t *testing.T) {
	scan := ScanOrder()
	net := NetOrder()

	for i, idx := range ScanIndexForNet {
		if scan[idx] != net[i] {
			t.Errorf("net slot %d: ScanOrder[%d] = %s, want %s", i, idx, scan[idx], net[i])
		}
	}
}

func TestFaceString(t *testing.T) {
	tests := []struct {
		face Face
		want string
	}{
		{FaceFront, "Front"},
		{FaceBack, "Back"},
		{FaceLeft, "Left"},
		{FaceRight, "Right"},
		{FaceUp, "Up"},
		{FaceDown, "Down"},
		{FaceUnknown, "Unknown"},
		{Face(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.face.String(); got != tt.want {
			t.Errorf("Face(%d).String() = %q, want %q", tt.face, got, tt.want)
		}
	}
}

func TestIsSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"face.jpg", true},
		{"face.JPEG", true},
		{"face.png", true},
		{"face.tif", true},
		{"face.gif", false},
		{"face", false},
	}
	for _, tt := range tests {
		if got := IsSupportedFormat(tt.path); got != tt.want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
