// Command facetest runs sticker detection on a single cube face photo and
// prints the detected regions, for calibration work.
package main

import (
	"flag"
	"fmt"
	"os"

	"cube-scanner/internal/cube"
	cubeimage "cube-scanner/internal/image"

	"gocv.io/x/gocv"
)

func main() {
	imagePath := flag.String("image", "", "Path to a cube face photo (JPEG, PNG, or TIFF)")
	overlayPath := flag.String("overlay", "", "Optional path to write the annotated overlay image")
	minArea := flag.Float64("minarea", 0, "Override minimum sticker contour area")
	maxArea := flag.Float64("maxarea", 0, "Override maximum sticker contour area")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: facetest -image <path> [-overlay out.jpg] [-minarea N] [-maxarea N]")
		os.Exit(1)
	}

	layer, err := cubeimage.Load(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded image: %dx%d pixels\n", layer.Width(), layer.Height())

	face := layer.Face
	if face == cubeimage.FaceUnknown {
		face = cubeimage.FaceFront
	}
	fmt.Printf("Face: %s\n", face)

	mat, err := layer.ToMat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert image: %v\n", err)
		os.Exit(1)
	}
	defer mat.Close()

	proc := cube.NewProcessor()
	if *minArea > 0 {
		proc.Detect.MinArea = *minArea
	}
	if *maxArea > 0 {
		proc.Detect.MaxArea = *maxArea
	}

	fmt.Printf("\nDetection parameters:\n")
	fmt.Printf("  Area window: %.0f - %.0f px\n", proc.Detect.MinArea, proc.Detect.MaxArea)
	fmt.Printf("  Approx factor: %.3f  Morph iterations: %d\n",
		proc.Detect.ApproxFactor, proc.Detect.MorphIterations)

	fr := proc.ProcessFace(face, mat)
	defer fr.Close()

	fmt.Printf("\nDetected %d sticker regions:\n", len(fr.Stickers))
	fmt.Printf("%-8s %10s %10s %10s %5s %5s  %s\n",
		"Color", "X", "Y", "Area", "Row", "Col", "Bounds")
	for _, s := range fr.Stickers {
		fmt.Printf("%-8s %10.1f %10.1f %10.0f %5d %5d  %dx%d+%d+%d\n",
			s.ColorName, s.Center.X, s.Center.Y, s.Area, s.Row, s.Col,
			s.Bounds.Width, s.Bounds.Height, s.Bounds.X, s.Bounds.Y)
	}

	if len(fr.Stickers) != 9 {
		fmt.Printf("\nWarning: expected 9 regions, grid assignment skipped\n")
	}

	fmt.Printf("\nColor matrix:\n%s", fr.Matrix.String())

	if *overlayPath != "" {
		if ok := gocv.IMWrite(*overlayPath, fr.Overlay); !ok {
			fmt.Fprintf(os.Stderr, "Failed to write %s\n", *overlayPath)
			os.Exit(1)
		}
		fmt.Printf("\nOverlay written to %s\n", *overlayPath)
	}
}
