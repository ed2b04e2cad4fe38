// Command cubescan runs the full six-face scan pipeline over cube face
// photos and writes the detection overlays, standardized faces, comparison
// composites and the assembled cube net.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cube-scanner/internal/cube"
	cubeimage "cube-scanner/internal/image"
	"cube-scanner/internal/version"

	"gocv.io/x/gocv"
)

func main() {
	dir := flag.String("dir", "", "Directory containing cubeface1.jpg .. cubeface6.jpg")
	outDir := flag.String("out", "output", "Directory for rendered output images")
	interactive := flag.Bool("interactive", false, "Wait for Enter between faces")
	blockSize := flag.Int("block", 0, "Override rendered sticker block size in pixels")
	minArea := flag.Float64("minarea", 0, "Override minimum sticker contour area")
	maxArea := flag.Float64("maxarea", 0, "Override maximum sticker contour area")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cubescan %s\n", version.String())
		return
	}

	paths := flag.Args()
	if *dir != "" {
		paths = nil
		for i := 1; i <= 6; i++ {
			paths = append(paths, filepath.Join(*dir, fmt.Sprintf("cubeface%d.jpg", i)))
		}
	}
	if len(paths) == 0 {
		fmt.Println("Usage: cubescan [-dir <photos-dir>] [-out output] [-interactive] [face1.jpg ... face6.jpg]")
		fmt.Println("Face photos are expected in scan order: Front, Back, Left, Right, Up, Down")
		os.Exit(1)
	}
	if len(paths) > 6 {
		fmt.Fprintf(os.Stderr, "At most six face photos are used; ignoring %d extra\n", len(paths)-6)
		paths = paths[:6]
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	proc := cube.NewProcessor()
	if *blockSize > 0 {
		proc.Render.BlockSize = *blockSize
	}
	if *minArea > 0 {
		proc.Detect.MinArea = *minArea
	}
	if *maxArea > 0 {
		proc.Detect.MaxArea = *maxArea
	}

	if *interactive {
		stdin := bufio.NewReader(os.Stdin)
		proc.Pause = func(face cubeimage.Face) {
			fmt.Printf("Processed %s face. Press Enter for the next face...\n", face)
			stdin.ReadString('\n')
		}
	}

	fmt.Printf("Scanning %d face photo(s)\n", len(paths))
	fmt.Printf("  Area window: %.0f - %.0f px\n", proc.Detect.MinArea, proc.Detect.MaxArea)
	fmt.Printf("  Block size:  %d px\n\n", proc.Render.BlockSize)

	result := proc.ProcessAll(paths)
	defer result.Close()

	for i := range result.Faces {
		fr := &result.Faces[i]
		if fr.Err != nil {
			fmt.Printf("== %s face: load failed (%v), skipped\n\n", fr.Face, fr.Err)
			continue
		}

		fmt.Printf("== %s face: %d sticker regions\n", fr.Face, len(fr.Stickers))
		fmt.Print(fr.Matrix.String())

		writeImage(filepath.Join(*outDir, "processed_"+fr.Face.String()+".jpg"), fr.Overlay)
		writeImage(filepath.Join(*outDir, "standard_"+fr.Face.String()+".jpg"), fr.Standard)
		writeImage(filepath.Join(*outDir, "comparison_"+fr.Face.String()+".jpg"), fr.Comparison)
		fmt.Println()
	}

	net := proc.Net(result)
	defer net.Close()
	writeImage(filepath.Join(*outDir, "cube_net.jpg"), net)

	fmt.Println("== Summary")
	fmt.Print(cube.Summarize(result).String())
	fmt.Printf("\nResults written to %s\n", *outDir)
}

func writeImage(path string, img gocv.Mat) {
	if img.Empty() {
		return
	}
	if ok := gocv.IMWrite(path, img); !ok {
		fmt.Fprintf(os.Stderr, "Failed to write %s\n", path)
		return
	}
	fmt.Printf("  wrote %s\n", path)
}
