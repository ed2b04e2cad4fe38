// Package cube runs the six-face scan session: per-face detection, grid
// assignment and rendering, plus the assembled net and summary statistics.
package cube

import (
	"log"

	cubeimage "cube-scanner/internal/image"
	"cube-scanner/internal/render"
	"cube-scanner/internal/sticker"

	"gocv.io/x/gocv"
)

// Processor drives the sequential face pipeline. Faces are processed one
// at a time to completion; nothing is shared between faces except the
// accumulated results.
type Processor struct {
	Table  []sticker.ColorRange
	Detect sticker.DetectionParams
	Render render.Params

	// Pause, when set, is called after each face is processed. The CLI
	// uses it to wait for the operator between faces; tests and batch
	// runs leave it nil.
	Pause func(face cubeimage.Face)

	// Logf receives diagnostics (load failures, region count warnings).
	// Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// NewProcessor returns a processor with the default calibration and layout.
func NewProcessor() *Processor {
	return &Processor{
		Table:  sticker.DefaultColorTable(),
		Detect: sticker.DefaultParams(),
		Render: render.DefaultParams(),
	}
}

// FaceResult holds everything produced for one face.
type FaceResult struct {
	Face     cubeimage.Face
	Path     string
	Stickers []sticker.Sticker
	Matrix   sticker.Matrix

	// Rendered buffers, owned by this result. Close releases them.
	Overlay    gocv.Mat // Input photo with detection annotations
	Standard   gocv.Mat // Standardized face image
	Comparison gocv.Mat // Overlay and standard side by side

	Err error // Set when the face photo could not be loaded
}

// Close releases the result's image buffers. Results built by the
// processor always hold valid Mats, empty ones for a skipped face.
func (fr *FaceResult) Close() {
	fr.Overlay.Close()
	fr.Standard.Close()
	fr.Comparison.Close()
}

// Result accumulates the per-face results of one scan session.
type Result struct {
	Faces []FaceResult
}

// Close releases all image buffers held by the result.
func (r *Result) Close() {
	for i := range r.Faces {
		r.Faces[i].Close()
	}
}

// ProcessAll runs the pipeline over up to six face photos in scan order
// (Front, Back, Left, Right, Up, Down). A photo that fails to load is
// reported and skipped; the session always completes and returns whatever
// the remaining faces produced.
func (p *Processor) ProcessAll(paths []string) *Result {
	result := &Result{}
	order := cubeimage.ScanOrder()

	for i, path := range paths {
		if i >= len(order) {
			break
		}
		face := order[i]

		layer, err := cubeimage.Load(path)
		if err != nil {
			p.logf("skipping %s face: %v", face, err)
			result.Faces = append(result.Faces, skippedFace(face, path, err))
			continue
		}

		mat, err := layer.ToMat()
		if err != nil {
			p.logf("skipping %s face: %v", face, err)
			result.Faces = append(result.Faces, skippedFace(face, path, err))
			continue
		}

		fr := p.ProcessFace(face, mat)
		fr.Path = path
		mat.Close()
		result.Faces = append(result.Faces, fr)

		if p.Pause != nil {
			p.Pause(face)
		}
	}

	return result
}

// ProcessFace runs detection, grid assignment and rendering for a single
// face image. The input Mat is not modified and remains owned by the
// caller.
func (p *Processor) ProcessFace(face cubeimage.Face, img gocv.Mat) FaceResult {
	fr := FaceResult{Face: face}

	fr.Overlay = img.Clone()
	fr.Stickers = sticker.Detect(img, p.Table, p.Detect, &fr.Overlay)

	if !sticker.AssignGrid(fr.Stickers) {
		p.logf("%s face: detected %d sticker regions, expected 9; leaving matrix blank",
			face, len(fr.Stickers))
	}
	fr.Matrix = sticker.BuildMatrix(fr.Stickers)

	colors := render.CodeColors(p.Table)
	fr.Standard = render.StandardFace(fr.Matrix, colors, face.String(), p.Render)
	fr.Comparison = render.Comparison(fr.Overlay, fr.Standard, p.Render)

	return fr
}

// Matrices returns the color matrices of the faces that loaded, in scan
// order.
func (r *Result) Matrices() []sticker.Matrix {
	var ms []sticker.Matrix
	for _, fr := range r.Faces {
		if fr.Err == nil {
			ms = append(ms, fr.Matrix)
		}
	}
	return ms
}

// NetMatrices reorders the scanned matrices into net layout order
// (Up, Left, Front, Right, Back, Down). Faces beyond what was scanned are
// omitted.
func (r *Result) NetMatrices() []sticker.Matrix {
	scanned := r.Matrices()
	var ms []sticker.Matrix
	for _, idx := range cubeimage.ScanIndexForNet {
		if idx < len(scanned) {
			ms = append(ms, scanned[idx])
		}
	}
	return ms
}

// Net renders the unfolded cube from whatever faces were scanned.
func (p *Processor) Net(r *Result) gocv.Mat {
	return render.CubeNet(r.NetMatrices(), render.CodeColors(p.Table), p.Render)
}

// skippedFace builds the placeholder result for a face whose photo could
// not be loaded, with valid empty Mats so Close stays safe.
func skippedFace(face cubeimage.Face, path string, err error) FaceResult {
	return FaceResult{
		Face:       face,
		Path:       path,
		Err:        err,
		Matrix:     sticker.EmptyMatrix(),
		Overlay:    gocv.NewMat(),
		Standard:   gocv.NewMat(),
		Comparison: gocv.NewMat(),
	}
}

func (p *Processor) logf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
		return
	}
	log.Printf(format, args...)
}
