package chart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	apperrors "mergebench/internal/errors"
)

// Output file names, in report order
const (
	TimeComparisonFile   = "merge_time_comparison.png"
	OverheadAnalysisFile = "merge_overhead_analysis.png"
	ComparisonsCountFile = "merge_comparisons_count.png"
	FinalComparisonFile  = "merge_final_comparison.png"
	GrowthPatternFile    = "merge_growth_pattern.png"
)

// DefaultDPI is the resolution of every chart unless configured otherwise
const DefaultDPI = 300

// Spec describes one chart of the report
type Spec struct {
	File   string
	Width  vg.Length
	Height vg.Length
	build  func(Input) (figure, error)
}

// Specs returns the report charts in the order they are produced
func Specs() []Spec {
	return []Spec{
		{File: TimeComparisonFile, Width: 12 * vg.Inch, Height: 7 * vg.Inch, build: timeComparison},
		{File: OverheadAnalysisFile, Width: 12 * vg.Inch, Height: 7 * vg.Inch, build: overheadAnalysis},
		{File: ComparisonsCountFile, Width: 12 * vg.Inch, Height: 7 * vg.Inch, build: comparisonsCount},
		{File: FinalComparisonFile, Width: 14 * vg.Inch, Height: 6 * vg.Inch, build: finalComparison},
		{File: GrowthPatternFile, Width: 12 * vg.Inch, Height: 7 * vg.Inch, build: growthPattern},
	}
}

// Files returns the chart file names in report order
func Files() []string {
	specs := Specs()
	files := make([]string, len(specs))
	for i, s := range specs {
		files[i] = s.File
	}
	return files
}

// Renderer writes charts as PNG files into one directory
type Renderer struct {
	dir    string
	dpi    int
	logger *slog.Logger
}

// NewRenderer creates a renderer writing into dir (the working directory when
// empty) at dpi dots per inch. A non-positive dpi selects DefaultDPI.
func NewRenderer(dir string, dpi int, logger *slog.Logger) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{dir: dir, dpi: dpi, logger: logger}
}

// Path returns where the chart file will be written
func (r *Renderer) Path(spec Spec) string {
	if r.dir == "" {
		return spec.File
	}
	return filepath.Join(r.dir, spec.File)
}

// Render builds the chart described by spec and writes it, returning the path
func (r *Renderer) Render(spec Spec, in Input) (string, error) {
	if in.Summary == nil {
		return "", apperrors.RenderFailed(spec.File, fmt.Errorf("missing summary"))
	}

	canvas, err := r.rasterize(spec, in)
	if err != nil {
		return "", apperrors.RenderFailed(spec.File, err)
	}

	path := r.Path(spec)
	if err := writePNG(path, canvas); err != nil {
		return "", apperrors.OutputFailed(path, err)
	}

	r.logger.Debug("Chart written",
		slog.String("chart", spec.File),
		slog.String("path", path),
		slog.Int("dpi", r.dpi))
	return path, nil
}

// rasterize draws the figure, turning plotting panics into errors
func (r *Renderer) rasterize(spec Spec, in Input) (c *vgimg.Canvas, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			c, err = nil, fmt.Errorf("plot panicked: %v", rec)
		}
	}()

	fig, err := spec.build(in)
	if err != nil {
		return nil, err
	}

	c = vgimg.NewWith(
		vgimg.UseWH(spec.Width, spec.Height),
		vgimg.UseDPI(r.dpi),
	)
	fig.Draw(draw.New(c))
	return c, nil
}

func writePNG(path string, c *vgimg.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
