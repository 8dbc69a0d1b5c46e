package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"mergebench/internal/analysis"
	"mergebench/internal/measurement"
)

// theoryPoints is the sample count of the O(n log n) reference curves
const theoryPoints = 100

// minimalDifferencePercent is the final-row overhead below which the bar
// chart calls the difference minimal
const minimalDifferencePercent = 10

// Input is everything a chart builder reads
type Input struct {
	Table        measurement.Table
	Summary      *analysis.Summary
	DatasetLabel string
}

// figure is anything that can draw itself onto a canvas
type figure interface {
	Draw(draw.Canvas)
}

func timeComparison(in Input) (figure, error) {
	title := "Merge Sort: Recursive vs Iterative - Time Comparison"
	if in.DatasetLabel != "" {
		title += "\nData Penyakit Rawat Inap " + in.DatasetLabel
	}
	p := newPlot(title, "Dataset Size (N)", "Execution Time (ms)")

	ns := in.Table.Ns()
	if err := series(p, "Merge Sort RECURSIVE", xys(ns, in.Table.RecursiveMs()), recursiveColor, vg.Points(3), draw.CircleGlyph{}, nil); err != nil {
		return nil, err
	}
	if err := series(p, "Merge Sort ITERATIVE", xys(ns, in.Table.IterativeMs()), iterativeColor, vg.Points(3), draw.BoxGlyph{}, nil); err != nil {
		return nil, err
	}

	final := in.Summary.Final
	note := fmt.Sprintf("Very close!\nDifference < %.1f%%", math.Abs(final.OverheadPercent))
	y := math.Max(final.RecursiveMs, final.IterativeMs) * 0.8
	if err := annotate(p, float64(final.N)*0.5, y, note, draw.XLeft, draw.YCenter); err != nil {
		return nil, err
	}
	return p, nil
}

// splitOverheads separates rows where recursion was slower or equal (>= 0)
// from rows where it was faster
func splitOverheads(t measurement.Table) (slower, faster plotter.XYs) {
	for _, r := range t.Rows {
		pt := plotter.XY{X: float64(r.N), Y: r.OverheadPercent}
		if r.OverheadPercent >= 0 {
			slower = append(slower, pt)
		} else {
			faster = append(faster, pt)
		}
	}
	return slower, faster
}

func overheadAnalysis(in Input) (figure, error) {
	p := newPlot("Merge Sort Recursion Overhead\nPercentage Difference (Recursive vs Iterative)",
		"Dataset Size (N)", "Overhead (%)\n(Positive = Recursive slower)")

	ns := in.Table.Ns()
	if err := referenceLine(p, "", xys(ns, in.Table.Overheads()), connectorColor, vg.Points(2), nil); err != nil {
		return nil, err
	}

	slower, faster := splitOverheads(in.Table)
	for _, group := range []struct {
		name  string
		pts   plotter.XYs
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"Recursive slower", slower, slowerColor, draw.TriangleGlyph{}},
		{"Recursive faster", faster, fasterColor, draw.BoxGlyph{}},
	} {
		if len(group.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(group.pts)
		if err != nil {
			return nil, err
		}
		sc.Color = group.color
		sc.Shape = group.shape
		sc.Radius = vg.Points(6)
		p.Add(sc)
		p.Legend.Add(group.name, sc)
	}

	lo, hi := float64(in.Summary.MinN), float64(in.Summary.MaxN)
	span := func(y float64) plotter.XYs { return plotter.XYs{{X: lo, Y: y}, {X: hi, Y: y}} }

	thresholds := []struct {
		name   string
		y      float64
		color  color.Color
		width  vg.Length
		dashes []vg.Length
	}{
		{"Equal Performance", 0, color.Black, vg.Points(2), nil},
		{"±5% threshold", 5, warnColor, vg.Points(1.5), dashed},
		{"", -5, warnColor, vg.Points(1.5), dashed},
		{"±10% threshold", 10, theoryColor, vg.Points(1.5), dotted},
		{"", -10, theoryColor, vg.Points(1.5), dotted},
	}
	for _, th := range thresholds {
		if err := referenceLine(p, th.name, span(th.y), th.color, th.width, th.dashes); err != nil {
			return nil, err
		}
	}

	stats := in.Summary.Overhead
	note := fmt.Sprintf("Average overhead: %.2f%%\nRange: %.1f%% to %.1f%%", stats.Mean, stats.Min, stats.Max)
	x := p.X.Min + 0.05*(p.X.Max-p.X.Min)
	y := p.Y.Max - 0.05*(p.Y.Max-p.Y.Min)
	if err := annotate(p, x, y, note, draw.XLeft, draw.YTop); err != nil {
		return nil, err
	}

	p.Legend.Left = false
	return p, nil
}

func comparisonsCount(in Input) (figure, error) {
	p := newPlot("Comparison Operations Count - Merge Sort\nBoth Implementations: O(n log n) Complexity",
		"Dataset Size (N)", "Number of Comparisons")
	p.Y.Tick.Marker = commaTicks

	ns := in.Table.Ns()
	if err := series(p, "Recursive Comparisons", xys(ns, in.Table.RecursiveComparisons()), recursiveColor, vg.Points(3), draw.CircleGlyph{}, nil); err != nil {
		return nil, err
	}
	if err := series(p, "Iterative Comparisons", xys(ns, in.Table.IterativeComparisons()), iterativeColor, vg.Points(2), draw.BoxGlyph{}, dashed); err != nil {
		return nil, err
	}

	if curve := in.Summary.ComparisonCurve; curve != nil {
		grid := analysis.Linspace(float64(in.Summary.MinN), float64(in.Summary.MaxN), theoryPoints)
		if err := referenceLine(p, "Theoretical O(n log n)", xys(grid, curve.Sample(grid)), theoryColor, vg.Points(2), dotted); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// bars draws one bar per implementation with a value label above each
func bars(p *plot.Plot, values [2]float64, labels [2]string) error {
	colors := []color.Color{recursiveColor, iterativeColor}
	for i, v := range values {
		bar, err := plotter.NewBarChart(plotter.Values{v}, vg.Points(90))
		if err != nil {
			return err
		}
		bar.XMin = float64(i)
		bar.Color = colors[i]
		bar.LineStyle.Width = vg.Points(2)
		p.Add(bar)

		if err := annotate(p, float64(i), v, labels[i], draw.XCenter, draw.YBottom); err != nil {
			return err
		}
	}
	p.NominalX("Recursive", "Iterative")
	return nil
}

func finalComparison(in Input) (figure, error) {
	final := in.Summary.Final

	timePanel := newPlot(fmt.Sprintf("Execution Time Comparison\n(N = %d records)", final.N), "", "Execution Time (ms)")
	times := [2]float64{final.RecursiveMs, final.IterativeMs}
	if err := bars(timePanel, times, [2]string{
		fmt.Sprintf("%.3f ms", times[0]),
		fmt.Sprintf("%.3f ms", times[1]),
	}); err != nil {
		return nil, err
	}
	overhead := math.Abs(final.OverheadPercent)
	note := fmt.Sprintf("Difference:\n%.2f%%", overhead)
	if overhead < minimalDifferencePercent {
		note += "\n(Minimal!)"
	}
	if err := annotate(timePanel, 0.5, math.Max(times[0], times[1])*0.5, note, draw.XCenter, draw.YCenter); err != nil {
		return nil, err
	}

	cmpPanel := newPlot(fmt.Sprintf("Comparison Operations Count\n(N = %d records)", final.N), "", "Number of Comparisons")
	cmpPanel.Y.Tick.Marker = commaTicks
	comparisons := [2]float64{float64(final.RecursiveComparisons), float64(final.IterativeComparisons)}
	if err := bars(cmpPanel, comparisons, [2]string{
		humanize.Comma(final.RecursiveComparisons),
		humanize.Comma(final.IterativeComparisons),
	}); err != nil {
		return nil, err
	}
	note = fmt.Sprintf("Difference:\n%s\n(%.2f%%)", humanize.Comma(in.Summary.ComparisonDiff), in.Summary.ComparisonDiffPercent)
	if err := annotate(cmpPanel, 0.5, math.Max(comparisons[0], comparisons[1])*0.5, note, draw.XCenter, draw.YCenter); err != nil {
		return nil, err
	}

	return tiled{{timePanel, cmpPanel}}, nil
}

func growthPattern(in Input) (figure, error) {
	p := newPlot("Merge Sort Growth Pattern (Log-Log Scale)\nVerifying O(n log n) Complexity",
		"Dataset Size (N) - Log Scale", "Execution Time (ms) - Log Scale")
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	ns := in.Table.Ns()
	if err := series(p, "Recursive", positiveOnly(xys(ns, in.Table.RecursiveMs())), recursiveColor, vg.Points(3), draw.CircleGlyph{}, nil); err != nil {
		return nil, err
	}
	if err := series(p, "Iterative", positiveOnly(xys(ns, in.Table.IterativeMs())), iterativeColor, vg.Points(3), draw.BoxGlyph{}, nil); err != nil {
		return nil, err
	}

	if curve := in.Summary.TimeCurve; curve != nil {
		grid := analysis.Logspace(float64(in.Summary.MinN), float64(in.Summary.MaxN), theoryPoints)
		if err := referenceLine(p, "Theoretical O(n log n)", positiveOnly(xys(grid, curve.Sample(grid))), theoryColor, vg.Points(2), dotted); err != nil {
			return nil, err
		}
	}

	padLogAxis(&p.X)
	padLogAxis(&p.Y)
	return p, nil
}

// tiled lays out plots in a grid sharing aligned axes
type tiled [][]*plot.Plot

func (t tiled) Draw(dc draw.Canvas) {
	rows, cols := len(t), 0
	if rows > 0 {
		cols = len(t[0])
	}
	canvases := plot.Align(t, draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Points(20),
		PadY: vg.Points(10),
	}, dc)
	for j := range t {
		for i, p := range t[j] {
			p.Draw(canvases[j][i])
		}
	}
}
