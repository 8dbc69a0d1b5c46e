package chart

import (
	"image/color"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	recursiveColor = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	iterativeColor = color.RGBA{R: 0xA2, G: 0x3B, B: 0x72, A: 0xFF}
	slowerColor    = color.RGBA{R: 0xE6, G: 0x39, B: 0x46, A: 0xFF}
	fasterColor    = color.RGBA{R: 0x06, G: 0xA7, B: 0x7D, A: 0xFF}
	theoryColor    = color.RGBA{R: 0xFF, A: 0xFF}
	warnColor      = color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF}
	connectorColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
	gridColor      = color.Gray{Y: 0xDD}
)

var (
	dashed = []vg.Length{vg.Points(6), vg.Points(3)}
	dotted = []vg.Length{vg.Points(1.5), vg.Points(3)}
)

// newPlot creates a plot with the shared title, label and grid styling
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(11)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)
	return p
}

// commaTicks labels the default ticks with thousands separators
var commaTicks = plot.TickerFunc(func(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = humanize.Comma(int64(ticks[i].Value))
		}
	}
	return ticks
})

// series adds a line with point markers and registers it in the legend
func series(p *plot.Plot, name string, xys plotter.XYs, c color.Color, width vg.Length, shape draw.GlyphDrawer, dashes []vg.Length) error {
	if len(xys) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = width
	line.Dashes = dashes
	points.Color = c
	points.Shape = shape
	points.Radius = vg.Points(4)

	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}

// referenceLine adds a plain line, optionally named in the legend
func referenceLine(p *plot.Plot, name string, xys plotter.XYs, c color.Color, width vg.Length, dashes []vg.Length) error {
	if len(xys) == 0 {
		return nil
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = width
	line.Dashes = dashes

	p.Add(line)
	if name != "" {
		p.Legend.Add(name, line)
	}
	return nil
}

// annotate places a text block at a data coordinate
func annotate(p *plot.Plot, x, y float64, txt string, xAlign draw.XAlignment, yAlign draw.YAlignment) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{txt},
	})
	if err != nil {
		return err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(11)
		labels.TextStyle[i].XAlign = xAlign
		labels.TextStyle[i].YAlign = yAlign
	}
	p.Add(labels)
	return nil
}

// positiveOnly drops points that cannot be placed on log axes
func positiveOnly(xys plotter.XYs) plotter.XYs {
	out := make(plotter.XYs, 0, len(xys))
	for _, pt := range xys {
		if pt.X > 0 && pt.Y > 0 {
			out = append(out, pt)
		}
	}
	return out
}

// padLogAxis keeps a log axis drawable when its range is empty or a point
func padLogAxis(a *plot.Axis) {
	switch {
	case a.Min > a.Max || a.Min <= 0:
		a.Min, a.Max = 1, 10
	case a.Min == a.Max:
		a.Min, a.Max = a.Min/2, a.Max*2
	}
}

func xys(xs, ys []float64) plotter.XYs {
	out := make(plotter.XYs, len(xs))
	for i := range xs {
		out[i].X = xs[i]
		out[i].Y = ys[i]
	}
	return out
}
