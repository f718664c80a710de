package mathops

import (
	"bytes"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const plotSamples = 200

// PlotFunction renders y = expression over [xmin, xmax] and returns PNG bytes.
func PlotFunction(expression string, xmin, xmax float64) ([]byte, error) {
	if xmin >= xmax {
		return nil, fmt.Errorf("plot: empty range [%v, %v]", xmin, xmax)
	}
	f, err := compileFunc(expression, "x")
	if err != nil {
		return nil, err
	}

	ymin, ymax, err := sampleRange(f, xmin, xmax)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = expression
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	line := plotter.NewFunction(f)
	line.Samples = plotSamples
	p.Add(plotter.NewGrid(), line)

	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax

	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("plot %q: %w", expression, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// sampleRange probes f to pick the Y axis range; plotter.Function does not
// feed the autoscaler, so the bounds have to be computed up front.
func sampleRange(f func(float64) float64, xmin, xmax float64) (float64, float64, error) {
	ymin, ymax := math.Inf(1), math.Inf(-1)
	step := (xmax - xmin) / plotSamples
	for i := 0; i <= plotSamples; i++ {
		y := f(xmin + float64(i)*step)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		ymin = math.Min(ymin, y)
		ymax = math.Max(ymax, y)
	}
	if ymin > ymax {
		return 0, 0, fmt.Errorf("plot: function has no finite values on the range")
	}
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	margin := (ymax - ymin) * 0.05
	return ymin - margin, ymax + margin, nil
}
