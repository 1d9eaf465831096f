package cmd

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeWqPlot renders the mean waiting time of each swept configuration
// against its server count. Configurations whose Wq is NaN (no departures
// in any replication) are left out of the series.
func writeWqPlot(path string, results []SweepResult) error {
	pts := make(plotter.XYs, 0, len(results))
	for _, res := range results {
		if math.IsNaN(res.Summary.Wq.Mean) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(res.Servers), Y: res.Summary.Wq.Mean})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no finite Wq estimates to plot")
	}

	p := plot.New()
	p.Title.Text = "Mean waiting time vs number of servers"
	p.X.Label.Text = "Servers (c)"
	p.Y.Label.Text = "Mean Wq"

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("build plot series: %w", err)
	}
	p.Add(plotter.NewGrid(), line, points)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
