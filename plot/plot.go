// Package plot renders clustering results with gonum/plot.
//
// These helpers sit outside the clustering path; they exist for calibration
// debugging and demos, not for production pipelines.
package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/blockspacer/utcore/distance"
	"github.com/blockspacer/utcore/kmeans"
)

// Scatter renders a two-dimensional clustering as one scatter series per
// cluster plus the centroids. Save the returned plot with its Save method.
func Scatter[T distance.Float](points [][]T, res *kmeans.Result[T]) (*plot.Plot, error) {
	if len(points) != len(res.Assignment) {
		return nil, fmt.Errorf("assignment covers %d points, got %d", len(res.Assignment), len(points))
	}

	for _, p := range points {
		if len(p) != 2 {
			return nil, &kmeans.ErrDimensionMismatch{Expected: 2, Actual: len(p)}
		}
	}

	p := plot.New()
	p.Title.Text = "k-means clustering"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for j := range res.Centroids {
		var xys plotter.XYs

		for i, pt := range points {
			if res.Assignment[i] != j {
				continue
			}

			xys = append(xys, plotter.XY{X: float64(pt[0]), Y: float64(pt[1])})
		}

		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}

		s.GlyphStyle.Color = plotutil.Color(j)
		s.GlyphStyle.Radius = vg.Points(2)

		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", j), s)
	}

	var xys plotter.XYs
	for _, c := range res.Centroids {
		xys = append(xys, plotter.XY{X: float64(c[0]), Y: float64(c[1])})
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}

	s.GlyphStyle.Color = color.Black
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = draw.PyramidGlyph{}

	p.Add(s)
	p.Legend.Add("centroids", s)

	return p, nil
}

// SizesBar renders the per-cluster member counts as a bar chart.
func SizesBar[T distance.Float](res *kmeans.Result[T]) (*plot.Plot, error) {
	counts := make(plotter.Values, len(res.Centroids))
	labels := make([]string, len(res.Centroids))

	for i, j := range res.Assignment {
		if j < 0 || j >= len(counts) {
			return nil, fmt.Errorf("assignment %d out of range [0, %d) at point %d", j, len(counts), i)
		}

		counts[j]++
	}

	for j := range labels {
		labels[j] = fmt.Sprintf("%d", j)
	}

	p := plot.New()
	p.Title.Text = "cluster sizes"
	p.Y.Label.Text = "points"

	bars, err := plotter.NewBarChart(counts, vg.Points(20))
	if err != nil {
		return nil, err
	}

	p.Add(bars)
	p.NominalX(labels...)

	return p, nil
}
