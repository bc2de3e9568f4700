package stats

import (
	"errors"
	"math"
)

// ErrDegenerateSample reports input a kernel density estimate cannot be
// built from: fewer than two distinct points, or zero variance along one
// axis. Callers degrade to rendering markers without a density layer.
var ErrDegenerateSample = errors.New("sample is degenerate for density estimation")

// KDE2D is a two-dimensional Gaussian kernel density estimator with a single
// isotropic bandwidth.
type KDE2D struct {
	xs []float64
	ys []float64
	h  float64
}

// NewKDE2D builds an estimator over paired coordinates. A non-positive
// bandwidth selects Scott's rule from the pooled per-axis deviation.
func NewKDE2D(xs, ys []float64, bandwidth float64) (*KDE2D, error) {
	n := len(xs)
	if n != len(ys) {
		return nil, errors.New("kde: coordinate slices differ in length")
	}
	if n < 2 || countDistinct(xs, ys) < 2 {
		return nil, ErrDegenerateSample
	}

	varX := Variance(xs)
	varY := Variance(ys)
	if varX == 0 || varY == 0 {
		return nil, ErrDegenerateSample
	}

	h := bandwidth
	if h <= 0 {
		// Scott's rule: sigma * n^(-1/(d+4)) with d=2, pooled sigma.
		sigma := math.Sqrt((varX + varY) / 2)
		h = sigma * math.Pow(float64(n), -1.0/6.0)
	}

	return &KDE2D{xs: xs, ys: ys, h: h}, nil
}

// Bandwidth returns the bandwidth in effect after defaulting.
func (k *KDE2D) Bandwidth() float64 {
	return k.h
}

// Evaluate returns the density at a single point.
func (k *KDE2D) Evaluate(x, y float64) float64 {
	h2 := k.h * k.h
	norm := 1 / (float64(len(k.xs)) * 2 * math.Pi * h2)

	var sum float64
	for i := range k.xs {
		dx := x - k.xs[i]
		dy := y - k.ys[i]
		sum += math.Exp(-(dx*dx + dy*dy) / (2 * h2))
	}
	return norm * sum
}

// Grid samples the density on an nx by ny lattice of cell centers spanning
// [x0,x1]x[y0,y1]. Returns the x and y center coordinates and a row-major
// value matrix with one row per y center. Density mass outside the requested
// bounds is simply never sampled; nothing is renormalized.
func (k *KDE2D) Grid(x0, x1, y0, y1 float64, nx, ny int) ([]float64, []float64, [][]float64) {
	cw := (x1 - x0) / float64(nx)
	ch := (y1 - y0) / float64(ny)

	gx := make([]float64, nx)
	for i := range gx {
		gx[i] = x0 + (float64(i)+0.5)*cw
	}
	gy := make([]float64, ny)
	for j := range gy {
		gy[j] = y0 + (float64(j)+0.5)*ch
	}

	values := make([][]float64, ny)
	for j := range gy {
		row := make([]float64, nx)
		for i := range gx {
			row[i] = k.Evaluate(gx[i], gy[j])
		}
		values[j] = row
	}

	return gx, gy, values
}

func countDistinct(xs, ys []float64) int {
	type pair struct{ x, y float64 }
	seen := make(map[pair]struct{}, len(xs))
	for i := range xs {
		seen[pair{xs[i], ys[i]}] = struct{}{}
	}
	return len(seen)
}
