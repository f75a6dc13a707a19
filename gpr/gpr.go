// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpr implements Gaussian process regression with a
// squared-exponential kernel.
//
// The kernel is
//
//	k(x, x') = C · exp(-|x - x'|² / (2ℓ²))
//
// By default, Fit chooses C and ℓ by maximizing the log-marginal
// likelihood of the training data with L-BFGS, starting from C = 1,
// ℓ = 1 and keeping both in [1e-5, 1e5]. This is what scikit-learn's
// GaussianProcessRegressor does with its default kernel and no
// optimizer restarts.
package gpr

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// DefaultAlpha is the noise variance used when Regressor.Alpha is 0.
const DefaultAlpha = 1e-10

// Bounds on the fitted Scale and LengthScale.
const (
	MinParam = 1e-5
	MaxParam = 1e5
)

// A Regressor is a Gaussian process regression model.
type Regressor struct {
	// Scale is the kernel's constant factor C. 0 means 1. Unless
	// Fixed is set, Fit starts from this value and replaces it
	// with the fitted one.
	Scale float64

	// LengthScale is the kernel's length scale ℓ. 0 means 1. It is
	// fitted like Scale.
	LengthScale float64

	// Fixed disables fitting Scale and LengthScale.
	Fixed bool

	// Alpha is added to the diagonal of the training kernel
	// matrix. It is the variance of observation noise and also
	// keeps the factorization stable. 0 means DefaultAlpha.
	Alpha float64

	x    [][]float64
	chol mat.Cholesky
	w    *mat.VecDense // K⁻¹y
	lml  float64
}

// ErrNotFit is returned by Predict on a Regressor that has not been fit.
var ErrNotFit = errors.New("gpr: regressor is not fit")

func (r *Regressor) params() (c, l, alpha float64) {
	c, l, alpha = r.Scale, r.LengthScale, r.Alpha
	if c == 0 {
		c = 1
	}
	if l == 0 {
		l = 1
	}
	if alpha == 0 {
		alpha = DefaultAlpha
	}
	return
}

func (r *Regressor) kernel(a, b []float64) float64 {
	c, l, _ := r.params()
	return c * math.Exp(-sqDist(a, b)/(2*l*l))
}

func sqDist(a, b []float64) float64 {
	var d2 float64
	for i := range a {
		d := a[i] - b[i]
		d2 += d * d
	}
	return d2
}

// Fit conditions r on observations y at points x. Every row of x must
// have the same length. Fit copies x.
func (r *Regressor) Fit(x [][]float64, y []float64) error {
	r.w = nil
	n := len(x)
	if n == 0 {
		return errors.New("gpr: no training points")
	}
	if len(y) != n {
		return fmt.Errorf("gpr: %d points but %d observations", n, len(y))
	}
	dim := len(x[0])
	r.x = make([][]float64, n)
	for i, row := range x {
		if len(row) != dim {
			return fmt.Errorf("gpr: point %d has %d dimensions, want %d", i, len(row), dim)
		}
		r.x[i] = append([]float64(nil), row...)
	}
	yv := mat.NewVecDense(n, append([]float64(nil), y...))

	if !r.Fixed {
		r.Scale, r.LengthScale = r.optimize(yv)
	}
	c, l, alpha := r.params()
	w, lml, err := r.factor(&r.chol, yv, c, l, alpha, nil)
	if err != nil {
		return err
	}
	r.w, r.lml = w, lml
	return nil
}

// LogMarginalLikelihood returns the log-marginal likelihood of the
// training data under the fitted kernel.
func (r *Regressor) LogMarginalLikelihood() (float64, error) {
	if r.w == nil {
		return 0, ErrNotFit
	}
	return r.lml, nil
}

// factor factorizes the kernel matrix of the training points with
// parameters c and l into chol, and returns K⁻¹y and the log-marginal
// likelihood of y. If grad is non-nil, factor also stores the gradient
// of the log-marginal likelihood with respect to (log c, log l) in it.
func (r *Regressor) factor(chol *mat.Cholesky, y *mat.VecDense, c, l, alpha float64, grad []float64) (*mat.VecDense, float64, error) {
	n := len(r.x)
	k := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := c * math.Exp(-sqDist(r.x[i], r.x[j])/(2*l*l))
			if i == j {
				v += alpha
			}
			k.SetSym(i, j, v)
		}
	}
	if ok := chol.Factorize(k); !ok {
		return nil, 0, errors.New("gpr: kernel matrix is not positive definite; increase Alpha")
	}
	w := new(mat.VecDense)
	if err := chol.SolveVecTo(w, y); err != nil && !isCondition(err) {
		return nil, 0, fmt.Errorf("gpr: %w", err)
	}
	lml := -0.5*mat.Dot(y, w) - 0.5*chol.LogDet() - float64(n)/2*math.Log(2*math.Pi)
	if grad == nil {
		return w, lml, nil
	}

	// ∂lml/∂θ = ½ tr((wwᵀ - K⁻¹) ∂K/∂θ)
	var kinv mat.SymDense
	if err := chol.InverseTo(&kinv); err != nil && !isCondition(err) {
		return nil, 0, fmt.Errorf("gpr: %w", err)
	}
	grad[0], grad[1] = 0, 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d2 := sqDist(r.x[i], r.x[j])
			k0 := c * math.Exp(-d2/(2*l*l))
			a := w.AtVec(i)*w.AtVec(j) - kinv.At(i, j)
			grad[0] += a * k0
			grad[1] += a * k0 * d2 / (l * l)
		}
	}
	grad[0] /= 2
	grad[1] /= 2
	return w, lml, nil
}

// optimize returns the Scale and LengthScale maximizing the
// log-marginal likelihood of y. The optimizer works on u, where each
// log parameter is log(MinParam) + span·σ(u), which keeps it in bounds.
// If no point improves on the starting parameters, optimize returns
// them.
func (r *Regressor) optimize(y *mat.VecDense) (c, l float64) {
	c0, l0, alpha := r.params()
	lo, hi := math.Log(MinParam), math.Log(MaxParam)
	span := hi - lo
	toU := func(p float64) float64 {
		f := (math.Log(p) - lo) / span
		f = math.Max(1e-9, math.Min(1-1e-9, f))
		return math.Log(f / (1 - f))
	}
	sigmoid := func(u float64) float64 { return 1 / (1 + math.Exp(-u)) }
	fromU := func(u []float64) (c, l float64) {
		return math.Exp(lo + span*sigmoid(u[0])), math.Exp(lo + span*sigmoid(u[1]))
	}

	var chol mat.Cholesky
	best, bestC, bestL := math.Inf(1), c0, l0
	eval := func(u, grad []float64) float64 {
		c, l := fromU(u)
		var g []float64
		if grad != nil {
			g = make([]float64, 2)
		}
		_, lml, err := r.factor(&chol, y, c, l, alpha, g)
		if err != nil || math.IsNaN(lml) {
			for i := range grad {
				grad[i] = 0
			}
			return math.Inf(1)
		}
		if -lml < best {
			best, bestC, bestL = -lml, c, l
		}
		for i := range grad {
			s := sigmoid(u[i])
			grad[i] = -g[i] * span * s * (1 - s)
		}
		return -lml
	}

	u0 := []float64{toU(c0), toU(l0)}
	if math.IsInf(eval(u0, nil), 1) {
		return c0, l0
	}
	p := optimize.Problem{
		Func: func(u []float64) float64 { return eval(u, nil) },
		Grad: func(grad, u []float64) { eval(u, grad) },
	}
	settings := &optimize.Settings{MajorIterations: 200}
	method := &optimize.LBFGS{Linesearcher: &optimize.Backtracking{}}
	// The result is ignored: eval tracks the best point, which
	// survives errors such as a failed line search.
	optimize.Minimize(p, u0, settings, method)
	return bestC, bestL
}

// isCondition reports whether err only warns about an ill-conditioned
// matrix. The solution is still usable.
func isCondition(err error) bool {
	var c mat.Condition
	return errors.As(err, &c)
}

func (r *Regressor) kstar(p []float64) (*mat.VecDense, error) {
	if r.w == nil {
		return nil, ErrNotFit
	}
	if len(p) != len(r.x[0]) {
		return nil, fmt.Errorf("gpr: point has %d dimensions, want %d", len(p), len(r.x[0]))
	}
	ks := mat.NewVecDense(len(r.x), nil)
	for i, xi := range r.x {
		ks.SetVec(i, r.kernel(p, xi))
	}
	return ks, nil
}

// Predict returns the posterior mean at each of points.
func (r *Regressor) Predict(points [][]float64) ([]float64, error) {
	out := make([]float64, len(points))
	for i, p := range points {
		ks, err := r.kstar(p)
		if err != nil {
			return nil, err
		}
		out[i] = mat.Dot(ks, r.w)
	}
	return out, nil
}

// PredictStd returns the posterior mean and standard deviation at
// each of points.
func (r *Regressor) PredictStd(points [][]float64) (mean, std []float64, err error) {
	mean = make([]float64, len(points))
	std = make([]float64, len(points))
	c, _, _ := r.params()
	var v mat.VecDense
	for i, p := range points {
		ks, err := r.kstar(p)
		if err != nil {
			return nil, nil, err
		}
		mean[i] = mat.Dot(ks, r.w)
		if err := r.chol.SolveVecTo(&v, ks); err != nil && !isCondition(err) {
			return nil, nil, fmt.Errorf("gpr: %w", err)
		}
		// Rounding can push the variance slightly negative.
		std[i] = math.Sqrt(math.Max(0, c-mat.Dot(ks, &v)))
	}
	return mean, std, nil
}

// Grid returns the n×n points of the square grid spanning [lo, hi] in
// both dimensions, x varying fastest.
func Grid(lo, hi float64, n int) [][]float64 {
	ticks := vec.Linspace(lo, hi, n)
	pts := make([][]float64, 0, n*n)
	for _, y := range ticks {
		for _, x := range ticks {
			pts = append(pts, []float64{x, y})
		}
	}
	return pts
}
