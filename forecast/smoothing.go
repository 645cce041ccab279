package forecast

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Smoothing parameter grid. The fit is a deterministic exhaustive search over
// this grid minimizing one-step-ahead squared error, so refitting identical
// input always reproduces the same parameters.
const (
	alphaGridMin  = 0.05
	alphaGridStep = 0.05
	alphaGridN    = 19

	betaGridMin  = 0.05
	betaGridStep = 0.05
	betaGridN    = 19

	phiGridMin  = 0.80
	phiGridStep = 0.02
	phiGridN    = 10
)

// dampedTrend is an additive damped trend exponential smoothing model (Holt's
// linear method with a damping factor on the trend term).
//
// Level: l_t = alpha*y_t + (1-alpha)*(l_{t-1} + phi*b_{t-1})
// Trend: b_t = beta*(l_t - l_{t-1}) + (1-beta)*phi*b_{t-1}
//
// The h-step forecast is l_n + (phi + phi^2 + ... + phi^h)*b_n, so the trend
// contribution is a finite geometric sum bounded by phi/(1-phi)*b_n.
type dampedTrend struct {
	alpha float64
	beta  float64
	phi   float64

	level float64
	trend float64
	sigma float64
}

// fitDampedTrend estimates smoothing parameters over the training window and
// returns the fitted end state. Returns errSmoothingDiverged when no grid
// point produces a finite fit, which the engine recovers from by falling back
// to the regression model.
func fitDampedTrend(y []float64) (*dampedTrend, error) {
	if len(y) < 3 {
		return nil, errSmoothingDiverged
	}

	bestSSE := math.Inf(1)
	var best *dampedTrend
	for ai := 0; ai < alphaGridN; ai++ {
		alpha := alphaGridMin + alphaGridStep*float64(ai)
		for bi := 0; bi < betaGridN; bi++ {
			beta := betaGridMin + betaGridStep*float64(bi)
			for pi := 0; pi < phiGridN; pi++ {
				phi := phiGridMin + phiGridStep*float64(pi)

				m, sse := runDampedTrend(y, alpha, beta, phi)
				if m == nil {
					continue
				}
				if sse < bestSSE {
					bestSSE = sse
					best = m
				}
			}
		}
	}

	if best == nil || math.IsInf(bestSSE, 1) {
		return nil, errSmoothingDiverged
	}
	return best, nil
}

// runDampedTrend runs the smoothing recursion for one parameter combination
// returning the fitted model and its in-sample SSE. Returns nil when the
// recursion produced a non-finite state.
func runDampedTrend(y []float64, alpha, beta, phi float64) (*dampedTrend, float64) {
	level := y[0]
	trend := y[1] - y[0]

	residuals := make([]float64, 0, len(y)-1)
	var sse float64
	for t := 1; t < len(y); t++ {
		fitted := level + phi*trend
		resid := y[t] - fitted
		residuals = append(residuals, resid)
		sse += resid * resid

		prevLevel := level
		level = alpha*y[t] + (1.0-alpha)*(prevLevel+phi*trend)
		trend = beta*(level-prevLevel) + (1.0-beta)*phi*trend
	}

	if math.IsNaN(level) || math.IsInf(level, 0) ||
		math.IsNaN(trend) || math.IsInf(trend, 0) ||
		math.IsNaN(sse) || math.IsInf(sse, 0) {
		return nil, math.Inf(1)
	}

	return &dampedTrend{
		alpha: alpha,
		beta:  beta,
		phi:   phi,
		level: level,
		trend: trend,
		sigma: stat.PopStdDev(residuals, nil),
	}, sse
}

// Forecast returns the point estimate h steps past the end of the training
// window, h starting at 1.
func (m *dampedTrend) Forecast(h int) float64 {
	dampSum := 0.0
	phiPow := 1.0
	for i := 1; i <= h; i++ {
		phiPow *= m.phi
		dampSum += phiPow
	}
	return m.level + dampSum*m.trend
}

// Sigma returns the standard deviation of the in-sample one-step residuals.
func (m *dampedTrend) Sigma() float64 {
	return m.sigma
}
