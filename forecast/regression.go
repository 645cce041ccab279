package forecast

import (
	"gonum.org/v1/gonum/stat"
)

// linearTrend is an ordinary least squares fit of value against integer time
// index 0..n-1. It is the designed degradation path for series too short or
// too degenerate for the damped trend model.
type linearTrend struct {
	slope     float64
	intercept float64
	n         int
	sigma     float64
}

// fitLinearTrend fits the regression over the training window. At least 2
// observations are required since a single point determines no line.
func fitLinearTrend(y []float64) (*linearTrend, error) {
	if len(y) < 2 {
		return nil, ErrInsufficientData
	}

	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)

	residuals := make([]float64, len(y))
	for i := range y {
		residuals[i] = y[i] - (intercept + slope*x[i])
	}

	return &linearTrend{
		slope:     slope,
		intercept: intercept,
		n:         len(y),
		sigma:     stat.PopStdDev(residuals, nil),
	}, nil
}

// Forecast returns the point estimate h steps past the end of the training
// window, h starting at 1.
func (m *linearTrend) Forecast(h int) float64 {
	return m.intercept + m.slope*float64(m.n-1+h)
}

// Sigma returns the standard deviation of the in-sample residuals.
func (m *linearTrend) Sigma() float64 {
	return m.sigma
}
