package forecast

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitDampedTrendLinearData(t *testing.T) {
	// y = 1 + 0.5*t: level should track the last observation and the damped
	// one step forecast should land near the true continuation
	y := make([]float64, 24)
	for i := range y {
		y[i] = 1.0 + 0.5*float64(i)
	}

	m, err := fitDampedTrend(y)
	require.Nil(t, err)

	next := 1.0 + 0.5*24.0
	assert.InDelta(t, next, m.Forecast(1), 0.5)
	assert.InDelta(t, y[23], m.level, 1.0)
	assert.GreaterOrEqual(t, m.Sigma(), 0.0)
}

func TestDampedTrendBoundedExtrapolation(t *testing.T) {
	y := make([]float64, 24)
	for i := range y {
		y[i] = 2.0 + 0.3*float64(i)
	}
	m, err := fitDampedTrend(y)
	require.Nil(t, err)

	// trend contribution is a geometric sum capped at phi/(1-phi)*trend, so
	// far horizon forecasts must stay below the undamped linear continuation
	limit := m.level + m.phi/(1.0-m.phi)*math.Abs(m.trend)
	for h := 1; h <= 120; h++ {
		assert.LessOrEqual(t, m.Forecast(h), limit+1e-9, "h=%d", h)
	}

	// successive increments shrink under damping
	prevStep := math.Inf(1)
	for h := 1; h <= 24; h++ {
		step := m.Forecast(h+1) - m.Forecast(h)
		assert.LessOrEqual(t, step, prevStep+1e-12, "h=%d", h)
		prevStep = step
	}
}

func TestFitDampedTrendDeterminism(t *testing.T) {
	y := make([]float64, 24)
	for i := range y {
		y[i] = 3.0 - 0.2*float64(i) + 0.4*math.Sin(float64(i))
	}

	first, err := fitDampedTrend(y)
	require.Nil(t, err)
	second, err := fitDampedTrend(y)
	require.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestFitDampedTrendTooShort(t *testing.T) {
	_, err := fitDampedTrend([]float64{1.0, 2.0})
	assert.ErrorIs(t, err, errSmoothingDiverged)
}

func TestDampedTrendParametersInGrid(t *testing.T) {
	y := make([]float64, 24)
	for i := range y {
		y[i] = 5.0 + 0.1*float64(i) + 0.2*math.Cos(float64(i))
	}
	m, err := fitDampedTrend(y)
	require.Nil(t, err)

	assert.GreaterOrEqual(t, m.alpha, alphaGridMin)
	assert.LessOrEqual(t, m.alpha, alphaGridMin+alphaGridStep*float64(alphaGridN-1)+1e-12)
	assert.GreaterOrEqual(t, m.beta, betaGridMin)
	assert.GreaterOrEqual(t, m.phi, phiGridMin)
	assert.Less(t, m.phi, 1.0)
}
