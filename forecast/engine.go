// Package forecast implements the inflation forecasting engine. A historical
// monthly series is fit with a damped trend exponential smoothing model when
// there is enough usable history, or an ordinary least squares trend line
// otherwise, and the result carries symmetric prediction intervals that widen
// with horizon distance.
package forecast

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hicpstats/inflation-report/timeseries"
)

// fittedModel produces a point estimate for any future step offset and the
// residual standard deviation used for interval width. Fitted models are
// call-local and discarded after use.
type fittedModel interface {
	Forecast(h int) float64
	Sigma() float64
}

// Engine produces forecasts from historical series. An Engine holds only
// configuration, so a single instance may be shared across goroutines.
type Engine struct {
	opt *Options
	z   float64
}

// New creates an Engine with the provided options. If no options are provided
// a default is used.
func New(opt *Options) (*Engine, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid engine options, %w", err)
	}
	return &Engine{
		opt: opt,
		z:   distuv.UnitNormal.Quantile(0.5 + opt.ConfidenceLevel/2.0),
	}, nil
}

// selectModel picks the model for a series. The damped trend model needs at
// least MinPrimaryLength observations and non-degenerate variance; anything
// shorter or constant takes the regression path. A constant series therefore
// always reports ModelFallback, with a zero residual sigma and zero-width
// intervals.
func (e *Engine) selectModel(values []float64) Model {
	if len(values) < e.opt.MinPrimaryLength {
		return ModelFallback
	}
	if stat.Variance(values, nil) == 0.0 {
		return ModelFallback
	}
	return ModelPrimary
}

// Forecast fits a model to the series and returns point estimates with
// prediction intervals for the given number of future months. The series is
// only read, never mutated, and no state is retained between calls.
//
// Short series are not an error: the engine degrades to the regression model
// down to 2 observations. Below that no model can be fit and
// ErrInsufficientData is returned.
func (e *Engine) Forecast(series *timeseries.Series, horizon int) (*Result, error) {
	if horizon < 1 {
		return nil, fmt.Errorf("got %d, %w", horizon, ErrInvalidHorizon)
	}
	if series.Len() < 2 {
		return nil, fmt.Errorf("got %d observations, %w", series.Len(), ErrInsufficientData)
	}
	values := series.Values()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("at index %d, %w", i, ErrInvalidSeries)
		}
	}

	used := e.selectModel(values)

	var fitted fittedModel
	if used == ModelPrimary {
		m, err := fitDampedTrend(tailValues(values, e.opt.TrainingWindowPrimary))
		if err != nil {
			// numerical instability in the preferred model is self-healing;
			// record the substitution instead of surfacing an error
			used = ModelFallback
		} else {
			fitted = m
		}
	}
	if used == ModelFallback {
		m, err := fitLinearTrend(tailValues(values, e.opt.TrainingWindowFallback))
		if err != nil {
			return nil, err
		}
		fitted = m
	}

	sigma := fitted.Sigma()
	last := series.Last()
	points := make([]Point, 0, horizon)
	for h := 1; h <= horizon; h++ {
		point := fitted.Forecast(h)
		halfwidth := e.z * sigma * widening(h)
		points = append(points, Point{
			Period:   last.AddMonths(h),
			Forecast: point,
			Lower:    point - halfwidth,
			Upper:    point + halfwidth,
		})
	}

	return &Result{
		Model:   used,
		Horizon: horizon,
		Sigma:   sigma,
		Points:  points,
	}, nil
}

// widening scales the interval half-width with horizon distance. sqrt(h)
// follows random walk error compounding and equals 1 at the first step.
func widening(h int) float64 {
	return math.Sqrt(float64(h))
}

func tailValues(values []float64, n int) []float64 {
	if n >= len(values) {
		return values
	}
	return values[len(values)-n:]
}
