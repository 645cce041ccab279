package forecast

import (
	"github.com/hicpstats/inflation-report/timeseries"
)

// Model identifies which model produced a forecast. Reports disclose this so
// a fallback substitution is visible downstream.
type Model string

const (
	ModelPrimary  Model = "damped_trend"
	ModelFallback Model = "linear_regression"
)

// Point is a single forecast step with its prediction interval.
type Point struct {
	Period   timeseries.Period `json:"period"`
	Forecast float64           `json:"forecast"`
	Lower    float64           `json:"lower"`
	Upper    float64           `json:"upper"`
}

// Result is the output of a forecast call. It is immutable once returned.
type Result struct {
	Model   Model   `json:"model"`
	Horizon int     `json:"horizon"`
	Sigma   float64 `json:"sigma"`
	Points  []Point `json:"points"`
}
