package forecast

import "errors"

var (
	ErrInsufficientData = errors.New("need at least 2 observations to fit a model")
	ErrInvalidSeries    = errors.New("series contains a non-finite value")
	ErrInvalidHorizon   = errors.New("horizon must be at least 1")

	// errSmoothingDiverged is recovered internally by falling back to the
	// regression model and is never surfaced to callers.
	errSmoothingDiverged = errors.New("damped trend fit did not converge")
)
