package forecast

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWindow     = errors.New("training windows must be at least 2")
	ErrInvalidMinPrimary = errors.New("minimum primary length must be at least 3")
	ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")
)

const (
	DefaultTrainingWindowPrimary  = 24
	DefaultTrainingWindowFallback = 12
	DefaultMinPrimaryLength       = 24
	DefaultConfidenceLevel        = 0.95
)

// Options controls model selection, training window sizes, and the width of
// the prediction intervals.
type Options struct {
	// TrainingWindowPrimary is the number of trailing observations the damped
	// trend model trains on.
	TrainingWindowPrimary int

	// TrainingWindowFallback is the number of trailing observations the
	// regression model trains on.
	TrainingWindowFallback int

	// MinPrimaryLength is the minimum series length required before the damped
	// trend model is considered.
	MinPrimaryLength int

	// ConfidenceLevel is the two-sided coverage of the prediction intervals,
	// interpreted against the normal quantile.
	ConfidenceLevel float64
}

// NewDefaultOptions returns the standard engine configuration.
func NewDefaultOptions() *Options {
	return &Options{
		TrainingWindowPrimary:  DefaultTrainingWindowPrimary,
		TrainingWindowFallback: DefaultTrainingWindowFallback,
		MinPrimaryLength:       DefaultMinPrimaryLength,
		ConfidenceLevel:        DefaultConfidenceLevel,
	}
}

// Validate checks the options falling back to a default if nil.
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if o.TrainingWindowPrimary < 2 || o.TrainingWindowFallback < 2 {
		return nil, fmt.Errorf(
			"primary %d, fallback %d, %w",
			o.TrainingWindowPrimary, o.TrainingWindowFallback, ErrInvalidWindow,
		)
	}
	if o.MinPrimaryLength < 3 {
		return nil, fmt.Errorf("got %d, %w", o.MinPrimaryLength, ErrInvalidMinPrimary)
	}
	if o.ConfidenceLevel <= 0.0 || o.ConfidenceLevel >= 1.0 {
		return nil, fmt.Errorf("got %f, %w", o.ConfidenceLevel, ErrInvalidConfidence)
	}
	return o, nil
}
