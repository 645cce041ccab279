// Package timeseries provides the monthly series type shared by the data,
// analysis, and forecasting layers.
package timeseries

import (
	"errors"
	"fmt"
)

var (
	ErrNoObservations     = errors.New("no observations")
	ErrSeriesLenMismatch  = errors.New("periods have a different length than values")
	ErrNonMonotonicPeriod = errors.New("periods are not strictly increasing")
)

// Series is an ordered monthly time series with strictly increasing periods,
// enforced at construction. Values are not inspected here; cleaning missing
// or non-finite observations is the data layer's job.
type Series struct {
	periods []Period
	values  []float64
}

// New builds a series from parallel period and value slices. The input is
// copied so the caller retains ownership of its slices.
func New(periods []Period, values []float64) (*Series, error) {
	if len(values) == 0 {
		return nil, ErrNoObservations
	}
	if len(periods) != len(values) {
		return nil, fmt.Errorf(
			"got %d periods with %d values, %w",
			len(periods), len(values), ErrSeriesLenMismatch,
		)
	}
	for i := 1; i < len(periods); i++ {
		if periods[i].Compare(periods[i-1]) <= 0 {
			return nil, fmt.Errorf("at index %d, %w", i, ErrNonMonotonicPeriod)
		}
	}

	p := make([]Period, len(periods))
	v := make([]float64, len(values))
	copy(p, periods)
	copy(v, values)
	return &Series{periods: p, values: v}, nil
}

// NewContiguous builds a series of consecutive months starting at the given period.
func NewContiguous(start Period, values []float64) (*Series, error) {
	periods := make([]Period, len(values))
	for i := range values {
		periods[i] = start.AddMonths(i)
	}
	return New(periods, values)
}

// Len returns the number of observations.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// At returns the observation at index i.
func (s *Series) At(i int) (Period, float64) {
	return s.periods[i], s.values[i]
}

// Value returns the observation for the given period.
func (s *Series) Value(p Period) (float64, bool) {
	for i, sp := range s.periods {
		if sp == p {
			return s.values[i], true
		}
	}
	return 0, false
}

// Periods returns a copy of the period axis.
func (s *Series) Periods() []Period {
	p := make([]Period, len(s.periods))
	copy(p, s.periods)
	return p
}

// Values returns a copy of the observed values.
func (s *Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// First returns the earliest period in the series.
func (s *Series) First() Period {
	return s.periods[0]
}

// Last returns the most recent period in the series.
func (s *Series) Last() Period {
	return s.periods[len(s.periods)-1]
}

// Tail returns a new series holding the last n observations. If n is larger
// than the series the whole series is returned.
func (s *Series) Tail(n int) *Series {
	if n >= len(s.values) {
		return s.Copy()
	}
	start := len(s.values) - n
	t, _ := New(s.periods[start:], s.values[start:])
	return t
}

// Since returns a new series holding observations at or after the given
// period. Returns nil when nothing remains.
func (s *Series) Since(p Period) *Series {
	for i, sp := range s.periods {
		if sp.Compare(p) >= 0 {
			t, _ := New(s.periods[i:], s.values[i:])
			return t
		}
	}
	return nil
}

// Copy returns a deep copy of the series.
func (s *Series) Copy() *Series {
	t, _ := New(s.periods, s.values)
	return t
}
