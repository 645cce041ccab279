// Package analysis computes the descriptive statistics, region comparisons,
// and extreme value summaries feeding the inflation report.
package analysis

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/hicpstats/inflation-report/timeseries"
)

var (
	ErrEmptyRange = errors.New("no observations in the requested range")
	ErrNoOverlap  = errors.New("series share no common periods")
)

// Summary holds the descriptive statistics for one region.
type Summary struct {
	Mean         float64           `json:"mean"`
	Median       float64           `json:"median"`
	Min          float64           `json:"min"`
	Max          float64           `json:"max"`
	StdDev       float64           `json:"std_dev"`
	Latest       float64           `json:"latest"`
	LatestPeriod timeseries.Period `json:"latest_period"`
}

// Statistics summarizes a series from the given period onwards.
func Statistics(s *timeseries.Series, since timeseries.Period) (Summary, error) {
	filtered := s.Since(since)
	if filtered == nil {
		return Summary{}, fmt.Errorf("since %s, %w", since, ErrEmptyRange)
	}

	values := filtered.Values()
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var stddev float64
	if len(values) > 1 {
		stddev = stat.StdDev(values, nil)
	}

	lastPeriod, lastValue := filtered.At(filtered.Len() - 1)
	return Summary{
		Mean:         stat.Mean(values, nil),
		Median:       median(sorted),
		Min:          sorted[0],
		Max:          sorted[len(sorted)-1],
		StdDev:       stddev,
		Latest:       lastValue,
		LatestPeriod: lastPeriod,
	}, nil
}

// median expects an already sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

// Difference returns a month aligned series of a minus b over their common
// periods.
func Difference(a, b *timeseries.Series) (*timeseries.Series, error) {
	bVals := make(map[timeseries.Period]float64, b.Len())
	for i := 0; i < b.Len(); i++ {
		p, v := b.At(i)
		bVals[p] = v
	}

	var periods []timeseries.Period
	var values []float64
	for i := 0; i < a.Len(); i++ {
		p, v := a.At(i)
		if bv, ok := bVals[p]; ok {
			periods = append(periods, p)
			values = append(values, v-bv)
		}
	}
	if len(periods) == 0 {
		return nil, ErrNoOverlap
	}
	return timeseries.New(periods, values)
}

// Comparison summarizes how one region's inflation relates to a benchmark.
type Comparison struct {
	AvgDifference float64 `json:"avg_difference"`
	MonthsHigher  int     `json:"months_higher"`
	Months        int     `json:"months"`
}

// Compare evaluates region against benchmark over their common periods.
func Compare(region, benchmark *timeseries.Series) (Comparison, *timeseries.Series, error) {
	diff, err := Difference(region, benchmark)
	if err != nil {
		return Comparison{}, nil, err
	}

	values := diff.Values()
	var higher int
	for _, v := range values {
		if v > 0 {
			higher++
		}
	}
	return Comparison{
		AvgDifference: stat.Mean(values, nil),
		MonthsHigher:  higher,
		Months:        len(values),
	}, diff, nil
}

// Extremes holds the highest and lowest observed rates with their periods.
type Extremes struct {
	Highest       float64           `json:"highest"`
	HighestPeriod timeseries.Period `json:"highest_period"`
	Lowest        float64           `json:"lowest"`
	LowestPeriod  timeseries.Period `json:"lowest_period"`
}

// Trends finds the peak and trough of a series.
func Trends(s *timeseries.Series) Extremes {
	maxPeriod, maxVal := s.At(0)
	minPeriod, minVal := s.At(0)
	for i := 1; i < s.Len(); i++ {
		p, v := s.At(i)
		if v > maxVal {
			maxPeriod, maxVal = p, v
		}
		if v < minVal {
			minPeriod, minVal = p, v
		}
	}
	return Extremes{
		Highest:       maxVal,
		HighestPeriod: maxPeriod,
		Lowest:        minVal,
		LowestPeriod:  minPeriod,
	}
}
