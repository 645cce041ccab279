package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpstats/inflation-report/timeseries"
)

func mustSeries(t *testing.T, start timeseries.Period, values []float64) *timeseries.Series {
	t.Helper()
	s, err := timeseries.NewContiguous(start, values)
	require.Nil(t, err)
	return s
}

func TestStatistics(t *testing.T) {
	start := timeseries.Period{Year: 2023, Month: time.January}
	s := mustSeries(t, start, []float64{2.0, 4.0, 6.0, 8.0, 10.0})

	sum, err := Statistics(s, start)
	require.Nil(t, err)

	tol := 1e-9
	assert.InDelta(t, 6.0, sum.Mean, tol)
	assert.InDelta(t, 6.0, sum.Median, tol)
	assert.InDelta(t, 2.0, sum.Min, tol)
	assert.InDelta(t, 10.0, sum.Max, tol)
	assert.InDelta(t, 3.1622776601, sum.StdDev, 1e-6)
	assert.InDelta(t, 10.0, sum.Latest, tol)
	assert.Equal(t, timeseries.Period{Year: 2023, Month: time.May}, sum.LatestPeriod)
}

func TestStatisticsSinceFilter(t *testing.T) {
	start := timeseries.Period{Year: 2023, Month: time.January}
	s := mustSeries(t, start, []float64{100.0, 100.0, 1.0, 2.0, 3.0})

	// statistics must only see observations from march onwards
	sum, err := Statistics(s, timeseries.Period{Year: 2023, Month: time.March})
	require.Nil(t, err)
	assert.InDelta(t, 2.0, sum.Mean, 1e-9)
	assert.InDelta(t, 3.0, sum.Max, 1e-9)

	_, err = Statistics(s, timeseries.Period{Year: 2030, Month: time.January})
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestStatisticsEvenMedian(t *testing.T) {
	start := timeseries.Period{Year: 2023, Month: time.January}
	s := mustSeries(t, start, []float64{1.0, 2.0, 3.0, 4.0})

	sum, err := Statistics(s, start)
	require.Nil(t, err)
	assert.InDelta(t, 2.5, sum.Median, 1e-9)
}

func TestCompare(t *testing.T) {
	region := mustSeries(t, timeseries.Period{Year: 2024, Month: time.January}, []float64{3.0, 2.5, 2.0, 2.2})
	benchmark := mustSeries(t, timeseries.Period{Year: 2024, Month: time.February}, []float64{2.0, 2.5, 2.0})

	cmp, diff, err := Compare(region, benchmark)
	require.Nil(t, err)

	// overlap is feb..apr: differences 0.5, -0.5, 0.2
	require.Equal(t, 3, diff.Len())
	assert.Equal(t, timeseries.Period{Year: 2024, Month: time.February}, diff.First())
	assert.InDelta(t, 0.5, diff.Values()[0], 1e-9)
	assert.InDelta(t, -0.5, diff.Values()[1], 1e-9)
	assert.InDelta(t, 0.2, diff.Values()[2], 1e-9)

	assert.Equal(t, 3, cmp.Months)
	assert.Equal(t, 2, cmp.MonthsHigher)
	assert.InDelta(t, 0.2/3.0, cmp.AvgDifference, 1e-9)
}

func TestCompareNoOverlap(t *testing.T) {
	a := mustSeries(t, timeseries.Period{Year: 2020, Month: time.January}, []float64{1.0, 2.0})
	b := mustSeries(t, timeseries.Period{Year: 2024, Month: time.January}, []float64{1.0, 2.0})

	_, _, err := Compare(a, b)
	assert.ErrorIs(t, err, ErrNoOverlap)
}

func TestTrends(t *testing.T) {
	s := mustSeries(t, timeseries.Period{Year: 2022, Month: time.January}, []float64{3.0, 8.5, 2.1, -0.4, 5.0})

	ext := Trends(s)
	assert.InDelta(t, 8.5, ext.Highest, 1e-9)
	assert.Equal(t, timeseries.Period{Year: 2022, Month: time.February}, ext.HighestPeriod)
	assert.InDelta(t, -0.4, ext.Lowest, 1e-9)
	assert.Equal(t, timeseries.Period{Year: 2022, Month: time.April}, ext.LowestPeriod)
}
