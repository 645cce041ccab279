package eurostat

import (
	"math"
	"time"

	"github.com/hicpstats/inflation-report/timeseries"
)

// Sample data covering the API outage case. Values are deterministic so
// repeated offline runs produce identical reports.

var sampleStart = timeseries.Period{Year: 2023, Month: time.January}

const sampleMonths = 34 // 2023-01 through 2025-10

// sampleBase approximates the yearly inflation plateaus per region.
var sampleBase = map[string][3]float64{
	"AT":   {6.8, 4.2, 2.8},
	"DE":   {6.1, 3.8, 2.3},
	"EA20": {6.1, 3.8, 2.5},
}

// SampleHICP returns synthetic monthly inflation series for the requested
// regions, shaped like the recent disinflation path.
func SampleHICP(regions []string) map[string]*timeseries.Series {
	out := make(map[string]*timeseries.Series, len(regions))
	for _, geo := range regions {
		base, ok := sampleBase[geo]
		if !ok {
			base = sampleBase["EA20"]
		}
		values := make([]float64, sampleMonths)
		for i := 0; i < sampleMonths; i++ {
			year := sampleStart.AddMonths(i).Year
			level := base[0]
			switch year {
			case 2024:
				level = base[1]
			case 2025:
				level = base[2]
			}
			values[i] = level + 0.35*math.Sin(0.7*float64(i))
		}
		s, _ := timeseries.NewContiguous(sampleStart, values)
		out[geo] = s
	}
	return out
}

// ecb rate schedule breakpoints, condensed from the published policy history
var sampleRateSchedule = []struct {
	from    timeseries.Period
	main    float64
	deposit float64
}{
	{timeseries.Period{Year: 2000, Month: time.January}, 4.50, 3.50},
	{timeseries.Period{Year: 2003, Month: time.June}, 2.00, 1.00},
	{timeseries.Period{Year: 2008, Month: time.October}, 1.25, 0.50},
	{timeseries.Period{Year: 2009, Month: time.May}, 1.00, 0.25},
	{timeseries.Period{Year: 2011, Month: time.November}, 1.00, 0.25},
	{timeseries.Period{Year: 2013, Month: time.November}, 0.25, 0.00},
	{timeseries.Period{Year: 2014, Month: time.September}, 0.05, -0.20},
	{timeseries.Period{Year: 2016, Month: time.March}, 0.00, -0.40},
	{timeseries.Period{Year: 2019, Month: time.September}, 0.00, -0.50},
	{timeseries.Period{Year: 2022, Month: time.July}, 0.50, 0.00},
	{timeseries.Period{Year: 2022, Month: time.September}, 1.25, 0.75},
	{timeseries.Period{Year: 2022, Month: time.November}, 2.00, 1.50},
	{timeseries.Period{Year: 2023, Month: time.February}, 3.00, 2.50},
	{timeseries.Period{Year: 2023, Month: time.June}, 4.00, 3.50},
	{timeseries.Period{Year: 2023, Month: time.September}, 4.50, 4.00},
	{timeseries.Period{Year: 2024, Month: time.June}, 4.25, 3.75},
	{timeseries.Period{Year: 2024, Month: time.October}, 3.40, 3.25},
	{timeseries.Period{Year: 2024, Month: time.December}, 3.15, 3.00},
	{timeseries.Period{Year: 2025, Month: time.June}, 2.15, 2.00},
}

// SampleInterestRates returns synthetic ECB policy rates built from the
// condensed published schedule.
func SampleInterestRates() map[string]*timeseries.Series {
	start := timeseries.Period{Year: 2000, Month: time.January}
	end := timeseries.Period{Year: 2025, Month: time.October}

	var main, deposit []float64
	months := 0
	for p := start; p.Compare(end) <= 0; p = p.Next() {
		idx := 0
		for i, bp := range sampleRateSchedule {
			if bp.from.Compare(p) <= 0 {
				idx = i
			}
		}
		main = append(main, sampleRateSchedule[idx].main)
		deposit = append(deposit, sampleRateSchedule[idx].deposit)
		months++
	}

	mainSeries, _ := timeseries.NewContiguous(start, main)
	depositSeries, _ := timeseries.NewContiguous(start, deposit)
	return map[string]*timeseries.Series{
		RateMainRefinancing: mainSeries,
		RateDepositFacility: depositSeries,
	}
}
