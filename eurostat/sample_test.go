package eurostat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpstats/inflation-report/timeseries"
)

func TestSampleHICP(t *testing.T) {
	regions := []string{"AT", "DE", "EA20"}
	sample := SampleHICP(regions)
	require.Len(t, sample, 3)

	for _, geo := range regions {
		s := sample[geo]
		require.NotNil(t, s, geo)
		assert.Equal(t, sampleMonths, s.Len())
		assert.Equal(t, timeseries.Period{Year: 2023, Month: time.January}, s.First())
		assert.Equal(t, timeseries.Period{Year: 2025, Month: time.October}, s.Last())
	}

	// 2023 plateau sits well above the 2025 plateau
	at := sample["AT"]
	values := at.Values()
	assert.Greater(t, values[0], values[len(values)-1])

	// unrecognized regions reuse the euro area shape instead of failing
	other := SampleHICP([]string{"XX"})
	assert.Equal(t, sample["EA20"].Values(), other["XX"].Values())
}

func TestSampleHICPDeterministic(t *testing.T) {
	a := SampleHICP([]string{"AT"})
	b := SampleHICP([]string{"AT"})
	assert.Equal(t, a["AT"].Values(), b["AT"].Values())
}

func TestSampleInterestRates(t *testing.T) {
	rates := SampleInterestRates()
	require.Contains(t, rates, RateMainRefinancing)
	require.Contains(t, rates, RateDepositFacility)

	main := rates[RateMainRefinancing]
	deposit := rates[RateDepositFacility]
	assert.Equal(t, main.Len(), deposit.Len())
	assert.Equal(t, timeseries.Period{Year: 2000, Month: time.January}, main.First())

	// deposit facility tracks at or below the main refinancing rate
	mv := main.Values()
	dv := deposit.Values()
	for i := range mv {
		assert.LessOrEqual(t, dv[i], mv[i], "month %d", i)
	}

	// the negative rate era is represented
	v, ok := deposit.Value(timeseries.Period{Year: 2018, Month: time.January})
	require.True(t, ok)
	assert.Less(t, v, 0.0)
}
