package eurostat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hicpstats/inflation-report/timeseries"
)

// hicpFixture is a trimmed prc_hicp_manr JSON-stat response: three regions
// over four months with one missing cell for Germany in 2023-03.
const hicpFixture = `{
	"version": "2.0",
	"class": "dataset",
	"id": ["freq", "unit", "coicop", "geo", "time"],
	"size": [1, 1, 1, 3, 4],
	"dimension": {
		"freq": {"category": {"index": {"M": 0}}},
		"unit": {"category": {"index": {"RCH_A": 0}}},
		"coicop": {"category": {"index": {"CP00": 0}}},
		"geo": {"category": {
			"index": {"AT": 0, "DE": 1, "EA19": 2},
			"label": {"AT": "Austria", "DE": "Germany", "EA19": "Euro area - 19 countries"}
		}},
		"time": {"category": {"index": {"2023-01": 0, "2023-02": 1, "2023-03": 2, "2023-04": 3}}}
	},
	"value": {
		"0": 11.2, "1": 11.0, "2": 9.2, "3": 9.7,
		"4": 8.7, "5": 8.7, "7": 7.2,
		"8": 8.6, "9": 8.5, "10": 6.9, "11": 7.0
	}
}`

const ratesFixture = `{
	"version": "2.0",
	"class": "dataset",
	"id": ["freq", "int_rt", "geo", "time"],
	"size": [1, 2, 1, 3],
	"dimension": {
		"freq": {"category": {"index": {"M": 0}}},
		"int_rt": {"category": {"index": {"MRR_RT": 0, "DFR": 1}}},
		"geo": {"category": {"index": {"EA": 0}}},
		"time": {"category": {"index": {"2024-01": 0, "2024-02": 1, "2024-03": 2}}}
	},
	"value": {
		"0": 4.5, "1": 4.5, "2": 4.5,
		"3": 4.0, "4": 4.0, "5": 4.0
	}
}`

func newFixtureServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetchHICP(t *testing.T) {
	srv := newFixtureServer(t, hicpFixture)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	since := timeseries.Period{Year: 2023, Month: time.January}

	series, err := c.FetchHICP(context.Background(), []string{"AT", "DE"}, since)
	require.Nil(t, err)
	require.Contains(t, series, "AT")
	require.Contains(t, series, "DE")

	at := series["AT"]
	assert.Equal(t, 4, at.Len())
	assert.Equal(t, since, at.First())
	assert.Equal(t, []float64{11.2, 11.0, 9.2, 9.7}, at.Values())

	// the missing march cell for DE is skipped, not zero filled
	de := series["DE"]
	assert.Equal(t, 3, de.Len())
	assert.Equal(t, []float64{8.7, 8.7, 7.2}, de.Values())
	assert.Equal(t, timeseries.Period{Year: 2023, Month: time.April}, de.Last())
}

func TestFetchHICPEuroAreaFallback(t *testing.T) {
	srv := newFixtureServer(t, hicpFixture)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	since := timeseries.Period{Year: 2023, Month: time.January}

	// the fixture only carries EA19; a request for EA20 must fall back to it
	series, err := c.FetchHICP(context.Background(), []string{"EA20"}, since)
	require.Nil(t, err)
	require.Contains(t, series, "EA20")
	assert.Equal(t, []float64{8.6, 8.5, 6.9, 7.0}, series["EA20"].Values())
}

func TestFetchHICPSinceFilter(t *testing.T) {
	srv := newFixtureServer(t, hicpFixture)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	since := timeseries.Period{Year: 2023, Month: time.March}

	series, err := c.FetchHICP(context.Background(), []string{"AT"}, since)
	require.Nil(t, err)
	assert.Equal(t, []float64{9.2, 9.7}, series["AT"].Values())
}

func TestFetchInterestRates(t *testing.T) {
	srv := newFixtureServer(t, ratesFixture)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	since := timeseries.Period{Year: 2024, Month: time.January}

	rates, err := c.FetchInterestRates(context.Background(), since)
	require.Nil(t, err)
	require.Contains(t, rates, RateMainRefinancing)
	require.Contains(t, rates, RateDepositFacility)
	assert.Equal(t, []float64{4.5, 4.5, 4.5}, rates[RateMainRefinancing].Values())
	assert.Equal(t, []float64{4.0, 4.0, 4.0}, rates[RateDepositFacility].Values())
}

func TestFetchHICPServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchHICP(context.Background(), []string{"AT"}, timeseries.Period{Year: 2023, Month: time.January})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestFetchHICPNoUsableRegions(t *testing.T) {
	srv := newFixtureServer(t, hicpFixture)
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchHICP(context.Background(), []string{"FR"}, timeseries.Period{Year: 2023, Month: time.January})
	assert.ErrorIs(t, err, ErrNoSeriesData)
}

func TestRegionName(t *testing.T) {
	assert.Equal(t, "Österreich", RegionName("AT"))
	assert.Equal(t, "Eurozone", RegionName("EA20"))
	assert.Equal(t, "XX", RegionName("XX"))
}
