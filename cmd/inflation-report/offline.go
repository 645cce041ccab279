package main

import (
	"context"

	"github.com/hicpstats/inflation-report/eurostat"
	"github.com/hicpstats/inflation-report/timeseries"
)

// offlineFetcher serves the bundled sample data without touching the network.
type offlineFetcher struct{}

func (offlineFetcher) FetchHICP(_ context.Context, regions []string, _ timeseries.Period) (map[string]*timeseries.Series, error) {
	return eurostat.SampleHICP(regions), nil
}

func (offlineFetcher) FetchInterestRates(_ context.Context, _ timeseries.Period) (map[string]*timeseries.Series, error) {
	return eurostat.SampleInterestRates(), nil
}
