// Package eurostat retrieves HICP inflation series and ECB interest rates
// from the Eurostat dissemination API and falls back to built-in sample data
// when the service is unreachable.
package eurostat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"github.com/hicpstats/inflation-report/timeseries"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNoSeriesData     = errors.New("no usable observations in response")
)

const (
	// Eurostat dataset codes
	datasetHICP  = "prc_hicp_manr" // HICP monthly data, annual rate of change
	datasetRates = "irt_st_m"      // short-term interest rates, monthly

	coicopAllItems = "CP00"

	// ECB rate types within irt_st_m
	RateMainRefinancing = "main_refinancing"
	RateDepositFacility = "deposit_facility"
)

// Client fetches series from the Eurostat dissemination API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Eurostat client. An empty baseURL selects the public
// API endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://ec.europa.eu/eurostat/api/dissemination/statistics/1.0/data"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchHICP retrieves the all-items HICP annual rate of change for the given
// geo codes from the given period onward, keyed by the requested code. When
// EA20 is requested the euro area series transparently falls back to EA19 for
// responses that only carry the older aggregate.
func (c *Client) FetchHICP(ctx context.Context, regions []string, since timeseries.Period) (map[string]*timeseries.Series, error) {
	query := url.Values{}
	query.Set("format", "JSON")
	query.Set("lang", "EN")
	query.Set("coicop", coicopAllItems)
	query.Set("sinceTimePeriod", since.String())
	wantEuroArea := false
	for _, geo := range regions {
		query.Add("geo", geo)
		if geo == "EA20" {
			wantEuroArea = true
		}
	}
	if wantEuroArea {
		query.Add("geo", "EA19")
	}

	ds, err := c.fetch(ctx, datasetHICP, query)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*timeseries.Series, len(regions))
	for _, geo := range regions {
		s, err := ds.series(map[string]string{"coicop": coicopAllItems, "geo": geo}, since)
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			return nil, fmt.Errorf("geo %s, %w", geo, err)
		}
		if s == nil && geo == "EA20" {
			s, _ = ds.series(map[string]string{"coicop": coicopAllItems, "geo": "EA19"}, since)
		}
		if s == nil {
			continue
		}
		out[geo] = s
	}
	if len(out) == 0 {
		return nil, ErrNoSeriesData
	}
	return out, nil
}

// FetchInterestRates retrieves the ECB main refinancing and deposit facility
// rates for the euro area, keyed by rate name.
func (c *Client) FetchInterestRates(ctx context.Context, since timeseries.Period) (map[string]*timeseries.Series, error) {
	query := url.Values{}
	query.Set("format", "JSON")
	query.Set("lang", "EN")
	query.Set("geo", "EA")
	query.Add("int_rt", "MRR_RT")
	query.Add("int_rt", "DFR")
	query.Set("sinceTimePeriod", since.String())

	ds, err := c.fetch(ctx, datasetRates, query)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*timeseries.Series, 2)
	for code, name := range map[string]string{
		"MRR_RT": RateMainRefinancing,
		"DFR":    RateDepositFacility,
	} {
		s, err := ds.series(map[string]string{"geo": "EA", "int_rt": code}, since)
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			return nil, fmt.Errorf("int_rt %s, %w", code, err)
		}
		if s != nil {
			out[name] = s
		}
	}
	if len(out) == 0 {
		return nil, ErrNoSeriesData
	}
	return out, nil
}

func (c *Client) fetch(ctx context.Context, datasetCode string, query url.Values) (*dataset, error) {
	u := fmt.Sprintf("%s/%s?%s", c.baseURL, datasetCode, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build request for %s, %w", datasetCode, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch %s, %w", datasetCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s returned %d, %w", datasetCode, resp.StatusCode, ErrUnexpectedStatus)
	}

	var ds dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return nil, fmt.Errorf("unable to decode %s, %w", datasetCode, err)
	}
	return &ds, nil
}
