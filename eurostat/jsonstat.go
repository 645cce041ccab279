package eurostat

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/hicpstats/inflation-report/timeseries"
)

var (
	ErrMalformedDataset = errors.New("malformed JSON-stat dataset")
	ErrUnknownDimension = errors.New("dimension not present in dataset")
	ErrUnknownCategory  = errors.New("category not present in dimension")
)

// dataset is the subset of a JSON-stat 2.0 response needed to reassemble
// per-category monthly series. Values are keyed by the flattened row-major
// cell index; missing cells are simply absent.
type dataset struct {
	ID        []string             `json:"id"`
	Size      []int                `json:"size"`
	Value     map[string]float64   `json:"value"`
	Dimension map[string]dimension `json:"dimension"`
}

type dimension struct {
	Category category `json:"category"`
}

type category struct {
	Index map[string]int    `json:"index"`
	Label map[string]string `json:"label"`
}

func (d *dataset) validate() error {
	if len(d.ID) == 0 || len(d.ID) != len(d.Size) {
		return fmt.Errorf("%d dimension ids with %d sizes, %w", len(d.ID), len(d.Size), ErrMalformedDataset)
	}
	for _, id := range d.ID {
		if _, ok := d.Dimension[id]; !ok {
			return fmt.Errorf("%q, %w", id, ErrUnknownDimension)
		}
	}
	return nil
}

// categories returns the codes of a dimension ordered by category index.
func (d *dataset) categories(dim string) ([]string, error) {
	dimEntry, ok := d.Dimension[dim]
	if !ok {
		return nil, fmt.Errorf("%q, %w", dim, ErrUnknownDimension)
	}
	codes := make([]string, 0, len(dimEntry.Category.Index))
	for code := range dimEntry.Category.Index {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return dimEntry.Category.Index[codes[i]] < dimEntry.Category.Index[codes[j]]
	})
	return codes, nil
}

// series reassembles the monthly series for one combination of fixed
// dimension categories, iterating the time dimension. Cells absent from the
// value map and time codes that are not year-months are skipped. Returns nil
// when no usable observation exists for the combination.
func (d *dataset) series(fixed map[string]string, since timeseries.Period) (*timeseries.Series, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	// row-major strides, last dimension fastest
	strides := make([]int, len(d.Size))
	stride := 1
	for i := len(d.Size) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= d.Size[i]
	}

	base := 0
	timeAxis := -1
	for i, id := range d.ID {
		if id == "time" {
			timeAxis = i
			continue
		}
		code, ok := fixed[id]
		if !ok {
			// unpinned single-size dimension, e.g. freq or unit
			continue
		}
		idx, ok := d.Dimension[id].Category.Index[code]
		if !ok {
			return nil, fmt.Errorf("%s=%q, %w", id, code, ErrUnknownCategory)
		}
		base += idx * strides[i]
	}
	if timeAxis < 0 {
		return nil, fmt.Errorf("no time dimension, %w", ErrMalformedDataset)
	}

	timeCodes, err := d.categories("time")
	if err != nil {
		return nil, err
	}

	var periods []timeseries.Period
	var values []float64
	for _, code := range timeCodes {
		p, err := timeseries.ParsePeriod(code)
		if err != nil {
			continue
		}
		if p.Before(since) {
			continue
		}
		pos := base + d.Dimension["time"].Category.Index[code]*strides[timeAxis]
		v, ok := d.Value[strconv.Itoa(pos)]
		if !ok {
			continue
		}
		periods = append(periods, p)
		values = append(values, v)
	}
	if len(periods) == 0 {
		return nil, nil
	}
	return timeseries.New(periods, values)
}
