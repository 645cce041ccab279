package timeseries

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriodFormat = errors.New("period must be formatted as YYYY-MM")

// Period identifies a single calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a period from its YYYY-MM string form.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%q, %w", s, ErrInvalidPeriodFormat)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Time returns the first instant of the period in UTC.
func (p Period) Time() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the period n months after p. Negative n steps backwards.
func (p Period) AddMonths(n int) Period {
	months := p.Year*12 + int(p.Month) - 1 + n
	return Period{
		Year:  months / 12,
		Month: time.Month(months%12 + 1),
	}
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	return p.AddMonths(1)
}

// Compare returns -1, 0, or 1 depending on the ordering of p relative to other.
func (p Period) Compare(other Period) int {
	a := p.Year*12 + int(p.Month)
	b := other.Year*12 + int(other.Month)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether p is strictly earlier than other.
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// MarshalJSON encodes the period as its YYYY-MM string form.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON decodes a period from its YYYY-MM string form.
func (p *Period) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("%s, %w", b, ErrInvalidPeriodFormat)
	}
	parsed, err := ParsePeriod(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
