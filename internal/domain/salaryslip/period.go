package salaryslip

import (
	"fmt"
	"time"
)

// Period is a calendar year-month over which attendance is aggregated
// and pay is computed.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a strict "YYYY-MM" period string. Out-of-range
// months ("2025-13") and loose forms ("2025-1") are rejected.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Bounds returns the half-open date interval [start, end) covering the
// period, suitable for range predicates on the attendance date column.
func (p Period) Bounds() (start, end time.Time) {
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Previous returns the period one month earlier.
func (p Period) Previous() Period {
	start, _ := p.Bounds()
	prev := start.AddDate(0, -1, 0)
	return Period{Year: prev.Year(), Month: prev.Month()}
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}
