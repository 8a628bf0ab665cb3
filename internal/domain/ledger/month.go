package ledger

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"tenancy-service/internal/pkg/errs"
)

const labelLayout = "2006-01"

var (
	ErrInvalidMonth = errs.Validation("month must be formatted as YYYY-MM")

	monthLabel = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)
)

// YearMonth is a calendar month without a day or timezone.
type YearMonth struct {
	year  int
	month time.Month
}

func NewYearMonth(year int, month time.Month) (YearMonth, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return YearMonth{}, ErrInvalidMonth
	}
	return YearMonth{year: year, month: month}, nil
}

func ParseYearMonth(s string) (YearMonth, error) {
	m := monthLabel.FindStringSubmatch(s)
	if m == nil {
		return YearMonth{}, ErrInvalidMonth
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return NewYearMonth(year, time.Month(month))
}

func MustParseYearMonth(s string) YearMonth {
	ym, err := ParseYearMonth(s)
	if err != nil {
		panic(fmt.Sprintf("ledger: invalid month label %q", s))
	}
	return ym
}

// MonthOf takes the month in t's own location.
func MonthOf(t time.Time) YearMonth {
	return YearMonth{year: t.Year(), month: t.Month()}
}

func (m YearMonth) Year() int               { return m.year }
func (m YearMonth) Month() time.Month       { return m.month }
func (m YearMonth) IsZero() bool            { return m.year == 0 }
func (m YearMonth) String() string          { return fmt.Sprintf("%04d-%02d", m.year, int(m.month)) }
func (m YearMonth) Before(o YearMonth) bool { return m.index() < o.index() }
func (m YearMonth) After(o YearMonth) bool  { return m.index() > o.index() }

func (m YearMonth) AddMonths(n int) YearMonth {
	idx := m.index() + n
	return YearMonth{year: idx / 12, month: time.Month(idx%12 + 1)}
}

// FirstDay returns midnight of the first day of the month in loc.
func (m YearMonth) FirstDay(loc *time.Location) time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, loc)
}

func (m YearMonth) index() int {
	return m.year*12 + int(m.month) - 1
}

// MonthsBetween is the signed number of month steps from a to b.
func MonthsBetween(a, b YearMonth) int {
	return b.index() - a.index()
}

func (m YearMonth) MarshalText() ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

func (m *YearMonth) UnmarshalText(b []byte) error {
	ym, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*m = ym
	return nil
}

func Labels(months []YearMonth) []string {
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return out
}

func Contains(months []YearMonth, target YearMonth) bool {
	for _, m := range months {
		if m == target {
			return true
		}
	}
	return false
}
