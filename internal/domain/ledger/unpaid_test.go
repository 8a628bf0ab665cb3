//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"tenancy-service/internal/domain/ledger"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func months(labels ...string) []ledger.YearMonth {
	out := make([]ledger.YearMonth, len(labels))
	for i, l := range labels {
		out[i] = ledger.MustParseYearMonth(l)
	}
	return out
}

func TestUnpaidMonths(t *testing.T) {
	utc := time.UTC
	dhaka := time.FixedZone("Asia/Dhaka", 6*60*60)

	cases := []struct {
		name  string
		start time.Time
		paid  []ledger.YearMonth
		now   time.Time
		want  []string
	}{
		{
			name:  "gaps between confirmed months",
			start: time.Date(2024, 1, 15, 0, 0, 0, 0, utc),
			paid:  months("2024-01", "2024-03"),
			now:   time.Date(2024, 4, 10, 0, 0, 0, 0, utc),
			want:  []string{"2024-02", "2024-04"},
		},
		{
			name:  "start month is due on the first day",
			start: time.Date(2024, 5, 31, 23, 0, 0, 0, utc),
			now:   time.Date(2024, 5, 31, 23, 30, 0, 0, utc),
			want:  []string{"2024-05"},
		},
		{
			name:  "everything paid",
			start: time.Date(2024, 1, 1, 0, 0, 0, 0, utc),
			paid:  months("2024-02", "2024-01"),
			now:   time.Date(2024, 2, 28, 0, 0, 0, 0, utc),
			want:  []string{},
		},
		{
			name:  "crosses a year boundary",
			start: time.Date(2023, 11, 20, 0, 0, 0, 0, utc),
			paid:  months("2023-12"),
			now:   time.Date(2024, 2, 1, 0, 0, 0, 0, utc),
			want:  []string{"2023-11", "2024-01", "2024-02"},
		},
		{
			name:  "paid months outside the window are ignored",
			start: time.Date(2024, 3, 1, 0, 0, 0, 0, utc),
			paid:  months("2023-12", "2024-09"),
			now:   time.Date(2024, 4, 1, 0, 0, 0, 0, utc),
			want:  []string{"2024-03", "2024-04"},
		},
		{
			name:  "start after now",
			start: time.Date(2024, 6, 1, 0, 0, 0, 0, utc),
			now:   time.Date(2024, 5, 1, 0, 0, 0, 0, utc),
			want:  []string{},
		},
		{
			name:  "start is read in the clock's zone",
			start: time.Date(2024, 1, 31, 20, 0, 0, 0, utc),
			now:   time.Date(2024, 2, 10, 0, 0, 0, 0, dhaka),
			want:  []string{"2024-02"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ledger.UnpaidMonths(c.start, c.paid, c.now)

			require.NotNil(t, got)
			if diff := cmp.Diff(c.want, ledger.Labels(got)); diff != "" {
				t.Errorf("unpaid months mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnpaidMonthsGrowsWithTime(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	paid := months("2024-01")

	before := ledger.UnpaidMonths(start, paid, time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC))
	after := ledger.UnpaidMonths(start, paid, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, []string{"2024-02"}, ledger.Labels(before))
	assert.Equal(t, []string{"2024-02", "2024-03"}, ledger.Labels(after))
}

func TestIsDue(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	paid := months("2024-01", "2024-03")

	assert.True(t, ledger.IsDue(start, paid, now, ledger.MustParseYearMonth("2024-02")))
	assert.False(t, ledger.IsDue(start, paid, now, ledger.MustParseYearMonth("2024-03")))
	assert.False(t, ledger.IsDue(start, paid, now, ledger.MustParseYearMonth("2024-05")))
	assert.False(t, ledger.IsDue(start, paid, now, ledger.MustParseYearMonth("2023-12")))
}
