//go:build unit

package money_test

import (
	"testing"

	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		errIs error
	}{
		{in: "15000", want: "15000.00"},
		{in: "15000.5", want: "15000.50"},
		{in: "0.01", want: "0.01"},
		{in: "0", errIs: money.ErrNonPositive},
		{in: "-10", errIs: money.ErrNonPositive},
		{in: "10.005", errIs: money.ErrTooManyDecimals},
		{in: "abc", errIs: money.ErrInvalidAmount},
		{in: "10000000000000", errIs: money.ErrAmountOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			a, err := money.ParseAmount(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, a.String())
		})
	}
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	a, err := money.NewAmount(decimal.RequireFromString("1234.56"))
	require.NoError(t, err)

	assert.Equal(t, int64(123456), a.MinorUnits())
	assert.True(t, money.FromMinorUnits(123456).Equal(a))
	assert.True(t, money.FromMinorUnits(100).LessThan(a))
	assert.False(t, a.IsZero())
	assert.True(t, money.Amount{}.IsZero())
}
