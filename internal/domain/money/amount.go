package money

import (
	"tenancy-service/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const scale = 2

var (
	ErrInvalidAmount    = errs.Validation("amount must be a decimal number")
	ErrNonPositive      = errs.Validation("amount must be greater than zero")
	ErrTooManyDecimals  = errs.Validation("amount must have at most two decimal places")
	ErrAmountOutOfRange = errs.Validation("amount is too large")
)

// maxAmount keeps minor units well inside int64.
var maxAmount = decimal.New(1, 13)

// Amount is a positive sum of money in the single supported currency.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrNonPositive
	}
	if !d.Equal(d.Round(scale)) {
		return Amount{}, ErrTooManyDecimals
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return Amount{}, ErrAmountOutOfRange
	}
	return Amount{value: d}, nil
}

func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	return NewAmount(d)
}

// FromMinorUnits rebuilds an amount persisted as an integer count of cents.
func FromMinorUnits(units int64) Amount {
	return Amount{value: decimal.New(units, -scale)}
}

func (a Amount) MinorUnits() int64        { return a.value.Shift(scale).IntPart() }
func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) String() string           { return a.value.StringFixed(scale) }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) Equal(o Amount) bool      { return a.value.Equal(o.value) }
func (a Amount) LessThan(o Amount) bool   { return a.value.LessThan(o.value) }
