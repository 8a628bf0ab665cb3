//go:build unit

package payment_test

import (
	"testing"
	"time"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p, err := builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) {
			b.TransactionRef = "  TXN-1  "
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Nil(t, p.ConfirmedAt())
		assert.Equal(t, "TXN-1", p.TransactionRef())
		assert.Equal(t, "2024-01", p.MonthOf().String())
		assert.Equal(t, "15000.00", p.Amount().String())
	})

	cases := []struct {
		name   string
		mutate func(*builder.PaymentBuilder)
		errIs  error
	}{
		{name: "nagad", mutate: func(b *builder.PaymentBuilder) { b.Method = "nagad" }},
		{name: "bank transfer", mutate: func(b *builder.PaymentBuilder) { b.Method = "bankTransfer" }},
		{name: "cash", mutate: func(b *builder.PaymentBuilder) { b.Method = "cash" }, errIs: payment.ErrInvalidMethod},
		{name: "blank transaction", mutate: func(b *builder.PaymentBuilder) { b.TransactionRef = "   " }, errIs: payment.ErrInvalidTransaction},
		{name: "long transaction", mutate: func(b *builder.PaymentBuilder) {
			b.TransactionRef = "TXN-0123456789012345678901234567890123456789012345678901234567890"
		}, errIs: payment.ErrInvalidTransaction},
		{name: "negative amount", mutate: func(b *builder.PaymentBuilder) { b.Amount = "-1" }, errIs: money.ErrNonPositive},
		{name: "bad month", mutate: func(b *builder.PaymentBuilder) { b.MonthOf = "2024-13" }, errIs: ledger.ErrInvalidMonth},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewPaymentBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestPaymentDecide(t *testing.T) {
	now := time.Date(2024, 2, 6, 9, 0, 0, 0, time.UTC)
	ownerID, payerID := uuid.New(), uuid.New()
	newPayment := func() *payment.Payment {
		return builder.NewPaymentBuilder().With(func(b *builder.PaymentBuilder) {
			b.OwnerID = ownerID
			b.PayerID = payerID
		}).MustBuildDomain()
	}

	t.Run("confirm stamps the time", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.Decide(ownerID, payment.DecisionConfirm, now))
		assert.True(t, p.IsConfirmed())
		require.NotNil(t, p.ConfirmedAt())
		assert.Equal(t, now, *p.ConfirmedAt())
	})

	t.Run("decline leaves no confirmation time", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.Decide(ownerID, payment.DecisionDecline, now))
		assert.Equal(t, payment.StatusDeclined, p.Status())
		assert.Nil(t, p.ConfirmedAt())
	})

	t.Run("payer cannot approve", func(t *testing.T) {
		p := newPayment()
		err := p.Decide(payerID, payment.DecisionConfirm, now)
		require.ErrorIs(t, err, payment.ErrNotPaymentApprover)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("decided payments stay decided", func(t *testing.T) {
		p := newPayment()
		require.NoError(t, p.Decide(ownerID, payment.DecisionDecline, now))
		require.ErrorIs(t, p.Decide(ownerID, payment.DecisionConfirm, now), payment.ErrNotPending)
	})

	t.Run("visibility", func(t *testing.T) {
		p := newPayment()
		assert.True(t, p.IsVisibleTo(ownerID))
		assert.True(t, p.IsVisibleTo(payerID))
		assert.False(t, p.IsVisibleTo(uuid.New()))
	})
}

func TestNewDecision(t *testing.T) {
	d, err := payment.NewDecision("confirm")
	require.NoError(t, err)
	assert.Equal(t, payment.DecisionConfirm, d)

	_, err = payment.NewDecision("approve")
	require.ErrorIs(t, err, payment.ErrInvalidDecision)
}
