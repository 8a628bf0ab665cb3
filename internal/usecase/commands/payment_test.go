//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctx    context.Context
	f      *fixture
	cmds   commands.PaymentCommands
	tenant *user.User
	apt    *apartment.Apartment
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.f = newFixture(time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC))
	s.cmds = commands.NewPaymentCommands(s.f.store, s.f.clock)
	s.tenant = s.f.tenant("payer@example.com")
	s.apt = s.f.allottedApartment(s.T(), s.tenant, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) input(month string) commands.SubmitPaymentInput {
	return commands.SubmitPaymentInput{
		ApartmentID:    s.apt.ID(),
		PayerID:        s.tenant.ID(),
		Amount:         "15000.00",
		Method:         "bkash",
		TransactionRef: "TXN-" + month,
		MonthOf:        month,
	}
}

func (s *PaymentCommandsTestSuite) submit(month string) uuid.UUID {
	id, err := s.cmds.Submit(s.ctx, s.input(month))
	s.Require().NoError(err)
	return id
}

func (s *PaymentCommandsTestSuite) confirmedMonths() []string {
	apt := s.f.mustApartment(s.T(), s.apt.ID())
	var months []string
	for _, id := range apt.Allotment().PaymentIDs() {
		p, ok := s.f.store.Payment(id)
		s.Require().True(ok)
		months = append(months, p.MonthOf().String())
	}
	return months
}

func (s *PaymentCommandsTestSuite) TestSubmit() {
	s.Run("records a pending payment for a due month", func() {
		id := s.submit("2024-02")

		p, ok := s.f.store.Payment(id)
		s.Require().True(ok)
		s.Equal(payment.StatusPending, p.Status())
		s.Equal(s.apt.Allotment().ID(), p.AllotmentID())
		s.Equal(s.f.owner.ID(), p.OwnerID())
		s.Equal(s.f.clock.Now(), p.SubmittedAt())
		s.Empty(s.confirmedMonths())
	})

	s.Run("holds the apartment lock", func() {
		s.submit("2024-03")
		s.Equal([]string{"apartments:" + s.apt.ID().String()}, s.f.store.LastLocks())
	})

	s.Run("months outside the tenancy are not due", func() {
		for _, month := range []string{"2023-12", "2024-05"} {
			_, err := s.cmds.Submit(s.ctx, s.input(month))
			s.ErrorIs(err, payment.ErrMonthNotDue, month)
		}
	})

	s.Run("someone other than the tenant", func() {
		in := s.input("2024-03")
		in.PayerID = s.f.tenant("stranger@example.com").ID()

		_, err := s.cmds.Submit(s.ctx, in)
		s.ErrorIs(err, payment.ErrNotAllotmentHolder)
	})

	s.Run("vacant apartment", func() {
		in := s.input("2024-03")
		in.ApartmentID = s.f.vacantApartment().ID()

		_, err := s.cmds.Submit(s.ctx, in)
		s.ErrorIs(err, payment.ErrNotAllotmentHolder)
	})

	s.Run("input validation", func() {
		cases := []struct {
			name   string
			mutate func(*commands.SubmitPaymentInput)
			errIs  error
		}{
			{name: "cash", mutate: func(in *commands.SubmitPaymentInput) { in.Method = "cash" }, errIs: payment.ErrInvalidMethod},
			{name: "bad month", mutate: func(in *commands.SubmitPaymentInput) { in.MonthOf = "April" }, errIs: ledger.ErrInvalidMonth},
			{name: "blank transaction", mutate: func(in *commands.SubmitPaymentInput) { in.TransactionRef = " " }, errIs: payment.ErrInvalidTransaction},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				in := s.input("2024-03")
				tc.mutate(&in)
				_, err := s.cmds.Submit(s.ctx, in)
				s.ErrorIs(err, tc.errIs)
			})
		}
	})
}

func (s *PaymentCommandsTestSuite) TestDecide() {
	s.Run("confirmation appends to the history and settles the month", func() {
		id := s.submit("2024-02")

		s.Require().NoError(s.cmds.Decide(s.ctx, id, s.f.owner.ID(), "confirm"))

		p, _ := s.f.store.Payment(id)
		s.Equal(payment.StatusConfirmed, p.Status())
		s.Require().NotNil(p.ConfirmedAt())
		s.Equal([]string{"2024-02"}, s.confirmedMonths())

		_, err := s.cmds.Submit(s.ctx, s.input("2024-02"))
		s.ErrorIs(err, payment.ErrMonthNotDue)
	})

	s.Run("second confirmation for the same month", func() {
		first := s.submit("2024-03")
		second := s.submit("2024-03")

		s.Require().NoError(s.cmds.Decide(s.ctx, first, s.f.owner.ID(), "confirm"))
		err := s.cmds.Decide(s.ctx, second, s.f.owner.ID(), "confirm")
		s.ErrorIs(err, payment.ErrMonthAlreadyPaid)

		p, _ := s.f.store.Payment(second)
		s.Equal(payment.StatusPending, p.Status())
		s.Equal([]string{"2024-02", "2024-03"}, s.confirmedMonths())
	})

	s.Run("decline leaves the month due", func() {
		id := s.submit("2024-04")

		s.Require().NoError(s.cmds.Decide(s.ctx, id, s.f.owner.ID(), "decline"))

		p, _ := s.f.store.Payment(id)
		s.Equal(payment.StatusDeclined, p.Status())
		s.NotContains(s.confirmedMonths(), "2024-04")
		s.submit("2024-04")
	})

	s.Run("tenant cannot approve", func() {
		id := s.submit("2024-01")
		s.ErrorIs(s.cmds.Decide(s.ctx, id, s.tenant.ID(), "confirm"), payment.ErrNotPaymentApprover)
	})

	s.Run("decided payment", func() {
		id := s.submit("2024-01")
		s.Require().NoError(s.cmds.Decide(s.ctx, id, s.f.owner.ID(), "decline"))
		s.ErrorIs(s.cmds.Decide(s.ctx, id, s.f.owner.ID(), "confirm"), payment.ErrNotPending)
	})

	s.Run("unknown decision and payment", func() {
		s.ErrorIs(s.cmds.Decide(s.ctx, uuid.New(), s.f.owner.ID(), "approve"), payment.ErrInvalidDecision)
		s.ErrorIs(s.cmds.Decide(s.ctx, uuid.New(), s.f.owner.ID(), "confirm"), payment.ErrPaymentNotFound)
	})
}

func (s *PaymentCommandsTestSuite) TestUnpaidMonthsAfterConfirmations() {
	for _, month := range []string{"2024-01", "2024-03"} {
		id := s.submit(month)
		s.Require().NoError(s.cmds.Decide(s.ctx, id, s.f.owner.ID(), "confirm"))
	}

	apt := s.f.mustApartment(s.T(), s.apt.ID())
	paid := make([]ledger.YearMonth, 0)
	for _, label := range s.confirmedMonths() {
		paid = append(paid, ledger.MustParseYearMonth(label))
	}
	unpaid := apt.Allotment().UnpaidMonths(paid, s.f.clock.Now())
	s.Equal([]string{"2024-02", "2024-04"}, ledger.Labels(unpaid))
}
