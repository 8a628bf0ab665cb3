package queries

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrLedgerNotVisible = errs.Forbidden("only the owner or the allotted tenant can view dues")

//go:generate mockgen -source=ledger.go -destination=../../../tests/mock/queries/ledger.go -package=queriesmock
type LedgerQueries interface {
	UnpaidMonths(ctx context.Context, apartmentID, actorID uuid.UUID) (*UnpaidMonthsView, error)
}

type ledgerQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

// NewLedgerQueries reads through the unit of work so the allotment and its
// payment history come from one snapshot.
func NewLedgerQueries(uow shared.UnitOfWork, clk clock.Clock) LedgerQueries {
	return &ledgerQueriesImpl{
		uow:   uow,
		clock: clk,
	}
}

func (q *ledgerQueriesImpl) UnpaidMonths(ctx context.Context, apartmentID, actorID uuid.UUID) (*UnpaidMonthsView, error) {
	var view *UnpaidMonthsView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().FindByID(ctx, apartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		allotment, err := apt.ActiveAllotment()
		if err != nil {
			if apt.IsOwnedBy(actorID) {
				return ErrNoAllotment
			}
			return ErrLedgerNotVisible
		}
		if !apt.IsOwnedBy(actorID) && allotment.TenantID() != actorID {
			return ErrLedgerNotVisible
		}

		paid, err := tx.Allotments().ConfirmedMonths(ctx, allotment.ID())
		if err != nil {
			return err
		}
		unpaid := allotment.UnpaidMonths(paid, q.clock.Now())

		rent := apt.Attributes().RentalPrice
		view = &UnpaidMonthsView{
			ApartmentID: apt.ID(),
			AllotmentID: allotment.ID(),
			StartedAt:   allotment.StartedAt(),
			Months:      ledger.Labels(unpaid),
			MonthlyRent: rent.String(),
			TotalDue:    rent.Decimal().Mul(decimal.NewFromInt(int64(len(unpaid)))).StringFixed(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
