package repository

import (
	"context"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

type AllotmentQueries interface {
	CreateAllotment(ctx context.Context, db pgquery.DBTX, a pgquery.Allotment) error
	EndAllotment(ctx context.Context, db pgquery.DBTX, id uuid.UUID, endedAt time.Time) (int64, error)
	AppendAllotmentPayment(ctx context.Context, db pgquery.DBTX, allotmentID, paymentID uuid.UUID) error
	ListConfirmedMonths(ctx context.Context, db pgquery.DBTX, allotmentID uuid.UUID) ([]string, error)
}

type AllotmentRepository struct {
	queries AllotmentQueries
	db      pgquery.DBTX
}

func NewAllotmentRepository(queries AllotmentQueries, db pgquery.DBTX) *AllotmentRepository {
	return &AllotmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AllotmentRepository) Create(ctx context.Context, a *apartment.Allotment) error {
	if err := r.queries.CreateAllotment(ctx, r.db, converter.AllotmentToRow(a)); err != nil {
		return infra.WrapRepoErr("failed to create allotment", err)
	}
	return nil
}

func (r *AllotmentRepository) End(ctx context.Context, a *apartment.Allotment) error {
	endedAt := a.EndedAt()
	if endedAt == nil {
		return infra.WrapRepoErr("allotment has no end time", nil, infra.KindConflict)
	}
	n, err := r.queries.EndAllotment(ctx, r.db, a.ID(), *endedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to end allotment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("allotment already ended", nil, infra.KindConflict)
	}
	return nil
}

// AppendPayment relies on UNIQUE(payment_id) for the append-only guard.
func (r *AllotmentRepository) AppendPayment(ctx context.Context, allotmentID, paymentID uuid.UUID) error {
	err := r.queries.AppendAllotmentPayment(ctx, r.db, allotmentID, paymentID)
	if err == nil {
		return nil
	}
	wrapped := infra.WrapRepoErr("failed to append payment to allotment history", err)
	if infra.IsKind(wrapped, infra.KindDuplicateKey) {
		return apartment.ErrPaymentAlreadyRecorded
	}
	return wrapped
}

func (r *AllotmentRepository) ConfirmedMonths(ctx context.Context, allotmentID uuid.UUID) ([]ledger.YearMonth, error) {
	labels, err := r.queries.ListConfirmedMonths(ctx, r.db, allotmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed months", err)
	}
	months := make([]ledger.YearMonth, 0, len(labels))
	for _, l := range labels {
		m, err := ledger.ParseYearMonth(l)
		if err != nil {
			return nil, errs.Wrapf(err, "stored payment month %q", l)
		}
		months = append(months, m)
	}
	return months, nil
}
