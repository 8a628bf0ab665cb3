package repository

import (
	"context"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentQueries interface {
	CreatePayment(ctx context.Context, db pgquery.DBTX, p pgquery.Payment) error
	GetPaymentForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Payment, error)
	UpdatePaymentStatus(ctx context.Context, db pgquery.DBTX, id uuid.UUID, status string, confirmedAt pgtype.Timestamptz) (int64, error)
	ExistsConfirmedPayment(ctx context.Context, db pgquery.DBTX, allotmentID uuid.UUID, monthOf string) (bool, error)
}

type PaymentRepository struct {
	queries PaymentQueries
	db      pgquery.DBTX
}

func NewPaymentRepository(queries PaymentQueries, db pgquery.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if err := r.queries.CreatePayment(ctx, r.db, converter.PaymentToRow(p)); err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment", err)
	}
	return converter.PaymentFromRow(row)
}

// UpdateStatus fails with KindDuplicateKey when another payment already
// confirmed the same month of the allotment.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, p *payment.Payment) error {
	row := converter.PaymentToRow(p)
	n, err := r.queries.UpdatePaymentStatus(ctx, r.db, row.ID, row.Status, row.ConfirmedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) ExistsConfirmed(ctx context.Context, allotmentID uuid.UUID, month ledger.YearMonth) (bool, error) {
	exists, err := r.queries.ExistsConfirmedPayment(ctx, r.db, allotmentID, month.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check confirmed payment", err)
	}
	return exists, nil
}
