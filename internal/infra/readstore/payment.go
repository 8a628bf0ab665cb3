package readstore

import (
	"context"
	"time"

	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/pgconv"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentViewQueries interface {
	ListPendingPaymentsByOwner(ctx context.Context, db pgquery.DBTX, ownerID uuid.UUID) ([]pgquery.PaymentViewRow, error)
	ListPaymentsByPayerFirstPage(ctx context.Context, db pgquery.DBTX, payerID uuid.UUID, limit int32) ([]pgquery.PaymentViewRow, error)
	ListPaymentsByPayerKeyset(ctx context.Context, db pgquery.DBTX, payerID uuid.UUID, lastSubmittedAt time.Time, lastID uuid.UUID, limit int32) ([]pgquery.PaymentViewRow, error)
	GetPaymentMemo(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.PaymentMemoRow, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      pgquery.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db pgquery.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) ListPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPendingPaymentsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending payments", err)
	}
	return toPaymentViews(rows), nil
}

func (r *PaymentReadStore) ListByPayerFirstPage(ctx context.Context, payerID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByPayerFirstPage(ctx, r.db, payerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments first page", err)
	}
	return toPaymentViews(rows), nil
}

func (r *PaymentReadStore) ListByPayerKeyset(ctx context.Context, payerID uuid.UUID, lastSubmittedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByPayerKeyset(ctx, r.db, payerID, lastSubmittedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments with keyset", err)
	}
	return toPaymentViews(rows), nil
}

func (r *PaymentReadStore) FindMemo(ctx context.Context, id uuid.UUID) (*queries.PaymentMemoView, error) {
	row, err := r.queries.GetPaymentMemo(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment memo", err)
	}

	return &queries.PaymentMemoView{
		Payment: toPaymentView(pgquery.PaymentViewRow{
			Payment:   row.Payment,
			Street:    row.Street,
			Area:      row.Area,
			City:      row.City,
			PayerName: row.PayerName,
		}),
		MonthlyRent: money.FromMinorUnits(row.RentalPriceCents).String(),
		PayerPhone:  row.PayerPhone,
		OwnerName:   row.OwnerName,
		OwnerPhone:  row.OwnerPhone,
	}, nil
}

func toPaymentViews(rows []pgquery.PaymentViewRow) []*queries.PaymentView {
	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = toPaymentView(row)
	}
	return result
}

func toPaymentView(row pgquery.PaymentViewRow) *queries.PaymentView {
	return &queries.PaymentView{
		ID:             row.ID,
		AllotmentID:    row.AllotmentID,
		ApartmentID:    row.ApartmentID,
		Address:        toAddressView(row.Street, row.Area, row.City),
		PayerID:        row.PayerID,
		PayerName:      row.PayerName,
		OwnerID:        row.OwnerID,
		Amount:         money.FromMinorUnits(row.AmountCents).String(),
		MonthOf:        row.MonthOf,
		Method:         row.Method,
		TransactionRef: row.TransactionRef,
		Status:         row.Status,
		SubmittedAt:    row.SubmittedAt,
		ConfirmedAt:    pgconv.TimePtrFromPgtype(row.ConfirmedAt),
	}
}
