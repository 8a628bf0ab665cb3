package queries

import (
	"context"
	"time"

	"tenancy-service/internal/domain/payment"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment.go -package=queriesmock
type PaymentQueries interface {
	ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentView, error)
	ListForTenant(ctx context.Context, payerID uuid.UUID, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error)
	GetMemo(ctx context.Context, paymentID, actorID uuid.UUID) (*PaymentMemoView, error)
}

type PaymentReadStore interface {
	ListPendingByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentView, error)
	ListByPayerFirstPage(ctx context.Context, payerID uuid.UUID, limit int32) ([]*PaymentView, error)
	ListByPayerKeyset(ctx context.Context, payerID uuid.UUID, lastSubmittedAt time.Time, lastID uuid.UUID, limit int32) ([]*PaymentView, error)
	FindMemo(ctx context.Context, id uuid.UUID) (*PaymentMemoView, error)
}

type paymentQueriesImpl struct {
	repo PaymentReadStore
}

func NewPaymentQueries(repo PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]*PaymentView, error) {
	return q.repo.ListPendingByOwner(ctx, ownerID)
}

func (q *paymentQueriesImpl) ListForTenant(ctx context.Context, payerID uuid.UUID, cursor *Cursor, limit int) ([]*PaymentView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PaymentView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.ListByPayerFirstPage(ctx, payerID, int32(limit+1))
	} else {
		lastSubmittedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.ListByPayerKeyset(ctx, payerID, lastSubmittedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.SubmittedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *paymentQueriesImpl) GetMemo(ctx context.Context, paymentID, actorID uuid.UUID) (*PaymentMemoView, error) {
	memo, err := q.repo.FindMemo(ctx, paymentID)
	if err != nil {
		return nil, notFoundAs(err, payment.ErrPaymentNotFound)
	}
	if memo.Payment.PayerID != actorID && memo.Payment.OwnerID != actorID {
		return nil, payment.ErrPaymentNotVisible
	}
	if memo.Payment.Status != string(payment.StatusConfirmed) {
		return nil, payment.ErrMemoUnavailable
	}
	return memo, nil
}
