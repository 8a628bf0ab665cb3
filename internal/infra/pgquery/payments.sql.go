package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `p.id, p.allotment_id, p.apartment_id, p.payer_id, p.owner_id, p.amount_cents, p.month_of,
	p.method, p.transaction_ref, p.status, p.submitted_at, p.confirmed_at`

func paymentDest(p *Payment) []any {
	return []any{
		&p.ID,
		&p.AllotmentID,
		&p.ApartmentID,
		&p.PayerID,
		&p.OwnerID,
		&p.AmountCents,
		&p.MonthOf,
		&p.Method,
		&p.TransactionRef,
		&p.Status,
		&p.SubmittedAt,
		&p.ConfirmedAt,
	}
}

const createPayment = `
INSERT INTO payments (id, allotment_id, apartment_id, payer_id, owner_id, amount_cents, month_of, method, transaction_ref, status, submitted_at, confirmed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, p Payment) error {
	_, err := db.Exec(ctx, createPayment,
		p.ID,
		p.AllotmentID,
		p.ApartmentID,
		p.PayerID,
		p.OwnerID,
		p.AmountCents,
		p.MonthOf,
		p.Method,
		p.TransactionRef,
		p.Status,
		p.SubmittedAt,
		p.ConfirmedAt,
	)
	return err
}

const getPaymentForUpdate = `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1 FOR UPDATE`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Payment, error) {
	var p Payment
	err := db.QueryRow(ctx, getPaymentForUpdate, id).Scan(paymentDest(&p)...)
	return p, err
}

const updatePaymentStatus = `UPDATE payments SET status = $2, confirmed_at = $3 WHERE id = $1`

func (q *Queries) UpdatePaymentStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, confirmedAt pgtype.Timestamptz) (int64, error) {
	tag, err := db.Exec(ctx, updatePaymentStatus, id, status, confirmedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const existsConfirmedPayment = `
SELECT EXISTS (
	SELECT 1 FROM payments WHERE allotment_id = $1 AND month_of = $2 AND status = 'confirmed'
)`

func (q *Queries) ExistsConfirmedPayment(ctx context.Context, db DBTX, allotmentID uuid.UUID, monthOf string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsConfirmedPayment, allotmentID, monthOf).Scan(&exists)
	return exists, err
}

// PaymentViewRow adds the apartment address and the payer name.
type PaymentViewRow struct {
	Payment
	Street    string
	Area      string
	City      string
	PayerName string
}

const paymentViewSelect = `
SELECT ` + paymentColumns + `, a.street, a.area, a.city, u.name
FROM payments p
JOIN apartments a ON a.id = p.apartment_id
JOIN users u ON u.id = p.payer_id`

func scanPaymentView(row pgx.Row) (PaymentViewRow, error) {
	var v PaymentViewRow
	dest := append(paymentDest(&v.Payment), &v.Street, &v.Area, &v.City, &v.PayerName)
	err := row.Scan(dest...)
	return v, err
}

const listPendingPaymentsByOwner = paymentViewSelect + `
WHERE p.owner_id = $1 AND p.status = 'pending'
ORDER BY p.submitted_at, p.id`

func (q *Queries) ListPendingPaymentsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]PaymentViewRow, error) {
	rows, err := db.Query(ctx, listPendingPaymentsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (PaymentViewRow, error) { return scanPaymentView(r) })
}

const listPaymentsByPayerFirstPage = paymentViewSelect + `
WHERE p.payer_id = $1
ORDER BY p.submitted_at DESC, p.id DESC
LIMIT $2`

func (q *Queries) ListPaymentsByPayerFirstPage(ctx context.Context, db DBTX, payerID uuid.UUID, limit int32) ([]PaymentViewRow, error) {
	rows, err := db.Query(ctx, listPaymentsByPayerFirstPage, payerID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (PaymentViewRow, error) { return scanPaymentView(r) })
}

const listPaymentsByPayerKeyset = paymentViewSelect + `
WHERE p.payer_id = $1 AND (p.submitted_at, p.id) < ($2, $3)
ORDER BY p.submitted_at DESC, p.id DESC
LIMIT $4`

func (q *Queries) ListPaymentsByPayerKeyset(ctx context.Context, db DBTX, payerID uuid.UUID, lastSubmittedAt time.Time, lastID uuid.UUID, limit int32) ([]PaymentViewRow, error) {
	rows, err := db.Query(ctx, listPaymentsByPayerKeyset, payerID, lastSubmittedAt, lastID, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (PaymentViewRow, error) { return scanPaymentView(r) })
}

type PaymentMemoRow struct {
	Payment
	Street           string
	Area             string
	City             string
	RentalPriceCents int64
	PayerName        string
	PayerPhone       string
	OwnerName        string
	OwnerPhone       string
}

const getPaymentMemo = `
SELECT ` + paymentColumns + `, a.street, a.area, a.city, a.rental_price_cents, payer.name, payer.phone, ow.name, ow.phone
FROM payments p
JOIN apartments a ON a.id = p.apartment_id
JOIN users payer ON payer.id = p.payer_id
JOIN users ow ON ow.id = p.owner_id
WHERE p.id = $1`

func (q *Queries) GetPaymentMemo(ctx context.Context, db DBTX, id uuid.UUID) (PaymentMemoRow, error) {
	var m PaymentMemoRow
	dest := append(paymentDest(&m.Payment),
		&m.Street, &m.Area, &m.City, &m.RentalPriceCents,
		&m.PayerName, &m.PayerPhone, &m.OwnerName, &m.OwnerPhone)
	err := db.QueryRow(ctx, getPaymentMemo, id).Scan(dest...)
	return m, err
}
