package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const allotmentColumns = `al.id, al.apartment_id, al.tenant_id, al.started_at, al.ended_at`

func scanAllotment(row pgx.Row) (Allotment, error) {
	var a Allotment
	err := row.Scan(&a.ID, &a.ApartmentID, &a.TenantID, &a.StartedAt, &a.EndedAt)
	return a, err
}

const createAllotment = `
INSERT INTO allotments (id, apartment_id, tenant_id, started_at)
VALUES ($1, $2, $3, $4)`

func (q *Queries) CreateAllotment(ctx context.Context, db DBTX, a Allotment) error {
	_, err := db.Exec(ctx, createAllotment, a.ID, a.ApartmentID, a.TenantID, a.StartedAt)
	return err
}

const getActiveAllotmentByApartment = `
SELECT ` + allotmentColumns + ` FROM allotments al
WHERE al.apartment_id = $1 AND al.ended_at IS NULL`

func (q *Queries) GetActiveAllotmentByApartment(ctx context.Context, db DBTX, apartmentID uuid.UUID) (Allotment, error) {
	return scanAllotment(db.QueryRow(ctx, getActiveAllotmentByApartment, apartmentID))
}

const endAllotment = `UPDATE allotments SET ended_at = $2 WHERE id = $1 AND ended_at IS NULL`

func (q *Queries) EndAllotment(ctx context.Context, db DBTX, id uuid.UUID, endedAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx, endAllotment, id, endedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const appendAllotmentPayment = `INSERT INTO allotment_payments (allotment_id, payment_id) VALUES ($1, $2)`

func (q *Queries) AppendAllotmentPayment(ctx context.Context, db DBTX, allotmentID, paymentID uuid.UUID) error {
	_, err := db.Exec(ctx, appendAllotmentPayment, allotmentID, paymentID)
	return err
}

const listAllotmentPaymentIDs = `
SELECT payment_id FROM allotment_payments WHERE allotment_id = $1 ORDER BY seq`

func (q *Queries) ListAllotmentPaymentIDs(ctx context.Context, db DBTX, allotmentID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listAllotmentPaymentIDs, allotmentID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (uuid.UUID, error) {
		var id uuid.UUID
		err := r.Scan(&id)
		return id, err
	})
}

// Months come from the history, so a confirmed payment missing from it
// does not settle a month.
const listConfirmedMonths = `
SELECT p.month_of
FROM allotment_payments ap
JOIN payments p ON p.id = ap.payment_id
WHERE ap.allotment_id = $1 AND p.status = 'confirmed'
ORDER BY ap.seq`

func (q *Queries) ListConfirmedMonths(ctx context.Context, db DBTX, allotmentID uuid.UUID) ([]string, error) {
	rows, err := db.Query(ctx, listConfirmedMonths, allotmentID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (string, error) {
		var m string
		err := r.Scan(&m)
		return m, err
	})
}

type AllotmentTenantRow struct {
	Allotment
	TenantName  string
	TenantEmail string
	TenantPhone string
}

const getActiveAllotmentWithTenant = `
SELECT ` + allotmentColumns + `, u.name, u.email, u.phone
FROM allotments al
JOIN users u ON u.id = al.tenant_id
WHERE al.apartment_id = $1 AND al.ended_at IS NULL`

func (q *Queries) GetActiveAllotmentWithTenant(ctx context.Context, db DBTX, apartmentID uuid.UUID) (AllotmentTenantRow, error) {
	var r AllotmentTenantRow
	err := db.QueryRow(ctx, getActiveAllotmentWithTenant, apartmentID).Scan(
		&r.ID, &r.ApartmentID, &r.TenantID, &r.StartedAt, &r.EndedAt,
		&r.TenantName, &r.TenantEmail, &r.TenantPhone,
	)
	return r, err
}

type TenantAllotmentRow struct {
	Allotment
	Apartment  Apartment
	OwnerName  string
	OwnerPhone string
}

const getActiveAllotmentByTenant = `
SELECT ` + allotmentColumns + `, ` + apartmentColumns + `, o.name, o.phone
FROM allotments al
JOIN apartments a ON a.id = al.apartment_id
JOIN users o ON o.id = a.owner_id
WHERE al.tenant_id = $1 AND al.ended_at IS NULL`

func (q *Queries) GetActiveAllotmentByTenant(ctx context.Context, db DBTX, tenantID uuid.UUID) (TenantAllotmentRow, error) {
	var r TenantAllotmentRow
	dest := []any{&r.ID, &r.ApartmentID, &r.TenantID, &r.StartedAt, &r.EndedAt}
	dest = append(dest, apartmentDest(&r.Apartment)...)
	dest = append(dest, &r.OwnerName, &r.OwnerPhone)
	err := db.QueryRow(ctx, getActiveAllotmentByTenant, tenantID).Scan(dest...)
	return r, err
}
