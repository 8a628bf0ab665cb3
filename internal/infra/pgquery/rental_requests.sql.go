package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const rentalRequestColumns = `r.id, r.apartment_id, r.requester_id, r.owner_id, r.tenancy_type, r.occupants, r.note, r.status, r.created_at, r.updated_at`

func rentalRequestDest(r *RentalRequest) []any {
	return []any{
		&r.ID,
		&r.ApartmentID,
		&r.RequesterID,
		&r.OwnerID,
		&r.TenancyType,
		&r.Occupants,
		&r.Note,
		&r.Status,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

const createRentalRequest = `
INSERT INTO rental_requests (id, apartment_id, requester_id, owner_id, tenancy_type, occupants, note, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateRentalRequest(ctx context.Context, db DBTX, r RentalRequest) error {
	_, err := db.Exec(ctx, createRentalRequest,
		r.ID,
		r.ApartmentID,
		r.RequesterID,
		r.OwnerID,
		r.TenancyType,
		r.Occupants,
		r.Note,
		r.Status,
		r.CreatedAt,
		r.UpdatedAt,
	)
	return err
}

const getRentalRequestForUpdate = `SELECT ` + rentalRequestColumns + ` FROM rental_requests r WHERE r.id = $1 FOR UPDATE`

func (q *Queries) GetRentalRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (RentalRequest, error) {
	var r RentalRequest
	err := db.QueryRow(ctx, getRentalRequestForUpdate, id).Scan(rentalRequestDest(&r)...)
	return r, err
}

const updateRentalRequestStatus = `UPDATE rental_requests SET status = $2, updated_at = $3 WHERE id = $1`

func (q *Queries) UpdateRentalRequestStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, updatedAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx, updateRentalRequestStatus, id, status, updatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const existsLiveRentalRequest = `
SELECT EXISTS (
	SELECT 1 FROM rental_requests
	WHERE apartment_id = $1 AND requester_id = $2 AND status IN ('pending', 'accepted')
)`

func (q *Queries) ExistsLiveRentalRequest(ctx context.Context, db DBTX, apartmentID, requesterID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsLiveRentalRequest, apartmentID, requesterID).Scan(&exists)
	return exists, err
}

const deleteRentalRequestsByApartment = `DELETE FROM rental_requests WHERE apartment_id = $1`

func (q *Queries) DeleteRentalRequestsByApartment(ctx context.Context, db DBTX, apartmentID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteRentalRequestsByApartment, apartmentID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteRentalRequestsByRequester = `DELETE FROM rental_requests WHERE requester_id = $1`

func (q *Queries) DeleteRentalRequestsByRequester(ctx context.Context, db DBTX, requesterID uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteRentalRequestsByRequester, requesterID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// RentalRequestViewRow joins the apartment address and the requester contact.
type RentalRequestViewRow struct {
	RentalRequest
	Street         string
	Area           string
	City           string
	RequesterName  string
	RequesterEmail string
	RequesterPhone string
}

const rentalRequestViewSelect = `
SELECT ` + rentalRequestColumns + `, a.street, a.area, a.city, u.name, u.email, u.phone
FROM rental_requests r
JOIN apartments a ON a.id = r.apartment_id
JOIN users u ON u.id = r.requester_id`

func scanRentalRequestView(row pgx.Row) (RentalRequestViewRow, error) {
	var v RentalRequestViewRow
	dest := append(rentalRequestDest(&v.RentalRequest),
		&v.Street, &v.Area, &v.City, &v.RequesterName, &v.RequesterEmail, &v.RequesterPhone)
	err := row.Scan(dest...)
	return v, err
}

func (q *Queries) listRentalRequestViews(ctx context.Context, db DBTX, query string, arg uuid.UUID) ([]RentalRequestViewRow, error) {
	rows, err := db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (RentalRequestViewRow, error) { return scanRentalRequestView(r) })
}

const getRentalRequestView = rentalRequestViewSelect + ` WHERE r.id = $1`

func (q *Queries) GetRentalRequestView(ctx context.Context, db DBTX, id uuid.UUID) (RentalRequestViewRow, error) {
	return scanRentalRequestView(db.QueryRow(ctx, getRentalRequestView, id))
}

const listRentalRequestsByRequester = rentalRequestViewSelect + ` WHERE r.requester_id = $1 ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListRentalRequestsByRequester(ctx context.Context, db DBTX, requesterID uuid.UUID) ([]RentalRequestViewRow, error) {
	return q.listRentalRequestViews(ctx, db, listRentalRequestsByRequester, requesterID)
}

const listRentalRequestsByOwner = rentalRequestViewSelect + ` WHERE r.owner_id = $1 ORDER BY r.created_at DESC, r.id`

func (q *Queries) ListRentalRequestsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]RentalRequestViewRow, error) {
	return q.listRentalRequestViews(ctx, db, listRentalRequestsByOwner, ownerID)
}

const listRentalRequestsByApartment = rentalRequestViewSelect + ` WHERE r.apartment_id = $1 ORDER BY r.created_at, r.id`

func (q *Queries) ListRentalRequestsByApartment(ctx context.Context, db DBTX, apartmentID uuid.UUID) ([]RentalRequestViewRow, error) {
	return q.listRentalRequestViews(ctx, db, listRentalRequestsByApartment, apartmentID)
}
