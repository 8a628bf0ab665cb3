package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `l.id, l.allotment_id, l.apartment_id, l.requester_id, l.owner_id, l.from_month, l.note, l.status, l.created_at, l.updated_at`

func leaveRequestDest(l *LeaveRequest) []any {
	return []any{
		&l.ID,
		&l.AllotmentID,
		&l.ApartmentID,
		&l.RequesterID,
		&l.OwnerID,
		&l.FromMonth,
		&l.Note,
		&l.Status,
		&l.CreatedAt,
		&l.UpdatedAt,
	}
}

const createLeaveRequest = `
INSERT INTO leave_requests (id, allotment_id, apartment_id, requester_id, owner_id, from_month, note, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) CreateLeaveRequest(ctx context.Context, db DBTX, l LeaveRequest) error {
	_, err := db.Exec(ctx, createLeaveRequest,
		l.ID,
		l.AllotmentID,
		l.ApartmentID,
		l.RequesterID,
		l.OwnerID,
		l.FromMonth,
		l.Note,
		l.Status,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

const getLeaveRequestForUpdate = `SELECT ` + leaveRequestColumns + ` FROM leave_requests l WHERE l.id = $1 FOR UPDATE`

func (q *Queries) GetLeaveRequestForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (LeaveRequest, error) {
	var l LeaveRequest
	err := db.QueryRow(ctx, getLeaveRequestForUpdate, id).Scan(leaveRequestDest(&l)...)
	return l, err
}

const updateLeaveRequestStatus = `UPDATE leave_requests SET status = $2, updated_at = $3 WHERE id = $1`

func (q *Queries) UpdateLeaveRequestStatus(ctx context.Context, db DBTX, id uuid.UUID, status string, updatedAt time.Time) (int64, error) {
	tag, err := db.Exec(ctx, updateLeaveRequestStatus, id, status, updatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const existsOpenLeaveRequest = `
SELECT EXISTS (SELECT 1 FROM leave_requests WHERE allotment_id = $1 AND status <> 'rejected')`

func (q *Queries) ExistsOpenLeaveRequest(ctx context.Context, db DBTX, allotmentID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsOpenLeaveRequest, allotmentID).Scan(&exists)
	return exists, err
}

type LeaveRequestViewRow struct {
	LeaveRequest
	Street         string
	Area           string
	City           string
	RequesterName  string
	RequesterPhone string
}

const leaveRequestViewSelect = `
SELECT ` + leaveRequestColumns + `, a.street, a.area, a.city, u.name, u.phone
FROM leave_requests l
JOIN apartments a ON a.id = l.apartment_id
JOIN users u ON u.id = l.requester_id`

func scanLeaveRequestView(row pgx.Row) (LeaveRequestViewRow, error) {
	var v LeaveRequestViewRow
	dest := append(leaveRequestDest(&v.LeaveRequest), &v.Street, &v.Area, &v.City, &v.RequesterName, &v.RequesterPhone)
	err := row.Scan(dest...)
	return v, err
}

// Latest leave request of the apartment's active allotment.
const getCurrentLeaveRequestByApartment = leaveRequestViewSelect + `
JOIN allotments al ON al.id = l.allotment_id AND al.ended_at IS NULL
WHERE l.apartment_id = $1
ORDER BY l.created_at DESC, l.id
LIMIT 1`

func (q *Queries) GetCurrentLeaveRequestByApartment(ctx context.Context, db DBTX, apartmentID uuid.UUID) (LeaveRequestViewRow, error) {
	return scanLeaveRequestView(db.QueryRow(ctx, getCurrentLeaveRequestByApartment, apartmentID))
}

const listLeaveRequestsByOwner = leaveRequestViewSelect + `
WHERE l.owner_id = $1
ORDER BY l.created_at DESC, l.id`

func (q *Queries) ListLeaveRequestsByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]LeaveRequestViewRow, error) {
	rows, err := db.Query(ctx, listLeaveRequestsByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(r pgx.Rows) (LeaveRequestViewRow, error) { return scanLeaveRequestView(r) })
}
