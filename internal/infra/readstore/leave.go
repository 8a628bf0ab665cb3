package readstore

import (
	"context"

	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/pgconv"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeaveViewQueries interface {
	GetCurrentLeaveRequestByApartment(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) (pgquery.LeaveRequestViewRow, error)
	ListLeaveRequestsByOwner(ctx context.Context, db pgquery.DBTX, ownerID uuid.UUID) ([]pgquery.LeaveRequestViewRow, error)
}

type LeaveReadStore struct {
	queries LeaveViewQueries
	db      pgquery.DBTX
}

func NewLeaveReadStore(queries LeaveViewQueries, db pgquery.DBTX) *LeaveReadStore {
	return &LeaveReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LeaveReadStore) FindCurrentByApartment(ctx context.Context, apartmentID uuid.UUID) (*queries.LeaveRequestView, error) {
	row, err := r.queries.GetCurrentLeaveRequestByApartment(ctx, r.db, apartmentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("leave request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find leave request", err)
	}
	return toLeaveRequestView(row), nil
}

func (r *LeaveReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.LeaveRequestView, error) {
	rows, err := r.queries.ListLeaveRequestsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leave requests", err)
	}

	result := make([]*queries.LeaveRequestView, len(rows))
	for i, row := range rows {
		result[i] = toLeaveRequestView(row)
	}
	return result, nil
}

func toLeaveRequestView(row pgquery.LeaveRequestViewRow) *queries.LeaveRequestView {
	return &queries.LeaveRequestView{
		ID:             row.ID,
		AllotmentID:    row.AllotmentID,
		ApartmentID:    row.ApartmentID,
		Address:        toAddressView(row.Street, row.Area, row.City),
		RequesterID:    row.RequesterID,
		RequesterName:  row.RequesterName,
		RequesterPhone: row.RequesterPhone,
		OwnerID:        row.OwnerID,
		FromMonth:      row.FromMonth,
		Note:           row.Note,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
