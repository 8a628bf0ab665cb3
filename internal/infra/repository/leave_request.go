package repository

import (
	"context"
	"time"

	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LeaveRequestQueries interface {
	CreateLeaveRequest(ctx context.Context, db pgquery.DBTX, l pgquery.LeaveRequest) error
	GetLeaveRequestForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.LeaveRequest, error)
	UpdateLeaveRequestStatus(ctx context.Context, db pgquery.DBTX, id uuid.UUID, status string, updatedAt time.Time) (int64, error)
	ExistsOpenLeaveRequest(ctx context.Context, db pgquery.DBTX, allotmentID uuid.UUID) (bool, error)
}

type LeaveRequestRepository struct {
	queries LeaveRequestQueries
	db      pgquery.DBTX
}

func NewLeaveRequestRepository(queries LeaveRequestQueries, db pgquery.DBTX) *LeaveRequestRepository {
	return &LeaveRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if err := r.queries.CreateLeaveRequest(ctx, r.db, converter.LeaveRequestToRow(l)); err != nil {
		return infra.WrapRepoErr("failed to create leave request", err)
	}
	return nil
}

func (r *LeaveRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error) {
	row, err := r.queries.GetLeaveRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("leave request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find leave request", err)
	}
	return converter.LeaveRequestFromRow(row)
}

func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, l *leave.LeaveRequest) error {
	n, err := r.queries.UpdateLeaveRequestStatus(ctx, r.db, l.ID(), l.Status().String(), l.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update leave request status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("leave request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LeaveRequestRepository) ExistsOpen(ctx context.Context, allotmentID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsOpenLeaveRequest(ctx, r.db, allotmentID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check open leave request", err)
	}
	return exists, nil
}
