package repository

import (
	"context"
	"time"

	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RentalRequestQueries interface {
	CreateRentalRequest(ctx context.Context, db pgquery.DBTX, r pgquery.RentalRequest) error
	GetRentalRequestForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.RentalRequest, error)
	UpdateRentalRequestStatus(ctx context.Context, db pgquery.DBTX, id uuid.UUID, status string, updatedAt time.Time) (int64, error)
	ExistsLiveRentalRequest(ctx context.Context, db pgquery.DBTX, apartmentID, requesterID uuid.UUID) (bool, error)
	DeleteRentalRequestsByApartment(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) (int64, error)
	DeleteRentalRequestsByRequester(ctx context.Context, db pgquery.DBTX, requesterID uuid.UUID) (int64, error)
}

type RentalRequestRepository struct {
	queries RentalRequestQueries
	db      pgquery.DBTX
}

func NewRentalRequestRepository(queries RentalRequestQueries, db pgquery.DBTX) *RentalRequestRepository {
	return &RentalRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRequestRepository) Create(ctx context.Context, req *rentalrequest.Request) error {
	if err := r.queries.CreateRentalRequest(ctx, r.db, converter.RequestToRow(req)); err != nil {
		return infra.WrapRepoErr("failed to create rental request", err)
	}
	return nil
}

func (r *RentalRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rentalrequest.Request, error) {
	row, err := r.queries.GetRentalRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental request", err)
	}
	return converter.RequestFromRow(row)
}

func (r *RentalRequestRepository) UpdateStatus(ctx context.Context, req *rentalrequest.Request) error {
	n, err := r.queries.UpdateRentalRequestStatus(ctx, r.db, req.ID(), req.Status().String(), req.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update rental request status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("rental request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RentalRequestRepository) ExistsLive(ctx context.Context, apartmentID, requesterID uuid.UUID) (bool, error) {
	exists, err := r.queries.ExistsLiveRentalRequest(ctx, r.db, apartmentID, requesterID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check live rental request", err)
	}
	return exists, nil
}

func (r *RentalRequestRepository) DeleteByApartment(ctx context.Context, apartmentID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteRentalRequestsByApartment(ctx, r.db, apartmentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete rental requests of apartment", err)
	}
	return n, nil
}

func (r *RentalRequestRepository) DeleteByRequester(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteRentalRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete rental requests of requester", err)
	}
	return n, nil
}
