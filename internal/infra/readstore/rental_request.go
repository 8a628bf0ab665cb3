package readstore

import (
	"context"

	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/pgconv"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestViewQueries interface {
	GetRentalRequestView(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.RentalRequestViewRow, error)
	ListRentalRequestsByRequester(ctx context.Context, db pgquery.DBTX, requesterID uuid.UUID) ([]pgquery.RentalRequestViewRow, error)
	ListRentalRequestsByOwner(ctx context.Context, db pgquery.DBTX, ownerID uuid.UUID) ([]pgquery.RentalRequestViewRow, error)
	ListRentalRequestsByApartment(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) ([]pgquery.RentalRequestViewRow, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      pgquery.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db pgquery.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetRentalRequestView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return toRequestView(row), nil
}

func (r *RequestReadStore) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRentalRequestsByRequester(ctx, r.db, requesterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requester", err)
	}
	return toRequestViews(rows), nil
}

func (r *RequestReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRentalRequestsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by owner", err)
	}
	return toRequestViews(rows), nil
}

func (r *RequestReadStore) ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRentalRequestsByApartment(ctx, r.db, apartmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by apartment", err)
	}
	return toRequestViews(rows), nil
}

func toRequestViews(rows []pgquery.RentalRequestViewRow) []*queries.RequestView {
	result := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		result[i] = toRequestView(row)
	}
	return result
}

func toRequestView(row pgquery.RentalRequestViewRow) *queries.RequestView {
	return &queries.RequestView{
		ID:             row.ID,
		ApartmentID:    row.ApartmentID,
		Address:        toAddressView(row.Street, row.Area, row.City),
		RequesterID:    row.RequesterID,
		RequesterName:  row.RequesterName,
		RequesterEmail: row.RequesterEmail,
		RequesterPhone: row.RequesterPhone,
		OwnerID:        row.OwnerID,
		TenancyType:    row.TenancyType,
		Occupants:      int(row.Occupants),
		Note:           row.Note,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
