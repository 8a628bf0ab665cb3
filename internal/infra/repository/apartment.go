package repository

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ApartmentQueries interface {
	CreateApartment(ctx context.Context, db pgquery.DBTX, a pgquery.Apartment) error
	GetApartmentByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Apartment, error)
	GetApartmentByIDForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Apartment, error)
	UpdateApartment(ctx context.Context, db pgquery.DBTX, a pgquery.Apartment) (int64, error)
	DeleteApartment(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (int64, error)
	GetActiveAllotmentByApartment(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) (pgquery.Allotment, error)
	ListAllotmentPaymentIDs(ctx context.Context, db pgquery.DBTX, allotmentID uuid.UUID) ([]uuid.UUID, error)
}

type ApartmentRepository struct {
	queries ApartmentQueries
	db      pgquery.DBTX
}

func NewApartmentRepository(queries ApartmentQueries, db pgquery.DBTX) *ApartmentRepository {
	return &ApartmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ApartmentRepository) Create(ctx context.Context, a *apartment.Apartment) error {
	if err := r.queries.CreateApartment(ctx, r.db, converter.ApartmentToRow(a)); err != nil {
		return infra.WrapRepoErr("failed to create apartment", err)
	}
	return nil
}

func (r *ApartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	row, err := r.queries.GetApartmentByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapApartmentErr(err)
	}
	return r.withAllotment(ctx, row)
}

// FindByIDForUpdate locks the apartment row. Every flow that changes the
// allotment or adds requests goes through this lock first.
func (r *ApartmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	row, err := r.queries.GetApartmentByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrapApartmentErr(err)
	}
	return r.withAllotment(ctx, row)
}

func (r *ApartmentRepository) withAllotment(ctx context.Context, row pgquery.Apartment) (*apartment.Apartment, error) {
	active, err := r.queries.GetActiveAllotmentByApartment(ctx, r.db, row.ID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return converter.ApartmentFromRow(row, nil, nil)
		}
		return nil, infra.WrapRepoErr("failed to load active allotment", err)
	}
	ids, err := r.queries.ListAllotmentPaymentIDs(ctx, r.db, active.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load allotment payment history", err)
	}
	return converter.ApartmentFromRow(row, &active, ids)
}

func (r *ApartmentRepository) Update(ctx context.Context, a *apartment.Apartment) error {
	n, err := r.queries.UpdateApartment(ctx, r.db, converter.ApartmentToRow(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update apartment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ApartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteApartment(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete apartment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("apartment not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapApartmentErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to find apartment", err)
}
