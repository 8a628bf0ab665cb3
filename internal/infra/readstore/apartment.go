package readstore

import (
	"context"

	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/pgconv"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type ApartmentViewQueries interface {
	GetApartmentByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.Apartment, error)
	GetActiveAllotmentByApartment(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) (pgquery.Allotment, error)
	ListAvailableApartments(ctx context.Context, db pgquery.DBTX, pattern string) ([]pgquery.Apartment, error)
	ListApartmentsByOwner(ctx context.Context, db pgquery.DBTX, ownerID uuid.UUID) ([]pgquery.OwnedApartmentRow, error)
	GetActiveAllotmentWithTenant(ctx context.Context, db pgquery.DBTX, apartmentID uuid.UUID) (pgquery.AllotmentTenantRow, error)
	GetActiveAllotmentByTenant(ctx context.Context, db pgquery.DBTX, tenantID uuid.UUID) (pgquery.TenantAllotmentRow, error)
	ListAllotmentPaymentIDs(ctx context.Context, db pgquery.DBTX, allotmentID uuid.UUID) ([]uuid.UUID, error)
}

type ApartmentReadStore struct {
	queries ApartmentViewQueries
	db      pgquery.DBTX
}

func NewApartmentReadStore(queries ApartmentViewQueries, db pgquery.DBTX) *ApartmentReadStore {
	return &ApartmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ApartmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ApartmentView, error) {
	row, err := r.queries.GetApartmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("apartment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find apartment by ID", err)
	}

	_, err = r.queries.GetActiveAllotmentByApartment(ctx, r.db, id)
	switch {
	case err == nil:
		return toApartmentView(row, true), nil
	case pgconv.IsNoRows(err):
		return toApartmentView(row, false), nil
	default:
		return nil, infra.WrapRepoErr("failed to find active allotment", err)
	}
}

func (r *ApartmentReadStore) ListAvailable(ctx context.Context, pattern string) ([]*queries.ApartmentView, error) {
	rows, err := r.queries.ListAvailableApartments(ctx, r.db, pattern)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available apartments", err)
	}

	result := make([]*queries.ApartmentView, len(rows))
	for i, row := range rows {
		result[i] = toApartmentView(row, false)
	}
	return result, nil
}

func (r *ApartmentReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.OwnedApartmentView, error) {
	rows, err := r.queries.ListApartmentsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned apartments", err)
	}

	result := make([]*queries.OwnedApartmentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.OwnedApartmentView{
			ApartmentView:    *toApartmentView(row.Apartment, row.IsAllotted),
			LiveRequestCount: row.LiveRequestCount,
		}
	}
	return result, nil
}

func (r *ApartmentReadStore) FindActiveAllotment(ctx context.Context, apartmentID uuid.UUID) (*queries.AllotmentView, error) {
	row, err := r.queries.GetActiveAllotmentWithTenant(ctx, r.db, apartmentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active allotment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active allotment", err)
	}

	paymentIDs, err := r.queries.ListAllotmentPaymentIDs(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list allotment payments", err)
	}

	return &queries.AllotmentView{
		ID:          row.ID,
		ApartmentID: row.ApartmentID,
		TenantID:    row.TenantID,
		TenantName:  row.TenantName,
		TenantEmail: row.TenantEmail,
		TenantPhone: row.TenantPhone,
		StartedAt:   row.StartedAt,
		PaymentIDs:  paymentIDs,
	}, nil
}

func (r *ApartmentReadStore) FindAllotmentByTenant(ctx context.Context, tenantID uuid.UUID) (*queries.MyAllotmentView, error) {
	row, err := r.queries.GetActiveAllotmentByTenant(ctx, r.db, tenantID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant has no active allotment", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tenant allotment", err)
	}

	return &queries.MyAllotmentView{
		AllotmentID: row.ID,
		StartedAt:   row.StartedAt,
		Apartment:   toApartmentView(row.Apartment, true),
		OwnerName:   row.OwnerName,
		OwnerPhone:  row.OwnerPhone,
	}, nil
}

func toAddressView(street, area, city string) queries.AddressView {
	return queries.AddressView{Street: street, Area: area, City: city}
}

func toApartmentView(row pgquery.Apartment, allotted bool) *queries.ApartmentView {
	return &queries.ApartmentView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Address:     toAddressView(row.Street, row.Area, row.City),
		RentalPrice: money.FromMinorUnits(row.RentalPriceCents).String(),
		SizeSqft:    int(row.SizeSqft),
		Description: row.Description,
		TotalRooms:  int(row.TotalRooms),
		Bedrooms:    int(row.Bedrooms),
		Bathrooms:   int(row.Bathrooms),
		HasParking:  row.HasParking,
		HasElevator: row.HasElevator,
		TotalFloors: int(row.TotalFloors),
		Floor:       int(row.Floor),
		IsAllotted:  allotted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
