package converter

import (
	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func ApartmentToRow(a *apartment.Apartment) pgquery.Apartment {
	attrs := a.Attributes()
	return pgquery.Apartment{
		ID:               a.ID(),
		OwnerID:          a.OwnerID(),
		Street:           attrs.Address.Street(),
		Area:             attrs.Address.Area(),
		City:             attrs.Address.City(),
		RentalPriceCents: attrs.RentalPrice.MinorUnits(),
		SizeSqft:         pgconv.IntToInt32(attrs.SizeSqft),
		Description:      attrs.Description,
		TotalRooms:       pgconv.IntToInt32(attrs.TotalRooms),
		Bedrooms:         pgconv.IntToInt32(attrs.Bedrooms),
		Bathrooms:        pgconv.IntToInt32(attrs.Bathrooms),
		HasParking:       attrs.HasParking,
		HasElevator:      attrs.HasElevator,
		TotalFloors:      pgconv.IntToInt32(attrs.TotalFloors),
		Floor:            pgconv.IntToInt32(attrs.Floor),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}
}

func AttributesFromRow(row pgquery.Apartment) (apartment.Attributes, error) {
	addr, err := apartment.NewAddress(row.Street, row.Area, row.City)
	if err != nil {
		return apartment.Attributes{}, errs.Wrapf(err, "stored apartment %s", row.ID)
	}
	return apartment.Attributes{
		Address:     addr,
		RentalPrice: money.FromMinorUnits(row.RentalPriceCents),
		SizeSqft:    int(row.SizeSqft),
		Description: row.Description,
		TotalRooms:  int(row.TotalRooms),
		Bedrooms:    int(row.Bedrooms),
		Bathrooms:   int(row.Bathrooms),
		HasParking:  row.HasParking,
		HasElevator: row.HasElevator,
		TotalFloors: int(row.TotalFloors),
		Floor:       int(row.Floor),
	}, nil
}

// ApartmentFromRow takes the active allotment row, if any, with its history.
func ApartmentFromRow(row pgquery.Apartment, active *pgquery.Allotment, paymentIDs []uuid.UUID) (*apartment.Apartment, error) {
	attrs, err := AttributesFromRow(row)
	if err != nil {
		return nil, err
	}
	var allot *apartment.Allotment
	if active != nil {
		allot = AllotmentFromRow(*active, paymentIDs)
	}
	return apartment.ReconstructApartment(row.ID, row.OwnerID, attrs, allot, row.CreatedAt, row.UpdatedAt), nil
}

func AllotmentToRow(a *apartment.Allotment) pgquery.Allotment {
	return pgquery.Allotment{
		ID:          a.ID(),
		ApartmentID: a.ApartmentID(),
		TenantID:    a.TenantID(),
		StartedAt:   a.StartedAt(),
		EndedAt:     pgconv.TimePtrToPgtype(a.EndedAt()),
	}
}

func AllotmentFromRow(row pgquery.Allotment, paymentIDs []uuid.UUID) *apartment.Allotment {
	return apartment.ReconstructAllotment(
		row.ID,
		row.ApartmentID,
		row.TenantID,
		row.StartedAt,
		pgconv.TimePtrFromPgtype(row.EndedAt),
		paymentIDs,
	)
}
