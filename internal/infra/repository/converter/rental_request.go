package converter

import (
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/pgconv"
)

func RequestToRow(r *rentalrequest.Request) pgquery.RentalRequest {
	return pgquery.RentalRequest{
		ID:          r.ID(),
		ApartmentID: r.ApartmentID(),
		RequesterID: r.RequesterID(),
		OwnerID:     r.OwnerID(),
		TenancyType: r.TenancyType().String(),
		Occupants:   pgconv.IntToInt32(r.Occupants().Int()),
		Note:        r.Note().String(),
		Status:      r.Status().String(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// RequestFromRow never sets requesterConfirmed: a confirmed request does not
// outlive its transaction.
func RequestFromRow(row pgquery.RentalRequest) (*rentalrequest.Request, error) {
	tt, err := rentalrequest.NewTenancyType(row.TenancyType)
	if err != nil {
		return nil, errs.Wrapf(err, "stored request %s", row.ID)
	}
	status, err := rentalrequest.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored request %s", row.ID)
	}
	app := rentalrequest.Application{
		TenancyType: tt,
		Occupants:   rentalrequest.Occupants(row.Occupants),
		Note:        rentalrequest.Note(row.Note),
	}
	return rentalrequest.ReconstructRequest(
		row.ID, row.ApartmentID, row.RequesterID, row.OwnerID,
		app, status, false, row.CreatedAt, row.UpdatedAt,
	), nil
}
