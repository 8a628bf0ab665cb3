package converter

import (
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/errs"
)

func LeaveRequestToRow(l *leave.LeaveRequest) pgquery.LeaveRequest {
	return pgquery.LeaveRequest{
		ID:          l.ID(),
		AllotmentID: l.AllotmentID(),
		ApartmentID: l.ApartmentID(),
		RequesterID: l.RequesterID(),
		OwnerID:     l.OwnerID(),
		FromMonth:   l.FromMonth().String(),
		Note:        l.Note(),
		Status:      l.Status().String(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func LeaveRequestFromRow(row pgquery.LeaveRequest) (*leave.LeaveRequest, error) {
	from, err := ledger.ParseYearMonth(row.FromMonth)
	if err != nil {
		return nil, errs.Wrapf(err, "stored leave request %s", row.ID)
	}
	status, err := leave.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored leave request %s", row.ID)
	}
	n := leave.Notice{
		AllotmentID: row.AllotmentID,
		ApartmentID: row.ApartmentID,
		RequesterID: row.RequesterID,
		OwnerID:     row.OwnerID,
		FromMonth:   from,
		Note:        row.Note,
	}
	return leave.ReconstructLeaveRequest(row.ID, n, status, row.CreatedAt, row.UpdatedAt), nil
}
