//go:build unit

package memstore

import (
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"

	"github.com/google/uuid"
)

func cloneUser(u *user.User) *user.User {
	return withAllotment(u, u.AllottedApartmentID(), u.UpdatedAt())
}

func withAllotment(u *user.User, apartmentID *uuid.UUID, updatedAt time.Time) *user.User {
	var ref *uuid.UUID
	if apartmentID != nil {
		id := *apartmentID
		ref = &id
	}
	return user.ReconstructUser(u.ID(), u.Profile(), u.PasswordHash(), u.Role(),
		ref, u.LastLogin(), u.IsActive(), u.CreatedAt(), updatedAt)
}

// stripAllotment drops the active allotment, which lives in its own table.
func stripAllotment(a *apartment.Apartment) *apartment.Apartment {
	return apartment.ReconstructApartment(a.ID(), a.OwnerID(), a.Attributes(), nil, a.CreatedAt(), a.UpdatedAt())
}

func cloneAllotment(a *apartment.Allotment) *apartment.Allotment {
	return apartment.ReconstructAllotment(a.ID(), a.ApartmentID(), a.TenantID(), a.StartedAt(), a.EndedAt(), a.PaymentIDs())
}

func cloneRequest(r *rentalrequest.Request) *rentalrequest.Request {
	return rentalrequest.ReconstructRequest(r.ID(), r.ApartmentID(), r.RequesterID(), r.OwnerID(),
		rentalrequest.Application{TenancyType: r.TenancyType(), Occupants: r.Occupants(), Note: r.Note()},
		r.Status(), r.RequesterConfirmed(), r.CreatedAt(), r.UpdatedAt())
}

func clonePayment(p *payment.Payment) *payment.Payment {
	return payment.ReconstructPayment(p.ID(), payment.Submission{
		AllotmentID:    p.AllotmentID(),
		ApartmentID:    p.ApartmentID(),
		PayerID:        p.PayerID(),
		OwnerID:        p.OwnerID(),
		Amount:         p.Amount(),
		MonthOf:        p.MonthOf(),
		Method:         p.Method(),
		TransactionRef: p.TransactionRef(),
	}, p.Status(), p.SubmittedAt(), p.ConfirmedAt())
}

func cloneLeave(l *leave.LeaveRequest) *leave.LeaveRequest {
	return leave.ReconstructLeaveRequest(l.ID(), leave.Notice{
		AllotmentID: l.AllotmentID(),
		ApartmentID: l.ApartmentID(),
		RequesterID: l.RequesterID(),
		OwnerID:     l.OwnerID(),
		FromMonth:   l.FromMonth(),
		Note:        l.Note(),
	}, l.Status(), l.CreatedAt(), l.UpdatedAt())
}
