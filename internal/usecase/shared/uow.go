package shared

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction.
type Tx interface {
	Users() UserRepository
	Apartments() ApartmentRepository
	Allotments() AllotmentRepository
	Requests() RequestRepository
	Payments() PaymentRepository
	LeaveRequests() LeaveRequestRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	// AssignAllotment sets the back-reference only while it is empty.
	AssignAllotment(ctx context.Context, userID, apartmentID uuid.UUID) error
	// ReleaseAllotment clears the back-reference only if it still points at apartmentID.
	ReleaseAllotment(ctx context.Context, userID, apartmentID uuid.UUID) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// ApartmentRepository loads apartments together with their active allotment.
type ApartmentRepository interface {
	Create(ctx context.Context, a *apartment.Apartment) error
	FindByID(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error)
	Update(ctx context.Context, a *apartment.Apartment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AllotmentRepository interface {
	Create(ctx context.Context, a *apartment.Allotment) error
	End(ctx context.Context, a *apartment.Allotment) error
	// AppendPayment returns apartment.ErrPaymentAlreadyRecorded when the
	// payment is already in the history.
	AppendPayment(ctx context.Context, allotmentID, paymentID uuid.UUID) error
	ConfirmedMonths(ctx context.Context, allotmentID uuid.UUID) ([]ledger.YearMonth, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *rentalrequest.Request) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rentalrequest.Request, error)
	UpdateStatus(ctx context.Context, r *rentalrequest.Request) error
	ExistsLive(ctx context.Context, apartmentID, requesterID uuid.UUID) (bool, error)
	DeleteByApartment(ctx context.Context, apartmentID uuid.UUID) (int64, error)
	DeleteByRequester(ctx context.Context, requesterID uuid.UUID) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *payment.Payment) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, p *payment.Payment) error
	ExistsConfirmed(ctx context.Context, allotmentID uuid.UUID, month ledger.YearMonth) (bool, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, l *leave.LeaveRequest) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*leave.LeaveRequest, error)
	UpdateStatus(ctx context.Context, l *leave.LeaveRequest) error
	ExistsOpen(ctx context.Context, allotmentID uuid.UUID) (bool, error)
}

// ListingInvalidator is told when the set of available apartments may have
// changed. Implementations must not fail the caller.
type ListingInvalidator interface {
	InvalidateListings(ctx context.Context)
}

type NoopListingInvalidator struct{}

func (NoopListingInvalidator) InvalidateListings(context.Context) {}
