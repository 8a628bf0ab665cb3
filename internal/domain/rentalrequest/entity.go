package rentalrequest

import (
	"time"

	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errs.NotFound("request not found")
	ErrNotPending        = errs.Conflict("request is not pending")
	ErrNotAccepted       = errs.Conflict("request is not accepted")
	ErrAlreadyRequested  = errs.Conflict("request already sent")
	ErrOwnApartment      = errs.Forbidden("owners cannot request their own apartment")
	ErrNotRequestOwner   = errs.Forbidden("only the apartment owner can decide on this request")
	ErrNotRequester      = errs.Forbidden("only the requester can confirm this request")
	ErrRequestNotVisible = errs.Forbidden("request belongs to another account")
)

// Request is a tenant's application for one apartment. ownerID is a copy of
// the apartment owner taken at creation and never changed afterwards.
type Request struct {
	id                 uuid.UUID
	apartmentID        uuid.UUID
	requesterID        uuid.UUID
	ownerID            uuid.UUID
	tenancyType        TenancyType
	occupants          Occupants
	note               Note
	status             Status
	requesterConfirmed bool
	createdAt          time.Time
	updatedAt          time.Time
}

type Application struct {
	TenancyType TenancyType
	Occupants   Occupants
	Note        Note
}

func NewRequest(apartmentID, requesterID, ownerID uuid.UUID, app Application, now time.Time) (*Request, error) {
	if requesterID == ownerID {
		return nil, ErrOwnApartment
	}
	if !app.TenancyType.IsValid() {
		return nil, ErrInvalidTenancyType
	}
	if _, err := NewOccupants(app.Occupants.Int()); err != nil {
		return nil, err
	}
	return &Request{
		id:          uuid.New(),
		apartmentID: apartmentID,
		requesterID: requesterID,
		ownerID:     ownerID,
		tenancyType: app.TenancyType,
		occupants:   app.Occupants,
		note:        app.Note,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRequest(
	id, apartmentID, requesterID, ownerID uuid.UUID,
	app Application,
	status Status,
	requesterConfirmed bool,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                 id,
		apartmentID:        apartmentID,
		requesterID:        requesterID,
		ownerID:            ownerID,
		tenancyType:        app.TenancyType,
		occupants:          app.Occupants,
		note:               app.Note,
		status:             status,
		requesterConfirmed: requesterConfirmed,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

func (r *Request) ID() uuid.UUID                 { return r.id }
func (r *Request) ApartmentID() uuid.UUID        { return r.apartmentID }
func (r *Request) RequesterID() uuid.UUID        { return r.requesterID }
func (r *Request) OwnerID() uuid.UUID            { return r.ownerID }
func (r *Request) TenancyType() TenancyType      { return r.tenancyType }
func (r *Request) Occupants() Occupants          { return r.occupants }
func (r *Request) Note() Note                    { return r.note }
func (r *Request) Status() Status                { return r.status }
func (r *Request) RequesterConfirmed() bool      { return r.requesterConfirmed }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }
func (r *Request) IsPending() bool               { return r.status == StatusPending }
func (r *Request) IsAccepted() bool              { return r.status == StatusAccepted }
func (r *Request) IsVisibleTo(id uuid.UUID) bool { return id == r.requesterID || id == r.ownerID }

func (r *Request) Accept(actorID uuid.UUID, now time.Time) error {
	return r.decide(actorID, StatusAccepted, now)
}

func (r *Request) Reject(actorID uuid.UUID, now time.Time) error {
	return r.decide(actorID, StatusRejected, now)
}

func (r *Request) decide(actorID uuid.UUID, to Status, now time.Time) error {
	if actorID != r.ownerID {
		return ErrNotRequestOwner
	}
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = to
	r.updatedAt = now
	return nil
}

// Confirm marks the requester's final consent. The request is consumed by
// the allotment that follows, so the flag is never persisted on its own.
func (r *Request) Confirm(actorID uuid.UUID, now time.Time) error {
	if actorID != r.requesterID {
		return ErrNotRequester
	}
	if r.status != StatusAccepted {
		return ErrNotAccepted
	}
	r.requesterConfirmed = true
	r.updatedAt = now
	return nil
}
