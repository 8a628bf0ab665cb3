package apartment

import (
	"time"

	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrApartmentNotFound    = errs.NotFound("apartment not found")
	ErrApartmentUnavailable = errs.Conflict("apartment is already allotted")
	ErrNotAllotted          = errs.Conflict("apartment has no active allotment")
	ErrNotApartmentOwner    = errs.Forbidden("only the apartment owner can do this")
	ErrApartmentOccupied    = errs.Conflict("apartment with an active allotment cannot be deleted")
)

type Apartment struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	attributes Attributes
	allotment  *Allotment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewApartment(ownerID uuid.UUID, attrs Attributes, now time.Time) (*Apartment, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	return &Apartment{
		id:         uuid.New(),
		ownerID:    ownerID,
		attributes: attrs,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructApartment rebuilds a stored apartment. allotment must be the
// active one or nil.
func ReconstructApartment(id, ownerID uuid.UUID, attrs Attributes, allotment *Allotment, createdAt, updatedAt time.Time) *Apartment {
	return &Apartment{
		id:         id,
		ownerID:    ownerID,
		attributes: attrs,
		allotment:  allotment,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Apartment) ID() uuid.UUID          { return a.id }
func (a *Apartment) OwnerID() uuid.UUID     { return a.ownerID }
func (a *Apartment) Attributes() Attributes { return a.attributes }
func (a *Apartment) Allotment() *Allotment  { return a.allotment }
func (a *Apartment) IsAllotted() bool       { return a.allotment != nil }
func (a *Apartment) CreatedAt() time.Time   { return a.createdAt }
func (a *Apartment) UpdatedAt() time.Time   { return a.updatedAt }

func (a *Apartment) IsOwnedBy(userID uuid.UUID) bool {
	return a.ownerID == userID
}

func (a *Apartment) EnsureOwner(userID uuid.UUID) error {
	if !a.IsOwnedBy(userID) {
		return ErrNotApartmentOwner
	}
	return nil
}

// EnsureAcceptsRequests guards request creation: an allotted apartment takes no new applicants.
func (a *Apartment) EnsureAcceptsRequests() error {
	if a.allotment != nil {
		return ErrApartmentUnavailable
	}
	return nil
}

func (a *Apartment) Update(attrs Attributes, now time.Time) error {
	if err := attrs.Validate(); err != nil {
		return err
	}
	a.attributes = attrs
	a.updatedAt = now
	return nil
}

func (a *Apartment) EnsureDeletable() error {
	if a.allotment != nil {
		return ErrApartmentOccupied
	}
	return nil
}

// Allot starts a tenancy with an empty payment history.
func (a *Apartment) Allot(tenantID uuid.UUID, now time.Time) (*Allotment, error) {
	if a.allotment != nil {
		return nil, ErrApartmentUnavailable
	}
	a.allotment = newAllotment(a.id, tenantID, now)
	a.updatedAt = now
	return a.allotment, nil
}

// Vacate ends the active tenancy and returns it.
func (a *Apartment) Vacate(now time.Time) (*Allotment, error) {
	if a.allotment == nil {
		return nil, ErrNotAllotted
	}
	ended := a.allotment
	if err := ended.end(now); err != nil {
		return nil, err
	}
	a.allotment = nil
	a.updatedAt = now
	return ended, nil
}

// ActiveAllotment returns the tenancy or ErrNotAllotted.
func (a *Apartment) ActiveAllotment() (*Allotment, error) {
	if a.allotment == nil {
		return nil, ErrNotAllotted
	}
	return a.allotment, nil
}
