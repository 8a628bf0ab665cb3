//go:build unit || e2e

package builder

import (
	"time"

	"tenancy-service/internal/domain/rentalrequest"
	reqdto "tenancy-service/internal/handler/dto/request"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	OwnerID     uuid.UUID
	TenancyType string
	Occupants   int
	Note        string
	Status      rentalrequest.Status
	Now         time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ApartmentID: uuid.New(),
		RequesterID: uuid.New(),
		OwnerID:     uuid.New(),
		TenancyType: "family",
		Occupants:   3,
		Note:        "Moving in with my parents",
		Status:      rentalrequest.StatusPending,
		Now:         time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// For points the request at an apartment owned by ownerID.
func (b *RequestBuilder) For(apartmentID, ownerID uuid.UUID) *RequestBuilder {
	b.ApartmentID = apartmentID
	b.OwnerID = ownerID
	return b
}

func (b *RequestBuilder) By(requesterID uuid.UUID) *RequestBuilder {
	b.RequesterID = requesterID
	return b
}

func (b *RequestBuilder) Accepted() *RequestBuilder {
	b.Status = rentalrequest.StatusAccepted
	return b
}

func (b *RequestBuilder) Rejected() *RequestBuilder {
	b.Status = rentalrequest.StatusRejected
	return b
}

func (b *RequestBuilder) BuildApplication() (rentalrequest.Application, error) {
	tt, err := rentalrequest.NewTenancyType(b.TenancyType)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	occupants, err := rentalrequest.NewOccupants(b.Occupants)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	note, err := rentalrequest.NewNote(b.Note)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	return rentalrequest.Application{TenancyType: tt, Occupants: occupants, Note: note}, nil
}

// BuildDomain returns a pending request unless a status was set, in which
// case it is rebuilt in that state.
func (b *RequestBuilder) BuildDomain() (*rentalrequest.Request, error) {
	app, err := b.BuildApplication()
	if err != nil {
		return nil, err
	}
	r, err := rentalrequest.NewRequest(b.ApartmentID, b.RequesterID, b.OwnerID, app, b.Now)
	if err != nil {
		return nil, err
	}
	if b.Status == rentalrequest.StatusPending {
		return r, nil
	}
	return rentalrequest.ReconstructRequest(r.ID(), b.ApartmentID, b.RequesterID, b.OwnerID, app, b.Status, false, b.Now, b.Now), nil
}

func (b *RequestBuilder) MustBuildDomain() *rentalrequest.Request {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *RequestBuilder) BuildDTO() reqdto.CreateRentalRequest {
	return reqdto.CreateRentalRequest{
		TenancyType: b.TenancyType,
		Occupants:   b.Occupants,
		Note:        b.Note,
	}
}
