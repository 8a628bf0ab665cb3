package queries

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/rentalrequest"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rental_request.go -destination=../../../tests/mock/queries/rental_request.go -package=queriesmock
type RequestQueries interface {
	GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error)
	ListForApartment(ctx context.Context, apartmentID, ownerID uuid.UUID) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error)
	ListByApartment(ctx context.Context, apartmentID uuid.UUID) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests   RequestReadStore
	apartments ApartmentReadStore
}

func NewRequestQueries(requests RequestReadStore, apartments ApartmentReadStore) RequestQueries {
	return &requestQueriesImpl{
		requests:   requests,
		apartments: apartments,
	}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, actorID uuid.UUID) (*RequestView, error) {
	r, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, notFoundAs(err, rentalrequest.ErrRequestNotFound)
	}
	if r.RequesterID != actorID && r.OwnerID != actorID {
		return nil, rentalrequest.ErrRequestNotVisible
	}
	return r, nil
}

func (q *requestQueriesImpl) ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*RequestView, error) {
	return q.requests.ListByRequester(ctx, requesterID)
}

func (q *requestQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*RequestView, error) {
	return q.requests.ListByOwner(ctx, ownerID)
}

func (q *requestQueriesImpl) ListForApartment(ctx context.Context, apartmentID, ownerID uuid.UUID) ([]*RequestView, error) {
	apt, err := q.apartments.FindByID(ctx, apartmentID)
	if err != nil {
		return nil, notFoundAs(err, apartment.ErrApartmentNotFound)
	}
	if apt.OwnerID != ownerID {
		return nil, apartment.ErrNotApartmentOwner
	}
	return q.requests.ListByApartment(ctx, apartmentID)
}
