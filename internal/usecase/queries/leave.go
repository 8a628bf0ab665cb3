package queries

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=leave.go -destination=../../../tests/mock/queries/leave.go -package=queriesmock
type LeaveQueries interface {
	GetForApartment(ctx context.Context, apartmentID, actorID uuid.UUID) (*LeaveRequestView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*LeaveRequestView, error)
}

type LeaveReadStore interface {
	FindCurrentByApartment(ctx context.Context, apartmentID uuid.UUID) (*LeaveRequestView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*LeaveRequestView, error)
}

type leaveQueriesImpl struct {
	leaves     LeaveReadStore
	apartments ApartmentReadStore
}

func NewLeaveQueries(leaves LeaveReadStore, apartments ApartmentReadStore) LeaveQueries {
	return &leaveQueriesImpl{
		leaves:     leaves,
		apartments: apartments,
	}
}

// GetForApartment returns the leave request of the current tenancy.
func (q *leaveQueriesImpl) GetForApartment(ctx context.Context, apartmentID, actorID uuid.UUID) (*LeaveRequestView, error) {
	apt, err := q.apartments.FindByID(ctx, apartmentID)
	if err != nil {
		return nil, notFoundAs(err, apartment.ErrApartmentNotFound)
	}

	if apt.OwnerID != actorID {
		allotment, err := q.apartments.FindActiveAllotment(ctx, apartmentID)
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, leave.ErrLeaveNotVisible
		}
		if err != nil {
			return nil, err
		}
		if allotment.TenantID != actorID {
			return nil, leave.ErrLeaveNotVisible
		}
	}

	l, err := q.leaves.FindCurrentByApartment(ctx, apartmentID)
	if err != nil {
		return nil, notFoundAs(err, leave.ErrLeaveNotFound)
	}
	return l, nil
}

func (q *leaveQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID) ([]*LeaveRequestView, error) {
	return q.leaves.ListByOwner(ctx, ownerID)
}
