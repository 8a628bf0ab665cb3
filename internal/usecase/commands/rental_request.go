package commands

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRequestInput struct {
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	TenancyType string
	Occupants   int
	Note        string
}

func (in CreateRequestInput) application() (rentalrequest.Application, error) {
	tt, err := rentalrequest.NewTenancyType(in.TenancyType)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	occ, err := rentalrequest.NewOccupants(in.Occupants)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	note, err := rentalrequest.NewNote(in.Note)
	if err != nil {
		return rentalrequest.Application{}, err
	}
	return rentalrequest.Application{TenancyType: tt, Occupants: occ, Note: note}, nil
}

//go:generate mockgen -source=rental_request.go -destination=../../../tests/mock/commands/rental_request.go -package=commandsmock
type RequestCommands interface {
	Create(ctx context.Context, in CreateRequestInput) (uuid.UUID, error)
	Accept(ctx context.Context, requestID, actorID uuid.UUID) error
	Reject(ctx context.Context, requestID, actorID uuid.UUID) error
	// Confirm is the tenant's final acceptance. It commits the allotment in
	// the same transaction.
	Confirm(ctx context.Context, requestID, actorID uuid.UUID) (*AllotmentResult, error)
}

type requestCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	committer AllotmentCommitter
	listings  shared.ListingInvalidator
}

func NewRequestCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	committer AllotmentCommitter,
	listings shared.ListingInvalidator,
) RequestCommands {
	return &requestCommandsImpl{
		uow:       uow,
		clock:     clk,
		committer: committer,
		listings:  listings,
	}
}

func (uc *requestCommandsImpl) Create(ctx context.Context, in CreateRequestInput) (uuid.UUID, error) {
	app, err := in.application()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Apartment then requester, the order the allotment commit locks in.
		// Holding both keeps a request from landing after either purge.
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, in.ApartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		requester, err := tx.Users().FindByIDForUpdate(ctx, in.RequesterID)
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if apt.IsOwnedBy(in.RequesterID) {
			return rentalrequest.ErrOwnApartment
		}
		if !requester.IsTenant() {
			return user.ErrTenantRoleRequired
		}
		if requester.HasAllotment() {
			return user.ErrTenantAlreadyAllotted
		}
		if err := apt.EnsureAcceptsRequests(); err != nil {
			return err
		}

		exists, err := tx.Requests().ExistsLive(ctx, in.ApartmentID, in.RequesterID)
		if err != nil {
			return err
		}
		if exists {
			return rentalrequest.ErrAlreadyRequested
		}

		r, err := rentalrequest.NewRequest(in.ApartmentID, in.RequesterID, apt.OwnerID(), app, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Requests().Create(ctx, r); err != nil {
			return conflictAs(err, rentalrequest.ErrAlreadyRequested)
		}
		id = r.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *requestCommandsImpl) Accept(ctx context.Context, requestID, actorID uuid.UUID) error {
	return uc.decide(ctx, requestID, func(r *rentalrequest.Request) error {
		return r.Accept(actorID, uc.clock.Now())
	})
}

func (uc *requestCommandsImpl) Reject(ctx context.Context, requestID, actorID uuid.UUID) error {
	return uc.decide(ctx, requestID, func(r *rentalrequest.Request) error {
		return r.Reject(actorID, uc.clock.Now())
	})
}

func (uc *requestCommandsImpl) decide(ctx context.Context, requestID uuid.UUID, transition func(*rentalrequest.Request) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return notFoundAs(err, rentalrequest.ErrRequestNotFound)
		}
		if err := transition(r); err != nil {
			return err
		}
		return notFoundAs(tx.Requests().UpdateStatus(ctx, r), rentalrequest.ErrRequestNotFound)
	})
}

func (uc *requestCommandsImpl) Confirm(ctx context.Context, requestID, actorID uuid.UUID) (*AllotmentResult, error) {
	var result *AllotmentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Requests().FindByIDForUpdate(ctx, requestID)
		if err != nil {
			return notFoundAs(err, rentalrequest.ErrRequestNotFound)
		}
		if err := r.Confirm(actorID, uc.clock.Now()); err != nil {
			return err
		}

		// the commit purges this request along with its siblings
		result, err = uc.committer.CommitWithin(ctx, tx, r.ApartmentID(), r.RequesterID())
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.listings.InvalidateListings(ctx)
	return result, nil
}
