package commands

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/patch"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOwnerRoleRequired = errs.Forbidden("only owners can list apartments")
	ErrEmptyPatch        = errs.Validation("no fields to update")
)

type ApartmentInput struct {
	Street      string
	Area        string
	City        string
	RentalPrice string
	SizeSqft    int
	Description string
	TotalRooms  int
	Bedrooms    int
	Bathrooms   int
	HasParking  bool
	HasElevator bool
	TotalFloors int
	Floor       int
}

func (in ApartmentInput) attributes() (apartment.Attributes, error) {
	addr, err := apartment.NewAddress(in.Street, in.Area, in.City)
	if err != nil {
		return apartment.Attributes{}, err
	}
	price, err := money.ParseAmount(in.RentalPrice)
	if err != nil {
		return apartment.Attributes{}, err
	}
	return apartment.Attributes{
		Address:     addr,
		RentalPrice: price,
		SizeSqft:    in.SizeSqft,
		Description: in.Description,
		TotalRooms:  in.TotalRooms,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		HasParking:  in.HasParking,
		HasElevator: in.HasElevator,
		TotalFloors: in.TotalFloors,
		Floor:       in.Floor,
	}, nil
}

// ApartmentPatch is a partial update; nil fields keep their stored value.
type ApartmentPatch struct {
	Street      *string
	Area        *string
	City        *string
	RentalPrice *string
	SizeSqft    *int
	Description *string
	TotalRooms  *int
	Bedrooms    *int
	Bathrooms   *int
	HasParking  *bool
	HasElevator *bool
	TotalFloors *int
	Floor       *int
}

func (p ApartmentPatch) isEmpty() bool {
	return !patch.Any(
		p.Street != nil, p.Area != nil, p.City != nil, p.RentalPrice != nil,
		p.SizeSqft != nil, p.Description != nil, p.TotalRooms != nil,
		p.Bedrooms != nil, p.Bathrooms != nil, p.HasParking != nil,
		p.HasElevator != nil, p.TotalFloors != nil, p.Floor != nil,
	)
}

func (p ApartmentPatch) apply(cur apartment.Attributes) (apartment.Attributes, error) {
	addr := cur.Address
	if p.Street != nil || p.Area != nil || p.City != nil {
		var err error
		addr, err = apartment.NewAddress(
			patch.Coalesce(p.Street, cur.Address.Street()),
			patch.Coalesce(p.Area, cur.Address.Area()),
			patch.Coalesce(p.City, cur.Address.City()),
		)
		if err != nil {
			return apartment.Attributes{}, err
		}
	}

	price := cur.RentalPrice
	if p.RentalPrice != nil {
		var err error
		if price, err = money.ParseAmount(*p.RentalPrice); err != nil {
			return apartment.Attributes{}, err
		}
	}

	return apartment.Attributes{
		Address:     addr,
		RentalPrice: price,
		SizeSqft:    patch.Coalesce(p.SizeSqft, cur.SizeSqft),
		Description: patch.Coalesce(p.Description, cur.Description),
		TotalRooms:  patch.Coalesce(p.TotalRooms, cur.TotalRooms),
		Bedrooms:    patch.Coalesce(p.Bedrooms, cur.Bedrooms),
		Bathrooms:   patch.Coalesce(p.Bathrooms, cur.Bathrooms),
		HasParking:  patch.Coalesce(p.HasParking, cur.HasParking),
		HasElevator: patch.Coalesce(p.HasElevator, cur.HasElevator),
		TotalFloors: patch.Coalesce(p.TotalFloors, cur.TotalFloors),
		Floor:       patch.Coalesce(p.Floor, cur.Floor),
	}, nil
}

//go:generate mockgen -source=apartment.go -destination=../../../tests/mock/commands/apartment.go -package=commandsmock
type ApartmentCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, in ApartmentInput) (uuid.UUID, error)
	Update(ctx context.Context, apartmentID, ownerID uuid.UUID, p ApartmentPatch) error
	Delete(ctx context.Context, apartmentID, ownerID uuid.UUID) error
}

type apartmentCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	listings shared.ListingInvalidator
}

func NewApartmentCommands(uow shared.UnitOfWork, clk clock.Clock, listings shared.ListingInvalidator) ApartmentCommands {
	return &apartmentCommandsImpl{
		uow:      uow,
		clock:    clk,
		listings: listings,
	}
}

func (uc *apartmentCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, in ApartmentInput) (uuid.UUID, error) {
	attrs, err := in.attributes()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Users().FindByID(ctx, ownerID)
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if !owner.IsOwner() {
			return ErrOwnerRoleRequired
		}

		apt, err := apartment.NewApartment(ownerID, attrs, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Apartments().Create(ctx, apt); err != nil {
			return err
		}
		id = apt.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.listings.InvalidateListings(ctx)
	return id, nil
}

func (uc *apartmentCommandsImpl) Update(ctx context.Context, apartmentID, ownerID uuid.UUID, p ApartmentPatch) error {
	if p.isEmpty() {
		return ErrEmptyPatch
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, apartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		if err := apt.EnsureOwner(ownerID); err != nil {
			return err
		}

		attrs, err := p.apply(apt.Attributes())
		if err != nil {
			return err
		}
		if err := apt.Update(attrs, uc.clock.Now()); err != nil {
			return err
		}
		return notFoundAs(tx.Apartments().Update(ctx, apt), apartment.ErrApartmentNotFound)
	})
	if err != nil {
		return err
	}

	uc.listings.InvalidateListings(ctx)
	return nil
}

func (uc *apartmentCommandsImpl) Delete(ctx context.Context, apartmentID, ownerID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, apartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		if err := apt.EnsureOwner(ownerID); err != nil {
			return err
		}
		if err := apt.EnsureDeletable(); err != nil {
			return err
		}
		// requests and ended allotments go with it through the cascade
		return notFoundAs(tx.Apartments().Delete(ctx, apartmentID), apartment.ErrApartmentNotFound)
	})
	if err != nil {
		return err
	}

	uc.listings.InvalidateListings(ctx)
	return nil
}
