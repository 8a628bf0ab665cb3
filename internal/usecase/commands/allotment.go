package commands

import (
	"context"
	"log/slog"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const tenantAllotmentConstraint = "allotments_active_tenant_key"

type AllotmentResult struct {
	AllotmentID    uuid.UUID
	ApartmentID    uuid.UUID
	TenantID       uuid.UUID
	StartedAt      time.Time
	PurgedRequests int64
}

//go:generate mockgen -source=allotment.go -destination=../../../tests/mock/commands/allotment.go -package=commandsmock
type AllotmentCommands interface {
	Commit(ctx context.Context, apartmentID, tenantID uuid.UUID) (*AllotmentResult, error)
	Vacate(ctx context.Context, apartmentID, ownerID uuid.UUID) error
}

// AllotmentCommitter runs a commit inside a transaction the caller already holds.
type AllotmentCommitter interface {
	CommitWithin(ctx context.Context, tx shared.Tx, apartmentID, tenantID uuid.UUID) (*AllotmentResult, error)
}

type AllotmentManager struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	listings shared.ListingInvalidator
}

func NewAllotmentManager(uow shared.UnitOfWork, clk clock.Clock, listings shared.ListingInvalidator) *AllotmentManager {
	return &AllotmentManager{
		uow:      uow,
		clock:    clk,
		listings: listings,
	}
}

func (m *AllotmentManager) Commit(ctx context.Context, apartmentID, tenantID uuid.UUID) (*AllotmentResult, error) {
	var result *AllotmentResult
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = m.CommitWithin(ctx, tx, apartmentID, tenantID)
		return err
	})
	if err != nil {
		return nil, err
	}

	m.listings.InvalidateListings(ctx)
	return result, nil
}

// CommitWithin allots the apartment to the tenant and purges every other
// live request of both. The apartment row is locked before the tenant row.
func (m *AllotmentManager) CommitWithin(ctx context.Context, tx shared.Tx, apartmentID, tenantID uuid.UUID) (*AllotmentResult, error) {
	apt, err := tx.Apartments().FindByIDForUpdate(ctx, apartmentID)
	if err != nil {
		return nil, notFoundAs(err, apartment.ErrApartmentNotFound)
	}
	tenant, err := tx.Users().FindByIDForUpdate(ctx, tenantID)
	if err != nil {
		return nil, notFoundAs(err, user.ErrUserNotFound)
	}
	if !tenant.IsTenant() {
		return nil, user.ErrTenantRoleRequired
	}

	now := m.clock.Now()
	allotment, err := apt.Allot(tenantID, now)
	if err != nil {
		return nil, err
	}
	if err := tenant.AssignApartment(apartmentID, now); err != nil {
		return nil, err
	}

	purgedByApartment, err := tx.Requests().DeleteByApartment(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	purgedByTenant, err := tx.Requests().DeleteByRequester(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := tx.Allotments().Create(ctx, allotment); err != nil {
		return nil, duplicateAllotment(err)
	}
	if err := tx.Users().AssignAllotment(ctx, tenantID, apartmentID); err != nil {
		return nil, conflictAs(err, user.ErrTenantAlreadyAllotted)
	}

	slog.Info("allotment committed",
		"allotment_id", allotment.ID(),
		"apartment_id", apartmentID,
		"tenant_id", tenantID,
		"purged_requests", purgedByApartment+purgedByTenant)

	return &AllotmentResult{
		AllotmentID:    allotment.ID(),
		ApartmentID:    apartmentID,
		TenantID:       tenantID,
		StartedAt:      allotment.StartedAt(),
		PurgedRequests: purgedByApartment + purgedByTenant,
	}, nil
}

func (m *AllotmentManager) Vacate(ctx context.Context, apartmentID, ownerID uuid.UUID) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, apartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		if err := apt.EnsureOwner(ownerID); err != nil {
			return err
		}

		now := m.clock.Now()
		ended, err := apt.Vacate(now)
		if err != nil {
			return err
		}
		tenant, err := tx.Users().FindByIDForUpdate(ctx, ended.TenantID())
		if err != nil {
			return notFoundAs(err, user.ErrUserNotFound)
		}
		if err := tenant.ReleaseApartment(apartmentID, now); err != nil {
			return err
		}

		if err := tx.Allotments().End(ctx, ended); err != nil {
			return conflictAs(err, apartment.ErrAllotmentEnded)
		}
		return conflictAs(tx.Users().ReleaseAllotment(ctx, ended.TenantID(), apartmentID), user.ErrNotAllottedThere)
	})
	if err != nil {
		return err
	}

	m.listings.InvalidateListings(ctx)
	return nil
}

func duplicateAllotment(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return err
	}
	if infra.ConstraintName(err) == tenantAllotmentConstraint {
		return user.ErrTenantAlreadyAllotted
	}
	return apartment.ErrApartmentUnavailable
}
