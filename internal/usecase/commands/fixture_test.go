//go:build unit

package commands_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/tests/common/builder"
	"tenancy-service/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type listingRecorder struct {
	calls atomic.Int32
}

func (r *listingRecorder) InvalidateListings(context.Context) {
	r.calls.Add(1)
}

func (r *listingRecorder) Calls() int {
	return int(r.calls.Load())
}

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	listings *listingRecorder
	owner    *user.User
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		store:    memstore.New(),
		clock:    clock.NewMockClock(now),
		listings: &listingRecorder{},
		owner:    builder.NewUserBuilder().WithEmail("owner@example.com").AsOwner().MustBuildDomain(),
	}
	f.store.PutUser(f.owner)
	return f
}

func (f *fixture) tenant(email string) *user.User {
	u := builder.NewUserBuilder().WithEmail(email).MustBuildDomain()
	f.store.PutUser(u)
	return u
}

func (f *fixture) vacantApartment() *apartment.Apartment {
	apt := builder.NewApartmentBuilder().WithOwner(f.owner.ID()).MustBuildDomain()
	f.store.PutApartment(apt)
	return apt
}

// allottedApartment seeds an apartment rented to tenant since startedAt,
// including the tenant's back-reference.
func (f *fixture) allottedApartment(t *testing.T, tenant *user.User, startedAt time.Time) *apartment.Apartment {
	t.Helper()
	apt := builder.NewApartmentBuilder().WithOwner(f.owner.ID()).AllottedTo(tenant.ID(), startedAt).MustBuildDomain()
	require.NoError(t, tenant.AssignApartment(apt.ID(), startedAt))
	f.store.PutApartment(apt)
	f.store.PutUser(tenant)
	return apt
}

func (f *fixture) mustUser(t *testing.T, id uuid.UUID) *user.User {
	t.Helper()
	u, ok := f.store.User(id)
	require.True(t, ok, "user %s not stored", id)
	return u
}

func (f *fixture) mustApartment(t *testing.T, id uuid.UUID) *apartment.Apartment {
	t.Helper()
	apt, ok := f.store.Apartment(id)
	require.True(t, ok, "apartment %s not stored", id)
	return apt
}
