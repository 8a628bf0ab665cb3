//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllotmentCommitRace(t *testing.T) {
	t.Run("two tenants race for one apartment", func(t *testing.T) {
		f := newFixture(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)
		apt := f.vacantApartment()
		tenants := []*user.User{f.tenant("a@example.com"), f.tenant("b@example.com")}

		errs := make([]error, len(tenants))
		var wg sync.WaitGroup
		for i, tenant := range tenants {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = m.Commit(context.Background(), apt.ID(), tenant.ID())
			}()
		}
		wg.Wait()

		var won, lost int
		for _, err := range errs {
			if err == nil {
				won++
				continue
			}
			assert.ErrorIs(t, err, apartment.ErrApartmentUnavailable)
			lost++
		}
		assert.Equal(t, 1, won)
		assert.Equal(t, 1, lost)
		assert.Equal(t, 1, f.store.ActiveAllotmentCount())

		allotted := 0
		for _, tenant := range tenants {
			if f.mustUser(t, tenant.ID()).HasAllotment() {
				allotted++
			}
		}
		assert.Equal(t, 1, allotted)
	})

	t.Run("one tenant races for two apartments", func(t *testing.T) {
		f := newFixture(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)
		tenant := f.tenant("greedy@example.com")
		apts := []*apartment.Apartment{f.vacantApartment(), f.vacantApartment()}

		errs := make([]error, len(apts))
		var wg sync.WaitGroup
		for i, apt := range apts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = m.Commit(context.Background(), apt.ID(), tenant.ID())
			}()
		}
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, user.ErrTenantAlreadyAllotted)
				failures++
			}
		}
		assert.Equal(t, 1, failures)
		assert.Equal(t, 1, f.store.ActiveAllotmentCount())
	})
}

func TestAllotmentCommit(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("owner account cannot be allotted", func(t *testing.T) {
		f := newFixture(now)
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)
		other := f.vacantApartment()

		_, err := m.Commit(context.Background(), other.ID(), f.owner.ID())
		require.ErrorIs(t, err, user.ErrTenantRoleRequired)
		assert.Zero(t, f.store.Commits())
		assert.Zero(t, f.listings.Calls())
	})

	t.Run("unknown parties", func(t *testing.T) {
		f := newFixture(now)
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)

		_, err := m.Commit(context.Background(), uuid.New(), f.tenant("x@example.com").ID())
		require.ErrorIs(t, err, apartment.ErrApartmentNotFound)

		_, err = m.Commit(context.Background(), f.vacantApartment().ID(), uuid.New())
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestAllotmentVacate(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("ends the tenancy and frees both sides", func(t *testing.T) {
		f := newFixture(time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC))
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)
		tenant := f.tenant("leaving@example.com")
		apt := f.allottedApartment(t, tenant, start)
		allotmentID := apt.Allotment().ID()

		require.NoError(t, m.Vacate(context.Background(), apt.ID(), f.owner.ID()))

		assert.False(t, f.mustApartment(t, apt.ID()).IsAllotted())
		assert.False(t, f.mustUser(t, tenant.ID()).HasAllotment())
		ended, ok := f.store.Allotment(allotmentID)
		require.True(t, ok)
		require.NotNil(t, ended.EndedAt())
		assert.Equal(t, f.clock.Now(), *ended.EndedAt())
		assert.Equal(t, 1, f.listings.Calls())

		// a fresh tenancy may follow
		_, err := m.Commit(context.Background(), apt.ID(), f.tenant("next@example.com").ID())
		require.NoError(t, err)
	})

	t.Run("only the owner vacates", func(t *testing.T) {
		f := newFixture(time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC))
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)
		tenant := f.tenant("stay@example.com")
		apt := f.allottedApartment(t, tenant, start)

		require.ErrorIs(t, m.Vacate(context.Background(), apt.ID(), tenant.ID()), apartment.ErrNotApartmentOwner)
		assert.True(t, f.mustApartment(t, apt.ID()).IsAllotted())
	})

	t.Run("vacant apartment", func(t *testing.T) {
		f := newFixture(start)
		m := commands.NewAllotmentManager(f.store, f.clock, f.listings)

		err := m.Vacate(context.Background(), f.vacantApartment().ID(), f.owner.ID())
		require.ErrorIs(t, err, apartment.ErrNotAllotted)
	})
}
