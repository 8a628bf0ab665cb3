//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/usecase/queries"
	"tenancy-service/tests/common/builder"
	"tenancy-service/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerQueries_UnpaidMonths(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, paidMonths ...string) (*memstore.Store, *clock.MockClock, *user.User, *apartment.Apartment) {
		t.Helper()
		store := memstore.New()
		owner := builder.NewUserBuilder().WithEmail("owner@example.com").AsOwner().MustBuildDomain()
		tenant := builder.NewUserBuilder().WithEmail("tenant@example.com").MustBuildDomain()
		apt := builder.NewApartmentBuilder().WithOwner(owner.ID()).AllottedTo(tenant.ID(), startedAt).MustBuildDomain()
		require.NoError(t, tenant.AssignApartment(apt.ID(), startedAt))

		for _, label := range paidMonths {
			p := builder.NewPaymentBuilder().For(apt).ForMonth(label).Confirmed().MustBuildDomain()
			require.NoError(t, apt.Allotment().RecordPayment(p.ID()))
			store.PutPayment(p)
		}
		// pending payments never settle a month
		pending := builder.NewPaymentBuilder().For(apt).ForMonth("2024-02").MustBuildDomain()
		store.PutPayment(pending)

		store.PutUser(owner)
		store.PutUser(tenant)
		store.PutApartment(apt)
		return store, clock.NewMockClock(time.Date(2024, 4, 10, 9, 0, 0, 0, time.UTC)), tenant, apt
	}

	t.Run("owner and tenant see the same dues", func(t *testing.T) {
		store, clk, tenant, apt := setup(t, "2024-01", "2024-03")
		q := queries.NewLedgerQueries(store, clk)

		for _, actor := range []uuid.UUID{apt.OwnerID(), tenant.ID()} {
			view, err := q.UnpaidMonths(ctx, apt.ID(), actor)
			require.NoError(t, err)
			assert.Equal(t, []string{"2024-02", "2024-04"}, view.Months)
			assert.Equal(t, apt.Allotment().ID(), view.AllotmentID)
			assert.Equal(t, "15000.00", view.MonthlyRent)
			assert.Equal(t, "30000.00", view.TotalDue)
			assert.True(t, startedAt.Equal(view.StartedAt))
		}
	})

	t.Run("everything paid yields an empty list", func(t *testing.T) {
		store, clk, tenant, apt := setup(t, "2024-01", "2024-02", "2024-03", "2024-04")
		q := queries.NewLedgerQueries(store, clk)

		view, err := q.UnpaidMonths(ctx, apt.ID(), tenant.ID())
		require.NoError(t, err)
		assert.NotNil(t, view.Months)
		assert.Empty(t, view.Months)
		assert.Equal(t, "0.00", view.TotalDue)
	})

	t.Run("a new month becomes due as the clock moves", func(t *testing.T) {
		store, clk, tenant, apt := setup(t, "2024-01", "2024-02", "2024-03", "2024-04")
		q := queries.NewLedgerQueries(store, clk)

		clk.AddMonths(1)
		view, err := q.UnpaidMonths(ctx, apt.ID(), tenant.ID())
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-05"}, view.Months)
	})

	t.Run("strangers are refused", func(t *testing.T) {
		store, clk, _, apt := setup(t)
		q := queries.NewLedgerQueries(store, clk)

		_, err := q.UnpaidMonths(ctx, apt.ID(), uuid.New())
		require.ErrorIs(t, err, queries.ErrLedgerNotVisible)
	})

	t.Run("vacant apartment", func(t *testing.T) {
		store, clk, _, _ := setup(t)
		owner := builder.NewUserBuilder().WithEmail("second-owner@example.com").AsOwner().MustBuildDomain()
		vacant := builder.NewApartmentBuilder().WithOwner(owner.ID()).MustBuildDomain()
		store.PutUser(owner)
		store.PutApartment(vacant)
		q := queries.NewLedgerQueries(store, clk)

		_, err := q.UnpaidMonths(ctx, vacant.ID(), owner.ID())
		require.ErrorIs(t, err, queries.ErrNoAllotment)

		_, err = q.UnpaidMonths(ctx, vacant.ID(), uuid.New())
		require.ErrorIs(t, err, queries.ErrLedgerNotVisible)
	})

	t.Run("unknown apartment", func(t *testing.T) {
		store, clk, tenant, _ := setup(t)
		q := queries.NewLedgerQueries(store, clk)

		_, err := q.UnpaidMonths(ctx, uuid.New(), tenant.ID())
		require.ErrorIs(t, err, apartment.ErrApartmentNotFound)
	})
}
