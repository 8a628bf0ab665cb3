//go:build unit

package apartment_test

import (
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApartment(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.ApartmentBuilder)
		errIs  error
	}{
		{name: "defaults", mutate: func(*builder.ApartmentBuilder) {}},
		{name: "ground floor", mutate: func(b *builder.ApartmentBuilder) { b.Floor = 0 }},
		{name: "blank area", mutate: func(b *builder.ApartmentBuilder) { b.Area = "  " }, errIs: apartment.ErrInvalidAddress},
		{name: "zero rent", mutate: func(b *builder.ApartmentBuilder) { b.RentalPrice = "0" }, errIs: money.ErrNonPositive},
		{name: "zero size", mutate: func(b *builder.ApartmentBuilder) { b.SizeSqft = 0 }, errIs: apartment.ErrInvalidSize},
		{name: "no rooms", mutate: func(b *builder.ApartmentBuilder) { b.TotalRooms = 0 }, errIs: apartment.ErrInvalidRooms},
		{name: "negative bathrooms", mutate: func(b *builder.ApartmentBuilder) { b.Bathrooms = -1 }, errIs: apartment.ErrInvalidRooms},
		{name: "floor above building", mutate: func(b *builder.ApartmentBuilder) { b.Floor = 7 }, errIs: apartment.ErrInvalidFloor},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			apt, err := builder.NewApartmentBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Nil(t, apt)
				return
			}
			require.NoError(t, err)
			assert.False(t, apt.IsAllotted())
			assert.Equal(t, apt.CreatedAt(), apt.UpdatedAt())
		})
	}
}

func TestApartmentAllotment(t *testing.T) {
	start := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	tenantID := uuid.New()

	t.Run("allot then vacate", func(t *testing.T) {
		apt := builder.NewApartmentBuilder().MustBuildDomain()

		al, err := apt.Allot(tenantID, start)
		require.NoError(t, err)
		assert.True(t, apt.IsAllotted())
		assert.Equal(t, tenantID, al.TenantID())
		assert.Equal(t, apt.ID(), al.ApartmentID())
		assert.Empty(t, al.PaymentIDs())
		assert.True(t, al.IsActive())

		require.ErrorIs(t, apt.EnsureAcceptsRequests(), apartment.ErrApartmentUnavailable)
		require.ErrorIs(t, apt.EnsureDeletable(), apartment.ErrApartmentOccupied)

		_, err = apt.Allot(uuid.New(), start)
		require.ErrorIs(t, err, apartment.ErrApartmentUnavailable)

		end := start.AddDate(0, 3, 0)
		ended, err := apt.Vacate(end)
		require.NoError(t, err)
		assert.False(t, ended.IsActive())
		require.NotNil(t, ended.EndedAt())
		assert.Equal(t, end, *ended.EndedAt())
		assert.False(t, apt.IsAllotted())
		require.NoError(t, apt.EnsureAcceptsRequests())

		_, err = apt.Vacate(end)
		require.ErrorIs(t, err, apartment.ErrNotAllotted)
	})

	t.Run("active allotment of a vacant apartment", func(t *testing.T) {
		apt := builder.NewApartmentBuilder().MustBuildDomain()
		_, err := apt.ActiveAllotment()
		require.ErrorIs(t, err, apartment.ErrNotAllotted)
	})

	t.Run("payment history is append only", func(t *testing.T) {
		apt := builder.NewApartmentBuilder().AllottedTo(tenantID, start).MustBuildDomain()
		al, err := apt.ActiveAllotment()
		require.NoError(t, err)

		first, second := uuid.New(), uuid.New()
		require.NoError(t, al.RecordPayment(first))
		require.NoError(t, al.RecordPayment(second))
		require.ErrorIs(t, al.RecordPayment(first), apartment.ErrPaymentAlreadyRecorded)
		assert.Equal(t, []uuid.UUID{first, second}, al.PaymentIDs())

		ids := al.PaymentIDs()
		ids[0] = uuid.Nil
		assert.Equal(t, first, al.PaymentIDs()[0])
	})

	t.Run("unpaid months follow the tenancy start", func(t *testing.T) {
		apt := builder.NewApartmentBuilder().AllottedTo(tenantID, start).MustBuildDomain()
		al, err := apt.ActiveAllotment()
		require.NoError(t, err)

		paid := []ledger.YearMonth{ledger.MustParseYearMonth("2024-01"), ledger.MustParseYearMonth("2024-03")}
		got := al.UnpaidMonths(paid, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"2024-02", "2024-04"}, ledger.Labels(got))
	})
}

func TestApartmentOwnership(t *testing.T) {
	ownerID := uuid.New()
	apt := builder.NewApartmentBuilder().WithOwner(ownerID).MustBuildDomain()

	require.NoError(t, apt.EnsureOwner(ownerID))
	err := apt.EnsureOwner(uuid.New())
	require.ErrorIs(t, err, apartment.ErrNotApartmentOwner)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}

func TestApartmentUpdate(t *testing.T) {
	apt := builder.NewApartmentBuilder().MustBuildDomain()
	later := apt.UpdatedAt().Add(time.Hour)

	attrs, err := builder.NewApartmentBuilder().WithRentalPrice("18000").BuildAttributes()
	require.NoError(t, err)
	require.NoError(t, apt.Update(attrs, later))
	assert.Equal(t, "18000.00", apt.Attributes().RentalPrice.String())
	assert.Equal(t, later, apt.UpdatedAt())

	bad := attrs
	bad.Floor = bad.TotalFloors + 1
	require.ErrorIs(t, apt.Update(bad, later), apartment.ErrInvalidFloor)
	assert.Equal(t, "18000.00", apt.Attributes().RentalPrice.String())
}

func TestAddressMatches(t *testing.T) {
	addr, err := apartment.NewAddress("House 12, Road 5", "Dhanmondi", "Dhaka")
	require.NoError(t, err)

	assert.True(t, addr.Matches(""))
	assert.True(t, addr.Matches("dhanmondi"))
	assert.True(t, addr.Matches("ROAD 5"))
	assert.False(t, addr.Matches("Gulshan"))
}
