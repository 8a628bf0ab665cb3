//go:build unit

package user_test

import (
	"testing"
	"time"

	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds an active tenant", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		profile, err := builder.NewUserBuilder().BuildProfile()
		require.NoError(t, err)
		expected := user.NewUser(profile, "hashed_password", user.RoleTenant, actual.CreatedAt())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.IsTenant())
		assert.Nil(t, actual.LastLogin())
		assert.False(t, actual.HasAllotment())
		assert.Equal(t, "test@example.com", actual.Email().Value())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "owner",
				mutate: func(b *builder.UserBuilder) { b.AsOwner() },
			},
			{
				name:   "tenant",
				mutate: func(b *builder.UserBuilder) { b.WithRole("tenant") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("profile", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character name",
				mutate: func(b *builder.UserBuilder) { b.WithName("R") },
				errIs:  user.ErrInvalidName,
			},
			{
				name:   "phone with separators",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("+880 1712-345678") },
			},
			{
				name:   "short phone",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("12345") },
				errIs:  user.ErrInvalidPhone,
			},
			{
				name:   "seventeen digit nid",
				mutate: func(b *builder.UserBuilder) { b.WithNID("12345678901234567") },
			},
			{
				name:   "nid with letters",
				mutate: func(b *builder.UserBuilder) { b.WithNID("12345ABCDE") },
				errIs:  user.ErrInvalidNID,
			},
		})
	})

	t.Run("state", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "active",
				mutate: func(b *builder.UserBuilder) {},
			},
			{
				name:   "inactive",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})
	})
}

func TestUserAllotment(t *testing.T) {
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	apartmentID := uuid.New()

	t.Run("tenant takes one apartment", func(t *testing.T) {
		u := builder.NewUserBuilder().MustBuildDomain()

		require.NoError(t, u.AssignApartment(apartmentID, now))
		require.NotNil(t, u.AllottedApartmentID())
		assert.Equal(t, apartmentID, *u.AllottedApartmentID())
		assert.Equal(t, now, u.UpdatedAt())

		err := u.AssignApartment(uuid.New(), now)
		require.ErrorIs(t, err, user.ErrTenantAlreadyAllotted)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("owner cannot be allotted", func(t *testing.T) {
		u := builder.NewUserBuilder().AsOwner().MustBuildDomain()

		err := u.AssignApartment(apartmentID, now)
		require.ErrorIs(t, err, user.ErrTenantRoleRequired)
		assert.Nil(t, u.AllottedApartmentID())
	})

	t.Run("release checks the apartment", func(t *testing.T) {
		u := builder.NewUserBuilder().MustBuildDomain()
		require.NoError(t, u.AssignApartment(apartmentID, now))

		require.ErrorIs(t, u.ReleaseApartment(uuid.New(), now), user.ErrNotAllottedThere)
		require.NoError(t, u.ReleaseApartment(apartmentID, now))
		assert.False(t, u.HasAllotment())
		require.ErrorIs(t, u.ReleaseApartment(apartmentID, now), user.ErrNotAllottedThere)
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
