//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/usecase/queries"
	queriesmock "tenancy-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRequestQueries(t *testing.T) {
	ctx := context.Background()
	ownerID, requesterID := uuid.New(), uuid.New()

	setup := func(t *testing.T) (*queriesmock.MockRequestReadStore, *queriesmock.MockApartmentReadStore, queries.RequestQueries) {
		ctrl := gomock.NewController(t)
		requests := queriesmock.NewMockRequestReadStore(ctrl)
		apartments := queriesmock.NewMockApartmentReadStore(ctrl)
		return requests, apartments, queries.NewRequestQueries(requests, apartments)
	}

	t.Run("GetByID is limited to the two parties", func(t *testing.T) {
		requests, _, q := setup(t)
		view := &queries.RequestView{ID: uuid.New(), RequesterID: requesterID, OwnerID: ownerID}
		requests.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(3)

		for _, actor := range []uuid.UUID{ownerID, requesterID} {
			got, err := q.GetByID(ctx, view.ID, actor)
			require.NoError(t, err)
			assert.Equal(t, view, got)
		}
		_, err := q.GetByID(ctx, view.ID, uuid.New())
		require.ErrorIs(t, err, rentalrequest.ErrRequestNotVisible)
	})

	t.Run("GetByID on a missing request", func(t *testing.T) {
		requests, _, q := setup(t)
		id := uuid.New()
		requests.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("request"))

		_, err := q.GetByID(ctx, id, ownerID)
		require.ErrorIs(t, err, rentalrequest.ErrRequestNotFound)
	})

	t.Run("ListForApartment checks ownership first", func(t *testing.T) {
		requests, apartments, q := setup(t)
		apt := &queries.ApartmentView{ID: uuid.New(), OwnerID: ownerID}
		apartments.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil).Times(2)
		requests.EXPECT().ListByApartment(gomock.Any(), apt.ID).Return([]*queries.RequestView{}, nil).Times(1)

		got, err := q.ListForApartment(ctx, apt.ID, ownerID)
		require.NoError(t, err)
		assert.Empty(t, got)

		_, err = q.ListForApartment(ctx, apt.ID, requesterID)
		require.ErrorIs(t, err, apartment.ErrNotApartmentOwner)
	})

	t.Run("listings pass through", func(t *testing.T) {
		requests, _, q := setup(t)
		mine := []*queries.RequestView{{ID: uuid.New()}}
		received := []*queries.RequestView{{ID: uuid.New()}, {ID: uuid.New()}}
		requests.EXPECT().ListByRequester(gomock.Any(), requesterID).Return(mine, nil)
		requests.EXPECT().ListByOwner(gomock.Any(), ownerID).Return(received, nil)

		got, err := q.ListByRequester(ctx, requesterID)
		require.NoError(t, err)
		assert.Equal(t, mine, got)

		got, err = q.ListForOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, received, got)
	})
}

func TestLeaveQueries(t *testing.T) {
	ctx := context.Background()
	ownerID, tenantID := uuid.New(), uuid.New()
	apt := &queries.ApartmentView{ID: uuid.New(), OwnerID: ownerID, IsAllotted: true}
	current := &queries.LeaveRequestView{ID: uuid.New(), ApartmentID: apt.ID, RequesterID: tenantID, OwnerID: ownerID, FromMonth: "2024-06"}

	setup := func(t *testing.T) (*queriesmock.MockLeaveReadStore, *queriesmock.MockApartmentReadStore, queries.LeaveQueries) {
		ctrl := gomock.NewController(t)
		leaves := queriesmock.NewMockLeaveReadStore(ctrl)
		apartments := queriesmock.NewMockApartmentReadStore(ctrl)
		apartments.EXPECT().FindByID(gomock.Any(), apt.ID).Return(apt, nil).AnyTimes()
		return leaves, apartments, queries.NewLeaveQueries(leaves, apartments)
	}

	t.Run("owner reads without an allotment lookup", func(t *testing.T) {
		leaves, _, q := setup(t)
		leaves.EXPECT().FindCurrentByApartment(gomock.Any(), apt.ID).Return(current, nil)

		got, err := q.GetForApartment(ctx, apt.ID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, current, got)
	})

	t.Run("allotted tenant reads", func(t *testing.T) {
		leaves, apartments, q := setup(t)
		apartments.EXPECT().FindActiveAllotment(gomock.Any(), apt.ID).
			Return(&queries.AllotmentView{ApartmentID: apt.ID, TenantID: tenantID}, nil)
		leaves.EXPECT().FindCurrentByApartment(gomock.Any(), apt.ID).Return(current, nil)

		got, err := q.GetForApartment(ctx, apt.ID, tenantID)
		require.NoError(t, err)
		assert.Equal(t, current, got)
	})

	t.Run("other tenants are refused", func(t *testing.T) {
		_, apartments, q := setup(t)
		apartments.EXPECT().FindActiveAllotment(gomock.Any(), apt.ID).
			Return(&queries.AllotmentView{ApartmentID: apt.ID, TenantID: tenantID}, nil)

		_, err := q.GetForApartment(ctx, apt.ID, uuid.New())
		require.ErrorIs(t, err, leave.ErrLeaveNotVisible)
	})

	t.Run("no tenancy means nothing to see for non-owners", func(t *testing.T) {
		_, apartments, q := setup(t)
		apartments.EXPECT().FindActiveAllotment(gomock.Any(), apt.ID).Return(nil, notFound("allotment"))

		_, err := q.GetForApartment(ctx, apt.ID, tenantID)
		require.ErrorIs(t, err, leave.ErrLeaveNotVisible)
	})

	t.Run("no leave request filed", func(t *testing.T) {
		leaves, _, q := setup(t)
		leaves.EXPECT().FindCurrentByApartment(gomock.Any(), apt.ID).Return(nil, notFound("leave request"))

		_, err := q.GetForApartment(ctx, apt.ID, ownerID)
		require.ErrorIs(t, err, leave.ErrLeaveNotFound)
	})

	t.Run("storage failures are returned as is", func(t *testing.T) {
		_, apartments, q := setup(t)
		boom := errors.New("connection reset")
		apartments.EXPECT().FindActiveAllotment(gomock.Any(), apt.ID).Return(nil, boom)

		_, err := q.GetForApartment(ctx, apt.ID, tenantID)
		require.ErrorIs(t, err, boom)
	})
}

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		view    *queries.UserView
		findErr error
		wantErr error
	}{
		{name: "active user", view: &queries.UserView{ID: uuid.New(), IsActive: true}},
		{name: "inactive user", view: &queries.UserView{ID: uuid.New()}, wantErr: queries.ErrUserInactive},
		{name: "unknown user", findErr: notFound("user"), wantErr: user.ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
			store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(tc.view, tc.findErr)

			got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, uuid.New())
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.view, got)
		})
	}
}
