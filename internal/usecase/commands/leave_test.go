//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveCommands(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	policy := leave.Policy{NoticeMonths: 2}

	setup := func(t *testing.T) (*fixture, commands.LeaveCommands, commands.SubmitLeaveInput) {
		f := newFixture(now)
		tenant := f.tenant("notice@example.com")
		apt := f.allottedApartment(t, tenant, start)
		in := commands.SubmitLeaveInput{
			ApartmentID: apt.ID(),
			RequesterID: tenant.ID(),
			FromMonth:   "2024-06",
			Note:        "Moving to Chattogram",
		}
		return f, commands.NewLeaveCommands(f.store, f.clock, policy), in
	}

	t.Run("tenant gives notice", func(t *testing.T) {
		f, cmds, in := setup(t)

		id, err := cmds.Submit(ctx, in)
		require.NoError(t, err)

		l, ok := f.store.Leave(id)
		require.True(t, ok)
		assert.Equal(t, leave.StatusPending, l.Status())
		assert.Equal(t, "2024-06", l.FromMonth().String())
		assert.Equal(t, f.owner.ID(), l.OwnerID())
		// notice alone does not end the tenancy
		assert.True(t, f.mustApartment(t, in.ApartmentID).IsAllotted())
	})

	t.Run("notice period", func(t *testing.T) {
		_, cmds, in := setup(t)
		in.FromMonth = "2024-05"

		_, err := cmds.Submit(ctx, in)
		require.ErrorIs(t, err, leave.ErrNoticeTooShort)

		in.FromMonth = "May"
		_, err = cmds.Submit(ctx, in)
		require.ErrorIs(t, err, ledger.ErrInvalidMonth)
	})

	t.Run("one open notice per tenancy", func(t *testing.T) {
		f, cmds, in := setup(t)
		first, err := cmds.Submit(ctx, in)
		require.NoError(t, err)

		_, err = cmds.Submit(ctx, in)
		require.ErrorIs(t, err, leave.ErrAlreadySubmitted)

		require.NoError(t, cmds.Accept(ctx, first, f.owner.ID()))
		_, err = cmds.Submit(ctx, in)
		require.ErrorIs(t, err, leave.ErrAlreadySubmitted)
	})

	t.Run("rejected notice can be resent", func(t *testing.T) {
		f, cmds, in := setup(t)
		first, err := cmds.Submit(ctx, in)
		require.NoError(t, err)
		require.NoError(t, cmds.Reject(ctx, first, f.owner.ID()))

		in.FromMonth = "2024-08"
		second, err := cmds.Submit(ctx, in)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("only the allotted tenant", func(t *testing.T) {
		f, cmds, in := setup(t)

		in.RequesterID = f.tenant("neighbour@example.com").ID()
		_, err := cmds.Submit(ctx, in)
		require.ErrorIs(t, err, leave.ErrNotAllottedTenant)

		in.ApartmentID = f.vacantApartment().ID()
		_, err = cmds.Submit(ctx, in)
		require.ErrorIs(t, err, leave.ErrNotAllottedTenant)
	})

	t.Run("owner decides once", func(t *testing.T) {
		f, cmds, in := setup(t)
		id, err := cmds.Submit(ctx, in)
		require.NoError(t, err)

		require.ErrorIs(t, cmds.Accept(ctx, id, in.RequesterID), leave.ErrNotLeaveApprover)
		require.NoError(t, cmds.Reject(ctx, id, f.owner.ID()))
		require.ErrorIs(t, cmds.Accept(ctx, id, f.owner.ID()), leave.ErrNotPending)

		l, _ := f.store.Leave(id)
		assert.Equal(t, leave.StatusRejected, l.Status())
	})

	t.Run("unknown leave request", func(t *testing.T) {
		f, cmds, _ := setup(t)
		require.ErrorIs(t, cmds.Accept(ctx, uuid.New(), f.owner.ID()), leave.ErrLeaveNotFound)
	})
}
