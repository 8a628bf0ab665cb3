//go:build unit

package commands_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/rentalrequest"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RequestCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	f         *fixture
	allotment *commands.AllotmentManager
	cmds      commands.RequestCommands
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.f = newFixture(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	s.allotment = commands.NewAllotmentManager(s.f.store, s.f.clock, s.f.listings)
	s.cmds = commands.NewRequestCommands(s.f.store, s.f.clock, s.allotment, s.f.listings)
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func (s *RequestCommandsTestSuite) request(aptID, tenantID uuid.UUID) uuid.UUID {
	id, err := s.cmds.Create(s.ctx, commands.CreateRequestInput{
		ApartmentID: aptID,
		RequesterID: tenantID,
		TenancyType: "family",
		Occupants:   3,
	})
	s.Require().NoError(err)
	return id
}

func (s *RequestCommandsTestSuite) TestCreate() {
	s.Run("tenant applies to a vacant apartment", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("create@example.com")

		id := s.request(apt.ID(), tenant.ID())

		stored, ok := s.f.store.Request(id)
		s.Require().True(ok)
		s.Equal(rentalrequest.StatusPending, stored.Status())
		s.Equal(s.f.owner.ID(), stored.OwnerID())
		s.Equal(s.f.clock.Now(), stored.CreatedAt())
	})

	s.Run("second live request is rejected", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("twice@example.com")
		s.request(apt.ID(), tenant.ID())

		_, err := s.cmds.Create(s.ctx, commands.CreateRequestInput{
			ApartmentID: apt.ID(), RequesterID: tenant.ID(), TenancyType: "bachelor", Occupants: 1,
		})
		s.ErrorIs(err, rentalrequest.ErrAlreadyRequested)
	})

	s.Run("rejected request can be resent", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("resend@example.com")
		first := s.request(apt.ID(), tenant.ID())
		s.Require().NoError(s.cmds.Reject(s.ctx, first, s.f.owner.ID()))

		second := s.request(apt.ID(), tenant.ID())
		s.NotEqual(first, second)
	})

	cases := []struct {
		name        string
		apartmentID func() uuid.UUID
		requesterID func() uuid.UUID
		input       func(*commands.CreateRequestInput)
		errIs       error
	}{
		{
			name:        "unknown apartment",
			apartmentID: func() uuid.UUID { return uuid.New() },
			requesterID: func() uuid.UUID { return s.f.tenant("ghost@example.com").ID() },
			errIs:       apartment.ErrApartmentNotFound,
		},
		{
			name:        "owner applies to own apartment",
			apartmentID: func() uuid.UUID { return s.f.vacantApartment().ID() },
			requesterID: func() uuid.UUID { return s.f.owner.ID() },
			errIs:       rentalrequest.ErrOwnApartment,
		},
		{
			name:        "allotted apartment",
			apartmentID: func() uuid.UUID { return s.f.allottedApartment(s.T(), s.f.tenant("holder@example.com"), s.f.clock.Now()).ID() },
			requesterID: func() uuid.UUID { return s.f.tenant("late@example.com").ID() },
			errIs:       apartment.ErrApartmentUnavailable,
		},
		{
			name:        "tenant already holds an apartment",
			apartmentID: func() uuid.UUID { return s.f.vacantApartment().ID() },
			requesterID: func() uuid.UUID {
				tenant := s.f.tenant("housed@example.com")
				s.f.allottedApartment(s.T(), tenant, s.f.clock.Now())
				return tenant.ID()
			},
			errIs: user.ErrTenantAlreadyAllotted,
		},
		{
			name:        "occupants out of range",
			apartmentID: func() uuid.UUID { return s.f.vacantApartment().ID() },
			requesterID: func() uuid.UUID { return s.f.tenant("crowd@example.com").ID() },
			input:       func(in *commands.CreateRequestInput) { in.Occupants = 21 },
			errIs:       rentalrequest.ErrInvalidOccupants,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			in := commands.CreateRequestInput{
				ApartmentID: tc.apartmentID(),
				RequesterID: tc.requesterID(),
				TenancyType: "family",
				Occupants:   2,
			}
			if tc.input != nil {
				tc.input(&in)
			}
			id, err := s.cmds.Create(s.ctx, in)
			s.ErrorIs(err, tc.errIs)
			s.Equal(uuid.Nil, id)
		})
	}
}

// Create must hold the same locks as the allotment commit, apartment first,
// so it either waits for a commit that purges the tenant's requests or sees
// its result.
func (s *RequestCommandsTestSuite) TestCreateLocksApartmentThenRequester() {
	apt := s.f.vacantApartment()
	tenant := s.f.tenant("lock-order@example.com")

	s.request(apt.ID(), tenant.ID())

	s.Equal([]string{
		"apartments:" + apt.ID().String(),
		"users:" + tenant.ID().String(),
	}, s.f.store.LastLocks())

	s.Run("matches the commit's order", func() {
		id := s.request(apt.ID(), s.f.tenant("lock-commit@example.com").ID())
		s.Require().NoError(s.cmds.Accept(s.ctx, id, s.f.owner.ID()))
		stored, _ := s.f.store.Request(id)

		_, err := s.cmds.Confirm(s.ctx, id, stored.RequesterID())
		s.Require().NoError(err)

		locks := s.f.store.LastLocks()
		s.Require().NotEmpty(locks)
		s.Contains(locks, "apartments:"+apt.ID().String())
		s.Contains(locks, "users:"+stored.RequesterID().String())
		s.Less(slices.Index(locks, "apartments:"+apt.ID().String()), slices.Index(locks, "users:"+stored.RequesterID().String()))
	})
}

func (s *RequestCommandsTestSuite) TestCreateAfterAllotmentElsewhere() {
	allotted := s.f.vacantApartment()
	other := s.f.vacantApartment()
	tenant := s.f.tenant("moved-in@example.com")

	id := s.request(allotted.ID(), tenant.ID())
	s.Require().NoError(s.cmds.Accept(s.ctx, id, s.f.owner.ID()))
	_, err := s.cmds.Confirm(s.ctx, id, tenant.ID())
	s.Require().NoError(err)

	_, err = s.cmds.Create(s.ctx, commands.CreateRequestInput{
		ApartmentID: other.ID(), RequesterID: tenant.ID(), TenancyType: "family", Occupants: 2,
	})
	s.ErrorIs(err, user.ErrTenantAlreadyAllotted)
	for _, rid := range s.f.store.RequestIDs() {
		r, _ := s.f.store.Request(rid)
		s.NotEqual(tenant.ID(), r.RequesterID(), "tenant still applies to %s", r.ApartmentID())
	}
}

func (s *RequestCommandsTestSuite) TestAcceptReject() {
	s.Run("owner accepts", func() {
		apt := s.f.vacantApartment()
		id := s.request(apt.ID(), s.f.tenant("accept@example.com").ID())

		s.Require().NoError(s.cmds.Accept(s.ctx, id, s.f.owner.ID()))

		stored, _ := s.f.store.Request(id)
		s.Equal(rentalrequest.StatusAccepted, stored.Status())
		s.False(s.f.mustApartment(s.T(), apt.ID()).IsAllotted())
	})

	s.Run("rejection leaves the apartment unallotted", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("reject@example.com")
		id := s.request(apt.ID(), tenant.ID())

		s.Require().NoError(s.cmds.Reject(s.ctx, id, s.f.owner.ID()))

		stored, _ := s.f.store.Request(id)
		s.Equal(rentalrequest.StatusRejected, stored.Status())
		s.False(s.f.mustApartment(s.T(), apt.ID()).IsAllotted())
		s.False(s.f.mustUser(s.T(), tenant.ID()).HasAllotment())
		s.ErrorIs(s.cmds.Accept(s.ctx, id, s.f.owner.ID()), rentalrequest.ErrNotPending)
	})

	s.Run("someone else cannot decide", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("self-accept@example.com")
		id := s.request(apt.ID(), tenant.ID())

		s.ErrorIs(s.cmds.Accept(s.ctx, id, tenant.ID()), rentalrequest.ErrNotRequestOwner)
		stored, _ := s.f.store.Request(id)
		s.Equal(rentalrequest.StatusPending, stored.Status())
	})

	s.Run("unknown request", func() {
		s.ErrorIs(s.cmds.Reject(s.ctx, uuid.New(), s.f.owner.ID()), rentalrequest.ErrRequestNotFound)
	})
}

func (s *RequestCommandsTestSuite) TestConfirm() {
	s.Run("commits the allotment and purges competing requests", func() {
		apt := s.f.vacantApartment()
		other := s.f.vacantApartment()
		winner := s.f.tenant("winner@example.com")
		rival := s.f.tenant("rival@example.com")

		winnerReq := s.request(apt.ID(), winner.ID())
		s.request(apt.ID(), rival.ID())
		s.request(other.ID(), winner.ID())
		rivalElsewhere := s.request(other.ID(), rival.ID())
		s.Require().NoError(s.cmds.Accept(s.ctx, winnerReq, s.f.owner.ID()))
		before := s.f.listings.Calls()

		result, err := s.cmds.Confirm(s.ctx, winnerReq, winner.ID())
		s.Require().NoError(err)

		s.Equal(apt.ID(), result.ApartmentID)
		s.Equal(winner.ID(), result.TenantID)
		s.Equal(s.f.clock.Now(), result.StartedAt)
		s.Equal(int64(3), result.PurgedRequests)

		s.Equal([]uuid.UUID{rivalElsewhere}, s.f.store.RequestIDs())

		stored := s.f.mustApartment(s.T(), apt.ID())
		s.Require().True(stored.IsAllotted())
		s.Equal(result.AllotmentID, stored.Allotment().ID())
		s.Empty(stored.Allotment().PaymentIDs())

		holder := s.f.mustUser(s.T(), winner.ID())
		s.Require().NotNil(holder.AllottedApartmentID())
		s.Equal(apt.ID(), *holder.AllottedApartmentID())
		s.Equal(1, s.f.store.ActiveAllotmentCount())
		s.Greater(s.f.listings.Calls(), before)
	})

	s.Run("pending request cannot be confirmed", func() {
		apt := s.f.vacantApartment()
		tenant := s.f.tenant("eager@example.com")
		id := s.request(apt.ID(), tenant.ID())

		_, err := s.cmds.Confirm(s.ctx, id, tenant.ID())
		s.ErrorIs(err, rentalrequest.ErrNotAccepted)
		s.False(s.f.mustApartment(s.T(), apt.ID()).IsAllotted())
	})

	s.Run("owner cannot confirm for the tenant", func() {
		apt := s.f.vacantApartment()
		id := s.request(apt.ID(), s.f.tenant("proxy@example.com").ID())
		s.Require().NoError(s.cmds.Accept(s.ctx, id, s.f.owner.ID()))

		_, err := s.cmds.Confirm(s.ctx, id, s.f.owner.ID())
		s.ErrorIs(err, rentalrequest.ErrNotRequester)
	})

	s.Run("failed commit rolls the confirmation back", func() {
		first := s.f.vacantApartment()
		second := s.f.vacantApartment()
		tenant := s.f.tenant("double@example.com")
		firstReq := s.request(first.ID(), tenant.ID())
		secondReq := s.request(second.ID(), tenant.ID())
		s.Require().NoError(s.cmds.Accept(s.ctx, firstReq, s.f.owner.ID()))
		s.Require().NoError(s.cmds.Accept(s.ctx, secondReq, s.f.owner.ID()))

		// the tenant gets the first apartment; the commit purges the second request, restore it
		_, err := s.allotment.Commit(s.ctx, first.ID(), tenant.ID())
		s.Require().NoError(err)
		s.f.store.PutRequest(s.acceptedRequest(secondReq, second.ID(), tenant.ID()))

		_, err = s.cmds.Confirm(s.ctx, secondReq, tenant.ID())
		s.ErrorIs(err, user.ErrTenantAlreadyAllotted)

		stored, ok := s.f.store.Request(secondReq)
		s.Require().True(ok)
		s.Equal(rentalrequest.StatusAccepted, stored.Status())
		s.False(s.f.mustApartment(s.T(), second.ID()).IsAllotted())
	})
}

func (s *RequestCommandsTestSuite) acceptedRequest(id, aptID, tenantID uuid.UUID) *rentalrequest.Request {
	app := rentalrequest.Application{TenancyType: rentalrequest.TenancyFamily, Occupants: 3}
	now := s.f.clock.Now()
	return rentalrequest.ReconstructRequest(id, aptID, tenantID, s.f.owner.ID(), app, rentalrequest.StatusAccepted, false, now, now)
}
