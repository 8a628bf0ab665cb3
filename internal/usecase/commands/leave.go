package commands

import (
	"context"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitLeaveInput struct {
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	FromMonth   string
	Note        string
}

//go:generate mockgen -source=leave.go -destination=../../../tests/mock/commands/leave.go -package=commandsmock
type LeaveCommands interface {
	Submit(ctx context.Context, in SubmitLeaveInput) (uuid.UUID, error)
	Accept(ctx context.Context, leaveID, actorID uuid.UUID) error
	Reject(ctx context.Context, leaveID, actorID uuid.UUID) error
}

type leaveCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy leave.Policy
}

func NewLeaveCommands(uow shared.UnitOfWork, clk clock.Clock, policy leave.Policy) LeaveCommands {
	return &leaveCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

func (uc *leaveCommandsImpl) Submit(ctx context.Context, in SubmitLeaveInput) (uuid.UUID, error) {
	from, err := ledger.ParseYearMonth(in.FromMonth)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, in.ApartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		allotment, err := apt.ActiveAllotment()
		if err != nil || allotment.TenantID() != in.RequesterID {
			return leave.ErrNotAllottedTenant
		}

		open, err := tx.LeaveRequests().ExistsOpen(ctx, allotment.ID())
		if err != nil {
			return err
		}
		if open {
			return leave.ErrAlreadySubmitted
		}

		l, err := leave.NewLeaveRequest(leave.Notice{
			AllotmentID: allotment.ID(),
			ApartmentID: apt.ID(),
			RequesterID: in.RequesterID,
			OwnerID:     apt.OwnerID(),
			FromMonth:   from,
			Note:        in.Note,
		}, uc.policy, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.LeaveRequests().Create(ctx, l); err != nil {
			return conflictAs(err, leave.ErrAlreadySubmitted)
		}
		id = l.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *leaveCommandsImpl) Accept(ctx context.Context, leaveID, actorID uuid.UUID) error {
	return uc.decide(ctx, leaveID, func(l *leave.LeaveRequest) error {
		return l.Accept(actorID, uc.clock.Now())
	})
}

func (uc *leaveCommandsImpl) Reject(ctx context.Context, leaveID, actorID uuid.UUID) error {
	return uc.decide(ctx, leaveID, func(l *leave.LeaveRequest) error {
		return l.Reject(actorID, uc.clock.Now())
	})
}

func (uc *leaveCommandsImpl) decide(ctx context.Context, leaveID uuid.UUID, transition func(*leave.LeaveRequest) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.LeaveRequests().FindByIDForUpdate(ctx, leaveID)
		if err != nil {
			return notFoundAs(err, leave.ErrLeaveNotFound)
		}
		if err := transition(l); err != nil {
			return err
		}
		return notFoundAs(tx.LeaveRequests().UpdateStatus(ctx, l), leave.ErrLeaveNotFound)
	})
}
