package commands

import (
	"context"
	"log/slog"

	"tenancy-service/internal/domain/apartment"
	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/domain/payment"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitPaymentInput struct {
	ApartmentID    uuid.UUID
	PayerID        uuid.UUID
	Amount         string
	Method         string
	TransactionRef string
	MonthOf        string
}

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock
type PaymentCommands interface {
	Submit(ctx context.Context, in SubmitPaymentInput) (uuid.UUID, error)
	Decide(ctx context.Context, paymentID, actorID uuid.UUID, decision string) error
}

type paymentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (uc *paymentCommandsImpl) Submit(ctx context.Context, in SubmitPaymentInput) (uuid.UUID, error) {
	amount, err := money.ParseAmount(in.Amount)
	if err != nil {
		return uuid.Nil, err
	}
	method, err := payment.NewMethod(in.Method)
	if err != nil {
		return uuid.Nil, err
	}
	month, err := ledger.ParseYearMonth(in.MonthOf)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// held until commit so a concurrent vacate cannot end the allotment
		apt, err := tx.Apartments().FindByIDForUpdate(ctx, in.ApartmentID)
		if err != nil {
			return notFoundAs(err, apartment.ErrApartmentNotFound)
		}
		allotment, err := apt.ActiveAllotment()
		if err != nil {
			return payment.ErrNotAllotmentHolder
		}
		if allotment.TenantID() != in.PayerID {
			return payment.ErrNotAllotmentHolder
		}

		paid, err := tx.Allotments().ConfirmedMonths(ctx, allotment.ID())
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if !ledger.IsDue(allotment.StartedAt(), paid, now, month) {
			return payment.ErrMonthNotDue
		}

		p, err := payment.NewPayment(payment.Submission{
			AllotmentID:    allotment.ID(),
			ApartmentID:    apt.ID(),
			PayerID:        in.PayerID,
			OwnerID:        apt.OwnerID(),
			Amount:         amount,
			MonthOf:        month,
			Method:         method,
			TransactionRef: in.TransactionRef,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		id = p.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *paymentCommandsImpl) Decide(ctx context.Context, paymentID, actorID uuid.UUID, decision string) error {
	d, err := payment.NewDecision(decision)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByIDForUpdate(ctx, paymentID)
		if err != nil {
			return notFoundAs(err, payment.ErrPaymentNotFound)
		}
		if err := p.Decide(actorID, d, uc.clock.Now()); err != nil {
			return err
		}

		if p.IsConfirmed() {
			paid, err := tx.Payments().ExistsConfirmed(ctx, p.AllotmentID(), p.MonthOf())
			if err != nil {
				return err
			}
			if paid {
				return payment.ErrMonthAlreadyPaid
			}
		}

		if err := tx.Payments().UpdateStatus(ctx, p); err != nil {
			// the partial unique index catches a concurrent confirmation
			return conflictAs(notFoundAs(err, payment.ErrPaymentNotFound), payment.ErrMonthAlreadyPaid)
		}
		if !p.IsConfirmed() {
			return nil
		}

		if err := tx.Allotments().AppendPayment(ctx, p.AllotmentID(), p.ID()); err != nil {
			return err
		}
		slog.Info("payment confirmed",
			"payment_id", p.ID(),
			"allotment_id", p.AllotmentID(),
			"month_of", p.MonthOf().String())
		return nil
	})
}
