package apartment

import (
	"slices"
	"time"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAllotmentEnded         = errs.Conflict("allotment has already ended")
	ErrPaymentAlreadyRecorded = errs.Conflict("payment is already in the allotment history")
)

// Allotment binds one tenant to one apartment from startedAt until it ends.
// Its payment history is append-only.
type Allotment struct {
	id          uuid.UUID
	apartmentID uuid.UUID
	tenantID    uuid.UUID
	startedAt   time.Time
	endedAt     *time.Time
	paymentIDs  []uuid.UUID
}

func newAllotment(apartmentID, tenantID uuid.UUID, now time.Time) *Allotment {
	return &Allotment{
		id:          uuid.New(),
		apartmentID: apartmentID,
		tenantID:    tenantID,
		startedAt:   now,
		paymentIDs:  []uuid.UUID{},
	}
}

func ReconstructAllotment(id, apartmentID, tenantID uuid.UUID, startedAt time.Time, endedAt *time.Time, paymentIDs []uuid.UUID) *Allotment {
	if paymentIDs == nil {
		paymentIDs = []uuid.UUID{}
	}
	return &Allotment{
		id:          id,
		apartmentID: apartmentID,
		tenantID:    tenantID,
		startedAt:   startedAt,
		endedAt:     endedAt,
		paymentIDs:  paymentIDs,
	}
}

func (a *Allotment) ID() uuid.UUID          { return a.id }
func (a *Allotment) ApartmentID() uuid.UUID { return a.apartmentID }
func (a *Allotment) TenantID() uuid.UUID    { return a.tenantID }
func (a *Allotment) StartedAt() time.Time   { return a.startedAt }
func (a *Allotment) EndedAt() *time.Time    { return a.endedAt }
func (a *Allotment) IsActive() bool         { return a.endedAt == nil }

func (a *Allotment) PaymentIDs() []uuid.UUID {
	return slices.Clone(a.paymentIDs)
}

func (a *Allotment) RecordPayment(paymentID uuid.UUID) error {
	if slices.Contains(a.paymentIDs, paymentID) {
		return ErrPaymentAlreadyRecorded
	}
	a.paymentIDs = append(a.paymentIDs, paymentID)
	return nil
}

// UnpaidMonths applies the ledger to this tenancy given the months that
// already have a confirmed payment.
func (a *Allotment) UnpaidMonths(paid []ledger.YearMonth, now time.Time) []ledger.YearMonth {
	return ledger.UnpaidMonths(a.startedAt, paid, now)
}

func (a *Allotment) end(now time.Time) error {
	if a.endedAt != nil {
		return ErrAllotmentEnded
	}
	t := now
	a.endedAt = &t
	return nil
}
