package payment

import (
	"strings"
	"time"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/domain/money"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound    = errs.NotFound("payment not found")
	ErrNotPending         = errs.Conflict("payment is not pending")
	ErrMonthAlreadyPaid   = errs.Conflict("month already paid")
	ErrMonthNotDue        = errs.Validation("month is not due")
	ErrInvalidTransaction = errs.Validation("transaction id is required and must be at most 64 characters")
	ErrNotAllotmentHolder = errs.Forbidden("only the allotted tenant can pay for this apartment")
	ErrNotPaymentApprover = errs.Forbidden("only the apartment owner can decide on this payment")
	ErrPaymentNotVisible  = errs.Forbidden("payment belongs to another account")
	ErrMemoUnavailable    = errs.Conflict("memo is only available for confirmed payments")
)

const maxTransactionRefLength = 64

// Payment is a tenant-reported rent payment for one month of an allotment.
// ownerID is copied from the apartment for authorization reads.
type Payment struct {
	id             uuid.UUID
	allotmentID    uuid.UUID
	apartmentID    uuid.UUID
	payerID        uuid.UUID
	ownerID        uuid.UUID
	amount         money.Amount
	monthOf        ledger.YearMonth
	method         Method
	transactionRef string
	status         Status
	submittedAt    time.Time
	confirmedAt    *time.Time
}

type Submission struct {
	AllotmentID    uuid.UUID
	ApartmentID    uuid.UUID
	PayerID        uuid.UUID
	OwnerID        uuid.UUID
	Amount         money.Amount
	MonthOf        ledger.YearMonth
	Method         Method
	TransactionRef string
}

func NewPayment(s Submission, now time.Time) (*Payment, error) {
	if s.Amount.IsZero() {
		return nil, money.ErrNonPositive
	}
	if s.MonthOf.IsZero() {
		return nil, ledger.ErrInvalidMonth
	}
	if !s.Method.IsValid() {
		return nil, ErrInvalidMethod
	}
	ref := strings.TrimSpace(s.TransactionRef)
	if ref == "" || len(ref) > maxTransactionRefLength {
		return nil, ErrInvalidTransaction
	}
	return &Payment{
		id:             uuid.New(),
		allotmentID:    s.AllotmentID,
		apartmentID:    s.ApartmentID,
		payerID:        s.PayerID,
		ownerID:        s.OwnerID,
		amount:         s.Amount,
		monthOf:        s.MonthOf,
		method:         s.Method,
		transactionRef: ref,
		status:         StatusPending,
		submittedAt:    now,
	}, nil
}

func ReconstructPayment(
	id uuid.UUID,
	s Submission,
	status Status,
	submittedAt time.Time,
	confirmedAt *time.Time,
) *Payment {
	return &Payment{
		id:             id,
		allotmentID:    s.AllotmentID,
		apartmentID:    s.ApartmentID,
		payerID:        s.PayerID,
		ownerID:        s.OwnerID,
		amount:         s.Amount,
		monthOf:        s.MonthOf,
		method:         s.Method,
		transactionRef: s.TransactionRef,
		status:         status,
		submittedAt:    submittedAt,
		confirmedAt:    confirmedAt,
	}
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) AllotmentID() uuid.UUID    { return p.allotmentID }
func (p *Payment) ApartmentID() uuid.UUID    { return p.apartmentID }
func (p *Payment) PayerID() uuid.UUID        { return p.payerID }
func (p *Payment) OwnerID() uuid.UUID        { return p.ownerID }
func (p *Payment) Amount() money.Amount      { return p.amount }
func (p *Payment) MonthOf() ledger.YearMonth { return p.monthOf }
func (p *Payment) Method() Method            { return p.method }
func (p *Payment) TransactionRef() string    { return p.transactionRef }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) SubmittedAt() time.Time    { return p.submittedAt }
func (p *Payment) ConfirmedAt() *time.Time   { return p.confirmedAt }
func (p *Payment) IsConfirmed() bool         { return p.status == StatusConfirmed }

func (p *Payment) IsVisibleTo(userID uuid.UUID) bool {
	return userID == p.payerID || userID == p.ownerID
}

// Decide moves a pending payment to confirmed or declined. Whether the month
// is already covered by another confirmed payment is checked by the caller,
// which has the allotment's history.
func (p *Payment) Decide(actorID uuid.UUID, d Decision, now time.Time) error {
	if actorID != p.ownerID {
		return ErrNotPaymentApprover
	}
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = d.target()
	if p.status == StatusConfirmed {
		t := now
		p.confirmedAt = &t
	}
	return nil
}
