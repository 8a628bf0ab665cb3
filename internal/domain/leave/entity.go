package leave

import (
	"strings"
	"time"
	"unicode/utf8"

	"tenancy-service/internal/domain/ledger"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLeaveNotFound     = errs.NotFound("leave request not found")
	ErrAlreadySubmitted  = errs.Conflict("leave request already sent")
	ErrNotPending        = errs.Conflict("leave request is not pending")
	ErrNoticeTooShort    = errs.Validation("leave month does not respect the notice period")
	ErrNoteTooLong       = errs.Validation("leave note exceeds maximum length")
	ErrInvalidStatus     = errs.Validation("invalid leave request status")
	ErrNotLeaveApprover  = errs.Forbidden("only the apartment owner can decide on this leave request")
	ErrNotAllottedTenant = errs.Forbidden("only the allotted tenant can send a leave request")
	ErrLeaveNotVisible   = errs.Forbidden("leave request belongs to another account")
)

const maxNoteLength = 500

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Policy holds the notice rule: fromMonth must be at least NoticeMonths
// calendar months after the current one.
type Policy struct {
	NoticeMonths int
}

func (p Policy) EarliestMonth(now time.Time) ledger.YearMonth {
	return ledger.MonthOf(now).AddMonths(p.NoticeMonths)
}

// LeaveRequest is a tenant's notice of vacancy for an allotment.
type LeaveRequest struct {
	id          uuid.UUID
	allotmentID uuid.UUID
	apartmentID uuid.UUID
	requesterID uuid.UUID
	ownerID     uuid.UUID
	fromMonth   ledger.YearMonth
	note        string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

type Notice struct {
	AllotmentID uuid.UUID
	ApartmentID uuid.UUID
	RequesterID uuid.UUID
	OwnerID     uuid.UUID
	FromMonth   ledger.YearMonth
	Note        string
}

func NewLeaveRequest(n Notice, policy Policy, now time.Time) (*LeaveRequest, error) {
	if n.FromMonth.IsZero() {
		return nil, ledger.ErrInvalidMonth
	}
	if n.FromMonth.Before(policy.EarliestMonth(now)) {
		return nil, ErrNoticeTooShort
	}
	note := strings.TrimSpace(n.Note)
	if utf8.RuneCountInString(note) > maxNoteLength {
		return nil, ErrNoteTooLong
	}
	return &LeaveRequest{
		id:          uuid.New(),
		allotmentID: n.AllotmentID,
		apartmentID: n.ApartmentID,
		requesterID: n.RequesterID,
		ownerID:     n.OwnerID,
		fromMonth:   n.FromMonth,
		note:        note,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructLeaveRequest(id uuid.UUID, n Notice, status Status, createdAt, updatedAt time.Time) *LeaveRequest {
	return &LeaveRequest{
		id:          id,
		allotmentID: n.AllotmentID,
		apartmentID: n.ApartmentID,
		requesterID: n.RequesterID,
		ownerID:     n.OwnerID,
		fromMonth:   n.FromMonth,
		note:        n.Note,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *LeaveRequest) ID() uuid.UUID               { return l.id }
func (l *LeaveRequest) AllotmentID() uuid.UUID      { return l.allotmentID }
func (l *LeaveRequest) ApartmentID() uuid.UUID      { return l.apartmentID }
func (l *LeaveRequest) RequesterID() uuid.UUID      { return l.requesterID }
func (l *LeaveRequest) OwnerID() uuid.UUID          { return l.ownerID }
func (l *LeaveRequest) FromMonth() ledger.YearMonth { return l.fromMonth }
func (l *LeaveRequest) Note() string                { return l.note }
func (l *LeaveRequest) Status() Status              { return l.status }
func (l *LeaveRequest) CreatedAt() time.Time        { return l.createdAt }
func (l *LeaveRequest) UpdatedAt() time.Time        { return l.updatedAt }

func (l *LeaveRequest) Accept(actorID uuid.UUID, now time.Time) error {
	return l.decide(actorID, StatusAccepted, now)
}

func (l *LeaveRequest) Reject(actorID uuid.UUID, now time.Time) error {
	return l.decide(actorID, StatusRejected, now)
}

func (l *LeaveRequest) decide(actorID uuid.UUID, to Status, now time.Time) error {
	if actorID != l.ownerID {
		return ErrNotLeaveApprover
	}
	if l.status != StatusPending {
		return ErrNotPending
	}
	l.status = to
	l.updatedAt = now
	return nil
}
