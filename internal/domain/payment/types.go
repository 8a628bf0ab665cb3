package payment

import "tenancy-service/internal/pkg/errs"

var (
	ErrInvalidMethod   = errs.Validation("payment method must be one of bkash, nagad, rocket, bankTransfer")
	ErrInvalidStatus   = errs.Validation("invalid payment status")
	ErrInvalidDecision = errs.Validation("decision must be confirm or decline")
)

type Method string

const (
	MethodBkash        Method = "bkash"
	MethodNagad        Method = "nagad"
	MethodRocket       Method = "rocket"
	MethodBankTransfer Method = "bankTransfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodBkash, MethodNagad, MethodRocket, MethodBankTransfer:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeclined:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Decision is the owner's verdict on a pending payment.
type Decision string

const (
	DecisionConfirm Decision = "confirm"
	DecisionDecline Decision = "decline"
)

func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	switch d {
	case DecisionConfirm, DecisionDecline:
		return d, nil
	default:
		return "", ErrInvalidDecision
	}
}

func (d Decision) target() Status {
	if d == DecisionConfirm {
		return StatusConfirmed
	}
	return StatusDeclined
}
