package rentalrequest

import "tenancy-service/internal/pkg/errs"

var (
	ErrInvalidTenancyType = errs.Validation("tenancy type must be bachelor or family")
	ErrInvalidStatus      = errs.Validation("invalid request status")
)

type TenancyType string

const (
	TenancyBachelor TenancyType = "bachelor"
	TenancyFamily   TenancyType = "family"
)

func (t TenancyType) String() string {
	return string(t)
}

func (t TenancyType) IsValid() bool {
	switch t {
	case TenancyBachelor, TenancyFamily:
		return true
	default:
		return false
	}
}

func NewTenancyType(s string) (TenancyType, error) {
	t := TenancyType(s)
	if !t.IsValid() {
		return "", ErrInvalidTenancyType
	}
	return t, nil
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsLive reports whether the request still competes for the apartment.
func (s Status) IsLive() bool {
	return s == StatusPending || s == StatusAccepted
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
