package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"tenancy-service/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Validation("invalid email format")
	ErrInvalidRole     = errs.Validation("invalid role")
	ErrPasswordTooWeak = errs.Validation("password must be at least 6 characters long")
	ErrInvalidName     = errs.Validation("name must be between 2 and 100 characters")
	ErrInvalidPhone    = errs.Validation("phone number must contain at least 10 digits")
	ErrInvalidNID      = errs.Validation("national id must be 10 to 17 digits")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	nidRegex   = regexp.MustCompile(`^[0-9]{10,17}$`)
)

const minPasswordLength = 6

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 2 || n > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// PhoneNumber keeps digits and an optional leading plus sign.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(s string) (PhoneNumber, error) {
	s = strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
	if !phoneRegex.MatchString(s) {
		return PhoneNumber{}, ErrInvalidPhone
	}
	return PhoneNumber{value: s}, nil
}

func (p PhoneNumber) Value() string {
	return p.value
}

type NationalID struct {
	value string
}

func NewNationalID(s string) (NationalID, error) {
	s = strings.TrimSpace(s)
	if !nidRegex.MatchString(s) {
		return NationalID{}, ErrInvalidNID
	}
	return NationalID{value: s}, nil
}

func (n NationalID) Value() string {
	return n.value
}
