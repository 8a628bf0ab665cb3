package auth

import (
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.Unauthorized("invalid email or password")
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration carries a validated sign-up form.
type Registration struct {
	Profile  user.Profile
	Password user.Password
	Role     user.Role
}

func NewRegistration(name, email, phone, nid, password, role string) (Registration, error) {
	n, err := user.NewName(name)
	if err != nil {
		return Registration{}, err
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return Registration{}, err
	}
	p, err := user.NewPhoneNumber(phone)
	if err != nil {
		return Registration{}, err
	}
	id, err := user.NewNationalID(nid)
	if err != nil {
		return Registration{}, err
	}
	pw, err := user.NewPassword(password)
	if err != nil {
		return Registration{}, err
	}
	r, err := user.NewRole(role)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		Profile:  user.Profile{Name: n, Email: e, Phone: p, NID: id},
		Password: pw,
		Role:     r,
	}, nil
}
