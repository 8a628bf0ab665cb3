package user

import (
	"time"

	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound          = errs.NotFound("user not found")
	ErrTenantAlreadyAllotted = errs.Conflict("tenant already holds an allotment")
	ErrNotAllottedThere      = errs.Conflict("tenant is not allotted to this apartment")
	ErrTenantRoleRequired    = errs.Forbidden("only tenants can rent apartments")
)

type User struct {
	id                  uuid.UUID
	name                Name
	email               Email
	phone               PhoneNumber
	nid                 NationalID
	passwordHash        string
	role                Role
	allottedApartmentID *uuid.UUID
	lastLogin           *time.Time
	isActive            bool
	createdAt           time.Time
	updatedAt           time.Time
}

type Profile struct {
	Name  Name
	Email Email
	Phone PhoneNumber
	NID   NationalID
}

func NewUser(profile Profile, passwordHash string, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         profile.Name,
		email:        profile.Email,
		phone:        profile.Phone,
		nid:          profile.NID,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(
	id uuid.UUID,
	profile Profile,
	passwordHash string,
	role Role,
	allottedApartmentID *uuid.UUID,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                  id,
		name:                profile.Name,
		email:               profile.Email,
		phone:               profile.Phone,
		nid:                 profile.NID,
		passwordHash:        passwordHash,
		role:                role,
		allottedApartmentID: allottedApartmentID,
		lastLogin:           lastLogin,
		isActive:            isActive,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

func (u *User) ID() uuid.UUID                   { return u.id }
func (u *User) Name() Name                      { return u.name }
func (u *User) Email() Email                    { return u.email }
func (u *User) Phone() PhoneNumber              { return u.phone }
func (u *User) NID() NationalID                 { return u.nid }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) Role() Role                      { return u.role }
func (u *User) AllottedApartmentID() *uuid.UUID { return u.allottedApartmentID }
func (u *User) LastLogin() *time.Time           { return u.lastLogin }
func (u *User) IsActive() bool                  { return u.isActive }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }

func (u *User) Profile() Profile {
	return Profile{Name: u.name, Email: u.email, Phone: u.phone, NID: u.nid}
}

func (u *User) IsOwner() bool  { return u.role == RoleOwner }
func (u *User) IsTenant() bool { return u.role == RoleTenant }

func (u *User) HasAllotment() bool {
	return u.allottedApartmentID != nil
}

// AssignApartment sets the back-reference of a new allotment. A tenant can
// hold at most one.
func (u *User) AssignApartment(apartmentID uuid.UUID, now time.Time) error {
	if !u.IsTenant() {
		return ErrTenantRoleRequired
	}
	if u.allottedApartmentID != nil {
		return ErrTenantAlreadyAllotted
	}
	id := apartmentID
	u.allottedApartmentID = &id
	u.updatedAt = now
	return nil
}

func (u *User) ReleaseApartment(apartmentID uuid.UUID, now time.Time) error {
	if u.allottedApartmentID == nil || *u.allottedApartmentID != apartmentID {
		return ErrNotAllottedThere
	}
	u.allottedApartmentID = nil
	u.updatedAt = now
	return nil
}
