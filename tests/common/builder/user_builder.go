//go:build unit || e2e

package builder

import (
	"time"

	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	Name         string
	Email        string
	Phone        string
	NID          string
	PasswordHash string
	Role         string
	IsActive     bool
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Rahim Uddin",
		Email:        "test@example.com",
		Phone:        "01712345678",
		NID:          "1234567890",
		PasswordHash: "hashed_password",
		Role:         "tenant",
		IsActive:     true,
		Now:          time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildProfile() (user.Profile, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return user.Profile{}, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return user.Profile{}, err
	}
	phone, err := user.NewPhoneNumber(u.Phone)
	if err != nil {
		return user.Profile{}, err
	}
	nid, err := user.NewNationalID(u.NID)
	if err != nil {
		return user.Profile{}, err
	}
	return user.Profile{Name: name, Email: email, Phone: phone, NID: nid}, nil
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	profile, err := u.BuildProfile()
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	created := user.NewUser(profile, u.PasswordHash, role, u.Now)
	if u.IsActive {
		return created, nil
	}
	return user.ReconstructUser(created.ID(), profile, u.PasswordHash, role, nil, nil, false, u.Now, u.Now), nil
}

// MustBuildDomain is for fixtures whose defaults are known to be valid.
func (u *UserBuilder) MustBuildDomain() *user.User {
	built, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

func (u *UserBuilder) BuildInfra() pgquery.User {
	return pgquery.User{
		ID:                  uuid.New(),
		Name:                u.Name,
		Email:               u.Email,
		Phone:               u.Phone,
		Nid:                 u.NID,
		PasswordHash:        u.PasswordHash,
		Role:                u.Role,
		AllottedApartmentID: pgtype.UUID{},
		LastLogin:           pgtype.Timestamptz{},
		IsActive:            u.IsActive,
		CreatedAt:           u.Now,
		UpdatedAt:           u.Now,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        uuid.New(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = phone
	return u
}

func (u *UserBuilder) WithNID(nid string) *UserBuilder {
	u.NID = nid
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = "owner"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
