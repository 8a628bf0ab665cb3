package commands

import (
	"context"
	"log/slog"

	"tenancy-service/internal/domain/auth"
	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/jwt"
	"tenancy-service/internal/pkg/password"
	"tenancy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errs.Conflict("email is already registered")
	ErrUserInactive    = errs.Forbidden("user account is inactive")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.Unauthorized("token validation failed")
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	NID      string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock
type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(in.Name, in.Email, in.Phone, in.NID, in.Password, in.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(reg.Password.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(reg.Profile, hash, reg.Role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, ferr := tx.Users().FindByEmail(ctx, reg.Profile.Email)
		switch {
		case ferr == nil:
			return ErrEmailTaken
		case !infra.IsKind(ferr, infra.KindNotFound):
			return ferr
		}
		return conflictAs(tx.Users().Create(ctx, u), ErrEmailTaken)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		// Malformed input gets the same answer as a wrong password
		return nil, auth.ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Users().FindByEmail(ctx, credentials.Email())
		if ferr != nil {
			return notFoundAs(ferr, auth.ErrInvalidCredentials)
		}
		if password.ComparePassword(found.PasswordHash(), credentials.Password().Value()) != nil {
			return auth.ErrInvalidCredentials
		}
		if !found.IsActive() {
			return ErrUserInactive
		}
		u = found

		if uerr := tx.Users().UpdateLastLogin(ctx, found.ID()); uerr != nil {
			// not critical for the login itself
			slog.Warn("failed to update last login", "user_id", found.ID(), "error", uerr.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// The role is read again so a stale token cannot carry an old one
	var u *user.User
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Users().FindByID(ctx, claims.UserID)
		if ferr != nil {
			return notFoundAs(ferr, ErrTokenValidation)
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
