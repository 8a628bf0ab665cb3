package repository

import (
	"context"
	"time"

	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/repository/converter"
	"tenancy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db pgquery.DBTX, u pgquery.User) error
	GetUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
	GetUserByIDForUpdate(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
	GetUserByEmail(ctx context.Context, db pgquery.DBTX, email string) (pgquery.User, error)
	AssignUserAllotment(ctx context.Context, db pgquery.DBTX, userID, apartmentID uuid.UUID) (int64, error)
	ReleaseUserAllotment(ctx context.Context, db pgquery.DBTX, userID, apartmentID uuid.UUID) (int64, error)
	UpdateLastLogin(ctx context.Context, db pgquery.DBTX, id uuid.UUID, at time.Time) error
}

type UserRepository struct {
	queries UserQueries
	db      pgquery.DBTX
}

func NewUserRepository(queries UserQueries, db pgquery.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToRow(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.find("id", func() (pgquery.User, error) { return r.queries.GetUserByID(ctx, r.db, id) })
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.find("id", func() (pgquery.User, error) { return r.queries.GetUserByIDForUpdate(ctx, r.db, id) })
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return r.find("email", func() (pgquery.User, error) { return r.queries.GetUserByEmail(ctx, r.db, email.Value()) })
}

func (r *UserRepository) find(by string, get func() (pgquery.User, error)) (*user.User, error) {
	row, err := get()
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by "+by, err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) AssignAllotment(ctx context.Context, userID, apartmentID uuid.UUID) error {
	n, err := r.queries.AssignUserAllotment(ctx, r.db, userID, apartmentID)
	if err != nil {
		return infra.WrapRepoErr("failed to assign allotment to user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user already holds an allotment", nil, infra.KindConflict)
	}
	return nil
}

func (r *UserRepository) ReleaseAllotment(ctx context.Context, userID, apartmentID uuid.UUID) error {
	n, err := r.queries.ReleaseUserAllotment(ctx, r.db, userID, apartmentID)
	if err != nil {
		return infra.WrapRepoErr("failed to release user allotment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user is not allotted to the apartment", nil, infra.KindConflict)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, r.db, userID, time.Now()); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
