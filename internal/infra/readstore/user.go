package readstore

import (
	"context"

	"tenancy-service/internal/infra"
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/pkg/pgconv"
	"tenancy-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func toUserView(row pgquery.User) *queries.UserView {
	return &queries.UserView{
		ID:                  row.ID,
		Name:                row.Name,
		Email:               row.Email,
		Phone:               row.Phone,
		Role:                row.Role,
		AllottedApartmentID: pgconv.UUIDPtrFromPgtype(row.AllottedApartmentID),
		IsActive:            row.IsActive,
		LastLogin:           pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:           row.CreatedAt,
	}
}
