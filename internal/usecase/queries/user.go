package queries

import (
	"context"

	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/infra"
	"tenancy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserInactive = errs.Forbidden("user account is inactive")

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock
type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}
