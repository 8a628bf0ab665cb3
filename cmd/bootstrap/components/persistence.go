package components

import (
	"tenancy-service/internal/infra/pgquery"
	"tenancy-service/internal/infra/readstore"
	"tenancy-service/internal/infra/uow"
	"tenancy-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Apartment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ApartmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewApartmentReadStore,
			fx.As(new(queries.ApartmentReadStore)),
		),
		// Rental request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		// Payment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PaymentViewQueries)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		// Leave request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LeaveViewQueries)),
		),
		fx.Annotate(
			readstore.NewLeaveReadStore,
			fx.As(new(queries.LeaveReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the unit of work.
var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
