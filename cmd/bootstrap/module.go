package bootstrap

import (
	"tenancy-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	LedgerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
