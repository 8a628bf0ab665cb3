package components

import (
	"tenancy-service/internal/handler"
	"tenancy-service/internal/handler/api"
	"tenancy-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewApartmentHandler,
		api.NewRequestHandler,
		api.NewPaymentHandler,
		api.NewLeaveHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
