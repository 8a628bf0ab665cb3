package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"tenancy-service/internal/domain/user"
	"tenancy-service/internal/handler/api"
	"tenancy-service/internal/handler/middleware"
	"tenancy-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	Apartment *api.ApartmentHandler
	Request   *api.RequestHandler
	Payment   *api.PaymentHandler
	Leave     *api.LeaveHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authMiddleware *middleware.AuthMiddleware, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleOwner)}
	tenantOnly := []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleTenant)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		apartments := apiGroup.Group("/apartments")
		{
			addRoutes(apartments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Apartment.ListAvailable},
			})

			authRequired := apartments.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Apartment.Create, Mw: ownerOnly},
				{Method: http.MethodGet, Path: "/mine", Handler: h.Apartment.ListMine, Mw: ownerOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Apartment.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Apartment.Update, Mw: ownerOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Apartment.Delete, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/vacate", Handler: h.Apartment.Vacate, Mw: ownerOnly},
				{Method: http.MethodGet, Path: "/:id/requests", Handler: h.Request.ListForApartment, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/requests", Handler: h.Request.Create, Mw: tenantOnly},
				{Method: http.MethodGet, Path: "/:id/unpaid-months", Handler: h.Payment.UnpaidMonths},
				{Method: http.MethodGet, Path: "/:id/leave-request", Handler: h.Leave.GetForApartment},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Request.ListMine, Mw: tenantOnly},
				{Method: http.MethodGet, Path: "/received", Handler: h.Request.ListReceived, Mw: ownerOnly},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Request.Accept, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Request.Reject, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Request.Confirm, Mw: tenantOnly},
			})
		}

		allotments := apiGroup.Group("/allotments")
		allotments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(allotments, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Apartment.MyAllotment, Mw: tenantOnly},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Submit, Mw: tenantOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.ListMine, Mw: tenantOnly},
				{Method: http.MethodGet, Path: "/pending", Handler: h.Payment.ListPending, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Payment.Confirm, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: h.Payment.Decline, Mw: ownerOnly},
				{Method: http.MethodGet, Path: "/:id/memo", Handler: h.Payment.Memo},
			})
		}

		leaves := apiGroup.Group("/leave-requests")
		leaves.Use(authMiddleware.RequireAuth())
		{
			addRoutes(leaves, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Leave.Submit, Mw: tenantOnly},
				{Method: http.MethodGet, Path: "", Handler: h.Leave.ListForOwner, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Leave.Accept, Mw: ownerOnly},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Leave.Reject, Mw: ownerOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
