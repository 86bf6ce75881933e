package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/arogyahq/arogya_backend/config"
	"github.com/arogyahq/arogya_backend/internal/api/http/handler"
	"github.com/arogyahq/arogya_backend/internal/api/http/middleware"
	"github.com/arogyahq/arogya_backend/internal/service/commission"
	"github.com/arogyahq/arogya_backend/internal/service/facility"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/internal/service/reconciliation"
	"github.com/arogyahq/arogya_backend/internal/service/settlement"
	"github.com/arogyahq/arogya_backend/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg               *config.Config
	Auth              authorize.IAuthorization
	FacilitySvc       facility.Service
	PolicySvc         policy.Service
	CommissionSvc     commission.Service
	SettlementSvc     settlement.Service
	ReconciliationSvc reconciliation.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	callerRequired := middleware.CallerContext()
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	facilityH := handler.NewFacilityHandler(r.p.FacilitySvc)
	policyH := handler.NewPolicyHandler(r.p.PolicySvc)
	transactionH := handler.NewTransactionHandler(r.p.CommissionSvc)
	settlementH := handler.NewSettlementHandler(r.p.SettlementSvc)
	reconciliationH := handler.NewReconciliationHandler(r.p.ReconciliationSvc)

	api := app.Group("/api/v1", callerRequired)

	r.registerFacilityRoutes(api, facilityH, policyH, requirePerm)
	r.registerTransactionRoutes(api, transactionH, requirePerm)
	r.registerSettlementRoutes(api, settlementH, requirePerm)
	r.registerReconciliationRoutes(api, reconciliationH, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
