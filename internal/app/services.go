package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/arogyahq/arogya_backend/config"
	"github.com/arogyahq/arogya_backend/internal/repo"
	"github.com/arogyahq/arogya_backend/internal/service/commission"
	"github.com/arogyahq/arogya_backend/internal/service/facility"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/internal/service/reconciliation"
	"github.com/arogyahq/arogya_backend/internal/service/settlement"
	"github.com/arogyahq/arogya_backend/pkg/events"
	redispkg "github.com/arogyahq/arogya_backend/pkg/redis"
)

// ServiceModule provides all domain services.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideFacilityService),
	fx.Provide(ProvidePolicyService),
	fx.Provide(ProvideLedgerStore),
	fx.Provide(ProvideCommissionService),
	fx.Provide(ProvideSettlementService),
	fx.Provide(ProvideReconciliationService),
)

func ProvideFacilityService(db *repo.Client) facility.Service {
	return facility.New(db)
}

func ProvidePolicyService(db *repo.Client) policy.Service {
	return policy.New(db)
}

func ProvideLedgerStore(db *repo.Client) ledger.Store {
	return ledger.New(db)
}

func ProvideCommissionService(db *repo.Client, lg ledger.Store, pol policy.Service, emitter *events.Emitter) commission.Service {
	return commission.New(db, lg, pol, emitter, slog.Default())
}

func ProvideSettlementService(db *repo.Client, lg ledger.Store, emitter *events.Emitter) settlement.Service {
	return settlement.New(db, lg, emitter)
}

func ProvideReconciliationService(db *repo.Client, rc *redispkg.Client, cfg *config.Config) reconciliation.Service {
	return reconciliation.New(db, rc, cfg)
}
