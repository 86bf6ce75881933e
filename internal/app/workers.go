package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/arogyahq/arogya_backend/internal/service/commission"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/events"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

// WorkerModule starts background consumers on application boot.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

// RegisterWorkers subscribes the transaction ingest consumer and the
// audit-trail consumers. Subscriptions are established on start and
// torn down on shutdown.
func RegisterWorkers(lc fx.Lifecycle, nc *nats.Conn, commissionSvc commission.Service) {
	var subs []*nats.Subscription

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ingestSub, err := nc.QueueSubscribe(events.SubjectTransactionIngest, "txn-ingest", ingestHandler(commissionSvc))
			if err != nil {
				return err
			}
			subs = append(subs, ingestSub)

			ledgerSub, err := nc.Subscribe(events.SubjectLedgerEntryCreated, handleAuditEvent)
			if err != nil {
				return err
			}
			subs = append(subs, ledgerSub)

			reversalSub, err := nc.Subscribe(events.SubjectLedgerEntryReversed, handleAuditEvent)
			if err != nil {
				return err
			}
			subs = append(subs, reversalSub)

			settlementSub, err := nc.Subscribe(events.SubjectSettlementPrefix+">", handleAuditEvent)
			if err != nil {
				return err
			}
			subs = append(subs, settlementSub)

			slog.Info("event workers started", "subscriptions", len(subs))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, sub := range subs {
				if err := sub.Unsubscribe(); err != nil {
					slog.Warn("worker unsubscribe failed", "subject", sub.Subject, "err", err)
				}
			}
			return nil
		},
	})
}

// ingestPayload is the wire shape upstream payment systems publish on the
// transaction ingest subject.
type ingestPayload struct {
	FacilityID    uuid.UUID  `json:"facility_id"`
	Channel       string     `json:"channel"`
	GrossAmount   int64      `json:"gross_amount"`
	Currency      string     `json:"currency"`
	OccurredAt    time.Time  `json:"occurred_at"`
	BillReference string     `json:"bill_reference"`
	CollectedBy   *uuid.UUID `json:"collected_by,omitempty"`
	GatewayTxnID  *string    `json:"gateway_txn_id,omitempty"`
}

// ingestHandler feeds published transactions into the capture service. The
// consumer acts with platform authority; tenant scoping happened upstream
// where the event was produced. Capture replays are idempotent, so NATS
// redeliveries are harmless.
func ingestHandler(svc commission.Service) nats.MsgHandler {
	return func(msg *nats.Msg) {
		env, err := events.Decode(msg)
		if err != nil {
			slog.Warn("undecodable ingest event", "subject", msg.Subject, "err", err)
			return
		}

		var p ingestPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			slog.Warn("invalid ingest payload", "event_id", env.EventID, "err", err)
			return
		}

		actorID := uuid.Nil
		if env.ActorID != "" {
			if parsed, err := uuid.Parse(env.ActorID); err == nil {
				actorID = parsed
			}
		}

		ctx := reqctx.WithCaller(context.Background(), &reqctx.Caller{
			ActorID: actorID,
			Role:    reqctx.RoleSuperAdmin,
		})

		res, err := svc.Capture(ctx, commission.CaptureRequest{
			FacilityID:    p.FacilityID,
			Channel:       commission.Channel(p.Channel),
			GrossAmount:   p.GrossAmount,
			Currency:      p.Currency,
			OccurredAt:    p.OccurredAt,
			BillReference: p.BillReference,
			CollectedBy:   p.CollectedBy,
			GatewayTxnID:  p.GatewayTxnID,
		})
		if err != nil {
			if policy.IsPolicyError(err) && res != nil && res.Transaction != nil {
				slog.Warn("ingested transaction captured without entry",
					"event_id", env.EventID,
					"transaction_id", res.Transaction.ID,
					"err", err,
				)
				return
			}
			slog.Error("transaction ingest failed", "event_id", env.EventID, "err", err)
			return
		}

		slog.Info("transaction ingested",
			"event_id", env.EventID,
			"transaction_id", res.Transaction.ID,
			"facility_id", p.FacilityID,
		)
	}
}

// handleAuditEvent records ledger and settlement activity in the application
// log. The ledger itself is the source of truth; this trail exists so
// operators can follow commission activity without database access.
func handleAuditEvent(msg *nats.Msg) {
	env, err := events.Decode(msg)
	if err != nil {
		slog.Warn("undecodable audit event", "subject", msg.Subject, "err", err)
		return
	}
	slog.Info("audit event",
		"subject", env.Subject,
		"event_id", env.EventID,
		"facility_id", env.FacilityID,
		"actor_id", env.ActorID,
	)
}
