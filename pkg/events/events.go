// Package events publishes domain events onto NATS subjects so that
// downstream workers and audit consumers can react without coupling to
// the services that produce them.
package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Subjects for the settlement platform. Facility-scoped subjects carry the
// facility id as the last token so workers can subscribe with a wildcard.
const (
	// SubjectTransactionIngest is consumed, not published: upstream payment
	// systems report transactions here as an alternative to the HTTP API.
	SubjectTransactionIngest = "arogya.txn.ingest"

	SubjectTransactionCaptured = "arogya.txn.captured"
	SubjectLedgerEntryCreated  = "arogya.ledger.entry.created"
	SubjectLedgerEntryReversed = "arogya.ledger.entry.reversed"
	SubjectSettlementPrefix    = "arogya.settlement."
)

// SettlementSubject builds the subject for a settlement state change,
// e.g. arogya.settlement.approved.
func SettlementSubject(state string) string {
	return SubjectSettlementPrefix + state
}

// Envelope is the wire format for every published event.
type Envelope struct {
	EventID    string          `json:"event_id"`
	Subject    string          `json:"subject"`
	FacilityID string          `json:"facility_id,omitempty"`
	ActorID    string          `json:"actor_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Emitter publishes envelopes. A nil Emitter is safe to call and drops
// everything, which keeps services testable without a broker.
type Emitter struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewEmitter(nc *nats.Conn, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{nc: nc, logger: logger}
}

// Emit publishes payload on subject wrapped in an Envelope. Publishing is
// fire-and-forget: a broker failure is logged, never propagated, because
// the ledger write that triggered the event has already committed.
func (e *Emitter) Emit(subject string, facilityID, actorID uuid.UUID, payload any) {
	if e == nil || e.nc == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		e.logger.Warn("event payload marshal failed", "subject", subject, "err", err)
		return
	}

	env := Envelope{
		EventID:    uuid.Must(uuid.NewV7()).String(),
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    raw,
	}
	if facilityID != uuid.Nil {
		env.FacilityID = facilityID.String()
	}
	if actorID != uuid.Nil {
		env.ActorID = actorID.String()
	}

	data, err := json.Marshal(env)
	if err != nil {
		e.logger.Warn("event envelope marshal failed", "subject", subject, "err", err)
		return
	}

	if err := e.nc.Publish(subject, data); err != nil {
		e.logger.Warn("event publish failed", "subject", subject, "err", err)
	}
}

// Decode unmarshals a received message back into an Envelope.
func Decode(msg *nats.Msg) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(msg.Data, &env)
	return env, err
}
