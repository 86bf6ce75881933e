package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementSubject(t *testing.T) {
	assert.Equal(t, "arogya.settlement.approved", SettlementSubject("approved"))
	assert.Equal(t, "arogya.settlement.paid", SettlementSubject("paid"))
}

func TestEmitNilSafe(t *testing.T) {
	// Must not panic without a broker connection.
	var e *Emitter
	e.Emit(SubjectLedgerEntryCreated, uuid.New(), uuid.New(), map[string]any{"x": 1})

	e = NewEmitter(nil, nil)
	e.Emit(SubjectLedgerEntryCreated, uuid.New(), uuid.New(), map[string]any{"x": 1})
}

func TestDecodeRoundTrip(t *testing.T) {
	facilityID := uuid.New()
	env := Envelope{
		EventID:    uuid.Must(uuid.NewV7()).String(),
		Subject:    SubjectTransactionCaptured,
		FacilityID: facilityID.String(),
		Payload:    json.RawMessage(`{"amount":1000}`),
	}

	data, err := json.Marshal(env)
	require.NoError(t, err)

	got, err := Decode(&nats.Msg{Subject: env.Subject, Data: data})
	require.NoError(t, err)
	assert.Equal(t, env.EventID, got.EventID)
	assert.Equal(t, facilityID.String(), got.FacilityID)
	assert.JSONEq(t, `{"amount":1000}`, string(got.Payload))
}
