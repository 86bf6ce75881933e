// Package settlement groups outstanding commission entries into batches and
// walks each batch through the approval workflow. Per-facility serialization
// comes from status-guarded conditional updates, never from a global lock;
// the same facility cannot double-claim an entry, and different facilities
// never block one another.
package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/internal/repo"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/pkg/events"
)

// Type selects which channels a settlement covers.
type Type string

const (
	TypeOnline Type = "online"
	TypeCash   Type = "cash"
	TypeMixed  Type = "mixed"
)

// Channels returns the ledger channels a settlement type selects. Mixed
// settles online and cash entries independently computed and summed.
func (t Type) Channels() []string {
	switch t {
	case TypeOnline:
		return []string{"online"}
	case TypeCash:
		return []string{"cash"}
	default:
		return []string{"online", "cash"}
	}
}

// State names for the settlement workflow.
const (
	StateDraft           = "draft"
	StatePendingApproval = "pending_approval"
	StateApproved        = "approved"
	StatePaid            = "paid"
	StateCancelled       = "cancelled"
)

// ProposeRequest asks the aggregator for a new draft. Either a period scan
// or an explicit entry subset; EntryIDs wins when both are present, which is
// how partial settlement works.
type ProposeRequest struct {
	FacilityID     uuid.UUID
	Type           Type
	PeriodFrom     time.Time
	PeriodTo       time.Time
	EntryIDs       []uuid.UUID
	Notes          string
	IdempotencyKey string
}

// TransitionRequest carries the inputs for one workflow step.
type TransitionRequest struct {
	TargetState      string
	IdempotencyKey   string
	PaymentReference string
	PaymentMethod    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Propose selects unsettled entries, computes totals, and creates a
	// draft settlement claiming those entries, all in one transaction.
	Propose(ctx context.Context, req ProposeRequest) (*repo.Settlement, error)

	// Transition advances a settlement through the workflow:
	// draft → pending_approval → approved → paid, with cancellation from
	// any non-terminal state.
	Transition(ctx context.Context, settlementID uuid.UUID, req TransitionRequest) (*repo.Settlement, error)

	// Get loads one settlement with tenant scoping applied.
	Get(ctx context.Context, settlementID uuid.UUID) (*repo.Settlement, error)

	// List pages a facility's settlements, newest first.
	List(ctx context.Context, facilityID uuid.UUID, page, perPage int) ([]*repo.Settlement, error)
}

type settlementService struct {
	db      *repo.Client
	ledger  ledger.Store
	emitter *events.Emitter
}

func New(db *repo.Client, lg ledger.Store, emitter *events.Emitter) Service {
	return &settlementService{db: db, ledger: lg, emitter: emitter}
}
