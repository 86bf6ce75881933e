package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	entpolicy "github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
	"github.com/arogyahq/arogya_backend/internal/service/commission"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type settlementEnv struct {
	client   *repo.Client
	svc      Service
	capture  commission.Service
	facility *repo.Facility
}

func newSettlementEnv(t *testing.T) *settlementEnv {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=5000", t.Name()))
	t.Cleanup(func() { client.Close() })

	f, err := client.Facility.Create().
		SetName("Riverside Hospital").
		SetCode("RIVER1").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}

	_, err = client.CommissionPolicy.Create().
		SetFacilityID(f.ID).
		SetPlatformMdrRate("0.012").
		SetGatewayMdrRate("0.011").
		SetCashCommissionEnabled(true).
		SetCashCommissionType(entpolicy.CashCommissionTypePercentage).
		SetCashCommissionValue("0.02").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create policy: %v", err)
	}

	lg := ledger.New(client)
	return &settlementEnv{
		client:   client,
		svc:      New(client, lg, nil),
		capture:  commission.New(client, lg, policy.New(client), nil, nil),
		facility: f,
	}
}

func (e *settlementEnv) adminCtx() context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID:     uuid.Must(uuid.NewV7()),
		Role:        reqctx.RoleFacilityAdmin,
		FacilityIDs: []uuid.UUID{e.facility.ID},
	})
}

func superAdminCtx() context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID: uuid.Must(uuid.NewV7()),
		Role:    reqctx.RoleSuperAdmin,
	})
}

// captureN records n online transactions of gross 100000 each, yielding a
// 100-unit commission entry per capture under the 0.10% margin policy.
func (e *settlementEnv) captureN(t *testing.T, n int) []*commission.CaptureResult {
	t.Helper()
	ctx := e.adminCtx()
	results := make([]*commission.CaptureResult, 0, n)
	for i := 0; i < n; i++ {
		res, err := e.capture.Capture(ctx, commission.CaptureRequest{
			FacilityID:    e.facility.ID,
			Channel:       commission.ChannelOnline,
			GrossAmount:   100000,
			OccurredAt:    time.Now().UTC(),
			BillReference: fmt.Sprintf("BILL-%d", i),
		})
		if err != nil {
			t.Fatalf("capture %d: %v", i, err)
		}
		results = append(results, res)
	}
	return results
}

func (e *settlementEnv) proposeReq(key string) ProposeRequest {
	now := time.Now().UTC()
	return ProposeRequest{
		FacilityID:     e.facility.ID,
		Type:           TypeOnline,
		PeriodFrom:     now.Add(-time.Hour),
		PeriodTo:       now.Add(time.Hour),
		Notes:          "september payout batch",
		IdempotencyKey: key,
	}
}

func TestProposeClaimsEntries(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 2)

	record, err := env.svc.Propose(env.adminCtx(), env.proposeReq("prop-1"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if record.Status != entsettle.StatusDraft {
		t.Errorf("status = %s, want draft", record.Status)
	}
	if record.Notes != "september payout batch" {
		t.Errorf("notes = %q", record.Notes)
	}
	if record.TotalCommission != 200 {
		t.Errorf("total commission = %d, want 200", record.TotalCommission)
	}
	if record.TotalCollections != 200000 {
		t.Errorf("total collections = %d, want 200000", record.TotalCollections)
	}
	if record.FacilityShare != 199800 {
		t.Errorf("facility share = %d, want 199800", record.FacilityShare)
	}

	claimed, err := env.client.CommissionEntry.Query().
		Where(entent.SettlementID(record.ID), entent.StatusEQ(entent.StatusIncludedInSettlement)).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count claimed: %v", err)
	}
	if claimed != 2 {
		t.Errorf("claimed entries = %d, want 2", claimed)
	}

	items, err := env.client.SettlementItem.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if items != 2 {
		t.Errorf("settlement items = %d, want 2", items)
	}
}

func TestProposeEmptyPeriod(t *testing.T) {
	env := newSettlementEnv(t)

	_, err := env.svc.Propose(env.adminCtx(), env.proposeReq("prop-empty"))
	if !errors.Is(err, ErrNoUnsettledEntries) {
		t.Errorf("expected ErrNoUnsettledEntries, got %v", err)
	}
}

func TestProposeReplayReturnsOriginalDraft(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	ctx := env.adminCtx()

	first, err := env.svc.Propose(ctx, env.proposeReq("prop-replay"))
	if err != nil {
		t.Fatalf("first propose: %v", err)
	}
	// All entries are claimed now; a non-idempotent retry would fail with
	// ErrNoUnsettledEntries instead of returning the draft.
	second, err := env.svc.Propose(ctx, env.proposeReq("prop-replay"))
	if err != nil {
		t.Fatalf("replayed propose: %v", err)
	}
	if first.ID != second.ID {
		t.Error("replay created a second settlement")
	}
}

func TestProposePartialByEntryIDs(t *testing.T) {
	env := newSettlementEnv(t)
	results := env.captureN(t, 3)

	req := env.proposeReq("prop-partial")
	req.EntryIDs = []uuid.UUID{results[0].Entry.ID, results[2].Entry.ID}

	record, err := env.svc.Propose(env.adminCtx(), req)
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if record.TotalCommission != 200 {
		t.Errorf("partial total = %d, want 200", record.TotalCommission)
	}

	leftover, err := env.client.CommissionEntry.Get(context.Background(), results[1].Entry.ID)
	if err != nil {
		t.Fatalf("reload leftover: %v", err)
	}
	if leftover.Status != entent.StatusUnsettled {
		t.Errorf("unselected entry status = %s, want unsettled", leftover.Status)
	}
}

func TestWorkflowLifecycle(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 2)
	adminCtx := env.adminCtx()
	suCtx := superAdminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("life-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	record, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{
		TargetState:    StatePendingApproval,
		IdempotencyKey: "life-submit",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if record.Status != entsettle.StatusPendingApproval {
		t.Fatalf("status = %s, want pending_approval", record.Status)
	}
	if record.SubmittedBy == nil {
		t.Error("submitted_by not recorded")
	}

	record, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{
		TargetState:    StateApproved,
		IdempotencyKey: "life-approve",
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if record.ApprovedBy == nil || record.ApprovedAt == nil {
		t.Error("approval audit fields not recorded")
	}

	record, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{
		TargetState:      StatePaid,
		IdempotencyKey:   "life-pay",
		PaymentReference: "UTR-20260831-01",
		PaymentMethod:    "neft",
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if record.Status != entsettle.StatusPaid {
		t.Fatalf("status = %s, want paid", record.Status)
	}
	if record.PaymentReference == nil || *record.PaymentReference != "UTR-20260831-01" {
		t.Error("payment reference not recorded")
	}

	settled, err := env.client.CommissionEntry.Query().
		Where(entent.StatusEQ(entent.StatusSettled)).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count settled: %v", err)
	}
	if settled != 2 {
		t.Errorf("settled entries = %d, want 2", settled)
	}
}

func TestApproveRequiresSuperAdmin(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("appr-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	record, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StatePendingApproval})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StateApproved})
	if !errors.Is(err, ErrApprovalRequiresSuperAdmin) {
		t.Errorf("expected ErrApprovalRequiresSuperAdmin, got %v", err)
	}
}

func TestPayRequiresPaymentReference(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()
	suCtx := superAdminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("pay-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	if _, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StatePendingApproval}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{TargetState: StateApproved}); err != nil {
		t.Fatalf("approve: %v", err)
	}

	_, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{TargetState: StatePaid})
	if !errors.Is(err, ErrPaymentReferenceRequired) {
		t.Errorf("expected ErrPaymentReferenceRequired, got %v", err)
	}
}

func TestInvalidTransitions(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()
	suCtx := superAdminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("inv-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	// Draft cannot jump straight to paid or approved.
	for _, target := range []string{StatePaid, StateApproved} {
		_, err := env.svc.Transition(suCtx, record.ID, TransitionRequest{
			TargetState:      target,
			PaymentReference: "UTR-X",
		})
		if !IsInvalidTransition(err) {
			t.Errorf("draft → %s: expected InvalidTransitionError, got %v", target, err)
		}
	}

	// Walk to paid, then verify paid is terminal.
	if _, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StatePendingApproval}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{TargetState: StateApproved}); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{
		TargetState:      StatePaid,
		PaymentReference: "UTR-Y",
	}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	for _, target := range []string{StateCancelled, StatePendingApproval, StateApproved} {
		_, err := env.svc.Transition(suCtx, record.ID, TransitionRequest{TargetState: target})
		if !IsInvalidTransition(err) {
			t.Errorf("paid → %s: expected InvalidTransitionError, got %v", target, err)
		}
	}
}

func TestCancelReleasesEntries(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 2)
	adminCtx := env.adminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("cxl-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	record, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StateCancelled})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if record.Status != entsettle.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", record.Status)
	}

	unsettled, err := env.client.CommissionEntry.Query().
		Where(entent.StatusEQ(entent.StatusUnsettled)).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count unsettled: %v", err)
	}
	if unsettled != 2 {
		t.Fatalf("released entries = %d, want 2", unsettled)
	}

	// Released entries are eligible again.
	again, err := env.svc.Propose(adminCtx, env.proposeReq("cxl-prop-2"))
	if err != nil {
		t.Fatalf("re-propose: %v", err)
	}
	if again.TotalCommission != 200 {
		t.Errorf("re-proposed total = %d, want 200", again.TotalCommission)
	}
}

func TestSubmitDetectsDrift(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("drift-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	// Simulate a corrupted total.
	if _, err := env.client.Settlement.UpdateOneID(record.ID).
		SetTotalCommission(record.TotalCommission + 1).
		Save(context.Background()); err != nil {
		t.Fatalf("tamper: %v", err)
	}

	_, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{TargetState: StatePendingApproval})
	if !IsReconciliationDrift(err) {
		t.Errorf("expected ReconciliationDriftError, got %v", err)
	}
}

func TestIdempotencyKeyReusedAcrossOperations(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("shared-key"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	_, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{
		TargetState:    StatePendingApproval,
		IdempotencyKey: "shared-key",
	})
	if !errors.Is(err, ErrIdempotencyKeyReused) {
		t.Errorf("expected ErrIdempotencyKeyReused, got %v", err)
	}
}

func TestConcurrentProposeSingleWinner(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	ctx := env.adminCtx()

	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = env.svc.Propose(ctx, env.proposeReq(fmt.Sprintf("race-%d", i)))
		}(i)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		if !errors.Is(err, ErrNoUnsettledEntries) && !errors.Is(err, ledger.ErrConcurrentClaimConflict) {
			t.Errorf("loser error = %v, want no-unsettled-entries or claim conflict", err)
		}
	}
	if winners != 1 {
		t.Fatalf("winners = %d, want exactly 1", winners)
	}

	// The single entry must be claimed by exactly one draft.
	drafts, err := env.client.Settlement.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count settlements: %v", err)
	}
	if drafts != 1 {
		t.Errorf("settlements = %d, want 1", drafts)
	}
	claimed, err := env.client.CommissionEntry.Query().
		Where(entent.StatusEQ(entent.StatusIncludedInSettlement)).
		Count(context.Background())
	if err != nil {
		t.Fatalf("count claimed: %v", err)
	}
	if claimed != 1 {
		t.Errorf("claimed entries = %d, want 1", claimed)
	}
}

// entryTotals sums commission amounts per entry status. The total across
// all statuses must stay constant through the whole settlement lifecycle.
func entryTotals(t *testing.T, client *repo.Client) (unsettled, included, settled, count int64) {
	t.Helper()
	rows, err := client.CommissionEntry.Query().All(context.Background())
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	for _, e := range rows {
		count++
		switch e.Status {
		case entent.StatusUnsettled:
			unsettled += e.CommissionAmount
		case entent.StatusIncludedInSettlement:
			included += e.CommissionAmount
		case entent.StatusSettled:
			settled += e.CommissionAmount
		default:
			t.Fatalf("unexpected entry status %s", e.Status)
		}
	}
	return unsettled, included, settled, count
}

func TestLifecycleConservesCommission(t *testing.T) {
	env := newSettlementEnv(t)
	results := env.captureN(t, 3)
	adminCtx := env.adminCtx()
	suCtx := superAdminCtx()

	checkConserved := func(stage string) {
		u, i, s, n := entryTotals(t, env.client)
		if n != 3 {
			t.Fatalf("%s: entry count = %d, want 3", stage, n)
		}
		if u+i+s != 300 {
			t.Errorf("%s: unsettled %d + included %d + settled %d = %d, want 300",
				stage, u, i, s, u+i+s)
		}
	}
	checkConserved("after capture")

	req := env.proposeReq("conserve-prop")
	req.EntryIDs = []uuid.UUID{results[0].Entry.ID, results[1].Entry.ID}
	record, err := env.svc.Propose(adminCtx, req)
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}
	checkConserved("after propose")

	if record.TotalCommission != 200 {
		t.Errorf("draft commission = %d, want 200", record.TotalCommission)
	}

	record, err = env.svc.Transition(adminCtx, record.ID, TransitionRequest{
		TargetState: StatePendingApproval, IdempotencyKey: "conserve-submit",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	checkConserved("after submit")

	record, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{
		TargetState: StateApproved, IdempotencyKey: "conserve-approve",
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	checkConserved("after approve")

	_, err = env.svc.Transition(suCtx, record.ID, TransitionRequest{
		TargetState:      StatePaid,
		IdempotencyKey:   "conserve-pay",
		PaymentReference: "UTR-20260930-07",
		PaymentMethod:    "neft",
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	checkConserved("after pay")

	u, _, s, _ := entryTotals(t, env.client)
	if u != 100 || s != 200 {
		t.Errorf("final split: unsettled = %d, settled = %d, want 100 / 200", u, s)
	}
}

func TestTransitionReplayIsIdempotent(t *testing.T) {
	env := newSettlementEnv(t)
	env.captureN(t, 1)
	adminCtx := env.adminCtx()

	record, err := env.svc.Propose(adminCtx, env.proposeReq("rep-prop"))
	if err != nil {
		t.Fatalf("Propose: %v", err)
	}

	req := TransitionRequest{TargetState: StatePendingApproval, IdempotencyKey: "rep-submit"}
	first, err := env.svc.Transition(adminCtx, record.ID, req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := env.svc.Transition(adminCtx, record.ID, req)
	if err != nil {
		t.Fatalf("replayed submit: %v", err)
	}
	if first.ID != second.ID || second.Status != entsettle.StatusPendingApproval {
		t.Error("replayed transition must return the already-transitioned settlement")
	}
}
