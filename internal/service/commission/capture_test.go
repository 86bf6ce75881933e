package commission

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entpolicy "github.com/arogyahq/arogya_backend/internal/repo/commissionpolicy"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	enttxn "github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/internal/service/policy"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type captureEnv struct {
	client   *repo.Client
	svc      Service
	facility *repo.Facility
}

func newCaptureEnv(t *testing.T) *captureEnv {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	f, err := client.Facility.Create().
		SetName("Lakeview Clinic").
		SetCode("LAKE1").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}

	// Online margin 0.10%, cash 2%.
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

	svc := New(client, ledger.New(client), policy.New(client), nil, nil)
	return &captureEnv{client: client, svc: svc, facility: f}
}

func adminCtx(facilityIDs ...uuid.UUID) context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID:     uuid.Must(uuid.NewV7()),
		Role:        reqctx.RoleFacilityAdmin,
		FacilityIDs: facilityIDs,
	})
}

func captureReq(facilityID uuid.UUID, channel Channel, gross int64, ref string) CaptureRequest {
	return CaptureRequest{
		FacilityID:    facilityID,
		Channel:       channel,
		GrossAmount:   gross,
		OccurredAt:    time.Now().UTC(),
		BillReference: ref,
	}
}

func TestCaptureOnline(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	res, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-1001"))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if res.Transaction == nil || res.Entry == nil {
		t.Fatal("expected both transaction and entry")
	}
	if res.Entry.CommissionAmount != 100 {
		t.Errorf("commission = %d, want 100", res.Entry.CommissionAmount)
	}
	if res.Entry.FacilityShare != 99900 {
		t.Errorf("facility share = %d, want 99900", res.Entry.FacilityShare)
	}
	if res.Entry.Seq != 1 {
		t.Errorf("seq = %d, want 1", res.Entry.Seq)
	}
	if res.Entry.SnapshotRate != "0.001" {
		t.Errorf("snapshot rate = %s, want 0.001", res.Entry.SnapshotRate)
	}
	if res.Transaction.Currency != "INR" {
		t.Errorf("currency defaulted to %s, want facility's INR", res.Transaction.Currency)
	}
}

func TestCaptureCashPercentage(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	res, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelCash, 5000, "CASH-7"))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if res.Entry.CommissionAmount != 100 {
		t.Errorf("commission = %d, want 100", res.Entry.CommissionAmount)
	}
	if res.Entry.FacilityShare != 4900 {
		t.Errorf("facility share = %d, want 4900", res.Entry.FacilityShare)
	}
}

func TestCaptureReplayReturnsOriginal(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)
	req := captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-2002")

	first, err := env.svc.Capture(ctx, req)
	if err != nil {
		t.Fatalf("first capture: %v", err)
	}
	second, err := env.svc.Capture(ctx, req)
	if err != nil {
		t.Fatalf("replayed capture: %v", err)
	}

	if first.Transaction.ID != second.Transaction.ID {
		t.Error("replay created a second transaction")
	}
	count, err := env.client.CommissionEntry.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 1 {
		t.Errorf("entry count = %d, want 1", count)
	}
}

func TestCaptureForeignFacilityDenied(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(uuid.Must(uuid.NewV7())) // scoped to a different facility

	_, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-3003"))
	if !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("expected ErrTenantAccessDenied, got %v", err)
	}
}

func TestCaptureInactiveFacility(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	if _, err := env.client.Facility.UpdateOneID(env.facility.ID).
		SetIsActive(false).
		Save(context.Background()); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-4004"))
	if !errors.Is(err, ErrFacilityInactive) {
		t.Errorf("expected ErrFacilityInactive, got %v", err)
	}
}

func TestCaptureBrokenPolicyDefersEntry(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	// Gateway above platform makes the margin negative.
	if _, err := env.client.CommissionPolicy.Update().
		SetGatewayMdrRate("0.05").
		Save(context.Background()); err != nil {
		t.Fatalf("break policy: %v", err)
	}

	res, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-5005"))
	if !policy.IsPolicyError(err) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
	if res == nil || res.Transaction == nil {
		t.Fatal("transaction must persist even when the policy is broken")
	}
	if res.Entry != nil {
		t.Fatal("no entry should exist for a broken policy")
	}

	// Fix the policy; backfill repairs the gap.
	if _, err := env.client.CommissionPolicy.Update().
		SetGatewayMdrRate("0.011").
		Save(context.Background()); err != nil {
		t.Fatalf("fix policy: %v", err)
	}

	created, err := env.svc.BackfillEntries(ctx, env.facility.ID)
	if err != nil {
		t.Fatalf("BackfillEntries: %v", err)
	}
	if created != 1 {
		t.Fatalf("backfill created %d entries, want 1", created)
	}

	txn, err := env.svc.GetTransaction(ctx, env.facility.ID, res.Transaction.ID)
	if err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	entries, err := env.client.CommissionEntry.Query().All(context.Background())
	if err != nil {
		t.Fatalf("query entries: %v", err)
	}
	if len(entries) != 1 || entries[0].TransactionID != txn.ID {
		t.Errorf("backfilled entry not linked to the deferred transaction")
	}
	if entries[0].CommissionAmount != 100 {
		t.Errorf("backfilled commission = %d, want 100", entries[0].CommissionAmount)
	}
}

func TestReverseAppendsNegation(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	res, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 100000, "OPD-6006"))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	negation, err := env.svc.Reverse(ctx, env.facility.ID, res.Transaction.ID)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if negation.CommissionAmount != -100 || negation.GrossAmount != -100000 {
		t.Errorf("negation amounts = %d/%d, want -100/-100000",
			negation.CommissionAmount, negation.GrossAmount)
	}
	if negation.ReversesEntryID == nil || *negation.ReversesEntryID != res.Entry.ID {
		t.Error("negation must point at the original entry")
	}
	if negation.Seq <= res.Entry.Seq {
		t.Errorf("negation seq %d must follow original %d", negation.Seq, res.Entry.Seq)
	}

	txn, err := env.svc.GetTransaction(ctx, env.facility.ID, res.Transaction.ID)
	if err != nil {
		t.Fatalf("reload transaction: %v", err)
	}
	if txn.Status != enttxn.StatusReversed {
		t.Errorf("transaction status = %s, want reversed", txn.Status)
	}

	// The original entry is untouched.
	original, err := env.client.CommissionEntry.Get(context.Background(), res.Entry.ID)
	if err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if original.CommissionAmount != 100 {
		t.Error("reversal must never mutate the original entry")
	}
}

func TestReverseTwice(t *testing.T) {
	env := newCaptureEnv(t)
	ctx := adminCtx(env.facility.ID)

	res, err := env.svc.Capture(ctx, captureReq(env.facility.ID, ChannelOnline, 50000, "OPD-7007"))
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if _, err := env.svc.Reverse(ctx, env.facility.ID, res.Transaction.ID); err != nil {
		t.Fatalf("first reverse: %v", err)
	}
	_, err = env.svc.Reverse(ctx, env.facility.ID, res.Transaction.ID)
	if !errors.Is(err, ErrAlreadyReversed) {
		t.Errorf("expected ErrAlreadyReversed, got %v", err)
	}
}
