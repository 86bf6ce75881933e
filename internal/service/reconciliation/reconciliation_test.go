package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/config"
	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	entsettle "github.com/arogyahq/arogya_backend/internal/repo/settlement"
	enttxn "github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/arogyahq/arogya_backend/internal/service/ledger"
	"github.com/arogyahq/arogya_backend/pkg/money"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

type reconEnv struct {
	client *repo.Client
	svc    Service
	lg     ledger.Store
}

func newReconEnv(t *testing.T) *reconEnv {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	return &reconEnv{
		client: client,
		svc:    New(client, nil, &config.Config{}),
		lg:     ledger.New(client),
	}
}

func (e *reconEnv) createFacility(t *testing.T, code string) *repo.Facility {
	t.Helper()
	f, err := e.client.Facility.Create().
		SetName("Facility " + code).
		SetCode(code).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}
	return f
}

// addEntry records a captured transaction plus its commission entry dated
// occurredAt, and returns the entry.
func (e *reconEnv) addEntry(t *testing.T, facilityID uuid.UUID, channel string, gross, commission int64, occurredAt time.Time) *repo.CommissionEntry {
	t.Helper()
	ctx := context.Background()

	txn, err := e.client.Transaction.Create().
		SetFacilityID(facilityID).
		SetChannel(enttxn.Channel(channel)).
		SetGrossAmount(gross).
		SetCurrency("INR").
		SetOccurredAt(occurredAt).
		SetBillReference(uuid.Must(uuid.NewV7()).String()).
		Save(ctx)
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	entry, err := e.lg.Append(ctx, tx, ledger.AppendParams{
		FacilityID:       facilityID,
		TransactionID:    txn.ID,
		Channel:          channel,
		GrossAmount:      gross,
		Commission:       commission,
		FacilityShare:    gross - commission,
		Currency:         "INR",
		OccurredAt:       occurredAt,
		SnapshotRate:     decimal.RequireFromString("0.001"),
		SnapshotTaxRate:  decimal.Zero,
		SnapshotCashType: "none",
		SnapshotRounding: money.RoundNearest,
	})
	if err != nil {
		tx.Rollback()
		t.Fatalf("append entry: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return entry
}

func callerCtx(role reqctx.Role, facilityIDs ...uuid.UUID) context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID:     uuid.Must(uuid.NewV7()),
		Role:        role,
		FacilityIDs: facilityIDs,
	})
}

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n)
}

func TestPendingCommissionExcludesSettled(t *testing.T) {
	env := newReconEnv(t)
	f := env.createFacility(t, "PND1")
	ctx := callerCtx(reqctx.RoleFacilityAdmin, f.ID)

	env.addEntry(t, f.ID, "online", 100000, 100, daysAgo(1))
	claimed := env.addEntry(t, f.ID, "online", 100000, 150, daysAgo(2))
	settled := env.addEntry(t, f.ID, "online", 100000, 999, daysAgo(3))

	// One claimed by a draft settlement, one fully paid out.
	if _, err := env.client.CommissionEntry.UpdateOneID(claimed.ID).
		SetStatus(entent.StatusIncludedInSettlement).
		Save(context.Background()); err != nil {
		t.Fatalf("claim entry: %v", err)
	}
	if _, err := env.client.CommissionEntry.UpdateOneID(settled.ID).
		SetStatus(entent.StatusSettled).
		Save(context.Background()); err != nil {
		t.Fatalf("settle entry: %v", err)
	}

	pending, err := env.svc.PendingCommission(ctx, f.ID)
	if err != nil {
		t.Fatalf("PendingCommission: %v", err)
	}
	if pending != 250 {
		t.Errorf("pending = %d, want 250 (unsettled + claimed, never settled)", pending)
	}
}

func TestAgingReportBuckets(t *testing.T) {
	env := newReconEnv(t)
	f := env.createFacility(t, "AGE1")
	ctx := callerCtx(reqctx.RoleFacilityAdmin, f.ID)

	env.addEntry(t, f.ID, "online", 100000, 10, daysAgo(5))   // 0-30
	env.addEntry(t, f.ID, "online", 100000, 20, daysAgo(45))  // 31-60
	env.addEntry(t, f.ID, "online", 100000, 30, daysAgo(75))  // 61-90
	env.addEntry(t, f.ID, "online", 100000, 40, daysAgo(120)) // >90

	buckets, err := env.svc.AgingReport(ctx, f.ID)
	if err != nil {
		t.Fatalf("AgingReport: %v", err)
	}
	if len(buckets) != 4 {
		t.Fatalf("bucket count = %d, want 4", len(buckets))
	}

	want := []struct {
		label      string
		commission int64
	}{
		{"0-30", 10},
		{"31-60", 20},
		{"61-90", 30},
		{">90", 40},
	}
	for i, w := range want {
		if buckets[i].Label != w.label {
			t.Errorf("bucket %d label = %s, want %s", i, buckets[i].Label, w.label)
		}
		if buckets[i].Commission != w.commission {
			t.Errorf("bucket %q commission = %d, want %d", w.label, buckets[i].Commission, w.commission)
		}
		if buckets[i].EntryCount != 1 {
			t.Errorf("bucket %q entry count = %d, want 1", w.label, buckets[i].EntryCount)
		}
	}
}

func TestFacilitySummary(t *testing.T) {
	env := newReconEnv(t)
	f := env.createFacility(t, "SUM1")
	ctx := callerCtx(reqctx.RoleFacilityAdmin, f.ID)

	env.addEntry(t, f.ID, "online", 100000, 100, daysAgo(1))
	env.addEntry(t, f.ID, "cash", 5000, 100, daysAgo(2))

	paidAt := daysAgo(10)
	if _, err := env.client.Settlement.Create().
		SetFacilityID(f.ID).
		SetSettlementType(entsettle.SettlementTypeOnline).
		SetPeriodFrom(daysAgo(40)).
		SetPeriodTo(daysAgo(10)).
		SetStatus(entsettle.StatusPaid).
		SetTotalCollections(300000).
		SetTotalCommission(300).
		SetFacilityShare(299700).
		SetPlatformShare(300).
		SetCurrency("INR").
		SetPaidAt(paidAt).
		SetPaymentReference("UTR-OLD").
		Save(context.Background()); err != nil {
		t.Fatalf("create paid settlement: %v", err)
	}

	sum, err := env.svc.Summary(ctx, f.ID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalCollectedOnline != 100000 || sum.TotalCollectedCash != 5000 {
		t.Errorf("collections = %d/%d, want 100000/5000",
			sum.TotalCollectedOnline, sum.TotalCollectedCash)
	}
	if sum.TotalBilled != 105000 {
		t.Errorf("total billed = %d, want 105000", sum.TotalBilled)
	}
	if sum.CommissionEarned != 200 {
		t.Errorf("commission earned = %d, want 200", sum.CommissionEarned)
	}
	if sum.CommissionPending != 200 {
		t.Errorf("commission pending = %d, want 200", sum.CommissionPending)
	}
	if sum.LastSettlementAt == nil || !sum.LastSettlementAt.Equal(paidAt) {
		t.Errorf("last settlement at = %v, want %v", sum.LastSettlementAt, paidAt)
	}
	if sum.LastSettlementAmount != 300 {
		t.Errorf("last settlement amount = %d, want 300", sum.LastSettlementAmount)
	}
}

func TestRollupScopedByVisibility(t *testing.T) {
	env := newReconEnv(t)
	fa := env.createFacility(t, "RLA")
	fb := env.createFacility(t, "RLB")

	env.addEntry(t, fa.ID, "online", 100000, 100, daysAgo(1))
	env.addEntry(t, fb.ID, "online", 200000, 250, daysAgo(1))

	all, err := env.svc.Rollup(callerCtx(reqctx.RoleSuperAdmin))
	if err != nil {
		t.Fatalf("Rollup: %v", err)
	}
	if all.FacilityCount != 2 {
		t.Errorf("facility count = %d, want 2", all.FacilityCount)
	}
	if all.CommissionPending != 350 {
		t.Errorf("pending = %d, want 350", all.CommissionPending)
	}
	if all.TotalBilled != 300000 {
		t.Errorf("billed = %d, want 300000", all.TotalBilled)
	}

	scoped, err := env.svc.Rollup(callerCtx(reqctx.RoleFacilityAdmin, fa.ID))
	if err != nil {
		t.Fatalf("scoped Rollup: %v", err)
	}
	if scoped.FacilityCount != 1 || scoped.CommissionPending != 100 {
		t.Errorf("scoped rollup = %d facilities / %d pending, want 1 / 100",
			scoped.FacilityCount, scoped.CommissionPending)
	}
}

func TestRollupEmptyScopeSeesNothing(t *testing.T) {
	env := newReconEnv(t)
	fa := env.createFacility(t, "RLE1")
	fb := env.createFacility(t, "RLE2")

	env.addEntry(t, fa.ID, "online", 100000, 100, daysAgo(1))
	env.addEntry(t, fb.ID, "online", 200000, 250, daysAgo(1))

	// A non-super-admin caller with no facility grants must see an
	// empty rollup, not the platform-wide one.
	for _, role := range []reqctx.Role{reqctx.RoleStaff, reqctx.RolePatient} {
		out, err := env.svc.Rollup(callerCtx(role))
		if err != nil {
			t.Fatalf("Rollup(%s): %v", role, err)
		}
		if out.FacilityCount != 0 {
			t.Errorf("Rollup(%s): facility count = %d, want 0", role, out.FacilityCount)
		}
		if out.TotalBilled != 0 || out.CommissionPending != 0 {
			t.Errorf("Rollup(%s): billed = %d, pending = %d, want 0 / 0",
				role, out.TotalBilled, out.CommissionPending)
		}
	}
}

func TestProjectionsDenyForeignFacility(t *testing.T) {
	env := newReconEnv(t)
	f := env.createFacility(t, "DNY1")
	foreign := callerCtx(reqctx.RoleFacilityAdmin, uuid.Must(uuid.NewV7()))

	if _, err := env.svc.PendingCommission(foreign, f.ID); !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("PendingCommission: expected ErrTenantAccessDenied, got %v", err)
	}
	if _, err := env.svc.AgingReport(foreign, f.ID); !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("AgingReport: expected ErrTenantAccessDenied, got %v", err)
	}
	if _, err := env.svc.Summary(foreign, f.ID); !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("Summary: expected ErrTenantAccessDenied, got %v", err)
	}
}

func TestMakeBuckets(t *testing.T) {
	buckets := makeBuckets([]int{7, 30})
	if len(buckets) != 3 {
		t.Fatalf("bucket count = %d, want 3", len(buckets))
	}
	if buckets[0].MinDays != 0 || buckets[0].MaxDays != 7 {
		t.Errorf("bucket 0 = [%d, %d], want [0, 7]", buckets[0].MinDays, buckets[0].MaxDays)
	}
	if buckets[1].MinDays != 8 || buckets[1].MaxDays != 30 {
		t.Errorf("bucket 1 = [%d, %d], want [8, 30]", buckets[1].MinDays, buckets[1].MaxDays)
	}
	if buckets[2].MinDays != 31 || buckets[2].MaxDays != -1 || buckets[2].Label != ">30" {
		t.Errorf("open bucket = %+v", buckets[2])
	}
}
