package ledger

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/arogyahq/arogya_backend/internal/repo"
	entent "github.com/arogyahq/arogya_backend/internal/repo/commissionentry"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	enttxn "github.com/arogyahq/arogya_backend/internal/repo/transaction"
	"github.com/arogyahq/arogya_backend/pkg/money"
)

func openClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func createFacility(t *testing.T, client *repo.Client, code string) *repo.Facility {
	t.Helper()
	f, err := client.Facility.Create().
		SetName("City Care Hospital").
		SetCode(code).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}
	return f
}

func createTransaction(t *testing.T, client *repo.Client, facilityID uuid.UUID, ref string, gross int64, occurredAt time.Time) *repo.Transaction {
	t.Helper()
	txn, err := client.Transaction.Create().
		SetFacilityID(facilityID).
		SetChannel(enttxn.ChannelOnline).
		SetGrossAmount(gross).
		SetCurrency("INR").
		SetOccurredAt(occurredAt).
		SetBillReference(ref).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	return txn
}

func appendEntry(t *testing.T, client *repo.Client, store Store, p AppendParams) *repo.CommissionEntry {
	t.Helper()
	ctx := context.Background()
	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	entry, err := store.Append(ctx, tx, p)
	if err != nil {
		tx.Rollback()
		t.Fatalf("append: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return entry
}

func params(facilityID, txnID uuid.UUID, gross, commission int64, occurredAt time.Time) AppendParams {
	return AppendParams{
		FacilityID:       facilityID,
		TransactionID:    txnID,
		Channel:          "online",
		GrossAmount:      gross,
		Commission:       commission,
		FacilityShare:    gross - commission,
		Currency:         "INR",
		OccurredAt:       occurredAt,
		SnapshotRate:     decimal.RequireFromString("0.001"),
		SnapshotTaxRate:  decimal.Zero,
		SnapshotCashType: "none",
		SnapshotRounding: money.RoundNearest,
	}
}

func TestAppendAssignsMonotonicSeq(t *testing.T) {
	client := openClient(t)
	store := New(client)
	f := createFacility(t, client, "SEQ1")
	now := time.Now().UTC()

	for i := int64(1); i <= 3; i++ {
		txn := createTransaction(t, client, f.ID, fmt.Sprintf("BILL-%d", i), 100000, now)
		entry := appendEntry(t, client, store, params(f.ID, txn.ID, 100000, 100, now))
		if entry.Seq != i {
			t.Errorf("entry %d: seq = %d, want %d", i, entry.Seq, i)
		}
	}
}

func TestSeqIsPerFacility(t *testing.T) {
	client := openClient(t)
	store := New(client)
	fa := createFacility(t, client, "FA")
	fb := createFacility(t, client, "FB")
	now := time.Now().UTC()

	txnA := createTransaction(t, client, fa.ID, "A-1", 50000, now)
	txnB := createTransaction(t, client, fb.ID, "B-1", 50000, now)

	ea := appendEntry(t, client, store, params(fa.ID, txnA.ID, 50000, 50, now))
	eb := appendEntry(t, client, store, params(fb.ID, txnB.ID, 50000, 50, now))

	if ea.Seq != 1 || eb.Seq != 1 {
		t.Errorf("each facility starts at seq 1, got %d and %d", ea.Seq, eb.Seq)
	}
}

func TestNextSeqUnknownFacility(t *testing.T) {
	client := openClient(t)
	store := New(client)
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer tx.Rollback()

	_, err = store.NextSeq(ctx, tx, uuid.Must(uuid.NewV7()))
	if !errors.Is(err, ErrFacilityNotFound) {
		t.Errorf("expected ErrFacilityNotFound, got %v", err)
	}
}

func TestUnsettledInPeriodHalfOpen(t *testing.T) {
	client := openClient(t)
	store := New(client)
	f := createFacility(t, client, "PER1")

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	inside := createTransaction(t, client, f.ID, "IN", 10000, from)
	boundary := createTransaction(t, client, f.ID, "BOUND", 10000, to)
	appendEntry(t, client, store, params(f.ID, inside.ID, 10000, 10, from))
	appendEntry(t, client, store, params(f.ID, boundary.ID, 10000, 10, to))

	entries, err := store.UnsettledInPeriod(context.Background(), f.ID, from, to, nil)
	if err != nil {
		t.Fatalf("UnsettledInPeriod: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry inside [from, to), got %d", len(entries))
	}
	if entries[0].TransactionID != inside.ID {
		t.Errorf("wrong entry selected")
	}
}

func TestUnsettledInPeriodChannelFilter(t *testing.T) {
	client := openClient(t)
	store := New(client)
	f := createFacility(t, client, "CH1")
	now := time.Now().UTC()

	online := createTransaction(t, client, f.ID, "ONL", 10000, now)
	appendEntry(t, client, store, params(f.ID, online.ID, 10000, 10, now))

	cashTxn, err := client.Transaction.Create().
		SetFacilityID(f.ID).
		SetChannel(enttxn.ChannelCash).
		SetGrossAmount(5000).
		SetCurrency("INR").
		SetOccurredAt(now).
		SetBillReference("CSH").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create cash transaction: %v", err)
	}
	p := params(f.ID, cashTxn.ID, 5000, 100, now)
	p.Channel = "cash"
	p.SnapshotCashType = "percentage"
	appendEntry(t, client, store, p)

	entries, err := store.UnsettledInPeriod(context.Background(), f.ID,
		now.Add(-time.Hour), now.Add(time.Hour), []string{"cash"})
	if err != nil {
		t.Fatalf("UnsettledInPeriod: %v", err)
	}
	if len(entries) != 1 || entries[0].Channel != entent.ChannelCash {
		t.Errorf("expected only the cash entry, got %d entries", len(entries))
	}
}

func TestClaimForSettlementAllOrNothing(t *testing.T) {
	client := openClient(t)
	store := New(client)
	f := createFacility(t, client, "CLM1")
	ctx := context.Background()
	now := time.Now().UTC()

	t1 := createTransaction(t, client, f.ID, "C-1", 10000, now)
	t2 := createTransaction(t, client, f.ID, "C-2", 10000, now)
	e1 := appendEntry(t, client, store, params(f.ID, t1.ID, 10000, 10, now))
	e2 := appendEntry(t, client, store, params(f.ID, t2.ID, 10000, 10, now))

	// A rival settlement already holds e1.
	rival := uuid.Must(uuid.NewV7())
	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := store.ClaimForSettlement(ctx, tx, f.ID, rival, []uuid.UUID{e1.ID}); err != nil {
		t.Fatalf("rival claim: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	tx, err = client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer tx.Rollback()

	err = store.ClaimForSettlement(ctx, tx, f.ID, uuid.Must(uuid.NewV7()), []uuid.UUID{e1.ID, e2.ID})
	if !errors.Is(err, ErrConcurrentClaimConflict) {
		t.Fatalf("expected ErrConcurrentClaimConflict, got %v", err)
	}
	tx.Rollback()

	// e2 must still be unsettled after the failed claim rolled back.
	fresh, err := client.CommissionEntry.Get(ctx, e2.ID)
	if err != nil {
		t.Fatalf("reload e2: %v", err)
	}
	if fresh.Status != entent.StatusUnsettled {
		t.Errorf("e2 status = %s, want unsettled", fresh.Status)
	}
}

func TestReleaseAndMarkSettled(t *testing.T) {
	client := openClient(t)
	store := New(client)
	f := createFacility(t, client, "RLS1")
	ctx := context.Background()
	now := time.Now().UTC()

	txn := createTransaction(t, client, f.ID, "R-1", 20000, now)
	entry := appendEntry(t, client, store, params(f.ID, txn.ID, 20000, 20, now))

	settlementID := uuid.Must(uuid.NewV7())
	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := store.ClaimForSettlement(ctx, tx, f.ID, settlementID, []uuid.UUID{entry.ID}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	tx, err = client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := store.ReleaseSettlement(ctx, tx, settlementID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	fresh, _ := client.CommissionEntry.Get(ctx, entry.ID)
	if fresh.Status != entent.StatusUnsettled || fresh.SettlementID != nil {
		t.Fatalf("release did not revert entry: status=%s settlement=%v", fresh.Status, fresh.SettlementID)
	}

	// Claim again, then settle.
	tx, err = client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := store.ClaimForSettlement(ctx, tx, f.ID, settlementID, []uuid.UUID{entry.ID}); err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if err := store.MarkSettled(ctx, tx, settlementID); err != nil {
		t.Fatalf("mark settled: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	fresh, _ = client.CommissionEntry.Get(ctx, entry.ID)
	if fresh.Status != entent.StatusSettled {
		t.Errorf("status = %s, want settled", fresh.Status)
	}
}

func TestEntryByIDScopedToFacility(t *testing.T) {
	client := openClient(t)
	store := New(client)
	fa := createFacility(t, client, "SCA")
	fb := createFacility(t, client, "SCB")
	now := time.Now().UTC()

	txn := createTransaction(t, client, fa.ID, "S-1", 10000, now)
	entry := appendEntry(t, client, store, params(fa.ID, txn.ID, 10000, 10, now))

	if _, err := store.EntryByID(context.Background(), fa.ID, entry.ID); err != nil {
		t.Fatalf("owner lookup failed: %v", err)
	}
	_, err := store.EntryByID(context.Background(), fb.ID, entry.ID)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("cross-facility lookup: expected ErrEntryNotFound, got %v", err)
	}
}
