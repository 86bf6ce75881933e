package policy

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arogyahq/arogya_backend/internal/repo"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	"github.com/arogyahq/arogya_backend/pkg/money"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

func newPolicyEnv(t *testing.T) (*repo.Client, Service, uuid.UUID) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	f, err := client.Facility.Create().
		SetName("Sunrise Diagnostics").
		SetCode("SUN1").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create facility: %v", err)
	}
	return client, New(client), f.ID
}

func facilityCtx(facilityID uuid.UUID) context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID:     uuid.Must(uuid.NewV7()),
		Role:        reqctx.RoleFacilityAdmin,
		FacilityIDs: []uuid.UUID{facilityID},
	})
}

func validUpdate() UpdateRequest {
	return UpdateRequest{
		PlatformMDRRate:       "0.012",
		GatewayMDRRate:        "0.011",
		TaxOnCommission:       true,
		TaxRate:               "0.18",
		CashCommissionEnabled: true,
		CashCommissionType:    "percentage",
		CashCommissionValue:   "0.02",
		RoundingMode:          "nearest",
	}
}

func TestUpsertThenCurrent(t *testing.T) {
	_, svc, facilityID := newPolicyEnv(t)
	ctx := facilityCtx(facilityID)

	if _, err := svc.Upsert(ctx, facilityID, validUpdate()); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	pol, err := svc.Current(ctx, facilityID)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if pol.OnlineMarginRate().String() != "0.001" {
		t.Errorf("margin = %s, want 0.001", pol.OnlineMarginRate())
	}
	if !pol.TaxOnCommission || pol.TaxRate.String() != "0.18" {
		t.Errorf("tax config lost: %v %s", pol.TaxOnCommission, pol.TaxRate)
	}
	if pol.RoundingMode != money.RoundNearest {
		t.Errorf("rounding = %s, want nearest", pol.RoundingMode)
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	client, svc, facilityID := newPolicyEnv(t)
	ctx := facilityCtx(facilityID)

	if _, err := svc.Upsert(ctx, facilityID, validUpdate()); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	req := validUpdate()
	req.CashCommissionType = "fixed"
	req.CashCommissionValue = "500"
	if _, err := svc.Upsert(ctx, facilityID, req); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := client.CommissionPolicy.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("policy rows = %d, want 1", count)
	}

	pol, err := svc.Current(ctx, facilityID)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if pol.CashCommissionType != CashFixed || pol.CashCommissionValue.String() != "500" {
		t.Errorf("fixed fee not stored: %s %s", pol.CashCommissionType, pol.CashCommissionValue)
	}
}

func TestUpsertValidation(t *testing.T) {
	_, svc, facilityID := newPolicyEnv(t)
	ctx := facilityCtx(facilityID)

	tests := []struct {
		name   string
		mutate func(*UpdateRequest)
	}{
		{"rate above one", func(r *UpdateRequest) { r.PlatformMDRRate = "1.5" }},
		{"negative rate", func(r *UpdateRequest) { r.GatewayMDRRate = "-0.01" }},
		{"not a decimal", func(r *UpdateRequest) { r.TaxRate = "eighteen" }},
		{"missing rate", func(r *UpdateRequest) { r.PlatformMDRRate = "" }},
		{"negative fixed fee", func(r *UpdateRequest) { r.CashCommissionType = "fixed"; r.CashCommissionValue = "-5" }},
		{"unknown cash type", func(r *UpdateRequest) { r.CashCommissionType = "tiered" }},
		{"unknown rounding", func(r *UpdateRequest) { r.RoundingMode = "banker" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpdate()
			tt.mutate(&req)
			_, err := svc.Upsert(ctx, facilityID, req)
			if !IsPolicyError(err) {
				t.Errorf("expected PolicyError, got %v", err)
			}
		})
	}
}

func TestGetUnknownFacility(t *testing.T) {
	_, svc, _ := newPolicyEnv(t)
	other := uuid.Must(uuid.NewV7())

	_, err := svc.Get(facilityCtx(other), other)
	if !errors.Is(err, ErrPolicyNotFound) {
		t.Errorf("expected ErrPolicyNotFound, got %v", err)
	}
}

func TestGetDeniedAcrossTenants(t *testing.T) {
	_, svc, facilityID := newPolicyEnv(t)
	foreign := facilityCtx(uuid.Must(uuid.NewV7()))

	_, err := svc.Get(foreign, facilityID)
	if !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("expected ErrTenantAccessDenied, got %v", err)
	}
}
