package facility

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/arogyahq/arogya_backend/internal/repo"
	"github.com/arogyahq/arogya_backend/internal/repo/enttest"
	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

func newFacilityEnv(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client, New(client)
}

func superCtx() context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID: uuid.Must(uuid.NewV7()),
		Role:    reqctx.RoleSuperAdmin,
	})
}

func staffCtx(facilityIDs ...uuid.UUID) context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID:     uuid.Must(uuid.NewV7()),
		Role:        reqctx.RoleStaff,
		FacilityIDs: facilityIDs,
	})
}

func TestCreateSeedsDefaultPolicy(t *testing.T) {
	client, svc := newFacilityEnv(t)

	f, err := svc.Create(superCtx(), CreateRequest{
		Name: "Green Valley Hospital",
		Code: "gvh1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.Code != "GVH1" {
		t.Errorf("code = %s, want normalized GVH1", f.Code)
	}
	if f.Currency != "INR" {
		t.Errorf("currency = %s, want default INR", f.Currency)
	}
	if !f.IsActive {
		t.Error("new facility should start active")
	}

	policies, err := client.CommissionPolicy.Query().Count(context.Background())
	if err != nil {
		t.Fatalf("count policies: %v", err)
	}
	if policies != 1 {
		t.Errorf("default policy rows = %d, want 1", policies)
	}
}

func TestCreateValidation(t *testing.T) {
	_, svc := newFacilityEnv(t)
	ctx := superCtx()

	tests := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"missing name", CreateRequest{Code: "X1"}, ErrNameRequired},
		{"missing code", CreateRequest{Name: "X"}, ErrCodeRequired},
		{"bad currency", CreateRequest{Name: "X", Code: "X1", Currency: "RUPEES"}, ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	_, svc := newFacilityEnv(t)
	ctx := superCtx()

	if _, err := svc.Create(ctx, CreateRequest{Name: "First", Code: "DUP1"}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, CreateRequest{Name: "Second", Code: "DUP1"})
	if !errors.Is(err, ErrCodeAlreadyInUse) {
		t.Errorf("expected ErrCodeAlreadyInUse, got %v", err)
	}
}

func TestCreateRequiresSuperAdmin(t *testing.T) {
	_, svc := newFacilityEnv(t)

	_, err := svc.Create(staffCtx(), CreateRequest{Name: "X", Code: "X1"})
	if !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("expected ErrTenantAccessDenied, got %v", err)
	}
}

func TestSetActive(t *testing.T) {
	_, svc := newFacilityEnv(t)
	ctx := superCtx()

	f, err := svc.Create(ctx, CreateRequest{Name: "Toggle", Code: "TGL1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	f, err = svc.SetActive(ctx, f.ID, false)
	if err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if f.IsActive {
		t.Error("facility still active after deactivation")
	}

	if _, err := svc.SetActive(staffCtx(f.ID), f.ID, true); !errors.Is(err, reqctx.ErrTenantAccessDenied) {
		t.Errorf("staff must not toggle activation, got %v", err)
	}
}

func TestListScopedToVisibleFacilities(t *testing.T) {
	_, svc := newFacilityEnv(t)
	ctx := superCtx()

	a, err := svc.Create(ctx, CreateRequest{Name: "A", Code: "LSA"})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Name: "B", Code: "LSB"}); err != nil {
		t.Fatalf("create b: %v", err)
	}

	all, total, err := svc.List(ctx, 1, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(all) != 2 {
		t.Errorf("super admin sees %d/%d, want 2/2", len(all), total)
	}

	scoped, total, err := svc.List(staffCtx(a.ID), 1, 20)
	if err != nil {
		t.Fatalf("scoped List: %v", err)
	}
	if total != 1 || len(scoped) != 1 || scoped[0].ID != a.ID {
		t.Errorf("staff sees %d/%d, want only their facility", len(scoped), total)
	}

	// Staff with no facility grants see nothing, never the full list.
	none, total, err := svc.List(staffCtx(), 1, 20)
	if err != nil {
		t.Fatalf("unscoped List: %v", err)
	}
	if total != 0 || len(none) != 0 {
		t.Errorf("ungranted staff sees %d/%d, want 0/0", len(none), total)
	}
}
