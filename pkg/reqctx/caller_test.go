package reqctx

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCallerRequireFacility(t *testing.T) {
	granted := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		caller  *Caller
		target  uuid.UUID
		wantErr bool
	}{
		{
			name:   "facility admin within granted set",
			caller: &Caller{ActorID: uuid.New(), Role: RoleFacilityAdmin, FacilityIDs: []uuid.UUID{granted}},
			target: granted,
		},
		{
			name:    "facility admin outside granted set",
			caller:  &Caller{ActorID: uuid.New(), Role: RoleFacilityAdmin, FacilityIDs: []uuid.UUID{granted}},
			target:  other,
			wantErr: true,
		},
		{
			name:   "super admin bypasses scoping",
			caller: &Caller{ActorID: uuid.New(), Role: RoleSuperAdmin},
			target: other,
		},
		{
			name:    "staff with empty facility set",
			caller:  &Caller{ActorID: uuid.New(), Role: RoleStaff},
			target:  granted,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.caller.RequireFacility(tt.target)
			if tt.wantErr {
				if !errors.Is(err, ErrTenantAccessDenied) {
					t.Errorf("expected ErrTenantAccessDenied, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVisibleFacilities(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	admin := &Caller{Role: RoleFacilityAdmin, FacilityIDs: ids}
	if got := admin.VisibleFacilities(); len(got) != 2 {
		t.Errorf("expected 2 visible facilities, got %d", len(got))
	}

	super := &Caller{Role: RoleSuperAdmin, FacilityIDs: ids}
	if got := super.VisibleFacilities(); got != nil {
		t.Errorf("super_admin should be unrestricted, got %v", got)
	}

	// An ungranted non-admin gets an empty restriction, not the
	// unrestricted nil that super_admin gets.
	ungranted := &Caller{Role: RoleStaff}
	if got := ungranted.VisibleFacilities(); got == nil || len(got) != 0 {
		t.Errorf("ungranted staff should see an empty set, got %v", got)
	}
}

func TestCallerFromContext(t *testing.T) {
	if _, ok := CallerFromContext(context.Background()); ok {
		t.Error("expected no caller in empty context")
	}

	c := &Caller{ActorID: uuid.New(), Role: RoleStaff}
	ctx := WithCaller(context.Background(), c)

	got, ok := CallerFromContext(ctx)
	if !ok || got != c {
		t.Errorf("CallerFromContext() = %v, %v", got, ok)
	}
}

func TestMustCallerPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	MustCaller(context.Background())
}

func TestValidRole(t *testing.T) {
	for _, r := range []string{"super_admin", "facility_admin", "staff", "patient"} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false", r)
		}
	}
	if ValidRole("root") {
		t.Error(`ValidRole("root") = true`)
	}
}
