package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/arogyahq/arogya_backend/pkg/reqctx"
)

func callerCtx(actorID uuid.UUID, role reqctx.Role) context.Context {
	return reqctx.WithCaller(context.Background(), &reqctx.Caller{
		ActorID: actorID,
		Role:    role,
	})
}

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid caller",
			setupCtx: func() context.Context {
				return callerCtx(validUUID, reqctx.RoleFacilityAdmin)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no caller in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in caller",
			setupCtx: func() context.Context {
				return callerCtx(uuid.Nil, reqctx.RoleStaff)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	// Test panic case
	t.Run("panics when no caller", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	// Test success case
	t.Run("returns subject when caller exists", func(t *testing.T) {
		validUUID := uuid.New()
		ctx := callerCtx(validUUID, reqctx.RoleSuperAdmin)

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestRoleForCaller(t *testing.T) {
	tests := []struct {
		name   string
		caller *reqctx.Caller
		want   Role
	}{
		{"nil caller", nil, ""},
		{"super admin", &reqctx.Caller{Role: reqctx.RoleSuperAdmin}, RolePlatformSuperAdmin},
		{"facility admin", &reqctx.Caller{Role: reqctx.RoleFacilityAdmin}, RoleFacilityAdmin},
		{"staff", &reqctx.Caller{Role: reqctx.RoleStaff}, RoleFacilityStaff},
		{"patient has no rbac role", &reqctx.Caller{Role: reqctx.RolePatient}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleForCaller(tt.caller); got != tt.want {
				t.Errorf("RoleForCaller() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainFromResource(t *testing.T) {
	facilityID := "facility-123"
	userID := "user-456"

	tests := []struct {
		name       string
		facilityID *string
		userID     *string
		wantDomain Domain
	}{
		{
			name:       "facility domain when facilityID provided",
			facilityID: &facilityID,
			userID:     nil,
			wantDomain: Domain("facility:facility-123"),
		},
		{
			name:       "user domain when userID provided",
			facilityID: nil,
			userID:     &userID,
			wantDomain: Domain("user:user-456"),
		},
		{
			name:       "facility takes precedence over user",
			facilityID: &facilityID,
			userID:     &userID,
			wantDomain: Domain("facility:facility-123"),
		},
		{
			name:       "sys domain when neither provided",
			facilityID: nil,
			userID:     nil,
			wantDomain: DomainSys,
		},
		{
			name:       "sys domain when empty strings provided",
			facilityID: strPtr(""),
			userID:     strPtr(""),
			wantDomain: DomainSys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DomainFromResource(tt.facilityID, tt.userID)
			if result != tt.wantDomain {
				t.Errorf("DomainFromResource() = %q, want %q", result, tt.wantDomain)
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
