package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the platform.
//
// Approval and payout of settlements stay platform-level on purpose: a
// facility admin can propose, submit and cancel their own batches, but only
// a platform operator moves money.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RolePlatformSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Facility-level policies (domain: facility:*)
	facilityPolicies := []PermissionPolicy{
		// FacilityAdmin: run the facility's money flow short of approval
		{RoleFacilityAdmin, WildcardDomain, ResourceFacility, ActionRead, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourcePolicy, ActionRead, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourcePolicy, ActionUpdate, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceTransaction, ActionCreate, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceTransaction, ActionRead, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceTransaction, ActionReverse, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceLedgerEntry, ActionRead, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceSettlement, ActionPropose, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceSettlement, ActionSubmit, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceSettlement, ActionCancel, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceSettlement, ActionRead, EffectAllow},
		{RoleFacilityAdmin, WildcardDomain, ResourceReconciliation, ActionRead, EffectAllow},

		// FacilityStaff: capture and read, no lifecycle control
		{RoleFacilityStaff, WildcardDomain, ResourceTransaction, ActionCreate, EffectAllow},
		{RoleFacilityStaff, WildcardDomain, ResourceTransaction, ActionRead, EffectAllow},
		{RoleFacilityStaff, WildcardDomain, ResourceLedgerEntry, ActionRead, EffectAllow},
		{RoleFacilityStaff, WildcardDomain, ResourceSettlement, ActionRead, EffectAllow},
		{RoleFacilityStaff, WildcardDomain, ResourceReconciliation, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceAudit, ActionRead, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, facilityPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignFacilityRole assigns a facility role to a user for a specific facility.
// Valid roles: RoleFacilityAdmin, RoleFacilityStaff
func AssignFacilityRole(ctx context.Context, auth IAuthorization, userID, facilityID string, role Role) error {
	switch role {
	case RoleFacilityAdmin, RoleFacilityStaff:
		// valid facility roles
	default:
		return ErrInvalidArgs
	}

	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// RemoveFacilityRole removes a facility role from a user for a specific facility.
func RemoveFacilityRole(ctx context.Context, auth IAuthorization, userID, facilityID string, role Role) error {
	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetFacilityRoles returns all roles a user has at a specific facility.
func GetFacilityRoles(ctx context.Context, auth IAuthorization, userID, facilityID string) ([]Role, error) {
	domain := FacilityDomain(facilityID)
	subject := GroupSubject(userID)

	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignSuperAdminRole grants the platform superadmin role.
// Assign with caution; it bypasses every other check.
func AssignSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}

// RemoveSuperAdminRole revokes the platform superadmin role.
func RemoveSuperAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RolePlatformSuperAdmin, DomainSys)
	return err
}
