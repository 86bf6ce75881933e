package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Settlement lifecycle actions
	ActionPropose Action = "propose"
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionPay     Action = "pay"
	ActionCancel  Action = "cancel"

	// Ledger actions
	ActionReverse Action = "reverse"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage:  {},
	ActionPropose: {}, ActionSubmit: {}, ActionApprove: {}, ActionPay: {}, ActionCancel: {},
	ActionReverse: {},
	ActionGrant:   {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Tenant management
	ResourceFacility Resource = "facility"

	// Commission configuration
	ResourcePolicy Resource = "policy"

	// Ledger
	ResourceTransaction Resource = "transaction"
	ResourceLedgerEntry Resource = "ledger_entry"

	// Settlement lifecycle
	ResourceSettlement Resource = "settlement"

	// Reconciliation views
	ResourceReconciliation Resource = "reconciliation"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceFacility: {},
	ResourcePolicy:   {},
	ResourceTransaction: {}, ResourceLedgerEntry: {},
	ResourceSettlement:     {},
	ResourceReconciliation: {},
	ResourceSystem:         {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformSuperAdmin Role = "role:platform:superadmin"

	// Facility roles (domain = facility:<uuid>)
	RoleFacilityAdmin Role = "role:facility:admin"
	RoleFacilityStaff Role = "role:facility:staff"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformSuperAdmin: {},
	RoleFacilityAdmin:      {},
	RoleFacilityStaff:      {},
	RoleUserSelf:           {},
}

var RoleDisplayNames = map[Role]string{
	RolePlatformSuperAdmin: "Platform Super Admin",
	RoleFacilityAdmin:      "Facility Admin",
	RoleFacilityStaff:      "Facility Staff",
	RoleUserSelf:           "Self",
}

// Caller role strings as they arrive on requests
const (
	CallerRoleSuperAdmin    = "super_admin"
	CallerRoleFacilityAdmin = "facility_admin"
	CallerRoleStaff         = "staff"
)

// CallerRoleToRBACRole maps request role values to Casbin roles
var CallerRoleToRBACRole = map[string]Role{
	CallerRoleSuperAdmin:    RolePlatformSuperAdmin,
	CallerRoleFacilityAdmin: RoleFacilityAdmin,
	CallerRoleStaff:         RoleFacilityStaff,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixFacility Domain = "facility:"
	DomainPrefixUser     Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func FacilityDomain(facilityID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixFacility, facilityID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixFacility) && s[:len(DomainPrefixFacility)] == string(DomainPrefixFacility):
		return reUUID.MatchString(s[len(DomainPrefixFacility):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
