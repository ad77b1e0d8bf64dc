package rbac

import "github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"

// Permission keys follow "resource:action".
const (
	PermOrgView     = "organization:view"
	PermOrgUpdate   = "organization:update"
	PermOrgDelete   = "organization:delete"
	PermOrgTransfer = "organization:transfer"

	PermMembersView   = "members:view"
	PermMembersManage = "members:manage"

	PermJobsView   = "jobs:view"
	PermJobsManage = "jobs:manage"

	PermCandidatesView     = "candidates:view"
	PermCandidatesManage   = "candidates:manage"
	PermCandidatesOverride = "candidates:override"

	PermShortlistRun = "shortlist:run"

	PermUsageView = "usage:view"
	PermAuditView = "audit:view"
)

// rolePermissions is the static role → permission table. Each role extends
// the one below it; organization delete/transfer stay owner-only.
var rolePermissions = map[models.Role][]string{
	models.RoleViewer: {
		PermOrgView,
		PermMembersView,
		PermJobsView,
		PermCandidatesView,
	},
	models.RoleMember: {
		PermOrgView,
		PermMembersView,
		PermJobsView,
		PermCandidatesView,
		PermJobsManage,
		PermCandidatesManage,
		PermShortlistRun,
	},
	models.RoleAdmin: {
		PermOrgView,
		PermMembersView,
		PermJobsView,
		PermCandidatesView,
		PermJobsManage,
		PermCandidatesManage,
		PermShortlistRun,
		PermOrgUpdate,
		PermMembersManage,
		PermCandidatesOverride,
		PermUsageView,
		PermAuditView,
	},
	models.RoleOwner: {
		PermOrgView,
		PermMembersView,
		PermJobsView,
		PermCandidatesView,
		PermJobsManage,
		PermCandidatesManage,
		PermShortlistRun,
		PermOrgUpdate,
		PermMembersManage,
		PermCandidatesOverride,
		PermUsageView,
		PermAuditView,
		PermOrgDelete,
		PermOrgTransfer,
	},
}

// Permissions returns the permission set for a role. Unknown roles get the
// empty set.
func Permissions(role models.Role) map[string]bool {
	set := make(map[string]bool, len(rolePermissions[role]))
	for _, p := range rolePermissions[role] {
		set[p] = true
	}
	return set
}

// RoleHas reports whether the role's static set contains the permission.
func RoleHas(role models.Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
