package rbac

import (
	"testing"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

func TestPermissionsAreSubsetsOfOwner(t *testing.T) {
	owner := Permissions(models.RoleOwner)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleMember, models.RoleViewer} {
		for p := range Permissions(role) {
			if !owner[p] {
				t.Errorf("role %s holds %q which owner does not", role, p)
			}
		}
	}
}

func TestRoleHierarchy(t *testing.T) {
	// owner ⊇ admin ⊇ member ⊇ viewer
	order := []models.Role{models.RoleViewer, models.RoleMember, models.RoleAdmin, models.RoleOwner}
	for i := 0; i < len(order)-1; i++ {
		lower, higher := order[i], order[i+1]
		higherSet := Permissions(higher)
		for p := range Permissions(lower) {
			if !higherSet[p] {
				t.Errorf("%s holds %q but %s does not", lower, p, higher)
			}
		}
	}

	if len(Permissions(models.RoleViewer)) >= len(Permissions(models.RoleMember)) {
		t.Error("member should hold strictly more permissions than viewer")
	}
}

func TestOwnerOnlyPermissions(t *testing.T) {
	for _, p := range []string{PermOrgDelete, PermOrgTransfer} {
		if !RoleHas(models.RoleOwner, p) {
			t.Errorf("owner should hold %q", p)
		}
		for _, role := range []models.Role{models.RoleAdmin, models.RoleMember, models.RoleViewer} {
			if RoleHas(role, p) {
				t.Errorf("role %s must not hold %q", role, p)
			}
		}
	}
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	if got := Permissions(models.Role("superuser")); len(got) != 0 {
		t.Errorf("Permissions(unknown) = %v, want empty", got)
	}
	if RoleHas(models.Role(""), PermOrgView) {
		t.Error("empty role must not hold any permission")
	}
}

func TestPermissionsDeterministic(t *testing.T) {
	a := Permissions(models.RoleAdmin)
	b := Permissions(models.RoleAdmin)
	if len(a) != len(b) {
		t.Fatalf("permission set size changed between calls: %d vs %d", len(a), len(b))
	}
	for p := range a {
		if !b[p] {
			t.Errorf("permission %q missing on second resolution", p)
		}
	}
}
