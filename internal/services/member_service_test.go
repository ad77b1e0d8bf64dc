package services

import (
	"errors"
	"testing"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

func member(userID uint, role models.Role) models.OrganizationMember {
	return models.OrganizationMember{
		UserID:         userID,
		OrganizationID: 1,
		Role:           role,
		Status:         models.MemberActive,
	}
}

func TestCheckMemberMutation(t *testing.T) {
	tests := []struct {
		name         string
		actor        models.OrganizationMember
		target       models.OrganizationMember
		newRole      models.Role
		activeOwners int64
		wantErr      bool
	}{
		{
			name:         "admin changes member role",
			actor:        member(1, models.RoleAdmin),
			target:       member(2, models.RoleMember),
			newRole:      models.RoleViewer,
			activeOwners: 1,
		},
		{
			name:         "owner promotes admin to owner",
			actor:        member(1, models.RoleOwner),
			target:       member(2, models.RoleAdmin),
			newRole:      models.RoleOwner,
			activeOwners: 1,
		},
		{
			name:         "member cannot mutate",
			actor:        member(1, models.RoleMember),
			target:       member(2, models.RoleViewer),
			newRole:      models.RoleMember,
			activeOwners: 1,
			wantErr:      true,
		},
		{
			name:         "viewer cannot mutate",
			actor:        member(1, models.RoleViewer),
			target:       member(2, models.RoleViewer),
			newRole:      models.RoleMember,
			activeOwners: 1,
			wantErr:      true,
		},
		{
			name:         "admin cannot promote to owner",
			actor:        member(1, models.RoleAdmin),
			target:       member(2, models.RoleMember),
			newRole:      models.RoleOwner,
			activeOwners: 1,
			wantErr:      true,
		},
		{
			name:         "admin cannot touch an owner",
			actor:        member(1, models.RoleAdmin),
			target:       member(2, models.RoleOwner),
			newRole:      models.RoleMember,
			activeOwners: 2,
			wantErr:      true,
		},
		{
			name:         "cannot change own role",
			actor:        member(1, models.RoleOwner),
			target:       member(1, models.RoleOwner),
			newRole:      models.RoleAdmin,
			activeOwners: 2,
			wantErr:      true,
		},
		{
			name:         "cannot demote the last active owner",
			actor:        member(1, models.RoleOwner),
			target:       member(2, models.RoleOwner),
			newRole:      models.RoleAdmin,
			activeOwners: 1,
			wantErr:      true,
		},
		{
			name:         "cannot remove the last active owner",
			actor:        member(1, models.RoleOwner),
			target:       member(2, models.RoleOwner),
			newRole:      "",
			activeOwners: 1,
			wantErr:      true,
		},
		{
			name:         "owner demotes a co-owner when another remains",
			actor:        member(1, models.RoleOwner),
			target:       member(2, models.RoleOwner),
			newRole:      models.RoleAdmin,
			activeOwners: 2,
		},
		{
			name:         "owner removes a non-owner",
			actor:        member(1, models.RoleOwner),
			target:       member(2, models.RoleMember),
			newRole:      "",
			activeOwners: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkMemberMutation(tt.actor, tt.target, tt.newRole, tt.activeOwners)
			if tt.wantErr {
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("err = %v, want ErrForbidden", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"owner", "admin", "member", "viewer"} {
		if _, err := parseRole(valid); err != nil {
			t.Errorf("parseRole(%q) error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "superadmin", "OWNER", "root"} {
		if _, err := parseRole(invalid); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("parseRole(%q) = %v, want ErrInvalidRole", invalid, err)
		}
	}
}
