package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidRole    = errors.New("invalid role")
)

// MemberService applies the membership mutation rules. The caller's role is
// always re-derived from the database, never trusted from the client.
type MemberService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewMemberService(db *gorm.DB, audit *AuditService) *MemberService {
	return &MemberService{db: db, audit: audit}
}

// checkMemberMutation enforces the rules shared by role updates and
// removals:
//   - only owner/admin may mutate
//   - a user cannot modify or remove themselves
//   - only an owner may touch another owner or promote to owner
//   - the last active owner can never be demoted or removed
//
// newRole is empty for removals. activeOwners counts active owner rows for
// the organization including the target.
func checkMemberMutation(actor, target models.OrganizationMember, newRole models.Role, activeOwners int64) error {
	if actor.Role != models.RoleOwner && actor.Role != models.RoleAdmin {
		return fmt.Errorf("%w: only owners and admins may manage members", ErrForbidden)
	}
	if actor.UserID == target.UserID {
		return fmt.Errorf("%w: cannot modify your own membership", ErrForbidden)
	}
	if target.Role == models.RoleOwner && actor.Role != models.RoleOwner {
		return fmt.Errorf("%w: only an owner may modify another owner", ErrForbidden)
	}
	if newRole == models.RoleOwner && actor.Role != models.RoleOwner {
		return fmt.Errorf("%w: only an owner may promote to owner", ErrForbidden)
	}

	losingOwner := target.Role == models.RoleOwner && target.Status == models.MemberActive &&
		newRole != models.RoleOwner
	if losingOwner && activeOwners <= 1 {
		return fmt.Errorf("%w: cannot remove the last active owner", ErrForbidden)
	}
	return nil
}

func parseRole(s string) (models.Role, error) {
	switch role := models.Role(s); role {
	case models.RoleOwner, models.RoleAdmin, models.RoleMember, models.RoleViewer:
		return role, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// UpdateRole changes a member's role.
func (s *MemberService) UpdateRole(ctx context.Context, actorUserID, orgID, memberID uint, roleStr string) (*models.OrganizationMember, error) {
	newRole, err := parseRole(roleStr)
	if err != nil {
		return nil, err
	}

	actor, target, owners, err := s.loadMutationState(ctx, actorUserID, orgID, memberID)
	if err != nil {
		return nil, err
	}
	if err := checkMemberMutation(*actor, *target, newRole, owners); err != nil {
		return nil, err
	}

	previous := target.Role
	target.Role = newRole
	if err := s.db.WithContext(ctx).Model(target).Update("role", newRole).Error; err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.audit.Append(ctx, orgID, actorUserID, "members.update", "organization_member", target.ID, map[string]any{
		"member_user_id": target.UserID,
		"previous_role":  previous,
		"new_role":       newRole,
	})
	return target, nil
}

// Remove deletes a membership.
func (s *MemberService) Remove(ctx context.Context, actorUserID, orgID, memberID uint) error {
	actor, target, owners, err := s.loadMutationState(ctx, actorUserID, orgID, memberID)
	if err != nil {
		return err
	}
	// An empty newRole means the target's owner seat disappears entirely.
	if err := checkMemberMutation(*actor, *target, "", owners); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(target).Error; err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	s.audit.Append(ctx, orgID, actorUserID, "members.delete", "organization_member", target.ID, map[string]any{
		"member_user_id": target.UserID,
		"role":           target.Role,
	})
	return nil
}

func (s *MemberService) loadMutationState(ctx context.Context, actorUserID, orgID, memberID uint) (actor, target *models.OrganizationMember, activeOwners int64, err error) {
	var a models.OrganizationMember
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND organization_id = ? AND status = ?", actorUserID, orgID, models.MemberActive).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, fmt.Errorf("%w: caller is not an active member", ErrForbidden)
		}
		return nil, nil, 0, err
	}

	var t models.OrganizationMember
	err = s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", memberID, orgID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, ErrMemberNotFound
		}
		return nil, nil, 0, err
	}

	err = s.db.WithContext(ctx).Model(&models.OrganizationMember{}).
		Where("organization_id = ? AND role = ? AND status = ?", orgID, models.RoleOwner, models.MemberActive).
		Count(&activeOwners).Error
	if err != nil {
		return nil, nil, 0, err
	}
	return &a, &t, activeOwners, nil
}
