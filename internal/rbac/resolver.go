package rbac

import (
	"context"
	"time"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/cache"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
	"gorm.io/gorm"
)

// RoleTTL bounds how long a resolved role may be served without re-querying
// the store. A demoted or promoted user can observe stale permissions for up
// to this long; there is no cross-session invalidation on role change.
const RoleTTL = 30 * time.Second

type cacheKey struct {
	UserID uint
	OrgID  uint
}

// Resolver answers capability questions for a (user, organization) pair.
// Lookups are deny-by-default: any store error or missing active membership
// resolves to false.
type Resolver struct {
	roles  *cache.TTL[cacheKey, models.Role]
	lookup func(ctx context.Context, userID, orgID uint) (models.Role, error)
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		roles: cache.NewTTL[cacheKey, models.Role](RoleTTL),
		lookup: func(ctx context.Context, userID, orgID uint) (models.Role, error) {
			var m models.OrganizationMember
			err := db.WithContext(ctx).
				Where("user_id = ? AND organization_id = ? AND status = ?",
					userID, orgID, models.MemberActive).
				First(&m).Error
			if err != nil {
				return "", err
			}
			return m.Role, nil
		},
	}
}

// RoleFor resolves the caller's active role in the organization, serving from
// the TTL cache when possible.
func (r *Resolver) RoleFor(ctx context.Context, userID, orgID uint) (models.Role, error) {
	key := cacheKey{UserID: userID, OrgID: orgID}
	if role, ok := r.roles.Get(key); ok {
		return role, nil
	}

	role, err := r.lookup(ctx, userID, orgID)
	if err != nil {
		return "", err
	}
	r.roles.Set(key, role)
	return role, nil
}

// Can reports whether the user holds the permission in the organization.
func (r *Resolver) Can(ctx context.Context, userID, orgID uint, permission string) bool {
	role, err := r.RoleFor(ctx, userID, orgID)
	if err != nil {
		return false
	}
	return RoleHas(role, permission)
}

// HasRole reports whether the user's resolved role is one of the given roles.
func (r *Resolver) HasRole(ctx context.Context, userID, orgID uint, roles ...models.Role) bool {
	role, err := r.RoleFor(ctx, userID, orgID)
	if err != nil {
		return false
	}
	for _, want := range roles {
		if role == want {
			return true
		}
	}
	return false
}

// Invalidate drops every cached role for the user, across organizations.
// Called on logout.
func (r *Resolver) Invalidate(userID uint) {
	r.roles.DeleteFunc(func(k cacheKey) bool { return k.UserID == userID })
}
