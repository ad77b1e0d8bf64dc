package rbac

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/cache"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
	"gorm.io/gorm"
)

func newTestResolver(lookup func(ctx context.Context, userID, orgID uint) (models.Role, error)) *Resolver {
	return &Resolver{
		roles:  cache.NewTTL[cacheKey, models.Role](RoleTTL),
		lookup: lookup,
	}
}

func TestCanDeniesWithoutMembership(t *testing.T) {
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		return "", gorm.ErrRecordNotFound
	})

	for _, p := range []string{PermOrgView, PermJobsView, PermShortlistRun, PermOrgDelete} {
		if r.Can(context.Background(), 1, 1, p) {
			t.Errorf("Can(%q) = true for user with no membership", p)
		}
	}
}

func TestCanDeniesOnLookupError(t *testing.T) {
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		return "", errors.New("connection refused")
	})

	if r.Can(context.Background(), 1, 1, PermOrgView) {
		t.Error("Can() = true when the membership lookup fails")
	}
}

func TestCanUsesStaticTable(t *testing.T) {
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		return models.RoleAdmin, nil
	})

	ctx := context.Background()
	if !r.Can(ctx, 1, 1, PermMembersManage) {
		t.Error("admin should hold members:manage")
	}
	if r.Can(ctx, 1, 1, PermOrgDelete) {
		t.Error("admin must not hold organization:delete")
	}
}

func TestRoleForCachesWithinTTL(t *testing.T) {
	calls := 0
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		calls++
		return models.RoleMember, nil
	})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	r.roles.SetClock(func() time.Time { return now })

	ctx := context.Background()

	// Two calls inside the TTL window hit the store once.
	r.Can(ctx, 7, 3, PermJobsView)
	now = base.Add(29 * time.Second)
	r.Can(ctx, 7, 3, PermJobsView)
	if calls != 1 {
		t.Fatalf("store queried %d times within TTL, want 1", calls)
	}

	// A call at the TTL boundary re-queries.
	now = base.Add(RoleTTL)
	r.Can(ctx, 7, 3, PermJobsView)
	if calls != 2 {
		t.Fatalf("store queried %d times after TTL, want 2", calls)
	}
}

func TestInvalidateClearsUserEntries(t *testing.T) {
	calls := 0
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		calls++
		return models.RoleOwner, nil
	})

	ctx := context.Background()
	r.Can(ctx, 7, 3, PermOrgView)
	r.Can(ctx, 7, 4, PermOrgView)
	r.Can(ctx, 8, 3, PermOrgView)
	if calls != 3 {
		t.Fatalf("warm-up queried store %d times, want 3", calls)
	}

	r.Invalidate(7)

	r.Can(ctx, 7, 3, PermOrgView) // re-queries
	r.Can(ctx, 8, 3, PermOrgView) // still cached
	if calls != 4 {
		t.Errorf("store queried %d times after Invalidate, want 4", calls)
	}
}

func TestHasRole(t *testing.T) {
	r := newTestResolver(func(ctx context.Context, userID, orgID uint) (models.Role, error) {
		return models.RoleViewer, nil
	})

	ctx := context.Background()
	if !r.HasRole(ctx, 1, 1, models.RoleViewer, models.RoleMember) {
		t.Error("HasRole should match one of the listed roles")
	}
	if r.HasRole(ctx, 1, 1, models.RoleOwner, models.RoleAdmin) {
		t.Error("HasRole matched a role the user does not hold")
	}
}
