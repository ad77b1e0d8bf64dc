package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/auth"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// orgIDFromQuery parses the organizationId query parameter.
func orgIDFromQuery(c *gin.Context) (uint, bool) {
	raw := c.Query("organizationId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organizationId query parameter is required"})
		return 0, false
	}
	return uint(id), true
}

// requirePermission re-derives the caller's role server-side and checks the
// permission. Writes the 401/403 response itself; callers bail out on false.
func requirePermission(c *gin.Context, resolver *rbac.Resolver, orgID uint, permission string) bool {
	claims := auth.FromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return false
	}
	if !resolver.Can(c.Request.Context(), claims.UserID, orgID, permission) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "missing": permission})
		return false
	}
	return true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
