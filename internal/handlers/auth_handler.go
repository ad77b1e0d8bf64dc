package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/auth"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
)

func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dtos.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if !auth.CheckPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		token, err := auth.IssueToken(&user, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// Logout drops the caller's cached permissions so a fresh login re-derives
// them from the store.
func Logout(resolver *rbac.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.FromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		resolver.Invalidate(claims.UserID)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Me returns the authenticated user and their memberships.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.FromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		var memberships []models.OrganizationMember
		db.Where("user_id = ?", claims.UserID).Find(&memberships)

		c.JSON(http.StatusOK, gin.H{"user": user, "memberships": memberships})
	}
}
