package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/export"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
)

// ExportUsage streams the organization's API usage log as a CSV download.
func ExportUsage(db *gorm.DB, resolver *rbac.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := orgIDFromQuery(c)
		if !ok {
			return
		}
		if !requirePermission(c, resolver, orgID, rbac.PermUsageView) {
			return
		}

		var logs []models.APIUsageLog
		if err := db.WithContext(c.Request.Context()).
			Where("organization_id = ?", orgID).
			Order("id ASC").
			Find(&logs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", `attachment; filename="api_usage_logs.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte(export.UsageLogsCSV(logs)))
	}
}
