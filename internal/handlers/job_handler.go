package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/export"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

type JobHandler struct {
	Jobs *services.JobService
	RBAC *rbac.Resolver
}

func NewJobHandler(j *services.JobService, r *rbac.Resolver) *JobHandler {
	return &JobHandler{Jobs: j, RBAC: r}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !requirePermission(c, h.RBAC, req.OrganizationID, rbac.PermJobsManage) {
		return
	}

	job, err := h.Jobs.CreateJob(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	orgID, ok := orgIDFromQuery(c)
	if !ok {
		return
	}
	if !requirePermission(c, h.RBAC, orgID, rbac.PermJobsView) {
		return
	}

	jobs, err := h.Jobs.ListJobs(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Report streams an XLSX shortlist report for one job.
func (h *JobHandler) Report(c *gin.Context) {
	orgID, ok := orgIDFromQuery(c)
	if !ok {
		return
	}
	jobID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !requirePermission(c, h.RBAC, orgID, rbac.PermCandidatesView) {
		return
	}

	ctx := c.Request.Context()
	job, err := h.Jobs.GetJob(ctx, orgID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	apps, err := h.Jobs.ShortlistedApplications(ctx, job.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data, err := export.ShortlistReportXLSX(job, apps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="shortlist_job_%d.xlsx"`, job.ID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
