package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/auth"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

type CandidateHandler struct {
	Candidates *services.CandidateService
	RBAC       *rbac.Resolver
}

func NewCandidateHandler(s *services.CandidateService, r *rbac.Resolver) *CandidateHandler {
	return &CandidateHandler{Candidates: s, RBAC: r}
}

func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	orgID, ok := orgIDFromQuery(c)
	if !ok {
		return
	}
	if !requirePermission(c, h.RBAC, orgID, rbac.PermCandidatesView) {
		return
	}

	candidates, err := h.Candidates.ListCandidates(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	orgID, ok := orgIDFromQuery(c)
	if !ok {
		return
	}
	candidateID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !requirePermission(c, h.RBAC, orgID, rbac.PermCandidatesManage) {
		return
	}

	if err := h.Candidates.DeleteCandidate(c.Request.Context(), orgID, candidateID); err != nil {
		if errors.Is(err, services.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Override is the PATCH /api/v1/applications/:id/override endpoint: an admin
// promotes an application to shortlisted regardless of its score.
func (h *CandidateHandler) Override(c *gin.Context) {
	appID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dtos.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if !requirePermission(c, h.RBAC, req.OrganizationID, rbac.PermCandidatesOverride) {
		return
	}

	claims := auth.FromContext(c)
	app, err := h.Candidates.OverrideApplication(c.Request.Context(), claims.UserID, req.OrganizationID, appID)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}
