package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/rbac"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

type ShortlistHandler struct {
	Shortlist *services.ShortlistService
	RBAC      *rbac.Resolver
}

func NewShortlistHandler(s *services.ShortlistService, r *rbac.Resolver) *ShortlistHandler {
	return &ShortlistHandler{Shortlist: s, RBAC: r}
}

// Run is the POST /api/v1/ai-shortlist endpoint.
func (h *ShortlistHandler) Run(c *gin.Context) {
	var req dtos.ShortlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if !requirePermission(c, h.RBAC, req.OrganizationID, rbac.PermShortlistRun) {
		return
	}

	resp, err := h.Shortlist.Run(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound), errors.Is(err, services.ErrNoCandidates):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidMode), errors.Is(err, services.ErrNoResumes):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Shortlisting failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
