package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/auth"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/services"
)

type MemberHandler struct {
	Members *services.MemberService
}

func NewMemberHandler(m *services.MemberService) *MemberHandler {
	return &MemberHandler{Members: m}
}

// UpdateMember is the PATCH /api/v1/organization/update-member endpoint.
// Authorization happens inside the service, which re-derives the caller's
// membership instead of trusting client state.
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req dtos.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	claims := auth.FromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	member, err := h.Members.UpdateRole(c.Request.Context(), claims.UserID, req.OrganizationID, req.MemberID, req.Role)
	if err != nil {
		writeMemberError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": member})
}

// DeleteMember is the DELETE /api/v1/organization/delete-member endpoint.
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	var req dtos.DeleteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	claims := auth.FromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.Members.Remove(c.Request.Context(), claims.UserID, req.OrganizationID, req.MemberID); err != nil {
		writeMemberError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func writeMemberError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
