package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

// AuditService appends to the organization-scoped audit trail. Writes are
// best-effort: a failed audit insert is logged, never propagated.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Append(ctx context.Context, orgID, userID uint, action, resourceType string, resourceID uint, metadata map[string]any) {
	payload, err := json.Marshal(metadata)
	if err != nil {
		payload = []byte("{}")
	}
	entry := models.AuditLog{
		OrganizationID: orgID,
		UserID:         userID,
		RequestID:      uuid.NewString(),
		Action:         action,
		ResourceType:   resourceType,
		ResourceID:     resourceID,
		Metadata:       payload,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("⚠️ failed to append audit log for %s: %v", action, err)
	}
}
