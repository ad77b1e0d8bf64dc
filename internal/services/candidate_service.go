package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

var ErrCandidateNotFound = errors.New("candidate not found")
var ErrApplicationNotFound = errors.New("application not found")

type CandidateService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewCandidateService(db *gorm.DB, audit *AuditService) *CandidateService {
	return &CandidateService{db: db, audit: audit}
}

func (s *CandidateService) ListCandidates(ctx context.Context, orgID uint) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("score DESC").
		Find(&candidates).Error
	return candidates, err
}

// DeleteCandidate removes a candidate; its applications are left behind as
// orphaned history, matching the independent candidate lifecycle.
func (s *CandidateService) DeleteCandidate(ctx context.Context, orgID, candidateID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", candidateID, orgID).
		Delete(&models.Candidate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

// OverrideApplication manually promotes an application to shortlisted,
// bypassing the AI score. Admin action; audited.
func (s *CandidateService) OverrideApplication(ctx context.Context, actorUserID, orgID, applicationID uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.db.WithContext(ctx).
		Joins("JOIN candidates ON candidates.id = job_applications.candidate_id").
		Where("job_applications.id = ? AND candidates.organization_id = ?", applicationID, orgID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	previous := app.Status
	app.Status = models.CandidateShortlisted
	app.Overridden = true
	if err := s.db.WithContext(ctx).Model(&app).
		Updates(map[string]interface{}{"status": app.Status, "overridden": true}).Error; err != nil {
		return nil, fmt.Errorf("failed to override application: %w", err)
	}

	s.audit.Append(ctx, orgID, actorUserID, "applications.override", "job_application", app.ID, map[string]any{
		"previous_status": previous,
		"match_score":     app.MatchScore,
	})
	return &app, nil
}
