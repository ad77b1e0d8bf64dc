package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

// gormShortlistStore is the database-backed shortlistStore.
type gormShortlistStore struct {
	db *gorm.DB
}

func (s *gormShortlistStore) GetJob(ctx context.Context, orgID, jobID uint) (*models.JobListing, error) {
	var job models.JobListing
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", jobID, orgID).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *gormShortlistStore) CreateCandidate(ctx context.Context, c *models.Candidate) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *gormShortlistStore) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	return s.db.WithContext(ctx).Create(app).Error
}

// UnappliedCandidates returns the organization's candidates with no
// application for the given job.
func (s *gormShortlistStore) UnappliedCandidates(ctx context.Context, orgID, jobID uint) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Where("id NOT IN (?)", s.db.Model(&models.JobApplication{}).
			Select("candidate_id").
			Where("job_listing_id = ?", jobID)).
		Find(&candidates).Error
	return candidates, err
}

// LogUsage is best-effort: a failed usage insert never affects the pipeline.
func (s *gormShortlistStore) LogUsage(ctx context.Context, entry *models.APIUsageLog) {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("⚠️ failed to record API usage: %v", err)
	}
}
