package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.JobListing, error) {
	status := models.JobStatus(req.Status)
	switch status {
	case models.JobActive, models.JobDraft, models.JobInactive:
	default:
		status = models.JobActive
	}

	job := &models.JobListing{
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Department:     req.Department,
		EmploymentType: req.EmploymentType,
		Status:         status,
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, orgID uint) ([]models.JobListing, error) {
	var jobs []models.JobListing
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (s *JobService) GetJob(ctx context.Context, orgID, jobID uint) (*models.JobListing, error) {
	var job models.JobListing
	err := s.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", jobID, orgID).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ShortlistedApplications loads a job's applications with candidates, best
// score first, for the report export.
func (s *JobService) ShortlistedApplications(ctx context.Context, jobID uint) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.db.WithContext(ctx).
		Preload("Candidate").
		Where("job_listing_id = ?", jobID).
		Order("match_score DESC").
		Find(&apps).Error
	return apps, err
}
