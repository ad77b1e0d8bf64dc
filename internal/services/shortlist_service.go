package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/dtos"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/ingestion"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/llm"
	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

// MatchScoreThreshold is the floored score at or above which a candidate is
// shortlisted. Defined exactly once; both upload and batch mode use it.
const MatchScoreThreshold = 50

var (
	ErrJobNotFound  = errors.New("job not found")
	ErrNoCandidates = errors.New("no candidates to analyze")
	ErrInvalidMode  = errors.New("mode must be 'upload' or 'batch'")
	ErrNoResumes    = errors.New("upload mode requires at least one resume")
)

// ResumeAnalyzer is the two-step AI pipeline. Satisfied by *llm.Analyzer.
type ResumeAnalyzer interface {
	ExtractProfile(ctx context.Context, resumeText, customPrompt string) (llm.CandidateProfile, llm.Outcome)
	AnalyzeMatch(ctx context.Context, profile llm.CandidateProfile, resumeText string, job llm.JobRequirements, customPrompt string) (llm.MatchAnalysis, llm.Outcome)
}

// shortlistStore is the persistence surface the orchestrator needs.
type shortlistStore interface {
	GetJob(ctx context.Context, orgID, jobID uint) (*models.JobListing, error)
	CreateCandidate(ctx context.Context, c *models.Candidate) error
	CreateApplication(ctx context.Context, app *models.JobApplication) error
	UnappliedCandidates(ctx context.Context, orgID, jobID uint) ([]models.Candidate, error)
	LogUsage(ctx context.Context, entry *models.APIUsageLog)
}

// ShortlistService orchestrates candidate shortlisting for a job: resume
// text in, scored Candidate + JobApplication rows out. Outbound model calls
// are paced by a shared token bucket and the per-resume work runs under a
// bounded worker group, so no hard-coded sleeps are needed.
type ShortlistService struct {
	store     shortlistStore
	ai        ResumeAnalyzer
	limiter   *rate.Limiter
	workers   int
	modelName string
}

func NewShortlistService(db *gorm.DB, ai ResumeAnalyzer, modelName string, rps float64, workers int) *ShortlistService {
	if workers < 1 {
		workers = 1
	}
	return &ShortlistService{
		store:     &gormShortlistStore{db: db},
		ai:        ai,
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		workers:   workers,
		modelName: modelName,
	}
}

// Run executes one shortlist request. Per-candidate failures are isolated
// into the results array; only request-level problems (unknown job, bad
// mode, empty batch) surface as errors.
func (s *ShortlistService) Run(ctx context.Context, req dtos.ShortlistRequest) (*dtos.ShortlistResponse, error) {
	job, err := s.store.GetJob(ctx, req.OrganizationID, req.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	var results []dtos.ShortlistResult
	switch req.Mode {
	case "upload":
		if len(req.Resumes) == 0 {
			return nil, ErrNoResumes
		}
		results, err = s.uploadMode(ctx, job, req)
	case "batch":
		results, err = s.batchMode(ctx, job, req)
	default:
		return nil, ErrInvalidMode
	}
	if err != nil {
		return nil, err
	}

	processed, failed := 0, 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		} else {
			processed++
		}
	}

	return &dtos.ShortlistResponse{
		Success:  true,
		Message:  fmt.Sprintf("Processed %d candidate(s), %d failed", processed, failed),
		JobTitle: job.Title,
		Results:  results,
	}, nil
}

// uploadMode analyzes each uploaded resume independently: extraction,
// analysis, then Candidate + JobApplication inserts. A failure on one file
// never aborts the others.
func (s *ShortlistService) uploadMode(ctx context.Context, job *models.JobListing, req dtos.ShortlistRequest) ([]dtos.ShortlistResult, error) {
	results := make([]dtos.ShortlistResult, len(req.Resumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, file := range req.Resumes {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.processResume(gctx, job, file, req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ShortlistService) processResume(ctx context.Context, job *models.JobListing, file dtos.ResumeUpload, req dtos.ShortlistRequest) dtos.ShortlistResult {
	result := dtos.ShortlistResult{FileName: file.FileName}

	text, err := ingestion.ResumeText(file.FileName, file.Text, file.Type)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	profile, extractOutcome, err := s.extract(ctx, job.OrganizationID, text, req.CustomExtractPrompt)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	analysis, analysisOutcome, err := s.analyze(ctx, job, profile, text, req.CustomAnalysisPrompt)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	score, status := Classify(analysis.MatchScore)

	candidate := &models.Candidate{
		OrganizationID:    job.OrganizationID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		Email:             profile.Email,
		Phone:             profile.Phone,
		CurrentPosition:   profile.CurrentPosition,
		YearsOfExperience: int(profile.YearsOfExperience),
		Skills:            pq.StringArray(profile.Skills),
		Education:         profile.Education,
		Location:          profile.Location,
		LinkedIn:          profile.LinkedIn,
		ResumeText:        text,
		Score:             score,
		Status:            status,
	}
	if err := s.store.CreateCandidate(ctx, candidate); err != nil {
		result.Error = fmt.Sprintf("failed to save candidate: %v", err)
		return result
	}

	result.CandidateID = candidate.ID
	result.CandidateName = profile.FirstName + " " + profile.LastName
	result.MatchScore = score
	result.Status = string(status)
	result.Recommendation = analysis.Recommendation
	fillDegraded(&result, extractOutcome, analysisOutcome)

	// The two inserts are deliberately not wrapped in a transaction: a
	// candidate row survives an application-insert failure, matching the
	// documented store layout.
	if err := s.createApplication(ctx, candidate.ID, job.ID, score, status, analysis); err != nil {
		result.Error = fmt.Sprintf("candidate saved but application failed: %v", err)
	}
	return result
}

// batchMode re-analyzes every organization candidate that has not yet
// applied to the job. Candidates with an existing application are skipped
// entirely, never re-scored.
func (s *ShortlistService) batchMode(ctx context.Context, job *models.JobListing, req dtos.ShortlistRequest) ([]dtos.ShortlistResult, error) {
	candidates, err := s.store.UnappliedCandidates(ctx, job.OrganizationID, job.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	results := make([]dtos.ShortlistResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.reanalyzeCandidate(gctx, job, candidate, req.CustomAnalysisPrompt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ShortlistService) reanalyzeCandidate(ctx context.Context, job *models.JobListing, candidate models.Candidate, customPrompt string) dtos.ShortlistResult {
	result := dtos.ShortlistResult{
		CandidateID:   candidate.ID,
		CandidateName: candidate.FirstName + " " + candidate.LastName,
	}

	profile := llm.CandidateProfile{
		FirstName:         candidate.FirstName,
		LastName:          candidate.LastName,
		Email:             candidate.Email,
		CurrentPosition:   candidate.CurrentPosition,
		YearsOfExperience: float64(candidate.YearsOfExperience),
		Skills:            candidate.Skills,
		Education:         candidate.Education,
		Location:          candidate.Location,
	}

	analysis, outcome, err := s.analyze(ctx, job, profile, candidate.ResumeText, customPrompt)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	score, status := Classify(analysis.MatchScore)
	result.MatchScore = score
	result.Status = string(status)
	result.Recommendation = analysis.Recommendation
	fillDegraded(&result, outcome)

	if err := s.createApplication(ctx, candidate.ID, job.ID, score, status, analysis); err != nil {
		result.Error = fmt.Sprintf("failed to save application: %v", err)
	}
	return result
}

func (s *ShortlistService) extract(ctx context.Context, orgID uint, text, customPrompt string) (llm.CandidateProfile, llm.Outcome, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return llm.CandidateProfile{}, llm.Outcome{}, err
	}
	start := time.Now()
	profile, outcome := s.ai.ExtractProfile(ctx, text, customPrompt)
	s.store.LogUsage(ctx, &models.APIUsageLog{
		OrganizationID: orgID,
		Operation:      "extract",
		Model:          s.modelName,
		DurationMs:     time.Since(start).Milliseconds(),
		Outcome:        outcome.Source,
	})
	if outcome.Degraded() {
		log.Printf("⚠️ extraction degraded: %s", outcome.Reason)
	}
	return profile, outcome, nil
}

func (s *ShortlistService) analyze(ctx context.Context, job *models.JobListing, profile llm.CandidateProfile, text, customPrompt string) (llm.MatchAnalysis, llm.Outcome, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return llm.MatchAnalysis{}, llm.Outcome{}, err
	}
	start := time.Now()
	analysis, outcome := s.ai.AnalyzeMatch(ctx, profile, text, llm.JobRequirements{
		Title:          job.Title,
		Description:    job.Description,
		Requirements:   job.Requirements,
		Department:     job.Department,
		EmploymentType: job.EmploymentType,
	}, customPrompt)
	s.store.LogUsage(ctx, &models.APIUsageLog{
		OrganizationID: job.OrganizationID,
		Operation:      "analyze",
		Model:          s.modelName,
		DurationMs:     time.Since(start).Milliseconds(),
		Outcome:        outcome.Source,
	})
	if outcome.Degraded() {
		log.Printf("⚠️ analysis degraded: %s", outcome.Reason)
	}
	return analysis, outcome, nil
}

func (s *ShortlistService) createApplication(ctx context.Context, candidateID, jobID uint, score int, status models.CandidateStatus, analysis llm.MatchAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return s.store.CreateApplication(ctx, &models.JobApplication{
		CandidateID:  candidateID,
		JobListingID: jobID,
		MatchScore:   score,
		AIAnalysis:   payload,
		Status:       status,
	})
}

// Classify floors the raw model score and applies the shortlist threshold.
// A floored score of exactly 50 is shortlisted.
func Classify(rawScore float64) (int, models.CandidateStatus) {
	score := int(math.Floor(rawScore))
	if score >= MatchScoreThreshold {
		return score, models.CandidateShortlisted
	}
	return score, models.CandidateRejected
}

func fillDegraded(result *dtos.ShortlistResult, outcomes ...llm.Outcome) {
	var reasons []string
	for _, o := range outcomes {
		if o.Degraded() {
			reasons = append(reasons, o.Reason)
		}
	}
	if len(reasons) > 0 {
		result.Degraded = true
		result.DegradedReason = strings.Join(reasons, "; ")
	}
}
