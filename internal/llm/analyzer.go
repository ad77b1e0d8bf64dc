package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// maxExtractChars bounds the resume text sent to the extraction step.
	maxExtractChars = 10000
	// maxAnalyzeChars bounds the resume text sent to the analysis step.
	maxAnalyzeChars = 8000

	// recommendThreshold backfills a missing recommendation from the score.
	recommendThreshold = 70
)

// Analyzer runs the two AI steps of the shortlisting pipeline. Neither step
// ever returns an error: failures degrade to placeholder results and the
// Outcome carries the reason.
type Analyzer struct {
	gen Generator
	// now is swappable in tests (placeholder emails embed a timestamp).
	now func() time.Time
}

func NewAnalyzer(gen Generator) *Analyzer {
	return &Analyzer{gen: gen, now: time.Now}
}

// ExtractProfile pulls structured candidate fields out of raw resume text.
// On any model or parse failure the profile is filled with defaults.
func (a *Analyzer) ExtractProfile(ctx context.Context, resumeText, customPrompt string) (CandidateProfile, Outcome) {
	prompt := customPrompt
	if prompt == "" {
		prompt = extractionPrompt
	}
	text := truncate(resumeText, maxExtractChars)

	response, err := a.generate(ctx, fmt.Sprintf(prompt, text))
	if err != nil {
		return a.defaultProfile(), degraded(fmt.Sprintf("extraction call failed: %v", err))
	}

	raw, err := ExtractJSONObject(response)
	if err != nil {
		return a.defaultProfile(), degraded(fmt.Sprintf("extraction parse failed: %v", err))
	}

	var profile CandidateProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return a.defaultProfile(), degraded(fmt.Sprintf("extraction unmarshal failed: %v", err))
	}

	a.fillProfileDefaults(&profile)
	return profile, modelOutcome()
}

// AnalyzeMatch scores the candidate against the job requirements. Failures,
// including a missing API key, degrade to a neutral placeholder analysis.
func (a *Analyzer) AnalyzeMatch(ctx context.Context, profile CandidateProfile, resumeText string, job JobRequirements, customPrompt string) (MatchAnalysis, Outcome) {
	var prompt string
	if customPrompt != "" {
		prompt = fmt.Sprintf(customPrompt, truncate(resumeText, maxAnalyzeChars))
	} else {
		prompt = fmt.Sprintf(analysisPrompt,
			job.Title, job.Department, job.EmploymentType, job.Description, job.Requirements,
			profile.FirstName, profile.LastName, profile.CurrentPosition,
			profile.YearsOfExperience, strings.Join(profile.Skills, ", "), profile.Education,
			truncate(resumeText, maxAnalyzeChars),
		)
	}

	response, err := a.generate(ctx, prompt)
	if err != nil {
		return placeholderAnalysis(), degraded(fmt.Sprintf("analysis call failed: %v", err))
	}

	raw, err := ExtractJSONObject(response)
	if err != nil {
		return placeholderAnalysis(), degraded(fmt.Sprintf("analysis parse failed: %v", err))
	}

	var analysis MatchAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return placeholderAnalysis(), degraded(fmt.Sprintf("analysis unmarshal failed: %v", err))
	}

	normalizeAnalysis(&analysis)
	return analysis, modelOutcome()
}

func (a *Analyzer) generate(ctx context.Context, prompt string) (string, error) {
	if a.gen == nil {
		return "", fmt.Errorf("no API key configured")
	}
	return a.gen.Generate(ctx, prompt)
}

func (a *Analyzer) defaultProfile() CandidateProfile {
	p := CandidateProfile{Skills: []string{}}
	a.fillProfileDefaults(&p)
	return p
}

// fillProfileDefaults backfills the required fields so a candidate row can
// always be persisted.
func (a *Analyzer) fillProfileDefaults(p *CandidateProfile) {
	if strings.TrimSpace(p.FirstName) == "" {
		p.FirstName = "Unknown"
	}
	if strings.TrimSpace(p.LastName) == "" {
		p.LastName = "Candidate"
	}
	if strings.TrimSpace(p.Email) == "" {
		p.Email = fmt.Sprintf("candidate_%d@placeholder.com", a.now().Unix())
	}
	if p.YearsOfExperience < 0 {
		p.YearsOfExperience = 0
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
}

func placeholderAnalysis() MatchAnalysis {
	return MatchAnalysis{
		MatchScore:     50,
		Strengths:      []string{},
		Weaknesses:     []string{},
		KeySkillsMatch: []string{},
		Recommendation: Maybe,
		Summary:        "Automated analysis was unavailable for this candidate; manual review recommended.",
	}
}

func normalizeAnalysis(m *MatchAnalysis) {
	if m.MatchScore < 0 {
		m.MatchScore = 0
	}
	if m.MatchScore > 100 {
		m.MatchScore = 100
	}
	switch m.Recommendation {
	case StronglyRecommended, Recommended, Maybe, NotRecommended:
	default:
		if m.MatchScore >= recommendThreshold {
			m.Recommendation = Recommended
		} else {
			m.Recommendation = Maybe
		}
	}
	if m.Strengths == nil {
		m.Strengths = []string{}
	}
	if m.Weaknesses == nil {
		m.Weaknesses = []string{}
	}
	if m.KeySkillsMatch == nil {
		m.KeySkillsMatch = []string{}
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
