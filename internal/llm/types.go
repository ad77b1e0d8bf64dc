package llm

// CandidateProfile is the structured record extracted from a resume.
type CandidateProfile struct {
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CurrentPosition   string   `json:"currentPosition"`
	YearsOfExperience float64  `json:"yearsOfExperience"`
	Skills            []string `json:"skills"`
	Education         string   `json:"education"`
	Location          string   `json:"location"`
	LinkedIn          string   `json:"linkedIn"`
}

// JobRequirements describes the listing a candidate is scored against.
type JobRequirements struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	Department     string `json:"department"`
	EmploymentType string `json:"employmentType"`
}

// Recommendation values the analysis step may return.
const (
	StronglyRecommended = "strongly_recommended"
	Recommended         = "recommended"
	Maybe               = "maybe"
	NotRecommended      = "not_recommended"
)

// MatchAnalysis is the scored comparison of one candidate against one job.
type MatchAnalysis struct {
	MatchScore      float64  `json:"matchScore"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	KeySkillsMatch  []string `json:"keySkillsMatch"`
	Recommendation  string   `json:"recommendation"`
	Summary         string   `json:"summary"`
	ExperienceMatch string   `json:"experienceMatch"`
	EducationMatch  string   `json:"educationMatch"`
}

// Outcome source values.
const (
	SourceModel    = "model"
	SourceDegraded = "degraded"
)

// Outcome tells the caller whether a result came from the model or from a
// placeholder fallback. The pipeline never fails on model errors, so this is
// the only signal that an analysis degraded.
type Outcome struct {
	Source string
	Reason string
}

func modelOutcome() Outcome { return Outcome{Source: SourceModel} }

func degraded(reason string) Outcome {
	return Outcome{Source: SourceDegraded, Reason: reason}
}

// Degraded reports whether the result is a placeholder.
func (o Outcome) Degraded() bool { return o.Source == SourceDegraded }
