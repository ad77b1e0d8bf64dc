package dtos

// ResumeUpload is one resume file in an upload-mode shortlist request.
type ResumeUpload struct {
	FileName string `json:"fileName" binding:"required"`
	Text     string `json:"text" binding:"required"`
	// Type is "pdf" for base64 PDF data, otherwise the text is used as-is.
	Type string `json:"type"`
}

type ShortlistRequest struct {
	JobID          uint           `json:"jobId" binding:"required"`
	OrganizationID uint           `json:"organizationId" binding:"required"`
	Mode           string         `json:"mode" binding:"required"` // "upload" or "batch"
	Resumes        []ResumeUpload `json:"resumes"`

	CustomExtractPrompt  string `json:"customExtractPrompt"`
	CustomAnalysisPrompt string `json:"customAnalysisPrompt"`
}

// ShortlistResult is the per-candidate outcome of a shortlist run. Exactly
// one of CandidateID/Error is meaningful: a failed file carries Error and
// nothing else.
type ShortlistResult struct {
	FileName       string `json:"fileName,omitempty"`
	CandidateID    uint   `json:"candidateId,omitempty"`
	CandidateName  string `json:"candidateName,omitempty"`
	MatchScore     int    `json:"matchScore,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
	Status         string `json:"status,omitempty"`

	// Degraded marks results whose AI steps fell back to placeholders.
	Degraded       bool   `json:"degraded,omitempty"`
	DegradedReason string `json:"degradedReason,omitempty"`

	Error string `json:"error,omitempty"`
}

type ShortlistResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	JobTitle string            `json:"jobTitle"`
	Results  []ShortlistResult `json:"results"`
}
