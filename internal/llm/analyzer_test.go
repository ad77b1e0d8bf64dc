package llm

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func newStubAnalyzer(response string, err error) *Analyzer {
	a := NewAnalyzer(&stubGenerator{response: response, err: err})
	a.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

var placeholderEmailRe = regexp.MustCompile(`^candidate_\d+@placeholder\.com$`)

func TestExtractProfileSuccess(t *testing.T) {
	a := newStubAnalyzer(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","yearsOfExperience":7.5,"skills":["Go","SQL"]}`, nil)

	profile, outcome := a.ExtractProfile(context.Background(), "resume text", "")
	if outcome.Degraded() {
		t.Fatalf("outcome degraded: %s", outcome.Reason)
	}
	if profile.FirstName != "Ada" || profile.LastName != "Lovelace" {
		t.Errorf("profile name = %s %s", profile.FirstName, profile.LastName)
	}
	if profile.YearsOfExperience != 7.5 {
		t.Errorf("yearsOfExperience = %v, want 7.5", profile.YearsOfExperience)
	}
}

func TestExtractProfileFillsPlaceholders(t *testing.T) {
	a := newStubAnalyzer(`{"firstName":"","lastName":"","email":""}`, nil)

	profile, outcome := a.ExtractProfile(context.Background(), "resume text", "")
	if outcome.Degraded() {
		t.Fatalf("blank fields should backfill, not degrade: %s", outcome.Reason)
	}
	if profile.FirstName != "Unknown" {
		t.Errorf("FirstName = %q, want Unknown", profile.FirstName)
	}
	if profile.LastName != "Candidate" {
		t.Errorf("LastName = %q, want Candidate", profile.LastName)
	}
	if !placeholderEmailRe.MatchString(profile.Email) {
		t.Errorf("Email = %q, want candidate_<timestamp>@placeholder.com", profile.Email)
	}
	if profile.Skills == nil {
		t.Error("Skills should be an empty slice, not nil")
	}
}

func TestExtractProfileNeverFails(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{"model error", "", errors.New("quota exceeded")},
		{"garbage response", "sorry, I can't help with that", nil},
		{"truncated JSON", `{"firstName": "Ada"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStubAnalyzer(tt.response, tt.err)
			profile, outcome := a.ExtractProfile(context.Background(), "resume", "")
			if !outcome.Degraded() {
				t.Error("expected degraded outcome")
			}
			if outcome.Reason == "" {
				t.Error("degraded outcome should carry a reason")
			}
			if profile.FirstName != "Unknown" || profile.LastName != "Candidate" {
				t.Errorf("got %s %s, want placeholder name", profile.FirstName, profile.LastName)
			}
			if !placeholderEmailRe.MatchString(profile.Email) {
				t.Errorf("Email = %q, want placeholder pattern", profile.Email)
			}
		})
	}
}

func TestAnalyzeMatchClampsScore(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     float64
	}{
		{"above range", `{"matchScore": 150, "recommendation": "recommended"}`, 100},
		{"below range", `{"matchScore": -10, "recommendation": "maybe"}`, 0},
		{"in range", `{"matchScore": 82.4, "recommendation": "recommended"}`, 82.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStubAnalyzer(tt.response, nil)
			analysis, outcome := a.AnalyzeMatch(context.Background(), CandidateProfile{}, "resume", JobRequirements{}, "")
			if outcome.Degraded() {
				t.Fatalf("unexpected degrade: %s", outcome.Reason)
			}
			if analysis.MatchScore != tt.want {
				t.Errorf("MatchScore = %v, want %v", analysis.MatchScore, tt.want)
			}
		})
	}
}

func TestAnalyzeMatchBackfillsRecommendation(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"high score", `{"matchScore": 70}`, Recommended},
		{"low score", `{"matchScore": 69.9}`, Maybe},
		{"invalid value high", `{"matchScore": 90, "recommendation": "hire immediately"}`, Recommended},
		{"valid value kept", `{"matchScore": 20, "recommendation": "not_recommended"}`, NotRecommended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStubAnalyzer(tt.response, nil)
			analysis, _ := a.AnalyzeMatch(context.Background(), CandidateProfile{}, "resume", JobRequirements{}, "")
			if analysis.Recommendation != tt.want {
				t.Errorf("Recommendation = %q, want %q", analysis.Recommendation, tt.want)
			}
		})
	}
}

func TestAnalyzeMatchDegradesToPlaceholder(t *testing.T) {
	a := newStubAnalyzer("", errors.New("deadline exceeded"))

	analysis, outcome := a.AnalyzeMatch(context.Background(), CandidateProfile{}, "resume", JobRequirements{}, "")
	if !outcome.Degraded() {
		t.Fatal("expected degraded outcome")
	}
	if analysis.MatchScore != 50 {
		t.Errorf("placeholder MatchScore = %v, want 50", analysis.MatchScore)
	}
	if analysis.Recommendation != Maybe {
		t.Errorf("placeholder Recommendation = %q, want maybe", analysis.Recommendation)
	}
}

func TestAnalyzeMatchWithoutClient(t *testing.T) {
	a := NewAnalyzer(nil)

	analysis, outcome := a.AnalyzeMatch(context.Background(), CandidateProfile{}, "resume", JobRequirements{}, "")
	if !outcome.Degraded() {
		t.Fatal("nil generator should degrade, not score")
	}
	if analysis.MatchScore != 50 || analysis.Recommendation != Maybe {
		t.Errorf("placeholder = %v/%s, want 50/maybe", analysis.MatchScore, analysis.Recommendation)
	}
}
