package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

func TestShortlistReportXLSX(t *testing.T) {
	job := &models.JobListing{ID: 1, Title: "Backend Engineer", Department: "Engineering"}
	apps := []models.JobApplication{
		{
			MatchScore: 88,
			Status:     models.CandidateShortlisted,
			Candidate: models.Candidate{
				FirstName: "Ada", LastName: "Lovelace",
				Email:  "ada@example.com",
				Skills: []string{"Go", "Postgres"},
			},
		},
		{
			MatchScore: 32,
			Status:     models.CandidateRejected,
			Candidate:  models.Candidate{FirstName: "John", LastName: "Smith"},
		},
	}

	data, err := ShortlistReportXLSX(job, apps)
	if err != nil {
		t.Fatalf("ShortlistReportXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Ranked Candidates")
	if err != nil {
		t.Fatalf("failed to read candidates sheet: %v", err)
	}
	// Header + one row per application.
	if len(rows) != len(apps)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(apps)+1)
	}
	if rows[1][1] != "Ada Lovelace" {
		t.Errorf("first ranked candidate = %q, want Ada Lovelace", rows[1][1])
	}

	title, err := f.GetCellValue("Summary", "B1")
	if err != nil || title != "Backend Engineer" {
		t.Errorf("summary job title = %q (err %v)", title, err)
	}
}
