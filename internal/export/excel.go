package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

// ShortlistReportXLSX renders a job's scored applications as a spreadsheet
// with a summary sheet and a ranked candidates sheet.
func ShortlistReportXLSX(job *models.JobListing, apps []models.JobApplication) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "Summary"
	candidatesSheet := "Ranked Candidates"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(candidatesSheet)

	if err := writeSummarySheet(f, summarySheet, job, apps); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := writeCandidatesSheet(f, candidatesSheet, apps); err != nil {
		return nil, fmt.Errorf("failed to create candidates sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet string, job *models.JobListing, apps []models.JobApplication) error {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 50)

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	shortlisted := 0
	for _, a := range apps {
		if a.Status == models.CandidateShortlisted {
			shortlisted++
		}
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Job Title:", job.Title},
		{"Department:", job.Department},
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Candidates Scored:", len(apps)},
		{"Shortlisted:", shortlisted},
	}
	for i, r := range rows {
		row := i + 1
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.label)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.value)
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, sheet string, apps []models.JobApplication) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	headers := []string{"Rank", "Name", "Email", "Position", "Match Score", "Status", "Skills"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)

	for i, app := range apps {
		row := i + 2
		c := app.Candidate
		values := []interface{}{
			i + 1,
			c.FirstName + " " + c.LastName,
			c.Email,
			c.CurrentPosition,
			app.MatchScore,
			string(app.Status),
			strings.Join(c.Skills, ", "),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}
