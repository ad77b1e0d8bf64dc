package export

import (
	"strings"
	"testing"
	"time"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

func TestUsageLogsCSVEmpty(t *testing.T) {
	if got := UsageLogsCSV(nil); got != "" {
		t.Errorf("UsageLogsCSV(nil) = %q, want empty string", got)
	}
	if got := UsageLogsCSV([]models.APIUsageLog{}); got != "" {
		t.Errorf("UsageLogsCSV(empty) = %q, want empty string", got)
	}
}

func TestUsageLogsCSVShape(t *testing.T) {
	logs := []models.APIUsageLog{
		{ID: 1, CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), OrganizationID: 10, Operation: "extract", Model: "gemini-2.5-flash", DurationMs: 812, Outcome: "model"},
		{ID: 2, CreatedAt: time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC), OrganizationID: 10, Operation: "analyze", Model: "gemini-2.5-flash", DurationMs: 1530, Outcome: "degraded"},
		{ID: 3, CreatedAt: time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC), OrganizationID: 11, Operation: "analyze", Model: "gemini-2.5-flash", DurationMs: 90, Outcome: "model"},
	}

	out := UsageLogsCSV(logs)
	lines := strings.Split(out, "\n")
	if len(lines) != len(logs)+1 {
		t.Fatalf("got %d lines, want %d (header + rows)", len(lines), len(logs)+1)
	}

	for i, line := range lines {
		for _, cell := range strings.Split(line, ",") {
			if !strings.HasPrefix(cell, `"`) || !strings.HasSuffix(cell, `"`) {
				t.Errorf("line %d: cell %q is not double-quoted", i, cell)
			}
		}
	}

	if !strings.HasPrefix(lines[0], `"id","created_at"`) {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], `"extract"`) || !strings.Contains(lines[2], `"degraded"`) {
		t.Errorf("rows missing expected values:\n%s", out)
	}
}

func TestUsageLogsCSVEscapesQuotes(t *testing.T) {
	logs := []models.APIUsageLog{
		{ID: 1, Operation: `ex"tract`, Model: "m"},
	}
	out := UsageLogsCSV(logs)
	if !strings.Contains(out, `"ex""tract"`) {
		t.Errorf("embedded quote not doubled: %s", out)
	}
}
