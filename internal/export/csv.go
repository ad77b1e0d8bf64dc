package export

import (
	"strconv"
	"strings"

	"github.com/leechunsiang/resume-shortlist-assistant-sub000/internal/models"
)

// usageHeader is the CSV column order for usage-log exports.
var usageHeader = []string{"id", "created_at", "organization_id", "operation", "model", "duration_ms", "outcome"}

// UsageLogsCSV renders usage logs as CSV for download. Every cell is
// double-quoted (the consumer expects uniformly quoted fields, which
// encoding/csv's minimal quoting does not produce). An empty log set
// renders as the empty string with no header.
func UsageLogsCSV(logs []models.APIUsageLog) string {
	if len(logs) == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow(&sb, usageHeader)
	for _, l := range logs {
		sb.WriteByte('\n')
		writeRow(&sb, []string{
			strconv.FormatUint(uint64(l.ID), 10),
			l.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			strconv.FormatUint(uint64(l.OrganizationID), 10),
			l.Operation,
			l.Model,
			strconv.FormatInt(l.DurationMs, 10),
			l.Outcome,
		})
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		sb.WriteByte('"')
	}
}
