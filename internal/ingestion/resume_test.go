package ingestion

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Jane Doe\nSenior Engineer\t10 years",
			want:  "Jane Doe\nSenior Engineer\t10 years",
		},
		{
			name:  "NUL bytes stripped",
			input: "Jane\x00Doe",
			want:  "JaneDoe",
		},
		{
			name:  "control bytes stripped",
			input: "Jane\x01\x02\x7fDoe",
			want:  "JaneDoe",
		},
		{
			name:  "whitespace control chars kept",
			input: "line1\r\nline2\tend",
			want:  "line1\r\nline2\tend",
		},
		{
			name:  "unicode preserved",
			input: "José González — 软件工程师",
			want:  "José González — 软件工程师",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeInvalidUTF8(t *testing.T) {
	input := "Before" + string([]byte{0xFF, 0xFE}) + "After"
	got := Sanitize(input)

	if !utf8.ValidString(got) {
		t.Error("Sanitize() returned invalid UTF-8")
	}
	if !strings.Contains(got, "Before") || !strings.Contains(got, "After") {
		t.Errorf("Sanitize() lost surrounding text: %q", got)
	}
}

func TestResumeTextPlain(t *testing.T) {
	got, err := ResumeText("resume.txt", "Jane\x00 Doe", "text")
	if err != nil {
		t.Fatalf("ResumeText() error: %v", err)
	}
	if got != "Jane Doe" {
		t.Errorf("ResumeText() = %q, want %q", got, "Jane Doe")
	}
}

func TestResumeTextBadBase64(t *testing.T) {
	if _, err := ResumeText("resume.pdf", "not-base64!!!", "pdf"); err == nil {
		t.Error("ResumeText() should fail on invalid base64 PDF data")
	}
}

func TestResumeTextCorruptPDF(t *testing.T) {
	// Valid base64, but not a PDF.
	if _, err := ResumeText("resume.pdf", "aGVsbG8gd29ybGQ=", "pdf"); err == nil {
		t.Error("ResumeText() should fail on non-PDF bytes")
	}
}
