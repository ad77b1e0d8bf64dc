// Package ingestion turns uploaded resume payloads into clean text.
package ingestion

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MinExtractedTextLength is the minimum text length for a usable extraction.
const MinExtractedTextLength = 20

// ResumeText converts an uploaded resume payload into sanitized plain text.
// fileType "pdf" means content is base64-encoded PDF data; anything else is
// treated as raw text.
func ResumeText(fileName, content, fileType string) (string, error) {
	if strings.EqualFold(fileType, "pdf") {
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return "", fmt.Errorf("failed to decode PDF data for %s: %w", fileName, err)
		}
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", fileName, err)
		}
		return Sanitize(text), nil
	}
	return Sanitize(content), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	text := buf.String()
	if len(strings.TrimSpace(text)) < MinExtractedTextLength {
		return "", fmt.Errorf("extracted text is too short (likely failed extraction)")
	}
	return text, nil
}

// Sanitize strips NUL and other control bytes (keeping whitespace) and
// replaces invalid UTF-8 sequences so the text is safe for prompts and for
// the database.
func Sanitize(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, s)
}
