package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject recovers a single JSON object from free-form model text.
// Markdown code fences are stripped, then the substring from the first '{' to
// the last '}' is taken. If the model returned a JSON array instead, the
// array's first element is used.
func ExtractJSONObject(response string) ([]byte, error) {
	cleaned := stripFences(response)

	objStart := strings.Index(cleaned, "{")
	arrStart := strings.Index(cleaned, "[")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		arrEnd := strings.LastIndex(cleaned, "]")
		if arrEnd > arrStart {
			var elems []json.RawMessage
			if err := json.Unmarshal([]byte(cleaned[arrStart:arrEnd+1]), &elems); err == nil {
				if len(elems) == 0 {
					return nil, fmt.Errorf("response contained an empty JSON array")
				}
				return elems[0], nil
			}
		}
	}

	objEnd := strings.LastIndex(cleaned, "}")
	if objStart == -1 || objEnd <= objStart {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	candidate := cleaned[objStart : objEnd+1]
	if !json.Valid([]byte(candidate)) {
		return nil, fmt.Errorf("extracted substring is not valid JSON")
	}
	return []byte(candidate), nil
}

func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
