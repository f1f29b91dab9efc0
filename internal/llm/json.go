package llm

import (
	"encoding/json"
	"log"
	"strings"
)

// CleanResponse strips a markdown code fence from an LLM response,
// dropping a leading language tag, and trims whitespace. Text without a
// fence is returned trimmed.
func CleanResponse(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	start := -1
	end := len(lines)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if start == -1 {
				start = i
				continue
			}
			end = i
			break
		}
	}
	if start == -1 {
		return text
	}
	return strings.TrimSpace(strings.Join(lines[start+1:end], "\n"))
}

// ParseJSONResponse parses a JSON object from an LLM response, handling
// markdown code blocks. Returns nil on any parse failure; the caller
// substitutes its own fallback.
func ParseJSONResponse(text string) map[string]any {
	text = CleanResponse(text)
	if text == "" {
		return nil
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("Failed to parse LLM response as JSON: %v", err)
		return nil
	}

	return result
}

// ParseJSONArray parses a JSON array of strings from an LLM response.
// Returns nil on any parse failure.
func ParseJSONArray(text string) []string {
	text = CleanResponse(text)
	if text == "" {
		return nil
	}

	var raw []any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		log.Printf("Failed to parse LLM response as JSON array: %v", err)
		return nil
	}

	var result []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
