// Package normalize repairs the shape of free-form model output. Models wrap
// JSON in markdown fences and surround it with prose; every endpoint runs its
// raw text through here before trusting it.
package normalize

import (
	"encoding/json"
	"strings"
)

// Clean strips markdown code-fence markers and surrounding whitespace. It is
// a no-op on text that is already clean, so repair is idempotent.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ExtractObject narrows cleaned text to the outermost JSON object, dropping
// any prose before the first '{' and after the last '}'. Only object-shaped
// endpoints use this; array payloads keep their brackets.
func ExtractObject(raw string) string {
	s := Clean(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// Object parses raw model text into out after cleaning and object
// extraction. A non-nil error means the caller must substitute its fallback
// value.
func Object(raw string, out interface{}) error {
	return json.Unmarshal([]byte(ExtractObject(raw)), out)
}

// Array parses raw model text expected to be a top-level JSON array.
func Array(raw string, out interface{}) error {
	return json.Unmarshal([]byte(Clean(raw)), out)
}
