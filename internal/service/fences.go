package service

import "strings"

// StripCodeFences removes every ```json and ``` marker from model output.
// Markers are removed wherever they appear, not only at the edges.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
