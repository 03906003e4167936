// Package textutils provides text normalization utilities for receipt text.
package textutils

import "strings"

// NormalizeLines splits raw text into an ordered sequence of non-empty,
// whitespace-trimmed lines. Carriage returns are treated as line separators
// equivalent to newlines, so OCR output with mixed line endings normalizes
// to the same sequence. No deduplication or reordering is performed.
func NormalizeLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r", "\n"), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
