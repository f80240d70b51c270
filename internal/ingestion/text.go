// Package ingestion provides text normalization for extracted resume and job
// documents before parsing.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	brokenURLPattern   = regexp.MustCompile(`https:/\s*/`)
	hyphenBreakPattern = regexp.MustCompile(`(\w)-\n(\w)`)
	multiSpacePattern  = regexp.MustCompile(`\s+`)
	excessBlankLines   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes raw extracted document text: line endings become \n,
// control characters are stripped, URL and hyphenation artifacts from PDF
// line breaks are repaired, and whitespace is normalized while preserving
// bullet structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF) and drop NUL bytes left by
	// extraction.
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\x00", "")

	// Repair extraction artifacts: "https:/\n/" → "https://" and
	// hyphenated line breaks ("word-\nword" → "wordword").
	content = brokenURLPattern.ReplaceAllString(content, "https://")
	content = hyphenBreakPattern.ReplaceAllString(content, "${1}${2}")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}
	result := strings.Join(cleanedLines, "\n")

	// Reduce runs of blank lines to at most one blank line.
	result = excessBlankLines.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line while preserving its structure.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")

	// Preserve bullet lines with their indentation.
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	// Regular lines: collapse internal whitespace runs, keep leading indent.
	leadingSpace := len(line) - len(trimmed)
	content := multiSpacePattern.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item.
func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// IngestFromFile reads a text file, cleans it, and returns the cleaned text
// with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleanedText := CleanText(string(content))
	metadata := NewMetadata(cleanedText, path)

	return cleanedText, metadata, nil
}
