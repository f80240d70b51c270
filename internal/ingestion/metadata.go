package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	Source    string `json:"source,omitempty"` // File path or URL
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of cleaned text
	Chars     int    `json:"chars"`
	Lines     int    `json:"lines"`
}

// NewMetadata creates a Metadata instance for cleaned content.
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     len(content),
		Lines:     countLines(content),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
