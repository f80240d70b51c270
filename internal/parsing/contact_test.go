package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact_Full(t *testing.T) {
	text := `John Doe
Seattle, WA
john.doe@example.com
(555) 123-4567
https://linkedin.com/in/johndoe
https://johndoe.dev`

	contact := extractContact(splitLines(text), text)

	assert.Equal(t, "John Doe", contact.Name)
	assert.Equal(t, "john.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "Seattle, WA", contact.Location)
	assert.Equal(t, "https://linkedin.com/in/johndoe", contact.LinkedIn)
	assert.Equal(t, "https://johndoe.dev", contact.Website)
}

func TestExtractContact_PhonePrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"international", "+1 555 123 4567", "+1 555 123 4567"},
		{"parenthesized", "(555) 123-4567", "(555) 123-4567"},
		{"plain", "555-123-4567", "555-123-4567"},
		{"dotted", "555.123.4567", "555.123.4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := extractContact(nil, tt.text)
			assert.Equal(t, tt.want, contact.Phone)
		})
	}
}

func TestExtractContact_NameRejectsNonNames(t *testing.T) {
	// An email or phone first line must not become the name.
	contact := extractContact(splitLines("john@example.com\nJohn Doe"), "john@example.com\nJohn Doe")
	assert.Empty(t, contact.Name)

	contact = extractContact(splitLines("555-123-4567"), "555-123-4567")
	assert.Empty(t, contact.Name)
}

func TestExtractContact_LabeledLocation(t *testing.T) {
	text := "John Doe\nLocation: Portland, Oregon"
	contact := extractContact(splitLines(text), text)
	assert.Equal(t, "Portland, Oregon", contact.Location)
}

func TestExtractContact_WebsiteSkipsLinkedIn(t *testing.T) {
	text := "Jane\nhttps://www.linkedin.com/in/jane\nhttps://jane.io"
	contact := extractContact(splitLines(text), text)
	assert.Equal(t, "https://jane.io", contact.Website)
}

func TestExtractContact_Empty(t *testing.T) {
	contact := extractContact(nil, "")
	assert.Empty(t, contact.Name)
	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
}
