// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	if resume.Contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.Contact.Name))
	}
	if resume.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", resume.Contact.Email))
	}
	if resume.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", resume.Contact.Phone))
	}
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s", exp.Position, exp.Company))
			if exp.StartDate != "" {
				end := exp.EndDate
				if exp.Current {
					end = "Present"
				}
				sb.WriteString(fmt.Sprintf(" (%s-%s)", exp.StartDate, end))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(resume.Education)))
		for _, edu := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.Institution))
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills) > 0 {
		skills := strings.Join(resume.Skills, ", ")
		if len(skills) > 40 {
			skills = skills[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills (%d): %s\n", len(resume.Skills), skills))
	}

	sb.WriteString(fmt.Sprintf("Certifications: %d  Projects: %d  Languages: %d",
		len(resume.Certifications), len(resume.Projects), len(resume.Languages)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintConsistencyReport outputs a consistency check result.
func (p *Printer) PrintConsistencyReport(report *types.ConsistencyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Passed {
		sb.WriteString("Result: PASSED\n")
		sb.WriteString("No inconsistencies found.")
		p.printBox("CONSISTENCY CHECK", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Result: FAILED (%d issues)\n\n", len(report.Issues)))
	count := min(len(report.Issues), maxItemsToShow)
	for i := 0; i < count; i++ {
		issue := report.Issues[i]
		sb.WriteString(fmt.Sprintf("  • [%s] %s\n", issue.Type, issue.Value))
		sb.WriteString(fmt.Sprintf("    %s\n", issue.Detail))
	}
	if len(report.Issues) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Issues)-maxItemsToShow))
	}

	p.printBox("CONSISTENCY CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintIngestMetadata outputs the metadata captured during ingestion.
func (p *Printer) PrintIngestMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("Chars:  %d\n", meta.Chars))
	sb.WriteString(fmt.Sprintf("Lines:  %d\n", meta.Lines))
	sb.WriteString(fmt.Sprintf("Hash:   %s", meta.Hash))

	p.printBox("INGESTED DOCUMENT", sb.String())
}
