package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/consistency"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check generated text against a parsed resume",
	Long:  "Compare a generated document (summary, cover letter) against a parsed resume JSON record and report employers, dates, and skills that do not appear in the source.",
	RunE:  runCheck,
}

var (
	checkResumePath string
	checkTextPath   string
	checkJSONOut    bool
)

func init() {
	checkCmd.Flags().StringVarP(&checkResumePath, "resume", "r", "", "Path to parsed resume JSON (required)")
	checkCmd.Flags().StringVarP(&checkTextPath, "text", "t", "", "Path to generated text file (required)")
	checkCmd.Flags().BoolVar(&checkJSONOut, "json", false, "Print the report as JSON instead of a summary box")

	checkCmd.MarkFlagRequired("resume")
	checkCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	resumeBytes, err := os.ReadFile(checkResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	resume := types.NewParsedResume()
	if err := json.Unmarshal(resumeBytes, resume); err != nil {
		return fmt.Errorf("failed to decode resume JSON: %w", err)
	}

	textBytes, err := os.ReadFile(checkTextPath)
	if err != nil {
		return fmt.Errorf("failed to read generated text: %w", err)
	}

	report := consistency.Check(resume, string(textBytes))

	if checkJSONOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(os.Stdout).PrintConsistencyReport(report)
	}

	if !report.Passed {
		return fmt.Errorf("consistency check failed with %d issues", len(report.Issues))
	}
	return nil
}
