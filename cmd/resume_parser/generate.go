package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/fetch"
	"github.com/jonathan/resume-parser/internal/generation"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored summary or cover letter from a parsed resume",
	Long:  "Generate a job-tailored document from a parsed resume JSON record. The output is checked against the source resume; flagged drafts are regenerated once with the violations fed back.",
	RunE:  runGenerate,
}

var (
	genResumePath string
	genJobPath    string
	genJobURL     string
	genKind       string
	genOutPath    string
)

func init() {
	generateCmd.Flags().StringVarP(&genResumePath, "resume", "r", "", "Path to parsed resume JSON (required)")
	generateCmd.Flags().StringVarP(&genJobPath, "job", "j", "", "Path to job description text file")
	generateCmd.Flags().StringVar(&genJobURL, "job-url", "", "URL of the job posting")
	generateCmd.Flags().StringVarP(&genKind, "kind", "k", "summary", "Document kind: summary or cover_letter")
	generateCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "Output file (defaults to stdout)")

	generateCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if genJobPath == "" && genJobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if genJobPath != "" && genJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	resumeBytes, err := os.ReadFile(genResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}
	resume := types.NewParsedResume()
	if err := json.Unmarshal(resumeBytes, resume); err != nil {
		return fmt.Errorf("failed to decode resume JSON: %w", err)
	}

	jobText, err := loadJobText(cmd.Context())
	if err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := generation.Generate(cmd.Context(), client, resume, jobText, generation.Kind(genKind))
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stderr).PrintConsistencyReport(result.Report)

	if genOutPath != "" {
		if err := os.WriteFile(genOutPath, []byte(result.Text+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", genOutPath, err)
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", genOutPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, result.Text)
	return nil
}

// loadJobText reads the job description from a file or fetches it from a
// job board page.
func loadJobText(ctx context.Context) (string, error) {
	if genJobPath != "" {
		jobBytes, err := os.ReadFile(genJobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return ingestion.CleanText(string(jobBytes)), nil
	}

	result, err := fetch.URL(ctx, genJobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("failed to extract job posting text: %w", err)
	}
	return ingestion.CleanText(text), nil
}
