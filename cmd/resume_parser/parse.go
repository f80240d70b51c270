package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse [files...]",
	Short: "Parse resume text files or a URL into structured JSON",
	Long:  "Clean and parse one or more plain-text resumes (or a single URL) into structured JSON records. Each file is processed independently; output is written next to the input or into --out.",
	RunE:  runParse,
}

var (
	parseURL     string
	parseOutDir  string
	parseBrowser bool
	parseVerbose bool
)

// parseWorkers bounds concurrent file parsing in batch mode.
const parseWorkers = 4

func init() {
	parseCmd.Flags().StringVarP(&parseURL, "url", "u", "", "URL to fetch resume text from")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Output directory (defaults to the input file's directory)")
	parseCmd.Flags().BoolVar(&parseBrowser, "browser", false, "Fall back to headless browser rendering for JavaScript-heavy pages")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of each parsed resume")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseURL == "" && len(args) == 0 {
		return fmt.Errorf("provide one or more files, or --url")
	}
	if parseURL != "" && len(args) > 0 {
		return fmt.Errorf("files and --url are mutually exclusive; provide only one")
	}

	if parseURL != "" {
		return parseFromURL(cmd.Context(), parseURL)
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(parseWorkers)

	for _, path := range args {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return parseFile(path)
		})
	}

	return g.Wait()
}

func parseFile(path string) error {
	text, metadata, err := ingestion.IngestFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", path, err)
	}

	resume, err := parsing.ParseResume(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	outPath := outputPath(path)
	if err := writeResult(outPath, resume); err != nil {
		return err
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintIngestMetadata(metadata)
		printer.PrintParsedResume(resume)
	}

	fmt.Fprintf(os.Stdout, "Parsed %s -> %s\n", path, outPath)
	return nil
}

func parseFromURL(ctx context.Context, urlStr string) error {
	text, metadata, err := ingestion.IngestFromURL(ctx, urlStr, parseBrowser, parseVerbose)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", urlStr, err)
	}

	resume, err := parsing.ParseResume(text)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", urlStr, err)
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintIngestMetadata(metadata)
		printer.PrintParsedResume(resume)
	}

	if parseOutDir == "" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resume)
	}

	outPath := filepath.Join(parseOutDir, "resume.json")
	if err := writeResult(outPath, resume); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Parsed %s -> %s\n", urlStr, outPath)
	return nil
}

// outputPath derives the JSON output path for an input file.
func outputPath(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".json"
	if parseOutDir != "" {
		return filepath.Join(parseOutDir, base)
	}
	return filepath.Join(filepath.Dir(inputPath), base)
}

// writeResult marshals the resume, verifies it against the schema, and
// writes it to disk.
func writeResult(outPath string, resume any) error {
	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := schemas.ValidateParsedResume(jsonBytes); err != nil {
		return fmt.Errorf("parsed record failed schema validation: %w", err)
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, append(jsonBytes, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
