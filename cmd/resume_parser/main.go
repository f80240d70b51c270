// Package main provides the entry point for the resume parser CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Heuristic resume parser and fact consistency checker",
	Long:  "Resume Parser segments plain-text resumes into structured records using keyword and regex heuristics, and checks generated documents against the source facts.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
