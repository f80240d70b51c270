package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate parsed resume JSON files against the schema",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more JSON files to validate")
	}

	failures := 0
	for _, path := range args {
		if err := schemas.ValidateJSONFile(path); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %s\n%v\n", path, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "OK   %s\n", path)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d files failed validation", failures, len(args))
	}
	return nil
}
