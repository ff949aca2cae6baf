package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/observability"
	"github.com/openresume/resume-builder/internal/schemas"
	"github.com/openresume/resume-builder/internal/storage"
)

var importJSONCmd = &cobra.Command{
	Use:   "import-json",
	Short: "Import a previously exported JSON file as the working resume",
	RunE:  runImportJSON,
}

var (
	importJSONConfigPath *string
	importJSONVerbose    *bool
	importJSONIn         string
)

func init() {
	importJSONConfigPath, importJSONVerbose = addCommonFlags(importJSONCmd)
	importJSONCmd.Flags().StringVarP(&importJSONIn, "in", "i", "", "Path to the exported JSON file")
	_ = importJSONCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(importJSONCmd)
}

func runImportJSON(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *importJSONConfigPath, *importJSONVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	raw, err := os.ReadFile(importJSONIn)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	// Schema findings are advisory; a malformed field is repaired by
	// ApplyDefaults during import rather than rejected.
	if issues, err := schemas.Validate(raw); err == nil {
		for _, issue := range issues {
			a.log.WithField("field", issue.Field).Warn(issue.Message)
		}
	}

	data, err := storage.ImportJSON(raw)
	if err != nil {
		return err
	}

	a.adapter.SaveResume(cmd.Context(), data)
	fmt.Println("Imported as working resume.")

	if a.cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResumeSummary(data)
	}
	return nil
}
