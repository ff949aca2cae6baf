package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/observability"
	"github.com/openresume/resume-builder/internal/parsing"
)

var importLinkedInCmd = &cobra.Command{
	Use:   "import-linkedin",
	Short: "Import a pasted LinkedIn profile as the working resume",
	Long: `Parses LinkedIn profile text with section-header heuristics and converts
the result into the working resume. Reads from --in (a file path, or "-" for
stdin); pass --html when the input is a saved profile page rather than
plain text.`,
	RunE: runImportLinkedIn,
}

var (
	importLIConfigPath *string
	importLIVerbose    *bool
	importLIIn         string
	importLIHTML       bool
)

func init() {
	importLIConfigPath, importLIVerbose = addCommonFlags(importLinkedInCmd)
	importLinkedInCmd.Flags().StringVarP(&importLIIn, "in", "i", "-", `Input file, or "-" for stdin`)
	importLinkedInCmd.Flags().BoolVar(&importLIHTML, "html", false, "Treat input as HTML and extract the text first")
	rootCmd.AddCommand(importLinkedInCmd)
}

func runImportLinkedIn(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *importLIConfigPath, *importLIVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	text, err := readInput(importLIIn)
	if err != nil {
		return err
	}
	if importLIHTML {
		text, err = parsing.ExtractText(text)
		if err != nil {
			return fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}
	if text == "" {
		return fmt.Errorf("input is empty")
	}

	profile := parsing.Parse(text)
	data := parsing.Convert(profile)
	a.adapter.SaveResume(cmd.Context(), data)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintParsedProfile(profile)
	fmt.Println("Imported as working resume.")
	return nil
}

// readInput reads a file, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
