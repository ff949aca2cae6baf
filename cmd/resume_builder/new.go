package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/observability"
	"github.com/openresume/resume-builder/internal/types"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Reset the working resume to a fresh blank",
	Long:  `Replaces the working resume with a blank record: one empty experience entry, one empty education entry, the default template and A4 paper.`,
	RunE:  runNew,
}

var (
	newConfigPath *string
	newVerbose    *bool
	newTemplate   string
)

func init() {
	newConfigPath, newVerbose = addCommonFlags(newCmd)
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "", "Template to start with (clean-modern, two-column, minimal, executive, creative, technical)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *newConfigPath, *newVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := types.NewDefaultResume()
	if newTemplate != "" {
		if !types.IsKnownTemplate(types.TemplateName(newTemplate)) {
			return fmt.Errorf("unknown template: %s", newTemplate)
		}
		data.Template = types.TemplateName(newTemplate)
	}

	a.adapter.SaveResume(cmd.Context(), data)
	fmt.Println("Working resume reset.")

	if a.cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResumeSummary(data)
	}
	return nil
}
