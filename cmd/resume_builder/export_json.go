package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/storage"
)

var exportJSONCmd = &cobra.Command{
	Use:   "export-json",
	Short: "Export the working resume as a JSON file",
	Long:  `Writes the working resume to a timestamped file (resume-<millis>.json) that import-json can read back.`,
	RunE:  runExportJSON,
}

var (
	exportJSONConfigPath *string
	exportJSONVerbose    *bool
	exportJSONOut        string
)

func init() {
	exportJSONConfigPath, exportJSONVerbose = addCommonFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&exportJSONOut, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportJSONCmd)
}

func runExportJSON(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *exportJSONConfigPath, *exportJSONVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := a.adapter.LoadResume(cmd.Context())
	path, err := storage.ExportFile(data, exportJSONOut)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
