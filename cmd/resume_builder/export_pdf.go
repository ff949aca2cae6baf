package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/export"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print the working resume to a PDF file",
	Long: `Renders the working resume and prints it with headless Chrome. The output
name is derived from the resume's full name, e.g. Jane_Doe_resume.pdf. Set
CHROME_PATH or chrome_path in the config when the browser is not on PATH.`,
	RunE: runExportPDF,
}

var (
	exportPDFConfigPath *string
	exportPDFVerbose    *bool
	exportPDFOut        string
	exportPDFTimeout    time.Duration
)

func init() {
	exportPDFConfigPath, exportPDFVerbose = addCommonFlags(exportPDFCmd)
	exportPDFCmd.Flags().StringVarP(&exportPDFOut, "out", "o", ".", "Output directory")
	exportPDFCmd.Flags().DurationVar(&exportPDFTimeout, "timeout", export.DefaultTimeout, "Print timeout")
	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *exportPDFConfigPath, *exportPDFVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := a.adapter.LoadResume(cmd.Context())

	opts := []export.Option{
		export.WithLogger(a.log),
		export.WithTimeout(exportPDFTimeout),
	}
	if a.cfg.ChromePath != "" {
		opts = append(opts, export.WithChromePath(a.cfg.ChromePath))
	}
	exporter := export.NewPDFExporter(opts...)

	path, err := exporter.ExportFile(cmd.Context(), data, exportPDFOut)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
