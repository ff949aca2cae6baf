package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/export"
	"github.com/openresume/resume-builder/internal/rendering"
	"github.com/openresume/resume-builder/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the working resume to HTML",
	Long: `Renders the working resume with its selected template and writes the HTML
document to --out. With --all, every template is rendered into the output
directory, one file per template.`,
	RunE: runRender,
}

var (
	renderConfigPath *string
	renderVerbose    *bool
	renderTemplate   string
	renderOut        string
	renderAll        bool
)

func init() {
	renderConfigPath, renderVerbose = addCommonFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Override the resume's template selection")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", ".", "Output file (or directory with --all)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *renderConfigPath, *renderVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := a.adapter.LoadResume(cmd.Context())
	if renderTemplate != "" {
		if !types.IsKnownTemplate(types.TemplateName(renderTemplate)) {
			return fmt.Errorf("unknown template: %s", renderTemplate)
		}
		data.Template = types.TemplateName(renderTemplate)
	}

	if renderAll {
		paths, err := export.RenderAll(cmd.Context(), data, renderOut)
		if err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Println(path)
		}
		return nil
	}

	html, err := rendering.Render(data)
	if err != nil {
		return err
	}

	out := renderOut
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, string(types.NormalizeTemplate(data.Template))+".html")
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	fmt.Println(out)
	return nil
}
