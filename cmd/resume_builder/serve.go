package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/export"
	"github.com/openresume/resume-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the working resume, LinkedIn import, template registry, snapshots, and JSON/HTML/PDF export as REST endpoints.`,
	RunE:  runServe,
}

var (
	serveConfigPath *string
	serveVerbose    *bool
	serveAddr       string
)

func init() {
	serveConfigPath, serveVerbose = addCommonFlags(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd, *serveConfigPath, *serveVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	addr := a.cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	exporterOpts := []export.Option{export.WithLogger(a.log)}
	if a.cfg.ChromePath != "" {
		exporterOpts = append(exporterOpts, export.WithChromePath(a.cfg.ChromePath))
	}

	srv, err := server.New(server.Config{
		Addr:     addr,
		Adapter:  a.adapter,
		Exporter: export.NewPDFExporter(exporterOpts...),
		Logger:   a.log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
