// Package main provides the entry point for the resume builder CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume builder with LinkedIn import and PDF export",
	Long:  "Resume builder maintains a working resume, imports pasted LinkedIn profiles, renders six HTML templates, and prints them to PDF via headless Chrome.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
