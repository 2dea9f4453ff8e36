// Package main provides the entry point for the resume ingestion HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-ingest",
	Short: "Resume ingestion service",
	Long:  "Resume ingestion accepts uploaded PDF/DOCX documents, extracts candidate contact information, stores the files, and records each submission against the hiring platform database.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
