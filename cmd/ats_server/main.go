// Package main provides the entry point for the ATS Analyzer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_server",
	Short: "ATS Analyzer HTTP API Server",
	Long:  "ATS Analyzer scores resumes against job descriptions with a deterministic compatibility score and generates improvement reports via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
