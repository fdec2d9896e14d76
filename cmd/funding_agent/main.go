// Package main provides the entry point for the funding_agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "funding_agent",
	Short: "Funding program matcher for ecosystem restoration projects",
	Long:  "funding_agent scores a project intake against a catalog of funding programs, surfaces the best matches, and walks applicants through program-specific readiness questions and document checklists.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
