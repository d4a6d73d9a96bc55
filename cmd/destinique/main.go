// Package main provides the entry point for the Destinique compatibility service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "destinique",
	Short: "Destinique compatibility scoring service",
	Long:  "Destinique derives esoteric personality assessments from birth dates and names, scores pairwise compatibility across weighted dimensions, and serves dating profiles via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
