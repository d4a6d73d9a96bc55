package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/observability"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Generate esoteric assessments for a birth date and name",
	Long:  "Derives the full assessment bundle (Bazi, Vedic, numerology, Enneagram, tarot, Human Design, Greek Gear, zodiac) deterministically from a birth date and name, and prints it as JSON.",
	RunE:  runAssess,
}

var (
	assessBirthDate string
	assessName      string
	assessPretty    bool
)

func init() {
	assessCmd.Flags().StringVarP(&assessBirthDate, "birth-date", "d", "", "Birth date in YYYY-MM-DD format (required)")
	assessCmd.Flags().StringVarP(&assessName, "name", "n", "", "Full name (required)")
	assessCmd.Flags().BoolVar(&assessPretty, "pretty", false, "Print a human-readable summary instead of JSON")

	if err := assessCmd.MarkFlagRequired("birth-date"); err != nil {
		panic(fmt.Sprintf("failed to mark birth-date flag as required: %v", err))
	}
	if err := assessCmd.MarkFlagRequired("name"); err != nil {
		panic(fmt.Sprintf("failed to mark name flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	set, err := engine.New().GenerateAssessments(assessBirthDate, assessName)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("birth date and name are required")
	}

	if assessPretty {
		observability.NewPrinter(os.Stdout).PrintAssessmentSet(set)
		return nil
	}
	return printJSON(set)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
