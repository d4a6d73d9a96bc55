package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/observability"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score compatibility between two people",
	Long:  "Generates assessments for two birth date/name pairs and prints the weighted multi-dimensional compatibility report as JSON.",
	RunE:  runMatch,
}

var (
	matchBirthDate          string
	matchName               string
	matchCandidateBirthDate string
	matchCandidateName      string
	matchPretty             bool
)

func init() {
	matchCmd.Flags().StringVar(&matchBirthDate, "birth-date", "", "Subject birth date in YYYY-MM-DD format (required)")
	matchCmd.Flags().StringVar(&matchName, "name", "", "Subject full name (required)")
	matchCmd.Flags().StringVar(&matchCandidateBirthDate, "candidate-birth-date", "", "Candidate birth date in YYYY-MM-DD format (required)")
	matchCmd.Flags().StringVar(&matchCandidateName, "candidate-name", "", "Candidate full name (required)")
	matchCmd.Flags().BoolVar(&matchPretty, "pretty", false, "Print a human-readable summary instead of JSON")

	for _, flag := range []string{"birth-date", "name", "candidate-birth-date", "candidate-name"} {
		if err := matchCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	e := engine.New()

	subject, err := e.GenerateAssessments(matchBirthDate, matchName)
	if err != nil {
		return err
	}
	candidate, err := e.GenerateAssessments(matchCandidateBirthDate, matchCandidateName)
	if err != nil {
		return err
	}

	report, err := e.CalculateCompatibility(subject, candidate)
	if err != nil {
		return err
	}

	if matchPretty {
		observability.NewPrinter(os.Stdout).PrintCompatibilityReport(report)
		return nil
	}
	return printJSON(report)
}
