package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/observability"
)

var cosmicCmd = &cobra.Command{
	Use:   "cosmic",
	Short: "Calculate the cosmic blueprint scores for a birth date",
	Long:  "Computes the psychological and systemic cosmic scores from zodiac element, Bazi element and life path number, and prints them as JSON.",
	RunE:  runCosmic,
}

var (
	cosmicBirthDate string
	cosmicName      string
	cosmicPretty    bool
)

func init() {
	cosmicCmd.Flags().StringVarP(&cosmicBirthDate, "birth-date", "d", "", "Birth date in YYYY-MM-DD format (required)")
	cosmicCmd.Flags().StringVarP(&cosmicName, "name", "n", "", "Full name (optional)")
	cosmicCmd.Flags().BoolVar(&cosmicPretty, "pretty", false, "Print a human-readable summary instead of JSON")

	if err := cosmicCmd.MarkFlagRequired("birth-date"); err != nil {
		panic(fmt.Sprintf("failed to mark birth-date flag as required: %v", err))
	}

	rootCmd.AddCommand(cosmicCmd)
}

func runCosmic(_ *cobra.Command, _ []string) error {
	score, err := engine.New().CalculateCosmicScore(cosmicBirthDate, cosmicName)
	if err != nil {
		return err
	}
	if score == nil {
		return fmt.Errorf("birth date is required")
	}

	if cosmicPretty {
		observability.NewPrinter(os.Stdout).PrintCosmicScore(score)
		return nil
	}
	return printJSON(score)
}
