// Package observability provides formatted output utilities for the CLI's
// human-readable mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/destinique/backend/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for pretty mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAssessmentSet outputs a human-readable summary of a user's readings.
func (p *Printer) PrintAssessmentSet(set *types.AssessmentSet) {
	if set == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bazi:         %s (%s)\n", set.Bazi.Type, set.Bazi.Element))
	sb.WriteString(fmt.Sprintf("Vedic:        %s, ruled by %s\n", set.Vedic.Nakshatra, set.Vedic.Ruling))
	sb.WriteString(fmt.Sprintf("Numerology:   life path %d, destiny %d, soul %d\n",
		set.Numerology.LifePath, set.Numerology.Destiny, set.Numerology.Soul))
	sb.WriteString(fmt.Sprintf("Enneagram:    type %d %s (%s)\n", set.Enneagram.Type, set.Enneagram.Name, set.Enneagram.Wing))
	sb.WriteString(fmt.Sprintf("Tarot:        %s\n", set.Tarot.Card))
	sb.WriteString(fmt.Sprintf("Human Design: %s, profile %s\n", set.HumanDesign.Type, set.HumanDesign.Profile))
	sb.WriteString(fmt.Sprintf("Greek Gear:   %s\n", set.GreekGear.Gear))
	sb.WriteString(fmt.Sprintf("Zodiac:       %s (%s)\n", set.Horoscope.Sign, set.Horoscope.Element))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Bio age %d, stamina %d", set.BioAge, set.Stamina))

	p.printBox("Assessments", sb.String())
}

// PrintCompatibilityReport outputs a human-readable compatibility breakdown,
// dimensions sorted by score descending.
func (p *Printer) PrintCompatibilityReport(report *types.CompatibilityReport) {
	if report == nil {
		return
	}

	keys := make([]string, 0, len(report.Breakdown))
	for k := range report.Breakdown {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := report.Breakdown[keys[i]].Score, report.Breakdown[keys[j]].Score
		if a != b {
			return a > b
		}
		return keys[i] < keys[j]
	})

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-14s %3d\n", k, report.Breakdown[k].Score))
	}
	if len(keys) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(report.Narrative)

	p.printBox(fmt.Sprintf("Compatibility: %d/100", report.Overall), sb.String())
}

// PrintCosmicScore outputs a human-readable cosmic blueprint summary.
func (p *Printer) PrintCosmicScore(score *types.CosmicScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Psychological: %d\n", score.PsychologicalScore))
	sb.WriteString(fmt.Sprintf("Systemic:      %d\n", score.SystemicScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Bazi:      %s %s\n", score.Breakdown.BaziElement, score.Breakdown.BaziAnimal))
	sb.WriteString(fmt.Sprintf("Zodiac:    %s\n", score.Breakdown.ZodiacSign))
	sb.WriteString(fmt.Sprintf("Life path: %d", score.Breakdown.LifePathNumber))

	p.printBox("Cosmic Blueprint", sb.String())
}
