package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinique/backend/internal/engine"
	"github.com/destinique/backend/internal/types"
)

func TestPrintAssessmentSet(t *testing.T) {
	set, err := engine.New().GenerateAssessments("1990-06-15", "Alice Wong")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintAssessmentSet(set)

	out := buf.String()
	assert.Contains(t, out, "Assessments")
	assert.Contains(t, out, "Yang Wood Dog")
	assert.Contains(t, out, "Gemini")
}

func TestPrintAssessmentSet_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAssessmentSet(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCompatibilityReport(t *testing.T) {
	report := &types.CompatibilityReport{
		Overall: 81,
		Breakdown: map[string]types.DimensionScore{
			types.DimensionPhysical:   {Score: 100, Narrative: "x"},
			types.DimensionNumerology: {Score: 90, Narrative: "x"},
			types.DimensionHoroscope:  {Score: 60, Narrative: "x"},
		},
		Narrative: "Strong Compatibility - Destiny has brought you together!",
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompatibilityReport(report)

	out := buf.String()
	assert.Contains(t, out, "Compatibility: 81/100")
	assert.Contains(t, out, "physical")
	assert.Contains(t, out, "Strong Compatibility")

	// Highest score listed first
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("physical")), bytes.Index(buf.Bytes(), []byte("horoscope")))
}

func TestPrintCosmicScore(t *testing.T) {
	score, err := engine.New().CalculateCosmicScore("1990-06-15", "Alice Wong")
	require.NoError(t, err)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCosmicScore(score)

	out := buf.String()
	assert.Contains(t, out, "Cosmic Blueprint")
	assert.Contains(t, out, "Psychological: 85")
	assert.Contains(t, out, "Gemini")
}
