package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCosmicScore_NullBirthDate(t *testing.T) {
	e := newTestEngine()

	score, err := e.CalculateCosmicScore("", "Alice")
	require.NoError(t, err)
	assert.Nil(t, score)
}

func TestCalculateCosmicScore_InvalidDate(t *testing.T) {
	e := newTestEngine()

	score, err := e.CalculateCosmicScore("15/06/1990", "Alice")
	require.Error(t, err)
	assert.Nil(t, score)

	var invalidErr *InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
}

func TestCalculateCosmicScore_KnownProfile(t *testing.T) {
	e := newTestEngine()

	score, err := e.CalculateCosmicScore("1990-06-15", "Alice")
	require.NoError(t, err)
	require.NotNil(t, score)

	// Gemini (Air +15), Yang Wood (+15), life path 4 is even (+5).
	assert.Equal(t, 85, score.PsychologicalScore)
	// Air (+10), Wood (+10), even life path (+10).
	assert.Equal(t, 80, score.SystemicScore)

	assert.Equal(t, "Wood", string(score.Breakdown.BaziElement))
	assert.Equal(t, "Dog", score.Breakdown.BaziAnimal)
	assert.Equal(t, "Gemini", score.Breakdown.ZodiacSign)
	assert.Equal(t, 4, score.Breakdown.LifePathNumber)
}

func TestCalculateCosmicScore_MasterNumberBonus(t *testing.T) {
	e := newTestEngine()

	// 29031977 digit-sums to 38, which reduces to the master number 11.
	score, err := e.CalculateCosmicScore("1977-03-29", "Alice")
	require.NoError(t, err)
	require.NotNil(t, score)

	assert.Equal(t, 11, score.Breakdown.LifePathNumber)
	assert.Equal(t, "Aries", score.Breakdown.ZodiacSign)
	assert.Equal(t, "Metal", string(score.Breakdown.BaziElement))

	// Aries (Fire +20), Metal (+10), odd master life path (+10).
	assert.Equal(t, 90, score.PsychologicalScore)
	// Fire (+5), Metal (+15), master number (+20).
	assert.Equal(t, 90, score.SystemicScore)
}

func TestCalculateCosmicScore_DefaultName(t *testing.T) {
	e := newTestEngine()

	// The display name only feeds numerology narrative fields; the scores
	// themselves depend on the birth date alone.
	anonymous, err := e.CalculateCosmicScore("1990-06-15", "")
	require.NoError(t, err)
	named, err := e.CalculateCosmicScore("1990-06-15", "Alice")
	require.NoError(t, err)

	assert.Equal(t, named.PsychologicalScore, anonymous.PsychologicalScore)
	assert.Equal(t, named.SystemicScore, anonymous.SystemicScore)
}

func TestCalculateCosmicScore_Bounded(t *testing.T) {
	e := New()
	dates := []string{
		"1970-01-01", "1975-05-05", "1980-08-23", "1984-02-29",
		"1991-10-31", "1996-12-22", "2000-03-21", "2003-07-04",
	}

	for _, d := range dates {
		score, err := e.CalculateCosmicScore(d, "Traveler")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score.PsychologicalScore, 0, d)
		assert.LessOrEqual(t, score.PsychologicalScore, 100, d)
		assert.GreaterOrEqual(t, score.SystemicScore, 0, d)
		assert.LessOrEqual(t, score.SystemicScore, 100, d)
	}
}
