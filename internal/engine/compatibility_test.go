package engine

import (
	"testing"

	"github.com/destinique/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedSet(t *testing.T, e *Engine, birthDate, name string) *types.AssessmentSet {
	t.Helper()
	set, err := e.GenerateAssessments(birthDate, name)
	require.NoError(t, err)
	require.NotNil(t, set)
	return set
}

func TestCalculateCompatibility_DegeneratePath(t *testing.T) {
	e := newTestEngine()
	set := generatedSet(t, e, "1990-06-15", "Alice Wong")

	for _, pair := range [][2]*types.AssessmentSet{
		{nil, set},
		{set, nil},
		{nil, nil},
	} {
		report, err := e.CalculateCompatibility(pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, 0, report.Overall)
		assert.Empty(t, report.Breakdown)
		assert.Equal(t, MissingAssessmentsNarrative, report.Narrative)
	}
}

func TestCalculateCompatibility_IncompleteSet(t *testing.T) {
	e := newTestEngine()
	healthy := generatedSet(t, e, "1990-06-15", "Alice Wong")

	broken := *healthy
	broken.Tarot.Card = ""

	_, err := e.CalculateCompatibility(&broken, healthy)
	require.Error(t, err)

	var incomplete *IncompleteDataError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "tarot", incomplete.Kind)

	// Same failure from the candidate side.
	_, err = e.CalculateCompatibility(healthy, &broken)
	require.Error(t, err)
}

func TestCalculateCompatibility_KnownPair(t *testing.T) {
	e := newTestEngine()
	alice := generatedSet(t, e, "1990-06-15", "Alice Wong")
	bob := generatedSet(t, e, "1992-11-08", "Bob Stone")

	report, err := e.CalculateCompatibility(alice, bob)
	require.NoError(t, err)

	// Identical defaults for bio-age and stamina.
	assert.Equal(t, 100, report.Breakdown[types.DimensionPhysical].Score)
	// Wood generates Fire (90); pinned nerve forces are equal (100).
	assert.Equal(t, 95, report.Breakdown[types.DimensionMetaphysical].Score)
	// Pinned random draws: enneagram 70, tarot 75, rounded up.
	assert.Equal(t, 73, report.Breakdown[types.DimensionPsychological].Score)
	// Beta vs Epsilon: different gears mesh better.
	assert.Equal(t, 85, report.Breakdown[types.DimensionSync].Score)
	// Gemini (Air) vs Scorpio (Water): adjacent elements, pinned draw.
	assert.Equal(t, 60, report.Breakdown[types.DimensionHoroscope].Score)
	// Both life paths reduce to 4.
	assert.Equal(t, 90, report.Breakdown[types.DimensionNumerology].Score)
	// Manifestor vs Projector is not a complementary pair.
	assert.Equal(t, 70, report.Breakdown[types.DimensionHumanDesign].Score)

	assert.Equal(t, 81, report.Overall)
	assert.Contains(t, report.Narrative, "Strong Compatibility")
}

func TestCalculateCompatibility_Symmetry(t *testing.T) {
	// With a pinned random source both orderings see identical draws, so
	// the whole report is symmetric.
	e := newTestEngine()
	a := generatedSet(t, e, "1988-02-29", "Priya Nair")
	b := generatedSet(t, e, "1995-09-03", "Daniel Okafor")

	ab, err := e.CalculateCompatibility(a, b)
	require.NoError(t, err)
	ba, err := e.CalculateCompatibility(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Overall, ba.Overall)
	for _, dim := range []string{
		types.DimensionPhysical, types.DimensionMetaphysical, types.DimensionSync,
		types.DimensionNumerology, types.DimensionHumanDesign,
	} {
		assert.Equal(t, ab.Breakdown[dim].Score, ba.Breakdown[dim].Score, dim)
	}
}

func TestCalculateCompatibility_RangeInvariants(t *testing.T) {
	e := New()
	profiles := []struct{ birthDate, name string }{
		{"1970-01-01", "A"},
		{"1984-07-31", "Somchai P"},
		{"1999-12-22", "Kanya Wattana"},
		{"2001-03-03", "Lena Petrova"},
	}

	for _, pa := range profiles {
		for _, pb := range profiles {
			a := generatedSet(t, e, pa.birthDate, pa.name)
			b := generatedSet(t, e, pb.birthDate, pb.name)
			a.BioAge, a.Stamina = 62, 1
			b.BioAge, b.Stamina = 19, 10

			report, err := e.CalculateCompatibility(a, b)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, report.Overall, 0)
			assert.LessOrEqual(t, report.Overall, 100)
			for dim, entry := range report.Breakdown {
				assert.GreaterOrEqual(t, entry.Score, 0, dim)
				assert.LessOrEqual(t, entry.Score, 100, dim)
			}
		}
	}
}

func TestPhysicalScore_Formula(t *testing.T) {
	e := newTestEngine()
	a := generatedSet(t, e, "1990-06-15", "Alice Wong")
	b := generatedSet(t, e, "1992-11-08", "Bob Stone")

	a.BioAge, a.Stamina = 30, 8
	b.BioAge, b.Stamina = 24, 3

	report, err := e.CalculateCompatibility(a, b)
	require.NoError(t, err)

	// 100 - 2*6 - 5*5 = 63.
	assert.Equal(t, 63, report.Breakdown[types.DimensionPhysical].Score)
	assert.Contains(t, report.Breakdown[types.DimensionPhysical].Narrative, "(6 yrs)")

	// Extreme differences clamp at zero instead of going negative.
	a.BioAge, a.Stamina = 99, 10
	b.BioAge, b.Stamina = 18, 1
	report, err = e.CalculateCompatibility(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Breakdown[types.DimensionPhysical].Score)
}

func TestBaziCompatibility_GeneratingCycle(t *testing.T) {
	cases := []struct {
		a, b types.ChineseElement
		want int
	}{
		{types.Wood, types.Wood, 75},
		{types.Wood, types.Fire, 90},
		{types.Fire, types.Earth, 90},
		{types.Earth, types.Metal, 90},
		{types.Metal, types.Water, 90},
		{types.Water, types.Wood, 90},
		{types.Fire, types.Wood, 60}, // reverse direction is not generating
		{types.Wood, types.Metal, 60},
	}

	for _, tc := range cases {
		got := baziCompatibility(
			types.BaziAssessment{Element: tc.a},
			types.BaziAssessment{Element: tc.b},
		)
		assert.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
	}
}

func TestVedicCompatibility_Clamped(t *testing.T) {
	v := func(force int) types.VedicAssessment { return types.VedicAssessment{NerveForce: force} }

	assert.Equal(t, 100, vedicCompatibility(v(80), v(80)))
	assert.Equal(t, 90, vedicCompatibility(v(85), v(95)))
	assert.Equal(t, 50, vedicCompatibility(v(0), v(99))) // floor at 50
}

func TestNumerologyCompatibility_Distance(t *testing.T) {
	n := func(lp int) types.NumerologyAssessment { return types.NumerologyAssessment{LifePath: lp} }

	assert.Equal(t, 90, numerologyCompatibility(n(4), n(4)))
	assert.Equal(t, 90, numerologyCompatibility(n(4), n(5)))
	assert.Equal(t, 90, numerologyCompatibility(n(5), n(4)))
	assert.Equal(t, 60, numerologyCompatibility(n(9), n(1)))
	// Master numbers stretch the distance; the score floors at zero.
	assert.Equal(t, 0, numerologyCompatibility(n(33), n(1)))
}

func TestHumanDesignCompatibility_Pairs(t *testing.T) {
	hd := func(name string) types.HumanDesignAssessment { return types.HumanDesignAssessment{Type: name} }

	assert.Equal(t, 95, humanDesignCompatibility(hd("Generator"), hd("Projector")))
	assert.Equal(t, 95, humanDesignCompatibility(hd("Projector"), hd("Generator")))
	assert.Equal(t, 95, humanDesignCompatibility(hd("Manifestor"), hd("Reflector")))
	assert.Equal(t, 70, humanDesignCompatibility(hd("Generator"), hd("Generator")))
	assert.Equal(t, 70, humanDesignCompatibility(hd("Manifesting Generator"), hd("Projector")))
}

func TestHoroscopeCompatibility_ElementDistance(t *testing.T) {
	e := New()
	z := func(el types.WesternElement) types.ZodiacAssessment { return types.ZodiacAssessment{Element: el} }

	assert.Equal(t, 90, e.horoscopeCompatibility(z(types.ZodiacFire), z(types.ZodiacFire)))
	assert.Equal(t, 85, e.horoscopeCompatibility(z(types.ZodiacFire), z(types.ZodiacAir)))
	assert.Equal(t, 85, e.horoscopeCompatibility(z(types.ZodiacEarth), z(types.ZodiacWater)))

	// Fire vs Water sits at distance 3: a random draw in [60, 70).
	for i := 0; i < 20; i++ {
		got := e.horoscopeCompatibility(z(types.ZodiacFire), z(types.ZodiacWater))
		assert.GreaterOrEqual(t, got, 60)
		assert.Less(t, got, 70)
	}

	// Missing zodiac data falls back to the neutral midpoint.
	assert.Equal(t, 50, e.horoscopeCompatibility(types.ZodiacAssessment{}, z(types.ZodiacFire)))
}

func TestOverallNarrative_Buckets(t *testing.T) {
	assert.Contains(t, overallNarrative(92), "Exceptional Match")
	assert.Contains(t, overallNarrative(85), "Exceptional Match")
	assert.Contains(t, overallNarrative(84), "Strong Compatibility")
	assert.Contains(t, overallNarrative(70), "Strong Compatibility")
	assert.Contains(t, overallNarrative(69), "Moderate Harmony")
	assert.Contains(t, overallNarrative(50), "Moderate Harmony")
	assert.Contains(t, overallNarrative(49), "Challenging Alignment")
	assert.Contains(t, overallNarrative(0), "Challenging Alignment")
}
