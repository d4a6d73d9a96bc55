package engine

import (
	"fmt"
	"math"

	"github.com/destinique/backend/internal/types"
)

// Weights of the seven report dimensions. They sum to 1.00.
const (
	physicalWeight      = 0.10
	metaphysicalWeight  = 0.15
	psychologicalWeight = 0.15
	syncWeight          = 0.15
	horoscopeWeight     = 0.15
	numerologyWeight    = 0.15
	humanDesignWeight   = 0.15
)

// MissingAssessmentsNarrative is returned by the degenerate report when
// either side has no assessment set.
const MissingAssessmentsNarrative = "Complete your assessments to see compatibility scores."

// The directed generating cycle Wood -> Fire -> Earth -> Metal -> Water -> Wood.
var generatingCycle = map[types.ChineseElement]types.ChineseElement{
	types.Wood:  types.Fire,
	types.Fire:  types.Earth,
	types.Earth: types.Metal,
	types.Metal: types.Water,
	types.Water: types.Wood,
}

// Complementary human design pairs, matched in either direction.
var humanDesignPairs = map[string]string{
	"Generator":  "Projector",
	"Manifestor": "Reflector",
}

var westernElementOrder = map[types.WesternElement]int{
	types.ZodiacFire:  0,
	types.ZodiacEarth: 1,
	types.ZodiacAir:   2,
	types.ZodiacWater: 3,
}

// CalculateCompatibility combines two users' assessment sets into a weighted
// multi-dimensional report for the ordered (subject, candidate) pair.
//
// A nil set on either side yields the degenerate report (overall 0, empty
// breakdown, fixed narrative) without error. A present set with a missing
// primary label fails fast with *IncompleteDataError.
func (e *Engine) CalculateCompatibility(subject, candidate *types.AssessmentSet) (*types.CompatibilityReport, error) {
	if subject == nil || candidate == nil {
		return &types.CompatibilityReport{
			Overall:   0,
			Breakdown: map[string]types.DimensionScore{},
			Narrative: MissingAssessmentsNarrative,
		}, nil
	}

	for _, set := range []*types.AssessmentSet{subject, candidate} {
		if err := validateSet(set); err != nil {
			return nil, err
		}
	}

	bioAgeDiff := abs(subject.BioAge - candidate.BioAge)
	staminaDiff := abs(subject.Stamina - candidate.Stamina)
	physical := clamp(100 - bioAgeDiff*2 - staminaDiff*5)

	metaphysical := roundHalf(baziCompatibility(subject.Bazi, candidate.Bazi) +
		vedicCompatibility(subject.Vedic, candidate.Vedic))

	// No real pairwise enneagram/tarot model exists; these two sub-scores
	// are advisory random draws in fixed bands.
	enneagram := e.rng.Intn(25) + 70
	tarot := e.rng.Intn(20) + 75
	psychological := roundHalf(enneagram + tarot)

	// Different gears mesh better, like complementary machine parts.
	sync := 85
	if subject.GreekGear.Gear == candidate.GreekGear.Gear {
		sync = 60
	}

	horoscope := e.horoscopeCompatibility(subject.Horoscope, candidate.Horoscope)
	numerology := numerologyCompatibility(subject.Numerology, candidate.Numerology)
	humanDesign := humanDesignCompatibility(subject.HumanDesign, candidate.HumanDesign)

	overall := clamp(int(math.Round(
		float64(physical)*physicalWeight +
			float64(metaphysical)*metaphysicalWeight +
			float64(psychological)*psychologicalWeight +
			float64(sync)*syncWeight +
			float64(horoscope)*horoscopeWeight +
			float64(numerology)*numerologyWeight +
			float64(humanDesign)*humanDesignWeight)))

	breakdown := map[string]types.DimensionScore{
		types.DimensionPhysical: {
			Score:     physical,
			Narrative: fmt.Sprintf("Physical resonance based on bio-age proximity (%d yrs) and energy stamina alignment.", bioAgeDiff),
		},
		types.DimensionMetaphysical: {
			Score:     metaphysical,
			Narrative: "Cosmic blueprint alignment through Bazi elements and Vedic nerve force connection.",
		},
		types.DimensionPsychological: {
			Score:     psychological,
			Narrative: "Deep personality resonance combining Enneagram motivations and Archetypal wisdom.",
		},
		types.DimensionSync: {
			Score:     sync,
			Narrative: "Operational harmony derived from Greek Gear mechanics precision.",
		},
		types.DimensionHoroscope: {
			Score:     horoscope,
			Narrative: "Astrological sign compatibility based on elemental and modal interactions.",
		},
		types.DimensionNumerology: {
			Score:     numerology,
			Narrative: "Life path vibration synchronization and destiny number harmony.",
		},
		types.DimensionHumanDesign: {
			Score:     humanDesign,
			Narrative: "Energetic type strategy and authority alignment.",
		},
	}

	return &types.CompatibilityReport{
		Overall:   overall,
		Breakdown: breakdown,
		Narrative: overallNarrative(overall),
	}, nil
}

// validateSet checks that all seven assessment kinds carry their primary
// label. Sets produced by GenerateAssessments always pass; hand-built sets
// arriving over the API may not.
func validateSet(set *types.AssessmentSet) error {
	switch {
	case set.Bazi.Element == "":
		return &IncompleteDataError{Kind: "bazi"}
	case set.Vedic.Nakshatra == "":
		return &IncompleteDataError{Kind: "vedic"}
	case set.Numerology.LifePath == 0:
		return &IncompleteDataError{Kind: "numerology"}
	case set.Enneagram.Type == 0:
		return &IncompleteDataError{Kind: "enneagram"}
	case set.Tarot.Card == "":
		return &IncompleteDataError{Kind: "tarot"}
	case set.HumanDesign.Type == "":
		return &IncompleteDataError{Kind: "human_design"}
	case set.GreekGear.Gear == "":
		return &IncompleteDataError{Kind: "greek_gear"}
	}
	return nil
}

// baziCompatibility scores two Bazi elements: same element 75, a generating
// pair 90, anything else 60.
func baziCompatibility(a, b types.BaziAssessment) int {
	if a.Element == b.Element {
		return 75
	}
	if generatingCycle[a.Element] == b.Element {
		return 90
	}
	return 60
}

// vedicCompatibility scores nerve force proximity, clamped to [50, 100].
func vedicCompatibility(a, b types.VedicAssessment) int {
	score := 100 - abs(a.NerveForce-b.NerveForce)
	if score < 50 {
		return 50
	}
	if score > 100 {
		return 100
	}
	return score
}

// horoscopeCompatibility scores the distance between the two zodiac
// elements: same element 90, opposite pair 85, adjacent a random 60-69.
// A set without a zodiac element falls back to the neutral 50.
func (e *Engine) horoscopeCompatibility(a, b types.ZodiacAssessment) int {
	if a.Element == "" || b.Element == "" {
		return 50
	}
	diff := abs(westernElementOrder[a.Element] - westernElementOrder[b.Element])
	switch diff {
	case 0:
		return 90
	case 2:
		return 85
	default:
		return 60 + e.rng.Intn(10)
	}
}

// numerologyCompatibility scores life path distance: within 1 scores 90,
// further apart decays by 5 per step, floored at 0.
func numerologyCompatibility(a, b types.NumerologyAssessment) int {
	diff := abs(a.LifePath - b.LifePath)
	if diff <= 1 {
		return 90
	}
	return clamp(100 - diff*5)
}

// humanDesignCompatibility scores the complementary-pair table in either
// direction; everything else is a solid 70.
func humanDesignCompatibility(a, b types.HumanDesignAssessment) int {
	if humanDesignPairs[a.Type] == b.Type || humanDesignPairs[b.Type] == a.Type {
		return 95
	}
	return 70
}

// overallNarrative buckets the overall score into one of four fixed strings.
func overallNarrative(score int) string {
	switch {
	case score >= 85:
		return "Exceptional Match! Your cosmic blueprints align across multiple dimensions, suggesting profound potential for a transformative union."
	case score >= 70:
		return "Strong Compatibility. You share significant resonance in key areas, providing a solid foundation for growth and connection."
	case score >= 50:
		return "Moderate Harmony. While there are cosmic differences, these friction points can serve as powerful catalysts for mutual learning."
	default:
		return "Challenging Alignment. This connection offers deep karmic lessons through overcoming significant energetic differences."
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// clamp bounds n to [0, 100].
func clamp(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

// roundHalf averages two sub-scores with round-half-up semantics.
func roundHalf(sum int) int {
	return int(math.Round(float64(sum) / 2))
}
