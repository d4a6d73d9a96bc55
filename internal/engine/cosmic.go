package engine

import (
	"strings"
	"time"

	"github.com/destinique/backend/internal/types"
)

// DefaultCosmicName stands in when the caller supplies no display name for
// the cosmic blueprint view.
const DefaultCosmicName = "Cosmic Traveler"

// CalculateCosmicScore derives the single-user cosmic blueprint: two
// independent 0-100 scores over the psychological (self-expression) and
// systemic (structural harmony) dimensions, each built from a base of 50
// plus fixed bonuses keyed by zodiac element, Bazi element and life path.
//
// Returns (nil, nil) when birthDate is blank; an unparseable date fails
// fast with *InvalidInputError.
func (e *Engine) CalculateCosmicScore(birthDate, name string) (*types.CosmicScore, error) {
	if strings.TrimSpace(birthDate) == "" {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultCosmicName
	}

	t, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return nil, &InvalidInputError{Field: "birth_date", Value: birthDate, Reason: "must be a valid YYYY-MM-DD date"}
	}

	bazi := e.calculateBazi(t)
	numerology := e.calculateNumerology(t, name)
	sign := ZodiacSign(t)
	element := zodiacElements[sign]

	// Psychological: favors outward expression. Fire/Air signs, Fire/Wood
	// Bazi elements and odd life paths score highest.
	psych := 50
	switch element {
	case types.ZodiacFire:
		psych += 20
	case types.ZodiacAir:
		psych += 15
	case types.ZodiacWater:
		psych += 10
	case types.ZodiacEarth:
		psych += 5
	}
	switch bazi.Element {
	case types.Fire, types.Wood:
		psych += 15
	case types.Metal, types.Water:
		psych += 10
	case types.Earth:
		psych += 5
	}
	if numerology.LifePath%2 != 0 {
		psych += 10
	} else {
		psych += 5
	}

	// Systemic: favors stability and adaptability. Earth/Water signs,
	// Earth/Metal Bazi elements and even or master-number life paths score
	// highest.
	sys := 50
	switch element {
	case types.ZodiacEarth:
		sys += 20
	case types.ZodiacWater:
		sys += 15
	case types.ZodiacAir:
		sys += 10
	case types.ZodiacFire:
		sys += 5
	}
	switch bazi.Element {
	case types.Earth, types.Metal:
		sys += 15
	case types.Water, types.Wood:
		sys += 10
	case types.Fire:
		sys += 5
	}
	switch {
	case isMasterNumber(numerology.LifePath):
		sys += 20
	case numerology.LifePath%2 == 0:
		sys += 10
	default:
		sys += 5
	}

	return &types.CosmicScore{
		PsychologicalScore: clamp(psych),
		SystemicScore:      clamp(sys),
		Breakdown: types.CosmicBreakdown{
			BaziElement:    bazi.Element,
			BaziAnimal:     bazi.Animal,
			ZodiacSign:     sign,
			LifePathNumber: numerology.LifePath,
		},
	}, nil
}
