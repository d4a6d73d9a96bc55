package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/destinique/backend/internal/types"
)

// calculateBazi derives the heavenly-stem/earthly-branch reading from the
// birth year: stem = year mod 10, branch = year mod 12, narrative variant =
// year mod 3.
func (e *Engine) calculateBazi(t time.Time) types.BaziAssessment {
	year := t.Year()
	stem := heavenlyStems[year%10]
	branch := earthlyBranches[year%12]

	// The element is the second word of the stem ("Yang Wood" -> Wood).
	element := types.ChineseElement(strings.Fields(stem)[1])

	return types.BaziAssessment{
		Type:      stem + " " + branch,
		Element:   element,
		Animal:    branch,
		Narrative: fmt.Sprintf(baziNarratives[year%3], stem+" "+branch),
		Score:     e.rng.Intn(30) + 70,
	}
}

// calculateVedic derives the nakshatra reading from the birth day.
func (e *Engine) calculateVedic(t time.Time) types.VedicAssessment {
	day := t.Day()
	nakshatra := nakshatras[day%len(nakshatras)]

	return types.VedicAssessment{
		Nakshatra:  nakshatra,
		Ruling:     "Moon",
		Narrative:  fmt.Sprintf(vedicNarratives[day%3], nakshatra),
		NerveForce: e.rng.Intn(25) + 75,
	}
}

// calculateNumerology derives the life path, destiny and soul numbers via
// digit reduction (see reduceToDigit). Life path comes from the birth date
// as a DDMMYYYY digit string, destiny from the full name, soul from the
// first name token only.
func (e *Engine) calculateNumerology(t time.Time, name string) types.NumerologyAssessment {
	lifePath := reduceToDigit(t.Format("02012006"))
	destiny := reduceToDigit(upperLetters(name))
	soul := reduceToDigit(strings.ToUpper(firstToken(name)))

	return types.NumerologyAssessment{
		LifePath:        lifePath,
		Destiny:         destiny,
		Soul:            soul,
		Narrative:       fmt.Sprintf(numerologyNarratives[lifePath%3], lifePath, destiny),
		Synchronization: e.rng.Intn(30) + 70,
	}
}

// calculateEnneagram derives the personality type from the zero-based birth
// month. The wing is the numerically adjacent type, direction chosen by
// month parity.
func (e *Engine) calculateEnneagram(t time.Time) types.EnneagramAssessment {
	month := int(t.Month()) - 1 // zero-based, matching the table convention
	sel := enneagramTypes[month%9]

	wing := fmt.Sprintf("%dw%d", sel.number, sel.number-1)
	if month%2 == 0 {
		wing = fmt.Sprintf("%dw%d", sel.number, sel.number+1)
	}

	var narrative string
	switch month % 3 {
	case 0:
		narrative = fmt.Sprintf("Type %d %s embodies %s essence, seeking partners who appreciate authentic emotional depth.", sel.number, sel.name, sel.core)
	case 1:
		narrative = fmt.Sprintf("%s personality radiates %s energy, attracting connections through genuine understanding and mutual growth.", sel.name, sel.core)
	default:
		narrative = fmt.Sprintf("Type %d soul expresses %s nature, fostering relationships built on complementary strengths and values.", sel.number, sel.core)
	}

	return types.EnneagramAssessment{
		Type:      sel.number,
		Name:      sel.name,
		Core:      sel.core,
		Wing:      wing,
		Narrative: narrative,
		Pairing:   e.rng.Intn(25) + 75,
	}
}

// calculateTarot derives the Major Arcana archetype from the birth day.
func (e *Engine) calculateTarot(t time.Time) types.TarotAssessment {
	day := t.Day()
	sel := tarotArchetypes[day%len(tarotArchetypes)]

	return types.TarotAssessment{
		Card:      sel.card,
		Archetype: sel.archetype,
		Element:   "Major Arcana",
		Narrative: fmt.Sprintf(tarotNarratives[day%3], sel.card, sel.archetype),
		Resonance: e.rng.Intn(30) + 70,
	}
}

// calculateHumanDesign derives the energy type from the birth day, plus a
// profile string "{a}/{b}" with a,b in 1-6.
func (e *Engine) calculateHumanDesign(t time.Time) types.HumanDesignAssessment {
	day := t.Day()
	sel := humanDesignTypes[day%len(humanDesignTypes)]

	var narrative string
	switch day % 3 {
	case 0:
		narrative = fmt.Sprintf("%s design with %s authority creates unique energetic signature attracting compatible authentic partnerships.", sel.name, sel.authority)
	case 1:
		narrative = fmt.Sprintf("%s strategy %q guides relationship formation through aligned human design compatibility patterns.", sel.name, sel.strategy)
	default:
		narrative = fmt.Sprintf("%s essence resonates %s authority, manifesting connections through energetic frequency and type compatibility.", sel.name, sel.authority)
	}

	return types.HumanDesignAssessment{
		Type:          sel.name,
		Strategy:      sel.strategy,
		Authority:     sel.authority,
		Profile:       fmt.Sprintf("%d/%d", day%6+1, (day+3)%6+1),
		Narrative:     narrative,
		Compatibility: e.rng.Intn(30) + 70,
	}
}

// calculateGreekGear derives the gear letter from the sum of the name's
// character codes, modulo the gear table length.
func (e *Engine) calculateGreekGear(name string) types.GreekGearAssessment {
	nameValue := 0
	for _, r := range name {
		nameValue += int(r)
	}
	gear := greekGears[nameValue%len(greekGears)]

	return types.GreekGearAssessment{
		Gear:      gear,
		Mechanism: "Synchronized",
		Narrative: fmt.Sprintf(greekGearNarratives[nameValue%3], gear),
		Precision: e.rng.Intn(15) + 85,
		Matching:  e.rng.Intn(20) + 80,
	}
}

// upperLetters uppercases s and strips everything that is not A-Z.
func upperLetters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
