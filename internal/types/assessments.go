// Package types provides type definitions for structured data used throughout the destinique backend.
package types

// ChineseElement is one of the five Bazi elements (Wood, Fire, Earth, Metal, Water).
// It is a distinct type from WesternElement so the two element vocabularies
// cannot be used interchangeably.
type ChineseElement string

// Bazi elements.
const (
	Wood  ChineseElement = "Wood"
	Fire  ChineseElement = "Fire"
	Earth ChineseElement = "Earth"
	Metal ChineseElement = "Metal"
	Water ChineseElement = "Water"
)

// WesternElement is one of the four classical zodiac elements.
type WesternElement string

// Zodiac elements.
const (
	ZodiacFire  WesternElement = "Fire"
	ZodiacEarth WesternElement = "Earth"
	ZodiacAir   WesternElement = "Air"
	ZodiacWater WesternElement = "Water"
)

// BaziAssessment is the heavenly-stem/earthly-branch reading derived from the
// birth year.
type BaziAssessment struct {
	Type      string         `json:"type"` // e.g. "Yang Wood Horse"
	Element   ChineseElement `json:"element"`
	Animal    string         `json:"animal"`
	Narrative string         `json:"narrative"`
	Score     int            `json:"score"` // decorative, 70-99
}

// VedicAssessment is the nakshatra reading derived from the birth day.
type VedicAssessment struct {
	Nakshatra  string `json:"nakshatra"`
	Ruling     string `json:"ruling"`
	Narrative  string `json:"narrative"`
	NerveForce int    `json:"nerve_force"` // decorative, 75-99
}

// NumerologyAssessment carries the three digit-reduced numbers. Each value is
// 1-9 or one of the master numbers 11, 22, 33.
type NumerologyAssessment struct {
	LifePath        int    `json:"life_path"`
	Destiny         int    `json:"destiny"`
	Soul            int    `json:"soul"`
	Narrative       string `json:"narrative"`
	Synchronization int    `json:"synchronization"` // decorative, 70-99
}

// EnneagramAssessment is the personality type derived from the birth month.
type EnneagramAssessment struct {
	Type      int    `json:"type"` // 1-9
	Name      string `json:"name"`
	Core      string `json:"core"`
	Wing      string `json:"wing"` // e.g. "4w5"
	Narrative string `json:"narrative"`
	Pairing   int    `json:"pairing"` // decorative, 75-99
}

// TarotAssessment is the Major Arcana archetype derived from the birth day.
type TarotAssessment struct {
	Card      string `json:"card"`
	Archetype string `json:"archetype"`
	Element   string `json:"element"` // always "Major Arcana"
	Narrative string `json:"narrative"`
	Resonance int    `json:"resonance"` // decorative, 70-99
}

// HumanDesignAssessment is the energy-type reading derived from the birth day.
type HumanDesignAssessment struct {
	Type          string `json:"type"`
	Strategy      string `json:"strategy"`
	Authority     string `json:"authority"`
	Profile       string `json:"profile"` // "{a}/{b}", a,b in 1-6
	Narrative     string `json:"narrative"`
	Compatibility int    `json:"compatibility"` // decorative, 70-99
}

// GreekGearAssessment is the sync-dimension reading derived from the display
// name's character codes.
type GreekGearAssessment struct {
	Gear      string `json:"gear"`
	Mechanism string `json:"mechanism"` // always "Synchronized"
	Narrative string `json:"narrative"`
	Precision int    `json:"precision"` // decorative, 85-99
	Matching  int    `json:"matching"`  // decorative, 80-99
}

// ZodiacAssessment is the Western sun sign plus its classical element. It
// feeds the horoscope dimension of the compatibility breakdown.
type ZodiacAssessment struct {
	Sign    string         `json:"sign"`
	Element WesternElement `json:"element"`
}

// AssessmentSet is the full collection of derived readings for one user, plus
// the two user-set physical attributes. A set is either fully populated or
// absent (nil pointer); partial sets are not a supported state.
type AssessmentSet struct {
	Bazi        BaziAssessment        `json:"bazi"`
	Vedic       VedicAssessment       `json:"vedic"`
	Numerology  NumerologyAssessment  `json:"numerology"`
	Enneagram   EnneagramAssessment   `json:"enneagram"`
	Tarot       TarotAssessment       `json:"tarot"`
	HumanDesign HumanDesignAssessment `json:"human_design"`
	GreekGear   GreekGearAssessment   `json:"greek_gear"`
	Horoscope   ZodiacAssessment      `json:"horoscope"`

	// BioAge and Stamina are supplied by the user, not derived from the
	// birth date. Defaults: 25 and 5.
	BioAge  int `json:"bio_age"`
	Stamina int `json:"stamina"`
}
