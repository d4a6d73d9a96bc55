// Package engine implements the destinique compatibility scoring engine: a
// deterministic pipeline that derives categorical assessment profiles from a
// birth date and display name, and combines two users' assessments into a
// weighted multi-dimensional compatibility report.
//
// Everything here is pure computation over fixed lookup tables. The only
// non-determinism is the decorative per-assessment strength fields and two
// psychological sub-scores, all drawn from the injectable Rand source so
// tests can pin them.
package engine

import (
	"math/rand"
	"strings"
	"time"

	"github.com/destinique/backend/internal/types"
)

// DateLayout is the wire format for birth dates.
const DateLayout = "2006-01-02"

// Defaults for the user-set physical attributes.
const (
	DefaultBioAge  = 25
	DefaultStamina = 5
)

// Rand is the source of the decorative randomness. Production code uses a
// time-seeded math/rand source; tests inject a fixed one.
type Rand interface {
	Intn(n int) int
}

// Engine evaluates assessments, compatibility reports and cosmic scores.
// It is safe for concurrent use as long as the injected Rand is.
type Engine struct {
	rng Rand
}

// New creates an Engine with a time-seeded random source.
func New() *Engine {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand creates an Engine with the given random source.
func NewWithRand(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// GenerateAssessments derives the full assessment set for one user.
//
// It returns (nil, nil) when either input is blank: the caller's profile is
// incomplete, which is a designed state and not an error. An unparseable
// birth date is a precondition violation and fails fast with
// *InvalidInputError.
func (e *Engine) GenerateAssessments(birthDate, name string) (*types.AssessmentSet, error) {
	if strings.TrimSpace(birthDate) == "" || strings.TrimSpace(name) == "" {
		return nil, nil
	}

	t, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return nil, &InvalidInputError{Field: "birth_date", Value: birthDate, Reason: "must be a valid YYYY-MM-DD date"}
	}

	return &types.AssessmentSet{
		Bazi:        e.calculateBazi(t),
		Vedic:       e.calculateVedic(t),
		Numerology:  e.calculateNumerology(t, name),
		Enneagram:   e.calculateEnneagram(t),
		Tarot:       e.calculateTarot(t),
		HumanDesign: e.calculateHumanDesign(t),
		GreekGear:   e.calculateGreekGear(name),
		Horoscope:   calculateZodiac(t),
		BioAge:      DefaultBioAge,
		Stamina:     DefaultStamina,
	}, nil
}
