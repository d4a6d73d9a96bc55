package types

// Report dimension keys used in CompatibilityReport.Breakdown.
const (
	DimensionPhysical      = "physical"
	DimensionMetaphysical  = "metaphysical"
	DimensionPsychological = "psychological"
	DimensionSync          = "sync"
	DimensionHoroscope     = "horoscope"
	DimensionNumerology    = "numerology"
	DimensionHumanDesign   = "human_design"
)

// DimensionScore is one entry of the compatibility breakdown.
type DimensionScore struct {
	Score     int    `json:"score"` // 0-100
	Narrative string `json:"narrative"`
}

// CompatibilityReport is the pairwise scoring output for an ordered
// (subject, candidate) pair. Reports are ephemeral: recomputed on demand and
// never stored, though the application layer persists Overall.
type CompatibilityReport struct {
	Overall   int                       `json:"overall"` // 0-100
	Breakdown map[string]DimensionScore `json:"breakdown"`
	Narrative string                    `json:"narrative"`
}

// CosmicBreakdown echoes the categorical values that fed the cosmic score.
type CosmicBreakdown struct {
	BaziElement    ChineseElement `json:"bazi_element"`
	BaziAnimal     string         `json:"bazi_animal"`
	ZodiacSign     string         `json:"zodiac_sign"`
	LifePathNumber int            `json:"life_path_number"`
}

// CosmicScore is the single-user "cosmic blueprint" view: two independent
// 0-100 scores over the psychological and systemic dimensions.
type CosmicScore struct {
	PsychologicalScore int             `json:"psychological_score"`
	SystemicScore      int             `json:"systemic_score"`
	Breakdown          CosmicBreakdown `json:"breakdown"`
}
