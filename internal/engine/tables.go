package engine

// Fixed label tables. These are process-wide constant data: every assessment
// kind indexes into its table with an integer derived from the birth date or
// name via modulo arithmetic against the table length.

var heavenlyStems = []string{
	"Yang Wood", "Yin Wood", "Yang Fire", "Yin Fire", "Yang Earth",
	"Yin Earth", "Yang Metal", "Yin Metal", "Yang Water", "Yin Water",
}

var earthlyBranches = []string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha",
}

type enneagramType struct {
	number int
	name   string
	core   string
}

var enneagramTypes = []enneagramType{
	{1, "The Reformer", "Principled and purposeful"},
	{2, "The Helper", "Generous and caring"},
	{3, "The Achiever", "Adaptable and success-oriented"},
	{4, "The Individualist", "Sensitive and creative"},
	{5, "The Investigator", "Perceptive and innovative"},
	{6, "The Loyalist", "Committed and security-oriented"},
	{7, "The Enthusiast", "Spontaneous and versatile"},
	{8, "The Challenger", "Powerful and decisive"},
	{9, "The Peacemaker", "Receptive and agreeable"},
}

type tarotArchetype struct {
	card      string
	archetype string
}

var tarotArchetypes = []tarotArchetype{
	{"The Magician", "Manifestation and power"},
	{"The High Priestess", "Intuition and mystery"},
	{"The Empress", "Abundance and nurturing"},
	{"The Emperor", "Authority and structure"},
	{"The Lovers", "Union and choices"},
	{"The Chariot", "Willpower and determination"},
	{"Strength", "Courage and compassion"},
	{"The Star", "Hope and inspiration"},
}

type humanDesignType struct {
	name      string
	strategy  string
	authority string
}

var humanDesignTypes = []humanDesignType{
	{"Manifestor", "To inform", "Emotional"},
	{"Generator", "To respond", "Sacral"},
	{"Manifesting Generator", "To respond and inform", "Sacral"},
	{"Projector", "To wait for invitation", "Splenic"},
	{"Reflector", "To wait lunar cycle", "Lunar"},
}

var greekGears = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
}

// Narrative template pools. Every kind selects among exactly three variants
// using its primary derivation index modulo 3.

var baziNarratives = []string{
	"%s soul radiates balance, seeking harmony through transformative cosmic alignment and spiritual depth.",
	"%s essence embodies wisdom, nurturing connections through intuitive understanding and celestial resonance patterns.",
	"%s spirit channels energy, manifesting destiny through powerful elemental forces and universal guidance.",
}

var vedicNarratives = []string{
	"%s nakshatra bestows divine wisdom, illuminating pathways toward profound soul connections and spiritual awakening.",
	"%s energy resonates deeply, fostering relationships built on karmic understanding and celestial harmonious vibrations.",
	"%s influence channels cosmic forces, creating magnetic attraction through ancient Vedic nerve force alignment.",
}

var numerologyNarratives = []string{
	"Life path %d and destiny %d merge beautifully, creating harmonious synchronization for deep soul connections.",
	"Numbers %d and %d vibrate powerfully, attracting relationships aligned with purpose and spiritual growth journey.",
	"Numerical essence %d/%d radiates magnetic energy, manifesting connections through universal mathematical divine patterns.",
}

var tarotNarratives = []string{
	"%s archetype embodies %s, creating powerful resonance with kindred spirits seeking transformation.",
	"Guided by %s energy of %s, attracting relationships aligned with destined spiritual purpose.",
	"%s essence channels %s, manifesting connections through mystical archetypal cosmic resonance patterns.",
}

var greekGearNarratives = []string{
	"%s gear configuration optimizes relationship mechanics through precise compatibility alignment and synchronized connection protocols.",
	"%s mechanism channels partnership dynamics, creating harmonious matching precision through Greek geometric compatibility patterns.",
	"%s system resonates perfectly, establishing relationships through mathematically calculated Greek gear matching precision algorithms.",
}
