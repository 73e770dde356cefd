package catalogue

// TermGroup is the semantic sub-group of an ambiguous term. It selects
// the remediation template for issues raised on that term.
type TermGroup string

const (
	GroupPerformance    TermGroup = "performance"
	GroupUserExperience TermGroup = "user_experience"
	GroupQuality        TermGroup = "quality"
	GroupScalability    TermGroup = "scalability"
	GroupSecurity       TermGroup = "security"
	GroupUncertainty    TermGroup = "uncertainty"
	GroupApproximation  TermGroup = "approximation"
	GroupGeneral        TermGroup = "general"
)

// Language tags the language a term belongs to
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
)

// AmbiguousTerm is one dictionary entry of the ambiguous-term set.
// Terms are flagged by membership alone, independent of context.
type AmbiguousTerm struct {
	Term     string
	Group    TermGroup
	Language Language
}

// ambiguousTerms is the bilingual term table. Order is fixed so issue
// discovery order is deterministic for identical documents. Adding a
// language means adding rows here, the scanning logic never changes.
var ambiguousTerms = []AmbiguousTerm{
	// Performance
	{"fast", GroupPerformance, LanguageEnglish},
	{"quick", GroupPerformance, LanguageEnglish},
	{"soon", GroupGeneral, LanguageEnglish},
	{"efficient", GroupGeneral, LanguageEnglish},
	{"speedy", GroupGeneral, LanguageEnglish},
	{"rapid", GroupGeneral, LanguageEnglish},
	{"swift", GroupGeneral, LanguageEnglish},
	{"cepat", GroupPerformance, LanguageIndonesian},
	{"mudah", GroupGeneral, LanguageIndonesian},
	{"efisien", GroupPerformance, LanguageIndonesian},
	{"lancar", GroupGeneral, LanguageIndonesian},

	// User experience
	{"user-friendly", GroupUserExperience, LanguageEnglish},
	{"intuitive", GroupUserExperience, LanguageEnglish},
	{"easy", GroupGeneral, LanguageEnglish},
	{"simple", GroupGeneral, LanguageEnglish},
	{"clear", GroupGeneral, LanguageEnglish},
	{"obvious", GroupGeneral, LanguageEnglish},
	{"mudah digunakan", GroupUserExperience, LanguageIndonesian},
	{"ramah pengguna", GroupUserExperience, LanguageIndonesian},
	{"sederhana", GroupGeneral, LanguageIndonesian},
	{"jelas", GroupGeneral, LanguageIndonesian},

	// Quality
	{"good", GroupQuality, LanguageEnglish},
	{"great", GroupQuality, LanguageEnglish},
	{"excellent", GroupGeneral, LanguageEnglish},
	{"high-quality", GroupGeneral, LanguageEnglish},
	{"robust", GroupGeneral, LanguageEnglish},
	{"reliable", GroupGeneral, LanguageEnglish},
	{"baik", GroupQuality, LanguageIndonesian},
	{"bagus", GroupQuality, LanguageIndonesian},
	{"berkualitas", GroupGeneral, LanguageIndonesian},
	{"handal", GroupGeneral, LanguageIndonesian},
	{"andal", GroupGeneral, LanguageIndonesian},

	// Scalability
	{"scalable", GroupScalability, LanguageEnglish},
	{"flexible", GroupGeneral, LanguageEnglish},
	{"modular", GroupGeneral, LanguageEnglish},
	{"extensible", GroupGeneral, LanguageEnglish},
	{"adaptable", GroupGeneral, LanguageEnglish},
	{"skalabel", GroupScalability, LanguageIndonesian},
	{"fleksibel", GroupScalability, LanguageIndonesian},
	{"dapat diperluas", GroupGeneral, LanguageIndonesian},

	// Security
	{"secure", GroupSecurity, LanguageEnglish},
	{"safe", GroupSecurity, LanguageEnglish},
	{"protected", GroupGeneral, LanguageEnglish},
	{"aman", GroupSecurity, LanguageIndonesian},
	{"terlindungi", GroupGeneral, LanguageIndonesian},

	// General subjective terms
	{"appropriate", GroupGeneral, LanguageEnglish},
	{"suitable", GroupGeneral, LanguageEnglish},
	{"adequate", GroupGeneral, LanguageEnglish},
	{"sufficient", GroupGeneral, LanguageEnglish},
	{"reasonable", GroupGeneral, LanguageEnglish},
	{"cocok", GroupGeneral, LanguageIndonesian},
	{"sesuai", GroupGeneral, LanguageIndonesian},
	{"cukup", GroupGeneral, LanguageIndonesian},
	{"memadai", GroupGeneral, LanguageIndonesian},
	{"wajar", GroupGeneral, LanguageIndonesian},

	// Uncertainty indicators
	{"maybe", GroupUncertainty, LanguageEnglish},
	{"possibly", GroupUncertainty, LanguageEnglish},
	{"might", GroupUncertainty, LanguageEnglish},
	{"could", GroupUncertainty, LanguageEnglish},
	{"should", GroupUncertainty, LanguageEnglish},
	{"would", GroupUncertainty, LanguageEnglish},
	{"mungkin", GroupUncertainty, LanguageIndonesian},
	{"bisa jadi", GroupUncertainty, LanguageIndonesian},
	{"barangkali", GroupUncertainty, LanguageIndonesian},
	{"seharusnya", GroupUncertainty, LanguageIndonesian},

	// Approximation terms
	{"approximately", GroupApproximation, LanguageEnglish},
	{"around", GroupApproximation, LanguageEnglish},
	{"about", GroupApproximation, LanguageEnglish},
	{"roughly", GroupApproximation, LanguageEnglish},
	{"nearly", GroupApproximation, LanguageEnglish},
	{"sekitar", GroupApproximation, LanguageIndonesian},
	{"kira-kira", GroupApproximation, LanguageIndonesian},
	{"hampir", GroupApproximation, LanguageIndonesian},
	{"kurang lebih", GroupApproximation, LanguageIndonesian},
}
