// Package catalogue holds the immutable pattern sets the validation
// engine scans documents against. The catalogue is built once at startup
// and is read-only afterwards, so it is safe to share across concurrent
// validation calls. Pattern compilation uses regexp.MustCompile: a
// malformed pattern fails at startup, never at request time.
package catalogue

import (
	"regexp"
)

// CompiledTerm pairs an ambiguous term with its whole-word matcher
type CompiledTerm struct {
	AmbiguousTerm
	Pattern *regexp.Regexp
}

// SectionGroup is one required document section with its alternative
// cue patterns. The group is satisfied if any pattern matches anywhere
// in the document.
type SectionGroup struct {
	Name     string
	Patterns []*regexp.Regexp
}

// Catalogue is the full set of validation patterns
type Catalogue struct {
	AmbiguousTerms   []CompiledTerm
	VaguePhrases     []*regexp.Regexp
	TechnicalDebt    []*regexp.Regexp
	BusinessRisk     []*regexp.Regexp
	RequiredSections []SectionGroup
}

// Vague phrases that indicate deferred or unspecified detail
var vaguePhrasePatterns = []string{
	`\b(to be determined|TBD|tbd)\b`,
	`\b(to be decided|TBD|tbd)\b`,
	`\b(etc\.|etc|and so on)\b`,
	`\b(similar|related|other)\b`,
	`\b(appropriate|suitable|adequate)\b`,
	`\b(if needed|if required|if necessary)\b`,
	`\b(as needed|as required|as necessary)\b`,
	`\b(and others|and the like)\b`,
	`\b(dan lain-lain|dll)\b`,
	`\b(atau sejenisnya|dan sebagainya)\b`,
}

// Technical debt indicators
var technicalDebtPatterns = []string{
	`\b(temporary|temp|workaround|quick fix)\b`,
	`\b(legacy|old|deprecated)\b`,
	`\b(manual|manual process)\b`,
	`\b(not optimized|not efficient)\b`,
	`\b(sementara|workaround|perbaikan cepat)\b`,
	`\b(warisan|lama|usang)\b`,
	`\b(manual|proses manual)\b`,
}

// Business risk indicators
var businessRiskPatterns = []string{
	`\b(assume|assumption)\b`,
	`\b(depends on|dependency)\b`,
	`\b(if available|if possible)\b`,
	`\b(subject to|pending)\b`,
	`\b(berasumsi|asumsi)\b`,
	`\b(bergantung pada|ketergantungan)\b`,
	`\b(jika tersedia|jika memungkinkan)\b`,
}

// Required sections for the completeness check, in report order
var requiredSectionPatterns = []struct {
	name     string
	patterns []string
}{
	{"users", []string{
		`\b(user|users|pengguna)\b`,
		`\b(stakeholder|pemangku kepentingan)\b`,
		`\b(actor|aktor)\b`,
	}},
	{"goals", []string{
		`\b(goal|goals|objective|objectives|tujuan)\b`,
		`\b(purpose|maksud)\b`,
		`\b(aim|target)\b`,
	}},
	{"features", []string{
		`\b(feature|features|fitur)\b`,
		`\b(functionality|fungsi)\b`,
		`\b(capability|kemampuan)\b`,
	}},
	{"requirements", []string{
		`\b(requirement|requirements|kebutuhan)\b`,
		`\b(need|needs|perlu)\b`,
		`\b(must|should|shall|harus)\b`,
	}},
}

// New builds the catalogue, compiling every pattern case-insensitively.
// Construction never fails at runtime, a bad pattern panics at startup.
func New() *Catalogue {
	catalogue := &Catalogue{
		AmbiguousTerms: make([]CompiledTerm, 0, len(ambiguousTerms)),
	}

	for _, term := range ambiguousTerms {
		catalogue.AmbiguousTerms = append(catalogue.AmbiguousTerms, CompiledTerm{
			AmbiguousTerm: term,
			Pattern:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term.Term) + `\b`),
		})
	}

	catalogue.VaguePhrases = compileAll(vaguePhrasePatterns)
	catalogue.TechnicalDebt = compileAll(technicalDebtPatterns)
	catalogue.BusinessRisk = compileAll(businessRiskPatterns)

	for _, section := range requiredSectionPatterns {
		catalogue.RequiredSections = append(catalogue.RequiredSections, SectionGroup{
			Name:     section.name,
			Patterns: compileAll(section.patterns),
		})
	}

	return catalogue
}

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+pattern))
	}
	return compiled
}
