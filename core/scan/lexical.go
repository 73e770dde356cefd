// Package scan contains the document scanners of the validation engine.
// Each scanner is a pure function from text to a list of issues, so the
// scanners can run independently and be tested in isolation.
package scan

import (
	"fmt"
	"strings"

	"github.com/siherrmann/reqcheck/core/catalogue"
	"github.com/siherrmann/reqcheck/model"
)

// LexicalIssues scans the document line by line against the catalogue.
// Lines are 1-indexed. The ambiguity, vagueness, technical-debt and
// business-risk categories run independently per line, the same span
// may be reported under more than one category.
func LexicalIssues(cat *catalogue.Catalogue, text string) []model.Issue {
	var issues []model.Issue

	for lineIndex, line := range strings.Split(text, "\n") {
		lineNumber := lineIndex + 1
		context := strings.TrimSpace(line)

		// Ambiguous terms: flagged by dictionary membership alone
		for _, term := range cat.AmbiguousTerms {
			if term.Pattern.MatchString(line) {
				issues = append(issues, model.Issue{
					Kind:       model.KindAmbiguity,
					Severity:   model.SeverityMedium,
					Term:       term.Term,
					Context:    context,
					Suggestion: AmbiguitySuggestion(term.AmbiguousTerm),
					LineNumber: intPointer(lineNumber),
				})
			}
		}

		// Pattern categories report every non-overlapping match with the
		// exact matched substring, preserving the document's casing
		for _, pattern := range cat.VaguePhrases {
			for _, match := range pattern.FindAllString(line, -1) {
				issues = append(issues, model.Issue{
					Kind:       model.KindVagueness,
					Severity:   model.SeverityHigh,
					Term:       match,
					Context:    context,
					Suggestion: "Provide specific details instead of vague terms",
					LineNumber: intPointer(lineNumber),
				})
			}
		}

		for _, pattern := range cat.TechnicalDebt {
			for _, match := range pattern.FindAllString(line, -1) {
				issues = append(issues, model.Issue{
					Kind:       model.KindTechnicalDebt,
					Severity:   model.SeverityMedium,
					Term:       match,
					Context:    context,
					Suggestion: "Consider long-term implications and proper solutions",
					LineNumber: intPointer(lineNumber),
				})
			}
		}

		for _, pattern := range cat.BusinessRisk {
			for _, match := range pattern.FindAllString(line, -1) {
				issues = append(issues, model.Issue{
					Kind:       model.KindBusinessRisk,
					Severity:   model.SeverityHigh,
					Term:       match,
					Context:    context,
					Suggestion: "Clarify dependencies and assumptions",
					LineNumber: intPointer(lineNumber),
				})
			}
		}
	}

	return issues
}

// AmbiguitySuggestion returns the remediation text for an ambiguous
// term, templated by its semantic sub-group.
func AmbiguitySuggestion(term catalogue.AmbiguousTerm) string {
	switch term.Group {
	case catalogue.GroupPerformance:
		return fmt.Sprintf("Replace '%s' with specific metrics (e.g., 'loads in under 2 seconds', 'processes 1000 records per minute')", term.Term)
	case catalogue.GroupUserExperience:
		return fmt.Sprintf("Replace '%s' with specific UX criteria (e.g., 'completable in 3 clicks', 'requires no training')", term.Term)
	case catalogue.GroupQuality:
		return fmt.Sprintf("Replace '%s' with measurable quality standards (e.g., '99.9%% uptime', 'zero data loss')", term.Term)
	case catalogue.GroupScalability:
		return fmt.Sprintf("Replace '%s' with specific scalability requirements (e.g., 'supports 10,000 concurrent users', 'handles 1TB data')", term.Term)
	case catalogue.GroupSecurity:
		return fmt.Sprintf("Replace '%s' with specific security measures (e.g., 'encrypted at rest', 'SOC2 compliant')", term.Term)
	default:
		return fmt.Sprintf("Replace '%s' with specific, measurable criteria", term.Term)
	}
}

func intPointer(value int) *int {
	return &value
}
