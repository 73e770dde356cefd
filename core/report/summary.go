package report

import (
	"fmt"
	"strings"

	"github.com/siherrmann/reqcheck/model"
)

// Summarize builds the prose summary: score line, issue-type histogram
// in first-occurrence order, then a qualitative tier sentence.
func Summarize(issues []model.Issue, score float64) string {
	if len(issues) == 0 {
		return fmt.Sprintf("Excellent! Your document has a quality score of %s/100 with no issues found.", FormatScore(score))
	}

	counts := make(map[model.IssueKind]int)
	var order []model.IssueKind
	for _, issue := range issues {
		if counts[issue.Kind] == 0 {
			order = append(order, issue.Kind)
		}
		counts[issue.Kind]++
	}

	histogram := make([]string, 0, len(order))
	for _, kind := range order {
		histogram = append(histogram, fmt.Sprintf("%d %s", counts[kind], kind))
	}

	parts := []string{
		fmt.Sprintf("Quality score: %s/100", FormatScore(score)),
		fmt.Sprintf("Issues found: %d (%s)", len(issues), strings.Join(histogram, ", ")),
	}

	switch {
	case score < 50:
		parts = append(parts, "Significant improvements needed.")
	case score < 75:
		parts = append(parts, "Some improvements recommended.")
	default:
		parts = append(parts, "Good quality with minor improvements possible.")
	}

	return strings.Join(parts, " ")
}

var kindSuggestions = map[model.IssueKind]string{
	model.KindAmbiguity:      "Replace ambiguous terms with specific, measurable criteria.",
	model.KindIncompleteness: "Add missing details like goals, acceptance criteria, and features.",
	model.KindVagueness:      "Use precise language and avoid vague phrases like 'etc.' or 'and so on'.",
	model.KindTechnicalDebt:  "Consider long-term implications and avoid temporary solutions.",
	model.KindBusinessRisk:   "Clarify dependencies, assumptions, and business constraints.",
}

// Suggestions builds the ranked general suggestion list: one fixed
// sentence per issue kind present, then the conditional extras.
// hasEntityIssues reports whether any issue came from the entity
// heuristics pass.
func Suggestions(issues []model.Issue, hasEntityIssues bool) []string {
	if len(issues) == 0 {
		return []string{"Great job! Your document is well-written and clear."}
	}

	present := make(map[model.IssueKind]bool)
	hasCritical := false
	for _, issue := range issues {
		present[issue.Kind] = true
		if issue.Severity == model.SeverityCritical {
			hasCritical = true
		}
	}

	var suggestions []string
	for _, kind := range model.IssueKinds {
		if present[kind] {
			suggestions = append(suggestions, kindSuggestions[kind])
		}
	}

	if hasEntityIssues {
		suggestions = append(suggestions, "Specify version numbers, qualifications, and specific details for mentioned entities (people, organizations, products).")
	}
	if len(issues) > 10 {
		suggestions = append(suggestions, "Consider breaking down complex requirements into smaller, more specific items.")
	}
	if hasCritical {
		suggestions = append(suggestions, "Address critical issues first as they may impact project success.")
	}

	return suggestions
}
