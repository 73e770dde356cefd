package scan

import (
	"fmt"

	"github.com/siherrmann/reqcheck/core/catalogue"
	"github.com/siherrmann/reqcheck/model"
)

// CompletenessIssues checks that every required section group has at
// least one cue anywhere in the document. Each missing group yields one
// document-level issue.
func CompletenessIssues(cat *catalogue.Catalogue, text string) []model.Issue {
	var issues []model.Issue

	for _, section := range cat.RequiredSections {
		found := false
		for _, pattern := range section.Patterns {
			if pattern.MatchString(text) {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, model.Issue{
				Kind:       model.KindIncompleteness,
				Severity:   model.SeverityHigh,
				Term:       fmt.Sprintf("Missing %s section", section.Name),
				Context:    model.DocumentStructureContext,
				Suggestion: fmt.Sprintf("Add a section describing %s and their requirements", section.Name),
			})
		}
	}

	return issues
}
