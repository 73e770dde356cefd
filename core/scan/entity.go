package scan

import (
	"fmt"
	"strings"

	"github.com/siherrmann/reqcheck/model"
)

// Vague qualifiers that weaken an entity mention
var vagueQualifiers = []string{"appropriate", "suitable", "good", "proper", "correct"}

// Generic system nouns that call for a specificity marker nearby
var genericSystemNouns = []string{"system", "platform", "tool"}
var specificityMarkers = []string{"version", "specific", "particular"}

// Modal constructions that leave "the system" requirements unbound
var modalConstructs = []string{"should be", "must be", "will be", "can be", "may be"}

// Role words that imply stakeholders exist without naming them
var stakeholderWords = []string{"user", "admin", "manager"}

// EntityIssues scans recognized entities and their sentence context for
// vagueness and incompleteness the lexical pass cannot see. It also runs
// the document-level sentence pattern checks that depend on recognition
// output. Pure: same text and entities always yield the same issues.
func EntityIssues(text string, entities []*model.Entity) []model.Issue {
	var issues []model.Issue

	for _, entity := range entities {
		if issue := analyzeEntity(entity); issue != nil {
			issues = append(issues, *issue)
		}
	}

	issues = append(issues, systemSentenceIssues(text)...)

	if issue := missingStakeholderIssue(text, entities); issue != nil {
		issues = append(issues, *issue)
	}

	return issues
}

// analyzeEntity emits at most one issue per entity. A vague qualifier in
// the enclosing sentence wins over the missing-specificity check.
func analyzeEntity(entity *model.Entity) *model.Issue {
	sentence := strings.ToLower(entity.Sentence)

	if entity.Type == model.EntityPerson || entity.Type == model.EntityOrganization || entity.Type == model.EntityProduct {
		for _, qualifier := range vagueQualifiers {
			if strings.Contains(sentence, qualifier) {
				return &model.Issue{
					Kind:       model.KindVagueness,
					Severity:   model.SeverityMedium,
					Term:       fmt.Sprintf("%s %s", qualifier, entity.Text),
					Context:    entity.Sentence,
					Suggestion: fmt.Sprintf("Specify what makes %s appropriate/suitable (e.g., 'experienced in Python development', 'certified in AWS')", entity.Text),
				}
			}
		}
	}

	if entity.Type == model.EntityProduct || entity.Type == model.EntityOrganization {
		if containsAny(sentence, genericSystemNouns) && !containsAny(sentence, specificityMarkers) {
			return &model.Issue{
				Kind:       model.KindIncompleteness,
				Severity:   model.SeverityMedium,
				Term:       entity.Text,
				Context:    entity.Sentence,
				Suggestion: fmt.Sprintf("Specify version or specific details for %s (e.g., 'Python 3.11', 'AWS Lambda')", entity.Text),
			}
		}
	}

	return nil
}

// systemSentenceIssues flags short sentences that pair "the system" with
// a modal construction, one issue per qualifying sentence.
func systemSentenceIssues(text string) []model.Issue {
	var issues []model.Issue

	for _, sentence := range SplitSentences(text) {
		lowered := strings.ToLower(sentence.Text)
		if !strings.Contains(lowered, "the system") || len(strings.Fields(lowered)) >= 10 {
			continue
		}
		for _, modal := range modalConstructs {
			if strings.Contains(lowered, modal) {
				issues = append(issues, model.Issue{
					Kind:       model.KindVagueness,
					Severity:   model.SeverityHigh,
					Term:       "the system",
					Context:    sentence.Text,
					Suggestion: "Specify which system component and what behavior is expected",
				})
				break
			}
		}
	}

	return issues
}

// missingStakeholderIssue fires when role words appear in the document
// but recognition found no person entity at all.
func missingStakeholderIssue(text string, entities []*model.Entity) *model.Issue {
	for _, entity := range entities {
		if entity.Type == model.EntityPerson {
			return nil
		}
	}
	if !containsAny(strings.ToLower(text), stakeholderWords) {
		return nil
	}
	return &model.Issue{
		Kind:       model.KindIncompleteness,
		Severity:   model.SeverityMedium,
		Term:       "stakeholder identification",
		Context:    model.DocumentStructureContext,
		Suggestion: "Identify specific stakeholders by name or role (e.g., 'System Administrator', 'End Users')",
	}
}
