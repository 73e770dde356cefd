package scan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/reqcheck/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntity(text string, entityType model.EntityType, sentence string) *model.Entity {
	return &model.Entity{
		ID:       uuid.New(),
		Text:     text,
		Type:     entityType,
		Sentence: sentence,
	}
}

func TestEntityIssues(t *testing.T) {
	t.Run("Vague qualifier near an entity is flagged", func(t *testing.T) {
		entities := []*model.Entity{
			testEntity("Alice", model.EntityPerson, "We need a suitable Alice for the review."),
		}
		issues := EntityIssues("We need a suitable Alice for the review.", entities)

		require.NotEmpty(t, issues)
		issue := issues[0]
		assert.Equal(t, model.KindVagueness, issue.Kind)
		assert.Equal(t, model.SeverityMedium, issue.Severity)
		assert.Equal(t, "suitable Alice", issue.Term)
		assert.Contains(t, issue.Suggestion, "Alice")
		assert.Nil(t, issue.LineNumber, "Expected sentence-level issues to carry no line number")
	})

	t.Run("At most one issue per entity, first qualifier wins", func(t *testing.T) {
		sentence := "Pick a good and proper Widget."
		entities := []*model.Entity{
			testEntity("Widget", model.EntityProduct, sentence),
		}
		issues := EntityIssues(sentence, entities)

		var entityScoped []model.Issue
		for _, issue := range issues {
			if issue.Context == sentence {
				entityScoped = append(entityScoped, issue)
			}
		}
		require.Len(t, entityScoped, 1, "Expected exactly one issue for the entity")
		assert.Equal(t, "good Widget", entityScoped[0].Term, "Expected the first matching qualifier to win")
	})

	t.Run("Generic system noun without specificity marker", func(t *testing.T) {
		sentence := "The Acme platform handles all jobs."
		entities := []*model.Entity{
			testEntity("Acme", model.EntityOrganization, sentence),
		}
		issues := EntityIssues(sentence, entities)

		require.NotEmpty(t, issues)
		assert.Equal(t, model.KindIncompleteness, issues[0].Kind)
		assert.Equal(t, model.SeverityMedium, issues[0].Severity)
		assert.Equal(t, "Acme", issues[0].Term)
		assert.Contains(t, issues[0].Suggestion, "version or specific details for Acme")
	})

	t.Run("Specificity marker suppresses the incompleteness issue", func(t *testing.T) {
		sentence := "The Acme platform version 3.2 handles all jobs."
		entities := []*model.Entity{
			testEntity("Acme", model.EntityOrganization, sentence),
		}
		issues := EntityIssues(sentence, entities)
		assert.Empty(t, issues)
	})

	t.Run("Person entities skip the specificity check", func(t *testing.T) {
		sentence := "Alice maintains the system configs."
		entities := []*model.Entity{
			testEntity("Alice", model.EntityPerson, sentence),
		}
		issues := EntityIssues(sentence, entities)
		for _, issue := range issues {
			assert.NotEqual(t, "Alice", issue.Term)
		}
	})

	t.Run("Short modal sentence about the system", func(t *testing.T) {
		text := "The system should be available."
		issues := EntityIssues(text, nil)

		require.NotEmpty(t, issues)
		issue := issues[0]
		assert.Equal(t, model.KindVagueness, issue.Kind)
		assert.Equal(t, model.SeverityHigh, issue.Severity)
		assert.Equal(t, "the system", issue.Term)
		assert.Equal(t, text, issue.Context)
	})

	t.Run("Long modal sentence about the system is not flagged", func(t *testing.T) {
		text := "The system should be able to export monthly usage reports to the billing department automatically."
		issues := EntityIssues(text, nil)
		for _, issue := range issues {
			assert.NotEqual(t, "the system", issue.Term)
		}
	})

	t.Run("One issue per qualifying sentence even with several modals", func(t *testing.T) {
		text := "The system should be up. The system must be safe."
		issues := EntityIssues(text, nil)

		count := 0
		for _, issue := range issues {
			if issue.Term == "the system" {
				count++
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("Missing stakeholder identification", func(t *testing.T) {
		text := "The admin resets passwords."
		issues := EntityIssues(text, nil)

		var stakeholder *model.Issue
		for i := range issues {
			if issues[i].Term == "stakeholder identification" {
				stakeholder = &issues[i]
			}
		}
		require.NotNil(t, stakeholder, "Expected a stakeholder identification issue")
		assert.Equal(t, model.KindIncompleteness, stakeholder.Kind)
		assert.Equal(t, model.SeverityMedium, stakeholder.Severity)
		assert.Equal(t, model.DocumentStructureContext, stakeholder.Context)
		assert.Nil(t, stakeholder.LineNumber)
	})

	t.Run("Person entity suppresses the stakeholder issue", func(t *testing.T) {
		text := "The admin Alice resets passwords."
		entities := []*model.Entity{
			testEntity("Alice", model.EntityPerson, text),
		}
		issues := EntityIssues(text, entities)
		for _, issue := range issues {
			assert.NotEqual(t, "stakeholder identification", issue.Term)
		}
	})

	t.Run("No role words means no stakeholder issue", func(t *testing.T) {
		text := "Data flows from ingest to archive."
		issues := EntityIssues(text, nil)
		for _, issue := range issues {
			assert.NotEqual(t, "stakeholder identification", issue.Term)
		}
	})

	t.Run("No entities and no patterns yields no issues", func(t *testing.T) {
		issues := EntityIssues("Plain text with nothing of note.", nil)
		assert.Empty(t, issues)
	})
}
