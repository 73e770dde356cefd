package reqcheck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/siherrmann/reqcheck/core/pipeline"
	"github.com/siherrmann/reqcheck/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRecognizer returns fixed entities without loading a model
func stubRecognizer(entities ...*model.Entity) pipeline.RecognizeFunc {
	return func(text string) ([]*model.Entity, error) {
		return entities, nil
	}
}

func failingRecognizer(message string) pipeline.RecognizeFunc {
	return func(text string) ([]*model.Entity, error) {
		return nil, errors.New(message)
	}
}

func TestNewValidator(t *testing.T) {
	t.Run("Nil config uses defaults", func(t *testing.T) {
		validator := NewValidator(nil)

		require.NotNil(t, validator)
		require.NotNil(t, validator.Config)
		assert.Equal(t, 10000, validator.Config.MaxDocumentLength)
		assert.NotNil(t, validator.Catalogue)
		assert.Nil(t, validator.Recognize, "Expected no recognizer to be wired by default")
	})

	t.Run("SetRecognizer wires a custom recognizer", func(t *testing.T) {
		validator := NewValidator(nil)
		validator.SetRecognizer(stubRecognizer())
		assert.NotNil(t, validator.Recognize)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Empty document", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("", nil)

		assert.Equal(t, 0.0, validationReport.Score)
		assert.Equal(t, 0, validationReport.IssueCount)
		assert.Equal(t, 0, validationReport.WordCount)
		assert.Empty(t, validationReport.Issues)
		assert.NotEmpty(t, validationReport.Summary)
	})

	t.Run("Whitespace-only document behaves like empty", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("  \n\t  ", nil)

		assert.Equal(t, 0.0, validationReport.Score)
		assert.Equal(t, 0, validationReport.IssueCount)
		assert.Equal(t, 0, validationReport.WordCount)
	})

	t.Run("Word count is whitespace-delimited tokens", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("The system should be fast.", nil)

		assert.Equal(t, 5, validationReport.WordCount)
	})

	t.Run("Issue count matches issue list length", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("Delivery date: TBD. Make it fast.", nil)

		assert.Equal(t, len(validationReport.Issues), validationReport.IssueCount)
		assert.Greater(t, validationReport.IssueCount, 0)
	})

	t.Run("Exactly one ambiguity issue names fast", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("The system should be fast.", nil)

		var fastIssues []model.Issue
		for _, issue := range validationReport.Issues {
			if issue.Kind == model.KindAmbiguity && issue.Term == "fast" {
				fastIssues = append(fastIssues, issue)
			}
		}
		require.Len(t, fastIssues, 1)
		assert.Equal(t, model.SeverityMedium, fastIssues[0].Severity)
		assert.Contains(t, fastIssues[0].Suggestion, "specific metrics")
	})

	t.Run("TBD yields a high vagueness issue", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("Delivery date: TBD.", nil)

		found := false
		for _, issue := range validationReport.Issues {
			if issue.Kind == model.KindVagueness && issue.Term == "TBD" && issue.Severity == model.SeverityHigh {
				found = true
			}
		}
		assert.True(t, found, "Expected a vagueness/high issue for TBD")
	})

	t.Run("Document without section cues misses all four sections", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("Make it nice.", nil)

		count := 0
		for _, issue := range validationReport.Issues {
			if issue.Kind == model.KindIncompleteness && issue.Context == model.DocumentStructureContext {
				count++
			}
		}
		assert.Equal(t, 4, count)
	})

	t.Run("Issues keep discovery order across passes", func(t *testing.T) {
		sentence := "The good Acme platform runs jobs."
		validator := NewValidator(nil)
		validator.SetRecognizer(stubRecognizer(&model.Entity{
			ID:       uuid.New(),
			Text:     "Acme",
			Type:     model.EntityOrganization,
			Sentence: sentence,
		}))

		validationReport := validator.Validate("Make it fast.\n"+sentence, nil)

		fastIndex, entityIndex, completenessIndex := -1, -1, -1
		for i, issue := range validationReport.Issues {
			switch {
			case issue.Term == "fast" && fastIndex == -1:
				fastIndex = i
			case issue.Term == "good Acme" && entityIndex == -1:
				entityIndex = i
			case issue.Context == model.DocumentStructureContext && completenessIndex == -1:
				completenessIndex = i
			}
		}
		require.NotEqual(t, -1, fastIndex, "Expected a lexical issue")
		require.NotEqual(t, -1, entityIndex, "Expected an entity issue")
		require.NotEqual(t, -1, completenessIndex, "Expected a completeness issue")
		assert.Less(t, fastIndex, entityIndex, "Expected lexical issues before entity issues")
		assert.Less(t, entityIndex, completenessIndex, "Expected entity issues before completeness issues")
	})

	t.Run("Identical input yields byte-identical reports", func(t *testing.T) {
		document := "The good Acme platform should be fast.\nDelivery: TBD, depends on vendor."
		validator := NewValidator(nil)
		validator.SetRecognizer(stubRecognizer(&model.Entity{
			Text:     "Acme",
			Type:     model.EntityOrganization,
			Sentence: "The good Acme platform should be fast.",
		}))

		first, err := json.Marshal(validator.Validate(document, nil))
		require.NoError(t, err)
		second, err := json.Marshal(validator.Validate(document, nil))
		require.NoError(t, err)

		assert.Equal(t, string(first), string(second))
	})

	t.Run("Score stays within bounds", func(t *testing.T) {
		documents := []string{
			"",
			"Fine.",
			"fast quick soon good great TBD etc. assume legacy manual temporary workaround",
			"Users have goals, features and requirements.",
		}
		validator := NewValidator(nil)
		for _, document := range documents {
			validationReport := validator.Validate(document, nil)
			assert.GreaterOrEqual(t, validationReport.Score, 0.0)
			assert.LessOrEqual(t, validationReport.Score, 100.0)
		}
	})

	t.Run("Failing recognizer degrades to a warning", func(t *testing.T) {
		validator := NewValidator(nil)
		validator.SetRecognizer(failingRecognizer("onnx runtime not found"))

		validationReport := validator.Validate("Users have goals, features and requirements, delivery TBD.", nil)

		require.Len(t, validationReport.Warnings, 1)
		assert.Contains(t, validationReport.Warnings[0], "entity recognition unavailable")
		assert.Contains(t, validationReport.Warnings[0], "onnx runtime not found")

		// The lexical pass still reports
		found := false
		for _, issue := range validationReport.Issues {
			if issue.Term == "TBD" {
				found = true
			}
		}
		assert.True(t, found, "Expected lexical issues despite recognizer failure")
	})

	t.Run("Nil recognizer skips entity heuristics without warnings", func(t *testing.T) {
		validator := NewValidator(nil)

		validationReport := validator.Validate("The system should be fast.", nil)

		assert.Empty(t, validationReport.Warnings)
		for _, issue := range validationReport.Issues {
			assert.NotEqual(t, "the system", issue.Term, "Expected no entity-pass issues without a recognizer")
		}
	})

	t.Run("Focus areas are advisory only", func(t *testing.T) {
		validator := NewValidator(nil)

		all := validator.Validate("Delivery date: TBD.", nil)
		focused := validator.Validate("Delivery date: TBD.", []string{"ambiguity"})

		assert.Equal(t, all.IssueCount, focused.IssueCount, "Expected all checks to run regardless of focus areas")
	})

	t.Run("Entity suggestion appears only with entity issues", func(t *testing.T) {
		sentence := "The good Acme platform runs jobs."
		validator := NewValidator(nil)
		validator.SetRecognizer(stubRecognizer(&model.Entity{
			Text:     "Acme",
			Type:     model.EntityOrganization,
			Sentence: sentence,
		}))

		validationReport := validator.Validate(sentence, nil)

		found := false
		for _, suggestion := range validationReport.Suggestions {
			if suggestion == "Specify version numbers, qualifications, and specific details for mentioned entities (people, organizations, products)." {
				found = true
			}
		}
		assert.True(t, found, "Expected the entity-specific suggestion")
	})
}
