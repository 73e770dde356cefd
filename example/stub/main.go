package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/siherrmann/reqcheck"
	"github.com/siherrmann/reqcheck/model"
)

// Validates with an injected stub recognizer instead of a downloaded
// model, the pattern tests use as well.
func main() {
	validator := reqcheck.NewValidator(nil)
	validator.SetRecognizer(func(text string) ([]*model.Entity, error) {
		return []*model.Entity{
			{
				ID:       uuid.New(),
				Text:     "Postgres",
				Type:     model.EntityProduct,
				Sentence: "The suitable Postgres system stores all records.",
			},
		}, nil
	})

	document := `Goals: store records reliably for all users.
Features: the suitable Postgres system stores all records.
Requirements: must handle the expected load.`

	validationReport := validator.Validate(document, []string{"ambiguity"})

	fmt.Println(validationReport.Summary)
	for _, suggestion := range validationReport.Suggestions {
		fmt.Println("-", suggestion)
	}
}
