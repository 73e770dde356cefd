package main

import (
	"fmt"
	"log"

	"github.com/siherrmann/reqcheck"
)

// Validates a small requirements document with the default NER-backed
// recognizer. The model is downloaded on the first run.
func main() {
	validator := reqcheck.NewValidator(nil)
	validator.UseDefaultRecognizer()

	document := `Goal: the system should be fast and user-friendly.
Users: admins and managers use the platform.
Features: reporting, exports, etc.
Requirements: delivery date TBD, depends on vendor availability.`

	validationReport := validator.Validate(document, nil)

	fmt.Println(validationReport.Summary)
	for _, issue := range validationReport.Issues {
		fmt.Printf("- [%s/%s] %q: %s\n", issue.Kind, issue.Severity, issue.Term, issue.Suggestion)
	}
	for _, warning := range validationReport.Warnings {
		log.Printf("warning: %s", warning)
	}
}
