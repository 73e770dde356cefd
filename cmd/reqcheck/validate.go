package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/siherrmann/reqcheck"
	"github.com/spf13/cobra"
)

var (
	asJSON     bool
	focusAreas []string
	noNER      bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a requirements document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		document := string(content)

		if err := config.Validator.CheckDocumentBounds(document); err != nil {
			return err
		}

		validator := reqcheck.NewValidator(config.Validator)
		if !noNER {
			validator.UseDefaultRecognizer()
		}

		validationReport := validator.Validate(document, focusAreas)

		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(validationReport)
		}

		fmt.Println(validationReport.Summary)
		fmt.Println()
		for _, issue := range validationReport.Issues {
			location := "document"
			if issue.LineNumber != nil {
				location = fmt.Sprintf("line %d", *issue.LineNumber)
			}
			fmt.Printf("[%s/%s] %s (%s)\n", issue.Kind, issue.Severity, issue.Term, location)
			fmt.Printf("    context:    %s\n", issue.Context)
			fmt.Printf("    suggestion: %s\n", issue.Suggestion)
		}
		if len(validationReport.Issues) > 0 {
			fmt.Println()
		}
		for _, suggestion := range validationReport.Suggestions {
			fmt.Printf("- %s\n", suggestion)
		}
		for _, warning := range validationReport.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	validateCmd.Flags().StringSliceVar(&focusAreas, "focus", nil, "focus areas (advisory)")
	validateCmd.Flags().BoolVar(&noNER, "no-ner", false, "skip entity recognition")
	rootCmd.AddCommand(validateCmd)
}
