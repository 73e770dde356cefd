// Package reqcheck analyzes a natural-language requirements document
// and produces a structured quality assessment: located issues, a
// numeric quality score and remediation suggestions.
package reqcheck

import (
	"log/slog"
	"os"
	"strings"

	"github.com/siherrmann/reqcheck/core/catalogue"
	"github.com/siherrmann/reqcheck/core/pipeline"
	"github.com/siherrmann/reqcheck/core/report"
	"github.com/siherrmann/reqcheck/core/scan"
	"github.com/siherrmann/reqcheck/helper"
	"github.com/siherrmann/reqcheck/model"
)

// DefaultFocusAreas is the advisory focus metadata used when the caller
// passes none. Focus areas do not filter checks yet, every pass always
// runs.
var DefaultFocusAreas = []string{"ambiguity", "completeness", "clarity"}

// Validator is the document validation engine. It is stateless across
// calls: the catalogue and recognizer are read-only after construction,
// so one Validator is safe for concurrent use.
type Validator struct {
	Catalogue *catalogue.Catalogue
	Recognize pipeline.RecognizeFunc // Optional, nil skips entity heuristics
	Config    *model.ValidatorConfig
	// Logging
	log *slog.Logger
}

// NewValidator creates a Validator with the compiled rule catalogue.
// Pass nil to use the default configuration. No recognizer is wired,
// use UseDefaultRecognizer or SetRecognizer.
func NewValidator(config *model.ValidatorConfig) *Validator {
	if config == nil {
		config = model.DefaultValidatorConfig()
	}

	// Logger
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: config.SlogLevel(),
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	return &Validator{
		Catalogue: catalogue.New(),
		Config:    config,
		log:       logger,
	}
}

// SetRecognizer sets the entity recognition function
func (v *Validator) SetRecognizer(recognize pipeline.RecognizeFunc) {
	v.Recognize = recognize
}

// UseDefaultRecognizer wires the NER-backed recognizer from the
// configuration. Model loading is deferred to the first validation call
// and happens at most once, also under concurrent first calls.
func (v *Validator) UseDefaultRecognizer() {
	config := v.Config
	v.Recognize = pipeline.LazyRecognizer(func() (pipeline.RecognizeFunc, error) {
		return pipeline.DefaultRecognizer(config)
	})
}

// Validate runs all checks over the document and returns the report.
// Issues appear in discovery order: lexical first, then entity, then
// completeness. A failing recognizer degrades to a report warning
// instead of failing the call, so Validate never returns an error.
func (v *Validator) Validate(document string, focusAreas []string) *model.ValidationReport {
	if len(focusAreas) == 0 {
		focusAreas = DefaultFocusAreas
	}

	v.log.Info("Starting document validation",
		slog.Int("document_length", len(document)),
		slog.Any("focus_areas", focusAreas))

	if strings.TrimSpace(document) == "" {
		score := report.Score(document, nil, v.Config)
		return &model.ValidationReport{
			Issues:      []model.Issue{},
			Summary:     report.Summarize(nil, score),
			Score:       score,
			Suggestions: report.Suggestions(nil, false),
			WordCount:   0,
			IssueCount:  0,
		}
	}

	var warnings []string

	lexicalIssues := scan.LexicalIssues(v.Catalogue, document)

	var entityIssues []model.Issue
	if v.Recognize != nil {
		entities, err := v.Recognize(document)
		if err != nil {
			v.log.Warn("Entity recognition unavailable, skipping entity heuristics", slog.String("error", err.Error()))
			warnings = append(warnings, "entity recognition unavailable: "+err.Error())
		} else {
			entityIssues = scan.EntityIssues(document, entities)
		}
	}

	completenessIssues := scan.CompletenessIssues(v.Catalogue, document)

	issues := make([]model.Issue, 0, len(lexicalIssues)+len(entityIssues)+len(completenessIssues))
	issues = append(issues, lexicalIssues...)
	issues = append(issues, entityIssues...)
	issues = append(issues, completenessIssues...)

	score := report.Score(document, issues, v.Config)

	v.log.Info("Validation finished",
		slog.Int("lexical_issues", len(lexicalIssues)),
		slog.Int("entity_issues", len(entityIssues)),
		slog.Int("completeness_issues", len(completenessIssues)),
		slog.String("score", report.FormatScore(score)))

	return &model.ValidationReport{
		Issues:      issues,
		Summary:     report.Summarize(issues, score),
		Score:       score,
		Suggestions: report.Suggestions(issues, len(entityIssues) > 0),
		WordCount:   len(strings.Fields(document)),
		IssueCount:  len(issues),
		Warnings:    warnings,
	}
}
