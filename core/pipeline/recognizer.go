// Package pipeline provides the entity recognition component of the
// validation engine as an injectable function, so tests and hosts can
// substitute a stub without downloading a model.
package pipeline

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/siherrmann/reqcheck/core/scan"
	"github.com/siherrmann/reqcheck/helper"
	"github.com/siherrmann/reqcheck/model"
)

// RecognizeFunc extracts named entities from text, each tagged with its
// coarse type and enclosing sentence
type RecognizeFunc func(text string) ([]*model.Entity, error)

// DefaultRecognizer creates a recognizer backed by a NER model
// (distilbert-NER by default), downloading it on first use.
// Detects PER, ORG, LOC and MISC entities.
func DefaultRecognizer(config *model.ValidatorConfig) (RecognizeFunc, error) {
	// Prepare model (download if needed)
	modelPath, err := helper.PrepareModel(config.ModelDir, config.ModelName, "model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, helper.NewError("create hugot session", err)
	}

	// Create token classification pipeline for NER
	pipelineConfig := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-pipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}), // Ignore non-entity tokens
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, pipelineConfig)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, helper.NewError("create NER pipeline", err)
	}

	return func(text string) ([]*model.Entity, error) {
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}

		result, err := nerPipeline.RunPipeline([]string{text})
		if err != nil {
			return nil, helper.NewError("run NER", err)
		}

		if len(result.Entities) == 0 {
			return nil, nil
		}

		sentences := scan.SplitSentences(text)

		var entities []*model.Entity
		for _, entity := range result.Entities[0] {
			sentenceText := ""
			if sentence, ok := scan.SentenceAt(sentences, int(entity.Start)); ok {
				sentenceText = sentence.Text
			}

			entities = append(entities, &model.Entity{
				ID:       uuid.New(),
				Text:     strings.TrimSpace(entity.Word),
				Type:     CoarseType(normalizeLabel(entity.Entity)),
				Sentence: sentenceText,
				Metadata: map[string]interface{}{
					"confidence": entity.Score,
					"start":      entity.Start,
					"end":        entity.End,
				},
			})
		}

		return entities, nil
	}, nil
}

// LazyRecognizer defers factory construction to the first call and
// guards it so concurrent first calls initialize the model only once.
// A failed initialization is returned on every subsequent call.
func LazyRecognizer(factory func() (RecognizeFunc, error)) RecognizeFunc {
	var (
		once      sync.Once
		recognize RecognizeFunc
		initErr   error
	)
	return func(text string) ([]*model.Entity, error) {
		once.Do(func() {
			recognize, initErr = factory()
		})
		if initErr != nil {
			return nil, helper.NewError("initialize recognizer", initErr)
		}
		return recognize(text)
	}
}

// CoarseType maps a normalized NER label to the coarse entity types the
// heuristics consume. MISC is the CoNLL bucket covering named products.
func CoarseType(label string) model.EntityType {
	switch strings.ToUpper(label) {
	case "PER", "PERSON":
		return model.EntityPerson
	case "ORG", "ORGANIZATION":
		return model.EntityOrganization
	case "MISC", "PRODUCT":
		return model.EntityProduct
	default:
		return model.EntityOther
	}
}

// normalizeLabel removes B- and I- prefixes from BIO-tagged NER labels
func normalizeLabel(label string) string {
	if strings.HasPrefix(label, "B-") {
		return label[2:]
	}
	if strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}
