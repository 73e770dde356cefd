// Package report turns a combined issue list into the final score,
// summary and suggestion list of a validation call.
package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/siherrmann/reqcheck/model"
)

// Score computes the quality score for a document: start at 100, deduct
// the configured weight per issue, clamp to [0,100] and round to one
// decimal. The score is a pure function of the issue multiset, adding
// issues never raises it. Empty or whitespace-only documents score 0.
func Score(document string, issues []model.Issue, config *model.ValidatorConfig) float64 {
	if strings.TrimSpace(document) == "" {
		return 0.0
	}

	score := 100.0
	for _, issue := range issues {
		score -= float64(config.Weight(issue.Severity))
	}

	score = math.Max(0.0, score)
	score = math.Min(100.0, score)

	return math.Round(score*10) / 10
}

// FormatScore renders a score with exactly one decimal, so 100 prints
// as "100.0" in summaries.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
