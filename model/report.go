package model

// ValidationReport is the engine's sole output for one document
type ValidationReport struct {
	Issues      []Issue  `json:"issues"`
	Summary     string   `json:"summary"`
	Score       float64  `json:"score"`
	Suggestions []string `json:"suggestions"`
	WordCount   int      `json:"word_count"`
	IssueCount  int      `json:"issue_count"`
	// Warnings carries diagnostics for degraded passes (e.g. the entity
	// recognizer being unavailable), kept separate from Issues.
	Warnings []string `json:"warnings,omitempty"`
}
