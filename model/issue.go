package model

// IssueKind classifies a detected quality problem
type IssueKind string

const (
	KindAmbiguity      IssueKind = "ambiguity"
	KindIncompleteness IssueKind = "incompleteness"
	KindVagueness      IssueKind = "vagueness"
	KindTechnicalDebt  IssueKind = "technical_debt"
	KindBusinessRisk   IssueKind = "business_risk"
)

// IssueKinds lists all kinds in their canonical enumeration order.
// Suggestion generation iterates this order.
var IssueKinds = []IssueKind{
	KindAmbiguity,
	KindIncompleteness,
	KindVagueness,
	KindTechnicalDebt,
	KindBusinessRisk,
}

// Severity is the ordered severity level of an issue
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// DefaultSeverityWeights maps each severity to the points it deducts
// from the quality score. Kept as data so hosts can override the table
// without touching the scoring logic.
var DefaultSeverityWeights = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   3,
	SeverityHigh:     5,
	SeverityCritical: 10,
}

// Issue represents one detected problem in a document
type Issue struct {
	Kind       IssueKind `json:"type"`
	Severity   Severity  `json:"severity"`
	Term       string    `json:"word_or_phrase"`
	Context    string    `json:"context"`
	Suggestion string    `json:"suggestion"`
	LineNumber *int      `json:"line_number,omitempty"`
}

// DocumentStructureContext is the fixed context string for issues that
// concern the document as a whole rather than a specific line or sentence.
const DocumentStructureContext = "Document structure"
