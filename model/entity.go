package model

import (
	"github.com/google/uuid"
)

// EntityType is the coarse category assigned to a recognized span
type EntityType string

const (
	EntityPerson       EntityType = "person"
	EntityOrganization EntityType = "organization"
	EntityProduct      EntityType = "product"
	EntityOther        EntityType = "other"
)

// Entity represents a named span recognized in a document.
// Entities are transient: they exist only for the duration of one
// validation call and are never persisted.
type Entity struct {
	ID       uuid.UUID              `json:"id"`
	Text     string                 `json:"text"`
	Type     EntityType             `json:"entity_type"`
	Sentence string                 `json:"sentence"` // Full text of the enclosing sentence
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
