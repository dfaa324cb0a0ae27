package external

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Payload is one SRD record converted to open rule data
type Payload struct {
	// Key is the record's index in the SRD dataset
	Key        string
	Name       string
	EntityType string
	Data       *jsonv.Object
}

// Reference names an SRD record without loading it
type Reference struct {
	Key  string
	Name string
}

// ListSpellsInput filters a spell listing
type ListSpellsInput struct {
	Level   *int
	ClassID string
}
