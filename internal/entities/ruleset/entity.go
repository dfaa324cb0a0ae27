// Package ruleset holds the entity value objects of a ruleset catalog.
package ruleset

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Well-known entity types. Any other type string is valid and renders
// generically.
const (
	EntityTypeSpell     = "spell"
	EntityTypeCreature  = "creature"
	EntityTypeWeapon    = "weapon"
	EntityTypeArmor     = "armor"
	EntityTypeEquipment = "equipment"
	EntityTypeRace      = "race"
	EntityTypeFeature   = "feature"
)

// Entity is one named rule object (spell, creature, item, ...) with a
// free-form data payload.
type Entity struct {
	ID         string        `json:"id"`
	RulesetID  string        `json:"ruleset_id"`
	EntityType string        `json:"entity_type"`
	SourceKey  string        `json:"source_key,omitempty"`
	Name       string        `json:"name"`
	Data       *jsonv.Object `json:"entity_data"`
	ImportedAt int64         `json:"imported_at,omitempty"`
}

// GetID returns the entity's ID
func (e *Entity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *Entity) GetType() string {
	return e.EntityType
}

// Compile-time check that Entity implements core.Entity
var _ core.Entity = (*Entity)(nil)
