// Package render turns a schema-less entity payload into a structured
// fragment tree. Spells and creatures get curated layouts; every other entity
// type is laid out from the shapes of its attributes.
//
// Rendering is pure: it performs no I/O, keeps no state between calls and
// never fails. Values it cannot interpret degrade to raw JSON views.
package render

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Entity types with a curated layout.
const (
	EntityTypeSpell    = "spell"
	EntityTypeCreature = "creature"
)

// Render builds the fragment for an entity of the given type. A nil data
// object renders as an empty entity.
func Render(entityType string, data *jsonv.Object, opts ...Option) *Node {
	o := newOptions(opts)
	if data == nil {
		data = jsonv.NewObject()
	}

	root := &Node{Kind: KindEntity, Label: entityType}
	switch entityType {
	case EntityTypeSpell:
		root.Value = RendererSpell
		root.Add(renderSpell(data)...)
	case EntityTypeCreature:
		root.Value = RendererCreature
		root.Add(renderCreature(data)...)
	default:
		root.Value = RendererGeneric
		root.Add(renderGeneric(data, o)...)
	}
	return root
}
