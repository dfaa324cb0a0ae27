package render

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render/fields"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

type abilityScore struct {
	key   string
	label string
}

var abilityScores = []abilityScore{
	{key: "strength", label: "STR"},
	{key: "dexterity", label: "DEX"},
	{key: "constitution", label: "CON"},
	{key: "intelligence", label: "INT"},
	{key: "wisdom", label: "WIS"},
	{key: "charisma", label: "CHA"},
}

// renderCreature shows the stat block of a monster or NPC.
func renderCreature(data *jsonv.Object) []*Node {
	grid := (&Node{Kind: KindInfoGrid}).Add(
		InfoBox("CR", fields.OrPlaceholder(first(data, "challenge_rating_text", "cr"))),
		InfoBox("Type", fields.Nested(first(data, "type"))),
		InfoBox("Size", fields.Nested(first(data, "size"))),
		InfoBox("Alignment", fields.OrPlaceholder(first(data, "alignment"))),
		InfoBox("AC", fields.OrPlaceholder(first(data, "armor_class"))),
		InfoBox("HP", fields.OrPlaceholder(first(data, "hit_points"))),
	)

	out := []*Node{grid, abilityGrid(data)}
	out = appendNode(out, entryPanel("Actions", first(data, "actions")))
	out = appendNode(out, entryPanel("Traits", first(data, "traits")))
	return out
}

// abilityGrid reads the six scores from an ability_scores object when there
// is one, otherwise from the top level. Scores may be wrapped as {value};
// an array in a score's place has no value and shows the placeholder.
func abilityGrid(data *jsonv.Object) *Node {
	var source jsonv.Value = data
	if scores, ok := data.Lookup("ability_scores"); ok {
		switch scores.(type) {
		case *jsonv.Object, jsonv.Array:
			source = scores
		}
	}
	sourceObj, _ := jsonv.AsObject(source)

	grid := &Node{Kind: KindAbilityGrid}
	for _, ability := range abilityScores {
		var score jsonv.Value
		if v, ok := sourceObj.Get(ability.key); ok {
			switch wrapped := v.(type) {
			case *jsonv.Object:
				score, _ = wrapped.Get("value")
			case jsonv.Array:
				// lists carry no value field
			default:
				score = v
			}
		}
		grid.Add(&Node{Kind: KindGridCell, Label: ability.label, Value: fields.OrPlaceholder(score)})
	}
	return grid
}

// entryPanel lists name/desc entries such as actions. Returns nil unless
// value is a non-empty array.
func entryPanel(label string, value jsonv.Value) *Node {
	entries, ok := value.(jsonv.Array)
	if !ok || len(entries) == 0 {
		return nil
	}

	panel := &Node{Kind: KindEntryPanel, Label: label}
	for _, e := range entries {
		entry := &Node{Kind: KindEntry}
		if obj, isObject := jsonv.AsObject(e); isObject {
			if name, ok := obj.Lookup("name"); ok {
				entry.Label = jsonv.Display(name)
			}
			if desc, ok := obj.Get("desc"); ok && jsonv.Truthy(desc) {
				entry.Blocks = markdown.Parse(jsonv.Display(desc))
			}
		}
		panel.Add(entry)
	}
	return panel
}
