package render

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render/fields"
)

// renderSpell shows the fixed spell block. Attributes it does not know are
// not shown.
func renderSpell(data *jsonv.Object) []*Node {
	grid := (&Node{Kind: KindInfoGrid}).Add(
		InfoBox("Level", spellLevel(data)),
		InfoBox("School", fields.Nested(first(data, "school"))),
		InfoBox("Casting Time", fields.OrPlaceholder(first(data, "casting_time"))),
		InfoBox("Range", fields.OrPlaceholder(first(data, "range_text", "range"))),
		InfoBox("Duration", fields.OrPlaceholder(first(data, "duration"))),
		InfoBox("Components", spellComponents(data)),
		InfoBox("Concentration", fields.YesNo(truthy(data, "concentration"))),
		InfoBox("Ritual", fields.YesNo(truthy(data, "ritual"))),
	)

	out := []*Node{grid}
	if truthy(data, "desc") {
		out = append(out, TextBlock("Description", jsonv.Display(first(data, "desc"))))
	}
	if truthy(data, "higher_level") {
		out = append(out, TextBlock("At Higher Levels", jsonv.Display(first(data, "higher_level"))))
	}
	return out
}

func spellLevel(data *jsonv.Object) string {
	level := first(data, "level")
	if n, ok := jsonv.AsNumber(level); ok && n == 0 {
		return "Cantrip"
	}
	return fields.OrPlaceholder(level)
}

// spellComponents joins the V/S/M flags, with the material description in
// parentheses when one is given.
func spellComponents(data *jsonv.Object) string {
	var parts []string
	if truthy(data, "verbal") {
		parts = append(parts, "V")
	}
	if truthy(data, "somatic") {
		parts = append(parts, "S")
	}
	if truthy(data, "material") {
		parts = append(parts, "M")
	}
	if len(parts) == 0 {
		return fields.Placeholder
	}

	result := strings.Join(parts, ", ")
	if truthy(data, "material") && truthy(data, "material_specified") {
		result += " (" + jsonv.Display(first(data, "material_specified")) + ")"
	}
	return result
}

// first returns the first of keys holding a non-null value, or nil.
func first(data *jsonv.Object, keys ...string) jsonv.Value {
	for _, key := range keys {
		if v, ok := data.Lookup(key); ok {
			return v
		}
	}
	return nil
}

func truthy(data *jsonv.Object, key string) bool {
	v, _ := data.Get(key)
	return jsonv.Truthy(v)
}
