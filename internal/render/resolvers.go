package render

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render/fields"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

// metaKeys are excluded from section card badges.
var metaKeys = map[string]struct{}{
	"name":     {},
	"desc":     {},
	"url":      {},
	"key":      {},
	"resource": {},
	"document": {},
}

// InfoBox is a labelled one-line value.
func InfoBox(label, value string) *Node {
	return &Node{Kind: KindInfoBox, Label: label, Value: value}
}

// TextBlock is a titled block of markdown.
func TextBlock(label, text string) *Node {
	return &Node{Kind: KindTextBlock, Label: label, Blocks: markdown.Parse(text)}
}

// KeyValueGrid renders a small stat map. A string "unit" attribute is
// appended to every numeric value and is not shown itself. Returns nil when
// nothing is left to show.
func KeyValueGrid(label string, data *jsonv.Object) *Node {
	suffix := ""
	if unit, ok := data.Get("unit"); ok {
		if s, isString := jsonv.AsString(unit); isString {
			suffix = " " + s
		}
	}

	grid := &Node{Kind: KindKeyValueGrid, Label: label}
	for _, m := range data.Members() {
		if m.Key == "unit" || jsonv.IsNull(m.Value) {
			continue
		}

		display := fields.Placeholder
		switch v := m.Value.(type) {
		case jsonv.Number:
			display = jsonv.FormatNumber(float64(v)) + suffix
		case jsonv.String:
			display = string(v)
		}
		grid.Add(&Node{Kind: KindGridCell, Label: fields.FormatLabel(m.Key), Value: display})
	}

	if len(grid.Children) == 0 {
		return nil
	}
	return grid
}

// SectionList renders a list of cards. Named cards carry their name as the
// card label; every card renders its desc as markdown and the remaining
// attributes as badges.
func SectionList(label string, items jsonv.Array, variant string) *Node {
	if len(items) == 0 {
		return nil
	}

	list := &Node{Kind: KindSectionList, Label: label, Variant: variant}
	for _, item := range items {
		list.Add(sectionCard(item, variant))
	}
	return list
}

func sectionCard(item jsonv.Value, variant string) *Node {
	obj, ok := jsonv.AsObject(item)
	if !ok {
		return &Node{Kind: KindSectionCard, Value: fields.OrPlaceholder(item)}
	}

	card := &Node{Kind: KindSectionCard}
	if variant == VariantNamed {
		if name, ok := obj.Lookup("name"); ok {
			card.Label = jsonv.Display(name)
		}
	}
	if desc, ok := obj.Get("desc"); ok {
		if s, isString := jsonv.AsString(desc); isString && s != "" {
			card.Blocks = markdown.Parse(s)
		}
	}

	for _, m := range obj.Members() {
		if _, meta := metaKeys[m.Key]; meta {
			continue
		}
		if jsonv.IsNull(m.Value) {
			continue
		}
		if s, isString := jsonv.AsString(m.Value); isString && s == "" {
			continue
		}
		card.Add(&Node{Kind: KindBadge, Label: fields.FormatLabel(m.Key), Value: fields.MetaValue(m.Value)})
	}
	return card
}

// Collapsible is a raw JSON view, closed unless open is set.
func Collapsible(label string, value jsonv.Value, open bool) *Node {
	raw, err := jsonv.MarshalIndent(value, "  ")
	if err != nil {
		raw = []byte(jsonv.Display(value))
	}
	return &Node{Kind: KindCollapsible, Label: label, Raw: string(raw), Open: open}
}
