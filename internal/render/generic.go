package render

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render/fields"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

// MaxDetailDepth is how many levels of nested objects get their own card.
// Anything deeper is shown as raw JSON.
const MaxDetailDepth = 1

// groups holds classified fields partitioned by visual treatment.
type groups struct {
	header   []fields.Field
	richText []fields.Field
	grids    []fields.Field
	named    []fields.Field
	descOnly []fields.Field
	details  []fields.Field
	unknown  []fields.Field
}

func partition(classified []fields.Field) groups {
	var g groups
	for _, f := range classified {
		switch {
		case f.Shape.IsHeader():
			g.header = append(g.header, f)
		case f.Shape == fields.ShapeRichText:
			g.richText = append(g.richText, f)
		case f.Shape == fields.ShapeKeyValueMap:
			g.grids = append(g.grids, f)
		case f.Shape == fields.ShapeNamedSectionList:
			g.named = append(g.named, f)
		case f.Shape == fields.ShapeDescOnlyList:
			g.descOnly = append(g.descOnly, f)
		case f.Shape == fields.ShapeDetailObject:
			g.details = append(g.details, f)
		default:
			g.unknown = append(g.unknown, f)
		}
	}
	return g
}

// renderGeneric lays out any entity from the shapes of its attributes:
// info boxes, then rich text, grids, named lists, desc-only lists, nested
// detail cards and finally raw views. Empty groups produce nothing.
func renderGeneric(data *jsonv.Object, opts Options) []*Node {
	g := partition(fields.Collect(data))
	var out []*Node

	if len(g.header) > 0 {
		grid := &Node{Kind: KindInfoGrid}
		for _, f := range g.header {
			grid.Add(InfoBox(fields.FormatLabel(f.Key), fields.ResolveValue(f.Value, f.Shape)))
		}
		out = append(out, grid)
	}

	for _, f := range g.richText {
		out = append(out, TextBlock(fields.FormatLabel(f.Key), jsonv.Display(f.Value)))
	}

	for _, f := range g.grids {
		if obj, ok := jsonv.AsObject(f.Value); ok {
			out = appendNode(out, KeyValueGrid(fields.FormatLabel(f.Key), obj))
		}
	}

	for _, f := range g.named {
		out = appendNode(out, SectionList(fields.FormatLabel(f.Key), f.Value.(jsonv.Array), VariantNamed))
	}

	for _, f := range g.descOnly {
		out = appendNode(out, SectionList(fields.FormatLabel(f.Key), f.Value.(jsonv.Array), VariantDescOnly))
	}

	for _, f := range g.details {
		if obj, ok := jsonv.AsObject(f.Value); ok {
			out = appendNode(out, detailCard(fields.FormatLabel(f.Key), obj, 1, opts))
		}
	}

	for _, f := range g.unknown {
		out = append(out, Collapsible(fields.FormatLabel(f.Key), f.Value, opts.ExpandRaw))
	}

	return out
}

// detailCard renders a nested object one level deep: header-shaped attributes
// as label/value rows, rich text as markdown, everything else raw.
func detailCard(label string, data *jsonv.Object, depth int, opts Options) *Node {
	inner := fields.Collect(data)
	if len(inner) == 0 {
		return nil
	}

	card := &Node{Kind: KindDetailCard, Label: label}
	for _, f := range inner {
		innerLabel := fields.FormatLabel(f.Key)
		switch {
		case f.Shape.IsHeader():
			card.Add(&Node{Kind: KindDetailRow, Label: innerLabel, Value: fields.ResolveValue(f.Value, f.Shape)})
		case f.Shape == fields.ShapeRichText:
			card.Add(&Node{Kind: KindDetailText, Label: innerLabel, Blocks: markdown.Parse(jsonv.Display(f.Value))})
		case f.Shape == fields.ShapeDetailObject && depth < MaxDetailDepth:
			obj, _ := jsonv.AsObject(f.Value)
			card.Add(detailCard(innerLabel, obj, depth+1, opts))
		default:
			card.Add(Collapsible(innerLabel, f.Value, opts.ExpandRaw))
		}
	}
	return card
}

func appendNode(out []*Node, n *Node) []*Node {
	if n == nil {
		return out
	}
	return append(out, n)
}
