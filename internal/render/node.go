package render

import (
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

// Kind identifies a fragment node.
type Kind string

const (
	KindEntity       Kind = "entity"
	KindInfoGrid     Kind = "info_grid"
	KindInfoBox      Kind = "info_box"
	KindTextBlock    Kind = "text_block"
	KindKeyValueGrid Kind = "key_value_grid"
	KindGridCell     Kind = "grid_cell"
	KindSectionList  Kind = "section_list"
	KindSectionCard  Kind = "section_card"
	KindBadge        Kind = "badge"
	KindDetailCard   Kind = "detail_card"
	KindDetailRow    Kind = "detail_row"
	KindDetailText   Kind = "detail_text"
	KindCollapsible  Kind = "collapsible"
	KindAbilityGrid  Kind = "ability_grid"
	KindEntryPanel   Kind = "entry_panel"
	KindEntry        Kind = "entry"
)

// Section list variants.
const (
	VariantNamed    = "named"
	VariantDescOnly = "desc_only"
)

// Renderer names reported on the root node.
const (
	RendererGeneric  = "generic"
	RendererSpell    = "spell"
	RendererCreature = "creature"
)

// Node is one element of a rendered fragment. The tree carries structure
// only; styling is left to the render target.
type Node struct {
	Kind     Kind             `json:"kind"`
	Label    string           `json:"label,omitempty"`
	Value    string           `json:"value,omitempty"`
	Variant  string           `json:"variant,omitempty"`
	Blocks   []markdown.Block `json:"blocks,omitempty"`
	Raw      string           `json:"raw,omitempty"`
	Open     bool             `json:"open,omitempty"`
	Children []*Node          `json:"children,omitempty"`
}

// Add appends non-nil children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Find returns the first descendant (depth first, n included) of the given
// kind and label.
func (n *Node) Find(kind Kind, label string) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == kind && n.Label == label {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(kind, label); found != nil {
			return found
		}
	}
	return nil
}

// Options control presentation state that lives outside the render core.
type Options struct {
	// ExpandRaw renders collapsible raw views open.
	ExpandRaw bool
}

// Option configures a render.
type Option func(*Options)

// WithExpandRaw sets whether raw views start open.
func WithExpandRaw(expand bool) Option {
	return func(o *Options) {
		o.ExpandRaw = expand
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
