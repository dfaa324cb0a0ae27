package ruleset

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

// Overlay types
const (
	// OverlayTypeModify patches a published entity
	OverlayTypeModify = "modify"
	// OverlayTypeHomebrew carries house-rule additions; it merges like modify
	OverlayTypeHomebrew = "homebrew"
	// OverlayTypeDisable hides an entity from its owner's games
	OverlayTypeDisable = "disable"
)

// OverlayTypes lists every accepted overlay type
var OverlayTypes = []string{OverlayTypeModify, OverlayTypeHomebrew, OverlayTypeDisable}

// Overlay is one owner's change to a ruleset entity. It targets the entity
// by type and source key so it survives a re-import. An overlay without a
// campaign applies everywhere; one with a campaign only inside it.
type Overlay struct {
	ID          string        `json:"id"`
	OwnerID     string        `json:"owner_id"`
	RulesetID   string        `json:"ruleset_id"`
	EntityType  string        `json:"entity_type"`
	SourceKey   string        `json:"source_key"`
	OverlayType string        `json:"overlay_type"`
	Data        *jsonv.Object `json:"overlay_data"`
	CampaignID  string        `json:"campaign_id,omitempty"`
	CreatedAt   int64         `json:"created_at"`
	UpdatedAt   int64         `json:"updated_at"`
}

// GetID returns the overlay's ID
func (o *Overlay) GetID() string {
	return o.ID
}

// GetType returns "overlay" for rpg-toolkit
func (o *Overlay) GetType() string {
	return "overlay"
}

// IsGlobal reports whether the overlay applies outside any campaign
func (o *Overlay) IsGlobal() bool {
	return o.CampaignID == ""
}

var _ core.Entity = (*Overlay)(nil)

// OverlayKey is the key overlays use to target the entity: its source key,
// or its ID when it was not imported
func (e *Entity) OverlayKey() string {
	if e.SourceKey != "" {
		return e.SourceKey
	}
	return e.ID
}

// Effective is an entity's data after its owner's overlays were applied
type Effective struct {
	Data       *jsonv.Object
	IsDisabled bool
	HasOverlay bool
}

// ApplyOverlays applies overlays to data. Global overlays go first, then
// campaign overlays, each group oldest first. modify and homebrew are deep
// merged over the data; disable only sets IsDisabled. data is not modified.
func ApplyOverlays(data *jsonv.Object, overlays []*Overlay) Effective {
	ordered := make([]*Overlay, 0, len(overlays))
	for _, o := range overlays {
		if o != nil {
			ordered = append(ordered, o)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsGlobal() != b.IsGlobal() {
			return a.IsGlobal()
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return a.ID < b.ID
	})

	effective := Effective{Data: data, HasOverlay: len(ordered) > 0}
	for _, o := range ordered {
		switch o.OverlayType {
		case OverlayTypeDisable:
			effective.IsDisabled = true
		case OverlayTypeModify, OverlayTypeHomebrew:
			effective.Data = jsonv.DeepMerge(effective.Data, o.Data)
		}
	}
	if effective.Data == nil {
		effective.Data = jsonv.NewObject()
	}
	return effective
}
