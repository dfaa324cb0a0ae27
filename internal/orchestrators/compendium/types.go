package compendium

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
)

// Import kinds accepted by ImportSRD
const (
	ImportKindSpells    = "spells"
	ImportKindEquipment = "equipment"
	ImportKindRaces     = "races"
	ImportKindFeatures  = "features"
)

// ImportKinds lists every accepted import kind
var ImportKinds = []string{
	ImportKindSpells,
	ImportKindEquipment,
	ImportKindRaces,
	ImportKindFeatures,
}

// OverlayScope selects the overlays applied to a read. The zero value reads
// the stored data as is.
type OverlayScope struct {
	// Effective applies OwnerID's overlays. OwnerID is then required.
	Effective bool
	OwnerID   string
	// CampaignID adds the owner's overlays of one campaign to the global ones
	CampaignID string
}

// GetEntityInput identifies a stored entity
type GetEntityInput struct {
	RulesetID string
	EntityID  string
	OverlayScope
}

// GetEntityOutput holds the entity, with overlays applied for an effective
// read
type GetEntityOutput struct {
	Entity     *ruleset.Entity
	IsDisabled bool
	HasOverlay bool
}

// RenderEntityInput identifies a stored entity to render
type RenderEntityInput struct {
	RulesetID string
	EntityID  string
	ExpandRaw bool
	OverlayScope
}

// RenderEntityOutput holds the entity and its fragment tree. For an
// effective read both reflect the applied overlays.
type RenderEntityOutput struct {
	Entity     *ruleset.Entity
	Fragment   *render.Node
	IsDisabled bool
	HasOverlay bool
}

// RenderPayloadInput is an unsaved payload to render
type RenderPayloadInput struct {
	EntityType string
	Data       *jsonv.Object
	ExpandRaw  bool
}

// RenderPayloadOutput holds the rendered fragment tree
type RenderPayloadOutput struct {
	Fragment *render.Node
}

// ListEntitiesInput filters and pages a ruleset's catalog
type ListEntitiesInput struct {
	RulesetID  string
	EntityType string
	Search     string
	Page       int
	PerPage    int
}

// ListEntitiesOutput is one page of the catalog
type ListEntitiesOutput struct {
	Entities []*ruleset.Entity
	Total    int
	Page     int
	Pages    int
	PerPage  int
}

// ImportSRDInput selects which SRD records to copy into a ruleset
type ImportSRDInput struct {
	RulesetID string
	Kind      string
	// Keys limits the import to these SRD keys. Required for features.
	Keys []string
	// Category narrows an equipment import, e.g. "martial-weapons"
	Category string
}

// ImportSRDOutput counts created and refreshed entities
type ImportSRDOutput struct {
	Imported int
	Updated  int
	Entities []*ruleset.Entity
}

// RollHitPointsInput identifies the creature to roll for
type RollHitPointsInput struct {
	RulesetID string
	EntityID  string
}

// RollHitPointsOutput is one hit point roll
type RollHitPointsOutput struct {
	Notation string
	Rolls    []int
	Modifier int
	Total    int
}

// CreateOverlayInput describes a new overlay. SourceKey names the target
// entity by its source key, or by its ID when it was not imported.
type CreateOverlayInput struct {
	OwnerID     string
	RulesetID   string
	EntityType  string
	SourceKey   string
	OverlayType string
	// Data is required unless OverlayType is disable
	Data       *jsonv.Object
	CampaignID string
}

// CreateOverlayOutput holds the stored overlay
type CreateOverlayOutput struct {
	Overlay *ruleset.Overlay
}

// UpdateOverlayInput changes an overlay. Empty OverlayType and nil Data
// leave those parts unchanged.
type UpdateOverlayInput struct {
	OwnerID     string
	OverlayID   string
	OverlayType string
	Data        *jsonv.Object
}

// UpdateOverlayOutput holds the updated overlay
type UpdateOverlayOutput struct {
	Overlay *ruleset.Overlay
}

// DeleteOverlayInput identifies the overlay to remove
type DeleteOverlayInput struct {
	OwnerID   string
	OverlayID string
}

// DeleteOverlayOutput is empty on success
type DeleteOverlayOutput struct{}

// ListOverlaysInput filters an owner's overlays. Empty filters match all.
type ListOverlaysInput struct {
	OwnerID    string
	RulesetID  string
	CampaignID string
	EntityType string
}

// ListOverlaysOutput holds the matching overlays, oldest first
type ListOverlaysOutput struct {
	Overlays []*ruleset.Overlay
}
