package testutils

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

const (
	// TestRulesetID is the ruleset fixtures belong to
	TestRulesetID = "srd-5e"

	// TestImportedAt is a fixed import time for fixtures
	TestImportedAt int64 = 1700000000
)

// NewTestEntity creates an entity with a small spell-like payload
func NewTestEntity(rulesetID, id, entityType, name string) *ruleset.Entity {
	return &ruleset.Entity{
		ID:         id,
		RulesetID:  rulesetID,
		EntityType: entityType,
		Name:       name,
		Data: jsonv.NewObject().
			Set("level", jsonv.Number(3)).
			Set("school", jsonv.String("Evocation")).
			Set("desc", jsonv.String("A bright streak flashes from your pointing finger.")),
		ImportedAt: TestImportedAt,
	}
}

// CreateTestSpell creates a fully populated spell entity
func CreateTestSpell() *ruleset.Entity {
	data := jsonv.NewObject().
		Set("level", jsonv.Number(3)).
		Set("school", jsonv.String("Evocation")).
		Set("casting_time", jsonv.String("1 action")).
		Set("range", jsonv.String("150 feet")).
		Set("components", jsonv.Array{jsonv.String("V"), jsonv.String("S"), jsonv.String("M")}).
		Set("material", jsonv.String("A tiny ball of bat guano and sulfur.")).
		Set("duration", jsonv.String("Instantaneous")).
		Set("concentration", jsonv.Bool(false)).
		Set("ritual", jsonv.Bool(false)).
		Set("desc", jsonv.String("A bright streak flashes from your pointing finger.\n\nEach creature takes **8d6** fire damage.")).
		Set("higher_level", jsonv.String("The damage increases by 1d6 for each slot level above 3rd."))

	return &ruleset.Entity{
		ID:         "ent_fireball",
		RulesetID:  TestRulesetID,
		EntityType: ruleset.EntityTypeSpell,
		SourceKey:  "fireball",
		Name:       "Fireball",
		Data:       data,
		ImportedAt: TestImportedAt,
	}
}

// CreateTestCreature creates a creature entity with ability scores and a
// hit dice expression
func CreateTestCreature() *ruleset.Entity {
	data := jsonv.NewObject().
		Set("size", jsonv.String("Small")).
		Set("type", jsonv.String("humanoid")).
		Set("alignment", jsonv.String("neutral evil")).
		Set("armor_class", jsonv.Number(15)).
		Set("hit_points", jsonv.Number(7)).
		Set("hit_dice", jsonv.String("2d6")).
		Set("speed", jsonv.NewObject().Set("walk", jsonv.String("30 ft."))).
		Set("challenge_rating", jsonv.Number(0.25)).
		Set("ability_scores", jsonv.NewObject().
			Set("str", jsonv.Number(8)).
			Set("dex", jsonv.Number(14)).
			Set("con", jsonv.Number(10)).
			Set("int", jsonv.Number(10)).
			Set("wis", jsonv.Number(8)).
			Set("cha", jsonv.Number(8))).
		Set("actions", jsonv.Array{
			jsonv.NewObject().
				Set("name", jsonv.String("Scimitar")).
				Set("desc", jsonv.String("*Melee Weapon Attack:* +4 to hit, reach 5 ft.")),
		})

	return &ruleset.Entity{
		ID:         "ent_goblin",
		RulesetID:  TestRulesetID,
		EntityType: ruleset.EntityTypeCreature,
		SourceKey:  "goblin",
		Name:       "Goblin",
		Data:       data,
		ImportedAt: TestImportedAt,
	}
}

const (
	// TestOwnerID owns fixture overlays
	TestOwnerID = "user_1"
	// TestCampaignID scopes campaign fixture overlays
	TestCampaignID = "camp_1"
)

// NewTestOverlay creates a global overlay on the fixture Fireball
func NewTestOverlay(id, overlayType string, data *jsonv.Object) *ruleset.Overlay {
	if data == nil {
		data = jsonv.NewObject()
	}
	return &ruleset.Overlay{
		ID:          id,
		OwnerID:     TestOwnerID,
		RulesetID:   TestRulesetID,
		EntityType:  ruleset.EntityTypeSpell,
		SourceKey:   "fireball",
		OverlayType: overlayType,
		Data:        data,
		CreatedAt:   TestImportedAt,
		UpdatedAt:   TestImportedAt,
	}
}
