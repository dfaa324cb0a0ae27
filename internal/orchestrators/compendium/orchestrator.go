// Package compendium implements the use cases behind the compendium API:
// rendering stored or ad-hoc entities, browsing a ruleset, importing SRD
// records, managing owner overlays and rolling creature hit points.
package compendium

//go:generate mockgen -destination=mock/mock_service.go -package=compendiummock github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-compendium/internal/clients/external"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
)

// Service defines the compendium use cases
type Service interface {
	// GetEntity loads a stored entity, optionally with an owner's overlays
	// applied
	GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error)

	// RenderEntity loads a stored entity and renders it
	RenderEntity(ctx context.Context, input *RenderEntityInput) (*RenderEntityOutput, error)

	// RenderPayload renders data that was never stored
	RenderPayload(ctx context.Context, input *RenderPayloadInput) (*RenderPayloadOutput, error)

	// ListEntities returns one page of a ruleset's entities
	ListEntities(ctx context.Context, input *ListEntitiesInput) (*ListEntitiesOutput, error)

	// ImportSRD copies SRD records into a ruleset, updating entities that
	// were imported before under the same source key
	ImportSRD(ctx context.Context, input *ImportSRDInput) (*ImportSRDOutput, error)

	// RollHitPoints rolls a creature's hit dice
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)

	// CreateOverlay records an owner's change to an existing entity
	CreateOverlay(ctx context.Context, input *CreateOverlayInput) (*CreateOverlayOutput, error)

	// UpdateOverlay replaces an overlay's type or data
	UpdateOverlay(ctx context.Context, input *UpdateOverlayInput) (*UpdateOverlayOutput, error)

	// DeleteOverlay removes an overlay
	DeleteOverlay(ctx context.Context, input *DeleteOverlayInput) (*DeleteOverlayOutput, error)

	// ListOverlays returns an owner's overlays
	ListOverlays(ctx context.Context, input *ListOverlaysInput) (*ListOverlaysOutput, error)
}

// Config holds the dependencies for the compendium orchestrator
type Config struct {
	EntityRepo         rulesetentity.Repository
	OverlayRepo        overlay.Repository
	ExternalClient     external.Client
	IDGenerator        idgen.Generator
	OverlayIDGenerator idgen.Generator
	Clock              clock.Clock
	DiceRoller         dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.EntityRepo == nil {
		vb.RequiredField("EntityRepo")
	}
	if c.OverlayRepo == nil {
		vb.RequiredField("OverlayRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.OverlayIDGenerator == nil {
		vb.RequiredField("OverlayIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	entityRepo     rulesetentity.Repository
	overlayRepo    overlay.Repository
	externalClient external.Client
	idGen          idgen.Generator
	overlayIDGen   idgen.Generator
	clock          clock.Clock
	roller         dice.Roller
}

// NewOrchestrator creates a new compendium orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		entityRepo:     cfg.EntityRepo,
		overlayRepo:    cfg.OverlayRepo,
		externalClient: cfg.ExternalClient,
		idGen:          cfg.IDGenerator,
		overlayIDGen:   cfg.OverlayIDGenerator,
		clock:          cfg.Clock,
		roller:         cfg.DiceRoller,
	}, nil
}

func (o *orchestrator) GetEntity(ctx context.Context, input *GetEntityInput) (*GetEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	loaded, err := o.loadEntity(ctx, input.RulesetID, input.EntityID, input.OverlayScope)
	if err != nil {
		return nil, err
	}

	return &GetEntityOutput{
		Entity:     loaded.Entity,
		IsDisabled: loaded.IsDisabled,
		HasOverlay: loaded.HasOverlay,
	}, nil
}

func (o *orchestrator) RenderEntity(ctx context.Context, input *RenderEntityInput) (*RenderEntityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	loaded, err := o.loadEntity(ctx, input.RulesetID, input.EntityID, input.OverlayScope)
	if err != nil {
		return nil, err
	}
	entity := loaded.Entity

	slog.DebugContext(ctx, "rendering entity",
		"ruleset_id", input.RulesetID,
		"entity_id", input.EntityID,
		"entity_type", entity.EntityType,
		"effective", input.Effective)

	return &RenderEntityOutput{
		Entity:     entity,
		Fragment:   render.Render(entity.EntityType, entity.Data, render.WithExpandRaw(input.ExpandRaw)),
		IsDisabled: loaded.IsDisabled,
		HasOverlay: loaded.HasOverlay,
	}, nil
}

type loadedEntity struct {
	Entity     *ruleset.Entity
	IsDisabled bool
	HasOverlay bool
}

// loadEntity reads an entity and, for an effective read, applies the
// owner's global overlays and then those of the campaign. The stored entity
// is never modified; an effective read returns a copy.
func (o *orchestrator) loadEntity(ctx context.Context, rulesetID, entityID string, scope OverlayScope) (*loadedEntity, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", rulesetID, vb)
	errors.ValidateRequired("entity_id", entityID, vb)
	if scope.Effective {
		errors.ValidateRequired("owner_id", scope.OwnerID, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.entityRepo.Get(ctx, rulesetentity.GetInput{
		RulesetID: rulesetID,
		EntityID:  entityID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load entity %s", entityID)
	}
	if !scope.Effective {
		return &loadedEntity{Entity: got.Entity}, nil
	}

	base := got.Entity
	overlays, err := o.overlayRepo.ListForEntity(ctx, overlay.ListForEntityInput{
		OwnerID:    scope.OwnerID,
		RulesetID:  base.RulesetID,
		EntityType: base.EntityType,
		SourceKey:  base.OverlayKey(),
		CampaignID: scope.CampaignID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load overlays for entity %s", entityID)
	}

	effective := ruleset.ApplyOverlays(base.Data, overlays.Overlays)
	merged := *base
	merged.Data = effective.Data

	return &loadedEntity{
		Entity:     &merged,
		IsDisabled: effective.IsDisabled,
		HasOverlay: effective.HasOverlay,
	}, nil
}

func (o *orchestrator) RenderPayload(_ context.Context, input *RenderPayloadInput) (*RenderPayloadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument("entity_data is required")
	}

	return &RenderPayloadOutput{
		Fragment: render.Render(input.EntityType, input.Data, render.WithExpandRaw(input.ExpandRaw)),
	}, nil
}

func (o *orchestrator) ListEntities(ctx context.Context, input *ListEntitiesInput) (*ListEntitiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
	if input.Page < 0 {
		vb.InvalidField("page", "cannot be negative")
	}
	if input.PerPage < 0 {
		vb.InvalidField("per_page", "cannot be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.entityRepo.List(ctx, rulesetentity.ListInput{
		RulesetID:  input.RulesetID,
		EntityType: input.EntityType,
		Search:     input.Search,
		Page:       input.Page,
		PerPage:    input.PerPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entities")
	}

	return &ListEntitiesOutput{
		Entities: out.Entities,
		Total:    out.Total,
		Page:     out.Page,
		Pages:    out.Pages,
		PerPage:  out.PerPage,
	}, nil
}

func (o *orchestrator) ImportSRD(ctx context.Context, input *ImportSRDInput) (*ImportSRDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
	errors.ValidateEnum("kind", input.Kind, ImportKinds, vb)
	if input.Kind == ImportKindFeatures && len(input.Keys) == 0 {
		vb.Field("keys", "are required for features")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	payloads, err := o.fetchPayloads(ctx, input)
	if err != nil {
		// Uncoded upstream failures mean the SRD source is unreachable
		if errors.GetCode(err) == errors.CodeInternal {
			return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s from SRD", input.Kind)
		}
		return nil, errors.Wrapf(err, "failed to fetch %s from SRD", input.Kind)
	}

	output := &ImportSRDOutput{
		Entities: make([]*ruleset.Entity, 0, len(payloads)),
	}
	importedAt := o.clock.Now().Unix()

	for _, payload := range payloads {
		entity, created, err := o.upsert(ctx, input.RulesetID, payload, importedAt)
		if err != nil {
			return nil, err
		}
		if created {
			output.Imported++
		} else {
			output.Updated++
		}
		output.Entities = append(output.Entities, entity)
	}

	slog.InfoContext(ctx, "imported SRD records",
		"ruleset_id", input.RulesetID,
		"kind", input.Kind,
		"imported", output.Imported,
		"updated", output.Updated)

	return output, nil
}

func (o *orchestrator) fetchPayloads(ctx context.Context, input *ImportSRDInput) ([]*external.Payload, error) {
	if len(input.Keys) > 0 {
		get := o.getterFor(input.Kind)
		payloads := make([]*external.Payload, 0, len(input.Keys))
		for _, key := range input.Keys {
			payload, err := get(ctx, key)
			if err != nil {
				return nil, err
			}
			payloads = append(payloads, payload)
		}
		return payloads, nil
	}

	switch input.Kind {
	case ImportKindSpells:
		return o.externalClient.ListSpells(ctx, nil)
	case ImportKindEquipment:
		return o.externalClient.ListEquipment(ctx, input.Category)
	case ImportKindRaces:
		return o.externalClient.ListRaces(ctx)
	default:
		return nil, errors.InvalidArgumentf("kind %s cannot be listed", input.Kind)
	}
}

func (o *orchestrator) getterFor(kind string) func(context.Context, string) (*external.Payload, error) {
	switch kind {
	case ImportKindSpells:
		return o.externalClient.GetSpell
	case ImportKindEquipment:
		return o.externalClient.GetEquipment
	case ImportKindRaces:
		return o.externalClient.GetRace
	default:
		return o.externalClient.GetFeature
	}
}

// upsert stores a payload, reusing the ID of an entity previously imported
// under the same source key
func (o *orchestrator) upsert(
	ctx context.Context,
	rulesetID string,
	payload *external.Payload,
	importedAt int64,
) (*ruleset.Entity, bool, error) {
	entity := &ruleset.Entity{
		RulesetID:  rulesetID,
		EntityType: payload.EntityType,
		SourceKey:  payload.Key,
		Name:       payload.Name,
		Data:       payload.Data,
		ImportedAt: importedAt,
	}
	if entity.Data == nil {
		entity.Data = jsonv.NewObject()
	}

	created := true
	existing, err := o.entityRepo.GetBySourceKey(ctx, rulesetentity.GetBySourceKeyInput{
		RulesetID:  rulesetID,
		EntityType: payload.EntityType,
		SourceKey:  payload.Key,
	})
	switch {
	case err == nil:
		entity.ID = existing.Entity.ID
		created = false
	case errors.IsNotFound(err):
		entity.ID = o.idGen.Generate()
	default:
		return nil, false, errors.Wrapf(err, "failed to look up %s %s", payload.EntityType, payload.Key)
	}

	if _, err := o.entityRepo.Put(ctx, rulesetentity.PutInput{Entity: entity}); err != nil {
		return nil, false, errors.Wrapf(err, "failed to store %s %s", payload.EntityType, payload.Key)
	}

	return entity, created, nil
}

func (o *orchestrator) RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
	errors.ValidateRequired("entity_id", input.EntityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.entityRepo.Get(ctx, rulesetentity.GetInput{
		RulesetID: input.RulesetID,
		EntityID:  input.EntityID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load entity %s", input.EntityID)
	}

	entity := got.Entity
	if entity.EntityType != ruleset.EntityTypeCreature {
		return nil, errors.FailedPreconditionf("entity %s is a %s, not a creature", entity.ID, entity.EntityType)
	}

	hd, ok := FindHitDice(entity.Data)
	if !ok {
		return nil, errors.FailedPreconditionf("creature %s has no hit dice", entity.Name)
	}
	if err := hd.Validate(); err != nil {
		return nil, errors.Wrapf(err, "creature %s has unrollable hit dice %s", entity.Name, hd)
	}

	rolls, err := o.roller.RollN(hd.Count, hd.Size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", hd)
	}

	total := hd.Modifier
	for _, r := range rolls {
		total += r
	}
	// A creature always has at least one hit point
	if total < 1 {
		total = 1
	}

	slog.DebugContext(ctx, "rolled hit points",
		"entity_id", entity.ID,
		"notation", hd.String(),
		"total", total)

	return &RollHitPointsOutput{
		Notation: hd.String(),
		Rolls:    rolls,
		Modifier: hd.Modifier,
		Total:    total,
	}, nil
}
