package compendium

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
)

func (o *orchestrator) CreateOverlay(ctx context.Context, input *CreateOverlayInput) (*CreateOverlayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
	errors.ValidateRequired("entity_type", input.EntityType, vb)
	errors.ValidateRequired("source_key", input.SourceKey, vb)
	errors.ValidateEnum("overlay_type", input.OverlayType, ruleset.OverlayTypes, vb)
	if input.OverlayType != ruleset.OverlayTypeDisable && input.Data == nil {
		vb.RequiredField("overlay_data")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.findTarget(ctx, input.RulesetID, input.EntityType, input.SourceKey); err != nil {
		return nil, err
	}

	data := input.Data
	if data == nil {
		data = jsonv.NewObject()
	}

	now := o.clock.Now().Unix()
	created := &ruleset.Overlay{
		ID:          o.overlayIDGen.Generate(),
		OwnerID:     input.OwnerID,
		RulesetID:   input.RulesetID,
		EntityType:  input.EntityType,
		SourceKey:   input.SourceKey,
		OverlayType: input.OverlayType,
		Data:        data,
		CampaignID:  input.CampaignID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := o.overlayRepo.Put(ctx, overlay.PutInput{Overlay: created}); err != nil {
		return nil, errors.Wrapf(err, "failed to store overlay for %s %s", input.EntityType, input.SourceKey)
	}

	slog.InfoContext(ctx, "created overlay",
		"overlay_id", created.ID,
		"owner_id", created.OwnerID,
		"ruleset_id", created.RulesetID,
		"entity_type", created.EntityType,
		"source_key", created.SourceKey,
		"overlay_type", created.OverlayType)

	return &CreateOverlayOutput{Overlay: created}, nil
}

func (o *orchestrator) UpdateOverlay(ctx context.Context, input *UpdateOverlayInput) (*UpdateOverlayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("overlay_id", input.OverlayID, vb)
	if input.OverlayType != "" {
		errors.ValidateEnum("overlay_type", input.OverlayType, ruleset.OverlayTypes, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	existing, err := o.getOwnedOverlay(ctx, input.OwnerID, input.OverlayID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if input.OverlayType != "" {
		updated.OverlayType = input.OverlayType
	}
	if input.Data != nil {
		updated.Data = input.Data
	}
	updated.UpdatedAt = o.clock.Now().Unix()

	if _, err := o.overlayRepo.Put(ctx, overlay.PutInput{Overlay: &updated}); err != nil {
		return nil, errors.Wrapf(err, "failed to update overlay %s", input.OverlayID)
	}

	return &UpdateOverlayOutput{Overlay: &updated}, nil
}

func (o *orchestrator) DeleteOverlay(ctx context.Context, input *DeleteOverlayInput) (*DeleteOverlayOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("overlay_id", input.OverlayID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.getOwnedOverlay(ctx, input.OwnerID, input.OverlayID); err != nil {
		return nil, err
	}

	if _, err := o.overlayRepo.Delete(ctx, overlay.DeleteInput{OverlayID: input.OverlayID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete overlay %s", input.OverlayID)
	}

	slog.InfoContext(ctx, "deleted overlay",
		"overlay_id", input.OverlayID,
		"owner_id", input.OwnerID)

	return &DeleteOverlayOutput{}, nil
}

func (o *orchestrator) ListOverlays(ctx context.Context, input *ListOverlaysInput) (*ListOverlaysOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner_id is required")
	}

	listed, err := o.overlayRepo.ListByOwner(ctx, overlay.ListByOwnerInput{
		OwnerID:    input.OwnerID,
		RulesetID:  input.RulesetID,
		CampaignID: input.CampaignID,
		EntityType: input.EntityType,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list overlays for %s", input.OwnerID)
	}

	return &ListOverlaysOutput{Overlays: listed.Overlays}, nil
}

// getOwnedOverlay reports another owner's overlay as not found.
func (o *orchestrator) getOwnedOverlay(ctx context.Context, ownerID, overlayID string) (*ruleset.Overlay, error) {
	got, err := o.overlayRepo.Get(ctx, overlay.GetInput{OverlayID: overlayID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load overlay %s", overlayID)
	}
	if got.Overlay.OwnerID != ownerID {
		return nil, errors.NotFoundf("overlay %s not found", overlayID)
	}

	return got.Overlay, nil
}

// findTarget checks that an overlay target exists. Imported entities are
// matched by source key; anything else by entity ID.
func (o *orchestrator) findTarget(ctx context.Context, rulesetID, entityType, key string) error {
	_, err := o.entityRepo.GetBySourceKey(ctx, rulesetentity.GetBySourceKeyInput{
		RulesetID:  rulesetID,
		EntityType: entityType,
		SourceKey:  key,
	})
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return errors.Wrapf(err, "failed to look up %s %s", entityType, key)
	}

	got, err := o.entityRepo.Get(ctx, rulesetentity.GetInput{
		RulesetID: rulesetID,
		EntityID:  key,
	})
	if err != nil && !errors.IsNotFound(err) {
		return errors.Wrapf(err, "failed to look up %s %s", entityType, key)
	}
	if err == nil && got.Entity.EntityType == entityType && got.Entity.OverlayKey() == key {
		return nil
	}

	return errors.NotFoundf("%s %s not found in ruleset %s", entityType, key, rulesetID)
}
