// Package v1alpha1 handles the compendium grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CompendiumService compendium.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CompendiumService == nil {
		return errors.InvalidArgument("compendium service is required")
	}
	return nil
}

// Handler implements the compendium gRPC service
type Handler struct {
	compendiumService compendium.Service
}

var _ CompendiumServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		compendiumService: cfg.CompendiumService,
	}, nil
}

// RenderEntity renders a stored entity. With effective set the owner's
// overlays are applied first.
// Request: {ruleset_id, entity_id, expand_raw, effective, owner_id, campaign_id}
// Response: {entity, fragment, is_disabled, has_overlay}
func (h *Handler) RenderEntity(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.compendiumService.RenderEntity(ctx, &compendium.RenderEntityInput{
		RulesetID: stringField(req, "ruleset_id"),
		EntityID:  stringField(req, "entity_id"),
		ExpandRaw: boolField(req, "expand_raw"),
		OverlayScope: compendium.OverlayScope{
			Effective:  boolField(req, "effective"),
			OwnerID:    stringField(req, "owner_id"),
			CampaignID: stringField(req, "campaign_id"),
		},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(renderEntityResponse{
		Entity:     output.Entity,
		Fragment:   output.Fragment,
		IsDisabled: output.IsDisabled,
		HasOverlay: output.HasOverlay,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// RenderPayload renders entity data that is not stored.
// Request: {entity_type, entity_data_json | entity_data, expand_raw}
// Response: {fragment}
func (h *Handler) RenderPayload(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	data, err := entityData(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.compendiumService.RenderPayload(ctx, &compendium.RenderPayloadInput{
		EntityType: stringField(req, "entity_type"),
		Data:       data,
		ExpandRaw:  boolField(req, "expand_raw"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(renderPayloadResponse{Fragment: output.Fragment})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ListEntities returns a page of a ruleset's catalog.
// Request: {ruleset_id, entity_type, search, page, per_page}
func (h *Handler) ListEntities(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.compendiumService.ListEntities(ctx, &compendium.ListEntitiesInput{
		RulesetID:  stringField(req, "ruleset_id"),
		EntityType: stringField(req, "entity_type"),
		Search:     stringField(req, "search"),
		Page:       intField(req, "page"),
		PerPage:    intField(req, "per_page"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(listEntitiesResponse{
		Entities: output.Entities,
		Total:    output.Total,
		Page:     output.Page,
		Pages:    output.Pages,
		PerPage:  output.PerPage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// RollHitPoints rolls a creature's hit dice.
// Request: {ruleset_id, entity_id}
func (h *Handler) RollHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.compendiumService.RollHitPoints(ctx, &compendium.RollHitPointsInput{
		RulesetID: stringField(req, "ruleset_id"),
		EntityID:  stringField(req, "entity_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(rollHitPointsResponse{
		Notation: output.Notation,
		Rolls:    output.Rolls,
		Modifier: output.Modifier,
		Total:    output.Total,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}
