// Package overlay provides persistence for owner overlays on ruleset entities
package overlay

//go:generate mockgen -destination=mock/mock_repository.go -package=overlaymock github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
)

// Repository defines the interface for overlay persistence
type Repository interface {
	// Put creates or replaces an overlay
	// Returns errors.InvalidArgument for missing IDs, target or type
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves an overlay by ID
	// Returns errors.NotFound if the overlay doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByOwner returns an owner's overlays, oldest first
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// ListForEntity returns the overlays an owner has on one entity: the
	// global ones plus those of CampaignID when it is set
	ListForEntity(ctx context.Context, input ListForEntityInput) (*ListForEntityOutput, error)

	// Delete removes an overlay and its index entries
	// Returns errors.NotFound if the overlay doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing an overlay
type PutInput struct {
	Overlay *ruleset.Overlay
}

// PutOutput defines the output for storing an overlay
type PutOutput struct {
	Overlay *ruleset.Overlay
}

// GetInput defines the input for getting an overlay
type GetInput struct {
	OverlayID string
}

// GetOutput defines the output for getting an overlay
type GetOutput struct {
	Overlay *ruleset.Overlay
}

// ListByOwnerInput filters an owner's overlays. Empty filters match all.
type ListByOwnerInput struct {
	OwnerID    string
	RulesetID  string
	CampaignID string
	EntityType string
}

// ListByOwnerOutput defines the output for listing an owner's overlays
type ListByOwnerOutput struct {
	Overlays []*ruleset.Overlay
}

// ListForEntityInput identifies the entity and the scope to resolve
type ListForEntityInput struct {
	OwnerID    string
	RulesetID  string
	EntityType string
	SourceKey  string
	CampaignID string
}

// ListForEntityOutput defines the output for an entity's overlays
type ListForEntityOutput struct {
	Overlays []*ruleset.Overlay
}

// DeleteInput defines the input for deleting an overlay
type DeleteInput struct {
	OverlayID string
}

// DeleteOutput defines the output for deleting an overlay
type DeleteOutput struct{}
