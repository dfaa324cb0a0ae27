// Package rulesetentity provides the interface for ruleset entity persistence
package rulesetentity

//go:generate mockgen -destination=mock/mock_repository.go -package=rulesetentitymock github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
)

const (
	// DefaultPerPage is used when a list request does not set a page size
	DefaultPerPage = 50
	// MaxPerPage caps the page size of a list request
	MaxPerPage = 100
)

// Repository defines the interface for ruleset entity persistence
type Repository interface {
	// Put creates or replaces an entity
	// Returns errors.InvalidArgument for missing IDs, type or name
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves an entity by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the entity doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetBySourceKey retrieves an entity by the key it had in its source dataset
	// Returns errors.NotFound if no entity was imported under that key
	GetBySourceKey(ctx context.Context, input GetBySourceKeyInput) (*GetBySourceKeyOutput, error)

	// List returns a page of a ruleset's entities sorted by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an entity and its index entries
	// Returns errors.NotFound if the entity doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput defines the input for storing an entity
type PutInput struct {
	Entity *ruleset.Entity
}

// PutOutput defines the output for storing an entity
type PutOutput struct {
	Entity *ruleset.Entity
}

// GetInput defines the input for getting an entity
type GetInput struct {
	RulesetID string
	EntityID  string
}

// GetOutput defines the output for getting an entity
type GetOutput struct {
	Entity *ruleset.Entity
}

// GetBySourceKeyInput defines the input for looking an entity up by source key
type GetBySourceKeyInput struct {
	RulesetID  string
	EntityType string
	SourceKey  string
}

// GetBySourceKeyOutput defines the output for looking an entity up by source key
type GetBySourceKeyOutput struct {
	Entity *ruleset.Entity
}

// ListInput defines the input for listing entities
type ListInput struct {
	RulesetID string
	// EntityType filters by type when set
	EntityType string
	// Search is a case-insensitive substring match on the name
	Search  string
	Page    int
	PerPage int
}

// ListOutput defines the output for listing entities
type ListOutput struct {
	Entities []*ruleset.Entity
	Total    int
	Page     int
	Pages    int
	PerPage  int
}

// DeleteInput defines the input for deleting an entity
type DeleteInput struct {
	RulesetID string
	EntityID  string
}

// DeleteOutput defines the output for deleting an entity
type DeleteOutput struct {
	// Empty for now, can be extended later
}
