// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-compendium/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Spellcasting classes accepted as a spell list filter
var spellcastingClasses = map[string]bool{
	"bard":     true,
	"cleric":   true,
	"druid":    true,
	"paladin":  true,
	"ranger":   true,
	"sorcerer": true,
	"warlock":  true,
	"wizard":   true,
}

// Client loads SRD records and hands them back as schema-less payloads
type Client interface {
	// GetSpell fetches one spell by SRD key
	GetSpell(ctx context.Context, key string) (*Payload, error)

	// ListSpells returns every spell matching the filter with full details
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*Payload, error)

	// GetEquipment fetches one item. The payload's entity type is weapon,
	// armor or equipment depending on the item.
	GetEquipment(ctx context.Context, key string) (*Payload, error)

	// ListEquipment returns all equipment, or one category such as
	// "martial-weapons" when category is set
	ListEquipment(ctx context.Context, category string) ([]*Payload, error)

	// GetRace fetches one race by SRD key
	GetRace(ctx context.Context, key string) (*Payload, error)

	// ListRaces returns all races with full details
	ListRaces(ctx context.Context) ([]*Payload, error)

	// GetFeature fetches one class feature by SRD key
	GetFeature(ctx context.Context, key string) (*Payload, error)

	// ListMonsters returns monster references for browsing
	ListMonsters(ctx context.Context) ([]*Reference, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

func (c *client) GetSpell(_ context.Context, key string) (*Payload, error) {
	spell, err := c.dnd5eClient.GetSpell(toAPIKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", key)
	}
	if spell == nil {
		return nil, errors.NotFoundf("spell %s not found", key)
	}

	return convertSpell(spell), nil
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*Payload, error) {
	var apiInput *dnd5e.ListSpellsInput
	if input != nil {
		apiInput = &dnd5e.ListSpellsInput{Level: input.Level}
		if class := toAPIKey(input.ClassID); spellcastingClasses[class] {
			apiInput.Class = class
		}
	}

	slog.InfoContext(ctx, "Calling D&D 5e API to list spells")
	refs, err := c.dnd5eClient.ListSpells(apiInput)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells from D&D 5e API")
	}
	slog.InfoContext(ctx, "Got spell references", "count", len(refs))

	return loadConcurrently(ctx, "spell", refs, func(key string) (*Payload, error) {
		return c.GetSpell(ctx, key)
	})
}

func (c *client) GetEquipment(_ context.Context, key string) (*Payload, error) {
	item, err := c.dnd5eClient.GetEquipment(toAPIKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get equipment %s", key)
	}

	payload := convertEquipment(item)
	if payload == nil {
		return nil, errors.NotFoundf("equipment %s not found", key)
	}
	return payload, nil
}

func (c *client) ListEquipment(ctx context.Context, category string) ([]*Payload, error) {
	var refs []*entities.ReferenceItem

	if category == "" {
		all, err := c.dnd5eClient.ListEquipment()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list equipment from D&D 5e API")
		}
		refs = all
	} else {
		equipmentCategory, err := c.dnd5eClient.GetEquipmentCategory(toAPIKey(category))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get equipment category %s from D&D 5e API", category)
		}
		if equipmentCategory == nil {
			return nil, errors.NotFoundf("equipment category %s not found", category)
		}
		refs = equipmentCategory.Equipment
	}

	return loadConcurrently(ctx, "equipment", refs, func(key string) (*Payload, error) {
		return c.GetEquipment(ctx, key)
	})
}

func (c *client) GetRace(_ context.Context, key string) (*Payload, error) {
	race, err := c.dnd5eClient.GetRace(toAPIKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get race %s", key)
	}
	if race == nil {
		return nil, errors.NotFoundf("race %s not found", key)
	}

	return convertRace(race), nil
}

func (c *client) ListRaces(ctx context.Context) ([]*Payload, error) {
	slog.InfoContext(ctx, "Calling D&D 5e API to list races")
	refs, err := c.dnd5eClient.ListRaces()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list races from D&D 5e API")
	}

	return loadConcurrently(ctx, "race", refs, func(key string) (*Payload, error) {
		return c.GetRace(ctx, key)
	})
}

func (c *client) GetFeature(_ context.Context, key string) (*Payload, error) {
	feature, err := c.dnd5eClient.GetFeature(toAPIKey(key))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get feature %s", key)
	}
	if feature == nil {
		return nil, errors.NotFoundf("feature %s not found", key)
	}

	return convertFeature(feature), nil
}

func (c *client) ListMonsters(_ context.Context) ([]*Reference, error) {
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters from D&D 5e API")
	}

	out := make([]*Reference, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		out = append(out, &Reference{Key: ref.Key, Name: ref.Name})
	}
	return out, nil
}

// loadConcurrently resolves references into full payloads, keeping the
// reference order. The first failure is returned after all loads finish.
func loadConcurrently(
	ctx context.Context,
	kind string,
	refs []*entities.ReferenceItem,
	load func(key string) (*Payload, error),
) ([]*Payload, error) {
	slog.DebugContext(ctx, "Loading full details concurrently", "kind", kind, "count", len(refs))

	payloads := make([]*Payload, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		if ref == nil {
			continue
		}

		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			payload, err := load(key)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to load details", "kind", kind, "key", key, "error", err)
				errChan <- err
				return
			}
			payloads[idx] = payload
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	out := payloads[:0]
	for _, p := range payloads {
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// toAPIKey normalizes user input such as "Magic Missile" or
// "MAGIC_MISSILE" to the SRD index "magic-missile"
func toAPIKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "_", "-")
	return strings.Join(strings.Fields(key), "-")
}
