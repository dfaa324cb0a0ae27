package overlay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	overlayKeyPrefix = "overlay:"
	ownerKeyPrefix   = "owner:"

	errOverlayNil     = "overlay cannot be nil"
	errOverlayIDEmpty = "overlay ID cannot be empty"
	errOwnerIDEmpty   = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis overlay repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed overlay repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	overlay := input.Overlay
	if overlay == nil {
		return nil, errors.InvalidArgument(errOverlayNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", overlay.ID, vb)
	errors.ValidateRequired("owner_id", overlay.OwnerID, vb)
	errors.ValidateRequired("ruleset_id", overlay.RulesetID, vb)
	errors.ValidateRequired("entity_type", overlay.EntityType, vb)
	errors.ValidateRequired("source_key", overlay.SourceKey, vb)
	errors.ValidateEnum("overlay_type", overlay.OverlayType, ruleset.OverlayTypes, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	previous, err := r.load(ctx, overlay.ID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(overlay)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal overlay")
	}

	pipe := r.client.TxPipeline()

	if previous != nil {
		if previous.OwnerID != overlay.OwnerID {
			pipe.SRem(ctx, OwnerIndexKey(previous.OwnerID), overlay.ID)
		}
		if targetIndexKey(previous) != targetIndexKey(overlay) {
			pipe.SRem(ctx, targetIndexKey(previous), overlay.ID)
		}
	}

	pipe.Set(ctx, OverlayKey(overlay.ID), data, 0)
	pipe.SAdd(ctx, OwnerIndexKey(overlay.OwnerID), overlay.ID)
	pipe.SAdd(ctx, targetIndexKey(overlay), overlay.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store overlay %s", overlay.ID)
	}

	return &PutOutput{Overlay: overlay}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OverlayID == "" {
		return nil, errors.InvalidArgument(errOverlayIDEmpty)
	}

	overlay, err := r.load(ctx, input.OverlayID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Overlay: overlay}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	overlays, err := r.loadIndex(ctx, OwnerIndexKey(input.OwnerID))
	if err != nil {
		return nil, err
	}

	filtered := overlays[:0]
	for _, o := range overlays {
		if input.RulesetID != "" && o.RulesetID != input.RulesetID {
			continue
		}
		if input.CampaignID != "" && o.CampaignID != input.CampaignID {
			continue
		}
		if input.EntityType != "" && o.EntityType != input.EntityType {
			continue
		}
		filtered = append(filtered, o)
	}

	return &ListByOwnerOutput{Overlays: filtered}, nil
}

func (r *redisRepository) ListForEntity(ctx context.Context, input ListForEntityInput) (*ListForEntityOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("ruleset_id", input.RulesetID, vb)
	errors.ValidateRequired("entity_type", input.EntityType, vb)
	errors.ValidateRequired("source_key", input.SourceKey, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	indexKey := TargetIndexKey(input.OwnerID, input.RulesetID, input.EntityType, input.SourceKey)
	overlays, err := r.loadIndex(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	inScope := overlays[:0]
	for _, o := range overlays {
		if o.IsGlobal() || o.CampaignID == input.CampaignID {
			inScope = append(inScope, o)
		}
	}

	return &ListForEntityOutput{Overlays: inScope}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OverlayID == "" {
		return nil, errors.InvalidArgument(errOverlayIDEmpty)
	}

	overlay, err := r.load(ctx, input.OverlayID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, OverlayKey(overlay.ID))
	pipe.SRem(ctx, OwnerIndexKey(overlay.OwnerID), overlay.ID)
	pipe.SRem(ctx, targetIndexKey(overlay), overlay.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete overlay %s", overlay.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, overlayID string) (*ruleset.Overlay, error) {
	result, err := r.client.Get(ctx, OverlayKey(overlayID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("overlay %s not found", overlayID)
		}
		return nil, errors.Wrapf(err, "failed to get overlay %s", overlayID)
	}

	var overlay ruleset.Overlay
	if err := json.Unmarshal([]byte(result), &overlay); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal overlay %s", overlayID)
	}

	return &overlay, nil
}

// loadIndex fetches every overlay in an index set, oldest first. IDs whose
// data is gone are removed from the set.
func (r *redisRepository) loadIndex(ctx context.Context, indexKey string) ([]*ruleset.Overlay, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list overlay IDs")
	}
	if len(ids) == 0 {
		return []*ruleset.Overlay{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = OverlayKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get overlays")
	}

	overlays := make([]*ruleset.Overlay, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}

		var overlay ruleset.Overlay
		if err := json.Unmarshal([]byte(raw), &overlay); err != nil {
			slog.WarnContext(ctx, "skipping unreadable overlay", "overlay_id", ids[i], "error", err)
			continue
		}
		overlays = append(overlays, &overlay)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to remove stale overlay index entries",
				"index", indexKey, "count", len(stale), "error", err)
		}
	}

	sort.Slice(overlays, func(i, j int) bool {
		if overlays[i].CreatedAt != overlays[j].CreatedAt {
			return overlays[i].CreatedAt < overlays[j].CreatedAt
		}
		return overlays[i].ID < overlays[j].ID
	})

	return overlays, nil
}

func targetIndexKey(o *ruleset.Overlay) string {
	return TargetIndexKey(o.OwnerID, o.RulesetID, o.EntityType, o.SourceKey)
}

// OverlayKey returns the Redis key holding an overlay
func OverlayKey(overlayID string) string {
	return overlayKeyPrefix + overlayID
}

// OwnerIndexKey returns the Redis set of an owner's overlay IDs
func OwnerIndexKey(ownerID string) string {
	return fmt.Sprintf("%s%s:overlays", ownerKeyPrefix, ownerID)
}

// TargetIndexKey returns the Redis set of an owner's overlay IDs on one entity
func TargetIndexKey(ownerID, rulesetID, entityType, sourceKey string) string {
	return fmt.Sprintf("%s%s:ruleset:%s:overlays:%s:%s", ownerKeyPrefix, ownerID, rulesetID, entityType, sourceKey)
}
