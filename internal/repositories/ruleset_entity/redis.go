package rulesetentity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	rulesetKeyPrefix = "ruleset:"

	// Error messages
	errEntityNil       = "entity cannot be nil"
	errRulesetIDEmpty  = "ruleset ID cannot be empty"
	errEntityIDEmpty   = "entity ID cannot be empty"
	errEntityTypeEmpty = "entity type cannot be empty"
	errNameEmpty       = "entity name cannot be empty"
	errSourceKeyEmpty  = "source key cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis entity repository.
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

// NewRedis creates a new Redis-backed entity repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	entity := input.Entity
	if entity == nil {
		return nil, errors.InvalidArgument(errEntityNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ruleset_id", entity.RulesetID, vb)
	errors.ValidateRequired("id", entity.ID, vb)
	errors.ValidateRequired("entity_type", entity.EntityType, vb)
	errors.ValidateRequired("name", entity.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	previous, err := r.load(ctx, entity.RulesetID, entity.ID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entity")
	}

	pipe := r.client.TxPipeline()

	// Drop index entries the new version no longer matches
	if previous != nil {
		if previous.EntityType != entity.EntityType {
			pipe.SRem(ctx, TypeIndexKey(entity.RulesetID, previous.EntityType), entity.ID)
		}
		if previous.SourceKey != "" &&
			(previous.SourceKey != entity.SourceKey || previous.EntityType != entity.EntityType) {
			pipe.Del(ctx, SourceKey(entity.RulesetID, previous.EntityType, previous.SourceKey))
		}
	}

	pipe.Set(ctx, EntityKey(entity.RulesetID, entity.ID), data, 0)
	pipe.SAdd(ctx, EntitiesIndexKey(entity.RulesetID), entity.ID)
	pipe.SAdd(ctx, TypeIndexKey(entity.RulesetID, entity.EntityType), entity.ID)
	if entity.SourceKey != "" {
		pipe.Set(ctx, SourceKey(entity.RulesetID, entity.EntityType, entity.SourceKey), entity.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store entity %s", entity.ID)
	}

	return &PutOutput{Entity: entity}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RulesetID == "" {
		return nil, errors.InvalidArgument(errRulesetIDEmpty)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	entity, err := r.load(ctx, input.RulesetID, input.EntityID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Entity: entity}, nil
}

func (r *redisRepository) GetBySourceKey(ctx context.Context, input GetBySourceKeyInput) (*GetBySourceKeyOutput, error) {
	if input.RulesetID == "" {
		return nil, errors.InvalidArgument(errRulesetIDEmpty)
	}
	if input.EntityType == "" {
		return nil, errors.InvalidArgument(errEntityTypeEmpty)
	}
	if input.SourceKey == "" {
		return nil, errors.InvalidArgument(errSourceKeyEmpty)
	}

	mappingKey := SourceKey(input.RulesetID, input.EntityType, input.SourceKey)
	entityID, err := r.client.Get(ctx, mappingKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no %s imported with key %s", input.EntityType, input.SourceKey)
		}
		return nil, errors.Wrapf(err, "failed to get source key mapping")
	}

	entity, err := r.load(ctx, input.RulesetID, entityID)
	if err != nil {
		if errors.IsNotFound(err) {
			// Mapping outlived its entity
			if delErr := r.client.Del(ctx, mappingKey).Err(); delErr != nil {
				slog.WarnContext(ctx, "failed to remove stale source mapping",
					"key", mappingKey, "error", delErr)
			}
		}
		return nil, err
	}

	return &GetBySourceKeyOutput{Entity: entity}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.RulesetID == "" {
		return nil, errors.InvalidArgument(errRulesetIDEmpty)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	indexKey := EntitiesIndexKey(input.RulesetID)
	if input.EntityType != "" {
		indexKey = TypeIndexKey(input.RulesetID, input.EntityType)
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list entity IDs")
	}

	entities, err := r.loadMany(ctx, input.RulesetID, indexKey, ids)
	if err != nil {
		return nil, err
	}

	if search := strings.ToLower(strings.TrimSpace(input.Search)); search != "" {
		filtered := entities[:0]
		for _, e := range entities {
			if strings.Contains(strings.ToLower(e.Name), search) {
				filtered = append(filtered, e)
			}
		}
		entities = filtered
	}

	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Name != entities[j].Name {
			return entities[i].Name < entities[j].Name
		}
		return entities[i].ID < entities[j].ID
	})

	total := len(entities)
	pages := (total + perPage - 1) / perPage
	start := min((page-1)*perPage, total)
	end := min(start+perPage, total)

	return &ListOutput{
		Entities: entities[start:end],
		Total:    total,
		Page:     page,
		Pages:    pages,
		PerPage:  perPage,
	}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RulesetID == "" {
		return nil, errors.InvalidArgument(errRulesetIDEmpty)
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument(errEntityIDEmpty)
	}

	entity, err := r.load(ctx, input.RulesetID, input.EntityID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, EntityKey(input.RulesetID, input.EntityID))
	pipe.SRem(ctx, EntitiesIndexKey(input.RulesetID), input.EntityID)
	pipe.SRem(ctx, TypeIndexKey(input.RulesetID, entity.EntityType), input.EntityID)
	if entity.SourceKey != "" {
		pipe.Del(ctx, SourceKey(input.RulesetID, entity.EntityType, entity.SourceKey))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete entity %s", input.EntityID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) load(ctx context.Context, rulesetID, entityID string) (*ruleset.Entity, error) {
	result, err := r.client.Get(ctx, EntityKey(rulesetID, entityID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("entity %s not found in ruleset %s", entityID, rulesetID)
		}
		return nil, errors.Wrapf(err, "failed to get entity %s", entityID)
	}

	var entity ruleset.Entity
	if err := json.Unmarshal([]byte(result), &entity); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal entity %s", entityID)
	}

	return &entity, nil
}

// loadMany fetches entities in one round trip. IDs whose data is gone are
// removed from the index they came from.
func (r *redisRepository) loadMany(ctx context.Context, rulesetID, indexKey string, ids []string) ([]*ruleset.Entity, error) {
	if len(ids) == 0 {
		return []*ruleset.Entity{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = EntityKey(rulesetID, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get entities")
	}

	entities := make([]*ruleset.Entity, 0, len(values))
	var stale []interface{}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}

		var entity ruleset.Entity
		if err := json.Unmarshal([]byte(raw), &entity); err != nil {
			slog.WarnContext(ctx, "skipping unreadable entity", "entity_id", ids[i], "error", err)
			continue
		}
		entities = append(entities, &entity)
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			slog.WarnContext(ctx, "failed to remove stale index entries",
				"index", indexKey, "count", len(stale), "error", err)
		}
	}

	return entities, nil
}

// EntityKey returns the Redis key holding an entity
func EntityKey(rulesetID, entityID string) string {
	return fmt.Sprintf("%s%s:entity:%s", rulesetKeyPrefix, rulesetID, entityID)
}

// EntitiesIndexKey returns the Redis set of all entity IDs in a ruleset
func EntitiesIndexKey(rulesetID string) string {
	return fmt.Sprintf("%s%s:entities", rulesetKeyPrefix, rulesetID)
}

// TypeIndexKey returns the Redis set of entity IDs of one type
func TypeIndexKey(rulesetID, entityType string) string {
	return fmt.Sprintf("%s%s:type:%s", rulesetKeyPrefix, rulesetID, entityType)
}

// SourceKey returns the Redis key mapping a source dataset key to an entity ID
func SourceKey(rulesetID, entityType, sourceKey string) string {
	return fmt.Sprintf("%s%s:source:%s:%s", rulesetKeyPrefix, rulesetID, entityType, sourceKey)
}
