// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay"
	overlaymock "github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay/mock"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
	rulesetentitymock "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity/mock"
)

// ExpectEntityGet sets up a mock expectation for loading a stored entity
func ExpectEntityGet(
	ctx context.Context,
	mockRepo *rulesetentitymock.MockRepository,
	entity *ruleset.Entity,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, rulesetentity.GetInput{
			RulesetID: entity.RulesetID,
			EntityID:  entity.ID,
		}).
		Return(&rulesetentity.GetOutput{Entity: entity}, nil)
}

// ExpectSourceKeyMiss sets up a lookup that finds no previous import
func ExpectSourceKeyMiss(
	ctx context.Context,
	mockRepo *rulesetentitymock.MockRepository,
	rulesetID, entityType, sourceKey string,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetBySourceKey(ctx, rulesetentity.GetBySourceKeyInput{
			RulesetID:  rulesetID,
			EntityType: entityType,
			SourceKey:  sourceKey,
		}).
		Return(nil, errors.NotFoundf("%s %s not found", entityType, sourceKey))
}

// ExpectSourceKeyHit sets up a lookup that finds an earlier import of existing
func ExpectSourceKeyHit(
	ctx context.Context,
	mockRepo *rulesetentitymock.MockRepository,
	existing *ruleset.Entity,
) *gomock.Call {
	return mockRepo.EXPECT().
		GetBySourceKey(ctx, rulesetentity.GetBySourceKeyInput{
			RulesetID:  existing.RulesetID,
			EntityType: existing.EntityType,
			SourceKey:  existing.SourceKey,
		}).
		Return(&rulesetentity.GetBySourceKeyOutput{Entity: existing}, nil)
}

// ExpectEntityPut sets up a mock expectation for storing entities. Every
// stored entity is appended to stored when it is non-nil.
func ExpectEntityPut(
	ctx context.Context,
	mockRepo *rulesetentitymock.MockRepository,
	stored *[]*ruleset.Entity,
) *gomock.Call {
	return mockRepo.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rulesetentity.PutInput) (*rulesetentity.PutOutput, error) {
			if stored != nil {
				*stored = append(*stored, input.Entity)
			}
			return &rulesetentity.PutOutput{Entity: input.Entity}, nil
		})
}

// ExpectOverlaysForEntity sets up the overlay lookup of an effective read
func ExpectOverlaysForEntity(
	ctx context.Context,
	mockRepo *overlaymock.MockRepository,
	entity *ruleset.Entity,
	ownerID, campaignID string,
	overlays ...*ruleset.Overlay,
) *gomock.Call {
	return mockRepo.EXPECT().
		ListForEntity(ctx, overlay.ListForEntityInput{
			OwnerID:    ownerID,
			RulesetID:  entity.RulesetID,
			EntityType: entity.EntityType,
			SourceKey:  entity.OverlayKey(),
			CampaignID: campaignID,
		}).
		Return(&overlay.ListForEntityOutput{Overlays: overlays}, nil)
}

// ExpectOverlayGet sets up a mock expectation for loading a stored overlay
func ExpectOverlayGet(
	ctx context.Context,
	mockRepo *overlaymock.MockRepository,
	stored *ruleset.Overlay,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, overlay.GetInput{OverlayID: stored.ID}).
		Return(&overlay.GetOutput{Overlay: stored}, nil)
}

// ExpectOverlayPut sets up a mock expectation for storing an overlay. The
// stored overlay is written to stored when it is non-nil.
func ExpectOverlayPut(
	ctx context.Context,
	mockRepo *overlaymock.MockRepository,
	stored **ruleset.Overlay,
) *gomock.Call {
	return mockRepo.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input overlay.PutInput) (*overlay.PutOutput, error) {
			if stored != nil {
				*stored = input.Overlay
			}
			return &overlay.PutOutput{Overlay: input.Overlay}, nil
		})
}
