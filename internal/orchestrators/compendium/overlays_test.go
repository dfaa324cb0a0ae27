package compendium_test

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/overlay"
	rulesetentity "github.com/KirkDiggler/rpg-compendium/internal/repositories/ruleset_entity"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils/mocks"
)

func (s *OrchestratorTestSuite) TestGetEntity_BaseReadSkipsOverlays() {
	spell := testutils.CreateTestSpell()
	s.expectGet(spell)

	out, err := s.orchestrator.GetEntity(s.ctx, &compendium.GetEntityInput{
		RulesetID: spell.RulesetID,
		EntityID:  spell.ID,
	})

	s.Require().NoError(err)
	s.Same(spell, out.Entity)
	s.False(out.IsDisabled)
	s.False(out.HasOverlay)
}

func (s *OrchestratorTestSuite) TestGetEntity_EffectiveMergesGlobalThenCampaign() {
	spell := testutils.CreateTestSpell()
	global := testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeModify,
		jsonv.NewObject().Set("range", jsonv.String("120 feet")).Set("homebrew_note", jsonv.String("table rule")))
	campaign := testutils.NewTestOverlay("ov_2", ruleset.OverlayTypeHomebrew,
		jsonv.NewObject().Set("range", jsonv.String("90 feet")))
	campaign.CampaignID = testutils.TestCampaignID

	s.expectGet(spell)
	mocks.ExpectOverlaysForEntity(s.ctx, s.mockOverlayRepo, spell,
		testutils.TestOwnerID, testutils.TestCampaignID, campaign, global)

	out, err := s.orchestrator.GetEntity(s.ctx, &compendium.GetEntityInput{
		RulesetID: spell.RulesetID,
		EntityID:  spell.ID,
		OverlayScope: compendium.OverlayScope{
			Effective:  true,
			OwnerID:    testutils.TestOwnerID,
			CampaignID: testutils.TestCampaignID,
		},
	})

	s.Require().NoError(err)
	s.True(out.HasOverlay)
	s.False(out.IsDisabled)

	rng, _ := out.Entity.Data.Get("range")
	s.Equal(jsonv.String("90 feet"), rng)
	note, _ := out.Entity.Data.Get("homebrew_note")
	s.Equal(jsonv.String("table rule"), note)
	s.Equal("range", out.Entity.Data.Keys()[3])
	s.Equal("homebrew_note", out.Entity.Data.Keys()[out.Entity.Data.Len()-1])

	stored, _ := spell.Data.Get("range")
	s.Equal(jsonv.String("150 feet"), stored)
	s.False(spell.Data.Has("homebrew_note"))
}

func (s *OrchestratorTestSuite) TestGetEntity_EffectiveWithoutOverlays() {
	spell := testutils.CreateTestSpell()
	s.expectGet(spell)
	mocks.ExpectOverlaysForEntity(s.ctx, s.mockOverlayRepo, spell, testutils.TestOwnerID, "")

	out, err := s.orchestrator.GetEntity(s.ctx, &compendium.GetEntityInput{
		RulesetID:    spell.RulesetID,
		EntityID:     spell.ID,
		OverlayScope: compendium.OverlayScope{Effective: true, OwnerID: testutils.TestOwnerID},
	})

	s.Require().NoError(err)
	s.False(out.HasOverlay)
	s.False(out.IsDisabled)
	s.Equal(spell.Data.Keys(), out.Entity.Data.Keys())
}

func (s *OrchestratorTestSuite) TestGetEntity_EffectiveRequiresOwner() {
	_, err := s.orchestrator.GetEntity(s.ctx, &compendium.GetEntityInput{
		RulesetID:    testutils.TestRulesetID,
		EntityID:     "ent_fireball",
		OverlayScope: compendium.OverlayScope{Effective: true},
	})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "owner_id")
}

func (s *OrchestratorTestSuite) TestRenderEntity_EffectiveDisabled() {
	spell := testutils.CreateTestSpell()
	s.expectGet(spell)
	mocks.ExpectOverlaysForEntity(s.ctx, s.mockOverlayRepo, spell, testutils.TestOwnerID, "",
		testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeDisable, nil))

	out, err := s.orchestrator.RenderEntity(s.ctx, &compendium.RenderEntityInput{
		RulesetID:    spell.RulesetID,
		EntityID:     spell.ID,
		OverlayScope: compendium.OverlayScope{Effective: true, OwnerID: testutils.TestOwnerID},
	})

	s.Require().NoError(err)
	s.True(out.IsDisabled)
	s.True(out.HasOverlay)
	s.Equal(render.RendererSpell, out.Fragment.Value)
}

func (s *OrchestratorTestSuite) TestRenderEntity_EffectiveRendersMergedData() {
	spell := testutils.CreateTestSpell()
	s.expectGet(spell)
	mocks.ExpectOverlaysForEntity(s.ctx, s.mockOverlayRepo, spell, testutils.TestOwnerID, "",
		testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeModify,
			jsonv.NewObject().Set("school", jsonv.String("Conjuration"))))

	out, err := s.orchestrator.RenderEntity(s.ctx, &compendium.RenderEntityInput{
		RulesetID:    spell.RulesetID,
		EntityID:     spell.ID,
		OverlayScope: compendium.OverlayScope{Effective: true, OwnerID: testutils.TestOwnerID},
	})

	s.Require().NoError(err)
	s.Require().NotNil(out.Fragment)
	school, _ := out.Entity.Data.Get("school")
	s.Equal(jsonv.String("Conjuration"), school)
	s.Equal(render.Render(spell.EntityType, out.Entity.Data), out.Fragment)
}

func (s *OrchestratorTestSuite) TestCreateOverlay() {
	spell := testutils.CreateTestSpell()
	mocks.ExpectSourceKeyHit(s.ctx, s.mockEntityRepo, spell)

	var stored *ruleset.Overlay
	mocks.ExpectOverlayPut(s.ctx, s.mockOverlayRepo, &stored)

	data := jsonv.NewObject().Set("range", jsonv.String("120 feet"))
	out, err := s.orchestrator.CreateOverlay(s.ctx, &compendium.CreateOverlayInput{
		OwnerID:     testutils.TestOwnerID,
		RulesetID:   spell.RulesetID,
		EntityType:  spell.EntityType,
		SourceKey:   spell.SourceKey,
		OverlayType: ruleset.OverlayTypeModify,
		Data:        data,
		CampaignID:  testutils.TestCampaignID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal(stored, out.Overlay)
	s.Equal("ov_1", stored.ID)
	s.Equal(testutils.TestOwnerID, stored.OwnerID)
	s.Equal(testutils.TestCampaignID, stored.CampaignID)
	s.Equal(data, stored.Data)
	s.Equal(testutils.TestImportedAt, stored.CreatedAt)
	s.Equal(testutils.TestImportedAt, stored.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestCreateOverlay_DisableWithoutData() {
	spell := testutils.CreateTestSpell()
	mocks.ExpectSourceKeyHit(s.ctx, s.mockEntityRepo, spell)

	var stored *ruleset.Overlay
	mocks.ExpectOverlayPut(s.ctx, s.mockOverlayRepo, &stored)

	_, err := s.orchestrator.CreateOverlay(s.ctx, &compendium.CreateOverlayInput{
		OwnerID:     testutils.TestOwnerID,
		RulesetID:   spell.RulesetID,
		EntityType:  spell.EntityType,
		SourceKey:   spell.SourceKey,
		OverlayType: ruleset.OverlayTypeDisable,
	})

	s.Require().NoError(err)
	s.Require().NotNil(stored.Data)
	s.Equal(0, stored.Data.Len())
}

func (s *OrchestratorTestSuite) TestCreateOverlay_TargetsEntityByID() {
	entity := testutils.NewTestEntity(testutils.TestRulesetID, "ent_custom", ruleset.EntityTypeSpell, "Custom Bolt")
	mocks.ExpectSourceKeyMiss(s.ctx, s.mockEntityRepo, entity.RulesetID, entity.EntityType, entity.ID)
	s.expectGet(entity)
	mocks.ExpectOverlayPut(s.ctx, s.mockOverlayRepo, nil)

	out, err := s.orchestrator.CreateOverlay(s.ctx, &compendium.CreateOverlayInput{
		OwnerID:     testutils.TestOwnerID,
		RulesetID:   entity.RulesetID,
		EntityType:  entity.EntityType,
		SourceKey:   entity.ID,
		OverlayType: ruleset.OverlayTypeHomebrew,
		Data:        jsonv.NewObject().Set("level", jsonv.Number(1)),
	})

	s.Require().NoError(err)
	s.Equal(entity.ID, out.Overlay.SourceKey)
}

func (s *OrchestratorTestSuite) TestCreateOverlay_MissingTarget() {
	mocks.ExpectSourceKeyMiss(s.ctx, s.mockEntityRepo, testutils.TestRulesetID, ruleset.EntityTypeSpell, "wish")
	s.mockEntityRepo.EXPECT().
		Get(s.ctx, rulesetentity.GetInput{RulesetID: testutils.TestRulesetID, EntityID: "wish"}).
		Return(nil, errors.NotFound("entity wish not found"))

	_, err := s.orchestrator.CreateOverlay(s.ctx, &compendium.CreateOverlayInput{
		OwnerID:     testutils.TestOwnerID,
		RulesetID:   testutils.TestRulesetID,
		EntityType:  ruleset.EntityTypeSpell,
		SourceKey:   "wish",
		OverlayType: ruleset.OverlayTypeDisable,
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateOverlay_Validation() {
	testCases := []struct {
		name  string
		input *compendium.CreateOverlayInput
		field string
	}{
		{
			name:  "nil input",
			input: nil,
		},
		{
			name: "missing owner",
			input: &compendium.CreateOverlayInput{
				RulesetID: testutils.TestRulesetID, EntityType: "spell", SourceKey: "fireball",
				OverlayType: ruleset.OverlayTypeDisable,
			},
			field: "owner_id",
		},
		{
			name: "unknown overlay type",
			input: &compendium.CreateOverlayInput{
				OwnerID: testutils.TestOwnerID, RulesetID: testutils.TestRulesetID, EntityType: "spell",
				SourceKey: "fireball", OverlayType: "replace", Data: jsonv.NewObject(),
			},
			field: "overlay_type",
		},
		{
			name: "modify without data",
			input: &compendium.CreateOverlayInput{
				OwnerID: testutils.TestOwnerID, RulesetID: testutils.TestRulesetID, EntityType: "spell",
				SourceKey: "fireball", OverlayType: ruleset.OverlayTypeModify,
			},
			field: "overlay_data",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateOverlay(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestUpdateOverlay() {
	existing := testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeModify,
		jsonv.NewObject().Set("range", jsonv.String("120 feet")))
	existing.CreatedAt = testutils.TestImportedAt - 100
	mocks.ExpectOverlayGet(s.ctx, s.mockOverlayRepo, existing)

	var stored *ruleset.Overlay
	mocks.ExpectOverlayPut(s.ctx, s.mockOverlayRepo, &stored)

	out, err := s.orchestrator.UpdateOverlay(s.ctx, &compendium.UpdateOverlayInput{
		OwnerID:     testutils.TestOwnerID,
		OverlayID:   existing.ID,
		OverlayType: ruleset.OverlayTypeDisable,
	})

	s.Require().NoError(err)
	s.Equal(stored, out.Overlay)
	s.Equal(ruleset.OverlayTypeDisable, stored.OverlayType)
	s.Equal(existing.Data, stored.Data)
	s.Equal(testutils.TestImportedAt-100, stored.CreatedAt)
	s.Equal(testutils.TestImportedAt, stored.UpdatedAt)
	s.Equal(ruleset.OverlayTypeModify, existing.OverlayType)
}

func (s *OrchestratorTestSuite) TestUpdateOverlay_OtherOwnerIsNotFound() {
	existing := testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeModify, nil)
	mocks.ExpectOverlayGet(s.ctx, s.mockOverlayRepo, existing)

	_, err := s.orchestrator.UpdateOverlay(s.ctx, &compendium.UpdateOverlayInput{
		OwnerID:   "user_2",
		OverlayID: existing.ID,
		Data:      jsonv.NewObject().Set("range", jsonv.String("Self")),
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestDeleteOverlay() {
	existing := testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeDisable, nil)
	mocks.ExpectOverlayGet(s.ctx, s.mockOverlayRepo, existing)
	s.mockOverlayRepo.EXPECT().
		Delete(s.ctx, overlay.DeleteInput{OverlayID: existing.ID}).
		Return(&overlay.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteOverlay(s.ctx, &compendium.DeleteOverlayInput{
		OwnerID:   testutils.TestOwnerID,
		OverlayID: existing.ID,
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestDeleteOverlay_OtherOwnerIsNotFound() {
	existing := testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeDisable, nil)
	mocks.ExpectOverlayGet(s.ctx, s.mockOverlayRepo, existing)

	_, err := s.orchestrator.DeleteOverlay(s.ctx, &compendium.DeleteOverlayInput{
		OwnerID:   "user_2",
		OverlayID: existing.ID,
	})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListOverlays() {
	overlays := []*ruleset.Overlay{testutils.NewTestOverlay("ov_1", ruleset.OverlayTypeDisable, nil)}
	s.mockOverlayRepo.EXPECT().
		ListByOwner(s.ctx, overlay.ListByOwnerInput{
			OwnerID:    testutils.TestOwnerID,
			RulesetID:  testutils.TestRulesetID,
			EntityType: ruleset.EntityTypeSpell,
		}).
		Return(&overlay.ListByOwnerOutput{Overlays: overlays}, nil)

	out, err := s.orchestrator.ListOverlays(s.ctx, &compendium.ListOverlaysInput{
		OwnerID:    testutils.TestOwnerID,
		RulesetID:  testutils.TestRulesetID,
		EntityType: ruleset.EntityTypeSpell,
	})
	s.Require().NoError(err)
	s.Equal(overlays, out.Overlays)

	_, err = s.orchestrator.ListOverlays(s.ctx, &compendium.ListOverlaysInput{})
	s.True(errors.IsInvalidArgument(err))
}
