package ruleset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/ruleset"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

func mustObject(t *testing.T, raw string) *jsonv.Object {
	t.Helper()
	obj, err := jsonv.ParseObject([]byte(raw))
	require.NoError(t, err)
	return obj
}

func marshal(t *testing.T, obj *jsonv.Object) string {
	t.Helper()
	out, err := jsonv.Marshal(obj)
	require.NoError(t, err)
	return string(out)
}

func TestApplyOverlays(t *testing.T) {
	base := `{"name":"Fireball","level":3,"damage":{"base_damage":"8d6","damage_type":"Fire"}}`

	tests := []struct {
		name         string
		overlays     []*ruleset.Overlay
		wantData     string
		wantDisabled bool
		wantOverlay  bool
	}{
		{
			name:     "no overlays",
			wantData: base,
		},
		{
			name: "modify merges nested data",
			overlays: []*ruleset.Overlay{
				{ID: "ov_1", OverlayType: ruleset.OverlayTypeModify, Data: mustObject(t, `{"damage":{"base_damage":"10d6"}}`)},
			},
			wantData:    `{"name":"Fireball","level":3,"damage":{"base_damage":"10d6","damage_type":"Fire"}}`,
			wantOverlay: true,
		},
		{
			name: "campaign overlay applies after global",
			overlays: []*ruleset.Overlay{
				{ID: "ov_c", CampaignID: "camp_1", CreatedAt: 1, OverlayType: ruleset.OverlayTypeHomebrew, Data: mustObject(t, `{"level":5}`)},
				{ID: "ov_g", CreatedAt: 9, OverlayType: ruleset.OverlayTypeModify, Data: mustObject(t, `{"level":4,"note":"house"}`)},
			},
			wantData:    `{"name":"Fireball","level":5,"damage":{"base_damage":"8d6","damage_type":"Fire"},"note":"house"}`,
			wantOverlay: true,
		},
		{
			name: "same scope applies oldest first",
			overlays: []*ruleset.Overlay{
				{ID: "ov_b", CreatedAt: 20, OverlayType: ruleset.OverlayTypeModify, Data: mustObject(t, `{"level":7}`)},
				{ID: "ov_a", CreatedAt: 10, OverlayType: ruleset.OverlayTypeModify, Data: mustObject(t, `{"level":6}`)},
			},
			wantData:    `{"name":"Fireball","level":7,"damage":{"base_damage":"8d6","damage_type":"Fire"}}`,
			wantOverlay: true,
		},
		{
			name: "disable keeps data",
			overlays: []*ruleset.Overlay{
				{ID: "ov_d", OverlayType: ruleset.OverlayTypeDisable, Data: mustObject(t, `{"level":9}`)},
			},
			wantData:     base,
			wantDisabled: true,
			wantOverlay:  true,
		},
		{
			name: "unknown type is ignored but counted",
			overlays: []*ruleset.Overlay{
				{ID: "ov_x", OverlayType: "rename", Data: mustObject(t, `{"name":"Firebolt"}`)},
			},
			wantData:    base,
			wantOverlay: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := mustObject(t, base)

			got := ruleset.ApplyOverlays(data, tt.overlays)

			assert.Equal(t, tt.wantData, marshal(t, got.Data))
			assert.Equal(t, tt.wantDisabled, got.IsDisabled)
			assert.Equal(t, tt.wantOverlay, got.HasOverlay)
			assert.Equal(t, base, marshal(t, data))
		})
	}
}

func TestEntity_OverlayKey(t *testing.T) {
	assert.Equal(t, "fireball", (&ruleset.Entity{ID: "ent_1", SourceKey: "fireball"}).OverlayKey())
	assert.Equal(t, "ent_1", (&ruleset.Entity{ID: "ent_1"}).OverlayKey())
}

func TestOverlay_JSON(t *testing.T) {
	raw := `{"id":"ov_1","owner_id":"user_1","ruleset_id":"srd-5e","entity_type":"spell",` +
		`"source_key":"fireball","overlay_type":"modify","overlay_data":{"z":1,"a":2},` +
		`"created_at":10,"updated_at":10}`

	var overlay ruleset.Overlay
	require.NoError(t, json.Unmarshal([]byte(raw), &overlay))

	assert.True(t, overlay.IsGlobal())
	assert.Equal(t, "ov_1", overlay.GetID())
	assert.Equal(t, []string{"z", "a"}, overlay.Data.Keys())

	out, err := json.Marshal(&overlay)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
