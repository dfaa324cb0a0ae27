package jsonv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		want    string
	}{
		{
			name:    "overlay replaces scalar in place",
			base:    `{"name":"Fireball","level":3,"range":"150 feet"}`,
			overlay: `{"level":4}`,
			want:    `{"name":"Fireball","level":4,"range":"150 feet"}`,
		},
		{
			name:    "new keys follow base keys",
			base:    `{"name":"Goblin","cr":0.25}`,
			overlay: `{"zeal":true,"alias":"Gob"}`,
			want:    `{"name":"Goblin","cr":0.25,"zeal":true,"alias":"Gob"}`,
		},
		{
			name:    "nested objects merge",
			base:    `{"speed":{"walk":30,"unit":"feet"},"size":"Small"}`,
			overlay: `{"speed":{"fly":60,"walk":25}}`,
			want:    `{"speed":{"walk":25,"unit":"feet","fly":60},"size":"Small"}`,
		},
		{
			name:    "arrays are replaced",
			base:    `{"classes":[{"name":"Wizard"},{"name":"Sorcerer"}]}`,
			overlay: `{"classes":[{"name":"Cleric"}]}`,
			want:    `{"classes":[{"name":"Cleric"}]}`,
		},
		{
			name:    "object over scalar replaces",
			base:    `{"damage":"8d6"}`,
			overlay: `{"damage":{"base_damage":"10d6"}}`,
			want:    `{"damage":{"base_damage":"10d6"}}`,
		},
		{
			name:    "null overlay value clears",
			base:    `{"material":"bat guano","ritual":false}`,
			overlay: `{"material":null}`,
			want:    `{"material":null,"ritual":false}`,
		},
		{
			name:    "empty overlay",
			base:    `{"a":1}`,
			overlay: `{}`,
			want:    `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, err := jsonv.ParseObject([]byte(tt.base))
			require.NoError(t, err)
			overlay, err := jsonv.ParseObject([]byte(tt.overlay))
			require.NoError(t, err)

			merged := jsonv.DeepMerge(base, overlay)

			out, err := jsonv.Marshal(merged)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			unchanged, err := jsonv.Marshal(base)
			require.NoError(t, err)
			assert.Equal(t, tt.base, string(unchanged))
		})
	}
}

func TestDeepMerge_NilSides(t *testing.T) {
	obj := jsonv.NewObject().Set("a", jsonv.Number(1))

	assert.Equal(t, []string{"a"}, jsonv.DeepMerge(nil, obj).Keys())
	assert.Equal(t, []string{"a"}, jsonv.DeepMerge(obj, nil).Keys())
	assert.Equal(t, 0, jsonv.DeepMerge(nil, nil).Len())
}
