package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEntity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		override string
		wantType string
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "entity document",
			raw:      `{"name":"Fireball","entity_type":"spell","entity_data":{"level":3,"school":"Evocation"}}`,
			wantType: "spell",
			wantKeys: []string{"level", "school"},
		},
		{
			name:     "override wins",
			raw:      `{"entity_type":"spell","entity_data":{"level":3}}`,
			override: "feature",
			wantType: "feature",
			wantKeys: []string{"level"},
		},
		{
			name:     "bare data with type flag",
			raw:      `{"name":"Rope","cost":"1 gp"}`,
			override: "equipment",
			wantType: "equipment",
			wantKeys: []string{"name", "cost"},
		},
		{
			name:    "bare data without type",
			raw:     `{"name":"Rope"}`,
			wantErr: true,
		},
		{
			name:     "not an object",
			raw:      `[1]`,
			override: "spell",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entityType, data, err := splitEntity([]byte(tt.raw), tt.override)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, entityType)
			assert.Equal(t, tt.wantKeys, data.Keys())
		})
	}
}
