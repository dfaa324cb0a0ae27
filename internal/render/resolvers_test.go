package render_test

import (
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

func (s *RenderTestSuite) TestKeyValueGrid() {
	testCases := []struct {
		name     string
		data     string
		expected [][2]string
	}{
		{
			name:     "unit suffix on numbers only",
			data:     `{"walk": 30, "note": "hover", "unit": "ft"}`,
			expected: [][2]string{{"Walk", "30 ft"}, {"Note", "hover"}},
		},
		{
			name:     "no unit",
			data:     `{"str": 2, "dex": -1}`,
			expected: [][2]string{{"Str", "2"}, {"Dex", "-1"}},
		},
		{
			name:     "non-string unit is hidden and not applied",
			data:     `{"walk": 30, "unit": 5}`,
			expected: [][2]string{{"Walk", "30"}},
		},
		{
			name:     "other values as placeholder, nulls dropped",
			data:     `{"a": 1, "b": true, "c": null, "d": [1]}`,
			expected: [][2]string{{"A", "1"}, {"B", "—"}, {"D", "—"}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			grid := render.KeyValueGrid("Speed", s.parse(tc.data))
			s.Require().NotNil(grid)
			s.Equal(render.KindKeyValueGrid, grid.Kind)

			var got [][2]string
			for _, cell := range grid.Children {
				got = append(got, [2]string{cell.Label, cell.Value})
			}
			s.Equal(tc.expected, got)
		})
	}
}

func (s *RenderTestSuite) TestKeyValueGrid_NothingToShow() {
	s.Nil(render.KeyValueGrid("Speed", s.parse(`{"unit": "ft", "x": null}`)))
}

func (s *RenderTestSuite) TestSectionList_Badges() {
	items := jsonv.Array{s.parse(`{
		"name": "Multiattack",
		"desc": "Two **claw** attacks.",
		"key": "multiattack",
		"url": "/a",
		"attack_bonus": 5,
		"recharge": true,
		"damage": [{"name": "slashing"}, "fire"],
		"uses": {"value": 3},
		"empty": "",
		"gone": null
	}`)}

	list := render.SectionList("Actions", items, render.VariantNamed)

	s.Require().NotNil(list)
	s.Require().Len(list.Children, 1)
	card := list.Children[0]
	s.Equal("Multiattack", card.Label)
	s.Require().Len(card.Blocks, 1)
	s.Equal("Two claw attacks.", markdown.PlainText(card.Blocks[0].Inline))

	var badges [][2]string
	for _, b := range card.Children {
		s.Equal(render.KindBadge, b.Kind)
		badges = append(badges, [2]string{b.Label, b.Value})
	}
	s.Equal([][2]string{
		{"Attack Bonus", "5"},
		{"Recharge", "Yes"},
		{"Damage", "slashing, fire"},
		{"Uses", "3"},
	}, badges)
}

func (s *RenderTestSuite) TestSectionList_DescOnlyHidesName() {
	items := jsonv.Array{
		s.parse(`{"desc": "First."}`),
		s.parse(`{"name": "ignored", "desc": "Second."}`),
		jsonv.String("loose"),
	}

	list := render.SectionList("Notes", items, render.VariantDescOnly)

	s.Require().Len(list.Children, 3)
	s.Empty(list.Children[0].Label)
	s.Empty(list.Children[1].Label)
	s.Equal("loose", list.Children[2].Value)
}

func (s *RenderTestSuite) TestSectionList_Empty() {
	s.Nil(render.SectionList("Notes", jsonv.Array{}, render.VariantNamed))
}
