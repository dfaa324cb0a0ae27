package render_test

import (
	"github.com/KirkDiggler/rpg-compendium/internal/render"
)

func infoBoxes(root *render.Node) map[string]string {
	out := map[string]string{}
	grid := root.Find(render.KindInfoGrid, "")
	if grid == nil {
		return out
	}
	for _, box := range grid.Children {
		out[box.Label] = box.Value
	}
	return out
}

func (s *RenderTestSuite) TestSpell_Layout() {
	data := s.parse(`{
		"name": "Fireball",
		"level": 3,
		"school": {"name": "Evocation", "key": "evocation"},
		"casting_time": "1 action",
		"range": "150 feet",
		"range_text": "150 ft.",
		"duration": "Instantaneous",
		"verbal": true,
		"somatic": true,
		"material": true,
		"material_specified": "a tiny ball of bat guano and sulfur",
		"concentration": false,
		"ritual": false,
		"desc": "A bright streak flashes.",
		"higher_level": "+1d6 per slot level above 3rd.",
		"classes": [{"name": "Wizard", "key": "wizard"}]
	}`)

	root := render.Render("spell", data)

	s.Equal(map[string]string{
		"Level":         "3",
		"School":        "Evocation",
		"Casting Time":  "1 action",
		"Range":         "150 ft.",
		"Duration":      "Instantaneous",
		"Components":    "V, S, M (a tiny ball of bat guano and sulfur)",
		"Concentration": "No",
		"Ritual":        "No",
	}, infoBoxes(root))

	s.Equal([]render.Kind{render.KindInfoGrid, render.KindTextBlock, render.KindTextBlock}, kinds(root.Children))
	s.Equal("Description", root.Children[1].Label)
	s.Equal("At Higher Levels", root.Children[2].Label)
	s.Nil(root.Find(render.KindInfoBox, "Classes"))
}

func (s *RenderTestSuite) TestSpell_InfoBoxOrder() {
	root := render.Render("spell", s.parse(`{}`))

	grid := root.Children[0]
	var labels []string
	for _, box := range grid.Children {
		labels = append(labels, box.Label)
	}
	s.Equal([]string{"Level", "School", "Casting Time", "Range", "Duration", "Components", "Concentration", "Ritual"}, labels)
}

func (s *RenderTestSuite) TestSpell_Level() {
	testCases := []struct {
		name     string
		data     string
		expected string
	}{
		{name: "cantrip", data: `{"level": 0}`, expected: "Cantrip"},
		{name: "third", data: `{"level": 3}`, expected: "3"},
		{name: "string zero", data: `{"level": "0"}`, expected: "0"},
		{name: "missing", data: `{}`, expected: "—"},
		{name: "null", data: `{"level": null}`, expected: "—"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, infoBoxes(render.Render("spell", s.parse(tc.data)))["Level"])
		})
	}
}

func (s *RenderTestSuite) TestSpell_Components() {
	testCases := []struct {
		name     string
		data     string
		expected string
	}{
		{name: "none", data: `{}`, expected: "—"},
		{name: "verbal only", data: `{"verbal": true}`, expected: "V"},
		{name: "vs", data: `{"verbal": true, "somatic": true, "material": false}`, expected: "V, S"},
		{name: "material without text", data: `{"material": true}`, expected: "M"},
		{name: "material text ignored without flag", data: `{"somatic": true, "material_specified": "a feather"}`, expected: "S"},
		{name: "material with text", data: `{"material": true, "material_specified": "a feather"}`, expected: "M (a feather)"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, infoBoxes(render.Render("spell", s.parse(tc.data)))["Components"])
		})
	}
}

func (s *RenderTestSuite) TestSpell_Fallbacks() {
	boxes := infoBoxes(render.Render("spell", s.parse(`{"school": "Illusion", "range": "Self", "concentration": 1}`)))

	s.Equal("Illusion", boxes["School"])
	s.Equal("Self", boxes["Range"])
	s.Equal("—", boxes["Casting Time"])
	s.Equal("—", boxes["Duration"])
	s.Equal("Yes", boxes["Concentration"])
	s.Equal("No", boxes["Ritual"])
}

func (s *RenderTestSuite) TestSpell_NoTextBlocksWhenEmpty() {
	root := render.Render("spell", s.parse(`{"desc": "", "higher_level": null}`))

	s.Equal([]render.Kind{render.KindInfoGrid}, kinds(root.Children))
}
