package render_test

import (
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

func abilities(root *render.Node) []string {
	grid := root.Find(render.KindAbilityGrid, "")
	var out []string
	for _, cell := range grid.Children {
		out = append(out, cell.Label+"="+cell.Value)
	}
	return out
}

func (s *RenderTestSuite) TestCreature_Layout() {
	data := s.parse(`{
		"name": "Goblin",
		"challenge_rating_text": "1/4",
		"cr": 0.25,
		"type": {"name": "Humanoid"},
		"size": "Small",
		"alignment": "neutral evil",
		"armor_class": 15,
		"hit_points": 7,
		"strength": 8,
		"dexterity": 14,
		"constitution": 10,
		"intelligence": 10,
		"wisdom": 8,
		"charisma": 8,
		"actions": [{"name": "Scimitar", "desc": "*Melee Weapon Attack:* +4 to hit."}],
		"traits": [{"name": "Nimble Escape", "desc": ""}],
		"languages": "Common, Goblin"
	}`)

	root := render.Render("creature", data)

	s.Equal(map[string]string{
		"CR":        "1/4",
		"Type":      "Humanoid",
		"Size":      "Small",
		"Alignment": "neutral evil",
		"AC":        "15",
		"HP":        "7",
	}, infoBoxes(root))

	s.Equal([]string{"STR=8", "DEX=14", "CON=10", "INT=10", "WIS=8", "CHA=8"}, abilities(root))

	s.Equal([]render.Kind{
		render.KindInfoGrid,
		render.KindAbilityGrid,
		render.KindEntryPanel,
		render.KindEntryPanel,
	}, kinds(root.Children))

	actions := root.Find(render.KindEntryPanel, "Actions")
	s.Require().NotNil(actions)
	s.Require().Len(actions.Children, 1)
	s.Equal("Scimitar", actions.Children[0].Label)
	s.Equal(markdown.StyleItalic, actions.Children[0].Blocks[0].Inline[0].Style)

	traits := root.Find(render.KindEntryPanel, "Traits")
	s.Require().NotNil(traits)
	s.Equal("Nimble Escape", traits.Children[0].Label)
	s.Empty(traits.Children[0].Blocks)

	s.Nil(root.Find(render.KindInfoBox, "Languages"))
}

func (s *RenderTestSuite) TestCreature_NestedAbilityScores() {
	root := render.Render("creature", s.parse(`{
		"cr": 2,
		"ability_scores": {"strength": {"value": 18}, "dexterity": 12, "wisdom": {"modifier": 1}},
		"strength": 3
	}`))

	s.Equal("2", infoBoxes(root)["CR"])
	s.Equal([]string{"STR=18", "DEX=12", "CON=—", "INT=—", "WIS=—", "CHA=—"}, abilities(root))
}

func (s *RenderTestSuite) TestCreature_ArrayAbilityScoreShowsPlaceholder() {
	root := render.Render("creature", s.parse(`{"strength": [18, 4], "dexterity": 14}`))

	s.Equal([]string{"STR=—", "DEX=14", "CON=—", "INT=—", "WIS=—", "CHA=—"}, abilities(root))
}

func (s *RenderTestSuite) TestCreature_Placeholders() {
	root := render.Render("creature", s.parse(`{"actions": [], "traits": "none"}`))

	s.Equal(map[string]string{
		"CR":        "—",
		"Type":      "—",
		"Size":      "—",
		"Alignment": "—",
		"AC":        "—",
		"HP":        "—",
	}, infoBoxes(root))
	s.Equal([]string{"STR=—", "DEX=—", "CON=—", "INT=—", "WIS=—", "CHA=—"}, abilities(root))
	s.Equal([]render.Kind{render.KindInfoGrid, render.KindAbilityGrid}, kinds(root.Children))
}
