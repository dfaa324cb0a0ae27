package render_test

import (
	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

func (s *RenderTestSuite) TestGeneric_GroupOrder() {
	data := s.parse(`{
		"unknown": [1, 2],
		"detail": {"inner": {"a": 1}, "note": "n", "x": [1]},
		"effects": [{"desc": "Once per day."}],
		"actions": [{"name": "Bite", "desc": "Melee."}],
		"speed": {"walk": 30},
		"desc": "line one\nline two",
		"rarity": "rare",
		"is_magic_item": true
	}`)

	root := render.Render("item", data)

	s.Equal([]render.Kind{
		render.KindInfoGrid,
		render.KindTextBlock,
		render.KindKeyValueGrid,
		render.KindSectionList,
		render.KindSectionList,
		render.KindDetailCard,
		render.KindCollapsible,
	}, kinds(root.Children))

	s.Equal(render.VariantNamed, root.Children[3].Variant)
	s.Equal("Actions", root.Children[3].Label)
	s.Equal(render.VariantDescOnly, root.Children[4].Variant)
	s.Equal("Effects", root.Children[4].Label)
}

func (s *RenderTestSuite) TestGeneric_HeaderFields() {
	data := s.parse(`{
		"name": "Longsword",
		"url": "/x",
		"zeta": 3,
		"category": {"name": "Weapon", "key": "weapon"},
		"range": {"as_string": "60 feet", "normal": 60},
		"classes": [{"name": "Fighter", "key": "fighter"}, {"name": "Paladin", "key": "paladin"}],
		"magical": false,
		"weight": 3.5
	}`)

	root := render.Render("weapon", data)

	s.Require().Len(root.Children, 1)
	grid := root.Children[0]
	s.Equal(render.KindInfoGrid, grid.Kind)

	var got [][2]string
	for _, box := range grid.Children {
		s.Equal(render.KindInfoBox, box.Kind)
		got = append(got, [2]string{box.Label, box.Value})
	}
	s.Equal([][2]string{
		{"Category", "Weapon"},
		{"Range", "60 feet"},
		{"Weight", "3.5"},
		{"Classes", "Fighter, Paladin"},
		{"Magical", "No"},
		{"Zeta", "3"},
	}, got)
}

func (s *RenderTestSuite) TestGeneric_RichTextBlock() {
	root := render.Render("rule", s.parse(`{"body": "## Title\n- one\n- two\n\nA *plain* paragraph."}`))

	s.Require().Len(root.Children, 1)
	block := root.Children[0]
	s.Equal(render.KindTextBlock, block.Kind)
	s.Equal("Body", block.Label)
	s.Equal([]markdown.BlockKind{markdown.BlockHeading, markdown.BlockList, markdown.BlockParagraph},
		[]markdown.BlockKind{block.Blocks[0].Kind, block.Blocks[1].Kind, block.Blocks[2].Kind})
}

func (s *RenderTestSuite) TestGeneric_DetailCardOneLevelDeep() {
	data := s.parse(`{
		"armor": {
			"base": 14,
			"dex_bonus": true,
			"notes": "**Heavy.** Clanks loudly.",
			"source": {"name": "SRD", "key": "srd"},
			"table": {"light": {"ac": 11}, "heavy": {"ac": 18}, "x": [1]},
			"tags": [1, 2],
			"empty": ""
		}
	}`)

	root := render.Render("armor", data)

	s.Require().Len(root.Children, 1)
	card := root.Children[0]
	s.Equal(render.KindDetailCard, card.Kind)
	s.Equal("Armor", card.Label)

	byLabel := map[string]*render.Node{}
	for _, c := range card.Children {
		byLabel[c.Label] = c
	}
	s.Len(card.Children, 6)

	s.Equal(render.KindDetailRow, byLabel["Base"].Kind)
	s.Equal("14", byLabel["Base"].Value)
	s.Equal("Yes", byLabel["Dex Bonus"].Value)
	s.Equal("SRD", byLabel["Source"].Value)

	s.Equal(render.KindDetailText, byLabel["Notes"].Kind)
	s.Require().Len(byLabel["Notes"].Blocks, 1)
	s.Equal(markdown.StyleBold, byLabel["Notes"].Blocks[0].Inline[0].Style)

	// nested objects below the first level stay raw
	s.Equal(render.KindCollapsible, byLabel["Table"].Kind)
	s.False(byLabel["Table"].Open)
	s.Empty(byLabel["Table"].Children)
	s.Equal(render.KindCollapsible, byLabel["Tags"].Kind)
	s.Equal("[\n  1,\n  2\n]", byLabel["Tags"].Raw)
}

func (s *RenderTestSuite) TestGeneric_EmptyDetailOmitted() {
	root := render.Render("thing", s.parse(`{"meta": {"name": "skip", "url": "/u", "x": null, "y": []}}`))

	s.Empty(root.Children)
}

func (s *RenderTestSuite) TestGeneric_CollapsibleOpenState() {
	data := s.parse(`{"blob": [1, "two"]}`)

	closed := render.Render("thing", data)
	s.Require().Len(closed.Children, 1)
	s.Equal(render.KindCollapsible, closed.Children[0].Kind)
	s.Equal("Blob", closed.Children[0].Label)
	s.False(closed.Children[0].Open)
	s.Equal("[\n  1,\n  \"two\"\n]", closed.Children[0].Raw)

	open := render.Render("thing", data, render.WithExpandRaw(true))
	s.True(open.Children[0].Open)
}

func (s *RenderTestSuite) TestGeneric_RawViewKeepsHTMLCharacters() {
	root := render.Render("item", s.parse(`{"notes": ["Arms & Armor <b>x</b>"]}`))

	s.Require().Len(root.Children, 1)
	s.Equal(render.KindCollapsible, root.Children[0].Kind)
	s.Equal("[\n  \"Arms & Armor <b>x</b>\"\n]", root.Children[0].Raw)
}
