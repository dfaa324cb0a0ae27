// Package terminal draws a rendered entity fragment for a text terminal.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/rpg-compendium/internal/render"
	"github.com/KirkDiggler/rpg-compendium/internal/render/markdown"
)

const (
	infoBoxesPerRow = 4
	gridCellsPerRow = 6
	detailLabelMin  = 12
	collapsedMarker = "▸"
	expandedMarker  = "▾"
	bulletMarker    = "•"
	badgeSeparator  = " · "
)

// Render draws the fragment rooted at n.
func Render(n *render.Node) string {
	if n == nil {
		return ""
	}
	return strings.TrimRight(node(n), "\n")
}

func node(n *render.Node) string {
	switch n.Kind {
	case render.KindEntity:
		return children(n, "\n\n")
	case render.KindInfoGrid:
		return boxRows(n.Children, infoBoxesPerRow)
	case render.KindInfoBox, render.KindGridCell:
		return box(n)
	case render.KindTextBlock:
		return titled(n.Label, Markdown(n.Blocks))
	case render.KindKeyValueGrid:
		return titled(n.Label, boxRows(n.Children, gridCellsPerRow))
	case render.KindAbilityGrid:
		return boxRows(n.Children, gridCellsPerRow)
	case render.KindSectionList, render.KindEntryPanel:
		return titled(n.Label, children(n, "\n\n"))
	case render.KindSectionCard, render.KindEntry:
		return card(n)
	case render.KindBadge:
		return BadgeStyle.Render(n.Label + ": " + n.Value)
	case render.KindDetailCard:
		return titled(n.Label, BoxStyle.Render(detailBody(n)))
	case render.KindDetailRow:
		return detailRow(n.Label, n.Value, detailLabelMin)
	case render.KindDetailText:
		return LabelStyle.Render(n.Label) + "\n" + Markdown(n.Blocks)
	case render.KindCollapsible:
		return collapsible(n)
	default:
		return n.Value
	}
}

func children(n *render.Node, sep string) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if s := node(c); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

func titled(label, body string) string {
	if label == "" {
		return body
	}
	if body == "" {
		return SectionTitleStyle.Render(label)
	}
	return SectionTitleStyle.Render(label) + "\n" + body
}

func box(n *render.Node) string {
	return BoxStyle.Render(LabelStyle.Render(n.Label) + "\n" + ValueStyle.Render(n.Value))
}

// boxRows lays boxes out horizontally, perRow at a time.
func boxRows(nodes []*render.Node, perRow int) string {
	var rows []string
	for start := 0; start < len(nodes); start += perRow {
		end := min(start+perRow, len(nodes))
		cells := make([]string, 0, end-start)
		for _, c := range nodes[start:end] {
			cells = append(cells, node(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func card(n *render.Node) string {
	var lines []string
	if n.Label != "" {
		lines = append(lines, AccentStyle.Render(n.Label))
	}
	if n.Value != "" {
		lines = append(lines, n.Value)
	}
	if len(n.Blocks) > 0 {
		lines = append(lines, Markdown(n.Blocks))
	}

	var badges []string
	for _, c := range n.Children {
		badges = append(badges, node(c))
	}
	if len(badges) > 0 {
		lines = append(lines, strings.Join(badges, badgeSeparator))
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

func detailBody(n *render.Node) string {
	width := detailLabelMin
	for _, c := range n.Children {
		if c.Kind == render.KindDetailRow {
			width = max(width, runewidth.StringWidth(c.Label))
		}
	}

	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == render.KindDetailRow {
			parts = append(parts, detailRow(c.Label, c.Value, width))
			continue
		}
		parts = append(parts, node(c))
	}
	return strings.Join(parts, "\n")
}

func detailRow(label, value string, width int) string {
	return LabelStyle.Render(runewidth.FillRight(label, width)) + "  " + value
}

func collapsible(n *render.Node) string {
	if !n.Open {
		return MutedStyle.Render(n.Label + " " + collapsedMarker)
	}
	return MutedStyle.Render(n.Label+" "+expandedMarker) + "\n" + n.Raw
}

// Markdown draws parsed markdown blocks.
func Markdown(blocks []markdown.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case markdown.BlockHeading:
			parts = append(parts, TitleStyle.Render(markdown.PlainText(b.Inline)))
		case markdown.BlockList:
			items := make([]string, 0, len(b.Items))
			for _, item := range b.Items {
				items = append(items, "  "+bulletMarker+" "+Inline(item))
			}
			parts = append(parts, strings.Join(items, "\n"))
		case markdown.BlockTable:
			parts = append(parts, table(b))
		default:
			parts = append(parts, Inline(b.Inline))
		}
	}
	return strings.Join(parts, "\n")
}

// Inline draws emphasis spans.
func Inline(spans []markdown.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		switch s.Style {
		case markdown.StyleBold:
			sb.WriteString(BoldStyle.Render(s.Text))
		case markdown.StyleItalic:
			sb.WriteString(ItalicStyle.Render(s.Text))
		case markdown.StyleBoldItalic:
			sb.WriteString(BoldItalicStyle.Render(s.Text))
		default:
			sb.WriteString(s.Text)
		}
	}
	return sb.String()
}

// table pads columns to the display width of their widest cell. Rows may
// have fewer cells than the header.
func table(b markdown.Block) string {
	columns := len(b.Header)
	for _, row := range b.Rows {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	measure := func(row [][]markdown.Span) {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(markdown.PlainText(cell)))
		}
	}
	measure(b.Header)
	for _, row := range b.Rows {
		measure(row)
	}

	lines := []string{tableRow(b.Header, widths, true)}
	rule := make([]string, columns)
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	lines = append(lines, MutedStyle.Render(strings.Join(rule, "─┼─")))
	for _, row := range b.Rows {
		lines = append(lines, tableRow(row, widths, false))
	}
	return strings.Join(lines, "\n")
}

func tableRow(row [][]markdown.Span, widths []int, header bool) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		var text string
		var plainWidth int
		if i < len(row) {
			plainWidth = runewidth.StringWidth(markdown.PlainText(row[i]))
			text = Inline(row[i])
			if header {
				text = BoldStyle.Render(markdown.PlainText(row[i]))
			}
		}
		cells[i] = text + strings.Repeat(" ", w-plainWidth)
	}
	return strings.Join(cells, " │ ")
}
