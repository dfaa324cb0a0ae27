// Package markdown parses the small markdown dialect found in rule text:
// headings, unordered lists, pipe tables and bold/italic emphasis.
//
// Parsing is line oriented. Every non-blank line that is not part of a list
// or table becomes its own paragraph; adjacent lines are never joined.
package markdown

import (
	"regexp"
	"strings"
)

// BlockKind identifies a block-level element.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
	BlockParagraph BlockKind = "paragraph"
)

// Style is the emphasis applied to a run of inline text.
type Style string

const (
	StylePlain      Style = "plain"
	StyleBold       Style = "bold"
	StyleItalic     Style = "italic"
	StyleBoldItalic Style = "bold_italic"
)

// Span is a run of text with a single emphasis style.
type Span struct {
	Style Style  `json:"style"`
	Text  string `json:"text"`
}

// Block is one block-level element. Which fields are set depends on Kind:
// headings and paragraphs use Inline, lists use Items, tables use Header and Rows.
type Block struct {
	Kind   BlockKind  `json:"kind"`
	Level  int        `json:"level,omitempty"`
	Inline []Span     `json:"inline,omitempty"`
	Items  [][]Span   `json:"items,omitempty"`
	Header [][]Span   `json:"header,omitempty"`
	Rows   [][][]Span `json:"rows,omitempty"`
}

// maxHeadingTag bounds the HTML heading index.
const maxHeadingTag = 6

// HeadingTag returns the HTML heading index for a heading block. A single
// pound sign maps to h3, the largest heading used inside entity text.
func (b Block) HeadingTag() int {
	return min(b.Level+2, maxHeadingTag)
}

var (
	separatorRow = regexp.MustCompile(`^\|[\s:|-]+\|$`)
	headingLine  = regexp.MustCompile(`^(#{1,4})\s+(.+)$`)
	listItemLine = regexp.MustCompile(`^[-*]\s+`)
	emphasis     = regexp.MustCompile(`\*\*\*(.+?)\*\*\*|\*\*(.+?)\*\*|\*(.+?)\*`)
)

type parser struct {
	blocks    []Block
	listItems [][]Span
	tableRows [][][]Span
}

// Parse converts text into blocks in source line order. Table separator rows
// and blank lines produce no block. Parse never fails.
func Parse(text string) []Block {
	p := &parser{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if separatorRow.MatchString(trimmed) {
			continue
		}

		if isTableRow(trimmed) {
			if len(p.tableRows) == 0 {
				p.flushList()
			}
			p.tableRows = append(p.tableRows, splitCells(trimmed))
			continue
		}

		p.flushTable()

		if m := headingLine.FindStringSubmatch(trimmed); m != nil {
			p.flushList()
			p.blocks = append(p.blocks, Block{
				Kind:   BlockHeading,
				Level:  len(m[1]),
				Inline: ParseInline(m[2]),
			})
			continue
		}

		if loc := listItemLine.FindStringIndex(trimmed); loc != nil {
			p.listItems = append(p.listItems, ParseInline(trimmed[loc[1]:]))
			continue
		}

		p.flushList()

		if trimmed == "" {
			continue
		}

		p.blocks = append(p.blocks, Block{Kind: BlockParagraph, Inline: ParseInline(trimmed)})
	}

	p.flushList()
	p.flushTable()
	return p.blocks
}

func (p *parser) flushList() {
	if len(p.listItems) == 0 {
		return
	}
	p.blocks = append(p.blocks, Block{Kind: BlockList, Items: p.listItems})
	p.listItems = nil
}

func (p *parser) flushTable() {
	if len(p.tableRows) == 0 {
		return
	}
	p.blocks = append(p.blocks, Block{
		Kind:   BlockTable,
		Header: p.tableRows[0],
		Rows:   p.tableRows[1:],
	})
	p.tableRows = nil
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.HasSuffix(line, "|")
}

func splitCells(row string) [][]Span {
	inner := ""
	if len(row) >= 2 {
		inner = row[1 : len(row)-1]
	}
	parts := strings.Split(inner, "|")
	cells := make([][]Span, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, ParseInline(strings.TrimSpace(part)))
	}
	return cells
}

// ParseInline splits text into emphasis spans. Bold-italic, bold and italic
// are matched in one left-to-right scan; unmatched asterisks stay literal.
func ParseInline(text string) []Span {
	var spans []Span
	last := 0

	for _, m := range emphasis.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			spans = append(spans, Span{Style: StylePlain, Text: text[last:m[0]]})
		}
		switch {
		case m[2] >= 0:
			spans = append(spans, Span{Style: StyleBoldItalic, Text: text[m[2]:m[3]]})
		case m[4] >= 0:
			spans = append(spans, Span{Style: StyleBold, Text: text[m[4]:m[5]]})
		case m[6] >= 0:
			spans = append(spans, Span{Style: StyleItalic, Text: text[m[6]:m[7]]})
		}
		last = m[1]
	}

	if last < len(text) {
		spans = append(spans, Span{Style: StylePlain, Text: text[last:]})
	}
	return spans
}

// PlainText concatenates the text of spans without emphasis.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
