package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5E7EB"}
	LabelColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	BorderColor  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(LabelColor).
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LabelColor)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(BorderColor).
			PaddingLeft(1)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(LabelColor)
)

// Inline emphasis
var (
	BoldStyle       = lipgloss.NewStyle().Bold(true)
	ItalicStyle     = lipgloss.NewStyle().Italic(true)
	BoldItalicStyle = lipgloss.NewStyle().Bold(true).Italic(true)
)
