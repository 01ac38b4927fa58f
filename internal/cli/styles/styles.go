// Package styles holds the lipgloss styles and render helpers for human-readable CLI output
package styles

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/workboard/internal/models"
)

// Palette names the colors the CLI renders with
type Palette struct {
	Accent string
	Title  string
	Subtle string
	Normal string
	Error  string
	Info   string
	Warn   string
}

// DefaultPalette is used unless Init is called with another one
var DefaultPalette = Palette{
	Accent: "#7C3AED",
	Title:  "#F5F5F5",
	Subtle: "#6B7280",
	Normal: "#D1D5DB",
	Error:  "#EF4444",
	Info:   "#22C55E",
	Warn:   "#EAB308",
}

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "State:", "Assignee:"
	ValueStyle    lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Description", "Tags"
	HeaderStyle   lipgloss.Style // For list column headers

	stateColors map[models.State]string
)

func init() {
	Init(DefaultPalette)
}

// Init initializes all CLI styles with the given palette
func Init(p Palette) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent)).
		Bold(true).
		MarginTop(1)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Subtle))

	stateColors = map[models.State]string{
		models.StateNew:      p.Info,
		models.StateActive:   p.Accent,
		models.StateResolved: p.Warn,
		models.StateClosed:   p.Subtle,
		models.StateRemoved:  p.Error,
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders "Label: value" with the label and value styles
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// StateBadge renders a work item state in its color
func StateBadge(state models.State) string {
	color, ok := stateColors[state]
	if !ok {
		color = DefaultPalette.Normal
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(state.String())
}

// TagChips renders tag names as "[name]" chips separated by spaces
func TagChips(tags []string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = LabelStyle.Render("[" + tag + "]")
	}
	return strings.Join(chips, " ")
}

// Placeholder renders a dimmed stand-in for an empty value
func Placeholder(text string) string {
	return SubtitleStyle.Italic(true).Render(text)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// Cache glamour renderers by width, they are expensive to build
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a work item description as terminal markdown,
// falling back to the raw text when rendering fails
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return Placeholder("No description")
	}

	renderer, err := markdownRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
