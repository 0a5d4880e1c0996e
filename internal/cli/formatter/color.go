package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/compass/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ComplexityStyle colors a complexity bracket from green (Intro) to red (Advanced).
func ComplexityStyle(c domain.Complexity) lipgloss.Style {
	switch c {
	case domain.ComplexityIntro:
		return StyleGreen
	case domain.ComplexityIntermediate:
		return StyleYellow
	case domain.ComplexityAdvanced:
		return StyleRed
	default:
		return StyleDim
	}
}

// ComplexityBadge returns a colored complexity label such as "● Intro".
func ComplexityBadge(c domain.Complexity) string {
	if c == "" {
		return StyleDim.Render("● --")
	}
	return ComplexityStyle(c).Render("● " + string(c))
}

// PlanBadge renders a plan name in the color of its tier.
func PlanBadge(p domain.Plan) string {
	switch p {
	case domain.PlanFree:
		return StyleFg.Render(string(p))
	case domain.PlanStarter:
		return StyleBlue.Render(string(p))
	case domain.PlanPro:
		return StylePurple.Render(string(p))
	case domain.PlanEnterprise:
		return StyleHeader.Render(string(p))
	default:
		return StyleDim.Render(string(p))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
