package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanTimestamp returns a relative timestamp for recent times and a date otherwise.
func HumanTimestamp(t time.Time) string {
	return HumanTimestampFrom(t, time.Now())
}

// HumanTimestampFrom is HumanTimestamp against a fixed reference time.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 48*time.Hour:
		return "Yesterday"
	default:
		return t.Format("Jan 2, 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// MonthlyPrice renders a tier price; zero is shown as "free".
func MonthlyPrice(dollars int) string {
	if dollars <= 0 {
		return "free"
	}
	return fmt.Sprintf("$%d/mo", dollars)
}

// MaturityGauge renders a 1-4 maturity mean as a four-cell gauge, e.g. "██░░ 2.25".
func MaturityGauge(maturity float64) string {
	filled := int(math.Round(maturity))
	if filled < 0 {
		filled = 0
	}
	if filled > 4 {
		filled = 4
	}
	bar := StyleGreen.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", 4-filled))
	return fmt.Sprintf("%s %.2f", bar, maturity)
}
