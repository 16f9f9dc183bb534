package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
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

// Predefined lipgloss styles.
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

// ScoreBadge returns a colored score indicator such as "● 87".
func ScoreBadge(score float64) string {
	text := fmt.Sprintf("● %.0f", score)
	switch {
	case score >= 75:
		return StyleGreen.Render(text)
	case score >= 50:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// SeverityStyle returns the lipgloss style for a conflict severity.
func SeverityStyle(s contract.ConflictSeverity) lipgloss.Style {
	switch s {
	case contract.SeverityHigh:
		return StyleRed
	case contract.SeverityMedium:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusPill returns a colored indicator for a certificate status.
func StatusPill(status domain.CertStatus) string {
	switch status {
	case domain.CertExpired:
		return StyleRed.Render("✖ Expired")
	case domain.CertRenewalDue:
		return StyleYellow.Render("● Renewal due")
	case domain.CertRenewalApproaching:
		return StyleYellow.Render("○ Renewal approaching")
	case domain.CertNew:
		return StyleBlue.Render("○ New")
	case domain.CertValid:
		return StyleGreen.Render("✔ Valid")
	default:
		return StyleDim.Render(string(status))
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
