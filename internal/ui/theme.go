package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
)

// Aura theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconDumbbell = "🏋️"
	IconCalendar = "📅"
	IconHistory  = "🕘"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconImport   = "📥"
	IconExport   = "📤"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cTip     = lipgloss.Color("99")  // indigo
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Tip   = lipgloss.NewStyle().Italic(true).Foreground(cTip)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	TipPanel    = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cTip).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	Chip        = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 1)

	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(cPrimary).Padding(0, 2)
	TabInactive = lipgloss.NewStyle().Foreground(cMuted).Padding(0, 2)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// BodyPartBadge renders the one-letter badge shown on the body part grid.
func BodyPartBadge(bp catalog.BodyPart) string {
	if bp == "" {
		return "?"
	}
	return Gold.Render(string([]rune(string(bp))[0]))
}

// SetsBadge renders "3 Sets".
func SetsBadge(n int) string {
	unit := "Sets"
	if n == 1 {
		unit = "Set"
	}
	return Muted.Render(fmt.Sprintf("%d %s", n, unit))
}
