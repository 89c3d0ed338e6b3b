package ui

import "github.com/charmbracelet/lipgloss"

// prio's palette: heat colors for scores, cool tones for chrome.
var (
	Gold     = lipgloss.Color("#FFD700")
	Amber    = lipgloss.Color("#FFBF00")
	Ember    = lipgloss.Color("#FF7F11")
	Ruby     = lipgloss.Color("#E0115F")
	Emerald  = lipgloss.Color("#50C878")
	Sapphire = lipgloss.Color("#0F52BA")
	Dim      = lipgloss.Color("#666666")
	Bright   = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	Success = lipgloss.NewStyle().
		Foreground(Emerald)

	Error = lipgloss.NewStyle().
		Foreground(Ruby)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sapphire)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	// Score heat, hottest first.
	ScoreCritical = lipgloss.NewStyle().Foreground(Ruby).Bold(true)
	ScoreHigh     = lipgloss.NewStyle().Foreground(Ember)
	ScoreMedium   = lipgloss.NewStyle().Foreground(Amber)
	ScoreLow      = lipgloss.NewStyle().Foreground(Emerald)
)

// Icons used across output.
const (
	IconTarget = "🎯 "
	IconChart  = "📊 "
	IconStats  = "📈 "
	IconSave   = "💾 "
	IconRed    = "🔴"
	IconOrange = "🟠"
	IconYellow = "🟡"
	IconGreen  = "🟢"
	IconWarn   = "⚠️  "
	IconError  = "✗ "
	IconOk     = "✓ "
	IconArrow  = "→"
	IconDot    = "·"
)
