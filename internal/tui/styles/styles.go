// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for focused panes and keys
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Bar colors. Top-level tasks get the strong bar, nested tasks the soft one.
var (
	BarTopColor    = lipgloss.AdaptiveColor{Light: "#296FDF", Dark: "#4A8CFF"}
	BarNestedColor = lipgloss.AdaptiveColor{Light: "#8FB6F0", Dark: "#2B4E80"}
	WeekRuleColor  = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#444444"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(0, 1)

	// Title is the style for section titles
	// NOTE: No margins - they break viewport line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Pane styles
var (
	// Pane is the style for an unfocused pane
	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// PaneFocused is for the focused pane
	PaneFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// Chart styles. Each grid cell flag maps to one of these.
var (
	// ChartHeader is for the date labels above week-boundary columns
	ChartHeader = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	// ChartName is for nested task names
	ChartName = lipgloss.NewStyle()

	// ChartNameTop is for top-level task names
	ChartNameTop = lipgloss.NewStyle().
			Bold(true)

	// ChartCell is an inactive day
	ChartCell = lipgloss.NewStyle().
			Foreground(WeekRuleColor)

	// ChartCellTop is an inactive day on a top-level row
	ChartCellTop = lipgloss.NewStyle().
			Foreground(WeekRuleColor).
			Underline(true)

	// ChartHighlight is an active day of a nested task
	ChartHighlight = lipgloss.NewStyle().
			Foreground(BarNestedColor)

	// ChartTopHighlight is an active day of a top-level task
	ChartTopHighlight = lipgloss.NewStyle().
				Foreground(BarTopColor).
				Bold(true)

	// ChartWeekRule marks the week-boundary column
	ChartWeekRule = lipgloss.NewStyle().
			Foreground(WeekRuleColor)

	// ChartEmpty is shown when no line is a task
	ChartEmpty = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)
)

// Cell glyphs, readable without colors.
const (
	GlyphTopBar    = "█"
	GlyphNestedBar = "▒"
	GlyphEmpty     = "·"
	GlyphTopEmpty  = " "
	GlyphWeekRule  = "┊"
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarWarning is for skipped input lines
	StatusBarWarning = lipgloss.NewStyle().
				Foreground(WarningColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// SectionHeader is for help section titles
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle).
			Underline(true)
)

// Dialog is the base style for dialog boxes
var Dialog = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Highlight).
	Padding(1, 2)
