package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight    = 2
	MaxTextareaHeight    = 8
	DefaultTextareaWidth = 60
	TextAreaPaddingLeft  = 1

	// Viewport
	MinViewportHeight = 1

	// Panes. The chat gets this share of the width, the dashboard the rest.
	ChatWidthPercent  = 60
	MinDashboardWidth = 30
	PaneGap           = 1

	// Dashboard
	CardGap          = 1
	DefaultChartRows = 8
	MinFeedHeight    = 3

	MessagePaddingLeft = 1
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	SuccessColor   = lipgloss.Color("#10B981") // Green
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
	DividerColor   = lipgloss.Color("#374151")
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
		Background(PrimaryColor).
		Foreground(TextColor).
		Bold(true)
)

// Messages.
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(6)

	AssistantMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(SecondaryColor).
				MarginRight(6)

	SystemStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(MessagePaddingLeft)
)

// Input area
var (
	TextAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			PaddingLeft(TextAreaPaddingLeft)

	PendingStyle = lipgloss.NewStyle().
			Foreground(DimTextColor).
			Italic(true)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(SecondaryColor)
)

// Dashboard
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	FocusedPaneStyle = lipgloss.NewStyle().
				Inherit(PaneStyle).
				BorderForeground(SecondaryColor)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	CardLabelStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)

	CardValueStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	ChartStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	MerchantStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	AmountStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	RefreshingStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Italic(true)
)

// Help text
var (
	HelpStyle = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)

// Divider
var (
	DividerStyle = lipgloss.NewStyle().
		Foreground(DividerColor)
)

// MessageHorizontalFrameSize returns the horizontal frame size of assistant messages.
func MessageHorizontalFrameSize() int {
	return AssistantMessageStyle.GetHorizontalFrameSize()
}

// Divider creates a horizontal divider of the specified width.
func Divider(width int) string {
	if width < 1 {
		width = 1
	}
	return DividerStyle.Render(lipgloss.NewStyle().Width(width).Render(strings.Repeat("─", width)))
}

// Truncate truncates a string to the specified number of runes with an ellipsis.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if maxLen <= 0 || len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
