package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the views share. Built once at startup.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style

	SearchActive lipgloss.Style
	SearchIdle   lipgloss.Style

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	TentativeBubble lipgloss.Style
	FollowUp        lipgloss.Style

	SummaryPanel lipgloss.Style
	SummaryLabel lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")),

		SearchActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),

		SearchIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		UserBubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),

		AssistantBubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		TentativeBubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),

		FollowUp: lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Italic(true),

		SummaryPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		SummaryLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("111")).
			Bold(true),
	}
}
