package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBrand   = lipgloss.Color("33")  // SOL blue
	colorAccent  = lipgloss.Color("39")
	colorMuted   = lipgloss.Color("245")
	colorError   = lipgloss.Color("196")
	colorDeposit = lipgloss.Color("39")
	colorExpense = lipgloss.Color("203")
	colorGood    = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	balanceBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	goodStyle     = lipgloss.NewStyle().Foreground(colorGood)

	depositStyle    = lipgloss.NewStyle().Foreground(colorDeposit)
	withdrawalStyle = lipgloss.NewStyle().Foreground(colorExpense)

	statusStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 3)
)
