package tui

// #region imports
import "github.com/charmbracelet/lipgloss"

// #endregion imports

// #region styles

// Styles groups the lipgloss styles used by the panel.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Canvas   lipgloss.Style
	BandLow  lipgloss.Style
	BandOK   lipgloss.Style
	BandHigh lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Canvas:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		BandLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		BandOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		BandHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// #endregion styles
