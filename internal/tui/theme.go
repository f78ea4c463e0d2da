// Package tui renders the monitor and tracker dashboards. The original
// tool shipped several near-identical screens per color scheme; here a
// single model is parameterized by a Theme and the configured feature
// flags instead.
package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the styles that differed between the original screen
// variants.
type Theme struct {
	Name string

	Title   lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	Muted   lipgloss.Style
	KeyHint lipgloss.Style
}

func makeTheme(name, accent, good, warn, bad, muted string) Theme {
	accentC := lipgloss.Color(accent)
	return Theme{
		Name:    name,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accentC).Padding(0, 1),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentC).Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Value:   lipgloss.NewStyle().Bold(true),
		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color(good)),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color(warn)),
		Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color(bad)).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		KeyHint: lipgloss.NewStyle().Foreground(accentC),
	}
}

var themes = map[string]Theme{
	// Green-on-dark terminal look of the first-generation screens.
	"classic": makeTheme("classic", "#00ff00", "#00ff00", "#ffcc00", "#ff4444", "#888888"),
	// Dark slate variant.
	"midnight": makeTheme("midnight", "#7c3aed", "#34d399", "#fbbf24", "#f87171", "#64748b"),
	// The professional blue scheme.
	"pro": makeTheme("pro", "#2563eb", "#059669", "#d97706", "#dc2626", "#64748b"),
}

// ThemeByName resolves a theme, falling back to classic for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{"classic", "midnight", "pro"}
}
