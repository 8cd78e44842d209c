package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the chrome around the scene: panel text, axis box and
// labels. Scene colours themselves are fixed.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:      "slate",
		Primary:   lipgloss.Color("#4c9be8"),
		Secondary: lipgloss.Color("#cfd8e3"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#e6e6e6"),
		Muted:     lipgloss.Color("#5c6370"),
		Error:     lipgloss.Color("#ff5555"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#88ff88"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemePaper = Theme{
		Name:      "paper",
		Primary:   lipgloss.Color("#1f4e8c"),
		Secondary: lipgloss.Color("#333333"),
		Accent:    lipgloss.Color("#b58900"),
		Text:      lipgloss.Color("#111111"),
		Muted:     lipgloss.Color("#999999"),
		Error:     lipgloss.Color("#cc0000"),
	}

	// Default theme
	CurrentTheme = ThemeSlate

	Themes = []Theme{ThemeSlate, ThemeRetroGreen, ThemePaper}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
