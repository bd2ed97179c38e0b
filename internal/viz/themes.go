package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for bars and card chrome.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Sorted  lipgloss.Color
	Border  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Title:   lipgloss.Color("#00ffff"),
		Bar:     lipgloss.Color("#ff00ff"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Border:  lipgloss.Color("#444466"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#88ff88"),
		Bar:     lipgloss.Color("#00cc00"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff0000"),
		Sorted:  lipgloss.Color("#88ff88"),
		Border:  lipgloss.Color("#005500"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Title:   lipgloss.Color("#00a8cc"),
		Bar:     lipgloss.Color("#0077be"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Sorted:  lipgloss.Color("#00ff88"),
		Border:  lipgloss.Color("#4488aa"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Title:   lipgloss.Color("#feca57"),
		Bar:     lipgloss.Color("#ff6b6b"),
		Compare: lipgloss.Color("#feca57"),
		Swap:    lipgloss.Color("#ff4757"),
		Sorted:  lipgloss.Color("#5fd068"),
		Border:  lipgloss.Color("#8b6b8c"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
