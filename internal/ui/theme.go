package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/view"
)

// DefaultPreset is used for empty or unknown preset names.
const DefaultPreset = "default-dark"

// Theme holds resolved lipgloss colors for TUI rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Holiday       lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Holiday:       lipgloss.Color("208"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Holiday:       lipgloss.Color("166"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Holiday:       lipgloss.Color("#FFB86C"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	"catppuccin-mocha": {
		Primary:       lipgloss.Color("#CDD6F4"),
		Secondary:     lipgloss.Color("#585B70"),
		Accent:        lipgloss.Color("#CBA6F7"),
		Muted:         lipgloss.Color("#6C7086"),
		Danger:        lipgloss.Color("#F38BA8"),
		Holiday:       lipgloss.Color("#FAB387"),
		Background:    lipgloss.Color("#1E1E2E"),
		MarkdownStyle: "dark",
	},
	"gruvbox-dark": {
		Primary:       lipgloss.Color("#EBDBB2"),
		Secondary:     lipgloss.Color("#665C54"),
		Accent:        lipgloss.Color("#FABD2F"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#FB4934"),
		Holiday:       lipgloss.Color("#FE8019"),
		Background:    lipgloss.Color("#282828"),
		MarkdownStyle: "dark",
	},
	"gruvbox-light": {
		Primary:       lipgloss.Color("#3C3836"),
		Secondary:     lipgloss.Color("#A89984"),
		Accent:        lipgloss.Color("#D79921"),
		Muted:         lipgloss.Color("#928374"),
		Danger:        lipgloss.Color("#CC241D"),
		Holiday:       lipgloss.Color("#AF3A03"),
		Background:    lipgloss.Color("#FBF1C7"),
		MarkdownStyle: "light",
	},
}

// Presets returns the built-in preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// ResolveTheme builds a Theme from config, starting with a preset
// and applying any explicit overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets[DefaultPreset]
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Secondary, cfg.Secondary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Danger, cfg.Danger)
	override(&theme.Background, cfg.Background)
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}
	return theme
}

func (t Theme) base() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Primary).Background(t.Background)
}

// HelpStyle is used for footers and hints.
func (t Theme) HelpStyle() lipgloss.Style {
	return t.base().Foreground(t.Muted)
}

// HeaderStyle is used for view titles.
func (t Theme) HeaderStyle() lipgloss.Style {
	return t.base().Bold(true)
}

// AccentStyle marks focused elements.
func (t Theme) AccentStyle() lipgloss.Style {
	return t.base().Foreground(t.Accent)
}

// DangerStyle is used for delete prompts and errors.
func (t Theme) DangerStyle() lipgloss.Style {
	return t.base().Foreground(t.Danger)
}

// HolidayStyle is used for holiday names and cells.
func (t Theme) HolidayStyle() lipgloss.Style {
	return t.base().Foreground(t.Holiday)
}

// BorderStyle returns a rounded border in the secondary color.
func (t Theme) BorderStyle() lipgloss.Style {
	return t.base().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background)
}

// TabStyle renders a view tab.
func (t Theme) TabStyle(active bool) lipgloss.Style {
	s := t.base().Padding(0, 1)
	if active {
		return s.Bold(true).Foreground(t.Background).Background(t.Accent)
	}
	return s.Foreground(t.Muted)
}

// CellStyle renders one month grid cell. Selection wins over today, today
// over holiday.
func (t Theme) CellStyle(c view.Cell) lipgloss.Style {
	s := t.base().Width(cellWidth).Align(lipgloss.Center)
	switch {
	case !c.InMonth:
		return s.Foreground(t.Muted).Faint(true)
	case c.Selected:
		return s.Bold(true).Foreground(t.Background).Background(t.Accent)
	case c.Today:
		return s.Bold(true).Underline(true).Foreground(t.Accent)
	case c.Holiday != "":
		return s.Foreground(t.Holiday)
	}
	return s
}

// RowStyle renders a list row, highlighted or not.
func (t Theme) RowStyle(highlighted bool) lipgloss.Style {
	if highlighted {
		return t.base().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Accent).
			BorderBackground(t.Background).
			Foreground(t.Accent).
			PaddingLeft(1)
	}
	return t.base().PaddingLeft(2)
}

// bgEscapeCode returns the raw ANSI sequence selecting the background color,
// for use with \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen pads every line to width and the content to height with the
// background color, so the theme fills the terminal.
func (t Theme) PaintScreen(content string, width, height int) string {
	pad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += pad.Render(strings.Repeat(" ", gap))
		}
		lines[i] = line + clearEOL
	}
	blank := pad.Render(strings.Repeat(" ", max(width, 0))) + clearEOL
	for len(lines) < height {
		lines = append(lines, blank)
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
