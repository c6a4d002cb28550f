package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme 表示界面配色模式
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme validates a ui.theme / --theme value.
func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case "", ThemeAuto:
		return ThemeAuto, nil
	case ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("tui: unknown theme %q / 未知主题", raw)
	}
}

// Resolve turns auto into dark or light using detect, normally
// lipgloss.HasDarkBackground.
func (t Theme) Resolve(detect func() bool) Theme {
	if t != ThemeAuto {
		return t
	}
	if detect != nil && !detect() {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle switches between dark and light.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	danger    lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	text      lipgloss.Color
	inverse   lipgloss.Color
	selected  lipgloss.Color
	mark      lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#7C3AED"),
		secondary: lipgloss.Color("#A78BFA"),
		success:   lipgloss.Color("#22C55E"),
		warning:   lipgloss.Color("#F59E0B"),
		danger:    lipgloss.Color("#EF4444"),
		muted:     lipgloss.Color("#6B7280"),
		border:    lipgloss.Color("#374151"),
		text:      lipgloss.Color("#F9FAFB"),
		inverse:   lipgloss.Color("#FFFFFF"),
		selected:  lipgloss.Color("#1F2937"),
		mark:      lipgloss.Color("#854D0E"),
	}
	lightPalette = palette{
		primary:   lipgloss.Color("#6D28D9"),
		secondary: lipgloss.Color("#7C3AED"),
		success:   lipgloss.Color("#15803D"),
		warning:   lipgloss.Color("#B45309"),
		danger:    lipgloss.Color("#B91C1C"),
		muted:     lipgloss.Color("#6B7280"),
		border:    lipgloss.Color("#D1D5DB"),
		text:      lipgloss.Color("#111827"),
		inverse:   lipgloss.Color("#FFFFFF"),
		selected:  lipgloss.Color("#EDE9FE"),
		mark:      lipgloss.Color("#FDE68A"),
	}
)

// styles 为某一主题下的全部样式
type styles struct {
	header      lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	tableHeader lipgloss.Style
	row         lipgloss.Style
	rowSelected lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	muted       lipgloss.Style
	help        lipgloss.Style
	mark        lipgloss.Style
	success     lipgloss.Style
	warning     lipgloss.Style
	danger      lipgloss.Style
	input       lipgloss.Style
	inputActive lipgloss.Style
	modal       lipgloss.Style
	modalDanger lipgloss.Style
}

func newStyles(t Theme) styles {
	p := darkPalette
	if t == ThemeLight {
		p = lightPalette
	}
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.inverse).
			Background(p.primary).
			Padding(0, 1),
		tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		tabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			Underline(true).
			Padding(0, 1),
		tableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.inverse).
			Background(p.primary),
		row: lipgloss.NewStyle().
			Foreground(p.text),
		rowSelected: lipgloss.NewStyle().
			Background(p.selected).
			Foreground(p.text).
			Bold(true),
		label: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(14),
		value: lipgloss.NewStyle().
			Foreground(p.text),
		muted: lipgloss.NewStyle().
			Foreground(p.muted),
		help: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		mark: lipgloss.NewStyle().
			Background(p.mark).
			Bold(true),
		success: lipgloss.NewStyle().Foreground(p.success).Bold(true),
		warning: lipgloss.NewStyle().Foreground(p.warning).Bold(true),
		danger:  lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.border).
			Padding(0, 1),
		inputActive: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.secondary).
			Padding(0, 1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
		modalDanger: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.danger).
			Padding(1, 2),
	}
}

// statusStyle 按状态值选择颜色
func (s styles) statusStyle(status string) lipgloss.Style {
	switch status {
	case "active", "paid":
		return s.success
	case "paused", "vacation", "pending":
		return s.warning
	case "inactive", "overdue", "cancelled":
		return s.danger
	default:
		return s.muted
	}
}
