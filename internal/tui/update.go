package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case searchSettledMsg:
		// 先完成筛选与分页校正，再进入下一次 View
		for _, r := range msg.routes {
			m.screens[r].settle()
		}
		return m, m.bus.wait()

	case pageLoadedMsg:
		if !msg.loaded {
			m.logger.Debug("load more skipped", slog.String("route", string(msg.route)))
		}
		return m, m.screens[msg.route].update(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, r := range Routes {
			cmds = append(cmds, m.screens[r].update(msg))
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.current().capturing() {
		return m, m.current().update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Users):
		m.navigate(string(RouteUsers))

	case key.Matches(msg, m.keys.Billing):
		m.navigate(string(RouteBilling))

	case key.Matches(msg, m.keys.NextTab):
		m.navigate(string(m.route.next()))

	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		m.styles = newStyles(m.theme)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		return m, m.current().update(msg)
	}

	return m, nil
}
