package tui

import (
	"strings"
)

// View 实现 tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// 头部
	b.WriteString(m.styles.header.Width(m.width).Render("  Admin Board"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(m.current().view(m.styles, m.width, m.height))
	b.WriteString("\n\n")

	// 帮助提示
	keys := helpKeys{keys: m.keys, selectors: m.current().selectorKeys()}
	b.WriteString(m.styles.help.Render(m.help.View(keys)))

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(Routes))
	for i, r := range Routes {
		style := m.styles.tab
		if r == m.route {
			style = m.styles.tabActive
		}
		tabs[i] = style.Render(r.title())
	}
	return strings.Join(tabs, " ") + m.styles.muted.Render("   theme: "+string(m.theme))
}
