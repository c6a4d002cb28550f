package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creamcroissant/adminboard/internal/debounce"
	"github.com/creamcroissant/adminboard/internal/highlight"
	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/modal"
)

// screen 是路由到的一个列表页面
type screen interface {
	activate()
	capturing() bool
	update(msg tea.Msg) tea.Cmd
	settle()
	view(st styles, width, height int) string
	selectorKeys() []key.Binding
	close()
}

// column 描述表格的一列，R 为记录类型，S 为搜索字段结构
type column[R, S any] struct {
	title  string
	width  int
	value  func(R) string
	term   func(S) string
	status bool
}

type searchField[S any] struct {
	label string
	input textinput.Model
	set   func(*S, string)
}

type selector[F any] struct {
	label   string
	binding key.Binding
	options []string
	display func(string) string
	index   int
	apply   func(*F, string)
}

func (s selector[F]) current() string {
	v := s.options[s.index]
	if s.display != nil {
		return s.display(v)
	}
	return v
}

type field struct {
	label string
	value string
}

// paneConfig 汇总构造列表页面所需的实体相关部分
type paneConfig[R, F, S any] struct {
	route       Route
	ctrl        *listing.Controller[R, F]
	source      func() []R
	defaults    func() F
	applySearch func(*F, S)
	fields      []searchField[S]
	selectors   []selector[F]
	columns     []column[R, S]
	modals      *modal.Set[R]
	id          func(R) int64
	cycle       func(R) R
	details     func(R) []field
	debounce    time.Duration
	notify      func()
	keys        keyMap
}

// listPane 是泛型列表页面：搜索框经防抖后写入控制器的筛选条件
type listPane[R, F, S any] struct {
	cfg paneConfig[R, F, S]

	buffer    *debounce.Buffer[S]
	fields    []searchField[S]
	selectors []selector[F]
	focus     int // -1 表示浏览模式

	cursor int

	spinner       spinner.Model
	loadRequested bool
	activated     bool

	draft R
}

func newListPane[R, F, S any](cfg paneConfig[R, F, S]) *listPane[R, F, S] {
	var zero S
	notify := cfg.notify
	p := &listPane[R, F, S]{
		cfg:       cfg,
		fields:    cfg.fields,
		selectors: cfg.selectors,
		focus:     -1,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	p.buffer = debounce.New(zero, debounce.Options[S]{
		Delay: cfg.debounce,
		OnSettle: func(S) {
			if notify != nil {
				notify()
			}
		},
	})
	return p
}

// activate 首次进入页面时生成数据
func (p *listPane[R, F, S]) activate() {
	if p.activated {
		return
	}
	p.activated = true
	if p.cfg.source != nil {
		p.cfg.ctrl.SetRecords(p.cfg.source())
		p.cfg.ctrl.ApplyFilters()
	}
}

func (p *listPane[R, F, S]) capturing() bool {
	return p.focus >= 0 || p.cfg.modals.Active() != nil
}

func (p *listPane[R, F, S]) close() {
	p.buffer.Stop()
}

func (p *listPane[R, F, S]) selectorKeys() []key.Binding {
	out := make([]key.Binding, len(p.selectors))
	for i, s := range p.selectors {
		out[i] = s.binding
	}
	return out
}

// settle applies the settled search text to the controller.
func (p *listPane[R, F, S]) settle() {
	search := p.buffer.Value()
	p.cfg.ctrl.Update(func(f *F) { p.cfg.applySearch(f, search) })
	p.clampCursor()
}

func (p *listPane[R, F, S]) currentSearch() S {
	var s S
	for _, f := range p.fields {
		f.set(&s, f.input.Value())
	}
	return s
}

func (p *listPane[R, F, S]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		p.loadRequested = false
		p.clampCursor()
		return nil

	case spinner.TickMsg:
		if !p.loadRequested {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if active := p.cfg.modals.Active(); active != nil {
			return p.handleModalKey(msg, active)
		}
		if p.focus >= 0 {
			return p.handleSearchKey(msg)
		}
		return p.handleBrowseKey(msg)
	}
	return nil
}

func (p *listPane[R, F, S]) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.blur()
		return nil
	case tea.KeyEnter:
		p.blur()
		p.buffer.Flush()
		return nil
	case tea.KeyTab:
		return p.focusField((p.focus + 1) % len(p.fields))
	case tea.KeyShiftTab:
		return p.focusField((p.focus + len(p.fields) - 1) % len(p.fields))
	}

	before := p.fields[p.focus].input.Value()
	var cmd tea.Cmd
	p.fields[p.focus].input, cmd = p.fields[p.focus].input.Update(msg)
	if p.fields[p.focus].input.Value() != before {
		p.buffer.Observe(p.currentSearch())
	}
	return cmd
}

func (p *listPane[R, F, S]) focusField(i int) tea.Cmd {
	for j := range p.fields {
		p.fields[j].input.Blur()
	}
	p.focus = i
	return p.fields[i].input.Focus()
}

func (p *listPane[R, F, S]) blur() {
	for j := range p.fields {
		p.fields[j].input.Blur()
	}
	p.focus = -1
}

func (p *listPane[R, F, S]) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	keys := p.cfg.keys
	rows := p.cfg.ctrl.Displayed()

	switch {
	case key.Matches(msg, keys.Search):
		if len(p.fields) > 0 {
			return p.focusField(0)
		}
	case key.Matches(msg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Down):
		if p.cursor < len(rows)-1 {
			p.cursor++
			return nil
		}
		// 到达底部时自动加载下一页
		return p.requestLoad()
	case key.Matches(msg, keys.LoadMore):
		return p.requestLoad()
	case key.Matches(msg, keys.Reset):
		p.reset()
	case key.Matches(msg, keys.Enter):
		if row, ok := p.selected(rows); ok {
			p.cfg.modals.Show(p.cfg.modals.View, row)
		}
	case key.Matches(msg, keys.Edit):
		if row, ok := p.selected(rows); ok {
			p.draft = row
			p.cfg.modals.Show(p.cfg.modals.Edit, row)
		}
	case key.Matches(msg, keys.Delete):
		if row, ok := p.selected(rows); ok {
			p.cfg.modals.Show(p.cfg.modals.Delete, row)
		}
	default:
		for i := range p.selectors {
			if key.Matches(msg, p.selectors[i].binding) {
				p.cycleSelector(i)
				return nil
			}
		}
	}
	return nil
}

func (p *listPane[R, F, S]) handleModalKey(msg tea.KeyMsg, active *modal.Modal[R]) tea.Cmd {
	keys := p.cfg.keys
	set := p.cfg.modals
	row, ok := active.Data()
	if !ok {
		set.CloseAll()
		return nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		set.CloseAll()
	case active == set.View && key.Matches(msg, keys.Edit):
		p.draft = row
		set.Show(set.Edit, row)
	case active == set.View && key.Matches(msg, keys.Delete):
		set.Show(set.Delete, row)
	case active == set.Edit && key.Matches(msg, keys.Cycle):
		if p.cfg.cycle != nil {
			p.draft = p.cfg.cycle(p.draft)
		}
	case active == set.Edit && key.Matches(msg, keys.Enter):
		set.Save(p.draft)
	case active == set.Delete && (key.Matches(msg, keys.Confirm) || key.Matches(msg, keys.Enter)):
		set.ConfirmDelete(p.cfg.id(row))
	case active == set.Delete && msg.String() == "n":
		set.CloseAll()
	}
	return nil
}

func (p *listPane[R, F, S]) selected(rows []R) (R, bool) {
	if p.cursor < 0 || p.cursor >= len(rows) {
		var zero R
		return zero, false
	}
	return rows[p.cursor], true
}

func (p *listPane[R, F, S]) cycleSelector(i int) {
	s := &p.selectors[i]
	s.index = (s.index + 1) % len(s.options)
	value := s.options[s.index]
	p.cfg.ctrl.Update(func(f *F) { s.apply(f, value) })
	p.clampCursor()
}

func (p *listPane[R, F, S]) reset() {
	for i := range p.fields {
		p.fields[i].input.SetValue("")
	}
	for i := range p.selectors {
		p.selectors[i].index = 0
	}
	var zero S
	p.buffer.Observe(zero)
	p.buffer.Flush()
	p.cfg.ctrl.Update(func(f *F) { *f = p.cfg.defaults() })
	p.cursor = 0
}

// requestLoad 在后台执行 LoadMore，重复请求由控制器的加载标志拦截
func (p *listPane[R, F, S]) requestLoad() tea.Cmd {
	if p.loadRequested || p.cfg.ctrl.Loading() || !p.cfg.ctrl.HasMore() {
		return nil
	}
	p.loadRequested = true
	return tea.Batch(p.loadMoreCmd(), p.spinner.Tick)
}

func (p *listPane[R, F, S]) loadMoreCmd() tea.Cmd {
	ctrl := p.cfg.ctrl
	route := p.cfg.route
	return func() tea.Msg {
		return pageLoadedMsg{route: route, loaded: ctrl.LoadMore()}
	}
}

func (p *listPane[R, F, S]) clampCursor() {
	n := len(p.cfg.ctrl.Displayed())
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *listPane[R, F, S]) view(st styles, width, height int) string {
	var b strings.Builder

	// 搜索框
	inputs := make([]string, len(p.fields))
	for i, f := range p.fields {
		style := st.input
		if i == p.focus {
			style = st.inputActive
		}
		inputs[i] = style.Render(st.muted.Render(f.label+": ") + f.input.View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inputs...))
	b.WriteString("\n")

	// 筛选器
	sels := make([]string, len(p.selectors))
	for i, s := range p.selectors {
		sels[i] = fmt.Sprintf("[%s] %s: %s", s.binding.Help().Key, s.label, st.value.Render(s.current()))
	}
	b.WriteString(st.muted.Render("  " + strings.Join(sels, "   ")))
	b.WriteString("\n\n")

	page := p.cfg.ctrl.Page()
	search := p.buffer.Value()

	headers := make([]string, len(p.cfg.columns))
	for i, c := range p.cfg.columns {
		headers[i] = cell(c.title, c.width)
	}
	b.WriteString(st.tableHeader.Width(width).Render(strings.Join(headers, " ")))
	b.WriteString("\n")

	visibleRows := height - 14
	if visibleRows < 5 {
		visibleRows = 5
	}
	startIdx := 0
	if p.cursor >= visibleRows {
		startIdx = p.cursor - visibleRows + 1
	}
	endIdx := min(startIdx+visibleRows, len(page.Rows))

	if len(page.Rows) == 0 {
		b.WriteString(st.muted.Render("  No records match the current filters."))
		b.WriteString("\n")
	}
	for i := startIdx; i < endIdx; i++ {
		b.WriteString(p.renderRow(st, page.Rows[i], search, i == p.cursor, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("  Showing %d of %d", len(page.Rows), page.Total)
	switch {
	case page.Loading || p.loadRequested:
		status += "  " + p.spinner.View() + " loading more..."
	case page.HasMore:
		status += "  [m] load more"
	case page.Total > 0:
		status += "  end of results"
	}
	b.WriteString(st.muted.Render(status))

	content := b.String()
	if active := p.cfg.modals.Active(); active != nil {
		return p.overlay(st, active, content, width, height)
	}
	return content
}

func (p *listPane[R, F, S]) renderRow(st styles, row R, search S, selected bool, width int) string {
	cells := make([]string, len(p.cfg.columns))
	for i, c := range p.cfg.columns {
		text := truncate(c.value(row), c.width)
		if c.term != nil {
			text = highlight.Terminal(text, c.term(search), st.mark.Render)
		}
		if c.status {
			text = st.statusStyle(c.value(row)).Render(text)
		}
		cells[i] = cell(text, c.width)
	}
	line := strings.Join(cells, " ")
	if selected {
		return st.rowSelected.Width(width).Render(line)
	}
	return st.row.Render(line)
}

func (p *listPane[R, F, S]) overlay(st styles, active *modal.Modal[R], background string, width, height int) string {
	set := p.cfg.modals
	row, ok := active.Data()
	if !ok {
		return background
	}

	var b strings.Builder
	box := st.modal
	switch active {
	case set.View:
		b.WriteString(st.value.Bold(true).Render("Details"))
		b.WriteString("\n\n")
		b.WriteString(p.renderFields(st, row))
		b.WriteString("\n\n")
		b.WriteString(st.help.Render("[e] edit  [x] delete  [esc] close"))
	case set.Edit:
		b.WriteString(st.value.Bold(true).Render("Edit"))
		b.WriteString("\n\n")
		b.WriteString(p.renderFields(st, p.draft))
		b.WriteString("\n\n")
		b.WriteString(st.help.Render("[space] change status  [enter] save  [esc] cancel"))
	case set.Delete:
		box = st.modalDanger
		b.WriteString(st.danger.Render(fmt.Sprintf("Delete record #%d?", p.cfg.id(row))))
		b.WriteString("\n\n")
		b.WriteString(st.help.Render("[y] confirm  [n/esc] cancel"))
	}

	dialog := box.Render(b.String())
	if width <= 0 || height <= 0 {
		return dialog
	}
	return lipgloss.Place(width, height-4, lipgloss.Center, lipgloss.Center, dialog)
}

func (p *listPane[R, F, S]) renderFields(st styles, row R) string {
	lines := make([]string, 0, 8)
	for _, f := range p.cfg.details(row) {
		lines = append(lines, st.label.Render(f.label)+st.value.Render(f.value))
	}
	return strings.Join(lines, "\n")
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(s)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 64
	in.Width = 14
	return in
}
