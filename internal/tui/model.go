// Package tui implements the interactive admin console: a users screen and a
// billing screen, each a filtered list fed by debounced search inputs.
package tui

import (
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/creamcroissant/adminboard/internal/cache"
	"github.com/creamcroissant/adminboard/internal/modal"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/service"
)

// Options 汇总构造 TUI 所需的依赖
type Options struct {
	Users   *service.UserList
	Billing *service.BillingList

	// UserSource and BillingSource generate the dataset when a screen is
	// first shown. Nil keeps the controller's current records.
	UserSource    func() []repository.User
	BillingSource func() []repository.Billing

	UserHandlers    modal.Handlers[repository.User]
	BillingHandlers modal.Handlers[repository.Billing]

	// Store holds modal payloads. A fresh go-cache store is used when nil.
	Store             cache.Store
	ModalCleanupDelay time.Duration
	DebounceDelay     time.Duration

	Theme      Theme
	DetectDark func() bool
	StartPath  string
	Logger     *slog.Logger
}

// Model 是主 TUI 模型
type Model struct {
	screens map[Route]screen
	route   Route

	theme  Theme
	styles styles

	bus    *bus
	keys   keyMap
	help   help.Model
	logger *slog.Logger

	// 终端尺寸
	width  int
	height int
}

// NewModel 创建新的 TUI 模型
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := opts.Store
	if store == nil {
		store = cache.NewStore(cache.Options{})
	}
	detect := opts.DetectDark
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}
	theme := opts.Theme
	if theme == "" {
		theme = ThemeAuto
	}
	theme = theme.Resolve(detect)

	keys := defaultKeyMap()
	b := newBus()

	m := Model{
		screens: map[Route]screen{
			RouteUsers: newUsersScreen(opts.Users, opts.UserSource,
				modal.NewSet(store, "users", opts.ModalCleanupDelay, opts.UserHandlers),
				opts.DebounceDelay, func() { b.notify(RouteUsers) }, keys),
			RouteBilling: newBillingScreen(opts.Billing, opts.BillingSource,
				modal.NewSet(store, "billing", opts.ModalCleanupDelay, opts.BillingHandlers),
				opts.DebounceDelay, func() { b.notify(RouteBilling) }, keys),
		},
		theme:  theme,
		styles: newStyles(theme),
		bus:    b,
		keys:   keys,
		help:   help.New(),
		logger: logger,
	}
	m.navigate(opts.StartPath)
	return m
}

// Route returns the current screen.
func (m Model) Route() Route { return m.route }

// Theme returns the resolved theme.
func (m Model) Theme() Theme { return m.theme }

// Close 停止防抖定时器并释放等待中的命令
func (m Model) Close() {
	for _, s := range m.screens {
		s.close()
	}
	m.bus.close()
}

func (m *Model) navigate(path string) {
	route := Resolve(path)
	if route != Route(path) {
		m.logger.Debug("route redirected", slog.String("from", path), slog.String("to", string(route)))
	}
	m.route = route
	m.screens[route].activate()
}

func (m Model) current() screen {
	return m.screens[m.route]
}

// Init 实现 tea.Model
func (m Model) Init() tea.Cmd {
	return m.bus.wait()
}

// 消息类型

// searchSettledMsg 表示某些页面的搜索输入已经稳定
type searchSettledMsg struct {
	routes []Route
}

type pageLoadedMsg struct {
	route  Route
	loaded bool
}

// bus 把防抖定时器的回调转交给 bubbletea 事件循环，同一页面的多次通知会合并
type bus struct {
	mu      sync.Mutex
	pending map[Route]bool
	signal  chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newBus() *bus {
	return &bus{
		pending: make(map[Route]bool),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (b *bus) notify(r Route) {
	b.mu.Lock()
	b.pending[r] = true
	b.mu.Unlock()
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *bus) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.signal:
		case <-b.done:
			return nil
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		var routes []Route
		for _, r := range Routes {
			if b.pending[r] {
				routes = append(routes, r)
			}
		}
		clear(b.pending)
		return searchSettledMsg{routes: routes}
	}
}

func (b *bus) close() {
	b.once.Do(func() { close(b.done) })
}
