// Package listing implements an incremental filtered-list controller: an
// ordered chain of filter predicates over an in-memory dataset, a growing
// visible-row cursor paged by LoadMore, and the reconciliation that keeps the
// cursor consistent whenever filters change.
package listing

import (
	"log/slog"
	"slices"
	"sync"
	"time"
)

const (
	// DefaultPageSize is the number of rows revealed by each LoadMore.
	DefaultPageSize = 25
	// DefaultLatency is the simulated duration of a LoadMore batch.
	DefaultLatency = 300 * time.Millisecond
)

// Observer receives controller lifecycle notifications.
type Observer interface {
	FiltersApplied(name string, filtered, visible int)
	PageLoaded(name string, visible int, elapsed time.Duration)
}

// Options configures a Controller.
type Options struct {
	// Name identifies the controller in logs and metrics (e.g. "users").
	Name     string
	PageSize int
	// Latency is how long LoadMore suspends before revealing the next page.
	// A negative value disables the wait.
	Latency  time.Duration
	Logger   *slog.Logger
	Observer Observer
	// Sleep replaces time.Sleep, mainly for tests.
	Sleep func(time.Duration)
}

// Page is a consistent snapshot of the controller state for a single render.
type Page[R any] struct {
	Rows     []R
	Total    int
	Visible  int
	Previous int
	HasMore  bool
	Loading  bool
}

// Controller owns a dataset, its filter state and the visible-row cursor.
type Controller[R, F any] struct {
	mu sync.Mutex

	name       string
	pageSize   int
	latency    time.Duration
	sleep      func(time.Duration)
	logger     *slog.Logger
	observer   Observer
	predicates []Predicate[R, F]

	records  []R
	filters  F
	visible  int
	previous int
	loading  bool

	// filtered 缓存，filters 或 records 变化时失效
	filtered []R
	stale    bool
}

// New creates a controller over records with the given initial filter state.
// Predicates are evaluated as a conjunction.
func New[R, F any](records []R, filters F, predicates []Predicate[R, F], opts Options) *Controller[R, F] {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	latency := opts.Latency
	if latency == 0 {
		latency = DefaultLatency
	}
	if latency < 0 {
		latency = 0
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Name != "" {
		logger = logger.With(slog.String("list", opts.Name))
	}

	return &Controller[R, F]{
		name:       opts.Name,
		pageSize:   pageSize,
		latency:    latency,
		sleep:      sleep,
		logger:     logger,
		observer:   opts.Observer,
		predicates: slices.Clone(predicates),
		records:    records,
		filters:    filters,
		visible:    pageSize,
		previous:   pageSize,
		stale:      true,
	}
}

// Name returns the controller name.
func (c *Controller[R, F]) Name() string { return c.name }

// PageSize returns the LoadMore batch size.
func (c *Controller[R, F]) PageSize() int { return c.pageSize }

// SetRecords replaces the dataset. The cursor is left as is; callers that
// swap datasets after activation should follow with ApplyFilters.
func (c *Controller[R, F]) SetRecords(records []R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
	c.stale = true
}

// Records returns a copy of the full dataset.
func (c *Controller[R, F]) Records() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.records)
}

// Filters returns a copy of the current filter state.
func (c *Controller[R, F]) Filters() F {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// SetFilters merges new predicate values into the filter state. It does not
// touch the visible count.
func (c *Controller[R, F]) SetFilters(mutate func(*F)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.filters)
	c.stale = true
}

// ApplyFilters reconciles the visible count with the current filtered size.
// A filter change may shrink the page to what exists, but never grows it past
// the size reached by the last completed LoadMore.
func (c *Controller[R, F]) ApplyFilters() {
	c.mu.Lock()
	filtered, visible := c.reconcileLocked()
	c.mu.Unlock()

	c.logger.Debug("filters applied",
		slog.Int("filtered", filtered),
		slog.Int("visible", visible),
	)
	if c.observer != nil {
		c.observer.FiltersApplied(c.name, filtered, visible)
	}
}

// Update mutates the filter state and reconciles in one step.
func (c *Controller[R, F]) Update(mutate func(*F)) {
	c.mu.Lock()
	mutate(&c.filters)
	c.stale = true
	filtered, visible := c.reconcileLocked()
	c.mu.Unlock()

	c.logger.Debug("filters updated",
		slog.Int("filtered", filtered),
		slog.Int("visible", visible),
	)
	if c.observer != nil {
		c.observer.FiltersApplied(c.name, filtered, visible)
	}
}

func (c *Controller[R, F]) reconcileLocked() (int, int) {
	l := len(c.filteredLocked())
	if l <= c.previous {
		c.visible = l
	} else {
		c.visible = c.previous
	}
	return l, c.visible
}

// Filtered returns the records accepted by every active predicate.
func (c *Controller[R, F]) Filtered() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.filteredLocked())
}

func (c *Controller[R, F]) filteredLocked() []R {
	if !c.stale {
		return c.filtered
	}

	active := make([]Predicate[R, F], 0, len(c.predicates))
	for _, p := range c.predicates {
		if p.Active(c.filters) {
			active = append(active, p)
		}
	}

	var out []R
	if len(active) == 0 {
		out = c.records
	} else {
		out = make([]R, 0, len(c.records))
	next:
		for _, r := range c.records {
			for _, p := range active {
				if !p.Matches(r, c.filters) {
					continue next
				}
			}
			out = append(out, r)
		}
	}

	c.filtered = out
	c.stale = false
	return out
}

// Displayed returns the first min(visible, len(filtered)) filtered rows.
func (c *Controller[R, F]) Displayed() []R {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayedLocked()
}

func (c *Controller[R, F]) displayedLocked() []R {
	filtered := c.filteredLocked()
	n := min(max(c.visible, 0), len(filtered))
	return slices.Clone(filtered[:n])
}

// HasMore reports whether filtered rows remain beyond the visible count.
func (c *Controller[R, F]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible < len(c.filteredLocked())
}

// Loading reports whether a LoadMore is in flight.
func (c *Controller[R, F]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// VisibleCount returns the visible-row cursor.
func (c *Controller[R, F]) VisibleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// PreviousVisibleCount returns the cursor as of the last completed LoadMore.
func (c *Controller[R, F]) PreviousVisibleCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.previous
}

// Page returns a snapshot of everything a view needs to render.
func (c *Controller[R, F]) Page() Page[R] {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := c.filteredLocked()
	return Page[R]{
		Rows:     c.displayedLocked(),
		Total:    len(filtered),
		Visible:  c.visible,
		Previous: c.previous,
		HasMore:  c.visible < len(filtered),
		Loading:  c.loading,
	}
}

// LoadMore reveals the next page after the configured latency. It returns
// false without changing state when nothing remains or another LoadMore is
// in flight. Once started it always runs to completion.
func (c *Controller[R, F]) LoadMore() bool {
	c.mu.Lock()
	if c.loading || c.visible >= len(c.filteredLocked()) {
		c.mu.Unlock()
		return false
	}
	c.loading = true
	c.mu.Unlock()

	start := time.Now()
	if c.latency > 0 {
		c.sleep(c.latency)
	}

	c.mu.Lock()
	c.visible = min(c.visible+c.pageSize, len(c.filteredLocked()))
	c.previous = c.visible
	c.loading = false
	visible := c.visible
	c.mu.Unlock()

	elapsed := time.Since(start)
	c.logger.Debug("page loaded",
		slog.Int("visible", visible),
		slog.Duration("elapsed", elapsed),
	)
	if c.observer != nil {
		c.observer.PageLoaded(c.name, visible, elapsed)
	}
	return true
}
