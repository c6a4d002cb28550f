package listing

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      int
	Name    string
	Status  string
	Created time.Time
}

type accountFilters struct {
	Name   string
	Status string
	Days   int
	Month  int
}

var testNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func accountPredicates() []Predicate[account, accountFilters] {
	return []Predicate[account, accountFilters]{
		Contains("name",
			func(f accountFilters) string { return f.Name },
			func(a account) string { return a.Name }),
		Equals("status",
			func(f accountFilters) string { return f.Status },
			func(a account) string { return a.Status },
			"all"),
		WithinDays("created",
			func(f accountFilters) int { return f.Days },
			func(a account) time.Time { return a.Created },
			func() time.Time { return testNow }),
		InMonth("month",
			func(f accountFilters) int { return f.Month },
			func(a account) time.Time { return a.Created }),
	}
}

// makeAccounts builds n accounts; every twentieth one is "paused".
func makeAccounts(n int) []account {
	out := make([]account, n)
	for i := range out {
		status := "active"
		if i%20 == 0 {
			status = "paused"
		}
		out[i] = account{
			ID:      i + 1,
			Name:    fmt.Sprintf("Account %03d", i+1),
			Status:  status,
			Created: testNow.Add(-time.Duration(i) * 24 * time.Hour),
		}
	}
	return out
}

func newTestController(records []account) *Controller[account, accountFilters] {
	return New(records, accountFilters{Status: "all"}, accountPredicates(), Options{
		Name:  "accounts",
		Sleep: func(time.Duration) {},
	})
}

func TestControllerDefaults(t *testing.T) {
	c := newTestController(makeAccounts(200))

	assert.Equal(t, DefaultPageSize, c.PageSize())
	assert.Equal(t, 25, c.VisibleCount())
	assert.Equal(t, 25, c.PreviousVisibleCount())
	assert.Len(t, c.Displayed(), 25)
	assert.True(t, c.HasMore())
	assert.False(t, c.Loading())
}

func TestControllerEmptyDatasetIsValid(t *testing.T) {
	c := newTestController(nil)

	assert.Empty(t, c.Filtered())
	assert.Empty(t, c.Displayed())
	assert.False(t, c.HasMore())
	assert.False(t, c.LoadMore())
}

func TestFilteredIsConjunction(t *testing.T) {
	c := newTestController(makeAccounts(200))

	c.SetFilters(func(f *accountFilters) {
		f.Status = "paused"
		f.Days = 100
	})

	got := c.Filtered()
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.Equal(t, "paused", a.Status)
		assert.LessOrEqual(t, ElapsedDays(testNow, a.Created), 100)
	}
	// paused accounts are i%20==0, within 100 days means i <= 100.
	assert.Len(t, got, 6)
}

func TestFilteredCommutative(t *testing.T) {
	records := makeAccounts(200)
	filters := accountFilters{Name: "1", Status: "active", Days: 150}

	preds := accountPredicates()
	reversed := make([]Predicate[account, accountFilters], len(preds))
	for i, p := range preds {
		reversed[len(preds)-1-i] = p
	}

	a := New(records, filters, preds, Options{})
	b := New(records, filters, reversed, Options{})

	if diff := cmp.Diff(a.Filtered(), b.Filtered()); diff != "" {
		t.Fatalf("predicate order changed the result (-forward +reversed):\n%s", diff)
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	c := newTestController([]account{
		{ID: 1, Name: "José Álvarez", Status: "active", Created: testNow},
		{ID: 2, Name: "MARIA LOPEZ", Status: "active", Created: testNow},
	})

	c.SetFilters(func(f *accountFilters) { f.Name = "álv" })
	assert.Equal(t, []int{1}, ids(c.Filtered()))

	c.SetFilters(func(f *accountFilters) { f.Name = "maria" })
	assert.Equal(t, []int{2}, ids(c.Filtered()))
}

func TestInactivePredicatesAreSkipped(t *testing.T) {
	records := makeAccounts(50)
	c := newTestController(records)

	c.SetFilters(func(f *accountFilters) {
		f.Name = ""
		f.Status = "all"
		f.Days = 0
		f.Month = 0
	})
	assert.Len(t, c.Filtered(), len(records))
}

func TestInMonth(t *testing.T) {
	c := newTestController(makeAccounts(60))

	c.SetFilters(func(f *accountFilters) { f.Month = int(time.September) })
	got := c.Filtered()
	require.NotEmpty(t, got)
	for _, a := range got {
		assert.Equal(t, time.September, a.Created.Month())
	}
}

func TestElapsedDaysRoundsUp(t *testing.T) {
	assert.Equal(t, 0, ElapsedDays(testNow, testNow))
	assert.Equal(t, 1, ElapsedDays(testNow, testNow.Add(-time.Minute)))
	assert.Equal(t, 1, ElapsedDays(testNow, testNow.Add(time.Minute)))
	assert.Equal(t, 8, ElapsedDays(testNow, testNow.Add(-7*24*time.Hour-time.Second)))
}

func TestDisplayedSliceSafety(t *testing.T) {
	for _, n := range []int{0, 1, 10, 24, 25, 26, 200} {
		c := newTestController(makeAccounts(n))
		assert.Len(t, c.Displayed(), min(25, n), "dataset of %d", n)
	}
}

func TestReconcileShrinksToFilteredSize(t *testing.T) {
	c := newTestController(makeAccounts(200))

	c.Update(func(f *accountFilters) { f.Status = "paused" })

	assert.Equal(t, 10, c.VisibleCount())
	assert.Len(t, c.Displayed(), 10)
	assert.False(t, c.HasMore())
	assert.Equal(t, 25, c.PreviousVisibleCount(), "reconciliation must not move the baseline")
}

func TestReconcileCapsAtPreviousVisibleCount(t *testing.T) {
	c := newTestController(makeAccounts(200))
	require.True(t, c.LoadMore())
	require.True(t, c.LoadMore())
	require.Equal(t, 75, c.VisibleCount())

	c.Update(func(f *accountFilters) { f.Status = "paused" })
	require.Equal(t, 10, c.VisibleCount())

	c.Update(func(f *accountFilters) { f.Status = "all" })
	assert.Equal(t, 75, c.VisibleCount())
	assert.Equal(t, 75, c.PreviousVisibleCount())
	assert.True(t, c.HasMore())
}

func TestStatusFilterRoundTrip(t *testing.T) {
	c := newTestController(makeAccounts(200))
	require.Len(t, c.Displayed(), 25)
	require.True(t, c.HasMore())

	c.Update(func(f *accountFilters) { f.Status = "paused" })
	assert.Equal(t, 10, c.VisibleCount())
	assert.False(t, c.HasMore())

	// Clearing the filter restores the last earned page, not the full result.
	c.Update(func(f *accountFilters) { f.Status = "all" })
	assert.Equal(t, c.PreviousVisibleCount(), c.VisibleCount())
	assert.Less(t, c.VisibleCount(), len(c.Filtered()))
	assert.True(t, c.HasMore())
}

func TestSetFiltersDoesNotTouchVisibleCount(t *testing.T) {
	c := newTestController(makeAccounts(200))

	c.SetFilters(func(f *accountFilters) { f.Status = "paused" })
	assert.Equal(t, 25, c.VisibleCount())
	assert.Len(t, c.Displayed(), 10)

	c.ApplyFilters()
	assert.Equal(t, 10, c.VisibleCount())
}

func TestLoadMoreAdvancesByPageSize(t *testing.T) {
	var slept []time.Duration
	c := New(makeAccounts(200), accountFilters{Status: "all"}, accountPredicates(), Options{
		Sleep: func(d time.Duration) { slept = append(slept, d) },
	})

	for want := 50; want <= 200; want += 25 {
		require.True(t, c.LoadMore())
		assert.Equal(t, want, c.VisibleCount())
		assert.Equal(t, want, c.PreviousVisibleCount())
	}
	assert.False(t, c.HasMore())
	before := c.Page()
	assert.False(t, c.LoadMore(), "nothing left to load")
	assert.Equal(t, before, c.Page())
	assert.Len(t, slept, 7)
	assert.Equal(t, DefaultLatency, slept[0])
}

func TestLoadMoreCapsAtFilteredLength(t *testing.T) {
	c := newTestController(makeAccounts(190))
	for c.VisibleCount() < 175 {
		require.True(t, c.LoadMore())
	}
	require.Equal(t, 175, c.VisibleCount())

	require.True(t, c.LoadMore())
	assert.Equal(t, 190, c.VisibleCount())
	assert.Equal(t, 190, c.PreviousVisibleCount())
	assert.False(t, c.HasMore())
}

func TestLoadMoreIgnoredWhileLoading(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	c := New(makeAccounts(200), accountFilters{Status: "all"}, accountPredicates(), Options{
		Sleep: func(time.Duration) {
			close(entered)
			<-release
		},
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.True(t, c.LoadMore())
	}()

	<-entered
	assert.True(t, c.Loading())
	before := c.Page()
	assert.False(t, c.LoadMore(), "second call while loading must be a no-op")
	assert.Equal(t, before, c.Page())

	close(release)
	wg.Wait()
	assert.False(t, c.Loading())
	assert.Equal(t, 50, c.VisibleCount())
}

func TestPageSnapshot(t *testing.T) {
	c := newTestController(makeAccounts(30))

	p := c.Page()
	assert.Len(t, p.Rows, 25)
	assert.Equal(t, 30, p.Total)
	assert.Equal(t, 25, p.Visible)
	assert.Equal(t, 25, p.Previous)
	assert.True(t, p.HasMore)
	assert.False(t, p.Loading)
}

func TestDisplayedRowsAreCopies(t *testing.T) {
	c := newTestController(makeAccounts(30))

	rows := c.Displayed()
	rows[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.Displayed()[0].Name)
}

type recordingObserver struct {
	applied []int
	loaded  []int
}

func (o *recordingObserver) FiltersApplied(_ string, filtered, _ int) {
	o.applied = append(o.applied, filtered)
}

func (o *recordingObserver) PageLoaded(_ string, visible int, _ time.Duration) {
	o.loaded = append(o.loaded, visible)
}

func TestObserverNotified(t *testing.T) {
	obs := &recordingObserver{}
	c := New(makeAccounts(60), accountFilters{Status: "all"}, accountPredicates(), Options{
		Observer: obs,
		Latency:  -1,
	})

	c.Update(func(f *accountFilters) { f.Status = "paused" })
	c.Update(func(f *accountFilters) { f.Status = "all" })
	c.LoadMore()

	assert.Equal(t, []int{3, 60}, obs.applied)
	assert.Equal(t, []int{50}, obs.loaded)
}

func ids(accounts []account) []int {
	out := make([]int, len(accounts))
	for i, a := range accounts {
		out[i] = a.ID
	}
	return out
}

func TestRecordsReturnsCopy(t *testing.T) {
	c := newTestController(makeAccounts(3))

	got := c.Records()
	got[0].Name = "changed"

	assert.NotEqual(t, "changed", c.Records()[0].Name)
	assert.NotEqual(t, "changed", c.Filtered()[0].Name)
	assert.NotEqual(t, "changed", c.Displayed()[0].Name)
}
