package listing

import (
	"math"
	"time"

	"github.com/creamcroissant/adminboard/internal/support/textmatch"
)

// Predicate narrows a dataset according to the current filter state.
// An inactive predicate is skipped entirely.
type Predicate[R, F any] interface {
	Name() string
	Active(filters F) bool
	Matches(record R, filters F) bool
}

type funcPredicate[R, F any] struct {
	name    string
	active  func(F) bool
	matches func(R, F) bool
}

func (p funcPredicate[R, F]) Name() string { return p.name }
func (p funcPredicate[R, F]) Active(filters F) bool { return p.active(filters) }
func (p funcPredicate[R, F]) Matches(record R, filters F) bool { return p.matches(record, filters) }

// Func adapts a pair of functions into a Predicate.
func Func[R, F any](name string, active func(F) bool, matches func(R, F) bool) Predicate[R, F] {
	return funcPredicate[R, F]{name: name, active: active, matches: matches}
}

// Contains matches records whose field contains the query, ignoring case.
// An empty query is inactive.
func Contains[R, F any](name string, query func(F) string, field func(R) string) Predicate[R, F] {
	return Func(name,
		func(f F) bool { return query(f) != "" },
		func(r R, f F) bool { return textmatch.Contains(field(r), query(f)) },
	)
}

// Equals matches records whose field equals the selected value.
// Selecting the all sentinel makes it inactive.
func Equals[R, F any, V comparable](name string, selected func(F) V, field func(R) V, all V) Predicate[R, F] {
	return Func(name,
		func(f F) bool { return selected(f) != all },
		func(r R, f F) bool { return field(r) == selected(f) },
	)
}

// WithinDays matches records whose timestamp lies within the rolling window
// returned by days. The distance is absolute and rounded up to whole days.
// Zero or negative days is inactive.
func WithinDays[R, F any](name string, days func(F) int, stamp func(R) time.Time, now func() time.Time) Predicate[R, F] {
	if now == nil {
		now = time.Now
	}
	return Func(name,
		func(f F) bool { return days(f) > 0 },
		func(r R, f F) bool { return ElapsedDays(now(), stamp(r)) <= days(f) },
	)
}

// InMonth matches records whose timestamp falls in the selected calendar
// month (1-12). Zero is inactive.
func InMonth[R, F any](name string, month func(F) int, stamp func(R) time.Time) Predicate[R, F] {
	return Func(name,
		func(f F) bool { return month(f) != 0 },
		func(r R, f F) bool { return int(stamp(r).Month()) == month(f) },
	)
}

// ElapsedDays returns |a-b| in days, rounded up.
func ElapsedDays(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}
