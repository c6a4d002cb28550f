// Package seed generates the synthetic users and billing datasets shown by
// the console. Output is deterministic for a given non-zero seed.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/creamcroissant/adminboard/internal/repository"
)

const (
	DefaultUsers    = 1000
	DefaultBillings = 200
	// DefaultHistory is how far back generated timestamps reach.
	DefaultHistory = 180 * 24 * time.Hour
)

// Options controls dataset generation.
type Options struct {
	Users    int
	Billings int
	// Seed makes the output reproducible. Zero picks a random seed.
	Seed    uint64
	History time.Duration
	Now     func() time.Time
}

// Generator produces mock records.
type Generator struct {
	faker   *gofakeit.Faker
	now     time.Time
	history time.Duration
	opts    Options
}

// New returns a generator for opts.
func New(opts Options) *Generator {
	if opts.Users <= 0 {
		opts.Users = DefaultUsers
	}
	if opts.Billings <= 0 {
		opts.Billings = DefaultBillings
	}
	if opts.History <= 0 {
		opts.History = DefaultHistory
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Generator{
		// gofakeit 在 seed 为 0 时使用随机种子
		faker:   gofakeit.New(opts.Seed),
		now:     opts.Now(),
		history: opts.History,
		opts:    opts,
	}
}

// Users generates the users dataset with sequential IDs starting at 1.
func (g *Generator) Users() []repository.User {
	f := g.faker
	out := make([]repository.User, g.opts.Users)
	for i := range out {
		out[i] = repository.User{
			ID:         int64(i + 1),
			FirstName:  f.FirstName(),
			LastName:   f.LastName(),
			Email:      f.Email(),
			Phone:      f.PhoneFormatted(),
			Status:     pick(f, repository.UserStatuses),
			WorkerType: pick(f, repository.WorkerTypes),
			CreatedAt:  g.recentTime(),
			Avatar:     fmt.Sprintf("https://i.pravatar.cc/150?u=%d", i+1),
		}
	}
	return out
}

// Billings generates the billing dataset. Paid bills get a PaidAt within a
// day after the due date.
func (g *Generator) Billings() []repository.Billing {
	f := g.faker
	out := make([]repository.Billing, g.opts.Billings)
	for i := range out {
		due := g.recentTime()
		status := pick(f, repository.BillingStatuses)
		b := repository.Billing{
			ID:       int64(i + 1),
			UserID:   int64(f.IntRange(1, 100)),
			UserName: f.FirstName() + " " + f.LastName(),
			Amount:   f.Price(100, 1000),
			Status:   status,
			DueDate:  due,
		}
		if status == repository.BillingStatusPaid {
			paid := f.DateRange(due, due.Add(24*time.Hour-time.Second)).Truncate(time.Second)
			b.PaidAt = &paid
		}
		out[i] = b
	}
	return out
}

func (g *Generator) recentTime() time.Time {
	return g.faker.DateRange(g.now.Add(-g.history), g.now).Truncate(time.Second)
}

func pick[T any](f *gofakeit.Faker, from []T) T {
	return from[f.IntRange(0, len(from)-1)]
}
