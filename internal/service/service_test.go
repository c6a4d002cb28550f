package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/repository/memory"
)

var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return now }

func sampleUsers() []repository.User {
	return []repository.User{
		{ID: 1, FirstName: "Ana", LastName: "García", Email: "ana@example.com", Phone: "+34 600 111 222",
			Status: repository.UserStatusActive, WorkerType: repository.WorkerTypeEmployee, CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: 2, FirstName: "Luis", LastName: "Martínez", Email: "luis@example.org", Phone: "+34 611 333 444",
			Status: repository.UserStatusPaused, WorkerType: repository.WorkerTypeEmployer, CreatedAt: now.Add(-20 * 24 * time.Hour)},
		{ID: 3, FirstName: "Mariana", LastName: "López", Email: "mariana@mail.test", Phone: "+34 622 555 666",
			Status: repository.UserStatusActive, WorkerType: repository.WorkerTypeEmployer, CreatedAt: now.Add(-45 * 24 * time.Hour)},
		{ID: 4, FirstName: "Diego", LastName: "Ruiz", Email: "diego@mail.test", Phone: "+34 633 777 888",
			Status: repository.UserStatusVacation, WorkerType: repository.WorkerTypeEmployee, CreatedAt: now.Add(-90 * 24 * time.Hour)},
	}
}

func sampleBillings() []repository.Billing {
	paid := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	return []repository.Billing{
		{ID: 1, UserName: "Ana García", Amount: 120, Status: repository.BillingStatusPending, DueDate: time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 2, UserName: "Luis Martínez", Amount: 560.5, Status: repository.BillingStatusPaid, DueDate: time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC), PaidAt: &paid},
		{ID: 3, UserName: "Ana Ruiz", Amount: 999, Status: repository.BillingStatusOverdue, DueDate: time.Date(2026, time.September, 20, 0, 0, 0, 0, time.UTC)},
	}
}

func userIDs(users []repository.User) []int64 {
	out := make([]int64, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func billingIDs(bills []repository.Billing) []int64 {
	out := make([]int64, len(bills))
	for i, b := range bills {
		out[i] = b.ID
	}
	return out
}

func TestUserListFilters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*repository.UserFilters)
		want   []int64
	}{
		{"defaults match all", func(*repository.UserFilters) {}, []int64{1, 2, 3, 4}},
		{"first name substring", func(f *repository.UserFilters) { f.Search.FirstName = "ANA" }, []int64{1, 3}},
		{"last name with accent", func(f *repository.UserFilters) { f.Search.LastName = "mart" }, []int64{2}},
		{"email", func(f *repository.UserFilters) { f.Search.Email = "mail.test" }, []int64{3, 4}},
		{"phone", func(f *repository.UserFilters) { f.Search.Phone = "555" }, []int64{3}},
		{"status", func(f *repository.UserFilters) { f.Status = repository.UserStatusActive }, []int64{1, 3}},
		{"worker type", func(f *repository.UserFilters) { f.WorkerType = repository.WorkerTypeEmployer }, []int64{2, 3}},
		{"last 30 days", func(f *repository.UserFilters) { f.Created = repository.DateWindowLast30Days }, []int64{1, 2}},
		{"last 60 days", func(f *repository.UserFilters) { f.Created = repository.DateWindowLast60Days }, []int64{1, 2, 3}},
		{"combined", func(f *repository.UserFilters) {
			f.Search.FirstName = "a"
			f.Status = repository.UserStatusActive
			f.WorkerType = repository.WorkerTypeEmployer
		}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewUserList(sampleUsers(), listing.Options{Latency: -1}, fixedNow)
			list.Update(tt.mutate)
			assert.Equal(t, tt.want, userIDs(list.Filtered()))
			assert.Equal(t, "users", list.Name())
		})
	}
}

func TestBillingListFilters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*repository.BillingFilters)
		want   []int64
	}{
		{"defaults match all", func(*repository.BillingFilters) {}, []int64{1, 2, 3}},
		{"user name", func(f *repository.BillingFilters) { f.Search.UserName = "ana" }, []int64{1, 3}},
		{"status", func(f *repository.BillingFilters) { f.Status = repository.BillingStatusPaid }, []int64{2}},
		{"month", func(f *repository.BillingFilters) { f.Month = 9 }, []int64{2, 3}},
		{"month and name", func(f *repository.BillingFilters) {
			f.Month = 9
			f.Search.UserName = "ruiz"
		}, []int64{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewBillingList(sampleBillings(), listing.Options{Latency: -1})
			list.Update(tt.mutate)
			assert.Equal(t, tt.want, billingIDs(list.Filtered()))
		})
	}
}

func TestParseSelectors(t *testing.T) {
	s, err := ParseUserStatus(" Paused ")
	require.NoError(t, err)
	assert.Equal(t, repository.UserStatusPaused, s)

	s, err = ParseUserStatus("")
	require.NoError(t, err)
	assert.Equal(t, repository.UserStatus(repository.All), s)

	_, err = ParseUserStatus("retired")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	w, err := ParseWorkerType("employer")
	require.NoError(t, err)
	assert.Equal(t, repository.WorkerTypeEmployer, w)
	_, err = ParseWorkerType("contractor")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	d, err := ParseDateWindow("last7days")
	require.NoError(t, err)
	assert.Equal(t, 7, d.Days())
	_, err = ParseDateWindow("last9days")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	b, err := ParseBillingStatus("OVERDUE")
	require.NoError(t, err)
	assert.Equal(t, repository.BillingStatusOverdue, b)
	_, err = ParseBillingStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestParseMonth(t *testing.T) {
	for raw, want := range map[string]int{"": 0, "all": 0, "1": 1, "12": 12} {
		got, err := ParseMonth(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"0", "13", "march"} {
		_, err := ParseMonth(raw)
		assert.ErrorIs(t, err, ErrInvalidFilter, raw)
	}
}

func TestDirectory(t *testing.T) {
	store := memory.NewStore(sampleUsers(), sampleBillings())
	dir := Directory{Users: store.Users(), Billings: store.Billings()}
	ctx := context.Background()

	u, err := dir.User(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Luis", u.FirstName)

	_, err = dir.User(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	b, err := dir.Billing(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 999.0, b.Amount)

	_, err = dir.Billing(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActionsLog(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	BillingActions{Logger: l}.Save(sampleBillings()[1])
	BillingActions{Logger: l}.ConfirmDelete(3)
	UserActions{Logger: l}.ConfirmDelete(1)

	out := buf.String()
	assert.Contains(t, out, `msg="saving billing" id=2`)
	assert.Contains(t, out, `msg="deleting billing" id=3`)
	assert.Contains(t, out, `msg="deleting user" id=1`)
}
