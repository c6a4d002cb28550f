// 文件路径: internal/service/users.go
// 模块说明: 用户列表页面的筛选谓词与控制器构造。
package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/repository"
)

// UserList is the filtered pagination controller of the users screen.
type UserList = listing.Controller[repository.User, repository.UserFilters]

// UserPredicates returns the users screen filter chain. now anchors the
// created-at window.
func UserPredicates(now func() time.Time) []listing.Predicate[repository.User, repository.UserFilters] {
	type (
		U = repository.User
		F = repository.UserFilters
	)
	return []listing.Predicate[U, F]{
		listing.Contains("first_name",
			func(f F) string { return f.Search.FirstName },
			func(u U) string { return u.FirstName }),
		listing.Contains("last_name",
			func(f F) string { return f.Search.LastName },
			func(u U) string { return u.LastName }),
		listing.Contains("email",
			func(f F) string { return f.Search.Email },
			func(u U) string { return u.Email }),
		listing.Contains("phone",
			func(f F) string { return f.Search.Phone },
			func(u U) string { return u.Phone }),
		listing.Equals("status",
			func(f F) repository.UserStatus { return f.Status },
			func(u U) repository.UserStatus { return u.Status },
			repository.All),
		listing.Equals("worker_type",
			func(f F) repository.WorkerType { return f.WorkerType },
			func(u U) repository.WorkerType { return u.WorkerType },
			repository.All),
		listing.WithinDays("created",
			func(f F) int { return f.Created.Days() },
			func(u U) time.Time { return u.CreatedAt },
			now),
	}
}

// NewUserList builds the users controller over records with default filters.
func NewUserList(records []repository.User, opts listing.Options, now func() time.Time) *UserList {
	if opts.Name == "" {
		opts.Name = "users"
	}
	return listing.New(records, repository.DefaultUserFilters(), UserPredicates(now), opts)
}

// ParseUserStatus validates a status selector value.
func ParseUserStatus(raw string) (repository.UserStatus, error) {
	v := repository.UserStatus(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" || v == repository.All || slices.Contains(repository.UserStatuses, v) {
		return orAll(v), nil
	}
	return "", fmt.Errorf("%w: user status %q", ErrInvalidFilter, raw)
}

// ParseWorkerType validates a worker type selector value.
func ParseWorkerType(raw string) (repository.WorkerType, error) {
	v := repository.WorkerType(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" || v == repository.All || slices.Contains(repository.WorkerTypes, v) {
		return orAll(v), nil
	}
	return "", fmt.Errorf("%w: worker type %q", ErrInvalidFilter, raw)
}

// ParseDateWindow validates a created-at window selector value.
func ParseDateWindow(raw string) (repository.DateWindow, error) {
	v := repository.DateWindow(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" || v == repository.All || slices.Contains(repository.DateWindows, v) {
		return orAll(v), nil
	}
	return "", fmt.Errorf("%w: date window %q", ErrInvalidFilter, raw)
}

func orAll[T ~string](v T) T {
	if v == "" {
		return repository.All
	}
	return v
}

// UserActions handles confirmed edit/delete dialogs on the users screen.
// The dataset is read-only, so requests are only recorded.
type UserActions struct {
	Logger *slog.Logger
}

func (a UserActions) Save(u repository.User) {
	logger(a.Logger).Info("saving user",
		slog.Int64("id", u.ID),
		slog.String("email", u.Email),
		slog.String("status", string(u.Status)),
	)
}

func (a UserActions) ConfirmDelete(id int64) {
	logger(a.Logger).Info("deleting user", slog.Int64("id", id))
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
