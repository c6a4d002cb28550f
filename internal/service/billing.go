// 文件路径: internal/service/billing.go
// 模块说明: 账单列表页面的筛选谓词与控制器构造。
package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/repository"
)

// BillingList is the filtered pagination controller of the billing screen.
type BillingList = listing.Controller[repository.Billing, repository.BillingFilters]

// BillingPredicates returns the billing screen filter chain.
func BillingPredicates() []listing.Predicate[repository.Billing, repository.BillingFilters] {
	type (
		B = repository.Billing
		F = repository.BillingFilters
	)
	return []listing.Predicate[B, F]{
		listing.Contains("user_name",
			func(f F) string { return f.Search.UserName },
			func(b B) string { return b.UserName }),
		listing.Equals("status",
			func(f F) repository.BillingStatus { return f.Status },
			func(b B) repository.BillingStatus { return b.Status },
			repository.All),
		listing.InMonth("due_month",
			func(f F) int { return f.Month },
			func(b B) time.Time { return b.DueDate }),
	}
}

// NewBillingList builds the billing controller over records with default filters.
func NewBillingList(records []repository.Billing, opts listing.Options) *BillingList {
	if opts.Name == "" {
		opts.Name = "billing"
	}
	return listing.New(records, repository.DefaultBillingFilters(), BillingPredicates(), opts)
}

// ParseBillingStatus validates a billing status selector value.
func ParseBillingStatus(raw string) (repository.BillingStatus, error) {
	v := repository.BillingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" || v == repository.All || slices.Contains(repository.BillingStatuses, v) {
		return orAll(v), nil
	}
	return "", fmt.Errorf("%w: billing status %q", ErrInvalidFilter, raw)
}

// ParseMonth accepts "all", "" or 1-12 and returns 0 for no filter.
func ParseMonth(raw string) (int, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == repository.All {
		return 0, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("%w: month %q", ErrInvalidFilter, raw)
	}
	return m, nil
}

// BillingActions handles confirmed edit/delete dialogs on the billing screen.
type BillingActions struct {
	Logger *slog.Logger
}

func (a BillingActions) Save(b repository.Billing) {
	logger(a.Logger).Info("saving billing",
		slog.Int64("id", b.ID),
		slog.Float64("amount", b.Amount),
		slog.String("status", string(b.Status)),
	)
}

func (a BillingActions) ConfirmDelete(id int64) {
	logger(a.Logger).Info("deleting billing", slog.Int64("id", id))
}
