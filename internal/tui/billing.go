package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/creamcroissant/adminboard/internal/modal"
	"github.com/creamcroissant/adminboard/internal/render"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/service"
)

type billingPane = listPane[repository.Billing, repository.BillingFilters, repository.BillingSearch]

func newBillingScreen(
	ctrl *service.BillingList,
	source func() []repository.Billing,
	modals *modal.Set[repository.Billing],
	delay time.Duration,
	notify func(),
	keys keyMap,
) *billingPane {
	type (
		B = repository.Billing
		F = repository.BillingFilters
		S = repository.BillingSearch
	)
	return newListPane(paneConfig[B, F, S]{
		route:    RouteBilling,
		ctrl:     ctrl,
		source:   source,
		defaults: repository.DefaultBillingFilters,
		applySearch: func(f *F, s S) {
			f.Search = s
		},
		fields: []searchField[S]{
			{label: "User", input: newInput("user name"), set: func(s *S, v string) { s.UserName = v }},
		},
		selectors: []selector[F]{
			{
				label:   "status",
				binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
				options: withAll(repository.BillingStatuses),
				apply:   func(f *F, v string) { f.Status = repository.BillingStatus(v) },
			},
			{
				label:   "month",
				binding: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "due month")),
				options: monthOptions(),
				display: monthLabel,
				apply: func(f *F, v string) {
					f.Month, _ = service.ParseMonth(v)
				},
			},
		},
		columns: []column[B, S]{
			{title: "ID", width: 6, value: func(b B) string { return strconv.FormatInt(b.ID, 10) }},
			{title: "User", width: 24, value: func(b B) string { return b.UserName }, term: func(s S) string { return s.UserName }},
			{title: "Amount", width: 12, value: func(b B) string { return render.Amount(b.Amount) }},
			{title: "Status", width: 11, value: func(b B) string { return string(b.Status) }, status: true},
			{title: "Due", width: 12, value: func(b B) string { return b.DueDate.Format(time.DateOnly) }},
			{title: "Paid", width: 12, value: paidOn},
		},
		modals: modals,
		id:     func(b B) int64 { return b.ID },
		cycle: func(b B) B {
			b.Status = nextOf(repository.BillingStatuses, b.Status)
			return b
		},
		details: func(b B) []field {
			return []field{
				{"ID", strconv.FormatInt(b.ID, 10)},
				{"User", b.UserName + " (#" + strconv.FormatInt(b.UserID, 10) + ")"},
				{"Amount", render.Amount(b.Amount)},
				{"Status", string(b.Status)},
				{"Due", b.DueDate.Format(time.DateTime)},
				{"Paid", paidOn(b)},
			}
		},
		debounce: delay,
		notify:   notify,
		keys:     keys,
	})
}

func paidOn(b repository.Billing) string {
	if b.PaidAt == nil {
		return "-"
	}
	return b.PaidAt.Format(time.DateOnly)
}

func monthOptions() []string {
	out := []string{repository.All}
	for m := 1; m <= 12; m++ {
		out = append(out, strconv.Itoa(m))
	}
	return out
}

func monthLabel(v string) string {
	m, err := strconv.Atoi(v)
	if err != nil || m < 1 || m > 12 {
		return v
	}
	return time.Month(m).String()
}
