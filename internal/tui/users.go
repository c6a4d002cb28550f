package tui

import (
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/creamcroissant/adminboard/internal/modal"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/service"
)

type usersPane = listPane[repository.User, repository.UserFilters, repository.UserSearch]

func newUsersScreen(
	ctrl *service.UserList,
	source func() []repository.User,
	modals *modal.Set[repository.User],
	delay time.Duration,
	notify func(),
	keys keyMap,
) *usersPane {
	type (
		U = repository.User
		F = repository.UserFilters
		S = repository.UserSearch
	)
	return newListPane(paneConfig[U, F, S]{
		route:    RouteUsers,
		ctrl:     ctrl,
		source:   source,
		defaults: repository.DefaultUserFilters,
		applySearch: func(f *F, s S) {
			f.Search = s
		},
		fields: []searchField[S]{
			{label: "First", input: newInput("first name"), set: func(s *S, v string) { s.FirstName = v }},
			{label: "Last", input: newInput("last name"), set: func(s *S, v string) { s.LastName = v }},
			{label: "Email", input: newInput("email"), set: func(s *S, v string) { s.Email = v }},
			{label: "Phone", input: newInput("phone"), set: func(s *S, v string) { s.Phone = v }},
		},
		selectors: []selector[F]{
			{
				label:   "status",
				binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
				options: withAll(repository.UserStatuses),
				apply:   func(f *F, v string) { f.Status = repository.UserStatus(v) },
			},
			{
				label:   "type",
				binding: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "worker type")),
				options: withAll(repository.WorkerTypes),
				apply:   func(f *F, v string) { f.WorkerType = repository.WorkerType(v) },
			},
			{
				label:   "created",
				binding: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "created within")),
				options: withAll(repository.DateWindows),
				apply:   func(f *F, v string) { f.Created = repository.DateWindow(v) },
			},
		},
		columns: []column[U, S]{
			{title: "ID", width: 6, value: func(u U) string { return strconv.FormatInt(u.ID, 10) }},
			{title: "First name", width: 12, value: func(u U) string { return u.FirstName }, term: func(s S) string { return s.FirstName }},
			{title: "Last name", width: 14, value: func(u U) string { return u.LastName }, term: func(s S) string { return s.LastName }},
			{title: "Email", width: 32, value: func(u U) string { return u.Email }, term: func(s S) string { return s.Email }},
			{title: "Phone", width: 16, value: func(u U) string { return u.Phone }, term: func(s S) string { return s.Phone }},
			{title: "Status", width: 10, value: func(u U) string { return string(u.Status) }, status: true},
			{title: "Type", width: 10, value: func(u U) string { return string(u.WorkerType) }},
			{title: "Created", width: 12, value: func(u U) string { return u.CreatedAt.Format(time.DateOnly) }},
		},
		modals: modals,
		id:     func(u U) int64 { return u.ID },
		cycle: func(u U) U {
			u.Status = nextOf(repository.UserStatuses, u.Status)
			return u
		},
		details: func(u U) []field {
			return []field{
				{"ID", strconv.FormatInt(u.ID, 10)},
				{"Name", u.FullName()},
				{"Email", u.Email},
				{"Phone", u.Phone},
				{"Status", string(u.Status)},
				{"Worker type", string(u.WorkerType)},
				{"Created", u.CreatedAt.Format(time.DateTime)},
				{"Avatar", u.Avatar},
			}
		},
		debounce: delay,
		notify:   notify,
		keys:     keys,
	})
}

func withAll[T ~string](values []T) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, repository.All)
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func nextOf[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}
