package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/creamcroissant/adminboard/internal/listing"
	"github.com/creamcroissant/adminboard/internal/render"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/repository/memory"
	"github.com/creamcroissant/adminboard/internal/service"
)

type userListFlags struct {
	firstName string
	lastName  string
	email     string
	phone     string
	status    string
	worker    string
	created   string
	pages     int
	output    string
}

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Query the users dataset",
	}

	var lf userListFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersList(cmd, lf)
		},
	}
	listCmd.Flags().StringVar(&lf.firstName, "first-name", "", "Case-insensitive first name substring")
	listCmd.Flags().StringVar(&lf.lastName, "last-name", "", "Case-insensitive last name substring")
	listCmd.Flags().StringVar(&lf.email, "email", "", "Case-insensitive email substring")
	listCmd.Flags().StringVar(&lf.phone, "phone", "", "Phone substring")
	listCmd.Flags().StringVar(&lf.status, "status", repository.All, "Status: all, active, inactive, paused, vacation")
	listCmd.Flags().StringVar(&lf.worker, "worker-type", repository.All, "Worker type: all, employee, employer")
	listCmd.Flags().StringVar(&lf.created, "created-within", repository.All, "Created window: all, last7days, last30days, last60days")
	listCmd.Flags().IntVar(&lf.pages, "pages", 1, "Number of pages to load")
	listCmd.Flags().StringVarP(&lf.output, "output", "o", render.FormatAuto, "Output format: auto, table, json, yaml, html")

	var showOutput string
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store := memory.NewStore(a.users(), nil)
			dir := service.Directory{Users: store.Users(), Billings: store.Billings()}
			u, err := dir.User(cmd.Context(), id)
			if err != nil {
				return err
			}
			page := listing.Page[repository.User]{Rows: []repository.User{*u}, Total: 1, Visible: 1}
			return render.Page(cmd.OutOrStdout(), showOutput, "users", page, userColumns(repository.UserSearch{}))
		},
	}
	showCmd.Flags().StringVarP(&showOutput, "output", "o", render.FormatAuto, "Output format: auto, table, json, yaml, html")

	usersCmd.AddCommand(listCmd, showCmd)
	rootCmd.AddCommand(usersCmd)
}

func (lf userListFlags) filters() (repository.UserFilters, error) {
	f := repository.DefaultUserFilters()
	f.Search = repository.UserSearch{
		FirstName: lf.firstName,
		LastName:  lf.lastName,
		Email:     lf.email,
		Phone:     lf.phone,
	}
	var err error
	if f.Status, err = service.ParseUserStatus(lf.status); err != nil {
		return f, err
	}
	if f.WorkerType, err = service.ParseWorkerType(lf.worker); err != nil {
		return f, err
	}
	if f.Created, err = service.ParseDateWindow(lf.created); err != nil {
		return f, err
	}
	return f, nil
}

func runUsersList(cmd *cobra.Command, lf userListFlags) error {
	filters, err := lf.filters()
	if err != nil {
		return err
	}
	a, err := newApp(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store := memory.NewStore(a.users(), nil)
	records, err := store.Users().All(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	list := service.NewUserList(records, a.listingOptions("users"), time.Now)
	list.Update(func(f *repository.UserFilters) { *f = filters })
	loadPages(list, lf.pages)
	a.logger.Debug("users listed", slog.Int("pages", lf.pages), since(start))

	return render.Page(cmd.OutOrStdout(), lf.output, "users", list.Page(), userColumns(filters.Search))
}

// loadPages 在首屏之外继续加载 pages-1 页
func loadPages[R, F any](list *listing.Controller[R, F], pages int) {
	for i := 1; i < pages; i++ {
		if !list.LoadMore() {
			return
		}
	}
}

func userColumns(search repository.UserSearch) []render.Column[repository.User] {
	type U = repository.User
	return []render.Column[U]{
		{Header: "ID", Value: func(u U) string { return strconv.FormatInt(u.ID, 10) }},
		{Header: "FIRST NAME", Value: func(u U) string { return u.FirstName }, Term: search.FirstName},
		{Header: "LAST NAME", Value: func(u U) string { return u.LastName }, Term: search.LastName},
		{Header: "EMAIL", Value: func(u U) string { return u.Email }, Term: search.Email},
		{Header: "PHONE", Value: func(u U) string { return u.Phone }, Term: search.Phone},
		{Header: "STATUS", Value: func(u U) string { return string(u.Status) }},
		{Header: "TYPE", Value: func(u U) string { return string(u.WorkerType) }},
		{Header: "CREATED", Value: func(u U) string { return u.CreatedAt.Format(time.DateOnly) }},
	}
}
