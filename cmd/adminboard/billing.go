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

func init() {
	billingCmd := &cobra.Command{
		Use:   "billing",
		Short: "Query the billing dataset",
	}

	var (
		userName string
		status   string
		month    string
		pages    int
		output   string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List bills matching the given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := repository.DefaultBillingFilters()
			filters.Search.UserName = userName
			var err error
			if filters.Status, err = service.ParseBillingStatus(status); err != nil {
				return err
			}
			if filters.Month, err = service.ParseMonth(month); err != nil {
				return err
			}

			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store := memory.NewStore(nil, a.billings())
			records, err := store.Billings().All(cmd.Context())
			if err != nil {
				return err
			}

			start := time.Now()
			list := service.NewBillingList(records, a.listingOptions("billing"))
			list.Update(func(f *repository.BillingFilters) { *f = filters })
			loadPages(list, pages)
			a.logger.Debug("billing listed", slog.Int("pages", pages), since(start))

			return render.Page(cmd.OutOrStdout(), output, "billing", list.Page(), billingColumns(filters.Search))
		},
	}
	listCmd.Flags().StringVar(&userName, "user-name", "", "Case-insensitive user name substring")
	listCmd.Flags().StringVar(&status, "status", repository.All, "Status: all, pending, paid, overdue, cancelled")
	listCmd.Flags().StringVar(&month, "month", repository.All, "Due month: all or 1-12")
	listCmd.Flags().IntVar(&pages, "pages", 1, "Number of pages to load")
	listCmd.Flags().StringVarP(&output, "output", "o", render.FormatAuto, "Output format: auto, table, json, yaml, html")

	var showOutput string
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid billing id %q", args[0])
			}
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store := memory.NewStore(nil, a.billings())
			dir := service.Directory{Users: store.Users(), Billings: store.Billings()}
			b, err := dir.Billing(cmd.Context(), id)
			if err != nil {
				return err
			}
			page := listing.Page[repository.Billing]{Rows: []repository.Billing{*b}, Total: 1, Visible: 1}
			return render.Page(cmd.OutOrStdout(), showOutput, "billing", page, billingColumns(repository.BillingSearch{}))
		},
	}
	showCmd.Flags().StringVarP(&showOutput, "output", "o", render.FormatAuto, "Output format: auto, table, json, yaml, html")

	billingCmd.AddCommand(listCmd, showCmd)
	rootCmd.AddCommand(billingCmd)
}

func billingColumns(search repository.BillingSearch) []render.Column[repository.Billing] {
	type B = repository.Billing
	return []render.Column[B]{
		{Header: "ID", Value: func(b B) string { return strconv.FormatInt(b.ID, 10) }},
		{Header: "USER", Value: func(b B) string { return b.UserName }, Term: search.UserName},
		{Header: "AMOUNT", Value: func(b B) string { return render.Amount(b.Amount) }},
		{Header: "STATUS", Value: func(b B) string { return string(b.Status) }},
		{Header: "DUE", Value: func(b B) string { return b.DueDate.Format(time.DateOnly) }},
		{Header: "PAID", Value: func(b B) string {
			if b.PaidAt == nil {
				return "-"
			}
			return b.PaidAt.Format(time.DateOnly)
		}},
	}
}
