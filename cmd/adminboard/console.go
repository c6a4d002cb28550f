package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/creamcroissant/adminboard/internal/cache"
	"github.com/creamcroissant/adminboard/internal/metrics"
	"github.com/creamcroissant/adminboard/internal/modal"
	"github.com/creamcroissant/adminboard/internal/repository"
	"github.com/creamcroissant/adminboard/internal/service"
	"github.com/creamcroissant/adminboard/internal/support/logging"
	"github.com/creamcroissant/adminboard/internal/tui"
)

var (
	consoleTheme string
	consolePath  string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Launch the interactive admin console",
	Long:  "Launch a terminal UI with the users and billing screens.",
	RunE:  runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleTheme, "theme", "", "Color theme: auto, dark or light (overrides ui.theme)")
	consoleCmd.Flags().StringVar(&consolePath, "path", "/", "Initial screen path: /users or /billing")
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(nil)
	if err != nil {
		return err
	}

	// 终端界面占用屏幕，日志写入文件
	logFile, err := logging.OpenFile(a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	a.logger, a.sessionID = logging.WithSession(logging.New(logging.Options{
		Level:     a.cfg.Log.SlogLevel(),
		Format:    a.cfg.Log.Format,
		AddSource: a.cfg.Log.AddSource,
		Output:    logFile,
	}))

	themeName := a.cfg.UI.Theme
	if consoleTheme != "" {
		themeName = consoleTheme
	}
	theme, err := tui.ParseTheme(themeName)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	if a.cfg.Metrics.Enabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		a.observer = metrics.NewCollector(a.metricsConfig(), registry)
	}

	users := service.NewUserList(nil, a.listingOptions("users"), time.Now)
	billing := service.NewBillingList(nil, a.listingOptions("billing"))
	userActions := service.UserActions{Logger: a.logger}
	billingActions := service.BillingActions{Logger: a.logger}

	model := tui.NewModel(tui.Options{
		Users:         users,
		Billing:       billing,
		UserSource:    a.users,
		BillingSource: a.billings,
		UserHandlers: modal.Handlers[repository.User]{
			Save:          userActions.Save,
			ConfirmDelete: userActions.ConfirmDelete,
		},
		BillingHandlers: modal.Handlers[repository.Billing]{
			Save:          billingActions.Save,
			ConfirmDelete: billingActions.ConfirmDelete,
		},
		Store:             cache.NewStore(cache.Options{CleanupInterval: time.Minute}),
		ModalCleanupDelay: a.cfg.UI.ModalCleanupDelay,
		DebounceDelay:     a.cfg.Listing.DebounceDelay,
		Theme:             theme,
		StartPath:         consolePath,
		Logger:            a.logger,
	})
	defer model.Close()

	start := time.Now()
	a.logger.Info("console started", slog.String("version", Version), slog.String("theme", string(model.Theme())))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if a.cfg.Metrics.Enabled {
		srv := metrics.NewHTTPServer(a.cfg.Metrics.Addr, metrics.NewRouter(registry))
		g.Go(func() error {
			if err := metrics.Serve(gctx, srv, a.logger); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	})

	err = g.Wait()
	a.logger.Info("console stopped", since(start))
	return err
}
