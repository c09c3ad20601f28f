package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"funding-monitor/internal/api"
	"funding-monitor/internal/config"
	"funding-monitor/internal/dashboard"
	"funding-monitor/internal/logger"
	"funding-monitor/internal/ui"
	"funding-monitor/internal/ui/screen"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// The terminal is still ours during startup, so the readiness wait
	// logs to the console. The API client only logs in WaitReady, which
	// keeps the console logger out of the picture once the TUI starts.
	bootLogger, err := logger.CreateConsoleLogger(cfg.DebugLogging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout(), bootLogger)

	bootLogger.Info("waiting for bot API",
		zap.String("base_url", cfg.APIBaseURL),
		zap.Duration("timeout", cfg.StartupTimeout()))

	waitCtx, cancel := context.WithTimeout(rootCtx, cfg.StartupTimeout())
	err = client.WaitReady(waitCtx)
	cancel()
	if err != nil {
		log.Fatalf("Bot API is not reachable at %s: %v", cfg.APIBaseURL, err)
	}
	_ = bootLogger.Sync()

	// From here stdout belongs to the renderer: logs go into the ring
	// buffer shown in the log pane (and optionally a file), and each
	// line nudges the UI to repaint the tail.
	buffer := logger.NewLogBuffer(500)
	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, buffer, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()
	buffer.SetNotify(func(e logger.Entry) {
		ui.PublishLog(e.Level, e.Message)
	})

	dash := dashboard.New(client, dashboard.Options{
		RefreshInterval: cfg.RefreshInterval(),
		HistoryDays:     cfg.HistoryDays,
		Notify:          ui.PublishRefreshDone,
	}, appLogger)

	program := tea.NewProgram(
		screen.NewDashboardScreen(dash, buffer),
		tea.WithAltScreen(),
	)

	dash.Control.Start(rootCtx)
	defer dash.Control.Stop()

	go func() {
		<-rootCtx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.Fatalf("Dashboard failed: %v", err)
	}
}
