package main

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pasteprime/config"
	"pasteprime/platform"
)

//go:embed assets/icon.ico
var iconData []byte

const instanceName = `Local\PastePrime`

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	configPath, _ := config.ConfigPath()
	configDir, _ := config.Dir()

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		slog.Error("Failed to setup logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	slog.Info("Configuration loaded", "path", configPath)

	// Two hooks would type the clipboard twice
	lock, err := platform.TryLock(instanceName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Warn("Paste Prime is already running")
			os.Exit(0)
		}
		slog.Error("Failed to acquire instance lock", "error", err)
		os.Exit(1)
	}
	defer lock.Release()

	app, err := NewApp(cfg, configDir, iconData)
	if err != nil {
		slog.Error("Failed to create app", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		slog.Error("App error", "error", err)
		os.Exit(1)
	}

	slog.Info("Paste Prime stopped")
}

// setupLogging replaces the default logger according to the log config
func setupLogging(cfg config.LogConfig) (func(), error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})))
	return closeFn, nil
}
