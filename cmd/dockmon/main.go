package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"dockmon/internal/app"
	"dockmon/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "dockmon",
		Usage: "Docker & server performance monitor",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				Value:   "config.json",
			},
			&cli.BoolFlag{
				Name:    "status",
				Aliases: []string{"s"},
				Usage:   "Show current system status",
			},
			&cli.BoolFlag{
				Name:    "test-email",
				Aliases: []string{"t"},
				Usage:   "Test email configuration",
			},
			&cli.BoolFlag{
				Name:    "continuous",
				Aliases: []string{"r"},
				Usage:   "Run continuous monitoring",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	logger := newLogger(cfg.Logging)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", path, "err", err)
	} else {
		logger.Info("configuration loaded", "path", path)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	switch {
	case cmd.Bool("test-email"):
		if a.SendTestEmail() {
			fmt.Println("✅ Test email sent successfully!")
		} else {
			fmt.Println("❌ Failed to send test email. Check your configuration.")
		}
	case cmd.Bool("status"):
		return a.PrintStatus(ctx, os.Stdout)
	case cmd.Bool("continuous"):
		if err := a.RunContinuous(ctx, os.Stdout); !errors.Is(err, context.Canceled) {
			return err
		}
	default:
		fmt.Println(app.Verdict(a.RunCheck(ctx)))
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.BackupCount,
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
