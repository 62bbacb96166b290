package actions

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsbteam/chat/internal/dispatchers"
	"github.com/fsbteam/chat/internal/log"
	"github.com/fsbteam/chat/internal/server"
)

// Serve runs the chat server until interrupted.
func Serve(args []string, flags *dispatchers.ParsedFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, args, flags, defaultDeps())
}

func serve(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	values, err := deps.GetAll()
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	cfg := server.ConfigFrom(values)
	cfg.ListenAddr = flags.String("--addr", cfg.ListenAddr)

	dbPath := flags.String("--db", values["db_path"])
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	chatStore, err := deps.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = chatStore.Close() }()

	// The server always reports to stderr, and to the log file when enabled.
	logger := deps.Logger()
	if logger == nil {
		logger = log.NewConsole(os.Stderr, log.ParseLevel(values["log_level"]))
	} else {
		logger = logger.WithConsole(os.Stderr)
	}

	_, _ = deps.Printf("fsb server on %s, database %s\n", cfg.ListenAddr, dbPath)
	return server.New(chatStore, cfg, logger).ListenAndServe(ctx)
}
