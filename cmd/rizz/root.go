package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/hirotachi/rizz-cli-chat/pkg/client"
	"github.com/hirotachi/rizz-cli-chat/pkg/config"
	"github.com/hirotachi/rizz-cli-chat/pkg/logger"
	"github.com/hirotachi/rizz-cli-chat/pkg/storage"
	"github.com/spf13/cobra"
)

var debugMode bool

var rootCmd = &cobra.Command{
	Use:   "rizz",
	Short: "Local chat with servers, channels and messages",
	Long: `Rizz is a single-user chat demo. Servers, channels and messages are kept
in a local store (badger by default, or redis) and nothing leaves the machine.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

// runtime holds what every command needs: configuration, logger and store.
type runtime struct {
	cfg     config.Config
	log     *slog.Logger
	store   *storage.Store
	closers []io.Closer
}

func setup(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if debugMode {
		cfg.LogLevel = "debug"
	}
	log, logFile, err := logger.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	log.Debug("started", "store", cfg.Store, "key", cfg.StorageKey)
	return &runtime{cfg: cfg, log: log, store: store, closers: []io.Closer{store, logFile}}, nil
}

func (r *runtime) session(ctx context.Context) *client.Session {
	state := chat.NewState(r.store.Load(ctx))
	return client.NewSession(state, r.store, chat.NewAuthor(r.cfg.Author), r.log)
}

func (r *runtime) Close() {
	for _, closer := range r.closers {
		if err := closer.Close(); err != nil {
			r.log.Warn("close failed", "error", err)
		}
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer rt.Close()

	app := client.NewApp(ctx, rt.session(ctx))
	if err := app.Run(); err != nil {
		return fmt.Errorf("chat stopped: %w", err)
	}
	return nil
}
