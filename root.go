package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/infra/clipboard"
	"github.com/KumailHaider61/echochamber/infra/config"
	"github.com/KumailHaider61/echochamber/infra/logging"
	"github.com/KumailHaider61/echochamber/infra/player"
	"github.com/KumailHaider61/echochamber/infra/recommend"
	"github.com/KumailHaider61/echochamber/infra/session"
	"github.com/KumailHaider61/echochamber/infra/store"
	"github.com/KumailHaider61/echochamber/tui"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var videoFlag string

	rootCmd := &cobra.Command{
		Use:           "echochamber",
		Short:         "A short-video feed for your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), configFlag, videoFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&videoFlag, "video", "", "Open the feed at a specific video id")

	rootCmd.AddCommand(newVideosCommand(&configFlag))
	rootCmd.AddCommand(newSeedCommand(&configFlag))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// runApp wires the stores, session and player and runs the TUI.
func runApp(ctx context.Context, configPath, videoID string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("echochamber needs an interactive terminal; try the videos subcommand instead")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closeLog()

	// One instance per data dir; two would fight over the session file.
	release, err := session.AcquireLock(cfg.LockPath())
	if err != nil {
		return err
	}
	defer release()

	catalog, users, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sessions := session.New(users, cfg.SessionPath())
	logger.Info("starting", "store", cfg.Store, "video", videoID)

	root := tui.NewApp(tui.Deps{
		Source:       catalog,
		Session:      sessions,
		Player:       player.New(cfg.AllowAutoplay),
		Clipboard:    clipboard.New(),
		Recommender:  recommend.New(catalog, cfg.NetworkDelay(), logger),
		Logger:       logger,
		BaseURL:      cfg.BaseURL,
		DeepLinkID:   videoID,
		InitialPage:  cfg.InitialPageSize,
		PageSize:     cfg.PageSize,
		NetworkDelay: cfg.NetworkDelay(),
	})

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("echochamber: %w", err)
	}
	return nil
}

// openStore builds the configured catalog and user store. Both come from
// the same backing store so session state and videos stay consistent.
func openStore(ctx context.Context, cfg config.Config) (app.VideoSource, app.UserStore, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		db, err := store.OpenSQLite(ctx, cfg.StorePath())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open store: %w", err)
		}
		return db, db, func() { db.Close() }, nil
	default:
		mem := store.NewMemory()
		return mem, mem, func() {}, nil
	}
}
