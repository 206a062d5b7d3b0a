package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KumailHaider61/echochamber/app"
	"github.com/KumailHaider61/echochamber/infra/config"
	"github.com/KumailHaider61/echochamber/infra/store"
	"github.com/KumailHaider61/echochamber/tui/common"
)

// newVideosCommand lists the catalog without entering the TUI. Useful in
// pipes and scripts, where the root command refuses to run.
func newVideosCommand(configFlag *string) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "videos",
		Short: "List the video catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, cleanup, err := openConfiguredStore(cmd.Context(), *configFlag)
			if err != nil {
				return err
			}
			defer cleanup()

			videos, err := catalog.GetPage(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(videos))
			for _, v := range videos {
				rows = append(rows, []string{
					v.ID,
					v.Author.Name,
					common.Truncate(v.Caption, 40),
					common.FormatCount(v.LikeCount),
					common.FormatCount(v.CommentCount),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "CREATOR", "CAPTION", "LIKES", "COMMENTS"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of videos to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of videos to skip")
	return cmd
}

// newSeedCommand resets a sqlite store back to the bundled catalog.
func newSeedCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the sqlite store to the bundled demo catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cfg.Store != config.StoreSQLite {
				return fmt.Errorf("seed only applies to the sqlite store; set store = %q", config.StoreSQLite)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			db, err := store.OpenSQLite(cmd.Context(), cfg.StorePath())
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer db.Close()

			if err := db.Reseed(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reseeded %s\n", cfg.StorePath())
			return nil
		},
	}
}

func openConfiguredStore(ctx context.Context, configPath string) (app.VideoSource, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, nil, err
	}
	catalog, _, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return catalog, cleanup, nil
}
