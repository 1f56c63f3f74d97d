package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"reelsync/internal/catalog"
	"reelsync/internal/logging"
	"reelsync/internal/metadata"
	"reelsync/internal/notifications"
	"reelsync/internal/notion"
	"reelsync/internal/prompt"
	"reelsync/internal/reconcile"
	"reelsync/internal/resolve"
	"reelsync/internal/resolvecache"
	"reelsync/internal/session"
	"reelsync/internal/tmdb"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	var mediaTypeFlag string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run an interactive reconciliation session",
		Long: `Sync queries the catalog for entries of the configured media type,
resolves each title against TMDB with interactive disambiguation, and writes
the fetched metadata back after a final confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if !prompt.StdinIsTerminal() {
				return errors.New("sync is interactive and requires a terminal on stdin")
			}

			mediaTypeValue := cfg.Sync.MediaType
			if mediaTypeFlag != "" {
				mediaTypeValue = mediaTypeFlag
			}
			mediaType, err := catalog.ParseMediaType(mediaTypeValue)
			if err != nil {
				return err
			}

			// One interactive session at a time; a second invocation would
			// fight over the same terminal and the same catalog rows.
			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire session lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another sync session is already running (lock %s)", cfg.LockPath())
			}
			defer func() { _ = lock.Unlock() }()

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
			})
			if err != nil {
				return err
			}

			notionClient, err := notion.New(cfg.Notion.APIKey, cfg.Notion.BaseURL, cfg.Notion.DatabaseID, mediaType, cfg.Notion.PageSize)
			if err != nil {
				return err
			}
			tmdbClient, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
			if err != nil {
				return err
			}

			var cache resolve.Cache
			if cfg.ResolveCache.Enabled {
				store, err := resolvecache.Open(cfg.ResolveCache.Path)
				if err != nil {
					return fmt.Errorf("open resolution cache: %w", err)
				}
				defer func() { _ = store.Close() }()
				cache = store
			}

			out := cmd.OutOrStdout()
			prompter := prompt.NewTerminal(os.Stdin, out, cfg.Sync.PromptPageSize)
			resolver := resolve.New(tmdbClient, prompter, cache, logger)
			fetcher := metadata.NewFetcher(tmdbClient, logger)
			writer := reconcile.NewWriter(notionClient, cfg.TMDB.ImageBaseURL, cfg.Sync.ExcludeColumns, logger)
			notifier := notifications.NewService(cfg)

			sess := session.New(notionClient, resolver, fetcher, writer, prompter, notifier, out, logger)
			_, err = sess.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVarP(&mediaTypeFlag, "type", "t", "", "Media type to process (Movie or Series); overrides the config")
	return cmd
}
