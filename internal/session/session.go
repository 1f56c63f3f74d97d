package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"reelsync/internal/catalog"
	"reelsync/internal/logging"
	"reelsync/internal/metadata"
	"reelsync/internal/notifications"
	"reelsync/internal/prompt"
	"reelsync/internal/resolve"
)

// maxConcurrentWrites caps how many catalog updates run at once.
const maxConcurrentWrites = 4

// Lister is the subset of the catalog client the session needs to start.
type Lister interface {
	QueryEntries(ctx context.Context) ([]catalog.Entry, error)
}

// Resolver narrows one catalog entry to a TMDB identifier or a skip.
type Resolver interface {
	Resolve(ctx context.Context, entry catalog.Entry) (resolve.Outcome, error)
}

// Fetcher produces the canonical metadata for a resolved identifier.
type Fetcher interface {
	Fetch(ctx context.Context, entry catalog.Entry, tmdbID int64, correctedTitle string) (metadata.Canonical, error)
}

// Applier writes one canonical record back to the catalog.
type Applier interface {
	Apply(ctx context.Context, meta metadata.Canonical) error
}

// Failure records one entry whose catalog update was rejected.
type Failure struct {
	Title string
	Err   error
}

// Result summarizes a finished session. Aborted means a confirmation gate was
// declined; nothing was written in that case beyond what earlier sessions did.
type Result struct {
	Total    int
	Skipped  int
	Updated  int
	Failed   int
	Aborted  bool
	Failures []Failure
	Duration time.Duration
}

// Session drives one interactive reconciliation run: query, confirm, resolve
// serially, confirm again, then write back concurrently.
type Session struct {
	catalog  Lister
	resolver Resolver
	fetcher  Fetcher
	writer   Applier
	prompter prompt.Prompter
	notifier notifications.Service
	out      io.Writer
	logger   *slog.Logger
	now      func() time.Time
}

// New assembles a session from its collaborators.
func New(cat Lister, resolver Resolver, fetcher Fetcher, writer Applier, prompter prompt.Prompter, notifier notifications.Service, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{
		catalog:  cat,
		resolver: resolver,
		fetcher:  fetcher,
		writer:   writer,
		prompter: prompter,
		notifier: notifier,
		out:      out,
		logger:   logger.With(logging.String("session_id", uuid.NewString())),
		now:      time.Now,
	}
}

// Run executes the full session. Resolution and fetch failures abort the run
// before any write; rejected writes are collected per entry and reported in
// the result together with an aggregate error.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	started := s.now()

	entries, err := s.catalog.QueryEntries(ctx)
	if err != nil {
		s.notifyError(ctx, err)
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	result := &Result{Total: len(entries)}
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No entries to process.")
		return result, nil
	}

	fmt.Fprintln(s.out, entryTable(entries))
	proceed, err := s.prompter.Confirm(ctx, fmt.Sprintf("Process %d entries?", len(entries)))
	if err != nil {
		return nil, err
	}
	if !proceed {
		result.Aborted = true
		fmt.Fprintln(s.out, "Session aborted.")
		return result, nil
	}

	resolved, err := s.resolveAll(ctx, entries, result)
	if err != nil {
		s.notifyError(ctx, err)
		return nil, err
	}
	if len(resolved) == 0 {
		fmt.Fprintln(s.out, "All entries skipped; nothing to update.")
		result.Duration = s.now().Sub(started)
		return result, nil
	}

	fmt.Fprintln(s.out, resolvedTable(resolved))
	proceed, err = s.prompter.Confirm(ctx, fmt.Sprintf("Update %d entries?", len(resolved)))
	if err != nil {
		return nil, err
	}
	if !proceed {
		result.Aborted = true
		fmt.Fprintln(s.out, "Session aborted; nothing written.")
		return result, nil
	}

	s.writeAll(ctx, resolved, result)
	result.Duration = s.now().Sub(started)

	if err := s.notifier.NotifySessionCompleted(ctx, result.Updated, result.Skipped, result.Failed, result.Duration); err != nil {
		s.logger.Warn("completion notification failed", logging.Error(err))
	}

	if result.Failed > 0 {
		for _, failure := range result.Failures {
			fmt.Fprintf(s.out, "failed: %s: %v\n", failure.Title, failure.Err)
		}
		return result, fmt.Errorf("%d of %d updates failed", result.Failed, len(resolved))
	}
	fmt.Fprintf(s.out, "Updated %d entries (%d skipped) in %s.\n",
		result.Updated, result.Skipped, result.Duration.Round(time.Second))
	return result, nil
}

// resolveAll walks the entries strictly in order. Resolution is serial
// because every step may need the same terminal.
func (s *Session) resolveAll(ctx context.Context, entries []catalog.Entry, result *Result) ([]metadata.Canonical, error) {
	resolved := make([]metadata.Canonical, 0, len(entries))
	for _, entry := range entries {
		outcome, err := s.resolver.Resolve(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", entry.Title, err)
		}
		if outcome.Skipped {
			result.Skipped++
			s.logger.Info("entry skipped", logging.String("title", entry.Title))
			continue
		}
		meta, err := s.fetcher.Fetch(ctx, entry, outcome.TMDBID, outcome.CorrectedTitle)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, meta)
	}
	return resolved, nil
}

// writeAll applies updates concurrently, one goroutine per entry behind a
// small semaphore. Each failure is recorded against its entry; one rejection
// never stops the others.
func (s *Session) writeAll(ctx context.Context, resolved []metadata.Canonical, result *Result) {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, maxConcurrentWrites)
	)
	for _, meta := range resolved {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(meta metadata.Canonical) {
			defer wg.Done()
			defer func() { <-semaphore }()

			err := s.writer.Apply(ctx, meta)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Failures = append(result.Failures, Failure{Title: meta.Title, Err: err})
				s.logger.Error("update failed",
					logging.String("title", meta.Title),
					logging.Error(err))
				return
			}
			result.Updated++
		}(meta)
	}
	wg.Wait()
}

func (s *Session) notifyError(ctx context.Context, err error) {
	if notifyErr := s.notifier.NotifySessionError(ctx, err, "sync"); notifyErr != nil {
		s.logger.Warn("error notification failed", logging.Error(notifyErr))
	}
}
