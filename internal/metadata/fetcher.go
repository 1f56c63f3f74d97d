package metadata

import (
	"context"
	"fmt"
	"log/slog"

	"reelsync/internal/catalog"
	"reelsync/internal/logging"
	"reelsync/internal/tmdb"
)

// Detailer is the subset of the TMDB client the fetcher needs.
type Detailer interface {
	Details(ctx context.Context, media catalog.MediaType, id int64) (*tmdb.Details, error)
}

// Fetcher retrieves the full detail record for a resolved identifier and
// normalizes it into the canonical shape.
type Fetcher struct {
	client Detailer
	logger *slog.Logger
}

// NewFetcher creates a fetcher over a TMDB client.
func NewFetcher(client Detailer, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logging.NewComponentLogger(logger, "fetcher"),
	}
}

// Fetch pulls the detail record (videos and credits attached in the same
// request) and returns the canonical metadata for the entry.
func (f *Fetcher) Fetch(ctx context.Context, entry catalog.Entry, tmdbID int64, correctedTitle string) (Canonical, error) {
	details, err := f.client.Details(ctx, entry.MediaType, tmdbID)
	if err != nil {
		return Canonical{}, fmt.Errorf("fetch %s: %w", entry.Title, err)
	}
	canonical := Normalize(details, entry, correctedTitle)
	f.logger.Info("metadata fetched",
		logging.String("title", canonical.Title),
		logging.Int64("tmdb_id", canonical.TMDBID),
		logging.Int("year", canonical.Year))
	return canonical, nil
}
