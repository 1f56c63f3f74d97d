package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reelsync/internal/logging"
	"reelsync/internal/metadata"
	"reelsync/internal/notion"
)

// shortFilmThreshold is the runtime in minutes above which a movie counts as
// full-length.
const shortFilmThreshold = 30

// Destination column names. These, together with the property shapes and the
// composed-string formats below, are the wire contract with the catalog
// database and must not drift.
const (
	ColumnTitle         = "Title"
	ColumnOriginalTitle = "Original Title"
	ColumnSynopsis      = "Synopsis"
	ColumnYear          = "Year"
	ColumnCategory      = "Category"
	ColumnDirector      = "Director"
	ColumnPoster        = "Poster"
	ColumnLastSync      = "Last Metadata Sync"
	ColumnTrailer       = "Trailer"
	ColumnLanguage      = "Language"
	ColumnType          = "Type"
	ColumnTMDBLink      = "TMDB Link"
)

// Updater is the subset of the catalog client the writer needs.
type Updater interface {
	UpdatePage(ctx context.Context, pageID string, properties map[string]notion.Property) error
}

// Writer maps canonical metadata onto destination columns and applies the
// update.
type Writer struct {
	catalog      Updater
	imageBaseURL string
	exclude      []string
	logger       *slog.Logger
	now          func() time.Time
}

// NewWriter creates a writer. exclude lists destination columns that must
// never be written, regardless of computed values.
func NewWriter(catalog Updater, imageBaseURL string, exclude []string, logger *slog.Logger) *Writer {
	return &Writer{
		catalog:      catalog,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		exclude:      exclude,
		logger:       logging.NewComponentLogger(logger, "writer"),
		now:          time.Now,
	}
}

// BuildUpdate derives the update payload for one canonical record. Fields
// whose source value is absent are left out of the map entirely; the catalog
// API distinguishes a missing key from an explicit empty value. The exclusion
// list is applied last so it wins over every rule above it.
func (w *Writer) BuildUpdate(meta metadata.Canonical) map[string]notion.Property {
	properties := make(map[string]notion.Property)

	// The destination title is only touched when the catalog title was wrong
	// and the resolver recorded a correction.
	if meta.CorrectedTitle != "" {
		properties[ColumnTitle] = notion.TitleProperty(meta.CorrectedTitle)
	}

	if meta.OriginalTitle == meta.Title {
		properties[ColumnOriginalTitle] = notion.TextProperty(meta.Title)
	} else {
		properties[ColumnOriginalTitle] = notion.TextProperty(fmt.Sprintf("%s (%s)", meta.OriginalTitle, meta.Title))
	}

	properties[ColumnSynopsis] = notion.TextProperty(meta.Synopsis)
	if meta.Year != 0 {
		properties[ColumnYear] = notion.NumberProperty(meta.Year)
	}
	properties[ColumnCategory] = notion.MultiSelectProperty(meta.Categories)
	properties[ColumnDirector] = notion.TextProperty(strings.Join(meta.Directors, "\n"))

	if meta.PosterPath != "" {
		properties[ColumnPoster] = notion.ExternalFileProperty(meta.Title, w.imageBaseURL+meta.PosterPath)
	}

	properties[ColumnLastSync] = notion.DateProperty(w.now())

	if meta.TrailerURL != "" {
		properties[ColumnTrailer] = notion.URLProperty(meta.TrailerURL)
	}
	if meta.Language != "" {
		properties[ColumnLanguage] = notion.SelectProperty(meta.Language)
	}
	if meta.Runtime != nil {
		classification := "Shorts"
		if *meta.Runtime > shortFilmThreshold {
			classification = "Full-length"
		}
		properties[ColumnType] = notion.SelectProperty(classification)
	}

	properties[ColumnTMDBLink] = notion.URLProperty(meta.MediaType.DetailURL(meta.TMDBID))

	for _, column := range w.exclude {
		delete(properties, column)
	}
	return properties
}

// Apply writes one canonical record back to the catalog. The update is a
// single call; a rejection fails the whole entry with no per-field retry.
func (w *Writer) Apply(ctx context.Context, meta metadata.Canonical) error {
	if err := w.catalog.UpdatePage(ctx, meta.EntryID, w.BuildUpdate(meta)); err != nil {
		return fmt.Errorf("apply %s: %w", meta.Title, err)
	}

	fullTitle := meta.Title
	if meta.OriginalTitle != meta.Title {
		fullTitle = fmt.Sprintf("%s (%s)", meta.OriginalTitle, meta.Title)
	}
	w.logger.Info("entry updated",
		logging.String("title", fullTitle),
		logging.Int("year", meta.Year))
	return nil
}
