package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"reelsync/internal/catalog"
	"reelsync/internal/language"
	"reelsync/internal/logging"
	"reelsync/internal/prompt"
	"reelsync/internal/tmdb"
)

// Query is one resolution attempt against the search API. A refinement
// replaces the whole query rather than mutating it.
type Query struct {
	Title     string
	Year      *int
	MediaType catalog.MediaType
}

// Label renders the query for prompt messages.
func (q Query) Label() string {
	if q.Year != nil {
		return fmt.Sprintf("%s (%d)", q.Title, *q.Year)
	}
	return q.Title
}

// Outcome is the terminal state of a resolution: either a TMDB identifier
// (possibly with a corrected-title hint) or an explicit skip. There is no
// third state — the loop only exits through one of the two.
type Outcome struct {
	Skipped        bool
	TMDBID         int64
	CorrectedTitle string
}

// Searcher is the subset of the TMDB client the resolver needs.
type Searcher interface {
	Search(ctx context.Context, media catalog.MediaType, query string, year *int) (*tmdb.SearchResponse, error)
}

// Cache is an optional store of previously confirmed resolutions.
type Cache interface {
	Lookup(ctx context.Context, media catalog.MediaType, title string, year *int) (int64, bool, error)
	Put(ctx context.Context, media catalog.MediaType, title string, year *int, tmdbID int64) error
}

// Fixed options appended after the candidate rows.
const (
	optionSkip          = "⏩  Skip"
	optionEnterID       = "🎬  Enter TMDB ID"
	optionSearchNoYear  = "🔎  Search without year"
	manualIDPromptLabel = "🎬  Enter TMDB ID manually:"
)

// Resolver narrows an ambiguous catalog title down to exactly one TMDB
// identifier, prompting the user whenever the search API cannot decide.
type Resolver struct {
	searcher Searcher
	prompter prompt.Prompter
	cache    Cache // nil when the resolution cache is disabled
	logger   *slog.Logger
}

// New creates a resolver. cache may be nil.
func New(searcher Searcher, prompter prompt.Prompter, cache Cache, logger *slog.Logger) *Resolver {
	return &Resolver{
		searcher: searcher,
		prompter: prompter,
		cache:    cache,
		logger:   logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve runs the search/refine loop for one catalog entry. The loop
// terminates only through user input: an empty replacement title or an
// explicit skip yields Skipped, everything else converges on one identifier.
// Search API failures propagate unrecovered.
func (r *Resolver) Resolve(ctx context.Context, entry catalog.Entry) (Outcome, error) {
	if r.cache != nil {
		id, found, err := r.cache.Lookup(ctx, entry.MediaType, entry.Title, entry.Year)
		if err != nil {
			r.logger.Warn("resolution cache lookup failed", logging.Error(err))
		} else if found {
			r.logger.Info("resolved from cache",
				logging.String("title", entry.Title),
				logging.Int64("tmdb_id", id))
			return Outcome{TMDBID: id}, nil
		}
	}

	query := Query{Title: entry.Title, Year: entry.Year, MediaType: entry.MediaType}
	corrected := ""

	for {
		response, err := r.searcher.Search(ctx, query.MediaType, query.Title, query.Year)
		if err != nil {
			return Outcome{}, fmt.Errorf("search %q: %w", query.Title, err)
		}

		switch len(response.Results) {
		case 0:
			next, retry, err := r.refine(ctx, query)
			if err != nil {
				return Outcome{}, err
			}
			if !retry {
				return Outcome{Skipped: true}, nil
			}
			// The first refinement pins the corrected-title hint to the
			// catalog's original title so the writer can restore it.
			if corrected == "" {
				corrected = entry.Title
			}
			query = next

		case 1:
			return r.resolved(ctx, entry, response.Results[0].ID, corrected)

		default:
			id, action, err := r.choose(ctx, query, response.Results)
			if err != nil {
				return Outcome{}, err
			}
			switch action {
			case chooseSkip:
				return Outcome{Skipped: true}, nil
			case chooseSearchWithoutYear:
				if corrected == "" {
					corrected = entry.Title
				}
				query = Query{Title: query.Title, MediaType: query.MediaType}
			case choosePicked:
				return r.resolved(ctx, entry, id, corrected)
			}
		}
	}
}

type chooseAction int

const (
	choosePicked chooseAction = iota
	chooseSkip
	chooseSearchWithoutYear
)

// refine prompts for a replacement title and optional year after an empty
// search. Returns retry=false when the user abandons the entry.
func (r *Resolver) refine(ctx context.Context, query Query) (Query, bool, error) {
	title, err := r.prompter.Input(ctx,
		fmt.Sprintf("🛑  No results found for %s\nNew Search (enter to skip):", query.Label()))
	if err != nil {
		return Query{}, false, err
	}
	if title == "" {
		return Query{}, false, nil
	}

	yearAnswer, err := r.prompter.Input(ctx, "New Year (optional):")
	if err != nil {
		return Query{}, false, err
	}
	next := Query{Title: title, MediaType: query.MediaType}
	if yearAnswer != "" {
		if year, convErr := strconv.Atoi(yearAnswer); convErr == nil {
			next.Year = &year
		}
	}
	return next, true, nil
}

// choose presents the candidate list plus the fixed options and maps the
// selection back to an action. Every multi-result path requires explicit
// human input; the resolver never guesses.
func (r *Resolver) choose(ctx context.Context, query Query, results []tmdb.SearchResult) (int64, chooseAction, error) {
	options := make([]string, 0, len(results)+3)
	for _, result := range results {
		options = append(options, candidateLine(query.MediaType, result))
	}
	options = append(options, optionSkip, optionEnterID)
	if query.Year != nil {
		options = append(options, optionSearchNoYear)
	}

	choice, err := r.prompter.Select(ctx,
		fmt.Sprintf("⚠️  Multiple results found for %s", query.Label()), options)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case choice < len(results):
		return results[choice].ID, choosePicked, nil
	case options[choice] == optionSkip:
		return 0, chooseSkip, nil
	case options[choice] == optionSearchNoYear:
		return 0, chooseSearchWithoutYear, nil
	default:
		return r.manualID(ctx)
	}
}

// manualID reads a raw identifier. The value is trusted as-is; the prompt
// only repeats until the input is numeric, and an empty line skips the entry.
func (r *Resolver) manualID(ctx context.Context) (int64, chooseAction, error) {
	for {
		answer, err := r.prompter.Input(ctx, manualIDPromptLabel)
		if err != nil {
			return 0, 0, err
		}
		if answer == "" {
			return 0, chooseSkip, nil
		}
		if id, convErr := strconv.ParseInt(answer, 10, 64); convErr == nil && id > 0 {
			return id, choosePicked, nil
		}
	}
}

func (r *Resolver) resolved(ctx context.Context, entry catalog.Entry, id int64, corrected string) (Outcome, error) {
	if r.cache != nil {
		if err := r.cache.Put(ctx, entry.MediaType, entry.Title, entry.Year, id); err != nil {
			r.logger.Warn("resolution cache store failed", logging.Error(err))
		}
	}
	r.logger.Info("entry resolved",
		logging.String("title", entry.Title),
		logging.Int64("tmdb_id", id))
	return Outcome{TMDBID: id, CorrectedTitle: corrected}, nil
}

// candidateLine renders one search result the way the disambiguation list
// shows it: flag, title, release date, genres, and a deep link.
func candidateLine(media catalog.MediaType, result tmdb.SearchResult) string {
	return fmt.Sprintf("%s   %s [%s] - %s (%s)",
		language.Flag(result.OriginalLanguage),
		result.DisplayTitle(),
		result.Released(),
		strings.Join(tmdb.GenreNamesFor(result.GenreIDs), ", "),
		media.DetailURL(result.ID))
}
