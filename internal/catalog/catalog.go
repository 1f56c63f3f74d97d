package catalog

import (
	"fmt"
	"strings"
)

// MediaType is a closed variant over the two record shapes TMDB exposes.
// The movie and series APIs disagree on search paths, year parameter names,
// and field names; every mapping lives here so callers never compare raw
// catalog strings.
type MediaType string

const (
	MediaTypeMovie  MediaType = "Movie"
	MediaTypeSeries MediaType = "Series"
)

// ParseMediaType converts the catalog's Type column value into a MediaType.
func ParseMediaType(value string) (MediaType, error) {
	switch strings.TrimSpace(value) {
	case string(MediaTypeMovie):
		return MediaTypeMovie, nil
	case string(MediaTypeSeries):
		return MediaTypeSeries, nil
	default:
		return "", fmt.Errorf("unknown media type %q", value)
	}
}

// SearchPath returns the TMDB search endpoint for this media type.
func (m MediaType) SearchPath() string {
	if m == MediaTypeSeries {
		return "search/tv"
	}
	return "search/movie"
}

// DetailPath returns the TMDB detail endpoint for a resolved identifier.
func (m MediaType) DetailPath(id int64) string {
	if m == MediaTypeSeries {
		return fmt.Sprintf("tv/%d", id)
	}
	return fmt.Sprintf("movie/%d", id)
}

// YearParam returns the search query parameter carrying the release year.
// The series search API names it differently.
func (m MediaType) YearParam() string {
	if m == MediaTypeSeries {
		return "first_air_date_year"
	}
	return "year"
}

// DetailURL returns the public themoviedb.org page for an identifier. The
// catalog's TMDB Link column stores the movie-form URL for both media types;
// keep it that way for compatibility with existing rows.
func (m MediaType) DetailURL(id int64) string {
	return fmt.Sprintf("https://themoviedb.org/movie/%d", id)
}

// Entry is one catalog row awaiting enrichment. Entries are read once per
// session and never mutated; enriched fields flow back as a separate update.
type Entry struct {
	ID        string // opaque page identifier in the catalog database
	Title     string
	Year      *int // nil when the Year column is empty
	MediaType MediaType
}

// Label renders the entry for prompts and progress output.
func (e Entry) Label() string {
	if e.Year != nil {
		return fmt.Sprintf("%s (%d)", e.Title, *e.Year)
	}
	return e.Title
}
