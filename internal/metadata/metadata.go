package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reelsync/internal/catalog"
	"reelsync/internal/language"
	"reelsync/internal/tmdb"
)

// Canonical is the unified, media-type-independent record produced after
// resolution and fetch. Title and OriginalTitle are always both set; every
// other field may be absent, which means "unknown" rather than an error.
// Absence is an empty string, a nil pointer, or a zero year — the writer
// branches on presence, and Runtime stays a pointer because zero minutes is a
// legal present value.
type Canonical struct {
	TMDBID         int64
	EntryID        string
	MediaType      catalog.MediaType
	Categories     []string
	OriginalTitle  string
	Title          string
	Synopsis       string
	Year           int
	Directors      []string
	PosterPath     string
	TrailerURL     string
	Language       string
	Runtime        *int
	CorrectedTitle string // set only when the catalog title needed a retry
}

// Summary renders the record for the post-fetch confirmation list.
func (c Canonical) Summary() string {
	return fmt.Sprintf("%s (%s) [%d]", c.Title, c.OriginalTitle, c.Year)
}

const youtubeWatchURL = "https://www.youtube.com/watch?v="

// Normalize converts a raw TMDB detail record into the canonical shape. The
// entry supplies the back-reference into the catalog; correctedTitle carries
// the replacement title from a resolver retry, empty when the catalog title
// matched on the first search.
func Normalize(d *tmdb.Details, entry catalog.Entry, correctedTitle string) Canonical {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	originalTitle := d.OriginalTitle
	if originalTitle == "" {
		originalTitle = d.OriginalName
	}

	categories := make([]string, 0, len(d.Genres))
	for _, genre := range d.Genres {
		categories = append(categories, genre.Name)
	}

	displayLanguage, _ := language.DisplayName(d.OriginalLanguage)

	return Canonical{
		TMDBID:         d.ID,
		EntryID:        entry.ID,
		MediaType:      entry.MediaType,
		Categories:     categories,
		OriginalTitle:  originalTitle,
		Title:          title,
		Synopsis:       d.Overview,
		Year:           releaseYear(firstNonEmpty(d.ReleaseDate, d.FirstAirDate)),
		Directors:      directorNames(d, entry.MediaType),
		PosterPath:     d.PosterPath,
		TrailerURL:     trailerURL(d.Videos.Results),
		Language:       displayLanguage,
		Runtime:        d.Runtime,
		CorrectedTitle: correctedTitle,
	}
}

// directorNames extracts creators for series verbatim and filters the full
// crew down to the Director role for movies.
func directorNames(d *tmdb.Details, media catalog.MediaType) []string {
	if media == catalog.MediaTypeSeries {
		names := make([]string, 0, len(d.CreatedBy))
		for _, person := range d.CreatedBy {
			names = append(names, person.Name)
		}
		return names
	}
	var names []string
	for _, person := range d.Credits.Crew {
		if person.Job == "Director" {
			names = append(names, person.Name)
		}
	}
	return names
}

// trailerURL picks the best available video: the first Trailer, else the
// first Teaser, else the first video of any type. Returns "" when the record
// has no videos.
func trailerURL(videos []tmdb.Video) string {
	var teaser, fallback *tmdb.Video
	for i := range videos {
		switch videos[i].Type {
		case "Trailer":
			return youtubeWatchURL + videos[i].Key
		case "Teaser":
			if teaser == nil {
				teaser = &videos[i]
			}
		}
		if fallback == nil {
			fallback = &videos[i]
		}
	}
	if teaser != nil {
		return youtubeWatchURL + teaser.Key
	}
	if fallback != nil {
		return youtubeWatchURL + fallback.Key
	}
	return ""
}

// releaseYear extracts the year component from a TMDB date string. Some
// records carry a bare year or an empty date; those yield the year itself or
// zero.
func releaseYear(date string) int {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0
	}
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Year()
	}
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil {
			return year
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
