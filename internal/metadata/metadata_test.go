package metadata

import (
	"testing"

	"reelsync/internal/catalog"
	"reelsync/internal/tmdb"
)

func movieDetails() *tmdb.Details {
	runtime := 106
	d := &tmdb.Details{
		ID:               372058,
		Title:            "Your Name",
		OriginalTitle:    "君の名は。",
		Overview:         "Two strangers find themselves linked.",
		ReleaseDate:      "2016-08-26",
		OriginalLanguage: "ja",
		PosterPath:       "/poster.jpg",
		Runtime:          &runtime,
		Genres:           []tmdb.Genre{{ID: 16, Name: "Animation"}, {ID: 18, Name: "Drama"}},
	}
	d.Credits.Crew = []tmdb.Person{
		{Name: "Makoto Shinkai", Job: "Director"},
		{Name: "Somebody Else", Job: "Producer"},
	}
	d.Videos.Results = []tmdb.Video{
		{Key: "t1", Type: "Teaser"},
		{Key: "abc", Type: "Trailer"},
	}
	return d
}

func TestNormalizeMovie(t *testing.T) {
	entry := catalog.Entry{ID: "page-1", Title: "Your Name", MediaType: catalog.MediaTypeMovie}
	got := Normalize(movieDetails(), entry, "")

	if got.TMDBID != 372058 || got.EntryID != "page-1" {
		t.Fatalf("identifier wiring wrong: %#v", got)
	}
	if got.Title != "Your Name" || got.OriginalTitle != "君の名は。" {
		t.Errorf("titles = %q / %q", got.Title, got.OriginalTitle)
	}
	if got.Year != 2016 {
		t.Errorf("year = %d, want 2016", got.Year)
	}
	if len(got.Directors) != 1 || got.Directors[0] != "Makoto Shinkai" {
		t.Errorf("directors = %#v, want only the Director role", got.Directors)
	}
	if got.Language != "Japanese" {
		t.Errorf("language = %q, want Japanese", got.Language)
	}
	if got.TrailerURL != "https://www.youtube.com/watch?v=abc" {
		t.Errorf("trailer = %q, want the Trailer over the Teaser", got.TrailerURL)
	}
	if got.Runtime == nil || *got.Runtime != 106 {
		t.Errorf("runtime = %#v", got.Runtime)
	}
	if len(got.Categories) != 2 || got.Categories[0] != "Animation" {
		t.Errorf("categories = %#v", got.Categories)
	}
	if got.CorrectedTitle != "" {
		t.Errorf("corrected title = %q, want empty", got.CorrectedTitle)
	}
}

func TestNormalizeSeries(t *testing.T) {
	d := &tmdb.Details{
		ID:               1396,
		Name:             "Example Show",
		OriginalName:     "Example Show",
		FirstAirDate:     "2011-04-17",
		OriginalLanguage: "en",
		CreatedBy:        []tmdb.Person{{Name: "Show Runner"}},
	}
	entry := catalog.Entry{ID: "page-2", Title: "Example Show", MediaType: catalog.MediaTypeSeries}
	got := Normalize(d, entry, "")

	if got.Title != "Example Show" || got.OriginalTitle != "Example Show" {
		t.Errorf("series title fallback failed: %q / %q", got.Title, got.OriginalTitle)
	}
	if got.Year != 2011 {
		t.Errorf("year = %d, want 2011", got.Year)
	}
	if len(got.Directors) != 1 || got.Directors[0] != "Show Runner" {
		t.Errorf("creators = %#v, want created_by verbatim", got.Directors)
	}
	if got.Runtime != nil {
		t.Errorf("series runtime = %#v, want absent", got.Runtime)
	}
	if got.TrailerURL != "" {
		t.Errorf("trailer = %q, want absent with no videos", got.TrailerURL)
	}
}

func TestNormalizeCarriesCorrectedTitle(t *testing.T) {
	entry := catalog.Entry{ID: "page-1", Title: "Yuor Name", MediaType: catalog.MediaTypeMovie}
	got := Normalize(movieDetails(), entry, "Yuor Name")
	if got.CorrectedTitle != "Yuor Name" {
		t.Errorf("corrected title = %q", got.CorrectedTitle)
	}
}

func TestNormalizeUnmappedLanguageIsAbsent(t *testing.T) {
	d := movieDetails()
	d.OriginalLanguage = "xx"
	got := Normalize(d, catalog.Entry{MediaType: catalog.MediaTypeMovie}, "")
	if got.Language != "" {
		t.Errorf("language = %q, want absent for unmapped code", got.Language)
	}
}

func TestTrailerSelectionOrder(t *testing.T) {
	tests := []struct {
		name   string
		videos []tmdb.Video
		want   string
	}{
		{
			name:   "trailer preferred over teaser",
			videos: []tmdb.Video{{Key: "t1", Type: "Teaser"}, {Key: "abc", Type: "Trailer"}},
			want:   "https://www.youtube.com/watch?v=abc",
		},
		{
			name:   "teaser when no trailer",
			videos: []tmdb.Video{{Key: "clip", Type: "Clip"}, {Key: "t1", Type: "Teaser"}},
			want:   "https://www.youtube.com/watch?v=t1",
		},
		{
			name:   "first video of any type as last resort",
			videos: []tmdb.Video{{Key: "clip", Type: "Clip"}, {Key: "bts", Type: "Behind the Scenes"}},
			want:   "https://www.youtube.com/watch?v=clip",
		},
		{
			name:   "absent when no videos",
			videos: nil,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailerURL(tt.videos); got != tt.want {
				t.Errorf("trailerURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2016-08-26", 2016},
		{"2011-04-17", 2011},
		{"1999", 1999},
		{"", 0},
		{"unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := releaseYear(tt.input); got != tt.want {
				t.Errorf("releaseYear(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
