package tmdb

// SearchResult represents a single TMDB search match. Movie and series
// payloads expose disjoint field names (title/name, release_date/
// first_air_date); both sets are declared and the accessors fall back.
type SearchResult struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	OriginalTitle    string  `json:"original_title"`
	OriginalName     string  `json:"original_name"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int64 `json:"genre_ids"`
	Popularity       float64 `json:"popularity"`
}

// DisplayTitle returns the localized title regardless of media shape.
func (r SearchResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Released returns the release date regardless of media shape.
func (r SearchResult) Released() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}

// SearchResponse models the TMDB paginated search response.
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a TMDB genre entry on a detail record.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person is a crew or creator entry. Job is only populated for crew.
type Person struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Video is one entry from the videos sub-resource.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Details captures the full TMDB detail payload with the videos and credits
// sub-resources attached (append_to_response). Runtime is a pointer because
// series payloads omit it entirely and a zero runtime is a legal value.
type Details struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	OriginalTitle    string  `json:"original_title"`
	OriginalName     string  `json:"original_name"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	OriginalLanguage string  `json:"original_language"`
	PosterPath       string  `json:"poster_path"`
	Runtime          *int    `json:"runtime"`
	Genres           []Genre `json:"genres"`
	CreatedBy        []Person `json:"created_by"`
	Credits          struct {
		Crew []Person `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
}
