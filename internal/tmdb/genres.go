package tmdb

// genreNames maps TMDB genre IDs to display names. Search results only carry
// IDs; the table covers both the movie and TV genre lists so candidate rows
// can be rendered without a second API call.
var genreNames = map[int64]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
	10759: "Action & Adventure",
	10762: "Kids",
	10763: "News",
	10764: "Reality",
	10765: "Sci-Fi & Fantasy",
	10766: "Soap",
	10767: "Talk",
	10768: "War & Politics",
}

// GenreName resolves a genre ID from a search result.
func GenreName(id int64) (string, bool) {
	name, ok := genreNames[id]
	return name, ok
}

// GenreNamesFor renders the known genre names for a search result's ID list,
// skipping IDs outside the table.
func GenreNamesFor(ids []int64) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := genreNames[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
