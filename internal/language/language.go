package language

import "strings"

type entry struct {
	code    string // ISO 639-1 code as TMDB reports it
	display string // Human-readable name
	flag    string // Emoji flag shown in candidate lists
}

// The table mirrors the languages the catalog actually contains. TMDB
// occasionally reports "ch" for Chinese-language entries, so both spellings
// map to the same display name.
var languages = []entry{
	{"ch", "Chinese", "🇨🇳"},
	{"zh", "Chinese", "🇨🇳"},
	{"tl", "Filipino", "🇵🇭"},
	{"en", "English", "🇺🇸"},
	{"th", "Thai", "🇹🇭"},
	{"fr", "French", "🇫🇷"},
	{"id", "Indonesian", "🇮🇩"},
	{"hi", "Indian", "🇮🇳"},
	{"ko", "Korean", "🇰🇷"},
	{"vi", "Vietnamese", "🇻🇳"},
	{"it", "Italian", "🇮🇹"},
	{"ja", "Japanese", "🇯🇵"},
	{"es", "Spanish", "🇪🇸"},
}

// FallbackFlag is shown for language codes outside the table.
const FallbackFlag = "🏳️‍🌈"

var byCode map[string]*entry

func init() {
	byCode = make(map[string]*entry, len(languages))
	for i := range languages {
		byCode[languages[i].code] = &languages[i]
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	return byCode[code]
}

// DisplayName returns the human-readable name for a language code. The second
// return value reports whether the code is in the table; callers treat an
// unmapped code as "language unknown" rather than surfacing the raw code.
func DisplayName(code string) (string, bool) {
	if e := lookup(code); e != nil {
		return e.display, true
	}
	return "", false
}

// Flag returns an emoji flag for a language code. Total: unmapped codes get
// FallbackFlag so candidate lists always render a marker.
func Flag(code string) string {
	if e := lookup(code); e != nil {
		return e.flag
	}
	return FallbackFlag
}
