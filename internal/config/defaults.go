package config

const (
	defaultStateDir         = "~/.local/share/reelsync"
	defaultNotionBaseURL    = "https://api.notion.com/v1"
	defaultNotionPageSize   = 100
	defaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	defaultTMDBLanguage     = "en-US"
	defaultTMDBImageBaseURL = "https://image.tmdb.org/t/p/w200"
	defaultSyncMediaType    = "Movie"
	defaultPromptPageSize   = 20
	defaultResolveCachePath = "~/.cache/reelsync/resolutions.db"
	defaultNtfyTimeout      = 10
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Notion: Notion{
			BaseURL:  defaultNotionBaseURL,
			PageSize: defaultNotionPageSize,
		},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			Language:     defaultTMDBLanguage,
			ImageBaseURL: defaultTMDBImageBaseURL,
		},
		Sync: Sync{
			MediaType:      defaultSyncMediaType,
			PromptPageSize: defaultPromptPageSize,
		},
		ResolveCache: ResolveCache{
			Path: defaultResolveCachePath,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
