package config

import (
	"errors"
	"fmt"
	"strings"

	"reelsync/internal/catalog"
)

// Validate checks a normalized config for values the process cannot run with.
// All problems are reported at once.
func (c *Config) Validate() error {
	var problems []string

	if c.Notion.APIKey == "" {
		problems = append(problems, "notion.api_key is required (or set NOTION_API_KEY)")
	}
	if c.Notion.DatabaseID == "" {
		problems = append(problems, "notion.database_id is required (or set NOTION_MOVIE_DB)")
	}
	if c.Notion.BaseURL == "" {
		problems = append(problems, "notion.base_url must not be empty")
	}
	if c.Notion.PageSize < 1 || c.Notion.PageSize > 100 {
		problems = append(problems, "notion.page_size must be between 1 and 100")
	}

	if c.TMDB.APIKey == "" {
		problems = append(problems, "tmdb.api_key is required (or set TMDB_API_KEY)")
	}
	if c.TMDB.BaseURL == "" {
		problems = append(problems, "tmdb.base_url must not be empty")
	}
	if c.TMDB.ImageBaseURL == "" {
		problems = append(problems, "tmdb.image_base_url must not be empty")
	}

	if _, err := catalog.ParseMediaType(c.Sync.MediaType); err != nil {
		problems = append(problems, fmt.Sprintf("sync.media_type: %v", err))
	}
	if c.Sync.PromptPageSize < 1 {
		problems = append(problems, "sync.prompt_page_size must be positive")
	}

	if c.ResolveCache.Enabled && c.ResolveCache.Path == "" {
		problems = append(problems, "resolve_cache.path must not be empty when the cache is enabled")
	}

	if c.Notifications.RequestTimeout < 1 {
		problems = append(problems, "notifications.request_timeout must be positive")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q is not supported (use console or json)", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q is not supported", c.Logging.Level))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}
