package config

import (
	"os"
	"strings"
)

// normalize expands paths, trims string fields, and applies environment
// fallbacks for credentials so a config file never has to hold secrets.
func (c *Config) normalize() error {
	stateDir, err := ExpandPath(c.Paths.StateDir)
	if err != nil {
		return err
	}
	c.Paths.StateDir = stateDir

	c.Notion.APIKey = strings.TrimSpace(c.Notion.APIKey)
	if c.Notion.APIKey == "" {
		c.Notion.APIKey = strings.TrimSpace(os.Getenv("NOTION_API_KEY"))
	}
	c.Notion.DatabaseID = strings.TrimSpace(c.Notion.DatabaseID)
	if c.Notion.DatabaseID == "" {
		c.Notion.DatabaseID = strings.TrimSpace(os.Getenv("NOTION_MOVIE_DB"))
	}
	c.Notion.BaseURL = strings.TrimRight(strings.TrimSpace(c.Notion.BaseURL), "/")

	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	c.TMDB.ImageBaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.ImageBaseURL), "/")
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)

	c.Sync.MediaType = strings.TrimSpace(c.Sync.MediaType)
	for i, column := range c.Sync.ExcludeColumns {
		c.Sync.ExcludeColumns[i] = strings.TrimSpace(column)
	}

	if c.ResolveCache.Path != "" {
		cachePath, err := ExpandPath(c.ResolveCache.Path)
		if err != nil {
			return err
		}
		c.ResolveCache.Path = cachePath
	}

	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}
