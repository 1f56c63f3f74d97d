package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Default()
	cfg.Notion.APIKey = "secret_notion"
	cfg.Notion.DatabaseID = "db123"
	cfg.TMDB.APIKey = "tmdb_key"
	return cfg
}

func TestDefaultValidatesWithCredentials(t *testing.T) {
	cfg := validConfig()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config with credentials should validate: %v", err)
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Notion.PageSize = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	for _, fragment := range []string{
		"notion.api_key",
		"notion.database_id",
		"tmdb.api_key",
		"notion.page_size",
		"logging.level",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("validation error missing %q:\n%v", fragment, err)
		}
	}
}

func TestValidateMediaType(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.MediaType = "Documentary"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown media type to fail validation")
	}
	cfg.Sync.MediaType = "Series"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Series should validate: %v", err)
	}
}

func TestLoadAppliesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[notion]
api_key = "file_notion_key"
database_id = "file_db"

[tmdb]
api_key = "file_tmdb_key"
language = "fr-FR"

[sync]
media_type = "Series"
exclude_columns = ["Poster"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = (%q, %v)", resolved, exists)
	}
	if cfg.TMDB.Language != "fr-FR" {
		t.Errorf("language = %q", cfg.TMDB.Language)
	}
	if cfg.Sync.MediaType != "Series" {
		t.Errorf("media type = %q", cfg.Sync.MediaType)
	}
	if cfg.Notion.BaseURL != defaultNotionBaseURL {
		t.Errorf("untouched default changed: %q", cfg.Notion.BaseURL)
	}
	if len(cfg.Sync.ExcludeColumns) != 1 || cfg.Sync.ExcludeColumns[0] != "Poster" {
		t.Errorf("exclude columns = %v", cfg.Sync.ExcludeColumns)
	}
}

func TestLoadEnvironmentFallbacks(t *testing.T) {
	t.Setenv("NOTION_API_KEY", "env_notion")
	t.Setenv("NOTION_MOVIE_DB", "env_db")
	t.Setenv("TMDB_API_KEY", "env_tmdb")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Notion.APIKey != "env_notion" || cfg.Notion.DatabaseID != "env_db" || cfg.TMDB.APIKey != "env_tmdb" {
		t.Errorf("environment fallbacks not applied: %+v", cfg.Notion)
	}
}

func TestLoadFileWinsOverEnvironment(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env_tmdb")
	t.Setenv("NOTION_API_KEY", "env_notion")
	t.Setenv("NOTION_MOVIE_DB", "env_db")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tmdb]
api_key = "file_tmdb"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TMDB.APIKey != "file_tmdb" {
		t.Errorf("file value should win over environment, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[notion\napi_key="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandPath("~/state")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "state") {
		t.Errorf("expanded = %q", got)
	}

	if _, err := ExpandPath("  "); err == nil {
		t.Error("expected error for blank path")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[notion]") {
		t.Error("sample config missing notion section")
	}
	if err := WriteSample(path); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}
}
