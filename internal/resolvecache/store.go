package resolvecache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"reelsync/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear the cache file after a mismatch.
const schemaVersion = 1

// ErrSchemaMismatch indicates the cache database was written by a different
// schema version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Entry is one cached resolution.
type Entry struct {
	ID        int64
	MediaType string
	Title     string
	Year      int // 0 when the query carried no year
	TMDBID    int64
	CachedAt  time.Time
}

// Store persists query-to-identifier resolutions in SQLite so re-runs skip
// the interactive disambiguation for titles already resolved once.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'reelsync cache clear' or delete %s)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// normalizeTitle keys the cache case-insensitively on trimmed titles.
func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func yearKey(year *int) int {
	if year == nil {
		return 0
	}
	return *year
}

// Lookup returns the cached TMDB identifier for a query, if any.
func (s *Store) Lookup(ctx context.Context, media catalog.MediaType, title string, year *int) (int64, bool, error) {
	var tmdbID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT tmdb_id FROM resolutions WHERE media_type = ? AND title = ? AND year = ?`,
		string(media), normalizeTitle(title), yearKey(year),
	).Scan(&tmdbID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup resolution: %w", err)
	}
	return tmdbID, true, nil
}

// Put records a resolution, replacing any previous identifier for the same
// query.
func (s *Store) Put(ctx context.Context, media catalog.MediaType, title string, year *int, tmdbID int64) error {
	if tmdbID <= 0 {
		return errors.New("tmdb id must be positive")
	}
	normalized := normalizeTitle(title)
	if normalized == "" {
		return errors.New("title must not be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO resolutions (media_type, title, year, tmdb_id, cached_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (media_type, title, year)
         DO UPDATE SET tmdb_id = excluded.tmdb_id, cached_at = excluded.cached_at`,
		string(media), normalized, yearKey(year), tmdbID,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store resolution: %w", err)
	}
	return nil
}

// List returns every cached resolution, oldest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, media_type, title, year, tmdb_id, cached_at FROM resolutions ORDER BY cached_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list resolutions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var cachedAt string
		if err := rows.Scan(&entry.ID, &entry.MediaType, &entry.Title, &entry.Year, &entry.TMDBID, &cachedAt); err != nil {
			return nil, fmt.Errorf("scan resolution: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, cachedAt); parseErr == nil {
			entry.CachedAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resolutions: %w", err)
	}
	return entries, nil
}

// Remove deletes one cached resolution by its list identifier. Returns true
// when a row was removed.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resolutions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("remove resolution: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove resolution: %w", err)
	}
	return affected > 0, nil
}

// Clear deletes every cached resolution and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resolutions`)
	if err != nil {
		return 0, fmt.Errorf("clear resolutions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear resolutions: %w", err)
	}
	return affected, nil
}
