// Package resolvecache provides a local cache that maps search queries to
// TMDB identifiers.
//
// A query that required interactive disambiguation once should not prompt
// again on the next run: the cache is consulted before searching and written
// after every successful resolution. Entries key on media type, normalized
// title, and year.
//
// # Storage
//
// The cache is a SQLite database at a configurable path (default:
// ~/.cache/reelsync/resolutions.db), disabled unless enabled in config:
//
//	[resolve_cache]
//	enabled = true
//	path = "~/.cache/reelsync/resolutions.db"
//
// CLI commands for inspection and management:
//
//	reelsync cache list              # List all cached resolutions
//	reelsync cache remove <number>   # Remove entry by number from list
//	reelsync cache clear             # Remove all entries
package resolvecache
