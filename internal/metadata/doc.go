// Package metadata normalizes TMDB movie-shaped and series-shaped detail
// records into one canonical record consumed by the reconciliation writer.
//
// The two shapes disagree on field names (title/name, release_date/
// first_air_date, original_title/original_name) and on where creators live
// (created_by vs the crew list filtered to directors); Normalize resolves all
// of it in one place so downstream code never inspects raw payloads.
package metadata
