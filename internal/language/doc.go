// Package language maps TMDB original-language codes to display names and
// emoji flags for candidate rendering and catalog writes.
//
// The table is a static module-level constant covering the languages present
// in the catalog. DisplayName is a lookup with an explicit found flag; Flag is
// total and falls back to a neutral marker for unknown codes.
package language
