// Package resolve narrows a free-text catalog title to exactly one TMDB
// identifier.
//
// Resolution is an explicit loop over a replaceable query: a single search
// hit auto-selects, multiple hits demand an interactive choice, and an empty
// result set prompts for a refined title and year. The only exits are a
// resolved identifier or an explicit skip; there is no automatic give-up and
// no silent guessing. A refined query carries the catalog's original title
// forward as a corrected-title hint for the writer.
package resolve
