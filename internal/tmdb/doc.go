// Package tmdb provides the minimal TMDB API client used for catalog
// reconciliation.
//
// It exposes a media-type-aware search (movie and TV endpoints use different
// paths and year parameter names) and a single batched detail fetch that
// attaches the videos and credits sub-resources via append_to_response.
// Responses are strongly typed so the normalizer can reconcile the movie and
// series field shapes. Options allow tests to supply custom HTTP clients.
package tmdb
