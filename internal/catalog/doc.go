// Package catalog defines the catalog entry model and the movie/series media
// type variant that carries the TMDB path and parameter mappings.
package catalog
