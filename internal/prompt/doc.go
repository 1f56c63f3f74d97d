// Package prompt implements the interactive collaborator used during
// candidate disambiguation: line input, paged single-choice selection, and
// yes/no confirmation over stdin/stdout, plus a scripted implementation for
// tests.
package prompt
