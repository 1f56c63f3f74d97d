// Package session orchestrates one interactive reconciliation run.
//
// A run has two confirmation gates: one before any resolution work starts and
// one between resolution and write-back. Declining either gate ends the run
// with nothing written. Resolution is strictly serial because it shares the
// terminal with the user; the final write-back fans out concurrently since no
// further input is needed.
package session
