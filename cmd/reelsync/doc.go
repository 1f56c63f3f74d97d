// Command reelsync reconciles a Notion movie and series catalog with TMDB
// metadata through an interactive terminal session.
package main
