// Package notion implements the catalog database collaborator over the
// Notion HTTP API.
//
// The client is scoped to one database and two operations: a filtered query
// returning catalog entries awaiting enrichment, and a partial page update
// keyed by destination column name. Property builders produce the exact
// payload shapes Notion distinguishes (title vs rich_text vs select and so
// on); an absent value is an absent key, never a null.
package notion
