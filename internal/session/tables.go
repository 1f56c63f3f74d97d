package session

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"reelsync/internal/catalog"
	"reelsync/internal/metadata"
)

func newTableWriter(header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw
}

// entryTable renders the pre-session listing of catalog rows.
func entryTable(entries []catalog.Entry) string {
	tw := newTableWriter(table.Row{"#", "Title", "Year", "Type"})
	for i, entry := range entries {
		year := ""
		if entry.Year != nil {
			year = strconv.Itoa(*entry.Year)
		}
		tw.AppendRow(table.Row{i + 1, entry.Title, year, string(entry.MediaType)})
	}
	return tw.Render()
}

// resolvedTable renders the pre-write summary of fetched metadata.
func resolvedTable(resolved []metadata.Canonical) string {
	tw := newTableWriter(table.Row{"#", "Title", "Original Title", "Year", "TMDB ID"})
	for i, meta := range resolved {
		year := ""
		if meta.Year != 0 {
			year = strconv.Itoa(meta.Year)
		}
		tw.AppendRow(table.Row{i + 1, meta.Title, meta.OriginalTitle, year, meta.TMDBID})
	}
	return tw.Render()
}
