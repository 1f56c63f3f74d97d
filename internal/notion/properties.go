package notion

import "time"

// Property is one column value in an update payload, keyed by the Notion
// property type name. The builders below produce the exact wire shapes the
// Notion API expects; absent fields are expressed by leaving the key out of
// the page-level property map entirely, never by a null value.
type Property map[string]any

type richText struct {
	Type string      `json:"type"`
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type selectOption struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type externalFile struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	External fileURL `json:"external"`
}

type fileURL struct {
	URL string `json:"url"`
}

func newText(content string) []richText {
	return []richText{{Type: "text", Text: textContent{Content: content}}}
}

// TitleProperty builds a title column value.
func TitleProperty(content string) Property {
	return Property{"title": newText(content)}
}

// TextProperty builds a rich_text column value.
func TextProperty(content string) Property {
	return Property{"rich_text": newText(content)}
}

// NumberProperty builds a number column value.
func NumberProperty(value int) Property {
	return Property{"number": value}
}

// SelectProperty builds a single-select column value.
func SelectProperty(name string) Property {
	return Property{"select": selectOption{Name: name}}
}

// MultiSelectProperty builds a multi-select column value. An empty name list
// clears the column, which is distinct from omitting the key.
func MultiSelectProperty(names []string) Property {
	options := make([]selectOption, 0, len(names))
	for _, name := range names {
		options = append(options, selectOption{Name: name})
	}
	return Property{"multi_select": options}
}

// URLProperty builds a url column value.
func URLProperty(value string) Property {
	return Property{"url": value}
}

// DateProperty builds a date column value.
func DateProperty(t time.Time) Property {
	return Property{"date": dateValue{Start: t.Format(time.RFC3339)}}
}

// ExternalFileProperty builds a files column value referencing an externally
// hosted file.
func ExternalFileProperty(name, url string) Property {
	return Property{"files": []externalFile{{
		Type:     "external",
		Name:     name,
		External: fileURL{URL: url},
	}}}
}
