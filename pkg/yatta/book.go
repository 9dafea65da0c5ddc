package yatta

import "encoding/json"

// Book is the summary record of a readable book.
type Book struct {
	ID           int
	Name         string
	WorldType    int
	ChapterCount int
	Icon         string
	Route        string
}

// UnmarshalJSON builds a Book from the server payload, formatting the name
// and synthesizing the icon URL.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		WorldType    int    `json:"worldType"`
		ChapterCount int    `json:"chapterCount"`
		Icon         string `json:"icon"`
		Route        string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("book", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("book", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("book", "icon", nil)
	}

	b.ID = raw.ID
	b.Name = FormatString(raw.Name)
	b.WorldType = raw.WorldType
	b.ChapterCount = raw.ChapterCount
	b.Icon = iconURL("item", raw.Icon)
	b.Route = raw.Route
	return nil
}

// BookSeries is one story entry inside a book.
type BookSeries struct {
	ID        int
	Name      string
	Story     string
	ImageList []string
}

// BookDetail is the detail record of a book, including its series entries.
type BookDetail struct {
	ID           int
	Name         string
	WorldType    string
	ChapterCount int
	Icon         string
	Description  string
	Series       []BookSeries
}

// UnmarshalJSON builds a BookDetail from the server payload. Series arrive
// as an object keyed by stringified series IDs; the key becomes the ID of
// each entry.
func (b *BookDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int             `json:"id"`
		Name         string          `json:"name"`
		WorldType    string          `json:"worldType"`
		ChapterCount int             `json:"chapterCount"`
		Icon         string          `json:"icon"`
		Description  string          `json:"description"`
		Series       json.RawMessage `json:"series"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("book detail", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("book detail", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("book detail", "icon", nil)
	}

	records, err := keyedRecords(raw.Series)
	if err != nil {
		return payloadErr("book detail", "series", err)
	}
	series := make([]BookSeries, 0, len(records))
	for _, rec := range records {
		var s struct {
			Name      string   `json:"name"`
			Story     string   `json:"story"`
			ImageList []string `json:"imageList"`
		}
		if err := json.Unmarshal(rec.Raw, &s); err != nil {
			return payloadErr("book series", "", err)
		}
		series = append(series, BookSeries{
			ID:        rec.ID,
			Name:      FormatString(s.Name),
			Story:     FormatString(s.Story),
			ImageList: stringsOrEmpty(s.ImageList),
		})
	}

	b.ID = raw.ID
	b.Name = FormatString(raw.Name)
	b.WorldType = raw.WorldType
	b.ChapterCount = raw.ChapterCount
	b.Icon = iconURL("item", raw.Icon)
	b.Description = FormatString(raw.Description)
	b.Series = series
	return nil
}
