package yatta

import "encoding/json"

// ChangelogCategory groups the item IDs changed in one entity family.
type ChangelogCategory struct {
	Category string
	ItemIDs  []int
}

// Changelog is one changelog entry of an upstream data revision. Its ID is
// the map key of the static changelog payload and is injected by the client.
type Changelog struct {
	ID         int
	Version    string
	Categories []ChangelogCategory
	Beta       bool
}

// UnmarshalJSON builds a Changelog from the map value; the caller fills in
// the ID from the map key. Categories arrive as an object keyed by entity
// family name with lists of (possibly stringified) item IDs.
func (c *Changelog) UnmarshalJSON(data []byte) error {
	var raw struct {
		Version json.RawMessage `json:"version"`
		Items   json.RawMessage `json:"items"`
		Beta    bool            `json:"beta"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("changelog", "", err)
	}

	// The version field is occasionally a bare number.
	var version string
	if !isJSONNull(raw.Version) {
		if err := json.Unmarshal(raw.Version, &version); err != nil {
			version = string(raw.Version)
		}
	}

	records, err := namedRecords(raw.Items)
	if err != nil {
		return payloadErr("changelog", "items", err)
	}
	categories := make([]ChangelogCategory, 0, len(records))
	for _, rec := range records {
		ids, err := intList(rec.Raw)
		if err != nil {
			return payloadErr("changelog", "items."+rec.Key, err)
		}
		categories = append(categories, ChangelogCategory{Category: rec.Key, ItemIDs: ids})
	}

	c.Version = version
	c.Categories = categories
	c.Beta = raw.Beta
	return nil
}
