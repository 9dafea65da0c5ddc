package yatta

import "encoding/json"

// RecipeMaterial is one material of a crafting recipe.
type RecipeMaterial struct {
	ID     int
	Rarity int
	Icon   string
	Amount int
}

// Recipe is one way to craft or exchange for an item.
type Recipe struct {
	CoinCost           int
	RequiredWorldLevel int
	Materials          []RecipeMaterial
	SpecialMaterials   []RecipeMaterial
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw struct {
		CoinCost            *int            `json:"coinCost"`
		WorldLevelRequire   *int            `json:"worldLevelRequire"`
		MaterialCost        json.RawMessage `json:"materialCost"`
		SpecialMaterialCost json.RawMessage `json:"specialMaterialCost"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("recipe", "", err)
	}

	materials, err := recipeMaterials(raw.MaterialCost)
	if err != nil {
		return payloadErr("recipe", "materialCost", err)
	}
	special, err := recipeMaterials(raw.SpecialMaterialCost)
	if err != nil {
		return payloadErr("recipe", "specialMaterialCost", err)
	}

	r.CoinCost = intOrZero(raw.CoinCost)
	r.RequiredWorldLevel = intOrZero(raw.WorldLevelRequire)
	r.Materials = materials
	r.SpecialMaterials = special
	return nil
}

// recipeMaterials flattens a material map keyed by item ID.
func recipeMaterials(data json.RawMessage) ([]RecipeMaterial, error) {
	records, err := keyedRecords(data)
	if err != nil {
		return nil, err
	}
	materials := make([]RecipeMaterial, 0, len(records))
	for _, rec := range records {
		var m struct {
			Rank  int    `json:"rank"`
			Icon  string `json:"icon"`
			Count int    `json:"count"`
		}
		if err := json.Unmarshal(rec.Raw, &m); err != nil {
			return nil, err
		}
		materials = append(materials, RecipeMaterial{
			ID:     rec.ID,
			Rarity: m.Rank,
			Icon:   iconURL("item", m.Icon),
			Amount: m.Count,
		})
	}
	return materials, nil
}

// ItemSource describes where an item can be obtained.
type ItemSource struct {
	Description string
	Recipes     []Recipe
}

func (s *ItemSource) UnmarshalJSON(data []byte) error {
	var raw struct {
		Description string   `json:"description"`
		Recipe      []Recipe `json:"recipe"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("item source", "", err)
	}

	s.Description = FormatString(raw.Description)
	s.Recipes = raw.Recipe
	if s.Recipes == nil {
		s.Recipes = []Recipe{}
	}
	return nil
}

// ItemType pairs an item type code with its display name.
type ItemType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Item is the summary record of an inventory item.
type Item struct {
	ID     int
	Name   string
	Beta   bool
	Rarity int
	Type   int
	Tags   []string
	Icon   string
	Route  string
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int      `json:"id"`
		Name  string   `json:"name"`
		Beta  bool     `json:"beta"`
		Rank  int      `json:"rank"`
		Type  int      `json:"type"`
		Tags  []string `json:"tags"`
		Icon  string   `json:"icon"`
		Route string   `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("item", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("item", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("item", "icon", nil)
	}

	i.ID = raw.ID
	i.Name = FormatString(raw.Name)
	i.Beta = raw.Beta
	i.Rarity = raw.Rank
	i.Type = raw.Type
	i.Tags = stringsOrEmpty(raw.Tags)
	i.Icon = iconURL("item", raw.Icon)
	i.Route = raw.Route
	return nil
}

// ItemDetail is the detail record of an item, including its sources.
type ItemDetail struct {
	ID          int
	Name        string
	Beta        bool
	Rarity      int
	Tags        []string
	Icon        string
	Route       string
	Description string
	Story       *string
	Sources     []ItemSource
}

func (i *ItemDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int          `json:"id"`
		Name        string       `json:"name"`
		Beta        bool         `json:"beta"`
		Rank        int          `json:"rank"`
		Tags        []string     `json:"tags"`
		Icon        string       `json:"icon"`
		Route       string       `json:"route"`
		Description string       `json:"description"`
		Story       *string      `json:"story"`
		Source      []ItemSource `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("item detail", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("item detail", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("item detail", "icon", nil)
	}

	i.ID = raw.ID
	i.Name = FormatString(raw.Name)
	i.Beta = raw.Beta
	i.Rarity = raw.Rank
	i.Tags = stringsOrEmpty(raw.Tags)
	i.Icon = iconURL("item", raw.Icon)
	i.Route = raw.Route
	i.Description = FormatString(raw.Description)
	if raw.Story != nil {
		story := FormatString(*raw.Story)
		i.Story = &story
	}
	i.Sources = raw.Source
	if i.Sources == nil {
		i.Sources = []ItemSource{}
	}
	return nil
}
