package yatta

import (
	"encoding/json"
	"strings"
)

// LightConeAscensionMaterial is one material required across light cone
// ascensions, keyed by item ID in the payload.
type LightConeAscensionMaterial struct {
	ID     int
	Rarity int
}

// LightConeSkill is the passive skill of a light cone. Params hold the
// per-superimposition-level values referenced by the description.
type LightConeSkill struct {
	Name        string
	Description string
	Params      map[string][]Number
}

func (s *LightConeSkill) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string              `json:"name"`
		Description string              `json:"description"`
		Params      map[string][]Number `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("light cone skill", "", err)
	}

	s.Name = FormatString(raw.Name)
	s.Description = FormatString(raw.Description)
	s.Params = raw.Params
	return nil
}

// LightConeCostItem is an item and amount required for a light cone
// upgrade.
type LightConeCostItem struct {
	ID     int
	Amount int
}

// LightConeUpgrade describes one ascension rank of a light cone.
type LightConeUpgrade struct {
	Level               int
	CostItems           []LightConeCostItem
	MaxLevel            int
	RequiredPlayerLevel int
	RequiredWorldLevel  int
	SkillBase           map[string]Number
	SkillAdd            map[string]Number
}

func (u *LightConeUpgrade) UnmarshalJSON(data []byte) error {
	var raw struct {
		Level              int               `json:"level"`
		CostItems          json.RawMessage   `json:"costItems"`
		MaxLevel           int               `json:"maxLevel"`
		PlayerLevelRequire *int              `json:"playerLevelRequire"`
		WorldLevelRequire  *int              `json:"worldLevelRequire"`
		SkillBase          map[string]Number `json:"skillBase"`
		SkillAdd           map[string]Number `json:"skillAdd"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("light cone upgrade", "", err)
	}

	records, err := keyedRecords(raw.CostItems)
	if err != nil {
		return payloadErr("light cone upgrade", "costItems", err)
	}
	costItems := make([]LightConeCostItem, 0, len(records))
	for _, rec := range records {
		var amount int
		if err := json.Unmarshal(rec.Raw, &amount); err != nil {
			return payloadErr("light cone upgrade", "costItems", err)
		}
		costItems = append(costItems, LightConeCostItem{ID: rec.ID, Amount: amount})
	}

	u.Level = raw.Level
	u.CostItems = costItems
	u.MaxLevel = raw.MaxLevel
	u.RequiredPlayerLevel = intOrZero(raw.PlayerLevelRequire)
	u.RequiredWorldLevel = intOrZero(raw.WorldLevelRequire)
	u.SkillBase = raw.SkillBase
	u.SkillAdd = raw.SkillAdd
	return nil
}

// LightConePathType pairs the internal path identifier with its display
// name.
type LightConePathType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LightCone is the summary record of a light cone.
type LightCone struct {
	ID         int
	Name       string
	Beta       bool
	Rarity     int
	Icon       string
	Type       PathType
	IsSellable bool
	Route      string
}

func (lc *LightCone) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Beta  bool   `json:"beta"`
		Rank  int    `json:"rank"`
		Icon  string `json:"icon"`
		Types struct {
			PathType PathType `json:"pathType"`
		} `json:"types"`
		IsSellable bool   `json:"isSellable"`
		Route      string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("light cone", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("light cone", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("light cone", "icon", nil)
	}

	lc.ID = raw.ID
	lc.Name = FormatString(raw.Name)
	lc.Beta = raw.Beta
	lc.Rarity = raw.Rank
	lc.Icon = iconURL("equipment", raw.Icon)
	lc.Type = raw.Types.PathType
	lc.IsSellable = raw.IsSellable
	lc.Route = raw.Route
	return nil
}

// MediumIcon returns the medium-sized icon URL, derived from the base icon
// by path segment substitution.
func (lc *LightCone) MediumIcon() string {
	return strings.Replace(lc.Icon, "equipment", "equipment/medium", 1)
}

// LargeIcon returns the large icon URL.
func (lc *LightCone) LargeIcon() string {
	return strings.Replace(lc.Icon, "equipment", "equipment/large", 1)
}

// LightConeDetail is the detail record of a light cone.
type LightConeDetail struct {
	ID                 int
	Name               string
	Beta               bool
	Rarity             int
	Type               LightConePathType
	Icon               string
	IsSellable         bool
	Route              string
	Description        string
	Upgrades           []LightConeUpgrade
	Skill              LightConeSkill
	AscensionMaterials []LightConeAscensionMaterial
}

func (lc *LightConeDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Beta  bool   `json:"beta"`
		Rank  int    `json:"rank"`
		Types struct {
			PathType LightConePathType `json:"pathType"`
		} `json:"types"`
		Icon        string             `json:"icon"`
		IsSellable  bool               `json:"isSellable"`
		Route       string             `json:"route"`
		Description string             `json:"description"`
		Upgrade     []LightConeUpgrade `json:"upgrade"`
		Skill       LightConeSkill     `json:"skill"`
		Ascension   json.RawMessage    `json:"ascension"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("light cone detail", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("light cone detail", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("light cone detail", "icon", nil)
	}

	records, err := keyedRecords(raw.Ascension)
	if err != nil {
		return payloadErr("light cone detail", "ascension", err)
	}
	materials := make([]LightConeAscensionMaterial, 0, len(records))
	for _, rec := range records {
		var rarity int
		if err := json.Unmarshal(rec.Raw, &rarity); err != nil {
			return payloadErr("light cone detail", "ascension", err)
		}
		materials = append(materials, LightConeAscensionMaterial{ID: rec.ID, Rarity: rarity})
	}

	lc.ID = raw.ID
	lc.Name = FormatString(raw.Name)
	lc.Beta = raw.Beta
	lc.Rarity = raw.Rank
	lc.Type = raw.Types.PathType
	lc.Icon = iconURL("equipment", raw.Icon)
	lc.IsSellable = raw.IsSellable
	lc.Route = raw.Route
	lc.Description = FormatString(raw.Description)
	lc.Upgrades = raw.Upgrade
	lc.Skill = raw.Skill
	lc.AscensionMaterials = materials
	return nil
}

// MediumIcon returns the medium-sized icon URL.
func (lc *LightConeDetail) MediumIcon() string {
	return strings.Replace(lc.Icon, "equipment", "equipment/medium", 1)
}

// LargeIcon returns the large icon URL.
func (lc *LightConeDetail) LargeIcon() string {
	return strings.Replace(lc.Icon, "equipment", "equipment/large", 1)
}
