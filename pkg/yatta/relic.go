package yatta

import "encoding/json"

// Relic is a single relic piece. Pos is the equip slot the piece belongs
// to, taken from the map key of the detail payload.
type Relic struct {
	Pos         string
	Name        string
	Description string
	Story       string
	Icon        string
}

// SetEffect is a 2-piece or 4-piece relic set effect with its description
// already substituted from the effect params.
type SetEffect struct {
	Params      map[string][]Number
	Description string
}

func (e *SetEffect) UnmarshalJSON(data []byte) error {
	var raw struct {
		Params      map[string][]Number `json:"params"`
		Description string              `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("set effect", "", err)
	}

	e.Params = raw.Params
	e.Description = ReplaceNamedPlaceholders(FormatString(raw.Description), raw.Params)
	return nil
}

// SetEffects holds the 2-piece effect and the optional 4-piece effect.
type SetEffects struct {
	TwoPiece  SetEffect  `json:"2"`
	FourPiece *SetEffect `json:"4"`
}

// RelicSet is the summary record of a relic set.
type RelicSet struct {
	ID           int
	Name         string
	Beta         bool
	Icon         string
	RarityList   []int
	IsPlanarSuit bool
	Route        string
}

func (r *RelicSet) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Beta         bool   `json:"beta"`
		Icon         string `json:"icon"`
		LevelList    []int  `json:"levelList"`
		IsPlanarSuit bool   `json:"isPlanarSuit"`
		Route        string `json:"route"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("relic set", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("relic set", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("relic set", "icon", nil)
	}

	r.ID = raw.ID
	r.Name = FormatString(raw.Name)
	r.Beta = raw.Beta
	r.Icon = iconURL("relic", raw.Icon)
	r.RarityList = raw.LevelList
	r.IsPlanarSuit = raw.IsPlanarSuit
	r.Route = raw.Route
	return nil
}

// RelicSetDetail is the detail record of a relic set, including its set
// effects and the individual pieces keyed by equip position.
type RelicSetDetail struct {
	ID           int
	Name         string
	Icon         string
	RarityList   []int
	IsPlanarSuit bool
	Route        string
	Beta         bool
	SetEffects   SetEffects
	Relics       []Relic
}

func (r *RelicSetDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int             `json:"id"`
		Name         string          `json:"name"`
		Icon         string          `json:"icon"`
		LevelList    []int           `json:"levelList"`
		IsPlanarSuit bool            `json:"isPlanarSuit"`
		Route        string          `json:"route"`
		Beta         bool            `json:"beta"`
		SkillList    json.RawMessage `json:"skillList"`
		Suite        json.RawMessage `json:"suite"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("relic set detail", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("relic set detail", "id", nil)
	}
	if isJSONNull(raw.SkillList) {
		return payloadErr("relic set detail", "skillList", nil)
	}

	var effects SetEffects
	if err := json.Unmarshal(raw.SkillList, &effects); err != nil {
		return err
	}

	records, err := namedRecords(raw.Suite)
	if err != nil {
		return payloadErr("relic set detail", "suite", err)
	}
	relics := make([]Relic, 0, len(records))
	for _, rec := range records {
		var piece struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Story       string `json:"story"`
			Icon        string `json:"icon"`
		}
		if err := json.Unmarshal(rec.Raw, &piece); err != nil {
			return payloadErr("relic", rec.Key, err)
		}
		relics = append(relics, Relic{
			Pos:         rec.Key,
			Name:        FormatString(piece.Name),
			Description: FormatString(piece.Description),
			Story:       FormatString(piece.Story),
			Icon:        iconURL("relic", piece.Icon),
		})
	}

	r.ID = raw.ID
	r.Name = FormatString(raw.Name)
	r.Icon = iconURL("relic", raw.Icon)
	r.RarityList = raw.LevelList
	r.IsPlanarSuit = raw.IsPlanarSuit
	r.Route = raw.Route
	r.Beta = raw.Beta
	r.SetEffects = effects
	r.Relics = relics
	return nil
}
