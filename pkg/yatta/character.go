package yatta

import (
	"encoding/json"
	"strings"
	"time"
)

// CharacterStory is one section of a character's profile lore.
type CharacterStory struct {
	Title string
	Text  string
}

func (s *CharacterStory) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character story", "", err)
	}
	s.Title = FormatString(raw.Title)
	s.Text = FormatString(raw.Text)
	return nil
}

// CharacterVoice is one voice line with its trigger title.
type CharacterVoice struct {
	Title string
	Text  string
	Audio *int
}

func (v *CharacterVoice) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title string `json:"title"`
		Text  string `json:"text"`
		Audio *int   `json:"audio"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character voice", "", err)
	}
	v.Title = FormatString(raw.Title)
	v.Text = FormatString(raw.Text)
	v.Audio = raw.Audio
	return nil
}

// CharacterScript bundles a character's stories and voice lines.
type CharacterScript struct {
	Stories []CharacterStory
	Voices  []CharacterVoice
}

func (s *CharacterScript) UnmarshalJSON(data []byte) error {
	var raw struct {
		Story []CharacterStory `json:"story"`
		Voice []CharacterVoice `json:"voice"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character script", "", err)
	}
	s.Stories = raw.Story
	if s.Stories == nil {
		s.Stories = []CharacterStory{}
	}
	s.Voices = raw.Voice
	if s.Voices == nil {
		s.Voices = []CharacterVoice{}
	}
	return nil
}

// AscensionItem is an item and amount required for character ascension.
type AscensionItem struct {
	ID     int
	Amount int
}

// SkillAdd records a skill whose level is raised by an Eidolon.
type SkillAdd struct {
	ID    int
	Level int
}

// CharacterEidolon is a duplicate-unlock upgrade, rank 1 through 6. Its
// description has placeholder tokens substituted from Params.
type CharacterEidolon struct {
	ID                int
	Rank              int
	Name              string
	Params            []Number
	Description       string
	SkillAddLevelList []SkillAdd
	Icon              string
}

func (e *CharacterEidolon) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                int             `json:"id"`
		Rank              int             `json:"rank"`
		Name              string          `json:"name"`
		Params            []Number        `json:"params"`
		Description       string          `json:"description"`
		SkillAddLevelList json.RawMessage `json:"skillAddLevelList"`
		Icon              string          `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("eidolon", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("eidolon", "id", nil)
	}

	records, err := keyedRecords(raw.SkillAddLevelList)
	if err != nil {
		return payloadErr("eidolon", "skillAddLevelList", err)
	}
	skillAdds := make([]SkillAdd, 0, len(records))
	for _, rec := range records {
		var level int
		if err := json.Unmarshal(rec.Raw, &level); err != nil {
			return payloadErr("eidolon", "skillAddLevelList", err)
		}
		skillAdds = append(skillAdds, SkillAdd{ID: rec.ID, Level: level})
	}

	e.ID = raw.ID
	e.Rank = raw.Rank
	e.Name = FormatString(raw.Name)
	e.Params = raw.Params
	// Params must be parsed before the description substitution runs.
	e.Description = ReplaceIndexedPlaceholders(FormatString(raw.Description), raw.Params)
	e.SkillAddLevelList = skillAdds
	e.Icon = iconURL("skill", raw.Icon)
	return nil
}

// SkillPromoteCostItem is an item and amount required to promote a skill.
type SkillPromoteCostItem struct {
	ID     int
	Amount int
}

// SkillPromote is the cost to raise a skill or trace to a target level.
type SkillPromote struct {
	Level     int
	CostItems []SkillPromoteCostItem
}

// StatusBonus is a stat bonus granted by a minor trace node.
type StatusBonus struct {
	Name  string
	Value Number
	Icon  string
}

func (s *StatusBonus) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string `json:"name"`
		Value Number `json:"value"`
		Icon  string `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("status bonus", "", err)
	}
	s.Name = FormatString(raw.Name)
	s.Value = raw.Value
	s.Icon = iconURL("status", raw.Icon)
	return nil
}

// ExtraEffect is a named effect referenced by a skill description.
type ExtraEffect struct {
	Name        string
	Description string
	Icon        string
}

func (e *ExtraEffect) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("extra effect", "", err)
	}
	e.Name = FormatString(raw.Name)
	e.Description = FormatString(raw.Description)
	e.Icon = raw.Icon
	return nil
}

// WeaknessBreak is the toughness damage dealt by a skill.
type WeaknessBreak struct {
	Type  string
	Value int
}

// SkillPoint records skill point or energy interaction of a skill. Value
// is nil when the payload carries no amount for the type.
type SkillPoint struct {
	Type  string
	Value *int
}

// SkillLevel is detailed information about one main combat skill (Basic
// ATK, Skill, Ultimate, Talent) of a trace node.
type SkillLevel struct {
	ID                    int
	Name                  string
	Tag                   *string
	Type                  string
	MaxLevel              int
	SkillPoints           []SkillPoint
	WeaknessBreak         []WeaknessBreak
	Description           *string
	SimplifiedDescription *string
	Traces                []int
	Eidolons              []int
	ExtraEffects          []ExtraEffect
	AttackType            *string
	DamageType            *string
	Icon                  string
	Params                map[string][]Number
}

func (s *SkillLevel) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name              string              `json:"name"`
		Tag               *string             `json:"tag"`
		Type              json.RawMessage     `json:"type"`
		MaxLevel          int                 `json:"maxLevel"`
		SkillPoints       json.RawMessage     `json:"skillPoints"`
		WeaknessBreak     json.RawMessage     `json:"weaknessBreak"`
		Description       *string             `json:"description"`
		DescriptionSimple *string             `json:"descriptionSimple"`
		Traces            []int               `json:"traces"`
		Eidolons          []int               `json:"eidolons"`
		ExtraEffects      []ExtraEffect       `json:"extraEffects"`
		AttackType        *string             `json:"attackType"`
		DamageType        *string             `json:"damageType"`
		Icon              string              `json:"icon"`
		Params            map[string][]Number `json:"params"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("skill", "", err)
	}

	points, err := namedRecords(raw.SkillPoints)
	if err != nil {
		return payloadErr("skill", "skillPoints", err)
	}
	skillPoints := make([]SkillPoint, 0, len(points))
	for _, rec := range points {
		var value *int
		if err := json.Unmarshal(rec.Raw, &value); err != nil {
			return payloadErr("skill", "skillPoints", err)
		}
		skillPoints = append(skillPoints, SkillPoint{Type: rec.Key, Value: value})
	}

	breaks, err := namedRecords(raw.WeaknessBreak)
	if err != nil {
		return payloadErr("skill", "weaknessBreak", err)
	}
	weaknessBreaks := make([]WeaknessBreak, 0, len(breaks))
	for _, rec := range breaks {
		var value int
		if err := json.Unmarshal(rec.Raw, &value); err != nil {
			return payloadErr("skill", "weaknessBreak", err)
		}
		weaknessBreaks = append(weaknessBreaks, WeaknessBreak{Type: rec.Key, Value: value})
	}

	s.Name = FormatString(raw.Name)
	s.Tag = raw.Tag
	s.Type = coerceString(raw.Type)
	s.MaxLevel = raw.MaxLevel
	s.SkillPoints = skillPoints
	s.WeaknessBreak = weaknessBreaks
	if raw.Description != nil {
		desc := FormatString(*raw.Description)
		s.Description = &desc
	}
	if raw.DescriptionSimple != nil {
		desc := FormatString(*raw.DescriptionSimple)
		s.SimplifiedDescription = &desc
	}
	s.Traces = raw.Traces
	if s.Traces == nil {
		s.Traces = []int{}
	}
	s.Eidolons = raw.Eidolons
	if s.Eidolons == nil {
		s.Eidolons = []int{}
	}
	s.ExtraEffects = raw.ExtraEffects
	if s.ExtraEffects == nil {
		s.ExtraEffects = []ExtraEffect{}
	}
	s.AttackType = raw.AttackType
	s.DamageType = raw.DamageType
	s.Icon = iconURL("skill", raw.Icon)
	s.Params = raw.Params
	return nil
}

// coerceString renders a JSON value that may arrive quoted or as a bare
// number into a string.
func coerceString(data json.RawMessage) string {
	if isJSONNull(data) {
		return ""
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return s
	}
	return string(data)
}

// TraceNode is a node in a character's skill tree: either a main combat
// skill with its per-level skill list, or a minor stat bonus.
type TraceNode struct {
	ID                   int
	Name                 *string
	Description          *string
	PointType            string
	PointPosition        string
	MaxLevel             int
	IsDefault            bool
	AvatarLevelLimit     *int
	AvatarPromotionLimit *int
	SkillList            []SkillLevel
	StatusList           []StatusBonus
	Icon                 string
	Params               map[string][]Number
	Promote              []SkillPromote
}

func (t *TraceNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID                   int                 `json:"id"`
		Name                 *string             `json:"name"`
		Description          *string             `json:"description"`
		PointType            string              `json:"pointType"`
		PointPosition        string              `json:"pointPosition"`
		MaxLevel             int                 `json:"maxLevel"`
		IsDefault            bool                `json:"isDefault"`
		AvatarLevelLimit     *int                `json:"avatarLevelLimit"`
		AvatarPromotionLimit *int                `json:"avatarPromotionLimit"`
		SkillList            json.RawMessage     `json:"skillList"`
		StatusList           []StatusBonus       `json:"statusList"`
		Icon                 string              `json:"icon"`
		Params               map[string][]Number `json:"params"`
		Promote              json.RawMessage     `json:"promote"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("trace node", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("trace node", "id", nil)
	}

	skillRecords, err := keyedRecords(raw.SkillList)
	if err != nil {
		return payloadErr("trace node", "skillList", err)
	}
	skillList := make([]SkillLevel, 0, len(skillRecords))
	for _, rec := range skillRecords {
		var skill SkillLevel
		if err := json.Unmarshal(rec.Raw, &skill); err != nil {
			return err
		}
		skill.ID = rec.ID
		skillList = append(skillList, skill)
	}

	promote, err := decodePromote(raw.Promote)
	if err != nil {
		return payloadErr("trace node", "promote", err)
	}

	t.ID = raw.ID
	if raw.Name != nil {
		name := FormatString(*raw.Name)
		t.Name = &name
	}
	if raw.Description != nil {
		desc := FormatString(*raw.Description)
		t.Description = &desc
	}
	t.PointType = raw.PointType
	t.PointPosition = raw.PointPosition
	t.MaxLevel = raw.MaxLevel
	t.IsDefault = raw.IsDefault
	t.AvatarLevelLimit = raw.AvatarLevelLimit
	t.AvatarPromotionLimit = raw.AvatarPromotionLimit
	t.SkillList = skillList
	t.StatusList = raw.StatusList
	if t.StatusList == nil {
		t.StatusList = []StatusBonus{}
	}
	t.Icon = traceIconURL(raw.Icon)
	t.Params = raw.Params
	t.Promote = promote
	return nil
}

// decodePromote flattens the promote map: target level to an optional
// costItems map keyed by item ID.
func decodePromote(data json.RawMessage) ([]SkillPromote, error) {
	levels, err := keyedRecords(data)
	if err != nil {
		return nil, err
	}
	promote := make([]SkillPromote, 0, len(levels))
	for _, lvl := range levels {
		var entry struct {
			CostItems json.RawMessage `json:"costItems"`
		}
		if err := json.Unmarshal(lvl.Raw, &entry); err != nil {
			return nil, err
		}
		items, err := keyedRecords(entry.CostItems)
		if err != nil {
			return nil, err
		}
		costItems := make([]SkillPromoteCostItem, 0, len(items))
		for _, item := range items {
			var amount int
			if err := json.Unmarshal(item.Raw, &amount); err != nil {
				return nil, err
			}
			costItems = append(costItems, SkillPromoteCostItem{ID: item.ID, Amount: amount})
		}
		promote = append(promote, SkillPromote{Level: lvl.ID, CostItems: costItems})
	}
	return promote, nil
}

// SkillTreeNode is one connectivity entry of a skill tree.
type SkillTreeNode struct {
	ID              int
	PointsDirection *string
	Points          []int
}

func (n *SkillTreeNode) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              int     `json:"id"`
		PointsDirection *string `json:"pointsDirection"`
		Points          []int   `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("skill tree node", "", err)
	}
	n.ID = raw.ID
	n.PointsDirection = raw.PointsDirection
	n.Points = raw.Points
	if n.Points == nil {
		n.Points = []int{}
	}
	return nil
}

// SkillTree is one of a character's skill trees with its connectivity.
type SkillTree struct {
	ID   int
	Type string
	Tree []SkillTreeNode
}

func (t *SkillTree) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   int             `json:"id"`
		Type string          `json:"type"`
		Tree json.RawMessage `json:"tree"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("skill tree", "", err)
	}

	records, err := namedRecords(raw.Tree)
	if err != nil {
		return payloadErr("skill tree", "tree", err)
	}
	tree := make([]SkillTreeNode, 0, len(records))
	for _, rec := range records {
		var node SkillTreeNode
		if err := json.Unmarshal(rec.Raw, &node); err != nil {
			return err
		}
		tree = append(tree, node)
	}

	t.ID = raw.ID
	t.Type = raw.Type
	t.Tree = tree
	return nil
}

// CharacterTraces bundles a character's main skills, minor traces, and the
// skill tree connectivity.
type CharacterTraces struct {
	MainSkills []TraceNode
	SubSkills  []TraceNode
	TreeSkills []SkillTree
}

func (c *CharacterTraces) UnmarshalJSON(data []byte) error {
	var raw struct {
		MainSkills json.RawMessage `json:"mainSkills"`
		SubSkills  json.RawMessage `json:"subSkills"`
		SkillsTree json.RawMessage `json:"skillsTree"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character traces", "", err)
	}

	mains, err := traceNodes(raw.MainSkills)
	if err != nil {
		return payloadErr("character traces", "mainSkills", err)
	}
	subs, err := traceNodes(raw.SubSkills)
	if err != nil {
		return payloadErr("character traces", "subSkills", err)
	}

	treeRecords, err := keyedRecords(raw.SkillsTree)
	if err != nil {
		return payloadErr("character traces", "skillsTree", err)
	}
	trees := make([]SkillTree, 0, len(treeRecords))
	for _, rec := range treeRecords {
		var tree SkillTree
		if err := json.Unmarshal(rec.Raw, &tree); err != nil {
			return err
		}
		trees = append(trees, tree)
	}

	c.MainSkills = mains
	c.SubSkills = subs
	c.TreeSkills = trees
	return nil
}

func traceNodes(data json.RawMessage) ([]TraceNode, error) {
	records, err := keyedRecords(data)
	if err != nil {
		return nil, err
	}
	nodes := make([]TraceNode, 0, len(records))
	for _, rec := range records {
		var node TraceNode
		if err := json.Unmarshal(rec.Raw, &node); err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// CharacterCostItem is an item and amount required for a character level
// upgrade.
type CharacterCostItem struct {
	ID     int
	Amount int
}

// CharacterUpgrade describes one ascension rank of a character.
type CharacterUpgrade struct {
	Level               int
	CostItems           []CharacterCostItem
	MaxLevel            int
	RequiredPlayerLevel int
	RequiredWorldLevel  int
	SkillBase           map[string]Number
	SkillAdd            map[string]Number
}

func (u *CharacterUpgrade) UnmarshalJSON(data []byte) error {
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
		return payloadErr("character upgrade", "", err)
	}

	records, err := keyedRecords(raw.CostItems)
	if err != nil {
		return payloadErr("character upgrade", "costItems", err)
	}
	costItems := make([]CharacterCostItem, 0, len(records))
	for _, rec := range records {
		var amount int
		if err := json.Unmarshal(rec.Raw, &amount); err != nil {
			return payloadErr("character upgrade", "costItems", err)
		}
		costItems = append(costItems, CharacterCostItem{ID: rec.ID, Amount: amount})
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

// VoiceActor names the voice actor for one language.
type VoiceActor struct {
	Lang string
	Name string
}

// CharacterInfo is the fetter block: faction, profile description, and
// voice actors per language.
type CharacterInfo struct {
	Faction     *string
	Description string
	VoiceActors []VoiceActor
}

func (i *CharacterInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		Faction     *string           `json:"faction"`
		Description string            `json:"description"`
		CV          map[string]string `json:"cv"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character info", "", err)
	}

	actors := make([]VoiceActor, 0, len(raw.CV))
	for _, lang := range sortedStringKeys(raw.CV) {
		actors = append(actors, VoiceActor{Lang: lang, Name: raw.CV[lang]})
	}

	i.Faction = raw.Faction
	i.Description = FormatString(raw.Description)
	i.VoiceActors = actors
	return nil
}

// CharacterDetailType pairs an internal path or combat type identifier
// with its display name.
type CharacterDetailType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CharacterDetailTypes holds the path and combat type of a character
// detail record.
type CharacterDetailTypes struct {
	PathType   CharacterDetailType `json:"pathType"`
	CombatType CharacterDetailType `json:"combatType"`
}

// CharacterType holds the path and combat type codes of a character
// summary record.
type CharacterType struct {
	PathType   PathType   `json:"pathType"`
	CombatType CombatType `json:"combatType"`
}

// Character is the summary record of a playable character.
type Character struct {
	ID        int
	Name      string
	Rarity    int
	Icon      string
	Types     CharacterType
	Route     string
	Beta      bool
	ReleaseAt *time.Time
}

func (c *Character) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      int           `json:"id"`
		Name    string        `json:"name"`
		Rank    int           `json:"rank"`
		Icon    string        `json:"icon"`
		Types   CharacterType `json:"types"`
		Route   string        `json:"route"`
		Beta    bool          `json:"beta"`
		Release int64         `json:"release"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("character", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("character", "icon", nil)
	}

	c.ID = raw.ID
	c.Name = FormatString(raw.Name)
	c.Rarity = raw.Rank
	c.Icon = iconURL("avatar", raw.Icon)
	c.Types = raw.Types
	c.Route = raw.Route
	c.Beta = raw.Beta
	c.ReleaseAt = releaseTime(raw.Release)
	return nil
}

// MediumIcon returns the medium-sized avatar icon URL.
func (c *Character) MediumIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/medium", 1)
}

// LargeIcon returns the full splash art URL.
func (c *Character) LargeIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/large", 1)
}

// RoundIcon returns the round avatar icon URL.
func (c *Character) RoundIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/round", 1)
}

// CharacterDetail is the detail record of a playable character.
type CharacterDetail struct {
	ID        int
	Name      string
	Beta      bool
	Rarity    int
	Types     CharacterDetailTypes
	Icon      string
	ReleaseAt *time.Time
	Route     string
	Info      CharacterInfo
	Upgrades  []CharacterUpgrade
	Traces    CharacterTraces
	Eidolons  []CharacterEidolon
	Ascension []AscensionItem
	Script    CharacterScript
}

func (c *CharacterDetail) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int                  `json:"id"`
		Name      string               `json:"name"`
		Beta      bool                 `json:"beta"`
		Rank      int                  `json:"rank"`
		Types     CharacterDetailTypes `json:"types"`
		Icon      string               `json:"icon"`
		Release   int64                `json:"release"`
		Route     string               `json:"route"`
		Fetter    CharacterInfo        `json:"fetter"`
		Upgrade   []CharacterUpgrade   `json:"upgrade"`
		Traces    CharacterTraces      `json:"traces"`
		Eidolons  json.RawMessage      `json:"eidolons"`
		Ascension json.RawMessage      `json:"ascension"`
		Script    CharacterScript      `json:"script"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return payloadErr("character detail", "", err)
	}
	if raw.ID == 0 {
		return payloadErr("character detail", "id", nil)
	}
	if raw.Icon == "" {
		return payloadErr("character detail", "icon", nil)
	}

	eidolonRecords, err := keyedRecords(raw.Eidolons)
	if err != nil {
		return payloadErr("character detail", "eidolons", err)
	}
	eidolons := make([]CharacterEidolon, 0, len(eidolonRecords))
	for _, rec := range eidolonRecords {
		var eidolon CharacterEidolon
		if err := json.Unmarshal(rec.Raw, &eidolon); err != nil {
			return err
		}
		eidolons = append(eidolons, eidolon)
	}

	ascensionRecords, err := keyedRecords(raw.Ascension)
	if err != nil {
		return payloadErr("character detail", "ascension", err)
	}
	ascension := make([]AscensionItem, 0, len(ascensionRecords))
	for _, rec := range ascensionRecords {
		var amount int
		if err := json.Unmarshal(rec.Raw, &amount); err != nil {
			return payloadErr("character detail", "ascension", err)
		}
		ascension = append(ascension, AscensionItem{ID: rec.ID, Amount: amount})
	}

	c.ID = raw.ID
	c.Name = FormatString(raw.Name)
	c.Beta = raw.Beta
	c.Rarity = raw.Rank
	c.Types = raw.Types
	c.Icon = iconURL("avatar", raw.Icon)
	c.ReleaseAt = releaseTime(raw.Release)
	c.Route = raw.Route
	c.Info = raw.Fetter
	c.Upgrades = raw.Upgrade
	c.Traces = raw.Traces
	c.Eidolons = eidolons
	c.Ascension = ascension
	c.Script = raw.Script
	return nil
}

// MediumIcon returns the medium-sized avatar icon URL.
func (c *CharacterDetail) MediumIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/medium", 1)
}

// LargeIcon returns the full splash art URL.
func (c *CharacterDetail) LargeIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/large", 1)
}

// RoundIcon returns the round avatar icon URL.
func (c *CharacterDetail) RoundIcon() string {
	return strings.Replace(c.Icon, "avatar", "avatar/round", 1)
}
