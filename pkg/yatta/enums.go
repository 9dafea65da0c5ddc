package yatta

// Language is one of the fixed language codes supported by the API.
type Language string

// Supported API languages
const (
	LangCHT Language = "cht" // Traditional Chinese
	LangCN  Language = "cn"  // Simplified Chinese
	LangDE  Language = "de"  // German
	LangEN  Language = "en"  // English
	LangES  Language = "es"  // Spanish
	LangFR  Language = "fr"  // French
	LangID  Language = "id"  // Indonesian
	LangJP  Language = "jp"  // Japanese
	LangKR  Language = "kr"  // Korean
	LangPT  Language = "pt"  // Portuguese
	LangRU  Language = "ru"  // Russian
	LangTH  Language = "th"  // Thai
	LangVI  Language = "vi"  // Vietnamese
)

// Languages returns all supported language codes.
func Languages() []Language {
	return []Language{
		LangCHT, LangCN, LangDE, LangEN, LangES, LangFR, LangID,
		LangJP, LangKR, LangPT, LangRU, LangTH, LangVI,
	}
}

// IsValid reports whether l is one of the supported language codes.
func (l Language) IsValid() bool {
	for _, lang := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// PathType is a character or light cone path identifier as used by the API.
type PathType string

// Path identifiers. The API uses internal names; the comment gives the
// in-game display name.
const (
	PathKnight  PathType = "Knight"  // Preservation
	PathRogue   PathType = "Rogue"   // The Hunt
	PathMage    PathType = "Mage"    // Erudition
	PathWarlock PathType = "Warlock" // Nihility
	PathWarrior PathType = "Warrior" // Destruction
	PathShaman  PathType = "Shaman"  // Harmony
	PathPriest  PathType = "Priest"  // Abundance
	PathMemory  PathType = "Memory"  // Remembrance
	PathElation PathType = "Elation" // Elation
)

// CombatType is a combat type (element) identifier.
type CombatType string

// Combat type identifiers
const (
	CombatIce       CombatType = "Ice"
	CombatFire      CombatType = "Fire"
	CombatQuantum   CombatType = "Quantum"
	CombatImaginary CombatType = "Imaginary"
	CombatWind      CombatType = "Wind"
	CombatThunder   CombatType = "Thunder"
	CombatPhysical  CombatType = "Physical"
)
