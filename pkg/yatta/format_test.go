package yatta

import (
	"testing"
)

func TestFormatStringMarkup(t *testing.T) {
	input := "Deals <b>Fire DMG</b> to a single enemy{SPRITE_PRESET#SPRITE_APOINT_01}."
	expected := "Deals Fire DMG to a single enemy."

	result := FormatString(input)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFormatStringNewlines(t *testing.T) {
	input := `First line.\nSecond line.`
	expected := "First line.\nSecond line."

	result := FormatString(input)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFormatStringRubyTags(t *testing.T) {
	input := "The {RUBY_B#Annotation}Stellaron{RUBY_E#} hunters."
	expected := "The Stellaron hunters."

	result := FormatString(input)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFormatStringPronounsBothPresent(t *testing.T) {
	input := "{F#She} {M#He} boarded the Express."
	expected := "She/He  boarded the Express."

	result := FormatString(input)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFormatStringPronounOnlyFemale(t *testing.T) {
	// A lone pronoun token is left untouched.
	input := "{F#She} boarded the Express."

	result := FormatString(input)
	if result != input {
		t.Errorf("Expected %q, got %q", input, result)
	}
}

func TestFormatStringPronounOnlyMale(t *testing.T) {
	input := "{M#He} boarded the Express."

	result := FormatString(input)
	if result != input {
		t.Errorf("Expected %q, got %q", input, result)
	}
}

func TestFormatStringPronounsStripHashes(t *testing.T) {
	// When both pronoun tokens are present every residual # is removed.
	input := "{F#her}{M#him} rank #1"
	expected := "her/him rank 1"

	result := FormatString(input)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFormatStringIdempotent(t *testing.T) {
	input := "Deals <i>DMG</i>{SPRITE_PRESET#X} to {RUBY_B#note}enemies{RUBY_E#}."

	once := FormatString(input)
	twice := FormatString(once)
	if once != twice {
		t.Errorf("Expected idempotent result, got %q then %q", once, twice)
	}
}

func TestFormatStringEmpty(t *testing.T) {
	if result := FormatString(""); result != "" {
		t.Errorf("Expected empty string, got %q", result)
	}
}

func TestReplaceIndexedPlaceholders(t *testing.T) {
	params := []Number{Int(10), Int(20)}
	input := "Deals DMG equal to #i[0]% of ATK, plus #i[1]."
	expected := "Deals DMG equal to 1000% of ATK, plus 20."

	result := ReplaceIndexedPlaceholders(input, params)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestReplaceIndexedPlaceholdersFloatPercent(t *testing.T) {
	params := []Number{Float(0.24)}
	input := "Increases CRIT Rate by #i[0]%."
	expected := "Increases CRIT Rate by 24%."

	result := ReplaceIndexedPlaceholders(input, params)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestReplaceIndexedPlaceholdersNoParams(t *testing.T) {
	input := "Deals DMG equal to #i[0]% of ATK."

	result := ReplaceIndexedPlaceholders(input, nil)
	if result != input {
		t.Errorf("Expected input unchanged, got %q", result)
	}
}

func TestReplaceNamedPlaceholders(t *testing.T) {
	params := map[string][]Number{
		"f1": {Float(0.12), Float(0.14)},
		"i2": {Int(3)},
	}
	input := "Increases DMG by #f1[i]% for #i2[i] turns."
	expected := "Increases DMG by 12% for 3 turns."

	result := ReplaceNamedPlaceholders(input, params)
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestReplaceNamedPlaceholdersEmptyValues(t *testing.T) {
	params := map[string][]Number{
		"f1": {},
	}
	input := "Increases DMG by #f1[i]%."

	result := ReplaceNamedPlaceholders(input, params)
	if result != input {
		t.Errorf("Expected input unchanged, got %q", result)
	}
}
