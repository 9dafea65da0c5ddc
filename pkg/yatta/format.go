package yatta

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	markupPattern    = regexp.MustCompile(`<[^>]*>|\{SPRITE_PRESET#[^}]+\}`)
	rubyBeginPattern = regexp.MustCompile(`\{RUBY_B[^}]*\}`)
	femalePattern    = regexp.MustCompile(`\{F#(.*?)\}`)
	malePattern      = regexp.MustCompile(`\{M#(.*?)\}`)
)

// FormatString cleans a human-readable string from the API: HTML-like tags
// and sprite presets are stripped, escaped newlines become real newlines,
// ruby annotation markers are deleted (the annotated text stays visible),
// and gendered pronoun tokens are resolved.
func FormatString(text string) string {
	text = markupPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = removeRubyTags(text)
	return replacePronouns(text)
}

// replacePronouns resolves a {F#female}/{M#male} token pair into
// "female/male". Texts carrying only one of the two tokens pass through
// unchanged; the game data never nests them asymmetrically on purpose.
func replacePronouns(text string) string {
	female := femalePattern.FindStringSubmatch(text)
	male := malePattern.FindStringSubmatch(text)
	if female == nil || male == nil {
		return text
	}

	replacement := female[1] + "/" + male[1]
	text = femalePattern.ReplaceAllLiteralString(text, replacement)
	text = malePattern.ReplaceAllLiteralString(text, "")
	return strings.ReplaceAll(text, "#", "")
}

// removeRubyTags deletes {RUBY_B...} and {RUBY_E#} markers, keeping the
// base text between them.
func removeRubyTags(text string) string {
	text = strings.ReplaceAll(text, "{RUBY_E#}", "")
	return rubyBeginPattern.ReplaceAllString(text, "")
}

// ReplaceIndexedPlaceholders substitutes positional #i[n] tokens with the
// n-th parameter. A '%' immediately following a token marks the value as a
// fraction rendered as a percentage, so it is multiplied by 100 first.
// Parameters without a matching token are ignored; nil params is a no-op.
func ReplaceIndexedPlaceholders(text string, params []Number) string {
	for i, value := range params {
		placeholder := fmt.Sprintf("#i[%d]", i)
		idx := strings.Index(text, placeholder)
		if idx < 0 {
			continue
		}
		if followedByPercent(text, idx+len(placeholder)) {
			value = value.Times(100)
		}
		text = strings.ReplaceAll(text, placeholder, value.String())
	}
	return text
}

// ReplaceNamedPlaceholders substitutes keyed #name[i] tokens with the first
// value of the named parameter list, applying the same percent rule as
// ReplaceIndexedPlaceholders.
func ReplaceNamedPlaceholders(text string, params map[string][]Number) string {
	for key, values := range params {
		if len(values) == 0 {
			continue
		}
		placeholder := fmt.Sprintf("#%s[i]", key)
		idx := strings.Index(text, placeholder)
		if idx < 0 {
			continue
		}
		value := values[0]
		if followedByPercent(text, idx+len(placeholder)) {
			value = value.Times(100)
		}
		text = strings.ReplaceAll(text, placeholder, value.String())
	}
	return text
}

func followedByPercent(text string, pos int) bool {
	return pos < len(text) && text[pos] == '%'
}
