package symbols

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Sanitize turns a display name into the upper-camel-case body of an
// identifier.
//
// Accents are folded away ("Café" -> "Cafe"), every character outside
// [A-Za-z0-9] separates words, and the first letter of each word as well as
// any letter directly after a digit is upper-cased. Other letters keep their
// case, so "MuseumMap-8k" becomes "MuseumMap8K" and
// "myFirstFloor_v03-metric" becomes "MyFirstFloorV03Metric".
// The result is empty when name has no identifier characters at all.
func Sanitize(name string) string {
	var b strings.Builder
	upperNext := true
	var prev rune
	for _, r := range fold(name) {
		if !isIdentRune(r) {
			upperNext = true
			prev = 0
			continue
		}
		if upperNext || (isDigit(prev) && isLetter(r)) {
			r = unicode.ToUpper(r)
		}
		upperNext = false
		prev = r
		b.WriteRune(r)
	}
	return b.String()
}

// fold strips diacritics by decomposing and dropping combining marks.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

func isIdentRune(r rune) bool { return isLetter(r) || isDigit(r) }

// LowerCamel converts a Sanitize result to the lower-camel form used for
// Swift members. A leading acronym is lowered as a whole ("URLIcon" ->
// "urlIcon"), keeping the capital that starts the next word.
func LowerCamel(s string) string {
	rs := []rune(s)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	switch {
	case n == 0:
		return s
	case n > 1 && n < len(rs) && unicode.IsLower(rs[n]):
		n--
	}
	for i := 0; i < n; i++ {
		rs[i] = unicode.ToLower(rs[i])
	}
	return string(rs)
}

// swiftKeywords are reserved in Swift declarations and need backticks.
var swiftKeywords = map[string]bool{
	"associatedtype": true, "class": true, "deinit": true, "enum": true,
	"extension": true, "fileprivate": true, "func": true, "import": true,
	"init": true, "inout": true, "internal": true, "let": true, "open": true,
	"operator": true, "private": true, "precedencegroup": true, "protocol": true,
	"public": true, "rethrows": true, "static": true, "struct": true,
	"subscript": true, "typealias": true, "var": true, "break": true,
	"case": true, "catch": true, "continue": true, "default": true,
	"defer": true, "do": true, "else": true, "fallthrough": true, "for": true,
	"guard": true, "if": true, "in": true, "repeat": true, "return": true,
	"throw": true, "switch": true, "where": true, "while": true, "as": true,
	"false": true, "is": true, "nil": true, "self": true, "super": true,
	"throws": true, "true": true, "try": true, "any": true, "some": true,
}

// SwiftName returns the Swift static member name for a sanitized name.
func SwiftName(sanitized string) string {
	name := LowerCamel(sanitized)
	if name != "" && isDigit([]rune(name)[0]) {
		return "_" + name
	}
	if swiftKeywords[name] {
		return "`" + name + "`"
	}
	return name
}
