package generator

import (
	"strconv"
	"strings"
	"text/template"
)

// cStringEscaper escapes the characters that end or alter a C-family string
// literal. Keys never hold control characters; symbols.Build rejects them.
var cStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// GetCommonFuncMap returns the template functions shared by every target.
func GetCommonFuncMap() template.FuncMap {
	return template.FuncMap{
		// docQuote quotes a key for doc comments, verbatim.
		"docQuote": func(s string) string {
			return `"` + s + `"`
		},
		"objcQuote": func(s string) string {
			return `"` + cStringEscaper.Replace(s) + `"`
		},
		"swiftQuote": func(s string) string {
			return `"` + cStringEscaper.Replace(s) + `"`
		},
		"goQuote": strconv.Quote,
	}
}
