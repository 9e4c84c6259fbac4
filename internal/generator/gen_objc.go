package generator

import "github.com/assetsym/assetsym/internal/symbols"

// renderObjC renders the Objective-C header. Colors precede images, each
// in catalog key order, as in the asset catalog compiler's header.
func renderObjC(table *symbols.Table) ([]byte, error) {
	ordered := append(table.Colors(), table.Images()...)
	data := struct {
		Symbols []symbols.Symbol
	}{
		Symbols: ordered,
	}
	return executeTemplate("objc.h.tmpl", data)
}
