package generator

import "github.com/assetsym/assetsym/internal/symbols"

func renderSwift(table *symbols.Table) ([]byte, error) {
	data := struct {
		Colors []symbols.Symbol
		Images []symbols.Symbol
	}{
		Colors: table.Colors(),
		Images: table.Images(),
	}
	return executeTemplate("swift.tmpl", data)
}
