package generator

import (
	"fmt"
	"go/format"

	"github.com/assetsym/assetsym/internal/symbols"
)

// renderGo renders a Go file declaring one string constant per symbol,
// formatted with gofmt rules.
func renderGo(table *symbols.Table, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = "assets"
	}
	data := struct {
		Package string
		Colors  []symbols.Symbol
		Images  []symbols.Symbol
	}{
		Package: pkg,
		Colors:  table.Colors(),
		Images:  table.Images(),
	}

	src, err := executeTemplate("go.tmpl", data)
	if err != nil {
		return nil, err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated Go source: %w", err)
	}
	return formatted, nil
}
