// Package symbols turns asset catalog entries into a table of generated
// identifiers.
package symbols

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/assetsym/assetsym/internal/catalog"
)

// Policy decides what happens when two entries map to the same identifier.
type Policy string

const (
	// PolicyFail aborts with a CollisionError.
	PolicyFail Policy = "fail"
	// PolicySuffix appends 2, 3, ... to later entries in catalog key order.
	PolicySuffix Policy = "suffix"
)

// DefaultPrefix is the namespace token the asset catalog compiler uses.
const DefaultPrefix = "AC"

// Options configures identifier generation.
type Options struct {
	// Prefix is prepended to every identifier. Defaults to DefaultPrefix.
	Prefix string
	// Collisions is the collision policy. Defaults to PolicyFail.
	Collisions Policy
}

// Symbol is one generated constant.
type Symbol struct {
	// LogicalName is the display name the identifier was derived from.
	LogicalName string
	// CatalogKey is the runtime lookup key, copied verbatim from the entry.
	CatalogKey string
	// Kind is the resource kind.
	Kind catalog.Kind
	// Identifier is the namespaced constant name, e.g. ACImageNameMuseumMap8K.
	Identifier string
	// SwiftName is the lower-camel member name, e.g. museumMap8K.
	SwiftName string
}

// Table is the ordered symbol set of one generation run.
type Table struct {
	Symbols []Symbol
}

// Of returns the symbols of one kind, in table order.
func (t *Table) Of(kind catalog.Kind) []Symbol {
	var out []Symbol
	for _, s := range t.Symbols {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Images returns the image symbols.
func (t *Table) Images() []Symbol { return t.Of(catalog.KindImage) }

// Colors returns the color symbols.
func (t *Table) Colors() []Symbol { return t.Of(catalog.KindColor) }

// Len returns the number of symbols.
func (t *Table) Len() int { return len(t.Symbols) }

// Namespace returns the identifier prefix for a kind, e.g. "ACImageName".
func Namespace(prefix string, kind catalog.Kind) string {
	k := string(kind)
	if k == "" {
		return prefix + "Name"
	}
	return prefix + strings.ToUpper(k[:1]) + k[1:] + "Name"
}

// Build validates entries and computes the symbol table.
//
// The table is ordered by kind (colors first) and then by catalog key, so the
// result does not depend on the order entries were read in. Identifiers and
// Swift names are unique per kind. Any invalid entry or unresolved collision
// fails the whole build.
func Build(entries []catalog.Entry, opts Options) (*Table, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	if opts.Collisions == "" {
		opts.Collisions = PolicyFail
	}
	if opts.Collisions != PolicyFail && opts.Collisions != PolicySuffix {
		return nil, fmt.Errorf("unknown collision policy: %s (allowed: fail, suffix)", opts.Collisions)
	}

	sorted := make([]catalog.Entry, len(entries))
	copy(sorted, entries)

	seenKeys := make(map[catalog.Kind]map[string]catalog.Entry)
	for i, e := range sorted {
		if e.Key == "" {
			e.Key = e.Name
			sorted[i] = e
		}
		if err := validate(e); err != nil {
			return nil, err
		}
		if seenKeys[e.Kind] == nil {
			seenKeys[e.Kind] = make(map[string]catalog.Entry)
		}
		if prev, ok := seenKeys[e.Kind][e.Key]; ok {
			return nil, &ValidationError{
				Name:   e.Name,
				Source: e.Source,
				Reason: fmt.Sprintf("duplicate %s key %q (also declared by %q)", e.Kind, e.Key, prev.Name),
			}
		}
		seenKeys[e.Kind][e.Key] = e
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind < sorted[j].Kind
		}
		return sorted[i].Key < sorted[j].Key
	})

	table := &Table{Symbols: make([]Symbol, 0, len(sorted))}
	owners := make(map[string]string)

	// claims returns the names a candidate would occupy: its identifier and
	// its per-kind Swift member.
	claims := func(kind catalog.Kind, ns, base string) (string, string) {
		return ns + base, string(kind) + "." + SwiftName(base)
	}

	for _, e := range sorted {
		ns := Namespace(opts.Prefix, e.Kind)
		base := Sanitize(e.Name)

		id, swift := claims(e.Kind, ns, base)
		if owner, taken := firstOwner(owners, id, swift); taken {
			if opts.Collisions == PolicyFail {
				return nil, &CollisionError{Identifier: id, First: owner, Second: e.Name}
			}
			for n := 2; taken; n++ {
				base = Sanitize(e.Name) + strconv.Itoa(n)
				id, swift = claims(e.Kind, ns, base)
				_, taken = firstOwner(owners, id, swift)
			}
			slog.Warn("identifier collision resolved with suffix", "name", e.Name, "identifier", id)
		}
		owners[id] = e.Name
		owners[swift] = e.Name

		table.Symbols = append(table.Symbols, Symbol{
			LogicalName: e.Name,
			CatalogKey:  e.Key,
			Kind:        e.Kind,
			Identifier:  id,
			SwiftName:   SwiftName(base),
		})
	}

	return table, nil
}

func firstOwner(owners map[string]string, names ...string) (string, bool) {
	for _, n := range names {
		if owner, ok := owners[n]; ok {
			return owner, true
		}
	}
	return "", false
}

func validate(e catalog.Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return &ValidationError{Name: e.Name, Source: e.Source, Reason: "display name is empty"}
	}
	switch e.Kind {
	case catalog.KindImage, catalog.KindColor:
	default:
		return &ValidationError{Name: e.Name, Source: e.Source, Reason: fmt.Sprintf("unknown kind %q", e.Kind)}
	}
	for _, r := range e.Key {
		if unicode.IsControl(r) {
			return &ValidationError{Name: e.Name, Source: e.Source, Reason: "catalog key contains control characters"}
		}
	}
	if Sanitize(e.Name) == "" {
		return &ValidationError{Name: e.Name, Source: e.Source, Reason: "display name has no identifier characters"}
	}
	return nil
}
