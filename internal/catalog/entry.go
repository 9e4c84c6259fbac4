// Package catalog reads asset manifest entries from an asset catalog
// directory (.xcassets) or from a YAML/JSON manifest file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Kind is the type of resource an entry names.
type Kind string

const (
	KindImage Kind = "image"
	KindColor Kind = "color"
)

// Kinds lists every kind in the order generated files declare them.
var Kinds = []Kind{KindColor, KindImage}

// Entry is one named resource of an asset catalog.
type Entry struct {
	// Name is the human-readable display name the identifier is derived from.
	Name string
	// Key is the exact name used to look the resource up at runtime.
	Key string
	// Kind is the resource type.
	Kind Kind
	// Source is the file or directory the entry was read from.
	Source string
}

// Load reads the entries of the catalog at path.
// Directories are walked as asset catalogs; files are parsed as manifests
// by extension (.yaml, .yml, .json).
func Load(path string) ([]Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if info.IsDir() {
		return ReadAssetCatalog(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return ReadManifest(path)
	default:
		return nil, fmt.Errorf("unsupported catalog %s (expected an .xcassets directory or a .yaml/.json manifest)", path)
	}
}

// LoadAll reads every catalog in paths and concatenates the entries in order.
func LoadAll(paths []string) ([]Entry, error) {
	var all []Entry
	for _, p := range paths {
		entries, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Key < entries[j].Key
	})
}
