package catalog

import (
	"fmt"
	"os"

	"github.com/assetsym/assetsym/internal/schema"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML/JSON form of an asset catalog.
//
//	images:
//	  - name: MuseumMap-8k
//	  - name: Floor plan
//	    key: floor_plan_v2
//	colors:
//	  - name: AccentColor
type Manifest struct {
	Images []ManifestEntry `yaml:"images"`
	Colors []ManifestEntry `yaml:"colors"`
}

// ManifestEntry is a single manifest resource. Key defaults to Name.
type ManifestEntry struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// ReadManifest parses the manifest file at path.
func ReadManifest(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return ParseManifest(data, path)
}

// ParseManifest parses manifest data. source is recorded on every entry.
// Entries keep manifest order; colors come before images.
func ParseManifest(data []byte, source string) ([]Entry, error) {
	if err := schema.Validate(schema.Manifest, data); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", source, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", source, err)
	}

	entries := make([]Entry, 0, len(m.Images)+len(m.Colors))
	add := func(kind Kind, list []ManifestEntry) {
		for _, me := range list {
			key := me.Key
			if key == "" {
				key = me.Name
			}
			entries = append(entries, Entry{Name: me.Name, Key: key, Kind: kind, Source: source})
		}
	}
	add(KindColor, m.Colors)
	add(KindImage, m.Images)
	return entries, nil
}
