package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// setKinds maps asset folder extensions to the kind of symbol they produce.
var setKinds = map[string]Kind{
	".imageset": KindImage,
	".colorset": KindColor,
}

// skippedSets are asset folders that never produce a symbol and are not
// walked into.
var skippedSets = map[string]bool{
	".appiconset":      true,
	".arimageset":      true,
	".arresourcegroup": true,
	".brandassets":     true,
	".cubetextureset":  true,
	".dataset":         true,
	".imagestack":      true,
	".launchimage":     true,
	".mipmapset":       true,
	".symbolset":       true,
	".textureset":      true,
}

// folderContents is the subset of a folder's Contents.json that matters here.
type folderContents struct {
	Properties struct {
		ProvidesNamespace bool `json:"provides-namespace"`
	} `json:"properties"`
}

// ReadAssetCatalog walks an .xcassets directory and returns one entry per
// image set and color set, sorted by kind and key.
// Folders whose Contents.json sets "provides-namespace" prefix the keys of
// everything below them with "<folder>/".
func ReadAssetCatalog(root string) ([]Entry, error) {
	namespaces := map[string]string{root: ""}
	var entries []Entry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}

		ns := namespaces[filepath.Dir(path)]
		ext := filepath.Ext(d.Name())
		stem := strings.TrimSuffix(d.Name(), ext)

		if kind, ok := setKinds[ext]; ok {
			key := ns + stem
			entries = append(entries, Entry{Name: key, Key: key, Kind: kind, Source: path})
			return filepath.SkipDir
		}
		if skippedSets[ext] {
			slog.Debug("skipping asset set without symbol", "path", path)
			return filepath.SkipDir
		}

		provides, err := providesNamespace(path)
		if err != nil {
			return err
		}
		if provides {
			namespaces[path] = ns + d.Name() + "/"
		} else {
			namespaces[path] = ns
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read asset catalog %s: %w", root, err)
	}

	sortEntries(entries)
	slog.Debug("read asset catalog", "path", root, "entries", len(entries))
	return entries, nil
}

func providesNamespace(dir string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, "Contents.json"))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var c folderContents
	if err := json.Unmarshal(data, &c); err != nil {
		return false, fmt.Errorf("invalid %s: %w", filepath.Join(dir, "Contents.json"), err)
	}
	return c.Properties.ProvidesNamespace, nil
}
