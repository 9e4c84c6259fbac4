package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCatalog creates an .xcassets tree under dir. Each path ending in a
// set extension becomes a directory with an empty Contents.json; the
// namespaced map marks group folders that provide a namespace.
func writeCatalog(t *testing.T, dir string, sets []string, namespaced map[string]bool) string {
	t.Helper()
	root := filepath.Join(dir, "Assets.xcassets")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Contents.json"), []byte(`{"info":{"version":1,"author":"xcode"}}`), 0644))

	for _, s := range sets {
		p := filepath.Join(root, filepath.FromSlash(s))
		require.NoError(t, os.MkdirAll(p, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(p, "Contents.json"), []byte(`{"info":{"version":1}}`), 0644))
	}
	for group, provides := range namespaced {
		p := filepath.Join(root, filepath.FromSlash(group))
		require.NoError(t, os.MkdirAll(p, 0755))
		body := `{"info":{"version":1}}`
		if provides {
			body = `{"info":{"version":1},"properties":{"provides-namespace":true}}`
		}
		require.NoError(t, os.WriteFile(filepath.Join(p, "Contents.json"), []byte(body), 0644))
	}
	return root
}

func TestReadAssetCatalog(t *testing.T) {
	root := writeCatalog(t, t.TempDir(), []string{
		"myFirstFloor_v03-metric.imageset",
		"MuseumMap-8k.imageset",
		"facing-glyph.imageset",
		"AccentColor.colorset",
		"AppIcon.appiconset",
		"Maps/MuseumMap-thumbnail.imageset",
		"Brand/Logo.imageset",
		"Brand/Tint.colorset",
	}, map[string]bool{
		"Maps":  false,
		"Brand": true,
	})

	entries, err := ReadAssetCatalog(root)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, string(e.Kind)+":"+e.Key)
		assert.Equal(t, e.Key, e.Name)
		assert.NotEmpty(t, e.Source)
	}
	assert.Equal(t, []string{
		"color:AccentColor",
		"color:Brand/Tint",
		"image:Brand/Logo",
		"image:MuseumMap-8k",
		"image:MuseumMap-thumbnail",
		"image:facing-glyph",
		"image:myFirstFloor_v03-metric",
	}, got)
}

func TestReadAssetCatalog_NestedNamespaces(t *testing.T) {
	root := writeCatalog(t, t.TempDir(), []string{
		"Outer/Inner/Icon.imageset",
	}, map[string]bool{
		"Outer":       true,
		"Outer/Inner": true,
	})

	entries, err := ReadAssetCatalog(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Outer/Inner/Icon", entries[0].Key)
}

func TestReadAssetCatalog_InvalidGroupContents(t *testing.T) {
	dir := t.TempDir()
	root := writeCatalog(t, dir, nil, nil)
	group := filepath.Join(root, "Broken")
	require.NoError(t, os.MkdirAll(group, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(group, "Contents.json"), []byte("{"), 0644))

	_, err := ReadAssetCatalog(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Contents.json")
}

func TestParseManifest(t *testing.T) {
	data := []byte(`
images:
  - name: MuseumMap-8k
  - name: Floor plan
    key: floor_plan_v2
colors:
  - name: AccentColor
`)
	entries, err := ParseManifest(data, "assets.yaml")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "AccentColor", Key: "AccentColor", Kind: KindColor, Source: "assets.yaml"},
		{Name: "MuseumMap-8k", Key: "MuseumMap-8k", Kind: KindImage, Source: "assets.yaml"},
		{Name: "Floor plan", Key: "floor_plan_v2", Kind: KindImage, Source: "assets.yaml"},
	}, entries)
}

func TestParseManifest_Empty(t *testing.T) {
	for _, doc := range []string{
		"",
		"images: []\n",
		"images:\ncolors:\n",
		`{"images": null, "colors": []}`,
	} {
		entries, err := ParseManifest([]byte(doc), "empty.yaml")
		require.NoError(t, err, "manifest %q", doc)
		assert.Empty(t, entries, "manifest %q", doc)
	}
}

func TestParseManifest_Invalid(t *testing.T) {
	_, err := ParseManifest([]byte("images:\n  - title: x\n"), "bad.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid manifest bad.yaml")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "assets.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"images":[{"name":"facing-glyph"}]}`), 0644))
	entries, err := Load(jsonPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "facing-glyph", entries[0].Key)

	txtPath := filepath.Join(dir, "assets.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("facing-glyph"), 0644))
	_, err = Load(txtPath)
	assert.ErrorContains(t, err, "unsupported catalog")

	_, err = Load(filepath.Join(dir, "missing.xcassets"))
	assert.ErrorContains(t, err, "failed to open catalog")
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	root := writeCatalog(t, dir, []string{"Logo.imageset"}, nil)
	manifest := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("colors:\n  - name: Tint\n"), 0644))

	entries, err := LoadAll([]string{root, manifest})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, KindImage, entries[0].Kind)
	assert.Equal(t, KindColor, entries[1].Kind)
}
