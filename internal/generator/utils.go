package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/assetsym/assetsym/internal/templates"
)

// executeTemplate loads a template, parses it with the common funcMap and
// returns the rendered bytes.
func executeTemplate(tmplName string, data interface{}) ([]byte, error) {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return nil, err
	}

	t, err := template.New(tmplName).Funcs(GetCommonFuncMap()).Parse(tmplContent)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// createTemp is replaced in tests.
var createTemp = os.CreateTemp

// stagedFile is rendered content written next to its destination and not
// yet renamed into place.
type stagedFile struct {
	path string
	tmp  string
}

// stageFile writes data to a temporary file in the directory of path.
func stageFile(path string, data []byte) (stagedFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return stagedFile{}, err
	}

	tmp, err := createTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return stagedFile{}, err
	}
	staged := stagedFile{path: path, tmp: tmp.Name()}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		staged.discard()
		return stagedFile{}, err
	}
	if err := tmp.Close(); err != nil {
		staged.discard()
		return stagedFile{}, err
	}
	if err := os.Chmod(staged.tmp, 0644); err != nil {
		staged.discard()
		return stagedFile{}, err
	}
	return staged, nil
}

// commit renames the staged file over its destination.
func (s stagedFile) commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s stagedFile) discard() {
	os.Remove(s.tmp)
}

// writeFiles stages every file and only then renames them into place. A
// staging failure leaves every destination untouched; readers never see a
// partially written artifact.
func writeFiles(paths []string, data [][]byte) error {
	staged := make([]stagedFile, 0, len(paths))
	discardAll := func() {
		for _, s := range staged {
			s.discard()
		}
	}

	for i, path := range paths {
		s, err := stageFile(path, data[i])
		if err != nil {
			discardAll()
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		staged = append(staged, s)
	}

	for i, s := range staged {
		if err := s.commit(); err != nil {
			for _, rest := range staged[i:] {
				rest.discard()
			}
			return err
		}
	}
	return nil
}
