package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// Loader reads translation bundles from disk. The expected layout is one
// JSON document per (locale, namespace) pair: <root>/<locale>/<namespace>.json.
type Loader struct {
	path string
}

// NewLoader constructs a loader that reads the provided directory.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses every namespace file under the configured directory.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("i18n: loader path cannot be empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return LoadFS(os.DirFS(l.path))
}

// LoadFS builds a bundle from a filesystem whose top-level directories are
// locale codes. A locale directory with no JSON files still registers the
// locale so incomplete languages resolve through the fallback chain instead
// of failing.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read bundle root: %w", err)
	}

	bundle := NewBundle()
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		files, err := fs.ReadDir(fsys, locale)
		if err != nil {
			return nil, fmt.Errorf("i18n: read locale dir %q: %w", locale, err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
				continue
			}
			namespace := strings.TrimSuffix(file.Name(), ".json")
			data, err := fs.ReadFile(fsys, path.Join(locale, file.Name()))
			if err != nil {
				return nil, fmt.Errorf("i18n: read namespace %s/%s: %w", locale, namespace, err)
			}
			doc := map[string]any{}
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("i18n: parse namespace %s/%s: %w", locale, namespace, err)
			}
			bundle.AddNamespace(locale, namespace, doc)
		}
	}
	return bundle, nil
}
