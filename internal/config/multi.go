package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/fsutil"
)

// MultiLoader dispatches each settings file to the loader registered for its
// extension and merges the results in path order.
type MultiLoader struct {
	byExt map[string]Loader
	exts  []string
}

// NewMultiLoader builds a MultiLoader from format-specific loaders. Two
// loaders claiming the same extension is a programming error and panics.
func NewMultiLoader(loaders ...Loader) *MultiLoader {
	m := &MultiLoader{byExt: make(map[string]Loader)}
	for _, l := range loaders {
		for _, ext := range l.Extensions() {
			ext = strings.ToLower(ext)
			if _, exists := m.byExt[ext]; exists {
				panic(fmt.Sprintf("loader for extension '%s' already registered", ext))
			}
			m.byExt[ext] = l
			m.exts = append(m.exts, ext)
		}
	}
	return m
}

// Extensions implements Loader.
func (m *MultiLoader) Extensions() []string {
	out := make([]string, len(m.exts))
	copy(out, m.exts)
	return out
}

// Load implements Loader. Directories are searched recursively for files
// with a known extension. An explicitly named file with an unknown extension
// is rejected with ErrUnsupportedFormat.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Settings loader started.", "path_count", len(paths))

	files, err := m.findAllFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered settings files.", "files", files)

	model := NewModel()
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file))
		loader, ok := m.byExt[ext]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, file)
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	logger.Debug("Settings loading complete.", "packs", len(model.Packs), "answers", len(model.Answers))
	return model, nil
}

// findAllFiles expands directories and drops missing or repeated paths.
func (m *MultiLoader) findAllFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		if len(m.exts) == 0 {
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, m.exts...)
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return all, nil
}
