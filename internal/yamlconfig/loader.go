package yamlconfig

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every YAML file found under paths and merges them into a
// single model. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files := []string{path}
		if info.IsDir() {
			if files, err = fsutil.FindFilesByExtension(path, l.Extensions()...); err != nil {
				return nil, err
			}
		}
		for _, file := range files {
			part, err := loadFile(file)
			if err != nil {
				return nil, err
			}
			model.Merge(part)
			logger.Debug("Loaded settings from YAML file.", "file", file)
		}
	}
	return model, nil
}

func loadFile(path string) (*config.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
	}

	var dto yamlFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	return mapFile(path, dto)
}
