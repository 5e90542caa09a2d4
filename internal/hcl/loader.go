package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/fsutil"
)

// Extension is the file extension handled by Loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{Extension}
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Inputs  *inputsBlock   `hcl:"inputs,block"`
	Output  *outputBlock   `hcl:"output,block"`
	Packs   []*packBlock   `hcl:"pack,block"`
	Answers []*answerBlock `hcl:"answer,block"`
	Remain  hcl.Body       `hcl:",remain"`
}

type inputsBlock struct {
	Root       string `hcl:"root,optional"`
	TestSuffix string `hcl:"test_suffix,optional"`
	Extension  string `hcl:"extension,optional"`
}

type outputBlock struct {
	CensorPlaceholder string `hcl:"censor_placeholder,optional"`
	Timing            bool   `hcl:"timing,optional"`
}

type packBlock struct {
	Name      string `hcl:"name,label"`
	InputRoot string `hcl:"input_root,optional"`
}

type answerBlock struct {
	Pack  string         `hcl:"pack,label"`
	Day   string         `hcl:"day,label"`
	Unit  string         `hcl:"unit,label"`
	Test  bool           `hcl:"test,optional"`
	Value hcl.Expression `hcl:"value"`
}

// Load parses every .hcl file found under paths and merges their blocks into
// a single model. Paths that do not exist are skipped.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		part, err := l.translate(ctx, &root)
		if err != nil {
			return nil, fmt.Errorf("invalid settings in %s: %w", file, err)
		}
		model.Merge(part)
		logger.Debug("Loaded settings from HCL file.", "file", file)
	}

	logger.Debug("HCL loading complete.", "packs", len(model.Packs), "answers", len(model.Answers))
	return model, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		candidates := []string{path}
		if info.IsDir() {
			candidates, err = fsutil.FindFilesByExtension(path, Extension)
			if err != nil {
				return nil, err
			}
		}
		for _, p := range candidates {
			if _, wasSeen := seen[p]; !wasSeen {
				allFiles = append(allFiles, p)
				seen[p] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
