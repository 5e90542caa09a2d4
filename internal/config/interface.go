package config

import (
	"context"
	"errors"
)

// ErrUnsupportedFormat is returned when no loader handles a file extension.
var ErrUnsupportedFormat = errors.New("config: unsupported settings file format")

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads settings from the given files or directories and translates
	// them into the format-agnostic model. Paths that do not exist are
	// skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
	// Extensions lists the file extensions this loader understands,
	// including the leading dot.
	Extensions() []string
}
