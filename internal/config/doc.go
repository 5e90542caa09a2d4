// Package config defines the format-agnostic settings model for daypack,
// along with the Loader interface used to read settings from files.
//
// The `config.Model` is the single source of truth for input layouts, output
// options and the table of known answers. Concrete loaders for HCL and YAML
// live in separate packages and are combined by MultiLoader.
package config
