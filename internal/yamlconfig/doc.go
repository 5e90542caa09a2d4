// Package yamlconfig provides the YAML implementation of the config.Loader
// interface. Files are decoded into DTOs with gopkg.in/yaml.v3 and then
// mapped onto the format-agnostic config.Model.
package yamlconfig
