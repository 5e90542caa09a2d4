// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses settings files with hclparse, decodes their blocks with gohcl and
// normalises answer values through cty conversion.
package hcl
