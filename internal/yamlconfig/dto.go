package yamlconfig

import "gopkg.in/yaml.v3"

type yamlFile struct {
	Inputs  *yamlInputs          `yaml:"inputs"`
	Output  *yamlOutput          `yaml:"output"`
	Packs   map[string]*yamlPack `yaml:"packs"`
	Answers []yamlAnswer         `yaml:"answers"`
}

type yamlInputs struct {
	Root       string `yaml:"root"`
	TestSuffix string `yaml:"test_suffix"`
	Extension  string `yaml:"extension"`
}

type yamlOutput struct {
	CensorPlaceholder string `yaml:"censor_placeholder"`
	Timing            bool   `yaml:"timing"`
}

type yamlPack struct {
	InputRoot string `yaml:"input_root"`
}

type yamlAnswer struct {
	Pack string `yaml:"pack"`
	Day  string `yaml:"day"`
	Unit string `yaml:"unit"`
	Test bool   `yaml:"test"`
	// Value keeps the node so the scalar's resolved tag is available.
	Value yaml.Node `yaml:"value"`
}
