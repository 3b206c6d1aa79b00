package codegen

import (
	"io/ioutil"

	"github.com/goccy/go-yaml"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Config locates the files the generation pipeline works with.
type Config struct {
	// Source is the directory grouped operation files are written into.
	Source string `yaml:"source"`
	// Schema is the GraphQL schema file handed to the code generator.
	Schema string `yaml:"schema"`
	// Output is the path of the generated Go file.
	Output string `yaml:"output"`
	// Package is the package name of the generated file.
	Package string `yaml:"package"`
}

func LoadConfig(filename string) (*Config, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Source == "" {
		return gqlerror.Errorf("config: source directory is required")
	}
	if cfg.Schema == "" {
		return gqlerror.Errorf("config: schema file is required")
	}
	if cfg.Output == "" {
		return gqlerror.Errorf("config: output file is required")
	}
	if cfg.Package == "" {
		cfg.Package = "generated"
	}
	return nil
}
