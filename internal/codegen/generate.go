package codegen

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/Khan/genqlient/generate"
	"github.com/goccy/go-yaml"
	"github.com/vvakame/gqlprep/internal/grouper"
	"github.com/vvakame/gqlprep/internal/log"
)

// genqlientConfig is the subset of the generator's configuration file that
// the pipeline emits. Paths are absolute so the file's location is irrelevant.
type genqlientConfig struct {
	Schema     []string `yaml:"schema"`
	Operations []string `yaml:"operations"`
	Generated  string   `yaml:"generated"`
	Package    string   `yaml:"package"`
}

// WriteFiles writes each merged file into the source directory, creating it
// if needed, and returns the written paths.
func WriteFiles(cfg *Config, files []*grouper.MergedFile) ([]string, error) {
	err := os.MkdirAll(cfg.Source, 0755)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		p := filepath.Join(cfg.Source, file.Filename)
		err = ioutil.WriteFile(p, []byte(file.Content), 0644)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	return paths, nil
}

// Run writes the grouped files into the source directory and invokes the
// code generator over them together with the schema file.
func Run(ctx context.Context, cfg *Config, files []*grouper.MergedFile) error {
	logger := log.FromContext(ctx)

	paths, err := WriteFiles(cfg, files)
	if err != nil {
		return err
	}
	logger.V(1).Info("wrote operation files", "count", len(paths), "dir", cfg.Source)

	configPath, err := writeGeneratorConfig(cfg, paths)
	if err != nil {
		return err
	}

	genCfg, err := generate.ReadAndValidateConfig(configPath)
	if err != nil {
		return err
	}

	generated, err := generate.Generate(genCfg)
	if err != nil {
		return err
	}

	for filename, content := range generated {
		err = os.MkdirAll(filepath.Dir(filename), 0755)
		if err != nil {
			return err
		}
		err = ioutil.WriteFile(filename, content, 0644)
		if err != nil {
			return err
		}
		logger.V(1).Info("wrote generated file", "file", filename)
	}

	return nil
}

func writeGeneratorConfig(cfg *Config, operationPaths []string) (string, error) {
	schema, err := filepath.Abs(cfg.Schema)
	if err != nil {
		return "", err
	}
	output, err := filepath.Abs(cfg.Output)
	if err != nil {
		return "", err
	}

	genCfg := &genqlientConfig{
		Schema:    []string{schema},
		Generated: output,
		Package:   cfg.Package,
	}
	for _, p := range operationPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		genCfg.Operations = append(genCfg.Operations, abs)
	}

	b, err := yaml.Marshal(genCfg)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(cfg.Source, "genqlient.yaml")
	err = ioutil.WriteFile(configPath, b, 0644)
	if err != nil {
		return "", err
	}

	return configPath, nil
}
