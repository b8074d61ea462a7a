package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	yamlFile = "board.yaml"
	jsonFile = "board.json"
)

// Loader loads board configuration from YAML or JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadBoard loads board.yaml, falling back to board.json.
// Fields missing from the file keep their Default() values.
// The result is validated.
func (l *Loader) LoadBoard() (*BoardConfig, error) {
	cfg, err := l.loadYAML(yamlFile)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = l.loadJSON(jsonFile)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) loadYAML(name string) (*BoardConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return cfg, nil
}

func (l *Loader) loadJSON(name string) (*BoardConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return cfg, nil
}
