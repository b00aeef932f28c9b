// Package config reads ~/.config/habitual/config.yaml and feeds its values
// to kong as flag defaults. Command line flags still win.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitual/internal/constants"
)

// File is the on-disk shape of config.yaml.
type File struct {
	Store    string `yaml:"store,omitempty"`
	Timezone string `yaml:"timezone,omitempty"`
	Debug    bool   `yaml:"debug,omitempty"`
}

// DefaultPath returns the expanded location of config.yaml.
func DefaultPath() string {
	return kong.ExpandPath(constants.DefaultConfigFile)
}

// Loader is a kong.ConfigurationLoader for YAML documents. Keys match flag
// names, with dashes or underscores.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (interface{}, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		if v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return v, nil
		}
		return nil, nil
	}
	return resolver, nil
}

// Read parses the config file at path. A missing file yields a zero File.
func Read(path string) (File, error) {
	var f File
	data, err := os.ReadFile(kong.ExpandPath(path))
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file: %w", err)
	}
	return f, nil
}

// Write stores f at path, creating the directory as needed.
func Write(path string, f File) error {
	path = kong.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
