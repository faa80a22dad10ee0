// Package config reads the optional update-docker-ref configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultRegistry is the registry prefix used when none is configured.
const DefaultRegistry = "ghcr.io/jdfalk"

// Config is the content of .update-docker-ref.yaml.
type Config struct {
	Registry string `json:"registry,omitempty" yaml:"registry" jsonschema:"description=Image registry prefix of the docker-image default value. The default value is ghcr.io/jdfalk"`
}

// Init fills the default registry and validates the configuration.
func (c *Config) Init() error {
	if c.Registry == "" {
		c.Registry = DefaultRegistry
	}
	if strings.HasSuffix(c.Registry, "/") {
		return errors.New("registry must not end with '/'")
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".update-docker-ref.yaml", ".github/update-docker-ref.yaml", ".update-docker-ref.yml", ".github/update-docker-ref.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

// Finder looks up the configuration file path.
type Finder struct {
	fs afero.Fs
}

// NewFinder creates a Finder searching fs.
func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty, otherwise the first existing default path.
// It returns an empty string if no configuration file is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

// Reader decodes configuration files.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a Reader reading from fs.
func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read does nothing if configFilePath is empty.
// A file without any YAML document (e.g. only comments) is valid.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return nil
}
