package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	relaxerrors "github.com/alexisbeaulieu97/relax/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk on top of the defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, relaxerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, relaxerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads the configuration at path. When explicit is false a missing file
// is not an error and the defaults are returned.
func Load(path string, explicit bool) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			cfg := Default()
			return &cfg, nil
		}
		path = defaultPath
	}

	cfg, err := ParseConfig(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		defaults := Default()
		return &defaults, nil
	}
	return nil, fmt.Errorf("load config: %w", err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
