package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = ".yaccgrm.toml"

// config supplies defaults for flags left unset on the command line.
type config struct {
	Kind    string `toml:"kind"`
	Format  string `toml:"format"`
	Package string `toml:"package"`
	Verbose bool   `toml:"verbose"`
}

// loadConfig reads path, or defaultConfigFile if path is empty. Only an
// explicitly named file has to exist.
func loadConfig(path string) (config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config{}, nil
		}
		return config{}, fmt.Errorf("reading config: %w", err)
	}

	var c config
	if err := toml.Unmarshal(data, &c); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
