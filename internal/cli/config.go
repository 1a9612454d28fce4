package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/celldiff/celldiff/internal/rowio"
)

const configFileName = "celldiff.toml"

// config holds the optional celldiff.toml settings. All fields are optional;
// flags override them.
type config struct {
	Columns columnsConfig `toml:"columns"`
	Output  outputConfig  `toml:"output"`
}

type columnsConfig struct {
	Number    string `toml:"number"`
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Ratio     string `toml:"ratio"`
}

type outputConfig struct {
	Format  string `toml:"format"`
	PerPage int    `toml:"per_page"`
	Width   int    `toml:"width"`
}

// findConfig walks from startDir toward the filesystem root looking for the
// nearest celldiff.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig returns the nearest config, or the zero config when none exists.
func loadConfig(startDir string) (config, error) {
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return config{}, err
	}
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	logf("loaded config from %s", path)
	return cfg, nil
}

// columns merges configured column names over the defaults.
func (c config) columns() rowio.Columns {
	cols := rowio.DefaultColumns()
	if c.Columns.Number != "" {
		cols.Number = c.Columns.Number
	}
	if c.Columns.Primary != "" {
		cols.Primary = c.Columns.Primary
	}
	if c.Columns.Secondary != "" {
		cols.Secondary = c.Columns.Secondary
	}
	if c.Columns.Ratio != "" {
		cols.Ratio = c.Columns.Ratio
	}
	return cols
}
