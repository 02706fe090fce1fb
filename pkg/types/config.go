package types

import (
	"errors"
	"path/filepath"
)

// DefaultDBFile is the database file name used when no path is configured.
const DefaultDBFile = "database.sqlite"

// Config holds the parameters for opening a TaskStore.
type Config struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config validation errors.
var (
	ErrDBPathEmpty = errors.New("database path must not be empty")
	ErrDBPathIsDir = errors.New("database path must name a file")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	base := filepath.Base(c.DBPath)
	if base == "." || base == string(filepath.Separator) || base == ".." {
		return ErrDBPathIsDir
	}
	return nil
}
