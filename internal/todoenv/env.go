// Package todoenv reads the environment variables that override todos
// configuration, including those set in a .env file.
package todoenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DataDirVar overrides the directory slots are stored in.
	DataDirVar = "TODOS_DATA_DIR"

	// BackendVar overrides the storage backend.
	BackendVar = "TODOS_BACKEND"

	// LogLevelVar overrides the log level.
	LogLevelVar = "TODOS_LOG_LEVEL"
)

// DotEnvFile is the name of the file Load reads from the project directory.
const DotEnvFile = ".env"

// Vars holds the todos variables present in the environment. Empty fields
// were not set.
type Vars struct {
	DataDir  string
	Backend  string
	LogLevel string
}

// Load reads dir/.env into the process environment, without replacing
// variables that are already set, and returns the todos variables.
// A missing .env file is not an error.
func Load(dir string) (Vars, error) {
	path := filepath.Join(dir, DotEnvFile)
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Vars{}, fmt.Errorf("load %s: %w", path, err)
	}
	return FromEnv(), nil
}

// FromEnv returns the todos variables from the process environment.
func FromEnv() Vars {
	return Vars{
		DataDir:  strings.TrimSpace(os.Getenv(DataDirVar)),
		Backend:  strings.TrimSpace(os.Getenv(BackendVar)),
		LogLevel: strings.TrimSpace(os.Getenv(LogLevelVar)),
	}
}
