package sources

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/strataconf/strata/internal/core/ports"
)

// ProcessEnv returns an EnvReader over the process environment, falling
// back to a .env file in workingDir when one exists. A variable set in the
// process environment always wins over the same variable in the file.
func ProcessEnv(workingDir string) ports.EnvReader {
	if workingDir == "" {
		workingDir = "."
	}

	// A missing or unparsable .env file just means no fallback values.
	fallback, err := godotenv.Read(filepath.Join(workingDir, ".env"))
	if err != nil {
		fallback = nil
	}

	return ports.EnvReaderFunc(func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := fallback[name]
		return v, ok
	})
}
