// Package ports declares the collaborator interfaces the orchestrator
// depends on, keeping file-system and environment access swappable in
// tests.
package ports

import "github.com/strataconf/strata/internal/core/value"

// FileLocator discovers candidate configuration files. Absence is reported
// through the boolean, never through an error.
type FileLocator interface {
	// LocateLocal searches the project-relative candidate paths for a file
	// named after the configuration name.
	LocateLocal(name, workingDir string) (path string, ok bool)

	// LocateHome searches the user's home configuration directory.
	LocateHome(name string) (path string, ok bool)
}

// FileDecoder reads and decodes one configuration file into a Value tree.
type FileDecoder interface {
	DecodeFile(path string) (value.Value, error)
}

// EnvReader looks up a single environment variable.
type EnvReader interface {
	LookupEnv(name string) (string, bool)
}

// EnvReaderFunc adapts a plain lookup function to EnvReader.
type EnvReaderFunc func(name string) (string, bool)

// LookupEnv calls f.
func (f EnvReaderFunc) LookupEnv(name string) (string, bool) { return f(name) }
