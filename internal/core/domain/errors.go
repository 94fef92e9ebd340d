package domain

import "errors"

// Fatal resolution errors. Source absence is never an error; it falls
// through to the next ranked source.
var (
	// ErrConfigFileSyntax indicates a discovered config file failed to
	// decode. There is no fallback to a lower-priority source.
	ErrConfigFileSyntax = errors.New("config file syntax error")

	// ErrConfigFilePermission indicates a discovered config file could not
	// be read due to permissions. Conceptually transient, but not retried;
	// retry policy is left to the caller.
	ErrConfigFilePermission = errors.New("config file permission denied")

	// ErrNameRequired indicates LoadOptions.Name was empty.
	ErrNameRequired = errors.New("configuration name is required")
)
