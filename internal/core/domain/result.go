package domain

import (
	"time"

	"github.com/strataconf/strata/internal/core/merge"
	"github.com/strataconf/strata/internal/core/value"
)

// LoadOptions is the read-only input to a single resolution attempt.
type LoadOptions struct {
	// Name is the configuration name; file discovery and the default env
	// prefix both derive from it. Required.
	Name string

	// Defaults is the programmatic fallback used when no file source is
	// found. The zero Value means no defaults were supplied.
	Defaults value.Value

	// WorkingDir anchors local-file discovery. Empty means the process
	// working directory.
	WorkingDir string

	// EnvPrefix overrides the root prefix for environment overrides. Empty
	// means Name, uppercased.
	EnvPrefix string

	// MergeStrategy governs array merging throughout the load.
	MergeStrategy merge.Strategy

	// NestedKey optionally narrows the base to a dotted path inside the
	// loaded tree before the environment overlay runs.
	NestedKey string
}

// ConfigResult is one fully resolved configuration snapshot.
type ConfigResult struct {
	// Value is the merged configuration tree. It shares no storage with any
	// input the caller supplied.
	Value value.Value `json:"value"`

	// PrimarySource is the ranked source that supplied the base before the
	// environment overlay. The environment is never primary.
	PrimarySource SourceKind `json:"primary_source"`

	// ContributingSources lists, in evaluation order, only the sources that
	// actually contributed to the result.
	ContributingSources []SourceInfo `json:"contributing_sources"`

	// LoadedAt is when the snapshot was resolved.
	LoadedAt time.Time `json:"loaded_at"`
}
