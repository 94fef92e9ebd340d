// Package strata resolves a single application configuration from ranked
// sources (a project-local file, a home-directory file, or programmatic
// defaults) and overlays type-aware environment-variable overrides onto
// the result.
//
// The resolved configuration is a recursive Value tree. Every operation
// returns fresh storage, so inputs are never aliased or mutated.
//
//	res, err := strata.Load(ctx, strata.LoadOptions{Name: "myapp"})
//	if err != nil {
//		return err
//	}
//	host, _ := res.Value.Field("host")
package strata

import (
	"context"

	"github.com/strataconf/strata/internal/core/domain"
	"github.com/strataconf/strata/internal/core/merge"
	"github.com/strataconf/strata/internal/core/value"
	"github.com/strataconf/strata/internal/infrastructure/loader"
)

// Value is the recursive configuration tree; see the constructors below.
type Value = value.Value

// Kind identifies a Value variant.
type Kind = value.Kind

// Value variant kinds.
const (
	KindInvalid = value.KindInvalid
	KindNull    = value.KindNull
	KindBool    = value.KindBool
	KindInt     = value.KindInt
	KindFloat   = value.KindFloat
	KindString  = value.KindString
	KindArray   = value.KindArray
	KindObject  = value.KindObject
)

// Strategy selects how arrays merge.
type Strategy = merge.Strategy

// Array merge strategies.
const (
	StrategyReplace = merge.StrategyReplace
	StrategyConcat  = merge.StrategyConcat
	StrategySmart   = merge.StrategySmart
)

// MergeOptions configures one merge invocation.
type MergeOptions = merge.Options

// LoadOptions is the input to Load.
type LoadOptions = domain.LoadOptions

// ConfigResult is one fully resolved configuration snapshot.
type ConfigResult = domain.ConfigResult

// SourceInfo records the provenance of one contributing source.
type SourceInfo = domain.SourceInfo

// SourceKind names a ranked configuration source.
type SourceKind = domain.SourceKind

// Ranked source kinds.
const (
	SourceLocalFile = domain.SourceLocalFile
	SourceHomeFile  = domain.SourceHomeFile
	SourceEnvVars   = domain.SourceEnvVars
	SourceDefaults  = domain.SourceDefaults
)

// Fatal resolution and merge errors.
var (
	ErrConfigFileSyntax     = domain.ErrConfigFileSyntax
	ErrConfigFilePermission = domain.ErrConfigFilePermission
	ErrCircularReference    = merge.ErrCircularReference
	ErrInvalidStrategy      = merge.ErrInvalidStrategy
)

// Value constructors and structural operations.
var (
	Null        = value.Null
	Bool        = value.Bool
	Int         = value.Int
	Float       = value.Float
	String      = value.String
	Array       = value.Array
	Object      = value.Object
	EmptyObject = value.EmptyObject
	Clone       = value.Clone
	Equal       = value.Equal
	FromJSON    = value.FromJSON
)

// Load resolves one configuration snapshot from the ranked sources. Given
// an identical environment and file-system state, repeated calls return
// structurally identical results.
func Load(ctx context.Context, opts LoadOptions) (*ConfigResult, error) {
	return loader.New().Load(ctx, opts)
}

// Merge combines source into target and returns a fresh Value aliasing
// neither input. Mismatched variants resolve to a clone of source.
func Merge(target, source Value, opts MergeOptions) (Value, error) {
	return merge.Merge(target, source, opts)
}

// ParseStrategy converts a strategy name ("replace", "concat", "smart")
// into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	return merge.ParseStrategy(s)
}
