// Package loader orchestrates one configuration resolution attempt over
// the ranked sources: local file, home file, programmatic defaults, and
// the environment overlay.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/strataconf/strata/internal/core/domain"
	"github.com/strataconf/strata/internal/core/merge"
	"github.com/strataconf/strata/internal/core/ports"
	"github.com/strataconf/strata/internal/core/value"
	"github.com/strataconf/strata/internal/infrastructure/envconf"
	"github.com/strataconf/strata/internal/infrastructure/sources"
)

// UnifiedLoader resolves a single configuration snapshot from the ranked
// sources. The zero value is not usable; construct with New and override
// collaborators as needed (tests swap in fakes).
type UnifiedLoader struct {
	Locator ports.FileLocator
	Decoder ports.FileDecoder

	// Env supplies environment lookups for the overlay. When nil, the
	// process environment plus a .env file in the working directory is
	// used.
	Env ports.EnvReader

	Log zerolog.Logger
}

// New returns a loader wired to the real file system and process
// environment, logging nowhere.
func New() *UnifiedLoader {
	return &UnifiedLoader{
		Locator: sources.NewLocator(),
		Decoder: sources.NewDecoder(),
		Log:     zerolog.Nop(),
	}
}

// Load executes the resolution state machine and returns one fully
// resolved snapshot, or the first fatal error. Source absence is silent;
// syntax and permission failures on a discovered file abort the load with
// no fallback to a lower-priority source.
func (l *UnifiedLoader) Load(ctx context.Context, opts domain.LoadOptions) (*domain.ConfigResult, error) {
	if opts.Name == "" {
		return nil, domain.ErrNameRequired
	}
	switch opts.MergeStrategy {
	case merge.StrategyReplace, merge.StrategyConcat, merge.StrategySmart:
	default:
		return nil, fmt.Errorf("%w: %d", merge.ErrInvalidStrategy, int(opts.MergeStrategy))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, primary, contributing, err := l.resolveBase(opts)
	if err != nil {
		return nil, err
	}

	if opts.NestedKey != "" {
		base = extractNested(base, opts.NestedKey)
		l.Log.Debug().Str("key", opts.NestedKey).Msg("extracted nested key")
	}

	env := l.Env
	if env == nil {
		env = sources.ProcessEnv(opts.WorkingDir)
	}
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = opts.Name
	}

	overlaid := envconf.New(env).Apply(base, prefix)
	if !value.Equal(base, overlaid) {
		contributing = append(contributing, domain.SourceInfo{
			Kind:     domain.SourceEnvVars,
			Priority: domain.PriorityEnvVars,
		})
		l.Log.Debug().Str("prefix", prefix).Msg("environment overlay changed the configuration")
	}

	return &domain.ConfigResult{
		Value:               overlaid,
		PrimarySource:       primary,
		ContributingSources: contributing,
		LoadedAt:            time.Now(),
	}, nil
}

// resolveBase walks the file sources in priority order and falls back to
// defaults, returning the base Value, the primary source, and the sources
// that contributed it.
func (l *UnifiedLoader) resolveBase(opts domain.LoadOptions) (value.Value, domain.SourceKind, []domain.SourceInfo, error) {
	if path, ok := l.Locator.LocateLocal(opts.Name, opts.WorkingDir); ok {
		l.Log.Debug().Str("path", path).Msg("local config file found")
		v, err := l.Decoder.DecodeFile(path)
		if err != nil {
			return value.Value{}, "", nil, err
		}
		info := domain.SourceInfo{Kind: domain.SourceLocalFile, Path: path, Priority: domain.PriorityLocalFile}
		return v, domain.SourceLocalFile, []domain.SourceInfo{info}, nil
	}

	if path, ok := l.Locator.LocateHome(opts.Name); ok {
		l.Log.Debug().Str("path", path).Msg("home config file found")
		v, err := l.Decoder.DecodeFile(path)
		if err != nil {
			return value.Value{}, "", nil, err
		}
		info := domain.SourceInfo{Kind: domain.SourceHomeFile, Path: path, Priority: domain.PriorityHomeFile}
		return v, domain.SourceHomeFile, []domain.SourceInfo{info}, nil
	}

	if opts.Defaults.IsValid() {
		l.Log.Debug().Msg("no config file found, using supplied defaults")
		info := domain.SourceInfo{Kind: domain.SourceDefaults, Priority: domain.PriorityDefaults}
		return value.Clone(opts.Defaults), domain.SourceDefaults, []domain.SourceInfo{info}, nil
	}

	// Nothing supplied a base; the overlay still runs against an empty
	// object, but no source has contributed yet.
	l.Log.Debug().Msg("no config file and no defaults, starting from an empty object")
	return value.EmptyObject(), domain.SourceDefaults, nil, nil
}

// extractNested narrows base to the dotted path. Any missing segment, or a
// segment landing on a non-object, yields an empty object rather than an
// error.
func extractNested(base value.Value, path string) value.Value {
	current := base
	for _, seg := range strings.Split(path, ".") {
		if current.Kind() != value.KindObject {
			return value.EmptyObject()
		}
		next, ok := current.Field(seg)
		if !ok {
			return value.EmptyObject()
		}
		current = next
	}
	return current
}
