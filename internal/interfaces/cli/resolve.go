package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/strataconf/strata/internal/core/domain"
	"github.com/strataconf/strata/internal/core/merge"
	"github.com/strataconf/strata/internal/core/value"
	"github.com/strataconf/strata/internal/infrastructure/loader"
)

// ResolveFlags holds command-line flags for the resolve command.
type ResolveFlags struct {
	Name         string
	Dir          string
	Prefix       string
	Strategy     string
	NestedKey    string
	DefaultsPath string
	Explain      bool
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(newLogger func() zerolog.Logger) *cobra.Command {
	flags := &ResolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the configuration and print it as JSON",
		Long: `Resolve one configuration snapshot from the ranked sources and print
the merged tree as JSON on stdout.

Examples:
  strata resolve --name myapp
  strata resolve --name myapp --key database --strategy smart
  strata resolve --name myapp --defaults defaults.json --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, newLogger())
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Configuration name (required)")
	cmd.Flags().StringVar(&flags.Dir, "dir", "", "Working directory for local file discovery")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "Environment variable prefix (default: the name, uppercased)")
	cmd.Flags().StringVar(&flags.Strategy, "strategy", "replace", "Array merge strategy: replace, concat, or smart")
	cmd.Flags().StringVar(&flags.NestedKey, "key", "", "Dotted path to extract from the base before the overlay")
	cmd.Flags().StringVar(&flags.DefaultsPath, "defaults", "", "JSON file supplying programmatic defaults")
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Print a provenance table after the resolved tree")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runResolve(cmd *cobra.Command, flags *ResolveFlags, logger zerolog.Logger) error {
	strategy, err := merge.ParseStrategy(flags.Strategy)
	if err != nil {
		return err
	}

	var defaults value.Value
	if flags.DefaultsPath != "" {
		data, err := os.ReadFile(flags.DefaultsPath)
		if err != nil {
			return fmt.Errorf("reading defaults: %w", err)
		}
		defaults, err = value.FromJSON(data)
		if err != nil {
			return fmt.Errorf("decoding defaults: %w", err)
		}
	}

	l := loader.New()
	l.Log = logger

	res, err := l.Load(cmd.Context(), domain.LoadOptions{
		Name:          flags.Name,
		Defaults:      defaults,
		WorkingDir:    flags.Dir,
		EnvPrefix:     flags.Prefix,
		MergeStrategy: strategy,
		NestedKey:     flags.NestedKey,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res.Value, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if flags.Explain {
		fmt.Fprintln(cmd.OutOrStdout(), renderProvenance(res))
	}
	return nil
}
