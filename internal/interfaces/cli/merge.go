package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strataconf/strata/internal/core/merge"
	"github.com/strataconf/strata/internal/core/value"
)

// NewMergeCommand creates the merge command, a direct front-end to the
// deep-merge engine.
func NewMergeCommand() *cobra.Command {
	var strategyName string

	cmd := &cobra.Command{
		Use:   "merge <target.json> <source.json>",
		Short: "Deep-merge two JSON documents and print the result",
		Long: `Deep-merge source into target and print the merged tree on stdout.

Objects merge key-wise; mismatched types resolve to the source value;
arrays combine per --strategy.

Examples:
  strata merge base.json override.json
  strata merge base.json override.json --strategy smart`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := merge.ParseStrategy(strategyName)
			if err != nil {
				return err
			}

			target, err := readValue(args[0])
			if err != nil {
				return err
			}
			source, err := readValue(args[1])
			if err != nil {
				return err
			}

			merged, err := merge.Merge(target, source, merge.Options{Strategy: strategy})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(merged, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", "replace", "Array merge strategy: replace, concat, or smart")

	return cmd
}

func readValue(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}
	v, err := value.FromJSON(data)
	if err != nil {
		return value.Value{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return v, nil
}
