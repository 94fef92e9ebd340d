// Package cli wires the cobra command tree for the strata binary.
package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/strataconf/strata/internal/logging"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "strata",
		Short: "Strata - ranked multi-source configuration resolver",
		Long: `Strata resolves one merged configuration snapshot from ranked sources:
a project-local file, a home-directory file, and programmatic defaults,
with type-aware environment-variable overrides overlaid on top.

A resolution never partially applies: it either returns one fully merged
tree with provenance for every contributing source, or fails outright.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nPlatform: %s/%s\n",
		BuildTime, runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	newLogger := func() zerolog.Logger {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		return logging.New(level)
	}

	rootCmd.AddCommand(NewResolveCommand(newLogger))
	rootCmd.AddCommand(NewMergeCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
