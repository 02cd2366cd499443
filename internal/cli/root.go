// Package cli wires the luavend command line: argument handling,
// logging setup, and the regeneration pipeline behind the root command.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/luavend/internal/version"
	"github.com/arthur-debert/luavend/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		reportPath string
	)

	rootCmd := &cobra.Command{
		Use:   "luavend <registry-root> <input-tree> <output-tree> <plugin-selection> <extra-subs> <prologue>",
		Short: "Regenerate a Lua configuration tree for offline packaging",
		Long: `luavend rewrites every Lua source file in an input tree so that upstream
plugin references resolve to local filesystem paths, producing an output
tree ready for reproducible, offline packaging.

Substitution rules are derived from the package-registry index combined
with the plugin-selection directive, plus any extra-substitution
directive entries. Every run fully regenerates the output tree.`,
		Version: version.Version,
		Args:    cobra.ExactArgs(6),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegen(regenArgs{
				RegistryRoot: args[0],
				InputRoot:    args[1],
				OutputRoot:   args[2],
				Selection:    args[3],
				ExtraSubs:    args[4],
				Prologue:     args[5],
				ConfigPath:   configPath,
				ReportPath:   reportPath,
			}, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// The prologue positional is Lua source and typically begins with
	// "--"; stop flag parsing at the first positional so it is not
	// mistaken for a flag.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a luavend.toml overriding the built-in defaults")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("luavend version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
