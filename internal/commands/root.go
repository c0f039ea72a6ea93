// Package commands wires the CLI. The bare binary launches the TUI; a
// couple of utility subcommands expose the calculators without a
// terminal session.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JunhyunKang/mock-sol/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "solbank",
		Short:   "Mobile banking prototype in the terminal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), configPath)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML)")

	rootCmd.AddCommand(newRatesCommand())
	rootCmd.AddCommand(newLoanCalcCommand())

	return rootCmd
}
