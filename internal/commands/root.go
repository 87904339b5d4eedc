// Package commands is the CLI shell over the ledger store.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bankbook",
		Short:   "Personal bankbook ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("data-dir", "", "data directory (defaults to the current directory)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newCategoryCommand())
	rootCmd.AddCommand(newCardCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newTransferCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newUsageCommand())
	rootCmd.AddCommand(newSettleCommand())

	return rootCmd
}
