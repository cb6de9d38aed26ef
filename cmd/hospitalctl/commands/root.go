// Package commands implements hospitalctl, the operator CLI for the reception backend.
package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// NewRootCmd builds the command tree; each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hospitalctl",
		Short: "Operator tooling for the hospital reception backend",
		Long: `hospitalctl prepares the reception datasets and issues credentials
for the agents that call the lookup API.`,
		Version:       Version,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newDistancesCmd())
	rootCmd.AddCommand(newTokenCmd())
	rootCmd.AddCommand(newAPIKeyCmd())
	rootCmd.AddCommand(newQueriesCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
