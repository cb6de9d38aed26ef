package commands

import (
	"fmt"
	"text/tabwriter"

	"hospital-reception-backend/internal/config"
	"hospital-reception-backend/internal/database"
	"hospital-reception-backend/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newQueriesCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Show the latest tool invocations recorded in MySQL",
		Long: `Reads the query log the server writes when DB_ENABLED is set.
Connection settings come from the same DB_* environment variables as the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			cfg := config.LoadConfig()
			cfg.Server.GinMode = "release"
			db, err := database.Connect(cfg, zap.NewNop())
			if err != nil {
				return err
			}

			logs, err := repository.NewQueryLogRepo(db).RecentQueryLogs(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read query log: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, logs)
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tTOOL\tOUTCOME\tMS\tARGUMENTS")
			for _, l := range logs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", l.CreatedAt.Format("2006-01-02 15:04:05"), l.Tool, l.Outcome, l.DurationMs, l.Arguments)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of invocations to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
