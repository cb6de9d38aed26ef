package commands

import (
	"fmt"
	"strings"

	"hospital-reception-backend/internal/dataset"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var (
		file        string
		mappingPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Add coordinate and place_label columns to a hospital dataset",
		Long: `Rewrites a hospital dataset so it carries both a "lat,lon" location column
and a place_label column, deriving missing values from the location mapping.
Datasets that already carry both columns are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := dataset.LoadLocationMapping(mappingPath)
			if err != nil {
				return err
			}

			_, result, err := dataset.MigrateLocations(dataset.OpenSource(file), mapping)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, result)
			}
			if !result.Changed() {
				fmt.Fprintf(out, "%s already migrated (%d rows)\n", result.Source, result.Rows)
				return nil
			}
			fmt.Fprintf(out, "%s: added %s to %d rows\n", result.Source, strings.Join(result.AddedColumns, ", "), result.Rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the hospital dataset, .csv or .xlsx (required)")
	cmd.Flags().StringVar(&mappingPath, "mapping", "", "YAML location mapping; built-in mapping when empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
