package commands

import (
	"fmt"
	"text/tabwriter"

	"hospital-reception-backend/internal/dataset"
	"hospital-reception-backend/internal/repository"
	"hospital-reception-backend/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDistancesCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the distance between every pair of hospitals",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			metricRepo, err := repository.LoadHospitalMetrics(dataset.OpenSource(file), nil, false, logger)
			if err != nil {
				return err
			}
			if metricRepo.Empty() {
				return fmt.Errorf("%s not found", file)
			}

			geoService, err := service.NewGeoService(metricRepo, 0, logger)
			if err != nil {
				return err
			}
			matrix := geoService.AllPairwiseDistances()

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, matrix)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\tKM")
			for _, d := range matrix.Distances {
				fmt.Fprintf(w, "%s\t%s\t%.2f\n", d.FromHospital, d.ToHospital, d.DistanceKm)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d pairs\n", matrix.TotalPairs)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the hospital dataset (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
