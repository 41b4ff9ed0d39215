package cli

import (
	"fmt"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
)

// newMetricsCommand dumps the session's Prometheus registry in text format
func newMetricsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Print this session's command and fleet metrics",
		Long: `Print the metrics collected by this process in Prometheus text format.
Requires metrics.enabled: true in the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			if !metrics.IsEnabled() {
				fmt.Fprintln(cmd.OutOrStdout(), "Metrics are disabled (set metrics.enabled: true)")
				return nil
			}

			families, err := metrics.Registry.Gather()
			if err != nil {
				return fmt.Errorf("failed to gather metrics: %w", err)
			}

			enc := expfmt.NewEncoder(cmd.OutOrStdout(), expfmt.NewFormat(expfmt.TypeTextPlain))
			for _, mf := range families {
				if err := enc.Encode(mf); err != nil {
					return fmt.Errorf("failed to encode metrics: %w", err)
				}
			}
			return nil
		},
	}
}
