package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command with subcommands
func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect ShipFix configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SHIPFIX_* prefix, plus PORT and DATABASE_URL)
2. Config file (config.yaml)
3. Default values`,
	}

	cmd.AddCommand(newConfigShowCommand(a))

	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ShipFix Configuration")
			fmt.Fprintln(out, "=====================")

			fmt.Fprintln(out, "Database:")
			fmt.Fprintf(out, "  Type:         %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintln(out, "  URL:          (set)")
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:         %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:         %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Fprintf(out, "  Name:         %s\n", cfg.Database.Name)
			}
			fmt.Fprintf(out, "  Auto-migrate: %t\n", cfg.Database.ShouldAutoMigrate())

			fmt.Fprintln(out, "\nServer:")
			fmt.Fprintf(out, "  Address:      %s\n", cfg.Server.Address())
			if cfg.Server.GRPCAddress != "" {
				fmt.Fprintf(out, "  gRPC:         %s\n", cfg.Server.GRPCAddress)
			}
			fmt.Fprintf(out, "  Rate limit:   %g req/s (burst %d)\n", cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Burst)
			fmt.Fprintf(out, "  CORS origins: %s\n", strings.Join(cfg.Server.CORSOrigins, ", "))
			if cfg.Server.PIDFile != "" {
				fmt.Fprintf(out, "  PID file:     %s\n", cfg.Server.PIDFile)
			}

			fmt.Fprintln(out, "\nFleet:")
			fmt.Fprintf(out, "  Seed:            %t\n", cfg.Fleet.ShouldSeed())
			fmt.Fprintf(out, "  Upcoming window: %s\n", cfg.Fleet.UpcomingWindow)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:  %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format: %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output: %s\n", cfg.Logging.Output)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled: %t\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Path:    %s\n", cfg.Metrics.Path)

			return nil
		},
	}
}
