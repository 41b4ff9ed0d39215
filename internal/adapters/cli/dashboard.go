package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	maintenanceCommands "github.com/andrescamacho/shipfix-go/internal/application/maintenance/commands"
	"github.com/andrescamacho/shipfix-go/internal/application/maintenance/queries"
)

func newDashboardCommand(a *app) *cobra.Command {
	var (
		vesselName string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show maintenance KPIs, incidents, tasks and work orders",
		Long: `Show the maintenance board. KPI cards always cover the whole fleet;
--vessel and --limit narrow the tables only.

Examples:
  shipfix dashboard
  shipfix dashboard --vessel Nanina
  shipfix dashboard --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &queries.GetDashboardQuery{
				VesselName: vesselName,
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			printDashboard(cmd.OutOrStdout(), response.(*queries.GetDashboardResponse))
			return nil
		},
	}

	cmd.Flags().StringVar(&vesselName, "vessel", "", "Only show rows for this vessel name")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows per table (0 = all)")

	return cmd
}

func newIncidentCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Work with maintenance incidents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <incident-id>",
		Short: "Mark an incident resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &maintenanceCommands.ResolveIncidentCommand{IncidentID: args[0]})
			if err != nil {
				return err
			}

			result := response.(*maintenanceCommands.ResolveIncidentResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Incident %s is now %s\n", result.IncidentID, result.Status)
			return nil
		},
	})

	return cmd
}

func printDashboard(w io.Writer, d *queries.GetDashboardResponse) {
	s := d.Summary

	fmt.Fprintf(w, "Maintenance dashboard (%s)\n", d.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(w, "===================================")
	fmt.Fprintf(w, "  Open incidents:        %d (+%d in last 24h)\n", s.OpenIncidents, s.IncidentsLast24h)
	fmt.Fprintf(w, "  Pending work orders:   %d (%d critical)\n", s.PendingWorkOrders, s.CriticalWorkOrders)
	fmt.Fprintf(w, "  Upcoming maintenance:  %d (next %s)\n", s.UpcomingMaintenance, formatWindow(s.UpcomingWindow))
	fmt.Fprintf(w, "  Operational vessels:   %d/%d (%d in port)\n", s.OperationalVessels, s.TotalVessels, s.VesselsInPort)

	fmt.Fprintln(w, "\nIncidents")
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tVESSEL\tEQUIPMENT\tSTATUS\tETA\tSEVERITY")
	fmt.Fprintln(tw, "--\t------\t---------\t------\t---\t--------")
	for _, inc := range d.Incidents {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inc.ID, inc.VesselName, inc.Equipment, badge(w, inc.Status, inc.Status), formatETA(inc.ETA), badge(w, inc.Severity, inc.Severity))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nUpcoming maintenance")
	tw = newTable(w)
	fmt.Fprintln(tw, "ID\tVESSEL\tTASK\tDUE\tSTATUS")
	fmt.Fprintln(tw, "--\t------\t----\t---\t------")
	for _, task := range d.Tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			task.ID, task.VesselName, task.Task, task.DueDate.Format("2006-01-02"), badge(w, task.Status, task.Status))
	}
	tw.Flush()

	fmt.Fprintln(w, "\nWork orders")
	tw = newTable(w)
	fmt.Fprintln(tw, "ID\tVESSEL\tOWNER\tPROGRESS\tSTATUS")
	fmt.Fprintln(tw, "--\t------\t-----\t--------\t------")
	for _, wo := range d.WorkOrders {
		status := wo.Status
		if wo.Critical {
			status += " !"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%s\n",
			wo.ID, wo.VesselName, wo.Owner, wo.Progress, badge(w, wo.Status, status))
	}
	tw.Flush()
}

func formatETA(eta time.Duration) string {
	if eta <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dh", int(eta.Hours()))
}

func formatWindow(window time.Duration) string {
	if window%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dd", int(window.Hours()/24))
	}
	return window.String()
}
