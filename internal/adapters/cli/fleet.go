package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/commands"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/queries"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// newFleetCommand creates the fleet command with subcommands
func newFleetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Manage the vessel registry",
		Long: `Create, edit, remove and browse vessels.

Examples:
  shipfix fleet list
  shipfix fleet list --query nanina --status operational
  shipfix fleet ports
  shipfix fleet show bq-2
  shipfix fleet edit bq-2 --status "under repair"
  shipfix fleet remove bq-4`,
	}

	cmd.AddCommand(newFleetListCommand(a))
	cmd.AddCommand(newFleetPortsCommand(a))
	cmd.AddCommand(newFleetShowCommand(a))
	cmd.AddCommand(newFleetSelectCommand(a))
	cmd.AddCommand(newFleetCreateCommand(a))
	cmd.AddCommand(newFleetEditCommand(a))
	cmd.AddCommand(newFleetRemoveCommand(a))
	cmd.AddCommand(newFormCommand(a))

	return cmd
}

func newFleetListCommand(a *app) *cobra.Command {
	var (
		query    string
		homePort string
		status   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vessels matching the filters",
		Long: `List vessels in registry order.

The query matches name, registration code or any technical lead,
case-insensitively. Home port and status default to "All".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &queries.ListVesselsQuery{
				Query:    query,
				HomePort: homePort,
				Status:   status,
			})
			if err != nil {
				return err
			}
			result := response.(*queries.ListVesselsResponse)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result.Vessels)
			}

			if len(result.Vessels) == 0 {
				fmt.Fprintf(out, "No vessels match (%d in fleet)\n", result.Total)
				return nil
			}

			printVesselTable(out, result.Vessels, result.SelectedID)
			fmt.Fprintf(out, "\n%d of %d vessels\n", len(result.Vessels), result.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search name, registration code or technical lead")
	cmd.Flags().StringVar(&homePort, "port", fleet.AllOption, "Home port filter")
	cmd.Flags().StringVar(&status, "status", fleet.AllOption, "Operational status filter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print vessels as JSON")

	return cmd
}

func newFleetPortsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List the home ports present in the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &queries.ListHomePortsQuery{IncludeAll: true})
			if err != nil {
				return err
			}

			for _, port := range response.(*queries.ListHomePortsResponse).Ports {
				fmt.Fprintln(cmd.OutOrStdout(), port)
			}
			return nil
		},
	}
}

func newFleetShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [vessel-id]",
		Short: "Show a vessel, or the selected one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			var response any
			if len(args) == 1 {
				response, err = session.Send(cmd.Context(), &queries.GetVesselQuery{VesselID: args[0]})
			} else {
				response, err = session.Send(cmd.Context(), &queries.GetSelectedVesselQuery{})
			}
			if err != nil {
				return err
			}

			vessel := response.(*queries.VesselResponse).Vessel
			if vessel == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No vessel selected")
				return nil
			}
			printVessel(cmd.OutOrStdout(), *vessel)
			return nil
		},
	}
}

func newFleetSelectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <vessel-id>",
		Short: "Highlight a vessel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &commands.SelectVesselCommand{VesselID: args[0]})
			if err != nil {
				return err
			}

			if vessel := response.(*commands.SelectVesselResponse).Vessel; vessel != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", vessel.Name, vessel.ID)
			} else if strings.TrimSpace(args[0]) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Selection cleared")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (no such vessel)\n", args[0])
			}
			return nil
		},
	}
}

// draftFlags binds the editable vessel fields to flags
type draftFlags struct {
	name   string
	code   string
	port   string
	status string
	leads  []string
}

func (f *draftFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Vessel name")
	cmd.Flags().StringVar(&f.code, "code", "", "Registration code, unique across the fleet")
	cmd.Flags().StringVar(&f.port, "port", "", "Home port")
	cmd.Flags().StringVar(&f.status, "status", "", "Operational status (operational, in port, under repair, out of service)")
	cmd.Flags().StringArrayVar(&f.leads, "lead", nil, "Technical lead; repeat for a second lead")
}

// apply copies the flags that were set onto draft
func (f *draftFlags) apply(cmd *cobra.Command, draft *fleet.VesselDraft) error {
	set := map[string]string{}
	if cmd.Flags().Changed("name") {
		set[fleet.FieldName] = f.name
	}
	if cmd.Flags().Changed("code") {
		set[fleet.FieldRegistrationCode] = f.code
	}
	if cmd.Flags().Changed("port") {
		set[fleet.FieldHomePort] = f.port
	}
	if cmd.Flags().Changed("status") {
		set[fleet.FieldStatus] = f.status
	}
	if cmd.Flags().Changed("lead") {
		if len(f.leads) > 2 {
			return fmt.Errorf("a vessel has at most two technical leads, got %d", len(f.leads))
		}
		set[fleet.FieldLead1] = ""
		set[fleet.FieldLead2] = ""
		for i, lead := range f.leads {
			set[fmt.Sprintf("lead%d", i+1)] = lead
		}
	}

	for _, field := range fleet.DraftFields() {
		if value, ok := set[field]; ok {
			if err := draft.SetField(field, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func newFleetCreateCommand(a *app) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new vessel",
		Long: `Register a new vessel. The new vessel is placed first in the list
and becomes the selected vessel.

Example:
  shipfix fleet create --name "Estrella" --code CHI-SAI-0001 --port "San Antonio" \
    --lead "Ana Soto" --lead "Luis Vera"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			var draft fleet.VesselDraft
			if err := flags.apply(cmd, &draft); err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &commands.CreateVesselCommand{Draft: draft})
			if err != nil {
				return err
			}

			vessel := response.(*commands.CreateVesselResponse).Vessel
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Vessel %s registered (%s)\n", vessel.Name, vessel.ID)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func newFleetEditCommand(a *app) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "edit <vessel-id>",
		Short: "Change a vessel's details",
		Long: `Change a vessel's details. Fields without a flag keep their current value;
--lead replaces both leads.

Example:
  shipfix fleet edit bq-3 --status operational`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &queries.GetVesselQuery{VesselID: args[0]})
			if err != nil {
				return err
			}
			current := response.(*queries.VesselResponse).Vessel

			draft, err := draftFromDTO(*current)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &draft); err != nil {
				return err
			}

			response, err = session.Send(cmd.Context(), &commands.UpdateVesselCommand{VesselID: args[0], Draft: draft})
			if err != nil {
				return err
			}

			vessel := response.(*commands.UpdateVesselResponse).Vessel
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Vessel %s updated\n", vessel.Name)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

// draftFromDTO pre-fills an edit draft from the stored vessel
func draftFromDTO(vessel dtos.VesselDTO) (fleet.VesselDraft, error) {
	status, err := fleet.ParseOperationalStatus(vessel.Status)
	if err != nil {
		return fleet.VesselDraft{}, fmt.Errorf("vessel %s has an unreadable status: %w", vessel.ID, err)
	}

	draft := fleet.VesselDraft{
		Name:             vessel.Name,
		RegistrationCode: vessel.RegistrationCode,
		HomePort:         vessel.HomePort,
		Status:           status,
	}
	if len(vessel.TechnicalLeads) > 0 {
		draft.Lead1 = vessel.TechnicalLeads[0]
	}
	if len(vessel.TechnicalLeads) > 1 {
		draft.Lead2 = vessel.TechnicalLeads[1]
	}
	return draft, nil
}

func newFleetRemoveCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <vessel-id>",
		Short: "Remove a vessel from the registry",
		Long: `Remove a vessel. Asks for confirmation unless --yes is given.
When the removed vessel was selected, the first remaining vessel is selected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			if !yes {
				response, err := session.Send(cmd.Context(), &queries.GetVesselQuery{VesselID: args[0]})
				if err != nil {
					return err
				}
				target := response.(*queries.VesselResponse).Vessel

				fmt.Fprintf(cmd.OutOrStdout(), "Remove vessel %s (%s)? [y/N] ", target.Name, target.RegistrationCode)
				if !a.confirm(cmd) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			response, err := session.Send(cmd.Context(), &commands.RemoveVesselCommand{VesselID: args[0]})
			if err != nil {
				return err
			}

			result := response.(*commands.RemoveVesselResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Vessel %s removed\n", result.RemovedID)
			if result.SelectedID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Selected: %s\n", result.SelectedID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirm reads one answer line; only y or yes confirms
func (a *app) confirm(cmd *cobra.Command) bool {
	line, err := a.lineReader(cmd).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(cmd.OutOrStdout())
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
