package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/commands"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/queries"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// newFormCommand drives the create/edit form step by step. The form lives in the
// session, so it is mostly useful from the console.
func newFormCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Step through the vessel create/edit form",
		Long: `Open the form, set fields one at a time and submit.
A failed submit keeps the form open with the error shown.

Example (inside shipfix console):
  fleet form open
  fleet form set name "Estrella"
  fleet form set registration_code CHI-SAI-0001
  fleet form set home_port "San Antonio"
  fleet form set lead1 "Ana Soto"
  fleet form submit`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "open [vessel-id]",
		Short: "Open the form to create a vessel, or to edit one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &commands.OpenVesselFormCommand{}
			if len(args) == 1 {
				request.VesselID = args[0]
			}
			return a.sendFormCommand(cmd, request)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a form field (" + strings.Join(fleet.DraftFields(), ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sendFormCommand(cmd, &commands.SetVesselFormFieldCommand{Field: args[0], Value: args[1]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}
			response, err := session.Send(cmd.Context(), &queries.GetVesselFormQuery{})
			if err != nil {
				return err
			}
			printForm(cmd.OutOrStdout(), response.(*queries.VesselFormResponse).Form)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "submit",
		Short: "Validate and commit the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.ensureSession(cmd.Context())
			if err != nil {
				return err
			}

			response, err := session.Send(cmd.Context(), &commands.SubmitVesselFormCommand{})
			if err != nil {
				return err
			}

			result := response.(*commands.SubmitVesselFormResponse)
			verb := "registered"
			if result.Mode == fleet.ModalEdit.String() {
				verb = "updated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Vessel %s %s (%s)\n", result.Vessel.Name, verb, result.Vessel.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "close",
		Short: "Discard the form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sendFormCommand(cmd, &commands.CloseVesselFormCommand{})
		},
	})

	return cmd
}

// sendFormCommand sends a form command and prints the resulting form
func (a *app) sendFormCommand(cmd *cobra.Command, request any) error {
	session, err := a.ensureSession(cmd.Context())
	if err != nil {
		return err
	}

	response, err := session.Send(cmd.Context(), request)
	if err != nil {
		return err
	}
	printForm(cmd.OutOrStdout(), response.(*commands.VesselFormResponse).Form)
	return nil
}
