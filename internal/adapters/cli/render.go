package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
)

// Badge colors follow the dashboard palette
var badgeColors = map[string]lipgloss.Color{
	"OPERATIONAL":    lipgloss.Color("#a6e3a1"),
	"IN_PORT":        lipgloss.Color("#89b4fa"),
	"UNDER_REPAIR":   lipgloss.Color("#f9e2af"),
	"OUT_OF_SERVICE": lipgloss.Color("#f38ba8"),

	"HIGH":   lipgloss.Color("#f38ba8"),
	"MEDIUM": lipgloss.Color("#f9e2af"),
	"LOW":    lipgloss.Color("#a6e3a1"),

	"COMPLETED": lipgloss.Color("#a6e3a1"),
	"DONE":      lipgloss.Color("#a6e3a1"),
	"RESOLVED":  lipgloss.Color("#a6e3a1"),
}

// badge renders text colored by code. Color is dropped when w is not a terminal.
func badge(w io.Writer, code, text string) string {
	color, ok := badgeColors[code]
	if !ok {
		return text
	}
	return lipgloss.NewRenderer(w).NewStyle().Foreground(color).Bold(true).Render(text)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printVesselTable lists vessels, marking the selected one. The status badge is the
// last column so escape codes never skew alignment.
func printVesselTable(w io.Writer, vessels []dtos.VesselDTO, selectedID string) {
	tw := newTable(w)
	fmt.Fprintln(tw, " \tID\tNAME\tREGISTRATION\tHOME PORT\tTECHNICAL LEADS\tSTATUS")
	fmt.Fprintln(tw, " \t--\t----\t------------\t---------\t---------------\t------")
	for _, v := range vessels {
		marker := " "
		if v.ID == selectedID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			marker,
			v.ID,
			v.Name,
			v.RegistrationCode,
			v.HomePort,
			strings.Join(v.TechnicalLeads, ", "),
			badge(w, v.Status, v.StatusLabel),
		)
	}
	tw.Flush()
}

func printVessel(w io.Writer, v dtos.VesselDTO) {
	fmt.Fprintf(w, "Vessel %s\n", v.ID)
	fmt.Fprintf(w, "  Name:              %s\n", v.Name)
	fmt.Fprintf(w, "  Registration code: %s\n", v.RegistrationCode)
	fmt.Fprintf(w, "  Home port:         %s\n", v.HomePort)
	fmt.Fprintf(w, "  Status:            %s\n", badge(w, v.Status, v.StatusLabel))
	fmt.Fprintf(w, "  Technical leads:   %s\n", strings.Join(v.TechnicalLeads, ", "))
}

func printForm(w io.Writer, form dtos.FormDTO) {
	if form.Mode == "CLOSED" {
		fmt.Fprintln(w, "Vessel form is closed")
		return
	}

	title := "New vessel"
	if form.EditID != "" {
		title = "Editing vessel " + form.EditID
	}
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  name:              %s\n", form.Draft.Name)
	fmt.Fprintf(w, "  registration_code: %s\n", form.Draft.RegistrationCode)
	fmt.Fprintf(w, "  home_port:         %s\n", form.Draft.HomePort)
	fmt.Fprintf(w, "  status:            %s\n", form.Draft.Status.Label())
	fmt.Fprintf(w, "  lead1:             %s\n", form.Draft.Lead1)
	fmt.Fprintf(w, "  lead2:             %s\n", form.Draft.Lead2)
	if form.LastError != nil {
		fmt.Fprintf(w, "  ! %s\n", describeError(form.LastError))
	}
}
