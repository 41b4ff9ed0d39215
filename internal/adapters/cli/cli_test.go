package cli_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/shipfix-go/internal/adapters/cli"
	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
	"github.com/andrescamacho/shipfix-go/test/helpers"
)

func newTestSession(t *testing.T, mutate ...func(*config.Config)) *cli.Session {
	t.Helper()

	cfg := &config.Config{}
	config.SetDefaults(cfg)
	for _, m := range mutate {
		m(cfg)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session, err := cli.NewSession(context.Background(), cfg, logger,
		cli.WithClock(helpers.NewFixedClock()),
		cli.WithIDGenerator(helpers.SequentialVesselIDs()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

// run executes one command line against the session and captures its output
func run(t *testing.T, session *cli.Session, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := cli.NewRootCommandWithSession(session)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	return out.String(), err
}

func vesselID(id string) fleet.VesselID {
	return fleet.MustNewVesselIDFromString(id)
}

func TestFleetList_ShowsSeedFleet(t *testing.T) {
	// Arrange
	session := newTestSession(t)

	// Act
	out, err := run(t, session, "", "fleet", "list")

	// Assert
	require.NoError(t, err)
	for _, name := range []string{"Aurora del Sur", "Nanina", "Pacífica Austral", "Tridente Magallánico"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "4 of 4 vessels")
	assert.Contains(t, out, "*  bq-1")
}

func TestFleetList_QueryFilters(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "list", "--query", "nanina")

	require.NoError(t, err)
	assert.Contains(t, out, "Nanina")
	assert.NotContains(t, out, "Aurora del Sur")
	assert.Contains(t, out, "1 of 4 vessels")
}

func TestFleetList_NoMatches(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "list", "--status", "out of service")

	require.NoError(t, err)
	assert.Contains(t, out, "No vessels match (4 in fleet)")
}

func TestFleetPorts_PrefixesAll(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "ports")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, fleet.AllOption, lines[0])
}

func TestFleetCreate_RegistersAndSelects(t *testing.T) {
	// Arrange
	session := newTestSession(t)

	// Act
	out, err := run(t, session, "", "fleet", "create",
		"--name", "Estrella", "--code", "CHI-SAI-0001", "--port", "San Antonio",
		"--lead", "Ana Soto", "--lead", "Luis Vera")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Vessel Estrella registered (new-1)")
	assert.Equal(t, 5, session.Registry.Len())
	assert.Equal(t, vesselID("new-1"), session.Registry.SelectedID())

	created, ok := session.Registry.Get(vesselID("new-1"))
	require.True(t, ok)
	assert.Equal(t, []string{"Ana Soto", "Luis Vera"}, created.TechnicalLeads())
}

func TestFleetCreate_DuplicateCodeIsRejected(t *testing.T) {
	session := newTestSession(t)

	_, err := run(t, session, "", "fleet", "create",
		"--name", "X", "--code", "arg-mdp-1120", "--port", "P", "--lead", "A")

	require.Error(t, err)
	assert.True(t, fleet.HasCode(err, fleet.CodeDuplicateRegistrationCode))
	assert.Equal(t, 4, session.Registry.Len())
}

func TestFleetCreate_TooManyLeads(t *testing.T) {
	session := newTestSession(t)

	_, err := run(t, session, "", "fleet", "create",
		"--name", "X", "--code", "NEW-1", "--port", "P", "--lead", "A", "--lead", "B", "--lead", "C")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most two technical leads")
}

func TestFleetEdit_KeepsUnsetFields(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "edit", "bq-2", "--status", "under repair")

	require.NoError(t, err)
	assert.Contains(t, out, "Vessel Nanina updated")

	vessel, ok := session.Registry.Get(vesselID("bq-2"))
	require.True(t, ok)
	assert.Equal(t, fleet.StatusUnderRepair, vessel.OperationalStatus())
	assert.Equal(t, "ARG-MDP-1120", vessel.RegistrationCode())
	assert.Equal(t, []string{"Marcos Popovich", "Sofía Díaz"}, vessel.TechnicalLeads())
}

func TestFleetEdit_UnknownVessel(t *testing.T) {
	session := newTestSession(t)

	_, err := run(t, session, "", "fleet", "edit", "bq-99", "--name", "Ghost")

	require.Error(t, err)
	assert.True(t, fleet.HasCode(err, fleet.CodeNotFound))
}

func TestFleetRemove_DeclinedConfirmationKeepsVessel(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "n\n", "fleet", "remove", "bq-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Remove vessel Nanina (ARG-MDP-1120)? [y/N]")
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, 4, session.Registry.Len())
}

func TestFleetRemove_ConfirmedRemovesVessel(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "y\n", "fleet", "remove", "bq-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Vessel bq-2 removed")
	assert.Equal(t, 3, session.Registry.Len())
}

func TestFleetRemove_YesSkipsPromptAndReselects(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "remove", "bq-1", "--yes")

	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "Selected: bq-2")
	assert.Equal(t, vesselID("bq-2"), session.Registry.SelectedID())
}

func TestFleetShowAndSelect(t *testing.T) {
	session := newTestSession(t)

	_, err := run(t, session, "", "fleet", "select", "bq-3")
	require.NoError(t, err)
	out, err := run(t, session, "", "fleet", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Pacífica Austral")
	assert.Contains(t, out, "CHI-TAL-3310")
}

func TestFleetSelect_UnknownIDClearsView(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "select", "bq-99")
	require.NoError(t, err)
	assert.Contains(t, out, "no such vessel")

	out, err = run(t, session, "", "fleet", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No vessel selected")
}

func TestFleetSelect_BlankIDClearsSelection(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "select", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Selection cleared")

	_, hasSelection := session.Registry.Selected()
	assert.False(t, hasSelection)
}

func TestFleetForm_Workflow(t *testing.T) {
	// Arrange
	session := newTestSession(t)
	steps := [][]string{
		{"fleet", "form", "open"},
		{"fleet", "form", "set", "name", "Estrella"},
		{"fleet", "form", "set", "registration_code", "CHI-SAI-0001"},
		{"fleet", "form", "set", "home_port", "San Antonio"},
	}
	for _, step := range steps {
		_, err := run(t, session, "", step...)
		require.NoError(t, err)
	}

	// Act: missing lead keeps the form open
	_, err := run(t, session, "", "fleet", "form", "submit")
	require.Error(t, err)
	assert.True(t, fleet.HasCode(err, fleet.CodeMissingPrimaryLead))

	shown, err := run(t, session, "", "fleet", "form", "show")
	require.NoError(t, err)

	_, err = run(t, session, "", "fleet", "form", "set", "lead1", "Ana Soto")
	require.NoError(t, err)
	out, err := run(t, session, "", "fleet", "form", "submit")

	// Assert
	assert.Contains(t, shown, "New vessel")
	assert.Contains(t, shown, "At least one technical lead is required.")
	require.NoError(t, err)
	assert.Contains(t, out, "Vessel Estrella registered (new-1)")

	closed, err := run(t, session, "", "fleet", "form", "show")
	require.NoError(t, err)
	assert.Contains(t, closed, "Vessel form is closed")
}

func TestFleetForm_EditOpensWithCurrentValues(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "fleet", "form", "open", "bq-2")

	require.NoError(t, err)
	assert.Contains(t, out, "Editing vessel bq-2")
	assert.Contains(t, out, "ARG-MDP-1120")
}

func TestDashboard_ShowsSeedKPIs(t *testing.T) {
	// Arrange
	session := newTestSession(t)

	// Act
	out, err := run(t, session, "", "dashboard")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Open incidents:        4 (+2 in last 24h)")
	assert.Contains(t, out, "Pending work orders:   3 (2 critical)")
	assert.Contains(t, out, "Upcoming maintenance:  3 (next 7d)")
	assert.Contains(t, out, "Operational vessels:   2/4 (1 in port)")
	assert.Contains(t, out, "INC-1021")
	assert.Contains(t, out, "MT-412")
	assert.Contains(t, out, "OT-553")
}

func TestDashboard_VesselFilterNarrowsTables(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "dashboard", "--vessel", "Nanina")

	require.NoError(t, err)
	assert.Contains(t, out, "INC-1019")
	assert.NotContains(t, out, "INC-1021")
	assert.Contains(t, out, "Open incidents:        4")
}

func TestIncidentResolve(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "incident", "resolve", "INC-1021")
	require.NoError(t, err)
	assert.Contains(t, out, "Incident INC-1021 is now RESOLVED")

	out, err = run(t, session, "", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Open incidents:        3 (+1 in last 24h)")
}

func TestUnseededSessionStartsEmpty(t *testing.T) {
	noSeed := false
	session := newTestSession(t, func(cfg *config.Config) { cfg.Fleet.Seed = &noSeed })

	out, err := run(t, session, "", "fleet", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No vessels match (0 in fleet)")
}

func TestConsole_SessionSurvivesAcrossLines(t *testing.T) {
	// Arrange
	session := newTestSession(t)
	input := strings.Join([]string{
		`fleet create --name "Estrella del Sur" --code CHI-SAI-0001 --port "San Antonio" --lead "Ana Soto"`,
		`fleet create --name Copy --code chi-sai-0001 --port P --lead A`,
		`fleet remove bq-2`,
		`y`,
		`fleet list`,
		`exit`,
	}, "\n") + "\n"

	// Act
	out, err := run(t, session, input, "console")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Vessel Estrella del Sur registered (new-1)")
	assert.Contains(t, out, "Error: Another vessel already uses that registration code.")
	assert.Contains(t, out, "Remove vessel Nanina (ARG-MDP-1120)? [y/N]")
	assert.Contains(t, out, "4 of 4 vessels")
	assert.Equal(t, 4, session.Registry.Len())
}

func TestConsole_EOFExits(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "fleet ports", "console")

	require.NoError(t, err)
	assert.Contains(t, out, "Mar del Plata")
}

func TestConsole_UnbalancedQuotesReported(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "fleet list --query \"nanina\nexit\n", "console")

	require.NoError(t, err)
	assert.Contains(t, out, "Error:")
}

func TestConfigShow(t *testing.T) {
	session := newTestSession(t)

	out, err := run(t, session, "", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Type:         sqlite")
	assert.Contains(t, out, "Upcoming window: 168h0m0s")
}

func TestMetricsCommand(t *testing.T) {
	t.Cleanup(metrics.ResetRegistry)
	session := newTestSession(t, func(cfg *config.Config) { cfg.Metrics.Enabled = true })

	_, err := run(t, session, "", "fleet", "list")
	require.NoError(t, err)
	out, err := run(t, session, "", "metrics")

	require.NoError(t, err)
	assert.Contains(t, out, `shipfix_app_commands_total{command="ListVesselsQuery",status="success"}`)
	assert.Contains(t, out, `shipfix_fleet_vessels{status="OPERATIONAL"} 2`)
}

func TestMetricsCommand_Disabled(t *testing.T) {
	metrics.ResetRegistry()
	session := newTestSession(t)

	out, err := run(t, session, "", "metrics")

	require.NoError(t, err)
	assert.Contains(t, out, "Metrics are disabled")
}
