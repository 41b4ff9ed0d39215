package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/andrescamacho/shipfix-go/internal/adapters/persistence"
	fleetCommands "github.com/andrescamacho/shipfix-go/internal/application/fleet/commands"
	maintenanceCommands "github.com/andrescamacho/shipfix-go/internal/application/maintenance/commands"
	"github.com/andrescamacho/shipfix-go/internal/application/maintenance/queries"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/application/setup"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/database"
	"github.com/andrescamacho/shipfix-go/test/helpers"
)

type dashboardContext struct {
	db       *gorm.DB
	clock    *shared.MockClock
	mediator mediator.Mediator
	result   *queries.GetDashboardResponse
}

func (dc *dashboardContext) reset() {
	if dc.db != nil {
		_ = database.Close(dc.db)
	}
	dc.db = nil
	dc.clock = nil
	dc.mediator = nil
	dc.result = nil
}

// Given

func (dc *dashboardContext) aSeededMaintenanceBoardAt(timestamp string) error {
	now, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
	}

	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	dc.db = db
	dc.clock = shared.NewMockClock(now)

	handlers := setup.NewHandlerRegistry(
		fleet.NewSeededRegistry(helpers.SequentialVesselIDs()),
		persistence.NewGormIncidentRepository(db),
		persistence.NewGormWorkOrderRepository(db),
		persistence.NewGormMaintenanceTaskRepository(db),
		dc.clock,
		maintenance.DefaultUpcomingWindow,
	)

	dc.mediator, err = handlers.CreateConfiguredMediator()
	if err != nil {
		return err
	}

	_, err = dc.mediator.Send(context.Background(), &maintenanceCommands.SeedBoardCommand{})
	return err
}

// When

func (dc *dashboardContext) iRequestTheDashboard() error {
	return dc.requestDashboard("")
}

func (dc *dashboardContext) iRequestTheDashboardForVessel(vesselName string) error {
	return dc.requestDashboard(vesselName)
}

func (dc *dashboardContext) requestDashboard(vesselName string) error {
	response, err := dc.mediator.Send(context.Background(), &queries.GetDashboardQuery{VesselName: vesselName})
	if err != nil {
		return err
	}
	dc.result = response.(*queries.GetDashboardResponse)
	return nil
}

func (dc *dashboardContext) iResolveIncident(id string) error {
	_, err := dc.mediator.Send(context.Background(), &maintenanceCommands.ResolveIncidentCommand{IncidentID: id})
	return err
}

func (dc *dashboardContext) vesselIsSetToStatus(id, status string) error {
	vesselID, err := fleet.NewVesselIDFromString(id)
	if err != nil {
		return err
	}

	// Start from the current record so only the status changes
	response, err := dc.mediator.Send(context.Background(), &fleetCommands.OpenVesselFormCommand{VesselID: vesselID.String()})
	if err != nil {
		return err
	}
	if response.(*fleetCommands.VesselFormResponse).Form.Mode != fleet.ModalEdit.String() {
		return fmt.Errorf("form did not open for %s", id)
	}

	if _, err := dc.mediator.Send(context.Background(), &fleetCommands.SetVesselFormFieldCommand{Field: fleet.FieldStatus, Value: status}); err != nil {
		return err
	}
	_, err = dc.mediator.Send(context.Background(), &fleetCommands.SubmitVesselFormCommand{})
	return err
}

func (dc *dashboardContext) aWeekPasses() error {
	dc.clock.Advance(7 * 24 * time.Hour)
	return nil
}

// Then

func (dc *dashboardContext) theDashboardShouldReportOpenIncidents(open, recent int) error {
	s := dc.result.Summary
	if s.OpenIncidents != open || s.IncidentsLast24h != recent {
		return fmt.Errorf("expected %d open incidents (%d recent), got %d (%d recent)",
			open, recent, s.OpenIncidents, s.IncidentsLast24h)
	}
	return nil
}

func (dc *dashboardContext) theDashboardShouldReportPendingWorkOrders(pending, critical int) error {
	s := dc.result.Summary
	if s.PendingWorkOrders != pending || s.CriticalWorkOrders != critical {
		return fmt.Errorf("expected %d pending work orders (%d critical), got %d (%d critical)",
			pending, critical, s.PendingWorkOrders, s.CriticalWorkOrders)
	}
	return nil
}

func (dc *dashboardContext) theDashboardShouldReportUpcomingTasks(count int) error {
	if dc.result.Summary.UpcomingMaintenance != count {
		return fmt.Errorf("expected %d upcoming tasks, got %d", count, dc.result.Summary.UpcomingMaintenance)
	}
	return nil
}

func (dc *dashboardContext) theDashboardShouldReportVesselsOperational(operational, total, inPort int) error {
	s := dc.result.Summary
	if s.OperationalVessels != operational || s.TotalVessels != total || s.VesselsInPort != inPort {
		return fmt.Errorf("expected %d/%d operational (%d in port), got %d/%d (%d in port)",
			operational, total, inPort, s.OperationalVessels, s.TotalVessels, s.VesselsInPort)
	}
	return nil
}

func (dc *dashboardContext) theDashboardShouldListIncidents(table *godog.Table) error {
	expected := singleColumn(table)
	actual := make([]string, 0, len(dc.result.Incidents))
	for _, inc := range dc.result.Incidents {
		actual = append(actual, inc.ID)
	}
	if strings.Join(expected, "|") != strings.Join(actual, "|") {
		return fmt.Errorf("expected incidents %v, got %v", expected, actual)
	}
	return nil
}

// InitializeDashboardScenario registers maintenance dashboard steps
func InitializeDashboardScenario(ctx *godog.ScenarioContext) {
	dc := &dashboardContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		dc.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		dc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^a seeded maintenance board at "([^"]*)"$`, dc.aSeededMaintenanceBoardAt)

	// When
	ctx.Step(`^I request the dashboard$`, dc.iRequestTheDashboard)
	ctx.Step(`^I request the dashboard for vessel "([^"]*)"$`, dc.iRequestTheDashboardForVessel)
	ctx.Step(`^I resolve incident "([^"]*)"$`, dc.iResolveIncident)
	ctx.Step(`^vessel "([^"]*)" is set to status "([^"]*)"$`, dc.vesselIsSetToStatus)
	ctx.Step(`^a week passes$`, dc.aWeekPasses)

	// Then
	ctx.Step(`^the dashboard should report (\d+) open incidents with (\d+) opened in the last 24 hours$`, dc.theDashboardShouldReportOpenIncidents)
	ctx.Step(`^the dashboard should report (\d+) pending work orders with (\d+) critical$`, dc.theDashboardShouldReportPendingWorkOrders)
	ctx.Step(`^the dashboard should report (\d+) upcoming maintenance tasks$`, dc.theDashboardShouldReportUpcomingTasks)
	ctx.Step(`^the dashboard should report (\d+) of (\d+) vessels operational with (\d+) in port$`, dc.theDashboardShouldReportVesselsOperational)
	ctx.Step(`^the dashboard should list incidents:$`, dc.theDashboardShouldListIncidents)
}
