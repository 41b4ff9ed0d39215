package setup

import (
	"reflect"
	"time"

	fleetCommands "github.com/andrescamacho/shipfix-go/internal/application/fleet/commands"
	fleetQueries "github.com/andrescamacho/shipfix-go/internal/application/fleet/queries"
	maintenanceCommands "github.com/andrescamacho/shipfix-go/internal/application/maintenance/commands"
	maintenanceQueries "github.com/andrescamacho/shipfix-go/internal/application/maintenance/queries"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation.
// One registry serves one session: it owns that session's vessel registry and form.
type HandlerRegistry struct {
	registry       *fleet.VesselRegistry
	form           *fleet.VesselForm
	incidentRepo   maintenance.IncidentRepository
	workOrderRepo  maintenance.WorkOrderRepository
	taskRepo       maintenance.MaintenanceTaskRepository
	clock          shared.Clock
	upcomingWindow time.Duration
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// The maintenance repositories may be nil, in which case the dashboard handlers are not registered.
func NewHandlerRegistry(
	registry *fleet.VesselRegistry,
	incidentRepo maintenance.IncidentRepository,
	workOrderRepo maintenance.WorkOrderRepository,
	taskRepo maintenance.MaintenanceTaskRepository,
	clock shared.Clock,
	upcomingWindow time.Duration,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		registry:       registry,
		form:           fleet.NewVesselForm(registry),
		incidentRepo:   incidentRepo,
		workOrderRepo:  workOrderRepo,
		taskRepo:       taskRepo,
		clock:          clock,
		upcomingWindow: upcomingWindow,
	}
}

// Registry returns the session's vessel registry
func (r *HandlerRegistry) Registry() *fleet.VesselRegistry {
	return r.registry
}

// RegisterFleetHandlers registers all vessel command and query handlers with the mediator
//
// This method registers:
//   - Create/Update/Remove/SelectVesselCommand → one handler each
//   - Open/SetField/Submit/CloseVesselFormCommand → VesselFormHandler
//   - ListVesselsQuery → ListVesselsHandler
//   - ListHomePorts/GetVessel/GetSelectedVessel/GetVesselFormQuery → VesselQueryHandler
func (r *HandlerRegistry) RegisterFleetHandlers(m mediator.Mediator) error {
	formHandler := fleetCommands.NewVesselFormHandler(r.form)
	queryHandler := fleetQueries.NewVesselQueryHandler(r.registry, r.form)

	handlers := []struct {
		request mediator.Request
		handler mediator.RequestHandler
	}{
		{&fleetCommands.CreateVesselCommand{}, fleetCommands.NewCreateVesselHandler(r.registry)},
		{&fleetCommands.UpdateVesselCommand{}, fleetCommands.NewUpdateVesselHandler(r.registry)},
		{&fleetCommands.RemoveVesselCommand{}, fleetCommands.NewRemoveVesselHandler(r.registry)},
		{&fleetCommands.SelectVesselCommand{}, fleetCommands.NewSelectVesselHandler(r.registry)},
		{&fleetCommands.OpenVesselFormCommand{}, formHandler},
		{&fleetCommands.SetVesselFormFieldCommand{}, formHandler},
		{&fleetCommands.SubmitVesselFormCommand{}, formHandler},
		{&fleetCommands.CloseVesselFormCommand{}, formHandler},
		{&fleetQueries.ListVesselsQuery{}, fleetQueries.NewListVesselsHandler(r.registry)},
		{&fleetQueries.ListHomePortsQuery{}, queryHandler},
		{&fleetQueries.GetVesselQuery{}, queryHandler},
		{&fleetQueries.GetSelectedVesselQuery{}, queryHandler},
		{&fleetQueries.GetVesselFormQuery{}, queryHandler},
	}

	for _, h := range handlers {
		if err := m.Register(reflect.TypeOf(h.request), h.handler); err != nil {
			return err
		}
	}

	return nil
}

// RegisterMaintenanceHandlers registers the maintenance board handlers
//
// This method registers:
//   - SeedBoardCommand → SeedBoardHandler
//   - ResolveIncidentCommand → ResolveIncidentHandler
//   - GetDashboardQuery → GetDashboardHandler
func (r *HandlerRegistry) RegisterMaintenanceHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler[*maintenanceCommands.SeedBoardCommand](m,
		maintenanceCommands.NewSeedBoardHandler(r.incidentRepo, r.workOrderRepo, r.taskRepo, r.clock),
	); err != nil {
		return err
	}

	if err := mediator.RegisterHandler[*maintenanceCommands.ResolveIncidentCommand](m,
		maintenanceCommands.NewResolveIncidentHandler(r.incidentRepo),
	); err != nil {
		return err
	}

	dashboardHandler := maintenanceQueries.NewGetDashboardHandler(
		r.incidentRepo,
		r.workOrderRepo,
		r.taskRepo,
		r.registry,
		r.clock,
		r.upcomingWindow,
	)
	return mediator.RegisterHandler[*maintenanceQueries.GetDashboardQuery](m, dashboardHandler)
}

// CreateConfiguredMediator creates a new mediator with all handlers registered.
// Middlewares are applied in the given order, the first being the outermost.
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()

	for _, mw := range middlewares {
		m.RegisterMiddleware(mw)
	}

	if err := r.RegisterFleetHandlers(m); err != nil {
		return nil, err
	}

	// Register maintenance handlers if dependencies are available
	if r.incidentRepo != nil && r.workOrderRepo != nil && r.taskRepo != nil {
		if err := r.RegisterMaintenanceHandlers(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}
