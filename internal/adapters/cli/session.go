package cli

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/adapters/persistence"
	"github.com/andrescamacho/shipfix-go/internal/application/common"
	maintenanceCommands "github.com/andrescamacho/shipfix-go/internal/application/maintenance/commands"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/application/setup"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/database"
)

// Session is one operator's working set: a vessel registry with its form,
// the maintenance board database and the mediator routing commands to them.
type Session struct {
	Config   *config.Config
	Logger   *slog.Logger
	Mediator mediator.Mediator
	Registry *fleet.VesselRegistry

	db *gorm.DB
}

// SessionOption customizes session construction
type SessionOption func(*sessionOptions)

type sessionOptions struct {
	clock shared.Clock
	idGen fleet.IDGenerator
}

// WithClock overrides the wall clock used by the dashboard
func WithClock(clock shared.Clock) SessionOption {
	return func(o *sessionOptions) { o.clock = clock }
}

// WithIDGenerator overrides vessel id generation
func WithIDGenerator(idGen fleet.IDGenerator) SessionOption {
	return func(o *sessionOptions) { o.idGen = idGen }
}

// NewSession opens the database, builds the registry and wires the mediator
func NewSession(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...SessionOption) (*Session, error) {
	options := sessionOptions{
		clock: shared.NewRealClock(),
		idGen: fleet.NewVesselID,
	}
	for _, opt := range opts {
		opt(&options)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Database.ShouldAutoMigrate() {
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	var registry *fleet.VesselRegistry
	if cfg.Fleet.ShouldSeed() {
		registry = fleet.NewSeededRegistry(options.idGen)
	} else {
		registry, err = fleet.NewVesselRegistry(options.idGen)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}

	handlers := setup.NewHandlerRegistry(
		registry,
		persistence.NewGormIncidentRepository(db),
		persistence.NewGormWorkOrderRepository(db),
		persistence.NewGormMaintenanceTaskRepository(db),
		options.clock,
		cfg.Fleet.UpcomingWindow,
	)

	m, err := handlers.CreateConfiguredMediator(sessionMiddlewares(cfg, logger, registry)...)
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to configure mediator: %w", err)
	}

	session := &Session{
		Config:   cfg,
		Logger:   logger,
		Mediator: m,
		Registry: registry,
		db:       db,
	}

	if cfg.Fleet.ShouldSeed() {
		if _, err := session.Send(ctx, &maintenanceCommands.SeedBoardCommand{}); err != nil {
			_ = session.Close()
			return nil, fmt.Errorf("failed to seed maintenance board: %w", err)
		}
	}

	return session, nil
}

// sessionMiddlewares returns logging first, then metrics when enabled
func sessionMiddlewares(cfg *config.Config, logger *slog.Logger, registry *fleet.VesselRegistry) []mediator.Middleware {
	middlewares := []mediator.Middleware{common.LoggingMiddleware(logger)}

	if !cfg.Metrics.Enabled {
		return middlewares
	}
	if !metrics.IsEnabled() {
		metrics.InitRegistry()
	}

	commandCollector := metrics.NewCommandMetricsCollector()
	fleetCollector := metrics.NewFleetMetricsCollector()
	if err := commandCollector.Register(); err != nil {
		logger.Warn("command metrics unavailable", "error", err)
		commandCollector = nil
	}
	if err := fleetCollector.Register(); err != nil {
		logger.Warn("fleet metrics unavailable", "error", err)
		fleetCollector = nil
	} else {
		fleetCollector.ObserveRegistry(registry)
	}

	return append(middlewares,
		metrics.PrometheusMiddleware(commandCollector),
		metrics.FleetMiddleware(fleetCollector, registry),
	)
}

// Send dispatches a request with the session logger in context
func (s *Session) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return s.Mediator.Send(common.WithLogger(ctx, s.Logger), request)
}

// Close releases the database connection
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	err := database.Close(s.db)
	s.db = nil
	return err
}
