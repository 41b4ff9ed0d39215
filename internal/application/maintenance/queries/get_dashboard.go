package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
)

// GetDashboardQuery requests the KPI cards and the three maintenance tables
type GetDashboardQuery struct {
	VesselName string // Optional: restrict tables to one vessel
	Limit      int    // Optional: max rows per table
}

// GetDashboardResponse represents the dashboard
type GetDashboardResponse struct {
	GeneratedAt time.Time
	Summary     maintenance.Summary
	Incidents   []IncidentDTO
	Tasks       []MaintenanceTaskDTO
	WorkOrders  []WorkOrderDTO
}

type IncidentDTO struct {
	ID         string
	VesselName string
	Equipment  string
	Severity   string
	Status     string
	ETA        time.Duration
	OpenedAt   time.Time
}

type MaintenanceTaskDTO struct {
	ID         string
	VesselName string
	Task       string
	DueDate    time.Time
	Status     string
}

type WorkOrderDTO struct {
	ID         string
	VesselName string
	Owner      string
	Progress   int
	Status     string
	Critical   bool
}

// GetDashboardHandler handles the GetDashboard query
type GetDashboardHandler struct {
	incidentRepo  maintenance.IncidentRepository
	workOrderRepo maintenance.WorkOrderRepository
	taskRepo      maintenance.MaintenanceTaskRepository
	registry      *fleet.VesselRegistry
	clock         shared.Clock
	window        time.Duration
}

// NewGetDashboardHandler creates a new GetDashboardHandler
func NewGetDashboardHandler(
	incidentRepo maintenance.IncidentRepository,
	workOrderRepo maintenance.WorkOrderRepository,
	taskRepo maintenance.MaintenanceTaskRepository,
	registry *fleet.VesselRegistry,
	clock shared.Clock,
	window time.Duration,
) *GetDashboardHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &GetDashboardHandler{
		incidentRepo:  incidentRepo,
		workOrderRepo: workOrderRepo,
		taskRepo:      taskRepo,
		registry:      registry,
		clock:         clock,
		window:        window,
	}
}

// Handle executes the GetDashboard query
func (h *GetDashboardHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*GetDashboardQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetDashboardQuery")
	}

	// KPIs always cover the whole board
	all := maintenance.ListOptions{}
	incidents, err := h.incidentRepo.List(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	orders, err := h.workOrderRepo.List(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	tasks, err := h.taskRepo.List(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", err)
	}

	now := h.clock.Now()
	summary := maintenance.Summarize(now, h.window, incidents, orders, tasks, h.fleetSnapshot())

	resp := &GetDashboardResponse{
		GeneratedAt: now,
		Summary:     summary,
	}
	for _, inc := range incidents {
		if !matchesVessel(query.VesselName, inc.VesselName()) {
			continue
		}
		resp.Incidents = append(resp.Incidents, IncidentDTO{
			ID:         inc.ID(),
			VesselName: inc.VesselName(),
			Equipment:  inc.Equipment(),
			Severity:   inc.Severity().String(),
			Status:     inc.Status().String(),
			ETA:        inc.ETA(),
			OpenedAt:   inc.OpenedAt(),
		})
	}
	for _, task := range tasks {
		if !matchesVessel(query.VesselName, task.VesselName()) {
			continue
		}
		resp.Tasks = append(resp.Tasks, MaintenanceTaskDTO{
			ID:         task.ID(),
			VesselName: task.VesselName(),
			Task:       task.Task(),
			DueDate:    task.DueDate(),
			Status:     task.Status().String(),
		})
	}
	for _, wo := range orders {
		if !matchesVessel(query.VesselName, wo.VesselName()) {
			continue
		}
		resp.WorkOrders = append(resp.WorkOrders, WorkOrderDTO{
			ID:         wo.ID(),
			VesselName: wo.VesselName(),
			Owner:      wo.Owner(),
			Progress:   wo.Progress(),
			Status:     wo.Status().String(),
			Critical:   wo.IsCritical(),
		})
	}

	if query.Limit > 0 {
		resp.Incidents = truncate(resp.Incidents, query.Limit)
		resp.Tasks = truncate(resp.Tasks, query.Limit)
		resp.WorkOrders = truncate(resp.WorkOrders, query.Limit)
	}

	return resp, nil
}

func (h *GetDashboardHandler) fleetSnapshot() maintenance.FleetSnapshot {
	if h.registry == nil {
		return maintenance.FleetSnapshot{}
	}
	counts := h.registry.CountByStatus()
	return maintenance.FleetSnapshot{
		Total:       h.registry.Len(),
		Operational: counts[fleet.StatusOperational],
		InPort:      counts[fleet.StatusInPort],
	}
}

func matchesVessel(filter, vessel string) bool {
	return filter == "" || filter == vessel
}

func truncate[T any](rows []T, limit int) []T {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
