package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
	"github.com/andrescamacho/shipfix-go/internal/domain/shared"
)

// SeedBoardCommand loads the demo maintenance board when the incident table is empty
type SeedBoardCommand struct{}

type SeedBoardResponse struct {
	Seeded bool
}

// SeedBoardHandler handles the SeedBoard command
type SeedBoardHandler struct {
	incidentRepo  maintenance.IncidentRepository
	workOrderRepo maintenance.WorkOrderRepository
	taskRepo      maintenance.MaintenanceTaskRepository
	clock         shared.Clock
}

func NewSeedBoardHandler(
	incidentRepo maintenance.IncidentRepository,
	workOrderRepo maintenance.WorkOrderRepository,
	taskRepo maintenance.MaintenanceTaskRepository,
	clock shared.Clock,
) *SeedBoardHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &SeedBoardHandler{
		incidentRepo:  incidentRepo,
		workOrderRepo: workOrderRepo,
		taskRepo:      taskRepo,
		clock:         clock,
	}
}

// Handle executes the SeedBoard command
func (h *SeedBoardHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*SeedBoardCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *SeedBoardCommand")
	}

	existing, err := h.incidentRepo.List(ctx, maintenance.ListOptions{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check maintenance board: %w", err)
	}
	if len(existing) > 0 {
		return &SeedBoardResponse{Seeded: false}, nil
	}

	board, err := maintenance.SeedBoard(h.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to build seed board: %w", err)
	}

	for _, inc := range board.Incidents {
		if err := h.incidentRepo.Save(ctx, inc); err != nil {
			return nil, fmt.Errorf("failed to seed incident %s: %w", inc.ID(), err)
		}
	}
	for _, wo := range board.WorkOrders {
		if err := h.workOrderRepo.Save(ctx, wo); err != nil {
			return nil, fmt.Errorf("failed to seed work order %s: %w", wo.ID(), err)
		}
	}
	for _, task := range board.Tasks {
		if err := h.taskRepo.Save(ctx, task); err != nil {
			return nil, fmt.Errorf("failed to seed maintenance task %s: %w", task.ID(), err)
		}
	}

	common.LoggerFromContext(ctx).DebugContext(ctx, "maintenance board seeded",
		"incidents", len(board.Incidents),
		"work_orders", len(board.WorkOrders),
		"tasks", len(board.Tasks))

	return &SeedBoardResponse{Seeded: true}, nil
}
