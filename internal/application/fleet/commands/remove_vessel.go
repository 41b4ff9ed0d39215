package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// RemoveVesselCommand deletes a vessel. Confirmation is the caller's job.
type RemoveVesselCommand struct {
	VesselID string
}

// RemoveVesselResponse reports where the selection landed after removal
type RemoveVesselResponse struct {
	RemovedID  string
	SelectedID string // Empty when the fleet is now empty
}

// RemoveVesselHandler handles the RemoveVessel command
type RemoveVesselHandler struct {
	registry *fleet.VesselRegistry
}

func NewRemoveVesselHandler(registry *fleet.VesselRegistry) *RemoveVesselHandler {
	return &RemoveVesselHandler{registry: registry}
}

// Handle executes the RemoveVessel command
func (h *RemoveVesselHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RemoveVesselCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveVesselCommand")
	}

	id, err := fleet.NewVesselIDFromString(cmd.VesselID)
	if err != nil {
		return nil, fmt.Errorf("invalid vessel ID: %w", err)
	}

	if err := h.registry.Remove(id); err != nil {
		return nil, fmt.Errorf("failed to remove vessel: %w", err)
	}

	common.LoggerFromContext(ctx).InfoContext(ctx, "vessel removed", "vessel_id", id.String())

	return &RemoveVesselResponse{
		RemovedID:  id.String(),
		SelectedID: h.registry.SelectedID().String(),
	}, nil
}
