package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// UpdateVesselCommand replaces all editable fields of an existing vessel
type UpdateVesselCommand struct {
	VesselID string
	Draft    fleet.VesselDraft
}

type UpdateVesselResponse struct {
	Vessel dtos.VesselDTO
}

// UpdateVesselHandler handles the UpdateVessel command
type UpdateVesselHandler struct {
	registry *fleet.VesselRegistry
}

func NewUpdateVesselHandler(registry *fleet.VesselRegistry) *UpdateVesselHandler {
	return &UpdateVesselHandler{registry: registry}
}

// Handle executes the UpdateVessel command
func (h *UpdateVesselHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*UpdateVesselCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateVesselCommand")
	}

	id, err := fleet.NewVesselIDFromString(cmd.VesselID)
	if err != nil {
		return nil, fmt.Errorf("invalid vessel ID: %w", err)
	}

	vessel, err := h.registry.Update(id, cmd.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to update vessel: %w", err)
	}

	common.LoggerFromContext(ctx).InfoContext(ctx, "vessel updated", "vessel_id", id.String())

	return &UpdateVesselResponse{Vessel: dtos.VesselToDTO(vessel)}, nil
}
