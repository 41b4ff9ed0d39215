package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// CreateVesselCommand adds a vessel from a complete draft, bypassing the form
type CreateVesselCommand struct {
	Draft fleet.VesselDraft
}

// CreateVesselResponse carries the created vessel, which is now selected
type CreateVesselResponse struct {
	Vessel dtos.VesselDTO
}

// CreateVesselHandler handles the CreateVessel command
type CreateVesselHandler struct {
	registry *fleet.VesselRegistry
}

// NewCreateVesselHandler creates a new CreateVesselHandler
func NewCreateVesselHandler(registry *fleet.VesselRegistry) *CreateVesselHandler {
	return &CreateVesselHandler{registry: registry}
}

// Handle executes the CreateVessel command
func (h *CreateVesselHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*CreateVesselCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateVesselCommand")
	}

	vessel, err := h.registry.Create(cmd.Draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create vessel: %w", err)
	}

	common.LoggerFromContext(ctx).InfoContext(ctx, "vessel created",
		"vessel_id", vessel.ID().String(),
		"registration_code", vessel.RegistrationCode())

	return &CreateVesselResponse{Vessel: dtos.VesselToDTO(vessel)}, nil
}
