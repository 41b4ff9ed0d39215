package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// SelectVesselCommand highlights a vessel. Unknown ids are accepted and resolve to no selection;
// a blank id clears the selection.
type SelectVesselCommand struct {
	VesselID string
}

type SelectVesselResponse struct {
	Vessel *dtos.VesselDTO // nil when the id does not resolve
}

// SelectVesselHandler handles the SelectVessel command
type SelectVesselHandler struct {
	registry *fleet.VesselRegistry
}

func NewSelectVesselHandler(registry *fleet.VesselRegistry) *SelectVesselHandler {
	return &SelectVesselHandler{registry: registry}
}

// Handle executes the SelectVessel command
func (h *SelectVesselHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*SelectVesselCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SelectVesselCommand")
	}

	var id fleet.VesselID
	if strings.TrimSpace(cmd.VesselID) != "" {
		parsed, err := fleet.NewVesselIDFromString(cmd.VesselID)
		if err != nil {
			return nil, fmt.Errorf("invalid vessel ID: %w", err)
		}
		id = parsed
	}

	h.registry.Select(id)

	resp := &SelectVesselResponse{}
	if vessel, ok := h.registry.Selected(); ok {
		dto := dtos.VesselToDTO(vessel)
		resp.Vessel = &dto
	}
	return resp, nil
}
