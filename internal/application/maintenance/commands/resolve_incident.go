package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/maintenance"
)

// ResolveIncidentCommand marks an incident as resolved
type ResolveIncidentCommand struct {
	IncidentID string
}

type ResolveIncidentResponse struct {
	IncidentID string
	Status     string
}

// ResolveIncidentHandler handles the ResolveIncident command
type ResolveIncidentHandler struct {
	incidentRepo maintenance.IncidentRepository
}

func NewResolveIncidentHandler(incidentRepo maintenance.IncidentRepository) *ResolveIncidentHandler {
	return &ResolveIncidentHandler{incidentRepo: incidentRepo}
}

// Handle executes the ResolveIncident command
func (h *ResolveIncidentHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ResolveIncidentCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ResolveIncidentCommand")
	}

	incident, err := h.incidentRepo.FindByID(ctx, cmd.IncidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find incident: %w", err)
	}

	incident.Resolve()

	if err := h.incidentRepo.Save(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to save incident: %w", err)
	}

	return &ResolveIncidentResponse{
		IncidentID: incident.ID(),
		Status:     incident.Status().String(),
	}, nil
}
