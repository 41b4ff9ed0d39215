package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// ListHomePortsQuery returns the distinct home ports for the port picker
type ListHomePortsQuery struct {
	IncludeAll bool // Prefix the "All" sentinel
}

type ListHomePortsResponse struct {
	Ports []string
}

// GetVesselQuery fetches one vessel by id
type GetVesselQuery struct {
	VesselID string
}

// GetSelectedVesselQuery resolves the current selection
type GetSelectedVesselQuery struct{}

// GetVesselFormQuery returns the current form state
type GetVesselFormQuery struct{}

// VesselResponse is shared by the single-vessel queries
type VesselResponse struct {
	Vessel *dtos.VesselDTO // nil when nothing is selected
}

type VesselFormResponse struct {
	Form dtos.FormDTO
}

// VesselQueryHandler answers the read-only registry queries
type VesselQueryHandler struct {
	registry *fleet.VesselRegistry
	form     *fleet.VesselForm
}

// NewVesselQueryHandler creates a new VesselQueryHandler
func NewVesselQueryHandler(registry *fleet.VesselRegistry, form *fleet.VesselForm) *VesselQueryHandler {
	return &VesselQueryHandler{registry: registry, form: form}
}

// Handle executes a vessel query
func (h *VesselQueryHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch query := request.(type) {
	case *ListHomePortsQuery:
		if query.IncludeAll {
			return &ListHomePortsResponse{Ports: h.registry.HomePortOptions()}, nil
		}
		return &ListHomePortsResponse{Ports: h.registry.ListDistinctHomePorts()}, nil

	case *GetVesselQuery:
		id, err := fleet.NewVesselIDFromString(query.VesselID)
		if err != nil {
			return nil, fmt.Errorf("invalid vessel ID: %w", err)
		}
		vessel, ok := h.registry.Get(id)
		if !ok {
			return nil, &fleet.ErrVesselNotFound{ID: id}
		}
		dto := dtos.VesselToDTO(vessel)
		return &VesselResponse{Vessel: &dto}, nil

	case *GetSelectedVesselQuery:
		vessel, ok := h.registry.Selected()
		if !ok {
			return &VesselResponse{}, nil
		}
		dto := dtos.VesselToDTO(vessel)
		return &VesselResponse{Vessel: &dto}, nil

	case *GetVesselFormQuery:
		if h.form == nil {
			return nil, fmt.Errorf("vessel form is not configured")
		}
		return &VesselFormResponse{Form: dtos.FormToDTO(h.form)}, nil

	default:
		return nil, fmt.Errorf("invalid request type: expected a vessel query, got %T", request)
	}
}
