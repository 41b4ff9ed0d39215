package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// ListVesselsQuery filters the fleet. Empty or "All" picker values mean no filter.
type ListVesselsQuery struct {
	Query    string
	HomePort string
	Status   string
}

// ListVesselsResponse holds the matching vessels and the current selection
type ListVesselsResponse struct {
	Vessels    []dtos.VesselDTO
	Total      int // Size of the unfiltered fleet
	SelectedID string
}

// ListVesselsHandler handles the ListVessels query
type ListVesselsHandler struct {
	registry *fleet.VesselRegistry
}

// NewListVesselsHandler creates a new ListVesselsHandler
func NewListVesselsHandler(registry *fleet.VesselRegistry) *ListVesselsHandler {
	return &ListVesselsHandler{registry: registry}
}

// Handle executes the ListVessels query
func (h *ListVesselsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*ListVesselsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListVesselsQuery")
	}

	criteria, err := fleet.NewFilterCriteria(query.Query, query.HomePort, query.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}

	return &ListVesselsResponse{
		Vessels:    dtos.VesselsToDTOs(h.registry.List(criteria)),
		Total:      h.registry.Len(),
		SelectedID: h.registry.SelectedID().String(),
	}, nil
}
