package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/shipfix-go/internal/application/common"
	"github.com/andrescamacho/shipfix-go/internal/application/fleet/dtos"
	"github.com/andrescamacho/shipfix-go/internal/application/mediator"
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// OpenVesselFormCommand opens the form. An empty VesselID opens it in create mode,
// otherwise it opens in edit mode pre-filled from that vessel.
type OpenVesselFormCommand struct {
	VesselID string
}

// SetVesselFormFieldCommand sets one draft input on the open form
type SetVesselFormFieldCommand struct {
	Field string
	Value string
}

// SubmitVesselFormCommand validates and commits the open form
type SubmitVesselFormCommand struct{}

// CloseVesselFormCommand discards the open form
type CloseVesselFormCommand struct{}

// VesselFormResponse is returned by every form command except submit
type VesselFormResponse struct {
	Form dtos.FormDTO
}

// SubmitVesselFormResponse carries the committed vessel and the mode it was submitted in
type SubmitVesselFormResponse struct {
	Mode   string
	Vessel dtos.VesselDTO
}

// VesselFormHandler handles all form workflow commands against a single form
type VesselFormHandler struct {
	form *fleet.VesselForm
}

// NewVesselFormHandler creates a new VesselFormHandler
func NewVesselFormHandler(form *fleet.VesselForm) *VesselFormHandler {
	return &VesselFormHandler{form: form}
}

// Handle executes a form command
func (h *VesselFormHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	switch cmd := request.(type) {
	case *OpenVesselFormCommand:
		return h.open(cmd)
	case *SetVesselFormFieldCommand:
		if err := h.form.SetField(cmd.Field, cmd.Value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", cmd.Field, err)
		}
		return &VesselFormResponse{Form: dtos.FormToDTO(h.form)}, nil
	case *SubmitVesselFormCommand:
		return h.submit(ctx)
	case *CloseVesselFormCommand:
		h.form.Close()
		return &VesselFormResponse{Form: dtos.FormToDTO(h.form)}, nil
	default:
		return nil, fmt.Errorf("invalid request type: expected a vessel form command, got %T", request)
	}
}

func (h *VesselFormHandler) open(cmd *OpenVesselFormCommand) (mediator.Response, error) {
	if cmd.VesselID == "" {
		h.form.OpenCreate()
		return &VesselFormResponse{Form: dtos.FormToDTO(h.form)}, nil
	}

	id, err := fleet.NewVesselIDFromString(cmd.VesselID)
	if err != nil {
		return nil, fmt.Errorf("invalid vessel ID: %w", err)
	}
	if err := h.form.OpenEdit(id); err != nil {
		return nil, fmt.Errorf("failed to open edit form: %w", err)
	}
	return &VesselFormResponse{Form: dtos.FormToDTO(h.form)}, nil
}

func (h *VesselFormHandler) submit(ctx context.Context) (mediator.Response, error) {
	mode := h.form.Mode()
	vessel, err := h.form.Submit()
	if err != nil {
		return nil, fmt.Errorf("failed to submit vessel form: %w", err)
	}

	common.LoggerFromContext(ctx).InfoContext(ctx, "vessel form submitted",
		"mode", mode.String(),
		"vessel_id", vessel.ID().String())

	return &SubmitVesselFormResponse{
		Mode:   mode.String(),
		Vessel: dtos.VesselToDTO(vessel),
	}, nil
}
