package dtos

import (
	"github.com/andrescamacho/shipfix-go/internal/domain/fleet"
)

// VesselDTO is a flattened vessel for presentation and JSON output
type VesselDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	RegistrationCode string   `json:"registration_code"`
	HomePort         string   `json:"home_port"`
	Status           string   `json:"status"`       // OPERATIONAL, IN_PORT, UNDER_REPAIR, OUT_OF_SERVICE
	StatusLabel      string   `json:"status_label"` // Human-readable status
	TechnicalLeads   []string `json:"technical_leads"`
}

// VesselToDTO converts a domain vessel to a DTO
func VesselToDTO(v fleet.Vessel) VesselDTO {
	return VesselDTO{
		ID:               v.ID().String(),
		Name:             v.Name(),
		RegistrationCode: v.RegistrationCode(),
		HomePort:         v.HomePort(),
		Status:           v.OperationalStatus().Code(),
		StatusLabel:      v.OperationalStatus().Label(),
		TechnicalLeads:   v.TechnicalLeads(),
	}
}

// VesselsToDTOs converts a slice of vessels preserving order
func VesselsToDTOs(vessels []fleet.Vessel) []VesselDTO {
	out := make([]VesselDTO, 0, len(vessels))
	for _, v := range vessels {
		out = append(out, VesselToDTO(v))
	}
	return out
}

// FormDTO is a snapshot of the vessel form
type FormDTO struct {
	Mode      string            `json:"mode"`
	EditID    string            `json:"edit_id,omitempty"`
	Draft     fleet.VesselDraft `json:"draft"`
	LastError error             `json:"-"`
}

// FormToDTO captures the form state
func FormToDTO(f *fleet.VesselForm) FormDTO {
	dto := FormDTO{
		Mode:      f.Mode().String(),
		Draft:     f.Draft(),
		LastError: f.LastError(),
	}
	if !f.EditID().IsZero() {
		dto.EditID = f.EditID().String()
	}
	return dto
}
