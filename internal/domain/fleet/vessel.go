package fleet

import (
	"fmt"
	"strings"
)

// Vessel is a fishing-fleet ship tracked for maintenance.
// Instances handed out by the registry are copies; mutating them has no effect
// on the registry.
type Vessel struct {
	id                VesselID
	name              string
	registrationCode  string
	homePort          string
	operationalStatus OperationalStatus
	technicalLeads    []string
}

// ReconstructVessel builds a vessel from trusted data (seed fixtures, tests).
// It enforces the per-record invariants but not registry-wide uniqueness.
func ReconstructVessel(
	id VesselID,
	name string,
	registrationCode string,
	homePort string,
	status OperationalStatus,
	technicalLeads ...string,
) (Vessel, error) {
	draft := VesselDraft{
		Name:             name,
		RegistrationCode: registrationCode,
		HomePort:         homePort,
		Status:           status,
	}
	if len(technicalLeads) > 2 {
		return Vessel{}, invalidDraft(CodeInvalidLeadCount, "technical_leads",
			fmt.Sprintf("a vessel has 1 or 2 technical leads, got %d", len(technicalLeads)))
	}
	if len(technicalLeads) > 0 {
		draft.Lead1 = technicalLeads[0]
	}
	if len(technicalLeads) > 1 {
		draft.Lead2 = technicalLeads[1]
		if strings.TrimSpace(draft.Lead2) == "" {
			return Vessel{}, invalidDraft(CodeInvalidLeadCount, "lead2", "second technical lead cannot be blank")
		}
	}
	if id.IsZero() {
		return Vessel{}, fmt.Errorf("vessel_id cannot be empty")
	}
	if err := draft.validateFields(); err != nil {
		return Vessel{}, err
	}
	if err := draft.validateStatus(); err != nil {
		return Vessel{}, err
	}
	return draft.build(id), nil
}

func (v Vessel) ID() VesselID {
	return v.id
}

func (v Vessel) Name() string {
	return v.name
}

func (v Vessel) RegistrationCode() string {
	return v.registrationCode
}

func (v Vessel) HomePort() string {
	return v.homePort
}

func (v Vessel) OperationalStatus() OperationalStatus {
	return v.operationalStatus
}

// TechnicalLeads returns a copy of the ordered lead list (1 or 2 entries)
func (v Vessel) TechnicalLeads() []string {
	leads := make([]string, len(v.technicalLeads))
	copy(leads, v.technicalLeads)
	return leads
}

// PrimaryLead returns the mandatory first technical lead
func (v Vessel) PrimaryLead() string {
	if len(v.technicalLeads) == 0 {
		return ""
	}
	return v.technicalLeads[0]
}

// ToDraft returns a draft pre-filled with this vessel's editable fields
func (v Vessel) ToDraft() VesselDraft {
	draft := VesselDraft{
		Name:             v.name,
		RegistrationCode: v.registrationCode,
		HomePort:         v.homePort,
		Status:           v.operationalStatus,
	}
	if len(v.technicalLeads) > 0 {
		draft.Lead1 = v.technicalLeads[0]
	}
	if len(v.technicalLeads) > 1 {
		draft.Lead2 = v.technicalLeads[1]
	}
	return draft
}

// matches reports whether the vessel satisfies the filter criteria.
// query must already be trimmed and lower-cased.
func (v Vessel) matches(query string, criteria FilterCriteria) bool {
	if criteria.HomePort != nil && v.homePort != *criteria.HomePort {
		return false
	}
	if criteria.Status != nil && v.operationalStatus != *criteria.Status {
		return false
	}
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(v.name), query) ||
		strings.Contains(strings.ToLower(v.registrationCode), query) {
		return true
	}
	for _, lead := range v.technicalLeads {
		if strings.Contains(strings.ToLower(lead), query) {
			return true
		}
	}
	return false
}

func (v Vessel) clone() Vessel {
	v.technicalLeads = v.TechnicalLeads()
	return v
}

// String provides a human-readable representation
func (v Vessel) String() string {
	return fmt.Sprintf("Vessel[%s, name=%s, code=%s, port=%s, status=%s]",
		v.id, v.name, v.registrationCode, v.homePort, v.operationalStatus)
}
