package fleet

import (
	"fmt"
	"strings"
)

// VesselDraft is the unvalidated staging area for the create/edit form.
// It mirrors a vessel's editable fields with two separate lead slots.
type VesselDraft struct {
	Name             string
	RegistrationCode string
	HomePort         string
	Status           OperationalStatus
	Lead1            string
	Lead2            string
}

// Field names accepted by SetField, matching the form inputs
const (
	FieldName             = "name"
	FieldRegistrationCode = "registration_code"
	FieldHomePort         = "home_port"
	FieldStatus           = "status"
	FieldLead1            = "lead1"
	FieldLead2            = "lead2"
)

// DraftFields lists the settable draft fields in form order
func DraftFields() []string {
	return []string{FieldName, FieldRegistrationCode, FieldHomePort, FieldStatus, FieldLead1, FieldLead2}
}

// SetField assigns a single form input by name. Values are stored as typed; trimming
// happens on commit.
func (d *VesselDraft) SetField(field, value string) error {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case FieldName:
		d.Name = value
	case FieldRegistrationCode, "code", "registration":
		d.RegistrationCode = value
	case FieldHomePort, "port":
		d.HomePort = value
	case FieldStatus:
		status, err := ParseOperationalStatus(value)
		if err != nil {
			return err
		}
		d.Status = status
	case FieldLead1, "lead":
		d.Lead1 = value
	case FieldLead2:
		d.Lead2 = value
	default:
		return fmt.Errorf("unknown draft field: %q", field)
	}
	return nil
}

// leads returns the trimmed, non-empty leads in order
func (d VesselDraft) leads() []string {
	leads := make([]string, 0, 2)
	for _, lead := range []string{d.Lead1, d.Lead2} {
		if trimmed := strings.TrimSpace(lead); trimmed != "" {
			leads = append(leads, trimmed)
		}
	}
	return leads
}

// validateFields runs the record-local rules in order, stopping at the first failure:
// name, registration code, home port, primary lead, duplicate leads, lead count.
func (d VesselDraft) validateFields() error {
	if strings.TrimSpace(d.Name) == "" {
		return invalidDraft(CodeMissingName, FieldName, "vessel name is required")
	}
	if strings.TrimSpace(d.RegistrationCode) == "" {
		return invalidDraft(CodeMissingRegistrationCode, FieldRegistrationCode, "registration code is required")
	}
	if strings.TrimSpace(d.HomePort) == "" {
		return invalidDraft(CodeMissingHomePort, FieldHomePort, "home port is required")
	}

	lead1 := strings.TrimSpace(d.Lead1)
	lead2 := strings.TrimSpace(d.Lead2)
	if lead1 == "" {
		return invalidDraft(CodeMissingPrimaryLead, FieldLead1, "at least one technical lead is required")
	}
	if lead2 != "" && strings.EqualFold(lead1, lead2) {
		return invalidDraft(CodeDuplicateLeads, FieldLead2, "second technical lead must differ from the first")
	}

	if count := len(d.leads()); count < 1 || count > 2 {
		return invalidDraft(CodeInvalidLeadCount, "technical_leads",
			fmt.Sprintf("a vessel has 1 or 2 technical leads, got %d", count))
	}
	return nil
}

func (d VesselDraft) validateStatus() error {
	if !d.Status.IsValid() {
		return invalidDraft(CodeInvalidStatus, FieldStatus, fmt.Sprintf("unknown operational status %d", int(d.Status)))
	}
	return nil
}

// normalizedCode is the key used for case-insensitive uniqueness checks
func (d VesselDraft) normalizedCode() string {
	return strings.ToLower(strings.TrimSpace(d.RegistrationCode))
}

// build converts a validated draft into a committed vessel
func (d VesselDraft) build(id VesselID) Vessel {
	return Vessel{
		id:                id,
		name:              strings.TrimSpace(d.Name),
		registrationCode:  strings.TrimSpace(d.RegistrationCode),
		homePort:          strings.TrimSpace(d.HomePort),
		operationalStatus: d.Status,
		technicalLeads:    d.leads(),
	}
}
