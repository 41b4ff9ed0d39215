package maintenance

import (
	"fmt"
	"strings"
	"time"
)

// Incident is a reported equipment failure on a vessel
type Incident struct {
	id         string
	vesselName string
	equipment  string
	severity   Severity
	status     IncidentStatus
	eta        time.Duration
	openedAt   time.Time
}

// NewIncident creates an incident with validation
func NewIncident(
	id string,
	vesselName string,
	equipment string,
	severity Severity,
	status IncidentStatus,
	eta time.Duration,
	openedAt time.Time,
) (*Incident, error) {
	if err := requireText("incident",
		field{"id", id},
		field{"vessel_name", vesselName},
		field{"equipment", equipment},
	); err != nil {
		return nil, err
	}
	if !severity.IsValid() {
		return nil, &ErrInvalidRecord{Entity: "incident", Field: "severity", Reason: fmt.Sprintf("invalid severity: %s", severity)}
	}
	if !status.IsValid() {
		return nil, &ErrInvalidRecord{Entity: "incident", Field: "status", Reason: fmt.Sprintf("invalid status: %s", status)}
	}
	if eta < 0 {
		return nil, &ErrInvalidRecord{Entity: "incident", Field: "eta", Reason: "eta cannot be negative"}
	}
	if openedAt.IsZero() {
		return nil, &ErrInvalidRecord{Entity: "incident", Field: "opened_at", Reason: "opened_at is required"}
	}

	return &Incident{
		id:         strings.TrimSpace(id),
		vesselName: strings.TrimSpace(vesselName),
		equipment:  strings.TrimSpace(equipment),
		severity:   severity,
		status:     status,
		eta:        eta,
		openedAt:   openedAt,
	}, nil
}

func (i *Incident) ID() string {
	return i.id
}

func (i *Incident) VesselName() string {
	return i.vesselName
}

func (i *Incident) Equipment() string {
	return i.equipment
}

func (i *Incident) Severity() Severity {
	return i.severity
}

func (i *Incident) Status() IncidentStatus {
	return i.status
}

// ETA is the estimated time to repair
func (i *Incident) ETA() time.Duration {
	return i.eta
}

func (i *Incident) OpenedAt() time.Time {
	return i.openedAt
}

// IsOpen reports whether the incident still counts as an active failure
func (i *Incident) IsOpen() bool {
	return i.status != IncidentResolved
}

// Resolve closes the incident
func (i *Incident) Resolve() {
	i.status = IncidentResolved
	i.eta = 0
}

type field struct {
	name  string
	value string
}

// requireText returns an error for the first blank field
func requireText(entity string, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ErrInvalidRecord{Entity: entity, Field: f.name, Reason: f.name + " is required"}
		}
	}
	return nil
}
