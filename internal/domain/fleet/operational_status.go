package fleet

import (
	"fmt"
	"strings"
)

// OperationalStatus is the lifecycle state of a vessel.
// The zero value is StatusOperational, which is also the default for a new draft.
type OperationalStatus int

const (
	StatusOperational OperationalStatus = iota
	StatusInPort
	StatusUnderRepair
	StatusOutOfService
)

var statusCodes = [...]string{
	StatusOperational:  "OPERATIONAL",
	StatusInPort:       "IN_PORT",
	StatusUnderRepair:  "UNDER_REPAIR",
	StatusOutOfService: "OUT_OF_SERVICE",
}

var statusLabels = [...]string{
	StatusOperational:  "Operational",
	StatusInPort:       "In port",
	StatusUnderRepair:  "Under repair",
	StatusOutOfService: "Out of service",
}

// AllStatuses returns every operational status in display order
func AllStatuses() []OperationalStatus {
	return []OperationalStatus{
		StatusOperational,
		StatusInPort,
		StatusUnderRepair,
		StatusOutOfService,
	}
}

// IsValid checks if the status is one of the known values
func (s OperationalStatus) IsValid() bool {
	return s >= StatusOperational && s <= StatusOutOfService
}

// Code returns the stable machine-readable code, e.g. "UNDER_REPAIR"
func (s OperationalStatus) Code() string {
	if !s.IsValid() {
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
	return statusCodes[s]
}

// Label returns the human-readable label, e.g. "Under repair"
func (s OperationalStatus) Label() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return statusLabels[s]
}

func (s OperationalStatus) String() string {
	return s.Code()
}

// ParseOperationalStatus accepts either the code or the label, case-insensitively.
// Spaces, dashes and underscores are interchangeable: "in port", "IN_PORT" and
// "in-port" all parse to StatusInPort.
func ParseOperationalStatus(s string) (OperationalStatus, error) {
	normalized := normalizeStatus(s)
	for _, status := range AllStatuses() {
		if normalized == normalizeStatus(statusCodes[status]) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("invalid operational status: %q", s)
}

func normalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
