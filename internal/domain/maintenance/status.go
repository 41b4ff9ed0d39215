package maintenance

// Severity ranks how urgently an incident needs attention
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// IsValid checks if the severity is one of the known values
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}

// IncidentStatus tracks a reported failure from opening to resolution
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "OPEN"
	IncidentDiagnosing IncidentStatus = "DIAGNOSING"
	IncidentInRepair   IncidentStatus = "IN_REPAIR"
	IncidentResolved   IncidentStatus = "RESOLVED"
)

// IsValid checks if the status is one of the known values
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentOpen, IncidentDiagnosing, IncidentInRepair, IncidentResolved:
		return true
	default:
		return false
	}
}

func (s IncidentStatus) String() string {
	return string(s)
}

// WorkOrderStatus tracks a work order through the workshop
type WorkOrderStatus string

const (
	WorkOrderPending   WorkOrderStatus = "PENDING"
	WorkOrderDiagnosis WorkOrderStatus = "DIAGNOSIS"
	WorkOrderInRepair  WorkOrderStatus = "IN_REPAIR"
	WorkOrderCompleted WorkOrderStatus = "COMPLETED"
)

// IsValid checks if the status is one of the known values
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderPending, WorkOrderDiagnosis, WorkOrderInRepair, WorkOrderCompleted:
		return true
	default:
		return false
	}
}

func (s WorkOrderStatus) String() string {
	return string(s)
}

// TaskStatus tracks a scheduled maintenance task
type TaskStatus string

const (
	TaskScheduled  TaskStatus = "SCHEDULED"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

// IsValid checks if the status is one of the known values
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskScheduled, TaskInProgress, TaskDone:
		return true
	default:
		return false
	}
}

func (s TaskStatus) String() string {
	return string(s)
}
