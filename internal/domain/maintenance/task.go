package maintenance

import (
	"fmt"
	"strings"
	"time"
)

// MaintenanceTask is a planned maintenance job with a due date
type MaintenanceTask struct {
	id          string
	vesselName  string
	description string
	dueDate     time.Time
	status      TaskStatus
}

func NewMaintenanceTask(
	id string,
	vesselName string,
	description string,
	dueDate time.Time,
	status TaskStatus,
) (*MaintenanceTask, error) {
	if err := requireText("maintenance_task",
		field{"id", id},
		field{"vessel_name", vesselName},
		field{"task", description},
	); err != nil {
		return nil, err
	}
	if dueDate.IsZero() {
		return nil, &ErrInvalidRecord{Entity: "maintenance_task", Field: "due_date", Reason: "due_date is required"}
	}
	if !status.IsValid() {
		return nil, &ErrInvalidRecord{Entity: "maintenance_task", Field: "status", Reason: fmt.Sprintf("invalid status: %s", status)}
	}

	return &MaintenanceTask{
		id:          strings.TrimSpace(id),
		vesselName:  strings.TrimSpace(vesselName),
		description: strings.TrimSpace(description),
		dueDate:     dueDate,
		status:      status,
	}, nil
}

func (m *MaintenanceTask) ID() string {
	return m.id
}

func (m *MaintenanceTask) VesselName() string {
	return m.vesselName
}

func (m *MaintenanceTask) Task() string {
	return m.description
}

func (m *MaintenanceTask) DueDate() time.Time {
	return m.dueDate
}

func (m *MaintenanceTask) Status() TaskStatus {
	return m.status
}

// IsUpcoming reports whether the task is unfinished and due within window of now.
// Overdue tasks count as upcoming.
func (m *MaintenanceTask) IsUpcoming(now time.Time, window time.Duration) bool {
	if m.status == TaskDone {
		return false
	}
	return !m.dueDate.After(now.Add(window))
}
