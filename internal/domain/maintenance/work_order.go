package maintenance

import (
	"fmt"
	"strings"
)

// WorkOrder is a repair job assigned to a workshop or crew
type WorkOrder struct {
	id         string
	vesselName string
	owner      string
	progress   int // percent, 0..100
	status     WorkOrderStatus
	critical   bool
}

// NewWorkOrder creates a work order with validation
func NewWorkOrder(
	id string,
	vesselName string,
	owner string,
	progress int,
	status WorkOrderStatus,
	critical bool,
) (*WorkOrder, error) {
	if err := requireText("work_order",
		field{"id", id},
		field{"vessel_name", vesselName},
		field{"owner", owner},
	); err != nil {
		return nil, err
	}
	if progress < 0 || progress > 100 {
		return nil, &ErrInvalidRecord{Entity: "work_order", Field: "progress", Reason: fmt.Sprintf("progress must be between 0 and 100, got %d", progress)}
	}
	if !status.IsValid() {
		return nil, &ErrInvalidRecord{Entity: "work_order", Field: "status", Reason: fmt.Sprintf("invalid status: %s", status)}
	}

	return &WorkOrder{
		id:         strings.TrimSpace(id),
		vesselName: strings.TrimSpace(vesselName),
		owner:      strings.TrimSpace(owner),
		progress:   progress,
		status:     status,
		critical:   critical,
	}, nil
}

func (w *WorkOrder) ID() string {
	return w.id
}

func (w *WorkOrder) VesselName() string {
	return w.vesselName
}

func (w *WorkOrder) Owner() string {
	return w.owner
}

func (w *WorkOrder) Progress() int {
	return w.progress
}

func (w *WorkOrder) Status() WorkOrderStatus {
	return w.status
}

func (w *WorkOrder) IsCritical() bool {
	return w.critical
}

// IsPending reports whether the order still has work left
func (w *WorkOrder) IsPending() bool {
	return w.status != WorkOrderCompleted
}
