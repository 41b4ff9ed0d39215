package maintenance

import "context"

// IncidentRepository defines persistence operations for incidents
type IncidentRepository interface {
	// Save inserts or replaces an incident
	Save(ctx context.Context, incident *Incident) error

	// FindByID retrieves an incident by its ID
	FindByID(ctx context.Context, id string) (*Incident, error)

	// List retrieves incidents, newest id first
	List(ctx context.Context, opts ListOptions) ([]*Incident, error)
}

// WorkOrderRepository defines persistence operations for work orders
type WorkOrderRepository interface {
	Save(ctx context.Context, order *WorkOrder) error
	FindByID(ctx context.Context, id string) (*WorkOrder, error)
	List(ctx context.Context, opts ListOptions) ([]*WorkOrder, error)
}

// MaintenanceTaskRepository defines persistence operations for scheduled maintenance
type MaintenanceTaskRepository interface {
	Save(ctx context.Context, task *MaintenanceTask) error
	FindByID(ctx context.Context, id string) (*MaintenanceTask, error)

	// List retrieves tasks ordered by due date
	List(ctx context.Context, opts ListOptions) ([]*MaintenanceTask, error)
}

// ListOptions defines filtering options for board queries
type ListOptions struct {
	// VesselName restricts results to one vessel
	VesselName *string

	// Limit caps the number of rows; 0 means no limit
	Limit int
}
